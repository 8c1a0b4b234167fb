package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	board := newTestBoard(t, map[Column][]string{
		ColumnTodo:  {"a", "b"},
		ColumnDoing: {"c"},
	})
	high := PriorityHigh
	assignee := "Jules"
	task, _ := board.Find("b")
	task, err := task.Apply(TaskPatch{Priority: &high, Assignee: &assignee}, t0.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, board.Replace(task))

	data, err := EncodeBoard(board)
	require.NoError(t, err)

	decoded, err := DecodeBoard(data, t0.Add(time.Hour))
	require.NoError(t, err)

	require.Equal(t, board.Seq(), decoded.Seq())
	for _, column := range Columns {
		require.Equal(t, board.Column(column), decoded.Column(column), string(column))
	}
}

func TestEncodeBoard_EmptyColumnsAreArrays(t *testing.T) {
	data, err := EncodeBoard(NewBoard())
	require.NoError(t, err)
	require.JSONEq(t, `{"todo":[],"doing":[],"done":[],"meta":{"seq":0}}`, string(data))
}

func TestDecodeBoard_ColumnNotAnArray(t *testing.T) {
	for _, doc := range []string{
		`{"todo":{"id":"a"},"doing":[],"done":[]}`,
		`{"todo":"a","doing":[],"done":[]}`,
		`{"todo":null,"doing":[],"done":[]}`,
		`{"doing":[],"done":[]}`,
	} {
		_, err := DecodeBoard([]byte(doc), t0)
		require.ErrorIs(t, err, ErrCorruptBoard, doc)
	}
}

func TestDecodeBoard_RejectsCorruptDocuments(t *testing.T) {
	for name, doc := range map[string]string{
		"malformed":        `{"todo":[`,
		"not an object":    `[1,2,3]`,
		"missing id":       `{"todo":[{"title":"x"}],"doing":[],"done":[]}`,
		"missing title":    `{"todo":[{"id":"a"}],"doing":[],"done":[]}`,
		"unknown priority": `{"todo":[{"id":"a","title":"x","priority":"urgent"}],"doing":[],"done":[]}`,
		"duplicate id":     `{"todo":[{"id":"a","title":"x"}],"doing":[],"done":[{"id":"a","title":"y"}]}`,
	} {
		_, err := DecodeBoard([]byte(doc), t0)
		require.ErrorIs(t, err, ErrCorruptBoard, name)
	}
}

func TestDecodeBoard_ArrayIsAuthoritativeForColumn(t *testing.T) {
	doc := `{
		"todo": [
			{"id":"b","title":"B","column":"done","order":4},
			{"id":"a","title":"A","column":"todo","order":1}
		],
		"doing": [],
		"done": [],
		"meta": {"seq": 2}
	}`

	board, err := DecodeBoard([]byte(doc), t0)
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, laneIDs(board, ColumnTodo))
	requireDense(t, board)
}

func TestDecodeBoard_CoercesSeq(t *testing.T) {
	tasks := `"todo":[{"id":"a","key":"KB-012","title":"A"}],"doing":[{"id":"b","key":"KB-004","title":"B"}],"done":[]`

	for name, meta := range map[string]string{
		"missing":     ``,
		"not object":  `,"meta":"x"`,
		"negative":    `,"meta":{"seq":-3}`,
		"fraction":    `,"meta":{"seq":1.5}`,
		"string":      `,"meta":{"seq":"7"}`,
		"behind keys": `,"meta":{"seq":3}`,
	} {
		board, err := DecodeBoard([]byte(`{`+tasks+meta+`}`), t0)
		require.NoError(t, err, name)
		require.Equal(t, 12, board.Seq(), name)
	}

	board, err := DecodeBoard([]byte(`{`+tasks+`,"meta":{"seq":40}}`), t0)
	require.NoError(t, err)
	require.Equal(t, 40, board.Seq())
}

func TestDecodeBoard_LegacyFields(t *testing.T) {
	doc := `{"todo":[{"id":"a","content":"From content","priority":"High"}],"doing":[],"done":[]}`

	board, err := DecodeBoard([]byte(doc), t0)
	require.NoError(t, err)

	task, ok := board.Find("a")
	require.True(t, ok)
	require.Equal(t, "From content", task.Title)
	require.Equal(t, PriorityHigh, task.Priority)
	require.Equal(t, t0, task.CreatedAt)
	require.Equal(t, t0, task.UpdatedAt)
}

func TestEncodeBoard_TaskFields(t *testing.T) {
	board := newTestBoard(t, map[Column][]string{ColumnDoing: {"a"}})

	data, err := EncodeBoard(board)
	require.NoError(t, err)

	var doc struct {
		Doing []map[string]any `json:"doing"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Doing, 1)
	task := doc.Doing[0]
	for _, field := range []string{"id", "key", "title", "description", "priority", "assignee", "assigneeStyle", "column", "order", "createdAt", "updatedAt"} {
		require.Contains(t, task, field)
	}
	require.NotContains(t, task, "content")
	require.Equal(t, "doing", task["column"])
	require.Equal(t, "2026-03-02T09:00:00Z", task["createdAt"])
}
