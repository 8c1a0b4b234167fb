package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// taskDocument is the persisted shape of a task. Content is the title field
// of older saves and is only read.
type taskDocument struct {
	ID            string    `json:"id"`
	Key           string    `json:"key,omitempty"`
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	Description   string    `json:"description"`
	Priority      string    `json:"priority"`
	Assignee      string    `json:"assignee"`
	AssigneeStyle string    `json:"assigneeStyle"`
	Column        string    `json:"column"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type metaDocument struct {
	Seq int `json:"seq"`
}

type boardDocument struct {
	Todo  []taskDocument `json:"todo"`
	Doing []taskDocument `json:"doing"`
	Done  []taskDocument `json:"done"`
	Meta  metaDocument   `json:"meta"`
}

// EncodeBoard serializes the board as one JSON document with a key per column.
func EncodeBoard(b *Board) ([]byte, error) {
	doc := boardDocument{Meta: metaDocument{Seq: b.seq}}
	lanes := [columnCount]*[]taskDocument{&doc.Todo, &doc.Doing, &doc.Done}
	for ci, lane := range b.lanes {
		out := make([]taskDocument, 0, len(lane))
		for _, task := range lane {
			out = append(out, taskDocument{
				ID:            task.ID,
				Key:           task.Key,
				Title:         task.Title,
				Description:   task.Description,
				Priority:      string(task.Priority),
				Assignee:      task.Assignee,
				AssigneeStyle: task.AssigneeStyle,
				Column:        string(Columns[ci]),
				Order:         task.Order,
				CreatedAt:     task.CreatedAt.UTC(),
				UpdatedAt:     task.UpdatedAt.UTC(),
			})
		}
		*lanes[ci] = out
	}
	return json.Marshal(doc)
}

// DecodeBoard parses and validates a persisted board. Every column must be a
// JSON array, every task needs an id and a title, priorities must be known and
// ids unique; anything else is ErrCorruptBoard. A missing or malformed
// meta.seq is coerced from the highest key number on the board. Missing
// timestamps are filled with now.
func DecodeBoard(data []byte, now time.Time) (*Board, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBoard, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrCorruptBoard)
	}

	board := NewBoard()
	maxKey := 0
	for ci, column := range Columns {
		value, ok := raw[string(column)]
		if !ok || !isJSONArray(value) {
			return nil, fmt.Errorf("%w: %s is not an array", ErrCorruptBoard, column)
		}
		var docs []taskDocument
		if err := json.Unmarshal(value, &docs); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptBoard, column, err)
		}
		lane := make([]Task, 0, len(docs))
		for _, doc := range docs {
			task, err := doc.toTask(column, now)
			if err != nil {
				return nil, err
			}
			if n := keyNumber(task.Key); n > maxKey {
				maxKey = n
			}
			lane = append(lane, task)
		}
		board.lanes[ci] = lane
	}

	board.seq = decodeSeq(raw["meta"])
	board.RaiseSeq(maxKey)
	board.Renormalize()

	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBoard, err)
	}
	return board, nil
}

func (d taskDocument) toTask(column Column, now time.Time) (Task, error) {
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return Task{}, fmt.Errorf("%w: task without id in %s", ErrCorruptBoard, column)
	}
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = strings.TrimSpace(d.Content)
	}
	if title == "" {
		return Task{}, fmt.Errorf("%w: task %s has no title", ErrCorruptBoard, id)
	}

	priority := PriorityMedium
	if strings.TrimSpace(d.Priority) != "" {
		parsed, err := ParsePriority(d.Priority)
		if err != nil {
			return Task{}, fmt.Errorf("%w: task %s: %v", ErrCorruptBoard, id, err)
		}
		priority = parsed
	}

	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := d.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	assignee := strings.TrimSpace(d.Assignee)
	return Task{
		ID:            id,
		Key:           strings.TrimSpace(d.Key),
		Title:         title,
		Description:   strings.TrimSpace(d.Description),
		Priority:      priority,
		Assignee:      assignee,
		AssigneeStyle: AssigneeStyle(assignee),
		Column:        column,
		Order:         d.Order,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

func decodeSeq(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var meta struct {
		Seq json.Number `json:"seq"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return 0
	}
	seq, err := meta.Seq.Int64()
	if err != nil || seq < 0 {
		return 0
	}
	return int(seq)
}

func isJSONArray(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) > 0 && trimmed[0] == '['
}
