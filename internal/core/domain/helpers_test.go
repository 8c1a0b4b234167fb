package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// newTestBoard builds a board whose tasks have ids equal to their titles,
// appended in the given order.
func newTestBoard(t *testing.T, lanes map[Column][]string) *Board {
	t.Helper()

	board := NewBoard()
	for _, column := range Columns {
		for _, id := range lanes[column] {
			task, err := NewTask(id, board.NextKey("KB"), NewTaskInput{Title: id, Column: column}, t0)
			require.NoError(t, err)
			_, err = board.Insert(task, column, InsertTail)
			require.NoError(t, err)
		}
	}
	require.NoError(t, board.Validate())
	return board
}

func laneIDs(b *Board, column Column) []string {
	ids := []string{}
	for _, task := range b.Column(column) {
		ids = append(ids, task.ID)
	}
	return ids
}

func requireDense(t *testing.T, b *Board) {
	t.Helper()
	for _, column := range Columns {
		for i, task := range b.Column(column) {
			require.Equal(t, i, task.Order, fmt.Sprintf("%s position %d", column, i))
			require.Equal(t, column, task.Column)
		}
	}
}
