package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBoardInsert_HeadAndTail(t *testing.T) {
	board := newTestBoard(t, map[Column][]string{ColumnTodo: {"a", "b"}})

	head, err := NewTask("h", "", NewTaskInput{Title: "h"}, t0)
	require.NoError(t, err)
	placed, err := board.Insert(head, ColumnTodo, InsertHead)
	require.NoError(t, err)
	require.Equal(t, 0, placed.Order)

	tail, err := NewTask("t", "", NewTaskInput{Title: "t"}, t0)
	require.NoError(t, err)
	placed, err = board.Insert(tail, ColumnTodo, InsertTail)
	require.NoError(t, err)
	require.Equal(t, 3, placed.Order)

	require.Equal(t, []string{"h", "a", "b", "t"}, laneIDs(board, ColumnTodo))
	requireDense(t, board)
}

func TestBoardInsert_RejectsDuplicateID(t *testing.T) {
	board := newTestBoard(t, map[Column][]string{ColumnTodo: {"a"}})

	dup, err := NewTask("a", "", NewTaskInput{Title: "again"}, t0)
	require.NoError(t, err)
	_, err = board.Insert(dup, ColumnDone, InsertHead)
	require.ErrorIs(t, err, ErrDuplicateTask)
	require.Empty(t, board.Column(ColumnDone))
}

// Scenario: deleting the first of two doing tasks renumbers the survivor.
func TestBoardRemove_RenormalizesColumn(t *testing.T) {
	board := newTestBoard(t, map[Column][]string{ColumnDoing: {"a", "b"}})

	removed, err := board.Remove("a")
	require.NoError(t, err)
	require.Equal(t, "a", removed.ID)

	doing := board.Column(ColumnDoing)
	require.Len(t, doing, 1)
	require.Equal(t, "b", doing[0].ID)
	require.Equal(t, 0, doing[0].Order)

	_, err = board.Remove("a")
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestBoardMove(t *testing.T) {
	board := newTestBoard(t, map[Column][]string{
		ColumnTodo:  {"a", "b"},
		ColumnDoing: {"c"},
	})
	later := t0.Add(time.Minute)

	moved, err := board.Move("b", ColumnDoing, InsertHead, later)
	require.NoError(t, err)
	require.Equal(t, ColumnDoing, moved.Column)
	require.Equal(t, 0, moved.Order)
	require.Equal(t, later, moved.UpdatedAt)

	require.Equal(t, []string{"a"}, laneIDs(board, ColumnTodo))
	require.Equal(t, []string{"b", "c"}, laneIDs(board, ColumnDoing))
	requireDense(t, board)

	_, err = board.Move("b", Column("later"), InsertHead, later)
	require.ErrorIs(t, err, ErrInvalidColumn)
	_, err = board.Move("zzz", ColumnDone, InsertHead, later)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestBoardClone_IsIndependent(t *testing.T) {
	board := newTestBoard(t, map[Column][]string{ColumnTodo: {"a", "b"}})
	clone := board.Clone()

	_, err := clone.Remove("a")
	require.NoError(t, err)
	clone.NextKey("KB")

	require.Equal(t, []string{"a", "b"}, laneIDs(board, ColumnTodo))
	require.Equal(t, 2, board.Seq())
	require.Equal(t, 3, clone.Seq())
}

func TestBoardReset_KeepsSeq(t *testing.T) {
	board := newTestBoard(t, map[Column][]string{ColumnTodo: {"a"}, ColumnDone: {"b"}})
	board.Reset()

	require.Zero(t, board.Len())
	require.Equal(t, 2, board.Seq())
	require.Equal(t, "KB-003", board.NextKey("KB"))
}

func TestBoardRenormalize_StableOnTies(t *testing.T) {
	board := NewBoard()
	board.lanes[ColumnTodo.index()] = []Task{
		{ID: "x", Order: 5},
		{ID: "y", Order: 1},
		{ID: "z", Order: 5},
		{ID: "w", Order: -2},
	}

	board.Renormalize()

	require.Equal(t, []string{"w", "y", "x", "z"}, laneIDs(board, ColumnTodo))
	requireDense(t, board)
}

func TestBoardValidate(t *testing.T) {
	board := newTestBoard(t, map[Column][]string{ColumnTodo: {"a", "b"}})

	broken := board.Clone()
	broken.lanes[ColumnTodo.index()][1].Order = 7
	require.ErrorIs(t, broken.Validate(), ErrBrokenInvariant)

	broken = board.Clone()
	broken.lanes[ColumnTodo.index()][0].Column = ColumnDone
	require.ErrorIs(t, broken.Validate(), ErrBrokenInvariant)

	broken = board.Clone()
	broken.lanes[ColumnDone.index()] = []Task{{ID: "a", Column: ColumnDone}}
	require.ErrorIs(t, broken.Validate(), ErrDuplicateTask)
}

func TestParseInsertPolicy(t *testing.T) {
	policy, err := ParseInsertPolicy("Tail")
	require.NoError(t, err)
	require.Equal(t, InsertTail, policy)

	_, err = ParseInsertPolicy("middle")
	require.Error(t, err)
}
