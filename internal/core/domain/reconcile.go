package domain

import (
	"fmt"
	"time"
)

// ObservedOrder is the arrangement a user left on screen after a drag: the
// ids of every column, top to bottom.
type ObservedOrder map[Column][]string

func (o ObservedOrder) validate() error {
	seen := make(map[string]Column)
	for column, ids := range o {
		if !column.Valid() {
			return fmt.Errorf("%w: unknown column %q", ErrInvalidObservation, column)
		}
		for _, id := range ids {
			if previous, dup := seen[id]; dup {
				return fmt.Errorf("%w: id %s observed in %s and %s", ErrInvalidObservation, id, previous, column)
			}
			seen[id] = column
		}
	}
	return nil
}

type ReconcileResult struct {
	// Changed counts tasks whose column or order was rewritten.
	Changed int
	// Preserved counts board tasks the observation did not mention.
	Preserved int
	// Unknown lists observed ids that are not on the board.
	Unknown []string
}

// Reconcile rewrites the board to match the observed arrangement. Observed ids
// unknown to the board are ignored. Board tasks missing from the observation
// stay in their previous column after the observed ones, in their previous
// relative order, so reconciling never deletes a task. Only tasks whose
// column or order changed get a new UpdatedAt, which keeps the operation
// idempotent.
func (b *Board) Reconcile(observed ObservedOrder, now time.Time) (ReconcileResult, error) {
	var result ReconcileResult
	if err := observed.validate(); err != nil {
		return result, err
	}

	index := make(map[string]Task, b.Len())
	for _, lane := range b.lanes {
		for _, task := range lane {
			index[task.ID] = task
		}
	}

	var next [columnCount][]Task
	placed := make(map[string]struct{}, len(index))
	for ci, column := range Columns {
		for _, id := range observed[column] {
			task, ok := index[id]
			if !ok {
				result.Unknown = append(result.Unknown, id)
				continue
			}
			placed[id] = struct{}{}
			next[ci] = append(next[ci], task)
		}
	}

	for ci, lane := range b.lanes {
		for _, task := range lane {
			if _, ok := placed[task.ID]; ok {
				continue
			}
			next[ci] = append(next[ci], task)
			result.Preserved++
		}
	}

	for ci, column := range Columns {
		for i := range next[ci] {
			task := &next[ci][i]
			if task.Column == column && task.Order == i {
				continue
			}
			task.Column = column
			task.Order = i
			task.UpdatedAt = now
			result.Changed++
		}
	}

	b.lanes = next
	return result, nil
}
