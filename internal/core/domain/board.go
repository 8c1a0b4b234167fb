package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// InsertPolicy decides which end of a column receives new and moved tasks.
type InsertPolicy string

const (
	InsertHead InsertPolicy = "head"
	InsertTail InsertPolicy = "tail"
)

func ParseInsertPolicy(value string) (InsertPolicy, error) {
	switch policy := InsertPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case InsertHead, InsertTail:
		return policy, nil
	}
	return "", fmt.Errorf("unknown insert policy %q", value)
}

// Board holds the three ordered columns and the key sequence counter.
// The zero value is an empty board.
type Board struct {
	lanes [columnCount][]Task
	seq   int
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) Seq() int {
	return b.seq
}

// RaiseSeq moves the key counter forward to n. It never moves it back.
func (b *Board) RaiseSeq(n int) {
	if n > b.seq {
		b.seq = n
	}
}

// NextKey advances the key counter and returns the key for the new value.
func (b *Board) NextKey(prefix string) string {
	b.seq++
	return FormatKey(prefix, b.seq)
}

func (b *Board) Clone() *Board {
	next := &Board{seq: b.seq}
	for i, lane := range b.lanes {
		if lane != nil {
			next.lanes[i] = append(make([]Task, 0, len(lane)), lane...)
		}
	}
	return next
}

// Column returns a copy of the tasks in the column, in order.
func (b *Board) Column(column Column) []Task {
	i := column.index()
	if i < 0 {
		return nil
	}
	return append([]Task{}, b.lanes[i]...)
}

func (b *Board) Len() int {
	n := 0
	for _, lane := range b.lanes {
		n += len(lane)
	}
	return n
}

func (b *Board) Find(id string) (Task, bool) {
	ci, ti, ok := b.locate(id)
	if !ok {
		return Task{}, false
	}
	return b.lanes[ci][ti], true
}

func (b *Board) locate(id string) (int, int, bool) {
	for ci, lane := range b.lanes {
		for ti := range lane {
			if lane[ti].ID == id {
				return ci, ti, true
			}
		}
	}
	return 0, 0, false
}

// Insert places the task at the boundary of the column chosen by policy and
// renumbers that column.
func (b *Board) Insert(task Task, column Column, policy InsertPolicy) (Task, error) {
	ci := column.index()
	if ci < 0 {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}
	if _, _, exists := b.locate(task.ID); exists {
		return Task{}, fmt.Errorf("%w: %s", ErrDuplicateTask, task.ID)
	}

	lane := b.lanes[ci]
	task.Column = column
	if policy == InsertTail {
		task.Order = 0
		if n := len(lane); n > 0 {
			task.Order = lane[n-1].Order + 1
		}
		lane = append(lane, task)
	} else {
		task.Order = 0
		if len(lane) > 0 {
			task.Order = lane[0].Order - 1
		}
		lane = append([]Task{task}, lane...)
	}
	b.lanes[ci] = lane
	b.renormalizeLane(ci)

	placed, _ := b.Find(task.ID)
	return placed, nil
}

// Replace swaps a task for its updated version in the same position.
func (b *Board) Replace(task Task) error {
	ci, ti, ok := b.locate(task.ID)
	if !ok {
		return ErrTaskNotFound
	}
	current := b.lanes[ci][ti]
	task.Column = current.Column
	task.Order = current.Order
	b.lanes[ci][ti] = task
	return nil
}

// Remove deletes the task and renormalizes its former column.
func (b *Board) Remove(id string) (Task, error) {
	ci, ti, ok := b.locate(id)
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	lane := b.lanes[ci]
	removed := lane[ti]
	b.lanes[ci] = append(lane[:ti:ti], lane[ti+1:]...)
	b.renormalizeLane(ci)
	return removed, nil
}

// Move takes the task out of its column and inserts it at the boundary of
// the target column.
func (b *Board) Move(id string, target Column, policy InsertPolicy, now time.Time) (Task, error) {
	if !target.Valid() {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidColumn, target)
	}
	task, err := b.Remove(id)
	if err != nil {
		return Task{}, err
	}
	task.UpdatedAt = now
	return b.Insert(task, target, policy)
}

// Reset empties every column. The key counter is kept so keys are never reused.
func (b *Board) Reset() {
	b.lanes = [columnCount][]Task{}
}

// Renormalize stable-sorts every column by order and rewrites the orders as
// 0..n-1.
func (b *Board) Renormalize() {
	for ci := range b.lanes {
		b.renormalizeLane(ci)
	}
}

func (b *Board) renormalizeLane(ci int) {
	lane := b.lanes[ci]
	sort.SliceStable(lane, func(i, j int) bool {
		return lane[i].Order < lane[j].Order
	})
	for i := range lane {
		lane[i].Order = i
		lane[i].Column = Columns[ci]
	}
}

// Validate checks the board invariants: a task lives in exactly one column,
// its column field names that column, ids are unique and orders are dense.
func (b *Board) Validate() error {
	seen := make(map[string]Column, b.Len())
	for ci, lane := range b.lanes {
		column := Columns[ci]
		for i, task := range lane {
			if task.ID == "" {
				return fmt.Errorf("%w: empty id in %s", ErrInvalidTask, column)
			}
			if previous, dup := seen[task.ID]; dup {
				return fmt.Errorf("%w: %s in %s and %s", ErrDuplicateTask, task.ID, previous, column)
			}
			seen[task.ID] = column
			if task.Column != column {
				return fmt.Errorf("%w: task %s stored in %s claims %s", ErrBrokenInvariant, task.ID, column, task.Column)
			}
			if task.Order != i {
				return fmt.Errorf("%w: task %s in %s has order %d at position %d", ErrBrokenInvariant, task.ID, column, task.Order, i)
			}
		}
	}
	return nil
}
