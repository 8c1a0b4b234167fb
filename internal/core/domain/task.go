package domain

import (
	"fmt"
	"strings"
	"time"
)

type Column string

const (
	ColumnTodo  Column = "todo"
	ColumnDoing Column = "doing"
	ColumnDone  Column = "done"
)

const columnCount = 3

// Columns lists the board columns in display order.
var Columns = [columnCount]Column{ColumnTodo, ColumnDoing, ColumnDone}

func ParseColumn(value string) (Column, error) {
	column := Column(strings.ToLower(strings.TrimSpace(value)))
	if !column.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColumn, value)
	}
	return column, nil
}

func (c Column) Valid() bool {
	return c.index() >= 0
}

// Next returns the column a task cycles to: todo -> doing -> done -> todo.
func (c Column) Next() Column {
	i := c.index()
	if i < 0 {
		return ColumnTodo
	}
	return Columns[(i+1)%columnCount]
}

func (c Column) index() int {
	for i, column := range Columns {
		if column == c {
			return i
		}
	}
	return -1
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority accepts any casing ("High" and "high" are the same priority).
func ParsePriority(value string) (Priority, error) {
	priority := Priority(strings.ToLower(strings.TrimSpace(value)))
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return priority, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, value)
}

func (p Priority) Valid() bool {
	_, err := ParsePriority(string(p))
	return err == nil
}

type Task struct {
	ID            string
	Key           string
	Title         string
	Description   string
	Priority      Priority
	Assignee      string
	AssigneeStyle string
	Column        Column
	Order         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type NewTaskInput struct {
	Title       string
	Description string
	Priority    Priority
	Assignee    string
	Column      Column
}

// TaskPatch carries only the fields to change; nil fields are left alone.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Assignee    *string
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil && p.Assignee == nil
}

// NewTask validates the input and builds a task that is not yet placed on a board.
func NewTask(id, key string, in NewTaskInput, now time.Time) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, ErrInvalidTask
	}
	if strings.TrimSpace(id) == "" {
		return Task{}, fmt.Errorf("%w: empty id", ErrInvalidTask)
	}

	column := in.Column
	if column == "" {
		column = ColumnTodo
	}
	if !column.Valid() {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
	}

	priority := in.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	priority, err := ParsePriority(string(priority))
	if err != nil {
		return Task{}, err
	}

	assignee := strings.TrimSpace(in.Assignee)
	return Task{
		ID:            id,
		Key:           key,
		Title:         title,
		Description:   strings.TrimSpace(in.Description),
		Priority:      priority,
		Assignee:      assignee,
		AssigneeStyle: AssigneeStyle(assignee),
		Column:        column,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Apply merges the patch into a copy of the task. ID, key, creation time,
// column and order never change here.
func (t Task) Apply(patch TaskPatch, now time.Time) (Task, error) {
	next := t
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return Task{}, ErrInvalidTask
		}
		next.Title = title
	}
	if patch.Description != nil {
		next.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Priority != nil {
		priority, err := ParsePriority(string(*patch.Priority))
		if err != nil {
			return Task{}, err
		}
		next.Priority = priority
	}
	if patch.Assignee != nil {
		next.Assignee = strings.TrimSpace(*patch.Assignee)
	}
	next.AssigneeStyle = AssigneeStyle(next.Assignee)
	next.UpdatedAt = now
	return next, nil
}

// AssigneeStyle picks one of four avatar styles from the assignee name.
func AssigneeStyle(name string) string {
	switch len(name) % 4 {
	case 1:
		return "alt1"
	case 2:
		return "alt2"
	case 3:
		return "alt3"
	default:
		return ""
	}
}

// FormatKey renders a human readable key such as KB-007.
func FormatKey(prefix string, seq int) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}

// keyNumber extracts the numeric suffix of a key, or 0 when it has none.
func keyNumber(key string) int {
	i := strings.LastIndex(key, "-")
	if i < 0 || i == len(key)-1 {
		return 0
	}
	n := 0
	for _, r := range key[i+1:] {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
