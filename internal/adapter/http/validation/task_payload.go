package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gnsaved/kanban-board-showcase/internal/adapter/http/dto"
	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
)

var (
	ErrInvalidTaskPayload  = errors.New("invalid task payload")
	ErrInvalidOrderPayload = errors.New("invalid order payload")
)

func BuildNewTaskInput(req dto.CreateTaskRequest) (domain.NewTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.NewTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.NewTaskInput{
		Title:    title,
		Priority: domain.PriorityMedium,
		Column:   domain.ColumnTodo,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Assignee != nil {
		input.Assignee = *req.Assignee
	}
	if req.Priority != nil && strings.TrimSpace(*req.Priority) != "" {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			return domain.NewTaskInput{}, err
		}
		input.Priority = priority
	}
	if req.Column != nil && strings.TrimSpace(*req.Column) != "" {
		column, err := domain.ParseColumn(*req.Column)
		if err != nil {
			return domain.NewTaskInput{}, err
		}
		input.Column = column
	}

	return input, nil
}

func BuildTaskPatch(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.TaskPatch{}, ErrInvalidTaskPayload
	}

	for _, field := range []string{"title", "priority"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
	}

	var patch domain.TaskPatch
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.TaskPatch{}, ErrInvalidTaskPayload
		}
		patch.Title = &value
	}

	if req.Priority != nil {
		priority, err := domain.ParsePriority(*req.Priority)
		if err != nil {
			return domain.TaskPatch{}, err
		}
		patch.Priority = &priority
	}

	// A JSON null clears the optional text fields.
	if hasJSONField(raw, "description") {
		value := ""
		if req.Description != nil {
			value = *req.Description
		}
		patch.Description = &value
	}
	if hasJSONField(raw, "assignee") {
		value := ""
		if req.Assignee != nil {
			value = *req.Assignee
		}
		patch.Assignee = &value
	}

	return patch, nil
}

// BuildObservedOrder requires all three columns: a reorder must describe the
// whole board, never a partial view.
func BuildObservedOrder(req dto.ReorderRequest, raw map[string]json.RawMessage) (domain.ObservedOrder, error) {
	for _, column := range domain.Columns {
		value, ok := raw[string(column)]
		if !ok || isJSONNull(value) {
			return nil, ErrInvalidOrderPayload
		}
	}
	for field := range raw {
		if _, err := domain.ParseColumn(field); err != nil {
			return nil, ErrInvalidOrderPayload
		}
	}

	return domain.ObservedOrder{
		domain.ColumnTodo:  req.Todo,
		domain.ColumnDoing: req.Doing,
		domain.ColumnDone:  req.Done,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "assignee")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
