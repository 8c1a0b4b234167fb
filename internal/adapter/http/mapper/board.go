package mapper

import (
	"time"

	"github.com/gnsaved/kanban-board-showcase/internal/adapter/http/dto"
	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:            task.ID,
		Key:           task.Key,
		Title:         task.Title,
		Description:   task.Description,
		Priority:      string(task.Priority),
		Assignee:      task.Assignee,
		AssigneeStyle: task.AssigneeStyle,
		Column:        string(task.Column),
		Order:         task.Order,
		CreatedAt:     task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToBoardResponse(snapshot domain.Snapshot) dto.BoardResponse {
	return dto.BoardResponse{
		Todo:  ToTaskItems(snapshot.Todo),
		Doing: ToTaskItems(snapshot.Doing),
		Done:  ToTaskItems(snapshot.Done),
		Counts: dto.BoardCounts{
			Todo:  len(snapshot.Todo),
			Doing: len(snapshot.Doing),
			Done:  len(snapshot.Done),
		},
		Filtering:   snapshot.Filtering,
		DragEnabled: !snapshot.Filtering,
		WIPLimit:    snapshot.WIPLimit,
		WIPBreached: snapshot.WIPBreached,
	}
}
