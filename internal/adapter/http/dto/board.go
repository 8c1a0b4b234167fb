package dto

type TaskItem struct {
	ID            string `json:"id"`
	Key           string `json:"key,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	Assignee      string `json:"assignee"`
	AssigneeStyle string `json:"assigneeStyle"`
	Column        string `json:"column"`
	Order         int    `json:"order"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type BoardCounts struct {
	Todo  int `json:"todo"`
	Doing int `json:"doing"`
	Done  int `json:"done"`
}

type BoardResponse struct {
	Todo        []TaskItem  `json:"todo"`
	Doing       []TaskItem  `json:"doing"`
	Done        []TaskItem  `json:"done"`
	Counts      BoardCounts `json:"counts"`
	Filtering   bool        `json:"filtering"`
	DragEnabled bool        `json:"dragEnabled"`
	WIPLimit    int         `json:"wipLimit"`
	WIPBreached bool        `json:"wipBreached"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,max=16"`
	Assignee    *string `json:"assignee" binding:"omitempty,max=255"`
	Column      *string `json:"column" binding:"omitempty,max=16"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Assignee    *string `json:"assignee"`
}

type MoveTaskRequest struct {
	Column string `json:"column" binding:"required"`
}

// ReorderRequest is the arrangement left on screen after a drag, top to
// bottom per column.
type ReorderRequest struct {
	Todo  []string `json:"todo"`
	Doing []string `json:"doing"`
	Done  []string `json:"done"`
}
