package ports

import (
	"context"
	"time"

	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
)

// BoardStore persists one serialized board document per key. Load returns
// domain.ErrStateNotFound when nothing was saved under the key yet.
type BoardStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Ping(ctx context.Context) error
}

// IDGenerator returns values unique within the process lifetime.
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// SeedSource builds the fixed demo board used when nothing valid was persisted.
type SeedSource interface {
	SeedBoard(ids IDGenerator, now time.Time) (*domain.Board, error)
}

type BoardService interface {
	Snapshot(ctx context.Context, filter domain.Filter) domain.Snapshot
	AddTask(ctx context.Context, input domain.NewTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	MoveTask(ctx context.Context, id string, target domain.Column) (domain.Task, error)
	CycleTask(ctx context.Context, id string) (domain.Task, error)
	Reconcile(ctx context.Context, observed domain.ObservedOrder) (domain.ReconcileResult, error)
	Reset(ctx context.Context) error
}
