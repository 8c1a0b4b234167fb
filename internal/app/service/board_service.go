package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
	"github.com/gnsaved/kanban-board-showcase/internal/core/ports"
)

const (
	DefaultStorageKey = "kanban_board_v1"
	DefaultKeyPrefix  = "KB"
	DefaultWIPLimit   = 3
)

type Options struct {
	StorageKey   string
	KeyPrefix    string
	InsertPolicy domain.InsertPolicy
	WIPLimit     int
}

type Dependencies struct {
	Store ports.BoardStore
	IDs   ports.IDGenerator
	Seed  ports.SeedSource
	Clock ports.Clock
}

// BoardService owns the board. Every public method runs to completion under
// one lock, mutations are applied to a copy that must pass validation before
// it replaces the board, and the board is saved after each mutation.
type BoardService struct {
	mu    sync.Mutex
	board *domain.Board
	store ports.BoardStore
	ids   ports.IDGenerator
	clock ports.Clock
	opts  Options
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// NewBoardService loads the persisted board or falls back to the seed board.
// Missing or corrupt state is logged, never returned.
func NewBoardService(ctx context.Context, deps Dependencies, opts Options) (*BoardService, error) {
	if deps.Store == nil || deps.IDs == nil || deps.Seed == nil {
		return nil, errors.New("board service needs a store, an id generator and a seed source")
	}
	if deps.Clock == nil {
		deps.Clock = systemClock{}
	}
	if opts.StorageKey == "" {
		opts.StorageKey = DefaultStorageKey
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = DefaultKeyPrefix
	}
	if opts.InsertPolicy == "" {
		opts.InsertPolicy = domain.InsertHead
	}

	s := &BoardService{
		store: deps.Store,
		ids:   deps.IDs,
		clock: deps.Clock,
		opts:  opts,
	}

	board, err := s.load(ctx)
	if err != nil {
		seeded, seedErr := deps.Seed.SeedBoard(deps.IDs, s.clock.Now())
		if seedErr != nil {
			return nil, fmt.Errorf("failed to build seed board: %w", seedErr)
		}
		s.board = seeded
		s.persist(ctx, "seed")
		return s, nil
	}

	s.board = board
	return s, nil
}

func (s *BoardService) load(ctx context.Context) (*domain.Board, error) {
	data, err := s.store.Load(ctx, s.opts.StorageKey)
	if err != nil {
		if errors.Is(err, domain.ErrStateNotFound) {
			zap.L().Info("no saved board, using seed board", zap.String("key", s.opts.StorageKey))
		} else {
			zap.L().Warn("failed to read saved board, using seed board", zap.String("key", s.opts.StorageKey), zap.Error(err))
		}
		return nil, err
	}

	board, err := domain.DecodeBoard(data, s.clock.Now())
	if err != nil {
		zap.L().Warn("discarding corrupt board state", zap.String("key", s.opts.StorageKey), zap.Error(err))
		return nil, err
	}
	return board, nil
}

// persist saves the current board. Failures are logged and absorbed so the
// in-memory board stays usable.
func (s *BoardService) persist(ctx context.Context, op string) {
	data, err := domain.EncodeBoard(s.board)
	if err != nil {
		zap.L().Error("failed to encode board", zap.String("op", op), zap.Error(err))
		return
	}
	if err := s.store.Save(ctx, s.opts.StorageKey, data); err != nil {
		zap.L().Warn("failed to save board", zap.String("op", op), zap.String("key", s.opts.StorageKey), zap.Error(err))
	}
}

// apply runs mutate on a copy of the board. The copy replaces the board only
// if mutate succeeds and the result still satisfies the invariants.
// Callers hold s.mu.
func (s *BoardService) apply(ctx context.Context, op string, mutate func(board *domain.Board, now time.Time) error) error {
	next := s.board.Clone()
	if err := mutate(next, s.clock.Now()); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		zap.L().Error("rejecting mutation that breaks board invariants", zap.String("op", op), zap.Error(err))
		return err
	}
	s.board = next
	s.persist(ctx, op)
	return nil
}

func (s *BoardService) Snapshot(_ context.Context, filter domain.Filter) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Snapshot(filter, s.opts.WIPLimit)
}

func (s *BoardService) AddTask(ctx context.Context, input domain.NewTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var added domain.Task
	err := s.apply(ctx, "add", func(board *domain.Board, now time.Time) error {
		key := board.NextKey(s.opts.KeyPrefix)
		task, err := domain.NewTask(s.ids.NewID(), key, input, now)
		if err != nil {
			return err
		}
		added, err = board.Insert(task, task.Column, s.opts.InsertPolicy)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return added, nil
}

func (s *BoardService) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated domain.Task
	err := s.apply(ctx, "update", func(board *domain.Board, now time.Time) error {
		current, ok := board.Find(id)
		if !ok {
			return domain.ErrTaskNotFound
		}
		next, err := current.Apply(patch, now)
		if err != nil {
			return err
		}
		if err := board.Replace(next); err != nil {
			return err
		}
		updated, _ = board.Find(id)
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}
	return updated, nil
}

func (s *BoardService) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(ctx, "delete", func(board *domain.Board, _ time.Time) error {
		_, err := board.Remove(id)
		return err
	})
}

func (s *BoardService) MoveTask(ctx context.Context, id string, target domain.Column) (domain.Task, error) {
	if !target.Valid() {
		return domain.Task{}, fmt.Errorf("%w: %q", domain.ErrInvalidColumn, target)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.move(ctx, "move", id, func(domain.Column) domain.Column { return target })
}

// CycleTask moves the task to the next column: todo, doing, done, then todo again.
func (s *BoardService) CycleTask(ctx context.Context, id string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.move(ctx, "cycle", id, domain.Column.Next)
}

func (s *BoardService) move(ctx context.Context, op, id string, target func(domain.Column) domain.Column) (domain.Task, error) {
	var moved domain.Task
	err := s.apply(ctx, op, func(board *domain.Board, now time.Time) error {
		current, ok := board.Find(id)
		if !ok {
			return domain.ErrTaskNotFound
		}
		var err error
		moved, err = board.Move(id, target(current.Column), s.opts.InsertPolicy, now)
		return err
	})
	if err != nil {
		return domain.Task{}, err
	}
	return moved, nil
}

func (s *BoardService) Reconcile(ctx context.Context, observed domain.ObservedOrder) (domain.ReconcileResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result domain.ReconcileResult
	err := s.apply(ctx, "reconcile", func(board *domain.Board, now time.Time) error {
		var err error
		result, err = board.Reconcile(observed, now)
		return err
	})
	if err != nil {
		return domain.ReconcileResult{}, err
	}
	if len(result.Unknown) > 0 {
		zap.L().Debug("ignored unknown ids in observed order", zap.Strings("ids", result.Unknown))
	}
	return result, nil
}

// Reset empties the board but keeps the key counter.
func (s *BoardService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(ctx, "reset", func(board *domain.Board, _ time.Time) error {
		board.Reset()
		return nil
	})
}

var _ ports.BoardService = (*BoardService)(nil)
