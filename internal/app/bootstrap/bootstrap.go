package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dbadapter "github.com/gnsaved/kanban-board-showcase/internal/adapter/db"
	"github.com/gnsaved/kanban-board-showcase/internal/adapter/idgen"
	"github.com/gnsaved/kanban-board-showcase/internal/adapter/seed"
	"github.com/gnsaved/kanban-board-showcase/internal/adapter/storage"
	"github.com/gnsaved/kanban-board-showcase/internal/app/service"
	"github.com/gnsaved/kanban-board-showcase/internal/config"
	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
	"github.com/gnsaved/kanban-board-showcase/internal/core/ports"
)

// NewStore opens the configured storage backend. The returned close function
// is never nil.
func NewStore(cfg *config.Config) (ports.BoardStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.StorageDriverFile, "":
		store, err := storage.NewFileStore(cfg.StoragePath)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case config.StorageDriverSQLite:
		db, err := dbadapter.ConnectDB(cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open sqlite: %w", err)
		}
		return dbadapter.NewBoardRepository(db), db.Close, nil
	case config.StorageDriverMemory:
		return storage.NewMemoryStore(), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// NewBoardService wires the engine from configuration.
func NewBoardService(ctx context.Context, cfg *config.Config, store ports.BoardStore) (*service.BoardService, error) {
	ids, err := idgen.New(cfg.IDStrategy)
	if err != nil {
		return nil, err
	}
	policy, err := domain.ParseInsertPolicy(cfg.InsertPolicy)
	if err != nil {
		return nil, err
	}

	zap.L().Info("loading board",
		zap.String("driver", cfg.StorageDriver),
		zap.String("key", cfg.StorageKey),
		zap.String("insert_policy", string(policy)),
	)

	return service.NewBoardService(ctx, service.Dependencies{
		Store: store,
		IDs:   ids,
		Seed:  seed.YAMLSeed{},
	}, service.Options{
		StorageKey:   cfg.StorageKey,
		KeyPrefix:    cfg.KeyPrefix,
		InsertPolicy: policy,
		WIPLimit:     cfg.WIPLimitDoing,
	})
}
