package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gnsaved/kanban-board-showcase/internal/config"
	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
)

func TestBoardRepository(t *testing.T) {
	ctx := context.Background()
	db, err := ConnectDB(&config.Config{StoragePath: filepath.Join(t.TempDir(), "data")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewBoardRepository(db)
	require.NoError(t, repo.Ping(ctx))

	_, err = repo.Load(ctx, "kanban_board_v1")
	require.ErrorIs(t, err, domain.ErrStateNotFound)

	require.NoError(t, repo.Save(ctx, "kanban_board_v1", []byte(`{"todo":[]}`)))
	require.NoError(t, repo.Save(ctx, "kanban_board_v1", []byte(`{"todo":[1]}`)))
	require.NoError(t, repo.Save(ctx, "other", []byte(`{}`)))

	data, err := repo.Load(ctx, "kanban_board_v1")
	require.NoError(t, err)
	require.Equal(t, `{"todo":[1]}`, string(data))

	var rows int
	require.NoError(t, db.GetContext(ctx, &rows, `SELECT COUNT(*) FROM board_state`))
	require.Equal(t, 2, rows)
}

func TestOpen_ReusesExistingSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, NewBoardRepository(first).Save(ctx, "k", []byte("v")))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	data, err := NewBoardRepository(second).Load(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", string(data))
}
