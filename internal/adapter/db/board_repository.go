package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
	"github.com/gnsaved/kanban-board-showcase/internal/core/ports"
)

const loadBoardQuery = `SELECT value FROM board_state WHERE key = ?`

const saveBoardQuery = `
INSERT INTO board_state (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
`

// BoardRepository keeps board documents in a key/value table.
type BoardRepository struct {
	db *sqlx.DB
}

var _ ports.BoardStore = (*BoardRepository)(nil)

func NewBoardRepository(db *sqlx.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var value string
	if err := r.db.GetContext(ctx, &value, loadBoardQuery, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load board %q: %w", key, err)
	}
	return []byte(value), nil
}

func (r *BoardRepository) Save(ctx context.Context, key string, data []byte) error {
	if _, err := r.db.ExecContext(ctx, saveBoardQuery, key, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save board %q: %w", key, err)
	}
	return nil
}

func (r *BoardRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
