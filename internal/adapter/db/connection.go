package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/gnsaved/kanban-board-showcase/internal/config"
)

const databaseFile = "board.db"

const schema = `
CREATE TABLE IF NOT EXISTS board_state (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL
);
`

// ConnectDB opens the embedded SQLite database under the storage path and
// makes sure the schema exists.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	if err := os.MkdirAll(conf.StoragePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return Open(filepath.Join(conf.StoragePath, databaseFile))
}

func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection keeps writes ordered.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
