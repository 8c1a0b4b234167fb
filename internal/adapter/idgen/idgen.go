package idgen

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/gnsaved/kanban-board-showcase/internal/core/ports"
)

const (
	StrategyUUID = "uuid"
	StrategyULID = "ulid"
)

type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// ULID ids sort by creation time, which keeps saved documents readable.
type ULID struct{}

func (ULID) NewID() string {
	return ulid.Make().String()
}

func New(strategy string) (ports.IDGenerator, error) {
	switch strategy {
	case "", StrategyUUID:
		return UUID{}, nil
	case StrategyULID:
		return ULID{}, nil
	}
	return nil, fmt.Errorf("unknown id strategy %q", strategy)
}
