// Package seed provides the demo board used when no valid board was saved.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
	"github.com/gnsaved/kanban-board-showcase/internal/core/ports"
)

//go:embed board.yaml
var defaultBoard []byte

type seedTask struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
	Assignee    string `yaml:"assignee"`
}

type seedDocument struct {
	Seq     int                   `yaml:"seq"`
	Columns map[string][]seedTask `yaml:"columns"`
}

// YAMLSeed builds a board from a YAML document. The zero value uses the
// embedded demo board.
type YAMLSeed struct {
	Document []byte
}

var _ ports.SeedSource = YAMLSeed{}

func (s YAMLSeed) SeedBoard(ids ports.IDGenerator, now time.Time) (*domain.Board, error) {
	raw := s.Document
	if raw == nil {
		raw = defaultBoard
	}

	var doc seedDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed board: %w", err)
	}

	for name := range doc.Columns {
		if _, err := domain.ParseColumn(name); err != nil {
			return nil, err
		}
	}

	board := domain.NewBoard()
	for _, column := range domain.Columns {
		for _, item := range doc.Columns[string(column)] {
			task, err := domain.NewTask(ids.NewID(), item.Key, domain.NewTaskInput{
				Title:       item.Title,
				Description: item.Description,
				Priority:    domain.Priority(item.Priority),
				Assignee:    item.Assignee,
				Column:      column,
			}, now)
			if err != nil {
				return nil, fmt.Errorf("invalid seed task %q: %w", item.Key, err)
			}
			if _, err := board.Insert(task, column, domain.InsertTail); err != nil {
				return nil, err
			}
		}
	}
	board.RaiseSeq(doc.Seq)
	return board, nil
}
