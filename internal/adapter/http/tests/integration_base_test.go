//go:build integration
// +build integration

package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/gnsaved/kanban-board-showcase/internal/adapter/db"
	"github.com/gnsaved/kanban-board-showcase/pkg/translator"
)

const translationFolder = "../../../../pkg/translator/translation"

type IntegrationSuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	dbPath string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	dir, err := os.MkdirTemp("", "board-integration-*")
	s.Require().NoError(err)
	s.dbPath = filepath.Join(dir, "board.db")

	db, err := dbadapter.Open(s.dbPath)
	s.Require().NoError(err)
	s.DB = db
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
	if s.dbPath != "" {
		s.Require().NoError(os.RemoveAll(filepath.Dir(s.dbPath)))
	}
}

// ResetDatabase drops every saved board so the next service starts from the seed.
func (s *IntegrationSuiteBase) ResetDatabase() {
	resetBoardState(s.T(), s.DB)
}

func resetBoardState(t *testing.T, db *sqlx.DB) {
	t.Helper()

	_, err := db.Exec(`DELETE FROM board_state`)
	if err != nil {
		t.Fatalf("failed to reset board_state: %v", err)
	}
}
