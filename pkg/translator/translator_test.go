package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnsaved/kanban-board-showcase/pkg/translator"
)

func initFromDir(t *testing.T, files map[string]string) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
}

func TestInitTranslator_LoadsMessages(t *testing.T) {
	initFromDir(t, map[string]string{
		"en.toml":   `taskNotFound = "Task not found"`,
		"fr.toml":   `taskNotFound = "Tâche introuvable"`,
		"notes.txt": "ignored",
	})

	en := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)
	msg, err := en.Localize(&i18n.LocalizeConfig{MessageID: "taskNotFound"})
	require.NoError(t, err)
	assert.Equal(t, "Task not found", msg)

	fr := i18n.NewLocalizer(translator.Translator, translator.LanguageFr)
	msg, err = fr.Localize(&i18n.LocalizeConfig{MessageID: "taskNotFound"})
	require.NoError(t, err)
	assert.Equal(t, "Tâche introuvable", msg)
}

func TestInitTranslator_ShippedTranslationsAreComplete(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	for _, id := range []string{"invalidTaskPayload", "taskNotFound", "invalidColumn", "filteredReorder"} {
		for _, lang := range []string{translator.LanguageEn, translator.LanguageFr} {
			_, err := i18n.NewLocalizer(translator.Translator, lang).Localize(&i18n.LocalizeConfig{MessageID: id})
			assert.NoError(t, err, "%s missing in %s", id, lang)
		}
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	assert.NotNil(t, translator.Translator)
}

func TestMatchLanguage(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  t.TempDir(),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	assert.Equal(t, translator.LanguageFr, translator.MatchLanguage("fr-CA,fr;q=0.9,en;q=0.8"))
	assert.Equal(t, translator.LanguageEn, translator.MatchLanguage("en-US"))
	assert.Equal(t, translator.LanguageEn, translator.MatchLanguage("de"))
	assert.Equal(t, translator.LanguageEn, translator.MatchLanguage(""))
}
