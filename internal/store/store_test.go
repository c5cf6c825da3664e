package store

import (
	"os"
	"path/filepath"
	"testing"

	"fincoach/internal/logging"
	"fincoach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewLogrusAdapter("error", "text")
}

// chdir stands in for t.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestSaveAndLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	s := NewRuleStore(path, testLogger())

	rules := []models.CategoryRule{
		{Name: "Housing", Keywords: []string{"rent", "mortgage"}},
		{Name: "Food", Keywords: []string{"grocery"}},
	}
	require.NoError(t, s.SaveRules(rules))

	loaded, err := s.LoadRules()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Housing", loaded[0].Name)
	assert.Equal(t, []string{"rent", "mortgage"}, loaded[0].Keywords)
	assert.Equal(t, "Food", loaded[1].Name)
}

func TestLoadRulesMissingFile(t *testing.T) {
	s := NewRuleStore(filepath.Join(t.TempDir(), "nope.yaml"), testLogger())

	_, err := s.LoadRules()
	assert.Error(t, err)
}

func TestLoadRulesMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [not: valid: yaml"), 0o644))

	_, err := NewRuleStore(path, testLogger()).LoadRules()
	assert.Error(t, err)
}

func TestFindConfigFileInConfigDir(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("config", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("config", "categories.yaml"), []byte("categories: []\n"), 0o644))

	s := NewRuleStore("", testLogger())
	path, err := s.FindConfigFile("categories.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("config", "categories.yaml"), path)
}

func TestLoadDefaultRulesFile(t *testing.T) {
	// The shipped config/categories.yaml must stay loadable and ordered.
	chdir(t, filepath.Join("..", ".."))

	s := NewRuleStore("categories.yaml", testLogger())
	rules, err := s.LoadRules()
	require.NoError(t, err)
	require.NotEmpty(t, rules)
	assert.Equal(t, "Housing", rules[0].Name)
}
