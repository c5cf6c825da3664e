package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fincoach/internal/logging"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSummary() *models.FinancialSummary {
	s := models.NewFinancialSummary()
	s.Add(models.Transaction{
		Date:        "2024-01-15",
		Amount:      decimal.NewFromFloat(-50.25),
		Category:    "Food",
		Description: "Grocery Store",
	})
	s.Add(models.Transaction{
		Date:        "2024-01-16",
		Amount:      decimal.NewFromFloat(2600),
		Category:    "Income",
		Description: "Salary",
	})
	return s
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")

	err := New(logging.NewLogrusAdapter("error", "text")).WriteCSV(path, buildSummary())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Amount,Category,Description", lines[0])
	assert.Contains(t, lines[1], "Grocery Store")
	assert.Contains(t, lines[2], "2600")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")

	err := New(logging.NewLogrusAdapter("error", "text")).WriteJSON(path, buildSummary())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "total_income")
	assert.Contains(t, decoded, "transactions")
}
