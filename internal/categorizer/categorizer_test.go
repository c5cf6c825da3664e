package categorizer

import (
	"testing"

	"fincoach/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestCategorizer() *Categorizer {
	return NewDefault(logging.NewLogrusAdapter("error", "text"))
}

func TestCategorize(t *testing.T) {
	c := newTestCategorizer()

	tests := []struct {
		name        string
		description string
		amount      string
		expected    string
	}{
		{name: "rent", description: "Monthly Rent Payment", amount: "-1250.00", expected: "Housing"},
		{name: "rideshare", description: "Uber Trip Downtown", amount: "-23.40", expected: "Transportation"},
		{name: "groceries", description: "Whole Foods Grocery Run", amount: "-89.12", expected: "Food"},
		{name: "pharmacy", description: "CVS Pharmacy Refill", amount: "-15.00", expected: "Healthcare"},
		{name: "streaming", description: "NETFLIX.COM subscription", amount: "-15.99", expected: "Entertainment"},
		{name: "online shopping", description: "AMAZON Marketplace order", amount: "-45.00", expected: "Shopping"},
		{name: "loan", description: "Student Loan autopay", amount: "-320.00", expected: "Debt Payment"},
		{name: "paycheck", description: "ACME Corp Paycheck", amount: "2600.00", expected: "Income"},
		{name: "retirement", description: "401k contribution", amount: "-400.00", expected: "Savings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, _ := decimal.NewFromString(tt.amount)
			assert.Equal(t, tt.expected, c.Categorize(tt.description, amount))
		})
	}
}

func TestCategorizeRuleOrder(t *testing.T) {
	c := newTestCategorizer()

	// "gas" appears under both Housing (utility) and Transportation; the
	// earlier rule wins.
	got := c.Categorize("Shell Gas Station", decimal.NewFromFloat(-40))
	assert.Equal(t, "Housing", got)
}

func TestCategorizeFallbacks(t *testing.T) {
	c := newTestCategorizer()

	assert.Equal(t, "Income", c.Categorize("", decimal.NewFromFloat(100)))
	assert.Equal(t, "Other Expenses", c.Categorize("", decimal.NewFromFloat(-100)))
	assert.Equal(t, "Income", c.Categorize("xyzzy", decimal.NewFromFloat(50)))
	assert.Equal(t, "Other Expenses", c.Categorize("xyzzy", decimal.NewFromFloat(-50)))
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	c := newTestCategorizer()

	assert.Equal(t, "Food", c.Categorize("RESTAURANT LE BISTRO", decimal.NewFromFloat(-60)))
	assert.Equal(t, "Food", c.Categorize("restaurant le bistro", decimal.NewFromFloat(-60)))
}

func TestCategoryNames(t *testing.T) {
	c := newTestCategorizer()

	names := c.CategoryNames()
	assert.Equal(t, []string{
		"Housing", "Transportation", "Food", "Healthcare", "Entertainment",
		"Shopping", "Debt Payment", "Income", "Savings",
	}, names)
}
