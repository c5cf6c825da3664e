package categorizer

import "fincoach/internal/models"

// DefaultRules returns the built-in category rule table. It mirrors
// config/categories.yaml and serves as the fallback when no rules file can
// be found.
func DefaultRules() []models.CategoryRule {
	return []models.CategoryRule{
		{Name: "Housing", Keywords: []string{"rent", "mortgage", "property tax", "hoa", "utilities", "electric", "gas", "water", "internet", "cable"}},
		{Name: "Transportation", Keywords: []string{"gas", "fuel", "uber", "lyft", "taxi", "bus", "train", "car payment", "auto insurance", "parking"}},
		{Name: "Food", Keywords: []string{"grocery", "restaurant", "food", "dining", "coffee", "lunch", "dinner", "breakfast", "fast food"}},
		{Name: "Healthcare", Keywords: []string{"medical", "doctor", "hospital", "pharmacy", "health insurance", "dental", "vision"}},
		{Name: "Entertainment", Keywords: []string{"movie", "netflix", "spotify", "gaming", "concert", "theater", "streaming"}},
		{Name: "Shopping", Keywords: []string{"amazon", "target", "walmart", "mall", "store", "clothing", "electronics"}},
		{Name: "Debt Payment", Keywords: []string{"credit card", "loan payment", "student loan", "debt", "financing"}},
		{Name: "Income", Keywords: []string{"salary", "paycheck", "bonus", "refund", "deposit", "income", "wages"}},
		{Name: "Savings", Keywords: []string{"savings", "investment", "retirement", "401k", "ira", "emergency fund"}},
	}
}
