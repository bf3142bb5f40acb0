package ledger

import (
	"encoding/json"

	"github.com/ryanuber/go-glob"
)

// Uncategorized is the display name for transactions whose category
// cannot be resolved.
const Uncategorized = "Uncategorized"

// Category classifies transactions and scopes budgets.
type Category struct {
	ID   ID      `json:"id" example:"7"`
	Name string  `json:"name" example:"Groceries"`
	Type Kind    `json:"type" example:"expense"`
	Icon *string `json:"icon" example:"🛒"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Unknown types decode to the empty Kind.
func (c *Category) UnmarshalJSON(data []byte) error {
	var w struct {
		ID   ID      `json:"id"`
		Name string  `json:"name"`
		Type string  `json:"type"`
		Icon *string `json:"icon"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	kind, _ := ParseKind(w.Type)
	*c = Category{
		ID:   w.ID,
		Name: w.Name,
		Type: kind,
		Icon: w.Icon,
	}

	return nil
}

// Categories maps category IDs to categories.
type Categories map[ID]Category

// IndexCategories builds the lookup for a list of categories.
func IndexCategories(categories []Category) Categories {
	index := make(Categories, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}

	return index
}

// Resolve returns the category of a transaction.
//
// The lookup by ID wins, then the inline category name of the
// transaction. If neither is available, ok is false and the
// returned category is named Uncategorized.
func (c Categories) Resolve(t Transaction) (category Category, ok bool) {
	if t.CategoryID != nil {
		if found, exists := c[*t.CategoryID]; exists {
			return found, true
		}
	}

	if t.Category != "" {
		return Category{Name: t.Category, Type: t.Type}, true
	}

	return Category{Name: Uncategorized, Type: t.Type}, false
}

// FilterCategory returns the transactions whose resolved category name
// matches the glob pattern, e.g. "Food*". An empty pattern matches everything.
func FilterCategory(transactions []Transaction, categories Categories, pattern string) []Transaction {
	if pattern == "" {
		return transactions
	}

	result := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		category, _ := categories.Resolve(t)
		if glob.Glob(pattern, category.Name) {
			result = append(result, t)
		}
	}

	return result
}
