package model

// Category classifies a ledger row into an accounting category.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryIncome    Category = "income"
	CategoryExpense   Category = "expense"
	CategoryOther     Category = "other"
)

// Categories lists all categories in reporting order.
func Categories() []Category {
	return []Category{
		CategoryAsset,
		CategoryLiability,
		CategoryIncome,
		CategoryExpense,
		CategoryOther,
	}
}
