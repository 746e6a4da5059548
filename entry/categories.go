package entry

// TransactionType discriminates the two kinds of transactions a draft can
// describe. Each type carries its own category vocabulary.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Category is one selectable entry of a vocabulary: a stable key sent to the
// API and a label shown to the user.
type Category struct {
	Key   string
	Label string
}

// The vocabularies are fixed application configuration. They are consumed
// here, not owned: the server recognizes the same keys.
var expenseCategories = []Category{
	{Key: "food", Label: "Food & Drink"},
	{Key: "transport", Label: "Transport"},
	{Key: "housing", Label: "Housing & Rent"},
	{Key: "utilities", Label: "Utilities"},
	{Key: "groceries", Label: "Groceries"},
	{Key: "entertainment", Label: "Entertainment"},
	{Key: "health", Label: "Health & Fitness"},
	{Key: "shopping", Label: "Shopping"},
	{Key: "education", Label: "Education"},
	{Key: "travel", Label: "Travel"},
	{Key: "subscriptions", Label: "Subscriptions"},
	{Key: "other-expense", Label: "Other"},
}

var incomeCategories = []Category{
	{Key: "salary", Label: "Salary"},
	{Key: "freelance", Label: "Freelance"},
	{Key: "business", Label: "Business"},
	{Key: "investment", Label: "Investment"},
	{Key: "gift", Label: "Gift"},
	{Key: "refund", Label: "Refund"},
	{Key: "other-income", Label: "Other"},
}

// ExpenseCategories returns the expense vocabulary in display order.
func ExpenseCategories() []Category {
	out := make([]Category, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// IncomeCategories returns the income vocabulary in display order.
func IncomeCategories() []Category {
	out := make([]Category, len(incomeCategories))
	copy(out, incomeCategories)
	return out
}

// CategoriesFor returns the vocabulary for the given transaction type.
// An unknown type yields the expense set, matching the form's default.
func CategoriesFor(t TransactionType) []Category {
	if t == TypeIncome {
		return IncomeCategories()
	}
	return ExpenseCategories()
}

// CategoryLabel resolves a category key against the vocabulary of the given
// type. The second return reports whether the key belongs to that vocabulary.
func CategoryLabel(t TransactionType, key string) (string, bool) {
	for _, c := range CategoriesFor(t) {
		if c.Key == key {
			return c.Label, true
		}
	}
	return key, false
}
