package core

import "sort"

// CategoryAll is the filter sentinel meaning "every category".
const CategoryAll = "all"

var (
	incomeCategories = []string{
		"salary", "freelance", "investment", "gift", "other_income",
	}
	expenseCategories = []string{
		"food", "transport", "housing", "utilities", "healthcare",
		"entertainment", "education", "shopping", "other_expense",
	}
)

// CategoryKeys returns the income list, the expense list, or the sorted union
// of both when typeFilter is anything else. The result is always a copy.
func CategoryKeys(typeFilter string) []string {
	switch TransactionType(typeFilter) {
	case Income:
		return append([]string(nil), incomeCategories...)
	case Expense:
		return append([]string(nil), expenseCategories...)
	default:
		return dedupeSorted(append(append([]string(nil), incomeCategories...), expenseCategories...))
	}
}

// IsKnownCategory reports whether key belongs to the taxonomy of typ.
func IsKnownCategory(typ TransactionType, key string) bool {
	for _, k := range CategoryKeys(string(typ)) {
		if k == key {
			return true
		}
	}
	return false
}

func dedupeSorted(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
