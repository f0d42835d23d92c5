package core

// Filter narrows a transaction list. Zero-valued fields are ignored, and a
// Category of CategoryAll matches everything.
type Filter struct {
	Start    Date
	End      Date
	Category string
}

// IsZero reports whether the filter selects every transaction.
func (f Filter) IsZero() bool {
	return f.Start.IsEmpty() && f.End.IsEmpty() && !f.hasCategory()
}

func (f Filter) hasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}

// Apply returns the transactions matching every present bound, in input order.
// Date bounds are inclusive. The result never aliases txs.
func (f Filter) Apply(txs []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if !f.Start.IsEmpty() && t.Date.Before(f.Start) {
			continue
		}
		if !f.End.IsEmpty() && t.Date.After(f.End) {
			continue
		}
		if f.hasCategory() && t.Category != f.Category {
			continue
		}
		out = append(out, t)
	}
	return out
}
