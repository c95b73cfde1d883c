package matching

import (
	"time"

	"github.com/shopspring/decimal"
)

// Filters narrows the record sets offered to a run. Unset fields are
// no-ops; filtering is pure predicate composition over the input slices.
type Filters struct {
	StartDate        *time.Time
	EndDate          *time.Time
	MinAmount        *decimal.Decimal
	MaxAmount        *decimal.Decimal
	PartyID          string
	Status           string
	UnreconciledOnly bool
}

// MatchesStatement reports whether a statement line passes the filter.
// The status filter does not apply to statements, which carry no lifecycle
// status.
func (f Filters) MatchesStatement(s Statement) bool {
	if f.UnreconciledOnly && s.Reconciled {
		return false
	}
	if !f.matchesDate(s.Date) {
		return false
	}
	if !f.matchesAmount(s.Amount) {
		return false
	}
	if f.PartyID != "" && s.PartyID != f.PartyID {
		return false
	}
	return true
}

// MatchesTransaction reports whether a ledger transaction passes the filter.
func (f Filters) MatchesTransaction(t Transaction) bool {
	if f.UnreconciledOnly && t.Reconciled {
		return false
	}
	if !f.matchesDate(t.Date) {
		return false
	}
	if !f.matchesAmount(t.Value) {
		return false
	}
	if f.PartyID != "" && t.PartyID != f.PartyID {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	return true
}

func (f Filters) matchesDate(d time.Time) bool {
	if f.StartDate != nil && d.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && d.After(*f.EndDate) {
		return false
	}
	return true
}

func (f Filters) matchesAmount(amount decimal.Decimal) bool {
	abs := amount.Abs()
	if f.MinAmount != nil && abs.LessThan(f.MinAmount.Abs()) {
		return false
	}
	if f.MaxAmount != nil && abs.GreaterThan(f.MaxAmount.Abs()) {
		return false
	}
	return true
}

func filterStatements(statements []Statement, f *Filters) []Statement {
	if f == nil {
		return statements
	}
	out := make([]Statement, 0, len(statements))
	for _, s := range statements {
		if f.MatchesStatement(s) {
			out = append(out, s)
		}
	}
	return out
}

func filterTransactions(transactions []Transaction, f *Filters) []Transaction {
	if f == nil {
		return transactions
	}
	out := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.MatchesTransaction(t) {
			out = append(out, t)
		}
	}
	return out
}
