package reconcile

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simaogato/shifttrade-backend/internal/domain"
)

// balance accumulates the hours of one person
type balance struct {
	youWorked  decimal.Decimal
	theyWorked decimal.Decimal
}

// ledger is the fold state: balances by name plus first-appearance order
type ledger struct {
	order    []string
	balances map[string]balance
}

// Aggregate reconciles a batch of trades into one summary per person.
// Each trade adds its hours to Person1's YouWorked and to Person2's TheyWorked,
// so the totals of a batch always sum to zero. Summaries are returned in
// order of each name's first appearance.
func Aggregate(trades []domain.Trade) []domain.PersonSummary {
	l := ledger{balances: make(map[string]balance)}
	for _, trade := range trades {
		l = apply(l, trade)
	}

	summaries := make([]domain.PersonSummary, 0, len(l.order))
	for _, name := range l.order {
		b := l.balances[name]
		summaries = append(summaries, domain.PersonSummary{
			Name:       name,
			YouWorked:  b.youWorked,
			TheyWorked: b.theyWorked,
			Total:      b.youWorked.Sub(b.theyWorked),
		})
	}

	return summaries
}

// apply folds one trade into the ledger
func apply(l ledger, trade domain.Trade) ledger {
	l = l.ensure(trade.Person1)
	l = l.ensure(trade.Person2)

	worker := l.balances[trade.Person1]
	worker.youWorked = worker.youWorked.Add(trade.Hours)
	l.balances[trade.Person1] = worker

	covered := l.balances[trade.Person2]
	covered.theyWorked = covered.theyWorked.Add(trade.Hours)
	l.balances[trade.Person2] = covered

	return l
}

func (l ledger) ensure(name string) ledger {
	if _, ok := l.balances[name]; !ok {
		l.balances[name] = balance{youWorked: decimal.Zero, theyWorked: decimal.Zero}
		l.order = append(l.order, name)
	}
	return l
}

// NetTotal sums Total across summaries; zero for any batch produced by Aggregate
func NetTotal(summaries []domain.PersonSummary) decimal.Decimal {
	total := decimal.Zero
	for _, s := range summaries {
		total = total.Add(s.Total)
	}
	return total
}

// TotalHours sums the hours of every trade
func TotalHours(trades []domain.Trade) decimal.Decimal {
	total := decimal.Zero
	for _, t := range trades {
		total = total.Add(t.Hours)
	}
	return total
}

// SortByTotal returns a copy ordered by Total descending, then by name
func SortByTotal(summaries []domain.PersonSummary) []domain.PersonSummary {
	sorted := make([]domain.PersonSummary, len(summaries))
	copy(sorted, summaries)

	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Total.Cmp(sorted[j].Total); c != 0 {
			return c > 0
		}
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}
