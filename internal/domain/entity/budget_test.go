package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name  string
		spent string
		limit string
		want  BudgetStatus
	}{
		{name: "nothing spent", spent: "0", limit: "100", want: BudgetStatusGood},
		{name: "just under half", spent: "49.99", limit: "100", want: BudgetStatusGood},
		{name: "exactly half", spent: "50", limit: "100", want: BudgetStatusModerate},
		{name: "upper moderate", spent: "79.99", limit: "100", want: BudgetStatusModerate},
		{name: "warning threshold", spent: "80", limit: "100", want: BudgetStatusWarning},
		{name: "just under limit", spent: "99.99", limit: "100", want: BudgetStatusWarning},
		{name: "at the limit", spent: "100", limit: "100", want: BudgetStatusExceeded},
		{name: "over the limit", spent: "150", limit: "100", want: BudgetStatusExceeded},
		{name: "zero limit", spent: "0", limit: "0", want: BudgetStatusExceeded},
		{name: "fractional limit", spent: "1", limit: "3", want: BudgetStatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spent := decimal.RequireFromString(tt.spent)
			limit := decimal.RequireFromString(tt.limit)
			if got := StatusFor(spent, limit); got != tt.want {
				t.Errorf("StatusFor(%s, %s) = %s, want %s", tt.spent, tt.limit, got, tt.want)
			}
		})
	}
}
