package classifier

import (
	"regexp"
	"testing"

	"github.com/spendwise/backend/internal/domain/entity"
)

func TestClassify_DefaultRules(t *testing.T) {
	c := New(DefaultRules(), entity.UncategorizedLabel)

	cases := []struct {
		name string
		text string
		want string
	}{
		{"restaurant note", "lunch at restaurant", "Food"},
		{"coffee uppercase", "COFFEE with friends", "Food"},
		{"uber ride", "uber to airport", "Transportation"},
		{"fuel", "Petrol refill", "Transportation"},
		{"amazon order", "amazon order #1234", "Shopping"},
		{"no rule matches", "random text", entity.UncategorizedLabel},
		{"empty text", "", entity.UncategorizedLabel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Classify(tc.text); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Both rules match; the earlier one must win regardless of specificity.
	rules := []Rule{
		{regexp.MustCompile(`(?i)food`), "Food"},
		{regexp.MustCompile(`(?i)food court shopping`), "Shopping"},
	}
	c := New(rules, entity.UncategorizedLabel)

	if got := c.Classify("food court shopping spree"); got != "Food" {
		t.Errorf("Classify = %q, want first-listed rule to win with %q", got, "Food")
	}
}

func TestClassify_NoRules(t *testing.T) {
	c := New(nil, entity.UncategorizedLabel)

	if got := c.Classify("anything"); got != entity.UncategorizedLabel {
		t.Errorf("Classify with no rules = %q, want %q", got, entity.UncategorizedLabel)
	}
}
