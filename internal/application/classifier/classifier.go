// Package classifier maps free-text expense notes to a category label using an
// ordered first-match rule list.
package classifier

import "regexp"

// Rule pairs a compiled pattern with the category it assigns.
type Rule struct {
	Pattern  *regexp.Regexp
	Category string
}

// Classifier evaluates rules in order; the first matching pattern wins.
// Evaluation order is part of the contract — rules must not be re-sorted to
// prefer a "better" match.
type Classifier struct {
	rules    []Rule
	fallback string
}

// DefaultRules returns the built-in rule list. Patterns are case-insensitive
// substring matches over the notes text.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`(?i)restaurant|breakfast|lunch|brunch|snacks|coffee|food|dining`), "Food"},
		{regexp.MustCompile(`(?i)cab|bus|fuel|petrol|uber|ola|taxi`), "Transportation"},
		{regexp.MustCompile(`(?i)amazon|flipkart|shopping|store`), "Shopping"},
	}
}

// New creates a classifier with the given ordered rules and fallback label.
func New(rules []Rule, fallback string) *Classifier {
	return &Classifier{
		rules:    rules,
		fallback: fallback,
	}
}

// Classify returns the category of the first rule whose pattern matches text,
// or the fallback label when none does. Pure and deterministic; no I/O.
func (c *Classifier) Classify(text string) string {
	for _, rule := range c.rules {
		if rule.Pattern.MatchString(text) {
			return rule.Category
		}
	}
	return c.fallback
}
