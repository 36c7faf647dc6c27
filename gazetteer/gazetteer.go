// Package gazetteer holds the curated domain phrase lists that drive
// lexical highlight matching. The data is authored content: each category
// maps to an ordered set of subcategories, and each subcategory carries a
// flat list of canonical phrases. Phrase lists may be extended freely as
// long as subcategory labels stay unique within a category.
package gazetteer

import "strings"

// Category identifies a document domain. The set is closed; strings
// outside it parse to Unknown, which carries no phrase lists and no
// category recipe so only the category-agnostic passes run.
type Category string

const (
	Medical   Category = "medical"
	Legal     Category = "legal"
	Financial Category = "financial"
	General   Category = "general"

	// Unknown is the parse result for unrecognized category strings.
	// It is never a valid input category.
	Unknown Category = "unknown"
)

// ParseCategory normalizes a raw category string. An empty string
// defaults to General; any other unrecognized value maps to Unknown,
// never an error.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case Medical:
		return Medical
	case Legal:
		return Legal
	case Financial:
		return Financial
	case General, "":
		return General
	default:
		return Unknown
	}
}

// Categories returns all known categories in a fixed order.
func Categories() []Category {
	return []Category{Medical, Legal, Financial, General}
}

// Subcategory is one labeled phrase list within a category. The label
// doubles as the output highlight key.
type Subcategory struct {
	Label   string
	Phrases []string
}

// categoryPhrases is ordered per category so matcher registration and
// highlight output stay deterministic. General has no entry: the general
// pipeline uses keyword frequency instead of phrase matching.
var categoryPhrases = map[Category][]Subcategory{
	Medical:   medicalSubcategories,
	Legal:     legalSubcategories,
	Financial: financialSubcategories,
}

// Lookup returns the ordered subcategories for a category. Unknown
// categories (and General) return nil.
func Lookup(cat Category) []Subcategory {
	return categoryPhrases[cat]
}

// Labels returns the subcategory labels for a category in registration
// order.
func Labels(cat Category) []string {
	subs := categoryPhrases[cat]
	if len(subs) == 0 {
		return nil
	}
	labels := make([]string, len(subs))
	for i, s := range subs {
		labels[i] = s.Label
	}
	return labels
}

// Phrases returns the phrase list for one subcategory of a category,
// or nil if the category or label is unknown.
func Phrases(cat Category, label string) []string {
	for _, s := range categoryPhrases[cat] {
		if s.Label == label {
			return s.Phrases
		}
	}
	return nil
}
