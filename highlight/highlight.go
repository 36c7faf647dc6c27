package highlight

import (
	"strings"

	"github.com/docmage/docmage/gazetteer"
	"github.com/docmage/docmage/ner"
)

// entityLabels maps annotator labels to highlight bag labels. Entities
// with labels outside this table are ignored.
var entityLabels = map[string]string{
	ner.LabelOrg:     "Company",
	ner.LabelPerson:  "Person",
	ner.LabelGPE:     "Location",
	ner.LabelLoc:     "Location",
	ner.LabelLaw:     "Law_Reference",
	ner.LabelNORP:    "Groups",
	ner.LabelMoney:   "Money",
	ner.LabelDate:    "Dates",
	ner.LabelPercent: "Percentages",
}

// recipe is the category-specific extraction step run after the shared
// entity, duration, and phrase-matching passes. Adding a category is a
// single registration here plus its gazetteer entry.
type recipe func(b *Bag, text string)

var recipes = map[gazetteer.Category]recipe{
	gazetteer.Medical:   medicalExtras,
	gazetteer.Legal:     legalExtras,
	gazetteer.Financial: financialExtras,
	gazetteer.General:   generalExtras,
}

// Extract produces the normalized highlight mapping for a text. The
// shared passes (entity mapping, duration, phrase matching) run for
// every category; the category recipe layers its extras on top. The
// result is deterministic for a fixed (text, category, entities) input
// and empty text yields an empty map.
func Extract(text string, cat gazetteer.Category, entities []ner.Entity) map[string]string {
	if strings.TrimSpace(text) == "" {
		return map[string]string{}
	}

	b := NewBag()

	for _, e := range entities {
		if label, ok := entityLabels[e.Label]; ok {
			b.Add(label, e.Text)
		}
	}

	b.Add("Duration", Durations(text)...)

	if m := For(cat); m != nil {
		// One highlight entry per (subcategory, case-insensitive
		// surface); the same phrase twice yields one value. A phrase
		// listed under two subcategories surfaces under both.
		seen := make(map[string]bool)
		for _, match := range m.Find(text) {
			key := match.Label + "\x00" + strings.ToLower(match.Text)
			if seen[key] {
				continue
			}
			seen[key] = true
			b.Add(match.Label, match.Text)
		}
	}

	if extra, ok := recipes[cat]; ok {
		extra(b, text)
	}

	return b.Normalize()
}

func medicalExtras(b *Bag, text string) {
	b.Add("Dosage", Dosages(text)...)
	// Regex-extracted vitals merge into the same label as the
	// phrase-matched ones; Normalize dedups the union.
	b.Add("Vitals", Vitals(text)...)
}

func legalExtras(b *Bag, text string) {
	b.Add("Effective_Date", EffectiveDates(text)...)
	b.Add("Expiry_Date", ExpiryDates(text)...)
	b.Add("Clauses", ClauseHeadings(text)...)
}

func financialExtras(b *Bag, text string) {
	b.Add("Revenue", RevenueAmounts(text)...)
	b.Add("Expenditure", ExpenditureAmounts(text)...)
	b.Add("Money", MoneyAmounts(text)...)
	b.Add("Percentages", Percentages(text)...)
}

func generalExtras(b *Bag, text string) {
	b.Add("Top_Keywords", TopKeywords(text)...)
}
