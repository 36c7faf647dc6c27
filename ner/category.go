package ner

import (
	"regexp"

	"github.com/docmage/docmage/gazetteer"
)

// Category-specific entity patterns layered on top of the base
// annotator. These are deliberately independent of the highlight
// gazetteer: they surface a handful of domain terms with their own
// labels for callers that want a flat entity list.
var (
	ratioRE = regexp.MustCompile(`(?i)\b(?:Debt-to-Asset Ratio|Savings Rate|Investment-to-Income Ratio|Profit Margin|ROI|EBITDA|Net Worth|Liquidity Ratio|Operating Margin|Cash Conversion Cycle|Current Ratio|Quick Ratio)\b`)

	clauseTermRE = regexp.MustCompile(`(?i)\b(?:Termination Clause|Confidentiality Clause|Liability Clause|Arbitration Clause|Indemnity Clause|Jurisdiction Clause|Force Majeure Clause|Governing Law Clause|Assignment Clause|Notice Clause)\b`)

	dateTermRE = regexp.MustCompile(`(?i)\b(?:Effective Date|Commencement Date|Expiry Date|Termination Date|Renewal Date)\b`)

	vitalTermRE = regexp.MustCompile(`(?i)\b(?:BP\s*[:\-]?\s*\d{2,3}/\d{2,3}|HR\s*[:\-]?\s*\d{2,3}\s*bpm|Temp\s*[:\-]?\s*\d{2,3}(?:\.\d+)?\s*(?:°C|°F)|SpO2\s*[:\-]?\s*\d{2,3}\s?%)`)

	conditionRE = regexp.MustCompile(`(?i)\b(?:diabetes|hypertension|cancer|stroke|asthma|arthritis|heart attack|kidney failure|liver disease|HIV|COVID-19|pneumonia|obesity|depression|anxiety)\b`)

	medicationRE = regexp.MustCompile(`(?i)\b(?:aspirin|insulin|metformin|statins|antibiotics|beta-blockers|paracetamol|ibuprofen|amoxicillin|atorvastatin|omeprazole|antidepressants|antihypertensives)\b`)

	moneyLooseRE = regexp.MustCompile(`[₹$€£]?\s?\d{1,3}(?:,\d{3})*(?:\.\d+)?\s?(?:million|billion|cr|lakh|[kmb]n?)?`)

	percentLooseRE = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?%`)
)

// ExtractEntities returns the base annotator's entities plus
// category-specific regex entities appended in a fixed order. The
// category gates only the extra patterns; base annotation always runs.
func ExtractEntities(text string, cat gazetteer.Category) []Entity {
	return ExtractEntitiesWith(Default, text, cat)
}

// ExtractEntitiesWith is ExtractEntities with an explicit annotator.
// A nil annotator skips base annotation and yields only the regex
// entities for the category.
func ExtractEntitiesWith(ann Annotator, text string, cat gazetteer.Category) []Entity {
	var out []Entity
	if ann != nil {
		out = append(out, ann.Annotate(text)...)
	}

	switch cat {
	case gazetteer.Financial:
		out = appendMatches(out, moneyLooseRE, text, LabelMoney)
		out = appendMatches(out, percentLooseRE, text, LabelPercent)
		out = appendMatches(out, ratioRE, text, "RATIO")
	case gazetteer.Legal:
		out = appendMatches(out, clauseTermRE, text, "CLAUSE")
		out = appendMatches(out, dateTermRE, text, "DATE_TERM")
	case gazetteer.Medical:
		out = appendMatches(out, vitalTermRE, text, "VITAL")
		out = appendMatches(out, conditionRE, text, "CONDITION")
		out = appendMatches(out, medicationRE, text, "MEDICATION")
	}
	return out
}

func appendMatches(out []Entity, re *regexp.Regexp, text, label string) []Entity {
	for _, m := range re.FindAllString(text, -1) {
		if m == "" {
			continue
		}
		out = append(out, Entity{Text: m, Label: label})
	}
	return out
}
