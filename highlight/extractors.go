package highlight

import (
	"regexp"
	"strings"
	"sync"

	"github.com/docmage/docmage/gazetteer"
)

// Structured-value extractors. Each is a total function over text:
// unmatched patterns yield no results, never an error. They are
// independent of category gating; the post-processors decide which to
// run per category.

var (
	durationRE = regexp.MustCompile(`(?i)\b\d+\s+(?:day|days|week|weeks|month|months|year|years)\b`)

	dosageRE = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s?(?:mg|mcg|µg|ml|g|units)\b`)

	// Each vital kind is its own capture group; flattening takes the
	// first non-empty group per match. The separator admits "BP 140/90",
	// "BP: 140/90" and "BP-140/90" alike.
	vitalSep = `\s*[:\-]?\s*`

	vitalsRE = regexp.MustCompile(`(?i)(BP` + vitalSep + `\d{2,3}/\d{2,3}\s?(?:mmHg)?)|(HR` + vitalSep + `\d{2,3}\s?bpm)|(Temp(?:erature)?` + vitalSep + `\d{2,3}(?:\.\d+)?\s?(?:°C|°F|C|F))|(SpO2` + vitalSep + `\d{2,3}\s?%)`)

	// Date tokens: "Jan 2, 2024" | "2 Jan 2024" | "2024-01-02" | "2/1/2024".
	dateValuePattern = `([A-Za-z]{3,9}\s\d{1,2},\s?\d{4}|\d{1,2}\s[A-Za-z]{3,9}\s\d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4})`

	effectiveRE = regexp.MustCompile(`(?i)(Effective|Commencement)\s+Date[:\s]+` + dateValuePattern)
	expiryRE    = regexp.MustCompile(`(?i)(Expiry|Expiration|Termination)\s+Date[:\s]+` + dateValuePattern)

	// moneyPattern has no capture groups so it can be embedded in the
	// revenue/expenditure extractors with a single outer group.
	moneyPattern = `(?:(?:USD|INR|EUR|GBP|AUD|CAD)\s*)?[$₹€£]?\s?\d{1,3}(?:,\d{3})*(?:\.\d+)?\s?(?:million|billion|mn|bn|cr|crore|lakh|k|m|b)?`

	moneyRE   = regexp.MustCompile(`(?i)` + moneyPattern)
	percentRE = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?%`)

	revenueRE     = regexp.MustCompile(`(?i)\brevenue\b[:\s-]*(` + moneyPattern + `)`)
	expenditureRE = regexp.MustCompile(`(?i)\b(?:expenditure|expenses)\b[:\s-]*(` + moneyPattern + `)`)
)

// Durations returns phrases like "5 days" or "2 years".
func Durations(text string) []string {
	return durationRE.FindAllString(text, -1)
}

// Dosages returns medication dose mentions like "500 mg" or "2.5 ml".
func Dosages(text string) []string {
	return dosageRE.FindAllString(text, -1)
}

// Vitals returns vital-sign readings (blood pressure, heart rate,
// temperature, oxygen saturation). Multi-group captures are flattened
// by taking the first non-empty captured group per match.
func Vitals(text string) []string {
	var out []string
	for _, m := range vitalsRE.FindAllStringSubmatch(text, -1) {
		for _, g := range m[1:] {
			if g != "" {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// EffectiveDates returns date tokens following an "Effective Date" or
// "Commencement Date" header. The date is the last capture group.
func EffectiveDates(text string) []string {
	return lastGroups(effectiveRE, text)
}

// ExpiryDates returns date tokens following an "Expiry", "Expiration"
// or "Termination Date" header.
func ExpiryDates(text string) []string {
	return lastGroups(expiryRE, text)
}

func lastGroups(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[len(m)-1])
	}
	return out
}

// MoneyAmounts returns every money-shaped value in the text: optional
// currency code or symbol, grouped digits, optional decimal and
// magnitude suffix.
func MoneyAmounts(text string) []string {
	return moneyRE.FindAllString(text, -1)
}

// Percentages returns number-percent values like "12.5%".
func Percentages(text string) []string {
	return percentRE.FindAllString(text, -1)
}

// RevenueAmounts returns money values immediately following the word
// "revenue".
func RevenueAmounts(text string) []string {
	return lastGroups(revenueRE, text)
}

// ExpenditureAmounts returns money values following "expenditure" or
// "expenses".
func ExpenditureAmounts(text string) []string {
	return lastGroups(expenditureRE, text)
}

// clauseHeadingRE matches any line starting with a known legal clause
// name; the full line is kept verbatim as the highlight value. Built
// lazily from the legal gazetteer.
var (
	clauseHeadingOnce sync.Once
	clauseHeadingRE   *regexp.Regexp
)

// ClauseHeadings returns lines beginning with a known clause-name
// phrase (case-insensitive), full line captured verbatim.
func ClauseHeadings(text string) []string {
	clauseHeadingOnce.Do(func() {
		phrases := gazetteer.Phrases(gazetteer.Legal, "Clauses")
		quoted := make([]string, len(phrases))
		for i, p := range phrases {
			quoted[i] = regexp.QuoteMeta(p)
		}
		clauseHeadingRE = regexp.MustCompile(`(?im)^[ \t]*(?:` + strings.Join(quoted, "|") + `)\b.*$`)
	})
	return clauseHeadingRE.FindAllString(text, -1)
}
