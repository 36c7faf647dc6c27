// Package ner provides named entity annotation over free text.
//
// The annotation capability itself is treated as external: any
// implementation of Annotator can be plugged into the engine. The
// built-in RuleAnnotator is a deterministic pattern-based annotator
// covering the label vocabulary the rest of the pipeline consumes:
// PERSON, ORG, GPE, LOC, LAW, NORP, MONEY, DATE, PERCENT.
//
// Known limitations of the rule annotator: person names are only found
// after honorifics (Dr., Justice, Mr., ...), organizations require a
// recognizable suffix (Hospital, Inc, Court, ...), and locations and
// group names come from compact lexicons. These trade-offs keep the
// annotator dependency-free and reproducible; swap in a model-backed
// Annotator for broader recall.
package ner

import (
	"regexp"
	"sort"
	"strings"
)

// Entity is a labeled text span as surfaced by an annotator.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Annotator yields labeled entities from free text. Implementations
// must be safe for concurrent use and return entities in document
// order. Empty text yields nil.
type Annotator interface {
	Annotate(text string) []Entity
}

// Label constants consumed by the highlight and summary pipelines.
const (
	LabelPerson  = "PERSON"
	LabelOrg     = "ORG"
	LabelGPE     = "GPE"
	LabelLoc     = "LOC"
	LabelLaw     = "LAW"
	LabelNORP    = "NORP"
	LabelMoney   = "MONEY"
	LabelDate    = "DATE"
	LabelPercent = "PERCENT"
)

// RuleAnnotator is the built-in deterministic annotator.
type RuleAnnotator struct{}

// Default is the annotator used when callers do not supply their own.
var Default Annotator = RuleAnnotator{}

var (
	personRE = regexp.MustCompile(`\b(?:Dr|Mr|Mrs|Ms|Prof|Justice|Judge)\.?\s+[A-Z][A-Za-z'-]+(?:\s+[A-Z][A-Za-z'-]+){0,2}`)

	orgRE = regexp.MustCompile(`\b(?:[A-Z][A-Za-z&'.-]*\s+){0,4}(?:Hospital|Clinic|Laboratories|Diagnostics|Inc|Corp|Corporation|Ltd|Limited|LLC|LLP|Company|Technologies|Systems|Solutions|Bank|Court|Tribunal|University|Institute|Partners|Holdings|Group|Ventures)\b\.?`)

	lawRE = regexp.MustCompile(`\b(?:[A-Z][a-z]+\s+)+Act(?:\s+of\s+\d{4})?\b|\b(?:Section|Article)\s+\d+[A-Za-z0-9().-]*`)

	moneyEntRE = regexp.MustCompile(`(?:USD|INR|EUR|GBP|AUD|CAD|[$₹€£¥])\s?\d[\d,]*(?:\.\d+)?(?:\s?(?:million|billion|mn|bn|cr|crore|lakh|[kmb]))?\b`)

	dateEntRE = regexp.MustCompile(`\b[A-Z][a-z]{2,8}\s\d{1,2},\s?\d{4}\b|\b\d{1,2}\s[A-Z][a-z]{2,8}\s\d{4}\b|\b\d{4}-\d{2}-\d{2}\b|\b\d{1,2}/\d{1,2}/\d{2,4}\b`)

	percentEntRE = regexp.MustCompile(`\b\d+(?:\.\d+)?\s?%`)
)

// Compact lexicons for GPE and NORP recognition. Lists are intentionally
// small; a model-backed annotator replaces them wholesale.
var gpeLexicon = []string{
	"United States", "United Kingdom", "India", "China", "Japan", "Germany",
	"France", "Canada", "Australia", "Singapore", "Switzerland", "Brazil",
	"New York", "London", "Mumbai", "Delhi", "Bangalore", "Tokyo", "Paris",
	"Berlin", "Sydney", "Toronto", "San Francisco", "Chicago", "Boston",
	"California", "Texas", "Maharashtra", "Karnataka",
}

var norpLexicon = []string{
	"American", "British", "Indian", "Chinese", "Japanese", "German",
	"French", "Canadian", "Australian", "European", "Asian", "African",
	"Republican", "Democrat", "Christian", "Muslim", "Hindu", "Buddhist",
}

var (
	gpeRE  = lexiconRegexp(gpeLexicon)
	norpRE = lexiconRegexp(norpLexicon)
)

func lexiconRegexp(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// rulePattern couples a compiled pattern with its output label. Order
// is priority order for overlap resolution.
type rulePattern struct {
	re    *regexp.Regexp
	label string
}

var rulePatterns = []rulePattern{
	{personRE, LabelPerson},
	{orgRE, LabelOrg},
	{lawRE, LabelLaw},
	{gpeRE, LabelGPE},
	{norpRE, LabelNORP},
	{moneyEntRE, LabelMoney},
	{dateEntRE, LabelDate},
	{percentEntRE, LabelPercent},
}

type span struct {
	start, end int
	label      string
	priority   int
}

// Annotate runs every rule pattern and resolves overlaps: earlier start
// wins, then the longer span, then pattern priority. The survivors are
// returned in document order.
func (RuleAnnotator) Annotate(text string) []Entity {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var spans []span
	for prio, p := range rulePatterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1], label: p.label, priority: prio})
		}
	}
	if len(spans) == 0 {
		return nil
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		if spans[i].end != spans[j].end {
			return spans[i].end > spans[j].end
		}
		return spans[i].priority < spans[j].priority
	})

	var out []Entity
	claimed := -1
	for _, s := range spans {
		if s.start < claimed {
			continue
		}
		out = append(out, Entity{Text: text[s.start:s.end], Label: s.label})
		claimed = s.end
	}
	return out
}
