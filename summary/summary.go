// Package summary produces the ranked narrative summary of a document:
// a templated prose overview, the top-scoring key sentences, and
// rule-triggered category insights. Every call computes a fresh result
// from the raw text; nothing is shared between calls.
package summary

import (
	"sort"
	"strings"

	"github.com/docmage/docmage/gazetteer"
	"github.com/docmage/docmage/ner"
)

// Result is the summary output contract.
type Result struct {
	Overview  string   `json:"overview"`
	KeyPoints []string `json:"key_points"`
	Insights  []string `json:"insights"`
}

const (
	maxKeyPoints     = 8
	minSentenceWords = 4
)

// categoryKeywords is the small scoring keyword set. It is distinct
// from the gazetteer: these are cue words that mark a sentence as
// informative, not extractable values.
var categoryKeywords = map[gazetteer.Category][]string{
	gazetteer.Medical: {
		"symptom", "diagnosis", "treatment", "patient", "clinical",
		"impression", "follow-up", "medication", "plan", "recommendation",
	},
	gazetteer.Legal: {
		"case", "ruling", "plaintiff", "defendant", "contract",
		"compliance", "clause", "hearing", "jurisdiction",
	},
	gazetteer.Financial: {
		"revenue", "profit", "loss", "quarter", "growth", "market",
		"cash", "margin", "income",
	},
}

// Score rates one sentence: one point per entity the annotator finds in
// it, plus two points per category keyword present as a case-insensitive
// substring.
func Score(sentence string, cat gazetteer.Category, ann ner.Annotator) int {
	score := 0
	if ann != nil {
		score += len(ann.Annotate(sentence))
	}
	lower := strings.ToLower(sentence)
	for _, kw := range categoryKeywords[cat] {
		if strings.Contains(lower, kw) {
			score += 2
		}
	}
	return score
}

// Rank orders sentences by descending score. The sort is stable, so
// equally scored sentences keep their document order. Sentences shorter
// than four words are excluded before scoring.
func Rank(sentences []string, cat gazetteer.Category, ann ner.Annotator) []string {
	kept := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if len(strings.Fields(s)) >= minSentenceWords {
			kept = append(kept, s)
		}
	}

	scores := make(map[int]int, len(kept))
	for i, s := range kept {
		scores[i] = Score(s, cat, ann)
	}
	idx := make([]int, len(kept))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = kept[j]
	}
	return out
}

// Summarize builds the full summary for a text. Empty input
// short-circuits to the documented zero result. The only error path is
// an unparseable date-of-birth during narrative generation; every other
// missing field degrades to a placeholder.
func Summarize(text string, cat gazetteer.Category, ann ner.Annotator) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{
			Overview:  "No overview available.",
			KeyPoints: []string{},
			Insights:  []string{},
		}, nil
	}

	ranked := Rank(SplitSentences(text), cat, ann)
	if len(ranked) > maxKeyPoints {
		ranked = ranked[:maxKeyPoints]
	}
	keyPoints := append([]string{}, ranked...)

	overview, err := Narrate(text, cat, ann)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Overview:  overview,
		KeyPoints: keyPoints,
		Insights:  Insights(text, cat),
	}, nil
}
