// Package highlight turns raw document text into a categorized set of
// extracted phrases and structured values (the "highlight bag"). It
// combines gazetteer phrase matching, annotator entities, and regex
// extractors, then normalizes everything into one flat label→value map.
package highlight

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/docmage/docmage/gazetteer"
)

// Match is one phrase occurrence found by a Matcher. Text is the
// original surface span from the source document, so hyphen/space
// variants surface the way they appear in the text.
type Match struct {
	Label string // gazetteer subcategory label
	Text  string
	Start int // byte offset in the source text
	End   int
}

// Matcher finds gazetteer phrases of one category inside a text.
// Matching is case-insensitive and aligned to token boundaries; a
// phrase containing a hyphen also matches its space-joined variant and
// vice versa. Matchers are immutable after construction and safe for
// concurrent use.
type Matcher struct {
	category gazetteer.Category
	byFirst  map[string][]pattern
}

// pattern is one registered token sequence with its output label.
type pattern struct {
	label  string
	tokens []string
}

// NewMatcher builds a matcher for the category's gazetteer. It fails
// only when the gazetteer has no entry for the category; callers treat
// that as "no matching", not an error condition. Prefer For, which
// caches built matchers process-wide.
func NewMatcher(cat gazetteer.Category) (*Matcher, error) {
	subs := gazetteer.Lookup(cat)
	if len(subs) == 0 {
		return nil, fmt.Errorf("no gazetteer for category %q", cat)
	}

	m := &Matcher{category: cat, byFirst: make(map[string][]pattern)}
	for _, sub := range subs {
		seen := make(map[string]bool)
		for _, phrase := range sub.Phrases {
			variants := []string{phrase}
			if strings.Contains(phrase, "-") {
				variants = append(variants, strings.ReplaceAll(phrase, "-", " "))
			}
			if strings.Contains(phrase, " ") {
				variants = append(variants, strings.ReplaceAll(phrase, " ", "-"))
			}
			for _, v := range variants {
				toks := tokenTexts(v)
				if len(toks) == 0 {
					continue
				}
				key := strings.Join(toks, " ")
				if seen[key] {
					continue // hyphen and space variants often tokenize identically
				}
				seen[key] = true
				m.byFirst[toks[0]] = append(m.byFirst[toks[0]], pattern{label: sub.Label, tokens: toks})
			}
		}
	}
	return m, nil
}

// matcher cache: built once per category on first use, read-only after
// publish. Concurrent first access is serialized by the mutex; readers
// after publish share the same immutable matcher.
var (
	matcherMu    sync.Mutex
	matcherCache = make(map[gazetteer.Category]*Matcher)
)

// For returns the cached matcher for a category, building it on first
// use. Categories without a gazetteer (such as general) return nil.
func For(cat gazetteer.Category) *Matcher {
	matcherMu.Lock()
	defer matcherMu.Unlock()
	if m, ok := matcherCache[cat]; ok {
		return m
	}
	m, err := NewMatcher(cat)
	if err != nil {
		matcherCache[cat] = nil
		return nil
	}
	matcherCache[cat] = m
	return m
}

// Find returns every phrase occurrence in text. Overlapping matches at
// different start positions all surface; later deduplication is by
// (label, lowercased surface), not by span. Empty text yields nil.
func (m *Matcher) Find(text string) []Match {
	toks := tokenize(text)
	if len(toks) == 0 {
		return nil
	}

	var out []Match
	for i := range toks {
		for _, p := range m.byFirst[toks[i].text] {
			if i+len(p.tokens) > len(toks) {
				continue
			}
			ok := true
			for j := 1; j < len(p.tokens); j++ {
				if toks[i+j].text != p.tokens[j] {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			last := toks[i+len(p.tokens)-1]
			out = append(out, Match{
				Label: p.label,
				Text:  text[toks[i].start:last.end],
				Start: toks[i].start,
				End:   last.end,
			})
		}
	}
	return out
}

// token is a lowercased word with its byte span in the source text.
type token struct {
	text       string
	start, end int
}

// symbolTokens are single-rune tokens so gazetteer entries like "$" or
// "%" can match on their own.
func isSymbolToken(r rune) bool {
	switch r {
	case '$', '€', '£', '₹', '¥', '%':
		return true
	}
	return false
}

// isWordRune keeps letters, digits and '&' (for terms like "p&l")
// inside one token. Hyphens are boundaries, which is what makes the
// hyphen/space phrase variants line up on the same token sequence.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '&'
}

func tokenize(text string) []token {
	var toks []token
	start := -1
	for i, r := range text {
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		case isSymbolToken(r):
			if start >= 0 {
				toks = append(toks, token{text: strings.ToLower(text[start:i]), start: start, end: i})
				start = -1
			}
			toks = append(toks, token{text: string(r), start: i, end: i + len(string(r))})
		default:
			if start >= 0 {
				toks = append(toks, token{text: strings.ToLower(text[start:i]), start: start, end: i})
				start = -1
			}
		}
	}
	if start >= 0 {
		toks = append(toks, token{text: strings.ToLower(text[start:]), start: start, end: len(text)})
	}
	return toks
}

// tokenTexts tokenizes a registered phrase into its lowercase token
// sequence.
func tokenTexts(phrase string) []string {
	toks := tokenize(phrase)
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.text
	}
	return out
}
