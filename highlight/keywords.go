package highlight

import (
	"sort"
	"strings"
	"unicode"
)

// General-category fallback: with no gazetteer to match, derive the top
// keywords from token and phrase frequency. Tokens are lowercased,
// stop-word filtered, and lightly lemmatized; phrase candidates are
// maximal runs of consecutive content words. The ten most frequent
// items win, ties broken by first occurrence so output is stable.

const topKeywordCount = 10

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "else": true, "of": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "from": true, "by": true, "with": true,
	"about": true, "as": true, "into": true, "through": true, "during": true,
	"is": true, "am": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"shall": true, "should": true, "can": true, "could": true, "may": true,
	"might": true, "must": true, "this": true, "that": true, "these": true,
	"those": true, "it": true, "its": true, "he": true, "she": true,
	"his": true, "her": true, "they": true, "them": true, "their": true,
	"we": true, "our": true, "you": true, "your": true, "i": true, "my": true,
	"not": true, "no": true, "nor": true, "so": true, "than": true,
	"too": true, "very": true, "also": true, "such": true, "there": true,
	"here": true, "when": true, "where": true, "which": true, "who": true,
	"whom": true, "what": true, "how": true, "why": true, "all": true,
	"any": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "only": true, "own": true,
	"same": true, "s": true, "t": true, "just": true, "now": true,
	"up": true, "down": true, "out": true, "over": true, "under": true,
	"again": true, "further": true, "once": true, "per": true,
}

// lemma trims possessives and common plural endings. It is a cheap
// approximation of lemmatization, good enough for frequency counting.
func lemma(word string) string {
	w := strings.TrimSuffix(word, "'s")
	w = strings.TrimSuffix(w, "’s")
	switch {
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 3 && strings.HasSuffix(w, "es") && !strings.HasSuffix(w, "ses"):
		return w[:len(w)-1]
	case len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		return w[:len(w)-1]
	}
	return w
}

// TopKeywords returns the most frequent content tokens and phrase
// chunks in the text, at most topKeywordCount entries.
func TopKeywords(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	pos := 0
	bump := func(item string) {
		if _, ok := firstSeen[item]; !ok {
			firstSeen[item] = pos
		}
		counts[item]++
		pos++
	}

	var run []string
	flushRun := func() {
		if len(run) >= 2 {
			n := len(run)
			if n > 4 {
				n = 4
			}
			bump(strings.Join(run[:n], " "))
		}
		run = run[:0]
	}

	for _, w := range words {
		w = strings.Trim(w, "'")
		if w == "" {
			continue
		}
		if stopwords[w] {
			flushRun()
			continue
		}
		l := lemma(w)
		if len(l) < 2 {
			flushRun()
			continue
		}
		bump(l)
		run = append(run, l)
	}
	flushRun()

	items := make([]string, 0, len(counts))
	for k := range counts {
		items = append(items, k)
	}
	sort.Slice(items, func(i, j int) bool {
		if counts[items[i]] != counts[items[j]] {
			return counts[items[i]] > counts[items[j]]
		}
		return firstSeen[items[i]] < firstSeen[items[j]]
	})

	if len(items) > topKeywordCount {
		items = items[:topKeywordCount]
	}
	return items
}
