package summary

import "strings"

// abbreviations are tokens whose trailing period does not end a
// sentence. Matched case-sensitively so "No." (case number) is caught
// but a sentence-final "no." is not.
var abbreviations = map[string]bool{
	"Dr": true, "Mr": true, "Mrs": true, "Ms": true, "Prof": true,
	"Jr": true, "Sr": true, "St": true, "No": true, "vs": true, "v": true,
}

// SplitSentences is a simple sentence tokeniser. It splits on
// period/question-mark/exclamation followed by whitespace or end of
// string, while trying not to split mid-token or after a known
// abbreviation.
func SplitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder

	runes := []rune(strings.TrimSpace(text))
	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '?' || runes[i] == '!' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' {
				if runes[i] == '.' && abbreviations[lastWord(cur.String())] {
					continue
				}
				s := strings.TrimSpace(cur.String())
				if s != "" {
					sentences = append(sentences, s)
				}
				cur.Reset()
			}
		}
	}
	if cur.Len() > 0 {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// lastWord returns the final whitespace-delimited token of s with its
// trailing period removed.
func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimSuffix(fields[len(fields)-1], ".")
}

// contentSentences filters out sentences shorter than minWords words.
func contentSentences(text string, minWords int) []string {
	var out []string
	for _, s := range SplitSentences(text) {
		if len(strings.Fields(s)) >= minWords {
			out = append(out, s)
		}
	}
	return out
}
