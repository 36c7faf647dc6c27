package summary

import (
	"strings"
	"testing"

	"github.com/docmage/docmage/gazetteer"
	"github.com/docmage/docmage/ner"
)

func TestScore(t *testing.T) {
	// Keyword hits are worth two points each; the annotator adds one per
	// entity it finds.
	tests := []struct {
		name     string
		sentence string
		cat      gazetteer.Category
		min      int
	}{
		{name: "medical keywords", sentence: "The diagnosis and treatment plan were discussed.", cat: gazetteer.Medical, min: 6},
		{name: "financial keywords", sentence: "Revenue and profit grew this quarter.", cat: gazetteer.Financial, min: 6},
		{name: "no keywords", sentence: "Nothing relevant here at all.", cat: gazetteer.Legal, min: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.sentence, tt.cat, nil)
			if got < tt.min {
				t.Errorf("Score(%q) = %d, want at least %d", tt.sentence, got, tt.min)
			}
		})
	}
}

func TestRankFiltersShortSentences(t *testing.T) {
	sentences := []string{
		"Too short.",
		"This sentence is long enough to be ranked.",
	}
	got := Rank(sentences, gazetteer.General, nil)
	if len(got) != 1 {
		t.Fatalf("Rank = %v, want only the long sentence", got)
	}
}

func TestRankStableOnTies(t *testing.T) {
	// Equal scores keep document order.
	sentences := []string{
		"Alpha item appears first in order.",
		"Beta item appears second in order.",
		"Gamma item appears third in order.",
	}
	got := Rank(sentences, gazetteer.General, nil)
	for i := range sentences {
		if got[i] != sentences[i] {
			t.Fatalf("tie order changed: %v", got)
		}
	}
}

func TestRankScoredFirst(t *testing.T) {
	sentences := []string{
		"A plain sentence with no cue words at all.",
		"The plaintiff filed the case before the hearing.",
	}
	got := Rank(sentences, gazetteer.Legal, nil)
	if got[0] != sentences[1] {
		t.Errorf("Rank = %v, want keyword-bearing sentence first", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got, err := Summarize("", gazetteer.Medical, ner.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Overview != "No overview available." {
		t.Errorf("Overview = %q, want placeholder", got.Overview)
	}
	if got.KeyPoints == nil || len(got.KeyPoints) != 0 {
		t.Errorf("KeyPoints = %v, want empty non-nil slice", got.KeyPoints)
	}
	if got.Insights == nil || len(got.Insights) != 0 {
		t.Errorf("Insights = %v, want empty non-nil slice", got.Insights)
	}
}

func TestSummarizeKeyPointCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("The quarterly revenue growth continued to improve steadily. ")
	}

	got, err := Summarize(sb.String(), gazetteer.Financial, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.KeyPoints) > maxKeyPoints {
		t.Errorf("got %d key points, want at most %d", len(got.KeyPoints), maxKeyPoints)
	}
	if len(got.KeyPoints) != maxKeyPoints {
		t.Errorf("got %d key points from 20 sentences, want %d", len(got.KeyPoints), maxKeyPoints)
	}
}

func TestSummarizeGeneral(t *testing.T) {
	text := "The committee published its annual findings today. " +
		"Several community programs expanded during the year. " +
		"Funding allocations were revised for the next cycle."

	got, err := Summarize(text, gazetteer.General, ner.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got.Overview, "This document provides the following key information:") {
		t.Errorf("Overview = %q, want general lead-in", got.Overview)
	}
	if len(got.Insights) != 1 {
		t.Errorf("Insights = %v, want the single general insight", got.Insights)
	}
}
