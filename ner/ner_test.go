package ner

import (
	"testing"

	"github.com/docmage/docmage/gazetteer"
)

func findEntity(entities []Entity, label, text string) bool {
	for _, e := range entities {
		if e.Label == label && e.Text == text {
			return true
		}
	}
	return false
}

func TestRuleAnnotatorEmpty(t *testing.T) {
	if got := (RuleAnnotator{}).Annotate(""); got != nil {
		t.Errorf("Annotate(\"\") = %v, want nil", got)
	}
	if got := (RuleAnnotator{}).Annotate("   "); got != nil {
		t.Errorf("Annotate(whitespace) = %v, want nil", got)
	}
}

func TestRuleAnnotatorLabels(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		label string
		want  string
	}{
		{name: "person with honorific", text: "Seen by Dr. Anita Mehta today.", label: LabelPerson, want: "Dr. Anita Mehta"},
		{name: "justice", text: "Before Justice Rao of the bench.", label: LabelPerson, want: "Justice Rao"},
		{name: "org with suffix", text: "Admitted to Apollo Hospital for observation.", label: LabelOrg, want: "Apollo Hospital"},
		{name: "company", text: "Acquired by Vertex Technologies last year.", label: LabelOrg, want: "Vertex Technologies"},
		{name: "law act", text: "Under the Companies Act of 2013 provisions.", label: LabelLaw, want: "Companies Act of 2013"},
		{name: "law section", text: "Cited Section 21(b) in the filing.", label: LabelLaw, want: "Section 21(b)"},
		{name: "gpe", text: "Offices opened in Singapore last month.", label: LabelGPE, want: "Singapore"},
		{name: "norp", text: "The European regulators approved.", label: LabelNORP, want: "European"},
		{name: "money", text: "A fee of $12,500 was charged.", label: LabelMoney, want: "$12,500"},
		{name: "date iso", text: "Filed on 2024-03-15 with the court.", label: LabelDate, want: "2024-03-15"},
		{name: "date long", text: "Signed on March 15, 2024 by both.", label: LabelDate, want: "March 15, 2024"},
		{name: "percent", text: "Growth of 12.5% year over year.", label: LabelPercent, want: "12.5%"},
	}

	ann := RuleAnnotator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ann.Annotate(tt.text)
			if !findEntity(got, tt.label, tt.want) {
				t.Errorf("Annotate(%q) = %v, want (%s, %q)", tt.text, got, tt.label, tt.want)
			}
		})
	}
}

func TestRuleAnnotatorOverlapResolution(t *testing.T) {
	// The full honorific span must come out as one entity, not a prefix
	// plus leftover fragments.
	got := (RuleAnnotator{}).Annotate("Report prepared by Dr. Maria Santos.")
	count := 0
	for _, e := range got {
		if e.Label == LabelPerson {
			count++
		}
	}
	if count != 1 || !findEntity(got, LabelPerson, "Dr. Maria Santos") {
		t.Errorf("got %v, want exactly one PERSON covering the full name", got)
	}
}

func TestRuleAnnotatorDocumentOrder(t *testing.T) {
	got := (RuleAnnotator{}).Annotate("Dr. Lee charged $500 on 2024-01-10.")
	if len(got) < 3 {
		t.Fatalf("got %v, want at least 3 entities", got)
	}
	wantOrder := []string{LabelPerson, LabelMoney, LabelDate}
	for i, label := range wantOrder {
		if got[i].Label != label {
			t.Errorf("entity %d = %v, want label %s", i, got[i], label)
		}
	}
}

func TestExtractEntitiesMedical(t *testing.T) {
	text := "Patient with hypertension on metformin. BP: 140/90 recorded."
	got := ExtractEntities(text, gazetteer.Medical)

	if !findEntity(got, "CONDITION", "hypertension") {
		t.Errorf("missing CONDITION hypertension in %v", got)
	}
	if !findEntity(got, "MEDICATION", "metformin") {
		t.Errorf("missing MEDICATION metformin in %v", got)
	}
	found := false
	for _, e := range got {
		if e.Label == "VITAL" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing VITAL entity in %v", got)
	}
}

func TestExtractEntitiesLegal(t *testing.T) {
	text := "The Confidentiality Clause applies from the Effective Date."
	got := ExtractEntities(text, gazetteer.Legal)

	if !findEntity(got, "CLAUSE", "Confidentiality Clause") {
		t.Errorf("missing CLAUSE in %v", got)
	}
	if !findEntity(got, "DATE_TERM", "Effective Date") {
		t.Errorf("missing DATE_TERM in %v", got)
	}
}

func TestExtractEntitiesFinancial(t *testing.T) {
	text := "EBITDA improved; Current Ratio at 1.8 and growth of 12%."
	got := ExtractEntities(text, gazetteer.Financial)

	if !findEntity(got, "RATIO", "EBITDA") {
		t.Errorf("missing RATIO EBITDA in %v", got)
	}
	if !findEntity(got, "RATIO", "Current Ratio") {
		t.Errorf("missing RATIO Current Ratio in %v", got)
	}
	if !findEntity(got, LabelPercent, "12%") {
		t.Errorf("missing PERCENT in %v", got)
	}
}

func TestExtractEntitiesWithNilAnnotator(t *testing.T) {
	got := ExtractEntitiesWith(nil, "Seen by Dr. Grey. BP: 120/80 noted.", gazetteer.Medical)
	for _, e := range got {
		if e.Label == LabelPerson {
			t.Errorf("nil annotator still produced base entity %v", e)
		}
	}
	found := false
	for _, e := range got {
		if e.Label == "VITAL" {
			found = true
		}
	}
	if !found {
		t.Errorf("category patterns should run without an annotator, got %v", got)
	}
}

func TestExtractEntitiesGeneralIsBaseOnly(t *testing.T) {
	text := "The Confidentiality Clause applies."
	got := ExtractEntities(text, gazetteer.General)
	for _, e := range got {
		if e.Label == "CLAUSE" {
			t.Errorf("general category ran legal add-ons: %v", got)
		}
	}
}
