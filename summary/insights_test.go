package summary

import (
	"strings"
	"testing"

	"github.com/docmage/docmage/gazetteer"
)

func TestInsightsFinancial(t *testing.T) {
	text := "Strong growth this quarter. Margin expanded. Cash flow stayed positive."
	got := Insights(text, gazetteer.Financial)

	if len(got) != 3 {
		t.Fatalf("got %d insights, want 3: %v", len(got), got)
	}
	// Rules fire in registration order.
	if !strings.Contains(got[0], "growth") {
		t.Errorf("first insight = %q, want growth observation", got[0])
	}
	if !strings.Contains(got[1], "Margin") {
		t.Errorf("second insight = %q, want margin observation", got[1])
	}
	if !strings.Contains(got[2], "cash flow") {
		t.Errorf("third insight = %q, want cash flow observation", got[2])
	}
}

func TestInsightsLDL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "above target", text: "Lipid panel: LDL-C 132 mg/dL noted.", want: true},
		{name: "at target", text: "Lipid panel: LDL-C 100 mg/dL noted.", want: false},
		{name: "below target", text: "LDL 85 mg/dL within range.", want: false},
		{name: "no value", text: "LDL pending lab results.", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insights(tt.text, gazetteer.Medical)
			found := false
			for _, in := range got {
				if strings.Contains(in, "LDL level") {
					found = true
					if tt.want && !strings.Contains(in, "132 mg/dL") {
						t.Errorf("insight = %q, want interpolated value", in)
					}
				}
			}
			if found != tt.want {
				t.Errorf("Insights(%q) LDL fired = %v, want %v (%v)", tt.text, found, tt.want, got)
			}
		})
	}
}

func TestInsightsMedicalGERD(t *testing.T) {
	got := Insights("Symptoms consistent with acid reflux after meals.", gazetteer.Medical)
	found := false
	for _, in := range got {
		if strings.Contains(in, "GERD") {
			found = true
		}
	}
	if !found {
		t.Errorf("Insights = %v, want GERD observation", got)
	}
}

func TestInsightsLegalNextHearing(t *testing.T) {
	got := Insights("Order reserved. Next Hearing: 14 October 2026", gazetteer.Legal)
	found := false
	for _, in := range got {
		if in == "Next hearing scheduled for 14 October 2026." {
			found = true
		}
	}
	if !found {
		t.Errorf("Insights = %v, want scheduled hearing date", got)
	}
}

func TestInsightsGeneralAlwaysOn(t *testing.T) {
	got := Insights("Anything at all.", gazetteer.General)
	if len(got) != 1 {
		t.Fatalf("got %v, want exactly one general insight", got)
	}
}

func TestInsightsUnknownCategory(t *testing.T) {
	got := Insights("Anything at all.", gazetteer.Unknown)
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestInsightsNoTriggers(t *testing.T) {
	got := Insights("Plain text without any trigger phrases.", gazetteer.Legal)
	if got == nil {
		t.Fatal("want empty non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}
