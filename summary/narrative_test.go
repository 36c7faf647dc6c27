package summary

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/docmage/docmage/gazetteer"
	"github.com/docmage/docmage/ner"
)

const medicalReport = `Patient Name: Asha Verma
DOB: 1985-06-20
Gender: Female
Facility: Apollo Hospital
Physician: Dr. Anita Mehta

Clinical Summary
Persistent cough and intermittent fever for two weeks.
Impressions
Suspected lower respiratory tract infection.
Parameter readings attached.`

const legalFiling = `Case Title: Acme Corp v. Zenith Ltd
Case Number: CV-2024-1138
Jurisdiction: Delhi High Court
Plaintiff: Acme Corp
Defendant: Zenith Ltd
Presiding: Justice Rao

Case Summary: Breach of a confidentiality clause in the services agreement.
Next steps to be scheduled.`

const financialStatement = `Company: Vertex Technologies
Fiscal Period: FY2024 Q3

Revenue
142.5 Cr
Net Income
18.2 Cr
ARR: 160.0 Cr
Gross Margin: 62%`

func TestNarrateMedical(t *testing.T) {
	got, err := Narrate(medicalReport, gazetteer.Medical, ner.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Asha Verma",
		"female",
		"Apollo Hospital",
		"Dr. Anita Mehta",
		"Persistent cough and intermittent fever",
		"Suspected lower respiratory tract infection",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("narrative missing %q:\n%s", want, got)
		}
	}
}

func TestNarrateMedicalPlaceholders(t *testing.T) {
	got, err := Narrate("General checkup notes without a header block.", gazetteer.Medical, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"The patient",
		"unknown age",
		"the medical facility",
		"the attending physician",
		"clinical symptoms",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("narrative missing placeholder %q:\n%s", want, got)
		}
	}
}

func TestNarrateMedicalInvalidDOB(t *testing.T) {
	text := "Patient Name: Test Person\nDOB: 1985-13-45\nClinical notes follow."
	_, err := Narrate(text, gazetteer.Medical, nil)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}

func TestNarrateLegal(t *testing.T) {
	got, err := Narrate(legalFiling, gazetteer.Legal, ner.Default)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Acme Corp v. Zenith Ltd",
		"CV-2024-1138",
		"Delhi High Court",
		"Justice Rao",
		"Breach of a confidentiality clause",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("narrative missing %q:\n%s", want, got)
		}
	}
}

func TestNarrateLegalPlaceholders(t *testing.T) {
	got, err := Narrate("An informal note about a disagreement.", gazetteer.Legal, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"A legal case", "N/A", "the relevant court", "the presiding judge", "the plaintiff", "the defendant"} {
		if !strings.Contains(got, want) {
			t.Errorf("narrative missing placeholder %q:\n%s", want, got)
		}
	}
}

func TestNarrateFinancial(t *testing.T) {
	got, err := Narrate(financialStatement, gazetteer.Financial, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Vertex Technologies",
		"FY2024 Q3",
		"142.5 Cr",
		"18.2 Cr",
		"160.0 Cr",
		"62%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("narrative missing %q:\n%s", want, got)
		}
	}
}

func TestNarrateGeneralLeadingSentences(t *testing.T) {
	text := "First sentence carries enough words here. Second sentence also has plenty of words. " +
		"Third sentence rounds out the set nicely. Fourth sentence should not appear at all."

	got, err := Narrate(text, gazetteer.General, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Third sentence rounds out the set nicely.") {
		t.Errorf("narrative missing third sentence:\n%s", got)
	}
	if strings.Contains(got, "Fourth sentence") {
		t.Errorf("narrative includes fourth sentence:\n%s", got)
	}
}

func TestNarrateUnknownCategory(t *testing.T) {
	got, err := Narrate("Some text in an unrecognized domain with several words.", gazetteer.Unknown, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "This document contains relevant summarized information."
	if got != want {
		t.Errorf("narrative = %q, want fixed fallback", got)
	}
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		dob  string
		want int
	}{
		{name: "birthday passed", dob: "1985-06-20", want: 41},
		{name: "birthday upcoming", dob: "1985-12-01", want: 40},
		{name: "birthday today", dob: "1985-08-30", want: 41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ageAt(tt.dob, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ageAt(%s) = %d, want %d", tt.dob, got, tt.want)
			}
		})
	}
}

func TestAgeAtInvalid(t *testing.T) {
	if _, err := ageAt("not-a-date", time.Now()); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestExtractPatientInfoAgeFromDOB(t *testing.T) {
	text := "Patient Name: Test Person\nDOB: 2000-01-15\nNotes follow."
	info, err := extractPatientInfo(text, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.age != "26" {
		t.Errorf("age = %q, want %q", info.age, "26")
	}
}
