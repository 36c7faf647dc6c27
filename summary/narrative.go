package summary

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/docmage/docmage/gazetteer"
	"github.com/docmage/docmage/ner"
)

// ErrInvalidDate reports a date-of-birth field that was present but
// unparseable. An incorrect age is worse than a missing one, so this
// surfaces to the caller instead of degrading to a placeholder.
var ErrInvalidDate = errors.New("summary: invalid date of birth")

// Header-field extractors for the narrative templates. Each is a
// single-capture regex against a known document header; a failed match
// degrades to a named placeholder.
var (
	patientNameRE = regexp.MustCompile(`Patient Name:\s*(.+)`)
	dobRE         = regexp.MustCompile(`DOB:\s*(\d{4}-\d{2}-\d{2})`)
	ageRE         = regexp.MustCompile(`Age:\s*(\d{1,3})`)
	femaleRE      = regexp.MustCompile(`(?i)\bfemale\b`)
	maleRE        = regexp.MustCompile(`(?i)\bmale\b`)
	complaintsRE  = regexp.MustCompile(`(?s)Clinical Summary\s*(.*?)Impressions`)
	impressionsRE = regexp.MustCompile(`(?s)Impressions\s*(.*?)Parameter`)

	caseTitleRE   = regexp.MustCompile(`Case Title:\s*(.+)`)
	caseNumberRE  = regexp.MustCompile(`Case Number:\s*(.+)`)
	courtRE       = regexp.MustCompile(`Jurisdiction:\s*(.+)`)
	plaintiffRE   = regexp.MustCompile(`Plaintiff:\s*(.+)`)
	defendantRE   = regexp.MustCompile(`Defendant:\s*(.+)`)
	caseSummaryRE = regexp.MustCompile(`(?s)Case Summary:\s*(.*?)\n[A-Z]`)

	companyRE   = regexp.MustCompile(`Company:\s*(.+)`)
	periodRE    = regexp.MustCompile(`Fiscal Period:\s*(.+)`)
	revenueHdRE = regexp.MustCompile(`Revenue\s*\n\s*([\d.]+ Cr)`)
	netIncomeRE = regexp.MustCompile(`Net Income\s*\n\s*([\d.]+ Cr)`)
	arrRE       = regexp.MustCompile(`ARR:\s*([\d.]+ Cr)`)
	marginRE    = regexp.MustCompile(`Gross Margin:\s*([\d.%]+)`)
)

// firstGroup returns the trimmed first capture of re in text, or the
// fallback when there is no match.
func firstGroup(re *regexp.Regexp, text, fallback string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return fallback
}

// patientInfo holds the extracted medical header fields.
type patientInfo struct {
	name   string
	age    string
	gender string
	dob    string
}

// extractPatientInfo reads the patient header block. Age falls back to
// the DOB field relative to now; an unparseable DOB is the one hard
// error in narrative generation.
func extractPatientInfo(text string, now time.Time) (patientInfo, error) {
	info := patientInfo{
		name:   firstGroup(patientNameRE, text, "The patient"),
		age:    "unknown age",
		dob:    firstGroup(dobRE, text, "unknown DOB"),
		gender: "unspecified gender",
	}

	if m := ageRE.FindStringSubmatch(text); m != nil {
		info.age = m[1]
	} else if info.dob != "unknown DOB" {
		years, err := ageAt(info.dob, now)
		if err != nil {
			return patientInfo{}, err
		}
		info.age = fmt.Sprintf("%d", years)
	}

	if femaleRE.MatchString(text) {
		info.gender = "female"
	} else if maleRE.MatchString(text) {
		info.gender = "male"
	}
	return info, nil
}

// ageAt computes whole years between a YYYY-MM-DD birth date and now,
// decremented by one when now's month/day precedes the birth month/day.
func ageAt(dob string, now time.Time) (int, error) {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, dob)
	}
	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	return years, nil
}

// entityTexts returns deduplicated entity surfaces with a given label,
// preserving document order.
func entityTexts(entities []ner.Entity, label string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entities {
		if e.Label != label || seen[e.Text] {
			continue
		}
		seen[e.Text] = true
		out = append(out, e.Text)
	}
	return out
}

// firstContaining returns the first candidate whose lowercase form
// contains sub, or the fallback.
func firstContaining(candidates []string, sub, fallback string) string {
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), strings.ToLower(sub)) {
			return c
		}
	}
	return fallback
}

// Narrate fills the per-category prose template from header fields and
// annotator entities. Missing fields become named placeholders; the
// general category concatenates the leading sentences instead.
func Narrate(text string, cat gazetteer.Category, ann ner.Annotator) (string, error) {
	var entities []ner.Entity
	if ann != nil {
		entities = ann.Annotate(text)
	}
	persons := entityTexts(entities, ner.LabelPerson)
	orgs := entityTexts(entities, ner.LabelOrg)

	switch cat {
	case gazetteer.Medical:
		info, err := extractPatientInfo(text, time.Now())
		if err != nil {
			return "", err
		}
		hospital := firstContaining(orgs, "hospital", "the medical facility")
		doctor := firstContaining(persons, "dr.", "the attending physician")
		complaints := "clinical symptoms"
		if m := complaintsRE.FindStringSubmatch(text); m != nil {
			complaints = strings.ReplaceAll(strings.TrimSpace(m[1]), "\n", " ")
		}
		impressions := "clinical concerns noted"
		if m := impressionsRE.FindStringSubmatch(text); m != nil {
			impressions = strings.ReplaceAll(strings.TrimSpace(m[1]), "\n", "; ")
		}
		return fmt.Sprintf(
			"%s, a %s-year-old %s, was evaluated at %s under %s. "+
				"The patient presented with %s. "+
				"Impressions include: %s. "+
				"Management includes medication, lifestyle changes, and follow-up as advised.",
			info.name, info.age, info.gender, hospital, doctor, complaints, impressions,
		), nil

	case gazetteer.Legal:
		judge := firstContaining(persons, "justice", "the presiding judge")
		caseSummary := "Details of the case are under review."
		if m := caseSummaryRE.FindStringSubmatch(text); m != nil {
			caseSummary = strings.ReplaceAll(strings.TrimSpace(m[1]), "\n", " ")
		}
		return fmt.Sprintf(
			"%s (Case No. %s) is being heard in %s under %s. "+
				"The dispute involves %s and %s. "+
				"Summary: %s",
			firstGroup(caseTitleRE, text, "A legal case"),
			firstGroup(caseNumberRE, text, "N/A"),
			firstGroup(courtRE, text, "the relevant court"),
			judge,
			firstGroup(plaintiffRE, text, "the plaintiff"),
			firstGroup(defendantRE, text, "the defendant"),
			caseSummary,
		), nil

	case gazetteer.Financial:
		return fmt.Sprintf(
			"%s reported financial results for %s. "+
				"Key metrics include Revenue of %s, Net Income of %s, "+
				"ARR of %s, and Gross Margin of %s.",
			firstGroup(companyRE, text, "the company"),
			firstGroup(periodRE, text, "the reporting period"),
			firstGroup(revenueHdRE, text, "N/A"),
			firstGroup(netIncomeRE, text, "N/A"),
			firstGroup(arrRE, text, "N/A"),
			firstGroup(marginRE, text, "N/A"),
		), nil

	case gazetteer.General:
		sentences := contentSentences(text, minSentenceWords)
		if len(sentences) > 3 {
			sentences = sentences[:3]
		}
		return "This document provides the following key information: " +
			strings.Join(sentences, " "), nil
	}

	return "This document contains relevant summarized information.", nil
}
