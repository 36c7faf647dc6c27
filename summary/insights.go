package summary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/docmage/docmage/gazetteer"
)

// Insight triggers are configuration data: each category carries an
// ordered rule list checked against the text, and every hit appends
// one canned observation. Rules run in registration order so output
// order is fixed.

type insightRule func(text, lower string) (string, bool)

func containsRule(needle, insight string) insightRule {
	return func(_, lower string) (string, bool) {
		return insight, strings.Contains(lower, needle)
	}
}

var (
	ldlValueRE    = regexp.MustCompile(`(?i)LDL[-\s]?C?\D{0,20}(\d+)`)
	nextHearingRE = regexp.MustCompile(`Next Hearing:\s*(.+)`)
)

// ldlRule fires when an LDL cholesterol value above 100 mg/dL appears,
// interpolating the parsed value.
func ldlRule(text, lower string) (string, bool) {
	if !strings.Contains(lower, "ldl") {
		return "", false
	}
	m := ldlValueRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	val, err := strconv.Atoi(m[1])
	if err != nil || val <= 100 {
		return "", false
	}
	return fmt.Sprintf("LDL level (%d mg/dL) is above target; consider intensifying statin therapy.", val), true
}

func nextHearingRule(text, lower string) (string, bool) {
	if !strings.Contains(lower, "next hearing") {
		return "", false
	}
	m := nextHearingRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("Next hearing scheduled for %s.", strings.TrimSpace(m[1])), true
}

var insightRules = map[gazetteer.Category][]insightRule{
	gazetteer.Financial: {
		containsRule("growth", "Revenue growth observed, possibly driven by subscriptions or renewals."),
		containsRule("margin", "Margin improvements may reflect cost optimization."),
		containsRule("cash flow", "Positive cash flow indicates financial stability."),
	},
	gazetteer.Medical: {
		ldlRule,
		containsRuleAny([]string{"gerd", "reflux"}, "GERD suspected; PPI trial and lifestyle changes recommended."),
		containsRule("follow-up", "Follow-up scheduled; monitor symptoms and adjust treatment as needed."),
	},
	gazetteer.Legal: {
		containsRule("confidentiality", "Confidentiality clause is a key point of contention."),
		containsRule("force majeure", "Force majeure defense may be challenged based on context."),
		nextHearingRule,
	},
	gazetteer.General: {
		func(_, _ string) (string, bool) {
			return "Document covers general information; no domain-specific insights detected.", true
		},
	},
}

func containsRuleAny(needles []string, insight string) insightRule {
	return func(_, lower string) (string, bool) {
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return insight, true
			}
		}
		return "", false
	}
}

// Insights runs the category's trigger rules over the text in a fixed
// order. No state persists between calls.
func Insights(text string, cat gazetteer.Category) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, rule := range insightRules[cat] {
		if insight, ok := rule(text, lower); ok {
			out = append(out, insight)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
