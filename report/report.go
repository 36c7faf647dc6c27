// Package report renders a document's analysis as a standalone HTML
// page suitable for download or printing.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Data carries everything the report template needs.
type Data struct {
	Title      string
	Category   string
	Overview   string
	KeyPoints  []string
	Highlights map[string]string
	Insights   []string
	ToolName   string
	Generated  time.Time
}

// HighlightRow is a single labeled value in the highlights table.
type HighlightRow struct {
	Label string
	Value string
}

type templateData struct {
	Title      string
	Category   string
	Overview   []string
	KeyPoints  []string
	Highlights []HighlightRow
	Insights   []string
	ToolName   string
	Generated  string
}

var reportTmpl = template.Must(template.New("report").Parse(reportHTMLTemplate))

var titleCaser = cases.Title(language.English)

// DisplayLabel converts a stored highlight key ("Effective_Date") into
// its human-readable form ("Effective Date").
func DisplayLabel(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// Render produces the HTML report for the given analysis data.
func Render(data Data) ([]byte, error) {
	td := templateData{
		Title:     data.Title,
		Category:  titleCaser.String(data.Category),
		KeyPoints: data.KeyPoints,
		Insights:  data.Insights,
		ToolName:  data.ToolName,
		Generated: data.Generated.Format("02 Jan 2006 15:04"),
	}

	for _, para := range strings.Split(data.Overview, "\n") {
		if p := strings.TrimSpace(para); p != "" {
			td.Overview = append(td.Overview, p)
		}
	}

	labels := make([]string, 0, len(data.Highlights))
	for label := range data.Highlights {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		td.Highlights = append(td.Highlights, HighlightRow{
			Label: DisplayLabel(label),
			Value: data.Highlights[label],
		})
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}
