package locrank

import (
	"strconv"
	"strings"
)

// FormatReport renders a report as plain text: a section header, then each
// element name followed by one line per locator and a blank line.
func FormatReport(r *Report) string {
	var b strings.Builder
	b.WriteString("--- Locators for " + r.Tag + " elements ---\n")
	for _, e := range r.Entries {
		b.WriteString("Element: " + e.Name + "\n")
		for _, loc := range e.Locators {
			b.WriteString("Locator: " + loc.Selector + ", Rank: " + strconv.Itoa(loc.Rank) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatReports renders each report in order.
func FormatReports(reports []*Report) string {
	var b strings.Builder
	for _, r := range reports {
		b.WriteString(FormatReport(r))
	}
	return b.String()
}
