// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/portfolio-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		// %-*s pads by bytes, so pad by runes instead.
		pad := boxWidth - 4 - utf8.RuneCountInString(line)
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", max(pad, 0)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.ProfileRecord) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", orDash(profile.Role)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(profile.Phone)))
	sb.WriteString(fmt.Sprintf("GitHub:   %s\n", orDash(profile.GitHub)))
	sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", orDash(profile.LinkedIn)))

	if profile.Bio != "" {
		sb.WriteString("\nBio:\n")
		sb.WriteString("  " + truncate(profile.Bio, boxWidth-6) + "\n")
	}

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills (%d):\n", len(profile.Skills)))
		for _, line := range wrapList(profile.Skills, boxWidth-6) {
			sb.WriteString("  " + line + "\n")
		}
	}

	if len(profile.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("\nProjects (%d):\n", len(profile.Projects)))
		count := min(len(profile.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", orDash(profile.Projects[i].Title)))
			if link := profile.Projects[i].Link; link != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", link))
			}
		}
		if len(profile.Projects) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Projects)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetectedSections outputs which template sections were found in the
// page and which were filled by a fallback block.
func (p *Printer) PrintDetectedSections(detected types.DetectedSections, injected []string) {
	if detected == nil {
		return
	}

	var sb strings.Builder
	found := 0
	for _, section := range types.AllSections {
		status := "missing"
		switch {
		case slices.Contains(injected, section):
			status = "injected"
		case detected[section]:
			status = "found"
			found++
		}
		sb.WriteString(fmt.Sprintf("  %-10s %s\n", section, status))
	}
	sb.WriteString(fmt.Sprintf("\n%d/%d sections found in the page", found, len(types.AllSections)))

	p.printBox("DETECTED SECTIONS", sb.String())
}

// PrintSite outputs where a generated site was written.
func (p *Printer) PrintSite(outDir string, files []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Directory: %s\n", outDir))
	for _, f := range files {
		sb.WriteString(fmt.Sprintf("  • %s\n", f))
	}
	p.printBox("GENERATED SITE", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens s to at most width runes, ending in "..." when cut.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// wrapList joins items with ", " into lines of at most width runes.
func wrapList(items []string, width int) []string {
	var lines []string
	var line string
	for _, item := range items {
		candidate := item
		if line != "" {
			candidate = line + ", " + item
		}
		if line != "" && utf8.RuneCountInString(candidate) > width {
			lines = append(lines, line+",")
			candidate = item
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
