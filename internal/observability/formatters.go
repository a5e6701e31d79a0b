// Package observability provides formatted terminal output for analysis
// results, used by the CLI instead of raw JSON.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/analyzejd/analyzejd/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer renders an analysis for a human reading a terminal.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintAnalysis renders the full analysis, section by section.
func (p *Printer) PrintAnalysis(resp *types.AnalysisResponse) {
	if resp == nil {
		return
	}
	p.PrintVerdict(resp)
	p.PrintUnderstanding(&resp.Understanding)
	p.PrintExperienceFit(&resp.ExperienceFit)
	p.PrintRisks(&resp.RiskAndTradeoffs)
	p.PrintCareerImplications(&resp.CareerImplications)
	p.PrintResumeBullets(resp.ResumeGuidance.ATSOptimizedBullets)
}

// PrintVerdict outputs the recommendation and the facts behind it.
func (p *Printer) PrintVerdict(resp *types.AnalysisResponse) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", resp.DecisionGuidance.Recommendation))
	sb.WriteString(fmt.Sprintf("Risk level:     %s\n", resp.RiskAndTradeoffs.RiskLevel))
	sb.WriteString(fmt.Sprintf("Fresher fit:    %s\n", resp.ExperienceFit.FresherAlignment))
	sb.WriteString(fmt.Sprintf("Confidence:     %.0f%%\n", resp.Confidence.OverallConfidence*100))
	sb.WriteString("\n")
	sb.WriteString(wrap(resp.DecisionGuidance.Reasoning, boxWidth-4))

	p.printBox("VERDICT", sb.String())
}

// PrintUnderstanding outputs the company read and role reality.
func (p *Printer) PrintUnderstanding(u *types.Understanding) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", u.Company.Name))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", u.Company.Type))
	sb.WriteString("\n")
	sb.WriteString(wrap(u.RoleReality, boxWidth-4))

	p.printBox("WHAT THIS ROLE REALLY IS", sb.String())
}

// PrintExperienceFit outputs the parsed experience requirement.
func (p *Printer) PrintExperienceFit(fit *types.ExperienceFit) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required: %s\n", fit.RequiredExperience))
	sb.WriteString("\n")
	sb.WriteString(wrap(fit.Explanation, boxWidth-4))

	p.printBox("EXPERIENCE FIT", sb.String())
}

// PrintRisks outputs the key concerns and who the role suits.
func (p *Printer) PrintRisks(risks *types.RiskAndTradeoffs) {
	var sb strings.Builder

	if len(risks.KeyConcerns) > 0 {
		sb.WriteString("Concerns:\n")
		count := min(len(risks.KeyConcerns), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", risks.KeyConcerns[i]))
		}
		if len(risks.KeyConcerns) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(risks.KeyConcerns)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Good for:\n")
	sb.WriteString(wrap(risks.GoodFor, boxWidth-4))
	sb.WriteString("\n\nAvoid if:\n")
	sb.WriteString(wrap(risks.AvoidIf, boxWidth-4))

	p.printBox(fmt.Sprintf("RISKS AND TRADEOFFS (%s)", risks.RiskLevel), sb.String())
}

// PrintCareerImplications outputs the skills outlook.
func (p *Printer) PrintCareerImplications(career *types.CareerImplications) {
	var sb strings.Builder

	if len(career.SkillsYouWillBuild) > 0 {
		sb.WriteString("You will build:\n")
		for _, s := range career.SkillsYouWillBuild {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
		sb.WriteString("\n")
	}
	if len(career.SkillsYouMayMiss) > 0 {
		sb.WriteString("You may miss:\n")
		for _, s := range career.SkillsYouMayMiss {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(wrap(career.LongTermImpact, boxWidth-4))

	p.printBox("CAREER IMPLICATIONS", sb.String())
}

// PrintResumeBullets outputs the suggested resume bullets.
func (p *Printer) PrintResumeBullets(bullets []string) {
	if len(bullets) == 0 {
		return
	}

	var sb strings.Builder
	for i, b := range bullets {
		sb.WriteString(fmt.Sprintf("• %s", b))
		if i < len(bullets)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME BULLETS TO ADAPT", sb.String())
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// wrap breaks text into lines no longer than width, splitting on spaces.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
