package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/secmon-lab/briareus/pkg/domain/model"
)

// RenderCompliance renders the phase-2 narrative: one section per
// impacted framework control plus a section for risky answers that map
// to no control at all. The unmapped section exists so that no risky
// answer ever disappears from the audit trail.
func RenderCompliance(rep *model.ComplianceReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Framework Compliance Impact Report: %s\n\n", rep.Vendor)
	fmt.Fprintf(&b, "**Date of Analysis:** %s\n", rep.AnalyzedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "**Assessment Date:** %s\n", rep.AssessedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "**Total Risk Score:** %d\n", rep.TotalScore)

	frameworks := rep.Frameworks()
	if len(frameworks) == 0 {
		b.WriteString("**Potentially Impacted Frameworks:** N/A\n\n")
	} else {
		fmt.Fprintf(&b, "**Potentially Impacted Frameworks:** %s\n\n", strings.Join(frameworks, ", "))
	}

	if !rep.HasFindings() {
		b.WriteString("No potential framework control impacts were identified from the vendor's responses.\n\n")
	} else {
		b.WriteString("## Potential Framework Control Impacts\n\n")
		b.WriteString("The following controls may be impacted by the vendor's security posture. ")
		b.WriteString("These indicate areas of potential risk or where compensating controls may be needed internally.\n\n")

		for _, finding := range rep.Findings {
			fmt.Fprintf(&b, "### %s\n\n", finding.Control)
			for _, entry := range finding.Entries {
				writeEntry(&b, entry)
			}
		}
	}

	if len(rep.Unmapped) > 0 {
		b.WriteString("## Unmapped Risky Answers\n\n")
		b.WriteString("These answers added risk but their questions reference no framework control. ")
		b.WriteString("Review whether the template should annotate them.\n\n")
		for _, entry := range rep.Unmapped {
			writeEntry(&b, entry)
		}
	}

	b.WriteString("---\n")
	b.WriteString(footer)
	b.WriteString("\n")
	return b.String()
}

func writeEntry(b *strings.Builder, entry model.FindingEntry) {
	fmt.Fprintf(b, "- **Question:** %s: %s\n", entry.QuestionID, entry.QuestionText)
	fmt.Fprintf(b, "  - **Vendor Answer:** %s\n", entry.AnswerGiven)
	if entry.Points > 0 {
		fmt.Fprintf(b, "  - **Risk Points Added:** %d\n", entry.Points)
	}
	fmt.Fprintf(b, "  - **Risk Area:** %s\n\n", areaHeading(entry.RiskArea))
}
