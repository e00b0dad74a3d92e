// Package report renders assessment and compliance results into
// Markdown narratives. Rendering is pure; persistence belongs to the
// repository layer.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/model/config"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

const footer = "Generated by briareus. Scoring follows a simplified weighted model."

// RenderAssessment renders the phase-1 narrative: responses grouped by
// risk area with per-question points and the overall score.
func RenderAssessment(record *model.AssessmentRecord, thresholds *config.RiskThresholds) string {
	total := record.TotalScore()

	var b strings.Builder
	fmt.Fprintf(&b, "# Vendor Risk Assessment Report: %s\n\n", record.Vendor)
	fmt.Fprintf(&b, "**Date of Assessment:** %s\n", record.AssessedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "**Total Risk Score (higher is riskier):** %d\n", total)
	fmt.Fprintf(&b, "**Overall Risk Level:** %s\n\n", thresholds.Level(total).Label())

	b.WriteString("## Detailed Responses\n\n")
	for _, area := range record.RiskAreas() {
		fmt.Fprintf(&b, "### %s\n\n", areaHeading(area))
		for _, result := range record.ResultsByArea(area) {
			fmt.Fprintf(&b, "**%s:** %s\n", result.Question.ID, result.Question.Text)
			fmt.Fprintf(&b, "> **Answer:** %s\n", result.AnswerGiven)
			if result.Question.AnswerType != types.AnswerTypeText {
				fmt.Fprintf(&b, "> **Risk Points Added:** %d (weight: %d)\n",
					result.Points, result.Question.RiskWeight)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("---\n")
	b.WriteString(footer)
	b.WriteString("\n")
	return b.String()
}

func areaHeading(area string) string {
	if area == "" {
		return "Uncategorized"
	}
	return area
}
