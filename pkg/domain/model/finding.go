package model

import (
	"sort"
	"time"

	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// FindingEntry is one risky answer attributed to a framework control,
// or surfaced in the unmapped bucket when the question lists none.
type FindingEntry struct {
	QuestionID   types.QuestionID
	QuestionText string
	AnswerGiven  string
	Points       int
	RiskArea     string
}

// ComplianceFinding aggregates every risky answer implicating one
// framework control.
type ComplianceFinding struct {
	Control types.ControlRef
	Entries []FindingEntry
}

// ComplianceReport is the outcome of the framework mapping phase.
// Findings are grouped by control; Unmapped holds risky answers whose
// question lists no controls, which must stay visible in the audit
// trail even though they implicate nothing.
type ComplianceReport struct {
	Vendor     string
	AssessedAt time.Time
	AnalyzedAt time.Time
	TotalScore int
	Findings   []ComplianceFinding
	Unmapped   []FindingEntry
}

// AddFinding attributes an entry to a control, creating the finding on
// first use
func (r *ComplianceReport) AddFinding(control types.ControlRef, entry FindingEntry) {
	for i := range r.Findings {
		if r.Findings[i].Control == control {
			r.Findings[i].Entries = append(r.Findings[i].Entries, entry)
			return
		}
	}
	r.Findings = append(r.Findings, ComplianceFinding{
		Control: control,
		Entries: []FindingEntry{entry},
	})
}

// SortFindings orders findings by control reference for deterministic
// rendering
func (r *ComplianceReport) SortFindings() {
	sort.Slice(r.Findings, func(i, j int) bool {
		return r.Findings[i].Control < r.Findings[j].Control
	})
}

// Frameworks returns the distinct framework prefixes among the
// findings, sorted
func (r *ComplianceReport) Frameworks() []string {
	seen := make(map[string]bool)
	var frameworks []string
	for _, finding := range r.Findings {
		fw := finding.Control.Framework()
		if !seen[fw] {
			seen[fw] = true
			frameworks = append(frameworks, fw)
		}
	}
	sort.Strings(frameworks)
	return frameworks
}

// HasFindings returns true if any control was implicated
func (r *ComplianceReport) HasFindings() bool {
	return len(r.Findings) > 0
}
