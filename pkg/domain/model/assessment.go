package model

import (
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// AssessmentResult is one answered question of an assessment. Question
// fields are snapshotted so the record stays self-contained even when
// the template changes later.
type AssessmentResult struct {
	Question    Question
	AnswerGiven string
	Points      int
}

// AssessmentRecord is the sole hand-off artifact between the
// assessment phase and the framework mapping phase. It is created once
// per assessment run and never mutated afterwards.
type AssessmentRecord struct {
	ID         string
	Vendor     string
	AssessedAt time.Time
	Results    []AssessmentResult
}

// TotalScore returns the sum of risk points over all results. The sum
// does not depend on question order.
func (r *AssessmentRecord) TotalScore() int {
	var total int
	for _, result := range r.Results {
		total += result.Points
	}
	return total
}

// RiskAreas returns the distinct risk areas in sorted order
func (r *AssessmentRecord) RiskAreas() []string {
	seen := make(map[string]bool)
	var areas []string
	for _, result := range r.Results {
		area := result.Question.RiskArea
		if !seen[area] {
			seen[area] = true
			areas = append(areas, area)
		}
	}
	sort.Strings(areas)
	return areas
}

// ResultsByArea returns the results belonging to a risk area, keeping
// their original question order
func (r *AssessmentRecord) ResultsByArea(area string) []AssessmentResult {
	var results []AssessmentResult
	for _, result := range r.Results {
		if result.Question.RiskArea == area {
			results = append(results, result)
		}
	}
	return results
}

// Validate checks record integrity before persisting
func (r *AssessmentRecord) Validate() error {
	if r.Vendor == "" {
		return goerr.New("vendor name is required")
	}
	if r.AssessedAt.IsZero() {
		return goerr.New("assessment timestamp is required", goerr.V("vendor", r.Vendor))
	}
	for i := range r.Results {
		if err := r.Results[i].Question.Validate(); err != nil {
			return goerr.Wrap(err, "invalid result in record", goerr.V("vendor", r.Vendor))
		}
	}
	return nil
}
