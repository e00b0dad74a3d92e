package model_test

import (
	"strconv"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

func yesNoQuestion(weight int) *model.Question {
	return &model.Question{
		ID:         "Q1",
		Text:       "Do you encrypt data at rest?",
		AnswerType: types.AnswerTypeYesNo,
		RiskWeight: weight,
		RiskArea:   "Data Protection",
	}
}

func scoreQuestion(weight int) *model.Question {
	return &model.Question{
		ID:         "Q2",
		Text:       "Rate your access review maturity",
		AnswerType: types.AnswerTypeScore1to5,
		RiskWeight: weight,
		RiskArea:   "Access Control",
	}
}

func TestScore_YesNo(t *testing.T) {
	for weight := 1; weight <= 5; weight++ {
		t.Run("weight "+strconv.Itoa(weight), func(t *testing.T) {
			scored, err := model.Score(yesNoQuestion(weight), "no")
			gt.NoError(t, err).Required()
			gt.Number(t, scored.Points).Equal(weight)
			gt.Bool(t, scored.Risky).True()

			scored, err = model.Score(yesNoQuestion(weight), "yes")
			gt.NoError(t, err).Required()
			gt.Number(t, scored.Points).Equal(0)
			gt.Bool(t, scored.Risky).False()
		})
	}

	_, err := model.Score(yesNoQuestion(3), "maybe")
	gt.Error(t, err).Is(model.ErrInvalidAnswer)
}

func TestScore_Score1to5(t *testing.T) {
	for value := 1; value <= 5; value++ {
		for weight := 1; weight <= 5; weight++ {
			scored, err := model.Score(scoreQuestion(weight), strconv.Itoa(value))
			gt.NoError(t, err).Required()
			gt.Number(t, scored.Points).Equal((5 - value) * weight)
			gt.Value(t, scored.Risky).Equal(value < 5)
		}
	}

	// Examples from the scoring contract
	scored, err := model.Score(scoreQuestion(4), "5")
	gt.NoError(t, err).Required()
	gt.Number(t, scored.Points).Equal(0)
	gt.Bool(t, scored.Risky).False()

	scored, err = model.Score(scoreQuestion(4), "1")
	gt.NoError(t, err).Required()
	gt.Number(t, scored.Points).Equal(16)
	gt.Bool(t, scored.Risky).True()

	_, err = model.Score(scoreQuestion(4), "6")
	gt.Error(t, err).Is(model.ErrInvalidAnswer)
}

func TestScore_Text(t *testing.T) {
	q := &model.Question{
		ID:         "Q3",
		Text:       "Describe your incident response process",
		AnswerType: types.AnswerTypeText,
		RiskWeight: 5,
		RiskArea:   "Incident Response",
	}

	for _, answer := range []string{"we have none", "ISO certified SOC", "no"} {
		scored, err := model.Score(q, answer)
		gt.NoError(t, err).Required()
		gt.Number(t, scored.Points).Equal(0)
		gt.Bool(t, scored.Risky).False()
	}
}

func TestAssessmentRecord_TotalScore(t *testing.T) {
	results := []model.AssessmentResult{
		{Question: *yesNoQuestion(3), AnswerGiven: "no", Points: 3},
		{Question: *scoreQuestion(4), AnswerGiven: "2", Points: 12},
		{Question: *yesNoQuestion(2), AnswerGiven: "yes", Points: 0},
	}

	record := &model.AssessmentRecord{Vendor: "Acme", Results: results}
	gt.Number(t, record.TotalScore()).Equal(15)

	// Reordering the results must not change the total
	reversed := &model.AssessmentRecord{
		Vendor:  "Acme",
		Results: []model.AssessmentResult{results[2], results[1], results[0]},
	}
	gt.Number(t, reversed.TotalScore()).Equal(record.TotalScore())
}

func TestComplianceReport_Aggregation(t *testing.T) {
	rep := &model.ComplianceReport{Vendor: "Acme"}

	entry := model.FindingEntry{QuestionID: "Q1", AnswerGiven: "no", Points: 3}
	rep.AddFinding("NISTCSF:PR.DS-1", entry)
	rep.AddFinding("ISO27001:A.8.2.3", entry)
	rep.AddFinding("ISO27001:A.8.2.3", model.FindingEntry{QuestionID: "Q2", AnswerGiven: "2", Points: 12})

	rep.SortFindings()
	gt.Array(t, rep.Findings).Length(2)
	gt.Value(t, rep.Findings[0].Control).Equal(types.ControlRef("ISO27001:A.8.2.3"))
	gt.Array(t, rep.Findings[0].Entries).Length(2)
	gt.Array(t, rep.Findings[1].Entries).Length(1)

	frameworks := rep.Frameworks()
	gt.Array(t, frameworks).Length(2)
	gt.Value(t, frameworks[0]).Equal("ISO27001")
	gt.Value(t, frameworks[1]).Equal("NISTCSF")
}
