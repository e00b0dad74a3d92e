package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/domain/types"
	"github.com/secmon-lab/briareus/pkg/utils/logging"
)

// LatestAssessment returns the most recent record for a vendor (any
// vendor when empty), selected by the timestamp embedded in the
// record.
func (uc *UseCases) LatestAssessment(ctx context.Context, vendor string) (*model.AssessmentRecord, error) {
	record, err := uc.repo.Assessment().Latest(ctx, vendor)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to locate assessment record", goerr.V(VendorKey, vendor))
	}
	return record, nil
}

// MapFrameworks joins a completed assessment with the control-annotated
// template, re-derives riskiness per answer with the same scoring rule
// as the assessment phase, and aggregates risky answers per framework
// control. Risky answers whose question lists no controls land in the
// unmapped bucket; they are surfaced, never dropped.
//
// Weights and control annotations come from the current template, so an
// independently updated template re-maps an old record. An answer
// referencing a question absent from the template is a data-integrity
// error.
func (uc *UseCases) MapFrameworks(ctx context.Context, questions []*model.Question, record *model.AssessmentRecord) (*model.ComplianceReport, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	lookup := make(map[types.QuestionID]*model.Question, len(questions))
	for _, q := range questions {
		lookup[q.ID] = q
	}

	logger := logging.From(ctx)
	rep := &model.ComplianceReport{
		Vendor:     record.Vendor,
		AssessedAt: record.AssessedAt,
		AnalyzedAt: time.Now().UTC(),
	}

	for _, result := range record.Results {
		q, ok := lookup[result.Question.ID]
		if !ok {
			return nil, goerr.Wrap(ErrUnknownQuestion, "record does not match template",
				goerr.V(QuestionIDKey, result.Question.ID),
				goerr.V(VendorKey, record.Vendor))
		}

		scored, err := model.Score(q, result.AnswerGiven)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to re-score answer", goerr.V(QuestionIDKey, q.ID))
		}
		rep.TotalScore += scored.Points

		if !scored.Risky {
			continue
		}

		entry := model.FindingEntry{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			AnswerGiven:  result.AnswerGiven,
			Points:       scored.Points,
			RiskArea:     q.RiskArea,
		}

		if len(q.Controls) == 0 {
			rep.Unmapped = append(rep.Unmapped, entry)
			logger.Warn("Risky answer maps to no framework control",
				"question_id", q.ID.String(),
				"risk_area", q.RiskArea,
			)
			continue
		}

		for _, control := range q.Controls {
			rep.AddFinding(control, entry)
			logger.Debug("Mapped risky answer to control",
				"question_id", q.ID.String(),
				"control", control.String(),
			)
		}
	}

	rep.SortFindings()

	logger.Info("Framework mapping completed",
		"vendor", rep.Vendor,
		"impacted_controls", len(rep.Findings),
		"unmapped_risky_answers", len(rep.Unmapped),
	)
	return rep, nil
}
