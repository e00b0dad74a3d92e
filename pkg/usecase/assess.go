package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
	"github.com/secmon-lab/briareus/pkg/service/report"
	"github.com/secmon-lab/briareus/pkg/utils/logging"
)

// Assess walks the questionnaire in template order, obtaining one
// validated answer per question from the source, and returns a scored
// assessment record. An interactive source is re-asked after each
// validation failure; a non-interactive source fails the whole run on
// the first invalid answer, leaving no output behind.
func (uc *UseCases) Assess(ctx context.Context, questions []*model.Question, src interfaces.AnswerSource) (*model.AssessmentRecord, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	vendor, err := src.VendorName(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to obtain vendor name")
	}
	if strings.TrimSpace(vendor) == "" {
		return nil, ErrEmptyVendor
	}

	logger := logging.From(ctx)
	logger.Info("Starting assessment", "vendor", vendor, "questions", len(questions))

	results := make([]model.AssessmentResult, 0, len(questions))
	for _, q := range questions {
		answer, err := uc.collectAnswer(ctx, q, src)
		if err != nil {
			return nil, err
		}

		scored, err := model.Score(q, answer)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to score answer", goerr.V(QuestionIDKey, q.ID))
		}

		results = append(results, model.AssessmentResult{
			Question:    *q,
			AnswerGiven: answer,
			Points:      scored.Points,
		})
	}

	record := &model.AssessmentRecord{
		ID:     uuid.NewString(),
		Vendor: strings.TrimSpace(vendor),
		// Second precision so the timestamp round-trips through the
		// persisted record unchanged.
		AssessedAt: time.Now().UTC().Truncate(time.Second),
		Results:    results,
	}

	logger.Info("Assessment completed",
		"vendor", record.Vendor,
		"total_score", record.TotalScore(),
		"risk_level", uc.thresholds.Level(record.TotalScore()).String(),
	)
	return record, nil
}

func (uc *UseCases) collectAnswer(ctx context.Context, q *model.Question, src interfaces.AnswerSource) (string, error) {
	logger := logging.From(ctx)

	for attempt := 0; ; attempt++ {
		raw, err := src.Answer(ctx, q, attempt)
		if err != nil {
			return "", goerr.Wrap(err, "failed to obtain answer", goerr.V(QuestionIDKey, q.ID))
		}

		answer, err := model.NormalizeAnswer(q.AnswerType, raw)
		if err == nil {
			return answer, nil
		}

		if !src.Interactive() {
			return "", goerr.Wrap(err, "invalid answer in non-interactive run",
				goerr.V(QuestionIDKey, q.ID))
		}
		logger.Debug("Re-asking after invalid answer",
			"question_id", q.ID.String(),
			"attempt", attempt,
		)
	}
}

// PublishAssessment renders the narrative report and stores it with
// the machine-readable record. Both artifacts appear atomically.
func (uc *UseCases) PublishAssessment(ctx context.Context, record *model.AssessmentRecord) (recordPath, reportPath string, err error) {
	markdown := report.RenderAssessment(record, uc.thresholds)

	recordPath, reportPath, err = uc.repo.Assessment().Publish(ctx, record, markdown)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to publish assessment", goerr.V(VendorKey, record.Vendor))
	}

	logging.From(ctx).Info("Assessment published",
		"vendor", record.Vendor,
		"record", recordPath,
		"report", reportPath,
	)
	return recordPath, reportPath, nil
}
