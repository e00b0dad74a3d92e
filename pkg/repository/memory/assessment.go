package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model"
)

// ErrNotFound is returned when no record matches a query
var ErrNotFound = goerr.New("not found")

type assessmentRepository struct {
	mu      sync.RWMutex
	records []*model.AssessmentRecord
	reports map[string]string
}

var _ interfaces.AssessmentRepository = &assessmentRepository{}

func newAssessmentRepository() *assessmentRepository {
	return &assessmentRepository{
		reports: make(map[string]string),
	}
}

func (r *assessmentRepository) Publish(ctx context.Context, record *model.AssessmentRecord, reportMarkdown string) (string, string, error) {
	if err := record.Validate(); err != nil {
		return "", "", goerr.Wrap(err, "cannot publish invalid record")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyRecord(record)
	r.records = append(r.records, stored)
	r.reports[stored.ID] = reportMarkdown

	return "memory://record/" + stored.ID, "memory://report/" + stored.ID, nil
}

func (r *assessmentRepository) Latest(ctx context.Context, vendor string) (*model.AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *model.AssessmentRecord
	for _, record := range r.records {
		if vendor != "" && !strings.EqualFold(record.Vendor, vendor) {
			continue
		}
		if best == nil || record.AssessedAt.After(best.AssessedAt) {
			best = record
		}
	}
	if best == nil {
		return nil, goerr.Wrap(ErrNotFound, "no assessment record", goerr.V("vendor", vendor))
	}

	return copyRecord(best), nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.AssessmentRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, copyRecord(record))
	}
	return records, nil
}

// copyRecord returns a deep copy to prevent external modification
func copyRecord(record *model.AssessmentRecord) *model.AssessmentRecord {
	results := make([]model.AssessmentResult, len(record.Results))
	copy(results, record.Results)
	for i := range results {
		controls := results[i].Question.Controls
		results[i].Question.Controls = append(results[i].Question.Controls[:0:0], controls...)
	}

	return &model.AssessmentRecord{
		ID:         record.ID,
		Vendor:     record.Vendor,
		AssessedAt: record.AssessedAt,
		Results:    results,
	}
}
