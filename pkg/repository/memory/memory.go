package memory

import (
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
)

// Memory is an in-memory repository used by tests and dry runs. It
// keeps the same publish/discover semantics as the flat-file backend
// without touching the filesystem.
type Memory struct {
	assessment *assessmentRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		assessment: newAssessmentRepository(),
	}
}

func (m *Memory) Assessment() interfaces.AssessmentRepository {
	return m.assessment
}

// Reports returns the narrative reports published so far, keyed by
// record ID. Only used by tests to inspect publish output.
func (m *Memory) Reports() map[string]string {
	m.assessment.mu.RLock()
	defer m.assessment.mu.RUnlock()

	reports := make(map[string]string, len(m.assessment.reports))
	for id, md := range m.assessment.reports {
		reports[id] = md
	}
	return reports
}
