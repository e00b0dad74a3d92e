package interfaces

import (
	"context"

	"github.com/secmon-lab/briareus/pkg/domain/model"
)

// Repository provides access to persisted assessment data
type Repository interface {
	Assessment() AssessmentRepository
}

// AssessmentRepository persists assessment records and their rendered
// reports. Publish must be atomic: either both the machine-readable
// record and the narrative report become visible, or neither does.
type AssessmentRepository interface {
	// Publish stores a record together with its rendered Markdown
	// report and returns the locations of both artifacts.
	Publish(ctx context.Context, record *model.AssessmentRecord, reportMarkdown string) (recordPath, reportPath string, err error)

	// Latest returns the most recent record, selected by the
	// timestamp embedded in the record itself, never by storage
	// metadata. An empty vendor matches any vendor.
	Latest(ctx context.Context, vendor string) (*model.AssessmentRecord, error)

	// List returns all stored records in unspecified order
	List(ctx context.Context) ([]*model.AssessmentRecord, error)
}
