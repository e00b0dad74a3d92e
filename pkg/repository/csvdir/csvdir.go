// Package csvdir persists questionnaire templates, assessment records
// and rendered reports as flat files under a single directory. It is
// the only storage backend besides the in-memory one used by tests.
package csvdir

import (
	"strings"

	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
)

// Client is a flat-file repository rooted at a working directory
type Client struct {
	assessment *assessmentRepository
}

var _ interfaces.Repository = &Client{}

// New creates a repository over dir. The directory must already exist.
func New(dir string) *Client {
	return &Client{
		assessment: &assessmentRepository{dir: dir},
	}
}

// Assessment returns the assessment record repository
func (c *Client) Assessment() interfaces.AssessmentRepository {
	return c.assessment
}

// slugify converts a vendor name into a filename-safe token, matching
// the naming of records produced by earlier versions of the toolkit.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-', r == '.':
			b.WriteRune('_')
		}
	}
	return b.String()
}
