package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// AnswerFile is a pre-supplied answer set for non-interactive runs:
//
//	vendor = "Acme Corp"
//
//	[answers]
//	Q1 = "no"
//	Q2 = "2"
type AnswerFile struct {
	Vendor  string            `toml:"vendor"`
	Answers map[string]string `toml:"answers"`
}

// Validate checks if the AnswerFile is usable
func (a *AnswerFile) Validate() error {
	if len(a.Answers) == 0 {
		return goerr.New("answer file contains no answers")
	}
	for id := range a.Answers {
		if err := types.QuestionID(id).Validate(); err != nil {
			return goerr.Wrap(err, "invalid question ID in answer file")
		}
	}
	return nil
}

// AnswerMap returns the answers keyed by typed question ID
func (a *AnswerFile) AnswerMap() map[types.QuestionID]string {
	answers := make(map[types.QuestionID]string, len(a.Answers))
	for id, answer := range a.Answers {
		answers[types.QuestionID(id)] = answer
	}
	return answers
}

// LoadAnswerFile reads a TOML answer file
func LoadAnswerFile(path string) (*AnswerFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read answer file", goerr.V("path", path))
	}

	var file AnswerFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse answer file", goerr.V("path", path))
	}
	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "answer file validation failed", goerr.V("path", path))
	}

	return &file, nil
}
