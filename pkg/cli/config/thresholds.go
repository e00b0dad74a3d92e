package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	modelconfig "github.com/secmon-lab/briareus/pkg/domain/model/config"
)

// riskConfigFile is the TOML layout of a scoring configuration file:
//
//	[risk_level]
//	high = 50
//	medium = 20
type riskConfigFile struct {
	RiskLevel modelconfig.RiskThresholds `toml:"risk_level"`
}

// LoadRiskThresholds reads a scoring configuration file. An empty path
// returns the built-in defaults.
func LoadRiskThresholds(path string) (*modelconfig.RiskThresholds, error) {
	if path == "" {
		return modelconfig.DefaultRiskThresholds(), nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read scoring config", goerr.V("path", path))
	}

	file := riskConfigFile{
		RiskLevel: *modelconfig.DefaultRiskThresholds(),
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse scoring config", goerr.V("path", path))
	}

	thresholds := file.RiskLevel
	if err := thresholds.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid scoring config", goerr.V("path", path))
	}

	return &thresholds, nil
}
