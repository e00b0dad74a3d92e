package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/briareus/pkg/domain/types"
)

// RiskThresholds maps a raw total risk score to a coarse risk level.
// A total above High is high risk, above Medium is medium, otherwise
// low. The raw score itself is unbounded.
type RiskThresholds struct {
	High   int `toml:"high"`
	Medium int `toml:"medium"`
}

// DefaultRiskThresholds returns the built-in banding
func DefaultRiskThresholds() *RiskThresholds {
	return &RiskThresholds{
		High:   50,
		Medium: 20,
	}
}

// Validate checks if the RiskThresholds are consistent
func (t *RiskThresholds) Validate() error {
	if t.High < 0 || t.Medium < 0 {
		return goerr.New("risk thresholds must be non-negative",
			goerr.V("high", t.High), goerr.V("medium", t.Medium))
	}
	if t.Medium >= t.High {
		return goerr.New("medium threshold must be below high threshold",
			goerr.V("high", t.High), goerr.V("medium", t.Medium))
	}
	return nil
}

// Level returns the risk level band for a total score
func (t *RiskThresholds) Level(totalScore int) types.RiskLevel {
	switch {
	case totalScore > t.High:
		return types.RiskLevelHigh
	case totalScore > t.Medium:
		return types.RiskLevelMedium
	default:
		return types.RiskLevelLow
	}
}
