package usecase

import (
	"github.com/secmon-lab/briareus/pkg/domain/interfaces"
	"github.com/secmon-lab/briareus/pkg/domain/model/config"
)

type UseCases struct {
	repo       interfaces.Repository
	thresholds *config.RiskThresholds
}

type Option func(*UseCases)

// WithThresholds overrides the risk level banding used in reports
func WithThresholds(t *config.RiskThresholds) Option {
	return func(uc *UseCases) {
		uc.thresholds = t
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:       repo,
		thresholds: config.DefaultRiskThresholds(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Thresholds returns the active risk level banding
func (uc *UseCases) Thresholds() *config.RiskThresholds {
	return uc.thresholds
}
