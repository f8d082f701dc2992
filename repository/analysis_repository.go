package repository

import (
	"context"
	"time"

	"lease-agent/domain"
)

// AnalysisRecord is one stored analysis with its original input, kept so
// past quotes can be compared against new ones.
type AnalysisRecord struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Input     domain.LeaseInput    `json:"input"`
	Analysis  domain.LeaseAnalysis `json:"analysis"`
}

// AnalysisRepository persists completed analyses.
type AnalysisRepository interface {
	Save(ctx context.Context, input domain.LeaseInput, analysis domain.LeaseAnalysis) (string, error)
	ListRecent(ctx context.Context, limit int) ([]AnalysisRecord, error)
}
