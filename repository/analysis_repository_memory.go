package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"lease-agent/domain"
)

// AnalysisRepositoryMemory is an in-memory implementation of
// AnalysisRepository. Safe for concurrent use.
type AnalysisRepositoryMemory struct {
	mu   sync.Mutex
	data []AnalysisRecord
}

// NewAnalysisRepositoryMemory creates a new in-memory analysis repository.
func NewAnalysisRepositoryMemory() *AnalysisRepositoryMemory {
	return &AnalysisRepositoryMemory{
		data: []AnalysisRecord{},
	}
}

// Save stores the analysis in memory and returns its id.
func (r *AnalysisRepositoryMemory) Save(
	_ context.Context,
	input domain.LeaseInput,
	analysis domain.LeaseAnalysis,
) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := AnalysisRecord{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Input:     input,
		Analysis:  analysis,
	}
	r.data = append(r.data, record)
	return record.ID, nil
}

// ListRecent returns up to limit records, newest first.
func (r *AnalysisRepositoryMemory) ListRecent(
	_ context.Context,
	limit int,
) ([]AnalysisRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	records := make([]AnalysisRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, r.data[i])
	}
	return records, nil
}
