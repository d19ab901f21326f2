package sapmock

import (
	"context"
	"sync"

	"maintenance/internal/core/domain/services"
)

// FinancialPostings records settlement documents in memory. Tests assert
// against the recorded postings; development runs inspect them via logs.
type FinancialPostings struct {
	mu       sync.Mutex
	postings []services.SettlementDocument
}

// NewFinancialPostings creates an empty postings record.
func NewFinancialPostings() *FinancialPostings {
	return &FinancialPostings{}
}

// Post records a settlement document.
func (f *FinancialPostings) Post(_ context.Context, settlement *services.SettlementDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.postings = append(f.postings, *settlement)
	return nil
}

// Postings returns a copy of everything posted so far.
func (f *FinancialPostings) Postings() []services.SettlementDocument {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]services.SettlementDocument, len(f.postings))
	copy(out, f.postings)
	return out
}
