package interfaces

import (
	"context"

	"comercial_xpto/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Save rewrites the whole document (header, item list and values block in
// one write) — quotes have no per-item persistence granularity.
// UpdateStatus touches only the status field.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Save(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, tenantID, id string) error
}
