package interfaces

import (
	"context"

	"comercial_xpto/internal/domain/entities"
)

// ISKURepository abstracts DynamoDB persistence for SKU.
//
// Put is an unconditional write on the SKU's id: the catalog use case
// derives ids deterministically from (product id, code), so re-driving a
// partially failed batch re-puts the same documents instead of duplicating
// them.
type ISKURepository interface {
	Put(ctx context.Context, s entities.SKU) (entities.SKU, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.SKU, error)
	ListByProduct(ctx context.Context, tenantID, productID string) ([]entities.SKU, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.SKU, error)
	Delete(ctx context.Context, tenantID, id string) error
}
