package interfaces

import (
	"context"

	"comercial_xpto/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// Every operation is scoped to one tenant: lookups verify ownership and
// listings query the user_id index. A miss (or another tenant's document)
// comes back as a zero-value entity, not an error.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Product, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, tenantID, id string) error
}
