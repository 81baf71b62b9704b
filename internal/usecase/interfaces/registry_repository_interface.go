package interfaces

import (
	"context"

	"comercial_xpto/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Client, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// ICategoryRepository abstracts DynamoDB persistence for Category.
type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Category, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Category, error)
	Update(ctx context.Context, c entities.Category) (entities.Category, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// ICompanyRepository abstracts the single per-tenant company profile
// document, keyed by user_id.
type ICompanyRepository interface {
	GetByTenant(ctx context.Context, tenantID string) (entities.Company, error)
	Upsert(ctx context.Context, c entities.Company) (entities.Company, error)
}
