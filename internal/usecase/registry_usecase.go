package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrInvalidName        = errors.New("name is required")
	ErrInvalidCompanyCNPJ = errors.New("company cnpj is required")
)

// IRegistryUseCase groups the thin CRUD surrounding the catalog and quote
// cores: clients, categories, the tenant's company profile, and the
// dashboard collection counts.
type IRegistryUseCase interface {
	CreateClient(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error)
	GetClient(ctx context.Context, tenantID, id string) (entities.Client, error)
	ListClients(ctx context.Context, tenantID string) ([]entities.Client, error)
	UpdateClient(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error)
	DeleteClient(ctx context.Context, tenantID, id string) error

	CreateCategory(ctx context.Context, tenantID string, c entities.Category) (entities.Category, error)
	ListCategories(ctx context.Context, tenantID string) ([]entities.Category, error)
	UpdateCategory(ctx context.Context, tenantID string, c entities.Category) (entities.Category, error)
	DeleteCategory(ctx context.Context, tenantID, id string) error

	GetCompany(ctx context.Context, tenantID string) (entities.Company, error)
	SaveCompany(ctx context.Context, tenantID string, c entities.Company) (entities.Company, error)

	DashboardCounts(ctx context.Context, tenantID string) (entities.DashboardCounts, error)
}

type RegistryUseCase struct {
	clients    interfaces.IClientRepository
	categories interfaces.ICategoryRepository
	companies  interfaces.ICompanyRepository
	products   interfaces.IProductRepository
	skus       interfaces.ISKURepository
	quotes     interfaces.IQuoteRepository
}

var _ IRegistryUseCase = (*RegistryUseCase)(nil)

func NewRegistryUseCase(
	clients interfaces.IClientRepository,
	categories interfaces.ICategoryRepository,
	companies interfaces.ICompanyRepository,
	products interfaces.IProductRepository,
	skus interfaces.ISKURepository,
	quotes interfaces.IQuoteRepository,
) *RegistryUseCase {
	return &RegistryUseCase{
		clients:    clients,
		categories: categories,
		companies:  companies,
		products:   products,
		skus:       skus,
		quotes:     quotes,
	}
}

func (u *RegistryUseCase) CreateClient(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidName
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.UserID = tenantID
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.clients.Create(ctx, c)
}

func (u *RegistryUseCase) GetClient(ctx context.Context, tenantID, id string) (entities.Client, error) {
	c, err := u.clients.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *RegistryUseCase) ListClients(ctx context.Context, tenantID string) ([]entities.Client, error) {
	return u.clients.ListByTenant(ctx, tenantID)
}

func (u *RegistryUseCase) UpdateClient(ctx context.Context, tenantID string, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidName
	}

	existing, err := u.GetClient(ctx, tenantID, c.ID)
	if err != nil {
		return entities.Client{}, err
	}
	c.UserID = tenantID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.clients.Update(ctx, c)
}

func (u *RegistryUseCase) DeleteClient(ctx context.Context, tenantID, id string) error {
	if _, err := u.GetClient(ctx, tenantID, id); err != nil {
		return err
	}
	return u.clients.Delete(ctx, tenantID, id)
}

func (u *RegistryUseCase) CreateCategory(ctx context.Context, tenantID string, c entities.Category) (entities.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Category{}, ErrInvalidName
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.UserID = tenantID
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.categories.Create(ctx, c)
}

func (u *RegistryUseCase) ListCategories(ctx context.Context, tenantID string) ([]entities.Category, error) {
	return u.categories.ListByTenant(ctx, tenantID)
}

func (u *RegistryUseCase) UpdateCategory(ctx context.Context, tenantID string, c entities.Category) (entities.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Category{}, ErrInvalidName
	}

	existing, err := u.categories.GetByID(ctx, tenantID, c.ID)
	if err != nil {
		return entities.Category{}, err
	}
	if existing.ID == "" {
		return entities.Category{}, ErrCategoryNotFound
	}
	c.UserID = tenantID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.categories.Update(ctx, c)
}

func (u *RegistryUseCase) DeleteCategory(ctx context.Context, tenantID, id string) error {
	existing, err := u.categories.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrCategoryNotFound
	}
	return u.categories.Delete(ctx, tenantID, id)
}

func (u *RegistryUseCase) GetCompany(ctx context.Context, tenantID string) (entities.Company, error) {
	return u.companies.GetByTenant(ctx, tenantID)
}

func (u *RegistryUseCase) SaveCompany(ctx context.Context, tenantID string, c entities.Company) (entities.Company, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Company{}, ErrInvalidName
	}
	if strings.TrimSpace(c.CNPJ) == "" {
		return entities.Company{}, ErrInvalidCompanyCNPJ
	}

	c.UserID = tenantID
	c.UpdatedAt = time.Now().UTC()
	return u.companies.Upsert(ctx, c)
}

// DashboardCounts derives the landing-page summary from the tenant's
// collections. Counts come from full listings, matching how small the
// per-tenant data sets are.
func (u *RegistryUseCase) DashboardCounts(ctx context.Context, tenantID string) (entities.DashboardCounts, error) {
	products, err := u.products.ListByTenant(ctx, tenantID)
	if err != nil {
		return entities.DashboardCounts{}, err
	}
	skus, err := u.skus.ListByTenant(ctx, tenantID)
	if err != nil {
		return entities.DashboardCounts{}, err
	}
	quotes, err := u.quotes.ListByTenant(ctx, tenantID)
	if err != nil {
		return entities.DashboardCounts{}, err
	}
	clients, err := u.clients.ListByTenant(ctx, tenantID)
	if err != nil {
		return entities.DashboardCounts{}, err
	}
	categories, err := u.categories.ListByTenant(ctx, tenantID)
	if err != nil {
		return entities.DashboardCounts{}, err
	}

	return entities.DashboardCounts{
		Products:   len(products),
		SKUs:       len(skus),
		Quotes:     len(quotes),
		Clients:    len(clients),
		Categories: len(categories),
	}, nil
}
