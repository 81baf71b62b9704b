package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/domain/variants"
	"comercial_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrSKUNotFound        = errors.New("sku not found")
	ErrInvalidProductName = errors.New("invalid product name")
	ErrInvalidTenant      = errors.New("invalid tenant id")
	ErrDuplicateSKUCodes  = errors.New("duplicate sku codes")
	ErrInvalidSKUCode     = errors.New("invalid sku code")
)

const aggregatesCacheTTL = 5 * time.Minute

// VariantPreview is what the authoring form shows before anything persists:
// the generated drafts plus the duplicate check over their codes.
type VariantPreview struct {
	Drafts     []entities.SKU            `json:"drafts"`
	Validation variants.ValidationResult `json:"validation"`
}

// ICatalogUseCase exposes catalog operations: product + SKU authoring with
// variant generation, cascade deletion, and SKU-derived aggregates.
type ICatalogUseCase interface {
	PreviewVariants(productName string, axes []entities.VariationAxis, basePrice, baseCost float64) (VariantPreview, error)
	CreateProductWithVariants(ctx context.Context, tenantID string, product entities.Product, axes []entities.VariationAxis, basePrice, baseCost float64) (entities.Product, []entities.SKU, error)
	GetProduct(ctx context.Context, tenantID, id string) (entities.Product, []entities.SKU, []entities.VariationAxis, error)
	ListProducts(ctx context.Context, tenantID string) ([]entities.Product, error)
	UpdateProduct(ctx context.Context, tenantID string, product entities.Product) (entities.Product, error)
	DeleteProductCascade(ctx context.Context, tenantID, id string) error
	UpdateSKU(ctx context.Context, tenantID string, sku entities.SKU) (entities.SKU, error)
	DeleteSKU(ctx context.Context, tenantID, id string) error
	ProductAggregates(ctx context.Context, tenantID, productID string) (entities.ProductAggregates, error)
}

type CatalogUseCase struct {
	products interfaces.IProductRepository
	skus     interfaces.ISKURepository
	cache    interfaces.ICache
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase wires the catalog. cache may be nil; aggregates then
// recompute on every call.
func NewCatalogUseCase(products interfaces.IProductRepository, skus interfaces.ISKURepository, cache interfaces.ICache) *CatalogUseCase {
	return &CatalogUseCase{products: products, skus: skus, cache: cache}
}

// PreviewVariants expands the axes into SKU drafts without persisting
// anything. The product id is a placeholder; the two-phase create rewrites
// it later. Pure and safe to re-run on every form edit.
func (u *CatalogUseCase) PreviewVariants(productName string, axes []entities.VariationAxis, basePrice, baseCost float64) (VariantPreview, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return VariantPreview{}, ErrInvalidProductName
	}

	drafts, err := variants.BuildDrafts("temp", productName, axes, basePrice, baseCost)
	if err != nil {
		return VariantPreview{}, err
	}
	return VariantPreview{
		Drafts:     drafts,
		Validation: variants.ValidateDuplicateCodes(variants.CollectCodes(drafts)),
	}, nil
}

// CreateProductWithVariants is the two-phase write: the parent product is
// created first, its generated id is rewritten into every draft, then the
// SKU batch goes out. If the parent create fails no SKU is written. A
// mid-batch failure returns the created parent and the SKUs written so far
// along with the error; there is no rollback or resume path, the partial
// product can be discarded via DeleteProductCascade. SKU ids are
// uuid5(product id, code), so writes under one parent can never duplicate
// a variant.
func (u *CatalogUseCase) CreateProductWithVariants(ctx context.Context, tenantID string, product entities.Product, axes []entities.VariationAxis, basePrice, baseCost float64) (entities.Product, []entities.SKU, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Product{}, nil, ErrInvalidTenant
	}
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return entities.Product{}, nil, ErrInvalidProductName
	}

	drafts, err := variants.BuildDrafts("", product.Name, axes, basePrice, baseCost)
	if err != nil {
		return entities.Product{}, nil, err
	}
	if res := variants.ValidateDuplicateCodes(variants.CollectCodes(drafts)); !res.Valid {
		log.Printf("[catalog][usecase] duplicate codes rejected product=%q dups=%v", product.Name, res.Duplicates)
		return entities.Product{}, nil, ErrDuplicateSKUCodes
	}

	axisNames := make([]string, len(axes))
	for i, a := range axes {
		axisNames[i] = a.Name
	}

	now := time.Now().UTC()
	product.ID = uuid.NewString()
	product.UserID = tenantID
	product.AttributeNames = axisNames
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := u.products.Create(ctx, product)
	if err != nil {
		log.Printf("[catalog][usecase] parent create failed product=%q err=%v", product.Name, err)
		return entities.Product{}, nil, err
	}

	skus := make([]entities.SKU, 0, len(drafts))
	for _, draft := range drafts {
		draft.ID = skuIDFor(created.ID, draft.Code)
		draft.ProductID = created.ID
		draft.UserID = tenantID
		draft.CreatedAt = now
		draft.UpdatedAt = now

		saved, err := u.skus.Put(ctx, draft)
		if err != nil {
			// No rollback: the partial parent and prefix are returned with
			// the error, the caller discards them via the cascade delete.
			log.Printf("[catalog][usecase] sku batch interrupted product_id=%s code=%s written=%d/%d err=%v",
				created.ID, draft.Code, len(skus), len(drafts), err)
			return created, skus, err
		}
		skus = append(skus, saved)
	}

	u.invalidateAggregates(ctx, tenantID, created.ID)
	return created, skus, nil
}

// GetProduct returns the product, its SKUs, and the variation axes rebuilt
// from the SKUs' attribute maps (axes are not persisted as entities).
func (u *CatalogUseCase) GetProduct(ctx context.Context, tenantID, id string) (entities.Product, []entities.SKU, []entities.VariationAxis, error) {
	p, err := u.products.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Product{}, nil, nil, err
	}
	if p.ID == "" {
		return entities.Product{}, nil, nil, ErrProductNotFound
	}

	skus, err := u.skus.ListByProduct(ctx, tenantID, id)
	if err != nil {
		return entities.Product{}, nil, nil, err
	}
	return p, skus, variants.AxesFromSKUs(p.AttributeNames, skus), nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, tenantID string) ([]entities.Product, error) {
	return u.products.ListByTenant(ctx, tenantID)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, tenantID string, product entities.Product) (entities.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}

	existing, err := u.products.GetByID(ctx, tenantID, product.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	product.UserID = tenantID
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC()
	return u.products.Update(ctx, product)
}

// DeleteProductCascade deletes children first, then the parent: SKUs must
// never survive un-owned. Zero SKUs found is a valid no-op first phase.
func (u *CatalogUseCase) DeleteProductCascade(ctx context.Context, tenantID, id string) error {
	p, err := u.products.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProductNotFound
	}

	skus, err := u.skus.ListByProduct(ctx, tenantID, id)
	if err != nil {
		return err
	}
	for _, s := range skus {
		if err := u.skus.Delete(ctx, tenantID, s.ID); err != nil {
			log.Printf("[catalog][usecase] cascade interrupted product_id=%s sku_id=%s err=%v", id, s.ID, err)
			return err
		}
	}

	if err := u.products.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	u.invalidateAggregates(ctx, tenantID, id)
	return nil
}

// UpdateSKU persists an individual SKU edit. A changed code re-runs the
// duplicate validator against the product's other SKUs before the write.
func (u *CatalogUseCase) UpdateSKU(ctx context.Context, tenantID string, sku entities.SKU) (entities.SKU, error) {
	sku.Code = strings.TrimSpace(sku.Code)
	if sku.Code == "" {
		return entities.SKU{}, ErrInvalidSKUCode
	}

	existing, err := u.skus.GetByID(ctx, tenantID, sku.ID)
	if err != nil {
		return entities.SKU{}, err
	}
	if existing.ID == "" {
		return entities.SKU{}, ErrSKUNotFound
	}

	if sku.Code != existing.Code {
		siblings, err := u.skus.ListByProduct(ctx, tenantID, existing.ProductID)
		if err != nil {
			return entities.SKU{}, err
		}
		codes := []string{sku.Code}
		for _, s := range siblings {
			if s.ID != sku.ID {
				codes = append(codes, s.Code)
			}
		}
		if res := variants.ValidateDuplicateCodes(codes); !res.Valid {
			return entities.SKU{}, ErrDuplicateSKUCodes
		}
	}

	sku.ProductID = existing.ProductID
	sku.UserID = tenantID
	sku.Attributes = existing.Attributes
	sku.CreatedAt = existing.CreatedAt
	sku.UpdatedAt = time.Now().UTC()

	saved, err := u.skus.Put(ctx, sku)
	if err != nil {
		return entities.SKU{}, err
	}
	u.invalidateAggregates(ctx, tenantID, existing.ProductID)
	return saved, nil
}

func (u *CatalogUseCase) DeleteSKU(ctx context.Context, tenantID, id string) error {
	existing, err := u.skus.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrSKUNotFound
	}
	if err := u.skus.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	u.invalidateAggregates(ctx, tenantID, existing.ProductID)
	return nil
}

// ProductAggregates derives stock total and price range from the product's
// SKU set, cached per tenant+product and invalidated on every SKU write.
func (u *CatalogUseCase) ProductAggregates(ctx context.Context, tenantID, productID string) (entities.ProductAggregates, error) {
	key := aggregatesCacheKey(tenantID, productID)
	if u.cache != nil {
		if raw, err := u.cache.Get(ctx, key); err == nil && raw != "" {
			var agg entities.ProductAggregates
			if err := json.Unmarshal([]byte(raw), &agg); err == nil {
				return agg, nil
			}
		}
	}

	skus, err := u.skus.ListByProduct(ctx, tenantID, productID)
	if err != nil {
		return entities.ProductAggregates{}, err
	}

	agg := entities.ProductAggregates{ProductID: productID}
	for i, s := range skus {
		agg.StockTotal += s.Stock
		if i == 0 {
			agg.HasSKUs = true
			agg.PriceMin = s.Price
			agg.PriceMax = s.Price
			continue
		}
		if s.Price < agg.PriceMin {
			agg.PriceMin = s.Price
		}
		if s.Price > agg.PriceMax {
			agg.PriceMax = s.Price
		}
	}

	if u.cache != nil {
		if raw, err := json.Marshal(agg); err == nil {
			if err := u.cache.Set(ctx, key, string(raw), aggregatesCacheTTL); err != nil {
				log.Printf("[catalog][usecase] aggregate cache set failed key=%s err=%v", key, err)
			}
		}
	}
	return agg, nil
}

func (u *CatalogUseCase) invalidateAggregates(ctx context.Context, tenantID, productID string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, aggregatesCacheKey(tenantID, productID)); err != nil {
		log.Printf("[catalog][usecase] aggregate cache invalidation failed product_id=%s err=%v", productID, err)
	}
}

func aggregatesCacheKey(tenantID, productID string) string {
	return "catalog:aggregates:" + tenantID + ":" + productID
}

// skuIDFor derives a stable SKU id from the parent id and the code, keeping
// batch creation idempotent.
func skuIDFor(productID, code string) string {
	ns, err := uuid.Parse(productID)
	if err != nil {
		ns = uuid.NameSpaceOID
	}
	return uuid.NewSHA1(ns, []byte(code)).String()
}
