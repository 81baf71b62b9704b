package request

import (
	"comercial_xpto/internal/domain/entities"
)

type VariationAxisRequest struct {
	Name   string   `json:"name" binding:"required"`
	Values []string `json:"values" binding:"required,min=1"`
}

// PreviewVariantsRequest asks for the SKU drafts a product form would
// generate, without persisting anything.
type PreviewVariantsRequest struct {
	Name      string                 `json:"name" binding:"required"`
	Axes      []VariationAxisRequest `json:"axes"`
	BasePrice float64                `json:"base_price"`
	BaseCost  float64                `json:"base_cost"`
}

func (r PreviewVariantsRequest) ResolveAxes() []entities.VariationAxis {
	return toAxes(r.Axes)
}

// CreateProductRequest creates the parent product and its variant SKUs in
// one call. An empty axes list yields a single SKU.
type CreateProductRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Brand       string                 `json:"brand"`
	CategoryID  string                 `json:"category_id"`
	Active      *bool                  `json:"active"`
	Axes        []VariationAxisRequest `json:"axes"`
	BasePrice   float64                `json:"base_price"`
	BaseCost    float64                `json:"base_cost"`
}

func (r CreateProductRequest) ToProduct() entities.Product {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return entities.Product{
		Name:        r.Name,
		Description: r.Description,
		Brand:       r.Brand,
		CategoryID:  r.CategoryID,
		Active:      active,
	}
}

func (r CreateProductRequest) ResolveAxes() []entities.VariationAxis {
	return toAxes(r.Axes)
}

// UpdateProductRequest edits the parent product only; its SKUs are managed
// through the SKU endpoints.
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	CategoryID  string `json:"category_id"`
	Active      bool   `json:"active"`
}

func (r UpdateProductRequest) ToProduct(id string) entities.Product {
	return entities.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Brand:       r.Brand,
		CategoryID:  r.CategoryID,
		Active:      r.Active,
	}
}

// UpdateSKURequest edits one SKU. The attribute map is immutable after
// generation; only commercial fields and the code may change.
type UpdateSKURequest struct {
	Code   string  `json:"code" binding:"required"`
	Price  float64 `json:"price"`
	Stock  int     `json:"stock"`
	Cost   float64 `json:"cost"`
	Active bool    `json:"active"`
}

func (r UpdateSKURequest) ToSKU(id string) entities.SKU {
	return entities.SKU{
		ID:     id,
		Code:   r.Code,
		Price:  r.Price,
		Stock:  r.Stock,
		Cost:   r.Cost,
		Active: r.Active,
	}
}

func toAxes(reqs []VariationAxisRequest) []entities.VariationAxis {
	axes := make([]entities.VariationAxis, 0, len(reqs))
	for _, a := range reqs {
		axes = append(axes, entities.VariationAxis{Name: a.Name, Values: a.Values})
	}
	return axes
}
