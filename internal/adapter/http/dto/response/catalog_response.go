package response

import (
	"time"

	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/usecase"
)

type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Brand          string    `json:"brand,omitempty"`
	CategoryID     string    `json:"category_id,omitempty"`
	Active         bool      `json:"active"`
	AttributeNames []string  `json:"attribute_names,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Brand:          p.Brand,
		CategoryID:     p.CategoryID,
		Active:         p.Active,
		AttributeNames: p.AttributeNames,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProducts(list []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

type SKUResponse struct {
	ID         string            `json:"id"`
	Code       string            `json:"code"`
	ProductID  string            `json:"product_id"`
	Price      float64           `json:"price"`
	Stock      int               `json:"stock"`
	Cost       float64           `json:"cost,omitempty"`
	Active     bool              `json:"active"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func FromSKU(s entities.SKU) SKUResponse {
	return SKUResponse{
		ID:         s.ID,
		Code:       s.Code,
		ProductID:  s.ProductID,
		Price:      s.Price,
		Stock:      s.Stock,
		Cost:       s.Cost,
		Active:     s.Active,
		Attributes: s.Attributes,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func FromSKUs(list []entities.SKU) []SKUResponse {
	out := make([]SKUResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSKU(s))
	}
	return out
}

type VariationAxisResponse struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ProductDetailResponse is the full authoring view: the parent, its SKUs
// and the axes rebuilt from them.
type ProductDetailResponse struct {
	Product ProductResponse         `json:"product"`
	SKUs    []SKUResponse           `json:"skus"`
	Axes    []VariationAxisResponse `json:"axes"`
}

func FromProductDetail(p entities.Product, skus []entities.SKU, axes []entities.VariationAxis) ProductDetailResponse {
	axesOut := make([]VariationAxisResponse, 0, len(axes))
	for _, a := range axes {
		axesOut = append(axesOut, VariationAxisResponse{Name: a.Name, Values: a.Values})
	}
	return ProductDetailResponse{
		Product: FromProduct(p),
		SKUs:    FromSKUs(skus),
		Axes:    axesOut,
	}
}

type ValidationResponse struct {
	Valid      bool     `json:"valid"`
	Duplicates []string `json:"duplicates,omitempty"`
}

type VariantPreviewResponse struct {
	Drafts     []SKUResponse      `json:"drafts"`
	Validation ValidationResponse `json:"validation"`
}

func FromVariantPreview(p usecase.VariantPreview) VariantPreviewResponse {
	return VariantPreviewResponse{
		Drafts: FromSKUs(p.Drafts),
		Validation: ValidationResponse{
			Valid:      p.Validation.Valid,
			Duplicates: p.Validation.Duplicates,
		},
	}
}

type CreateProductResponse struct {
	Product ProductResponse `json:"product"`
	SKUs    []SKUResponse   `json:"skus"`
}

func FromCreatedProduct(p entities.Product, skus []entities.SKU) CreateProductResponse {
	return CreateProductResponse{
		Product: FromProduct(p),
		SKUs:    FromSKUs(skus),
	}
}

type ProductAggregatesResponse struct {
	ProductID  string  `json:"product_id"`
	StockTotal int     `json:"stock_total"`
	HasSKUs    bool    `json:"has_skus"`
	PriceMin   float64 `json:"price_min"`
	PriceMax   float64 `json:"price_max"`
}

func FromProductAggregates(a entities.ProductAggregates) ProductAggregatesResponse {
	return ProductAggregatesResponse{
		ProductID:  a.ProductID,
		StockTotal: a.StockTotal,
		HasSKUs:    a.HasSKUs,
		PriceMin:   a.PriceMin,
		PriceMax:   a.PriceMax,
	}
}
