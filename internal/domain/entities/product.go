package entities

import "time"

// Product is the parent catalog entry (produto pai) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// A product does not embed its sellable variants: SKUs live in their own
// table and reference the product by id. AttributeNames keeps the ordered
// variation axis names (e.g. ["Cor", "Tamanho"]) used to generate them.
type Product struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Brand          string    `json:"brand,omitempty"`
	CategoryID     string    `json:"category_id"`
	Active         bool      `json:"active"`
	AttributeNames []string  `json:"attribute_names,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// VariationAxis is a named variation dimension with its allowed values
// (e.g. "Cor" -> ["Preto", "Branco"]). Axes exist only while authoring a
// product; they are not persisted and are rebuilt from the SKUs' attribute
// maps when a product is reopened for editing.
type VariationAxis struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ProductAggregates carries values derived from a product's SKU set.
// PriceMin/PriceMax are only meaningful when HasSKUs is true.
type ProductAggregates struct {
	ProductID  string  `json:"product_id"`
	StockTotal int     `json:"stock_total"`
	HasSKUs    bool    `json:"has_skus"`
	PriceMin   float64 `json:"price_min"`
	PriceMax   float64 `json:"price_max"`
}
