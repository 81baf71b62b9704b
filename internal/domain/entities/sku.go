package entities

import "time"

// SKU is one concrete sellable variant of a parent product.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (product_id-index): product_id
//   - GSI2 (user_id-index): user_id
//
// Code is unique among the SKUs of one product, not globally: the duplicate
// validator must run before a batch (or an edited code) is persisted.
// Attributes holds exactly one value per axis defined on the parent
// (e.g. {"Cor": "Preto", "Tamanho": "M"}).
type SKU struct {
	ID         string            `json:"id"`
	Code       string            `json:"code"`
	ProductID  string            `json:"product_id"`
	UserID     string            `json:"user_id"`
	Price      float64           `json:"price"`
	Stock      int               `json:"stock"`
	Cost       float64           `json:"cost,omitempty"`
	Active     bool              `json:"active"`
	Attributes map[string]string `json:"attributes"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
