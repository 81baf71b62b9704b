package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (orçamento).
//
// Domain notes:
//   - Statuses express intent, not an enforced transition graph: any status
//     may be set at any time. The single hard rule is that item and value
//     mutations are refused once a quote is CONVERTIDO.
type QuoteStatus string

const (
	QuoteStatusRascunho   QuoteStatus = "RASCUNHO"
	QuoteStatusEnviado    QuoteStatus = "ENVIADO"
	QuoteStatusAprovado   QuoteStatus = "APROVADO"
	QuoteStatusRejeitado  QuoteStatus = "REJEITADO"
	QuoteStatusConvertido QuoteStatus = "CONVERTIDO"
)

// Known reports whether s is one of the defined quote statuses.
func (s QuoteStatus) Known() bool {
	switch s {
	case QuoteStatusRascunho, QuoteStatusEnviado, QuoteStatusAprovado,
		QuoteStatusRejeitado, QuoteStatusConvertido:
		return true
	}
	return false
}

// QuoteValues is the monetary block of a quote. Total is always derived
// (subtotal - discount + freight, clamped at zero) and recomputed after
// every item or value change; it is never authored directly.
type QuoteValues struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Freight  float64 `json:"freight"`
	Total    float64 `json:"total"`
}

// QuoteItemSnapshot freezes the product/SKU data an item was built from, so
// later catalog edits never alter an already-issued quote.
type QuoteItemSnapshot struct {
	Attributes   map[string]string `json:"attributes"`
	ProductName  string            `json:"product_name"`
	CategoryName string            `json:"category_name,omitempty"`
}

// QuoteItem is one line of a quote. UnitPrice is the SKU price captured at
// add time; Total = Quantity * UnitPrice - Discount. SKUCode is unique
// within one quote's item list.
type QuoteItem struct {
	SKUCode     string            `json:"sku_code"`
	ProductID   string            `json:"product_id"`
	Description string            `json:"description"`
	Quantity    int               `json:"quantity"`
	UnitPrice   float64           `json:"unit_price"`
	Discount    float64           `json:"discount"`
	Total       float64           `json:"total"`
	Snapshot    QuoteItemSnapshot `json:"snapshot"`
}

// QuotePayment records the gateway outcome of a quote conversion.
type QuotePayment struct {
	ProviderPaymentID string    `json:"provider_payment_id"`
	ProviderStatus    string    `json:"provider_status"`
	PaidAt            time.Time `json:"paid_at"`
}

// Quote is the full quote document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// The item list and values block are always written together as one
// document; there is no per-item persistence granularity.
type Quote struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Status       QuoteStatus   `json:"status"`
	ClientID     string        `json:"client_id"`
	Validity     string        `json:"validity,omitempty"`
	PaymentTerms string        `json:"payment_terms,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	Values       QuoteValues   `json:"values"`
	Items        []QuoteItem   `json:"items"`
	Payment      *QuotePayment `json:"payment,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Converted reports whether the quote reached its terminal status.
func (q Quote) Converted() bool {
	return q.Status == QuoteStatusConvertido
}
