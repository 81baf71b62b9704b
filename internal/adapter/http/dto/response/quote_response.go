package response

import (
	"time"

	"comercial_xpto/internal/domain/entities"
)

type QuoteItemSnapshotResponse struct {
	Attributes   map[string]string `json:"attributes,omitempty"`
	ProductName  string            `json:"product_name"`
	CategoryName string            `json:"category_name,omitempty"`
}

type QuoteItemResponse struct {
	SKUCode     string                    `json:"sku_code"`
	ProductID   string                    `json:"product_id"`
	Description string                    `json:"description"`
	Quantity    int                       `json:"quantity"`
	UnitPrice   float64                   `json:"unit_price"`
	Discount    float64                   `json:"discount"`
	Total       float64                   `json:"total"`
	Snapshot    QuoteItemSnapshotResponse `json:"snapshot"`
}

type QuoteValuesResponse struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Freight  float64 `json:"freight"`
	Total    float64 `json:"total"`
}

type QuotePaymentResponse struct {
	ProviderPaymentID string    `json:"provider_payment_id"`
	ProviderStatus    string    `json:"provider_status"`
	PaidAt            time.Time `json:"paid_at"`
}

type QuoteResponse struct {
	ID           string                `json:"id"`
	Status       string                `json:"status"`
	ClientID     string                `json:"client_id"`
	Validity     string                `json:"validity,omitempty"`
	PaymentTerms string                `json:"payment_terms,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	Values       QuoteValuesResponse   `json:"values"`
	Items        []QuoteItemResponse   `json:"items"`
	Payment      *QuotePaymentResponse `json:"payment,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			SKUCode:     it.SKUCode,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Total:       it.Total,
			Snapshot: QuoteItemSnapshotResponse{
				Attributes:   it.Snapshot.Attributes,
				ProductName:  it.Snapshot.ProductName,
				CategoryName: it.Snapshot.CategoryName,
			},
		})
	}

	resp := QuoteResponse{
		ID:           q.ID,
		Status:       string(q.Status),
		ClientID:     q.ClientID,
		Validity:     q.Validity,
		PaymentTerms: q.PaymentTerms,
		Notes:        q.Notes,
		Values: QuoteValuesResponse{
			Subtotal: q.Values.Subtotal,
			Discount: q.Values.Discount,
			Freight:  q.Values.Freight,
			Total:    q.Values.Total,
		},
		Items:     items,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
	if q.Payment != nil {
		resp.Payment = &QuotePaymentResponse{
			ProviderPaymentID: q.Payment.ProviderPaymentID,
			ProviderStatus:    q.Payment.ProviderStatus,
			PaidAt:            q.Payment.PaidAt,
		}
	}
	return resp
}

func FromQuotes(list []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, FromQuote(q))
	}
	return out
}
