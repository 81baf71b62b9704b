package request

import (
	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/usecase"
)

type QuoteItemRequest struct {
	SKUID    string  `json:"sku_id" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	Discount float64 `json:"discount"`
}

// CreateQuoteRequest creates a whole quote in one call. Item prices are
// resolved from the catalog server-side; the payload only references SKUs.
type CreateQuoteRequest struct {
	ClientID     string             `json:"client_id" binding:"required"`
	Validity     string             `json:"validity"`
	PaymentTerms string             `json:"payment_terms"`
	Notes        string             `json:"notes"`
	Discount     float64            `json:"discount"`
	Freight      float64            `json:"freight"`
	Send         bool               `json:"send"`
	Items        []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateQuoteRequest) ToInput() usecase.QuoteInput {
	items := make([]usecase.QuoteItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.QuoteItemInput{
			SKUID:    it.SKUID,
			Quantity: it.Quantity,
			Discount: it.Discount,
		})
	}
	return usecase.QuoteInput{
		ClientID:     r.ClientID,
		Validity:     r.Validity,
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
		Discount:     r.Discount,
		Freight:      r.Freight,
		Send:         r.Send,
		Items:        items,
	}
}

// UpdateQuoteHeaderRequest edits header and value fields; the item list is
// untouched so existing snapshots survive.
type UpdateQuoteHeaderRequest struct {
	ClientID     string  `json:"client_id" binding:"required"`
	Validity     string  `json:"validity"`
	PaymentTerms string  `json:"payment_terms"`
	Notes        string  `json:"notes"`
	Discount     float64 `json:"discount"`
	Freight      float64 `json:"freight"`
}

func (r UpdateQuoteHeaderRequest) ToInput() usecase.QuoteHeaderInput {
	return usecase.QuoteHeaderInput{
		ClientID:     r.ClientID,
		Validity:     r.Validity,
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
		Discount:     r.Discount,
		Freight:      r.Freight,
	}
}

type AddQuoteItemRequest struct {
	SKUID    string  `json:"sku_id" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	Discount float64 `json:"discount"`
}

func (r AddQuoteItemRequest) ToInput() usecase.QuoteItemInput {
	return usecase.QuoteItemInput{
		SKUID:    r.SKUID,
		Quantity: r.Quantity,
		Discount: r.Discount,
	}
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateQuoteStatusRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(r.Status)
}
