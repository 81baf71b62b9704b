package response

import (
	"testing"
	"time"

	"comercial_xpto/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:       "q-1",
		UserID:   "user-1",
		ClientID: "c-1",
		Status:   entities.QuoteStatusConvertido,
		Items: []entities.QuoteItem{{
			SKUCode:     "CAM-AZU-M",
			ProductID:   "p-1",
			Description: "Camiseta - Azul / M",
			Quantity:    2,
			UnitPrice:   45.10,
			Total:       90.20,
			Snapshot: entities.QuoteItemSnapshot{
				Attributes:  map[string]string{"Cor": "Azul", "Tamanho": "M"},
				ProductName: "Camiseta",
			},
		}},
		Values:    entities.QuoteValues{Subtotal: 90.20, Total: 90.20},
		Payment:   &entities.QuotePayment{ProviderPaymentID: "mp-1", ProviderStatus: "approved", PaidAt: now},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.ClientID != "c-1" || res.Status != "CONVERTIDO" {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Description != "Camiseta - Azul / M" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Items[0].Snapshot.ProductName != "Camiseta" || res.Items[0].Snapshot.Attributes["Cor"] != "Azul" {
		t.Fatalf("unexpected snapshot: %+v", res.Items[0].Snapshot)
	}
	if res.Values.Total != 90.20 {
		t.Fatalf("unexpected values: %+v", res.Values)
	}
	if res.Payment == nil || res.Payment.ProviderPaymentID != "mp-1" {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
}

func TestFromQuote_NoPayment(t *testing.T) {
	res := FromQuote(entities.Quote{ID: "q-1", Status: entities.QuoteStatusRascunho})
	if res.Payment != nil {
		t.Fatalf("expected nil payment, got %+v", res.Payment)
	}
}
