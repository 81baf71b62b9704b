package request

import (
	"testing"

	"comercial_xpto/internal/domain/entities"
)

func TestCreateQuoteRequest_ToInput(t *testing.T) {
	r := CreateQuoteRequest{
		ClientID: "c-1",
		Validity: "30 dias",
		Discount: 5,
		Freight:  12.5,
		Send:     true,
		Items: []QuoteItemRequest{
			{SKUID: "s-1", Quantity: 2, Discount: 1},
			{SKUID: "s-2", Quantity: 1},
		},
	}

	in := r.ToInput()
	if in.ClientID != "c-1" || in.Validity != "30 dias" || !in.Send {
		t.Fatalf("unexpected header fields: %+v", in)
	}
	if in.Discount != 5 || in.Freight != 12.5 {
		t.Fatalf("unexpected value fields: %+v", in)
	}
	if len(in.Items) != 2 || in.Items[0].SKUID != "s-1" || in.Items[0].Quantity != 2 || in.Items[0].Discount != 1 {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
}

func TestUpdateQuoteStatusRequest_ResolveStatus(t *testing.T) {
	r := UpdateQuoteStatusRequest{Status: "APROVADO"}
	if got := r.ResolveStatus(); got != entities.QuoteStatusAprovado {
		t.Fatalf("expected APROVADO, got %q", got)
	}
	if got := (UpdateQuoteStatusRequest{Status: "PAGO"}).ResolveStatus(); got.Known() {
		t.Fatalf("expected unknown status to stay unknown")
	}
}
