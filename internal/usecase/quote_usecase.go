package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrQuoteClientNotFound  = errors.New("quote client not found")
	ErrUnknownQuoteStatus   = errors.New("unknown quote status")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// QuoteItemInput references a SKU to be turned into a line item. The server
// resolves price and snapshot itself — client-supplied prices are never
// trusted.
type QuoteItemInput struct {
	SKUID    string  `json:"sku_id" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Discount float64 `json:"discount" validate:"min=0"`
}

// QuoteInput creates a quote in one call: header, initial items, values.
type QuoteInput struct {
	ClientID     string           `json:"client_id" validate:"required"`
	Validity     string           `json:"validity"`
	PaymentTerms string           `json:"payment_terms"`
	Notes        string           `json:"notes"`
	Discount     float64          `json:"discount" validate:"min=0"`
	Freight      float64          `json:"freight" validate:"min=0"`
	Send         bool             `json:"send"`
	Items        []QuoteItemInput `json:"items" validate:"required,min=1,dive"`
}

// QuoteHeaderInput updates header fields and the authored value fields of
// an existing quote; the item list is untouched.
type QuoteHeaderInput struct {
	ClientID     string  `json:"client_id" validate:"required"`
	Validity     string  `json:"validity"`
	PaymentTerms string  `json:"payment_terms"`
	Notes        string  `json:"notes"`
	Discount     float64 `json:"discount" validate:"min=0"`
	Freight      float64 `json:"freight" validate:"min=0"`
}

// IQuoteUseCase exposes the quote (orçamento) lifecycle. Every mutation
// recomputes the values block through the composer and rewrites the whole
// document; a store failure leaves the persisted quote untouched and the
// caller free to retry.
type IQuoteUseCase interface {
	Create(ctx context.Context, tenantID string, in QuoteInput) (entities.Quote, error)
	UpdateHeader(ctx context.Context, tenantID, id string, in QuoteHeaderInput) (entities.Quote, error)
	AddItem(ctx context.Context, tenantID, quoteID string, in QuoteItemInput) (entities.Quote, error)
	RemoveItem(ctx context.Context, tenantID, quoteID string, index int) (entities.Quote, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus) (entities.Quote, error)
	Convert(ctx context.Context, tenantID, id string) (entities.Quote, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.Quote, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type QuoteUseCase struct {
	quotes   interfaces.IQuoteRepository
	skus     interfaces.ISKURepository
	products interfaces.IProductRepository
	clients  interfaces.IClientRepository
	gateway  interfaces.IPaymentGateway
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	skus interfaces.ISKURepository,
	products interfaces.IProductRepository,
	clients interfaces.IClientRepository,
	gateway interfaces.IPaymentGateway,
) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, skus: skus, products: products, clients: clients, gateway: gateway}
}

func (u *QuoteUseCase) Create(ctx context.Context, tenantID string, in QuoteInput) (entities.Quote, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Quote{}, ErrInvalidTenant
	}

	if err := u.ensureClient(ctx, tenantID, in.ClientID); err != nil {
		return entities.Quote{}, err
	}

	composer := NewQuoteComposer()
	composer.SetClient(in.ClientID)
	composer.SetValidity(in.Validity)
	composer.SetPaymentTerms(in.PaymentTerms)
	composer.SetNotes(in.Notes)

	for _, item := range in.Items {
		if err := u.addItemFromInput(ctx, tenantID, composer, item); err != nil {
			return entities.Quote{}, err
		}
	}
	if err := composer.SetGeneralDiscount(in.Discount); err != nil {
		return entities.Quote{}, err
	}
	if err := composer.SetFreight(in.Freight); err != nil {
		return entities.Quote{}, err
	}
	if err := composer.Validate(); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	q := composer.Quote()
	q.ID = uuid.NewString()
	q.UserID = tenantID
	q.Status = entities.QuoteStatusRascunho
	if in.Send {
		q.Status = entities.QuoteStatusEnviado
	}
	q.CreatedAt = now
	q.UpdatedAt = now

	return u.quotes.Create(ctx, q)
}

func (u *QuoteUseCase) UpdateHeader(ctx context.Context, tenantID, id string, in QuoteHeaderInput) (entities.Quote, error) {
	q, err := u.load(ctx, tenantID, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Converted() {
		return entities.Quote{}, ErrQuoteConverted
	}
	if err := u.ensureClient(ctx, tenantID, in.ClientID); err != nil {
		return entities.Quote{}, err
	}

	composer := NewQuoteComposerFrom(q)
	composer.SetClient(in.ClientID)
	composer.SetValidity(in.Validity)
	composer.SetPaymentTerms(in.PaymentTerms)
	composer.SetNotes(in.Notes)
	if err := composer.SetGeneralDiscount(in.Discount); err != nil {
		return entities.Quote{}, err
	}
	if err := composer.SetFreight(in.Freight); err != nil {
		return entities.Quote{}, err
	}
	if err := composer.Validate(); err != nil {
		return entities.Quote{}, err
	}

	return u.save(ctx, composer.Quote())
}

func (u *QuoteUseCase) AddItem(ctx context.Context, tenantID, quoteID string, in QuoteItemInput) (entities.Quote, error) {
	q, err := u.load(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	composer := NewQuoteComposerFrom(q)
	if err := u.addItemFromInput(ctx, tenantID, composer, in); err != nil {
		return entities.Quote{}, err
	}
	return u.save(ctx, composer.Quote())
}

func (u *QuoteUseCase) RemoveItem(ctx context.Context, tenantID, quoteID string, index int) (entities.Quote, error) {
	q, err := u.load(ctx, tenantID, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	composer := NewQuoteComposerFrom(q)
	if err := composer.RemoveItem(index); err != nil {
		return entities.Quote{}, err
	}
	// The persisted document must stay savable; removing the last item
	// fails the validate gate and leaves the quote untouched.
	if err := composer.Validate(); err != nil {
		return entities.Quote{}, err
	}
	return u.save(ctx, composer.Quote())
}

// UpdateStatus sets any known status without checking the prior one, except
// that a converted quote is terminal.
func (u *QuoteUseCase) UpdateStatus(ctx context.Context, tenantID, id string, status entities.QuoteStatus) (entities.Quote, error) {
	if !status.Known() {
		return entities.Quote{}, ErrUnknownQuoteStatus
	}
	q, err := u.load(ctx, tenantID, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Converted() {
		return entities.Quote{}, ErrQuoteConverted
	}

	updated, err := u.quotes.UpdateStatus(ctx, tenantID, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// Convert charges the quote total through the payment gateway and, only on
// success, marks the quote CONVERTIDO with the payment recorded inside the
// document. A gateway or store failure leaves the quote untouched.
func (u *QuoteUseCase) Convert(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	q, err := u.load(ctx, tenantID, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Converted() {
		return entities.Quote{}, ErrQuoteConverted
	}
	if len(q.Items) == 0 {
		return entities.Quote{}, ErrQuoteNoItems
	}
	if u.gateway == nil {
		return entities.Quote{}, ErrGatewayNotConfigured
	}

	payload, err := json.Marshal(map[string]interface{}{
		"transaction_amount": q.Values.Total,
		"description":        fmt.Sprintf("Orçamento %s", q.ID),
		"external_reference": q.ID,
	})
	if err != nil {
		return entities.Quote{}, err
	}

	log.Printf("[quote][usecase] convert start quote_id=%s total=%.2f", q.ID, q.Values.Total)
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[quote][usecase] convert payment failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, err
	}

	q.Status = entities.QuoteStatusConvertido
	q.Payment = &entities.QuotePayment{
		ProviderPaymentID: providerID,
		ProviderStatus:    providerStatus,
		PaidAt:            time.Now().UTC(),
	}
	return u.save(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	return u.load(ctx, tenantID, id)
}

func (u *QuoteUseCase) ListByTenant(ctx context.Context, tenantID string) ([]entities.Quote, error) {
	return u.quotes.ListByTenant(ctx, tenantID)
}

func (u *QuoteUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := u.load(ctx, tenantID, id); err != nil {
		return err
	}
	return u.quotes.Delete(ctx, tenantID, id)
}

func (u *QuoteUseCase) load(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.UpdatedAt = time.Now().UTC()
	return u.quotes.Save(ctx, q)
}

func (u *QuoteUseCase) ensureClient(ctx context.Context, tenantID, clientID string) error {
	if strings.TrimSpace(clientID) == "" {
		return ErrQuoteNoClient
	}
	c, err := u.clients.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrQuoteClientNotFound
	}
	return nil
}

// addItemFromInput resolves the referenced SKU and its parent product, then
// lets the composer apply the add-item gates and snapshot capture.
func (u *QuoteUseCase) addItemFromInput(ctx context.Context, tenantID string, composer *QuoteComposer, in QuoteItemInput) error {
	sku, err := u.skus.GetByID(ctx, tenantID, strings.TrimSpace(in.SKUID))
	if err != nil {
		return err
	}
	if sku.ID == "" {
		return ErrSKUNotFound
	}

	product, err := u.products.GetByID(ctx, tenantID, sku.ProductID)
	if err != nil {
		return err
	}
	if product.ID == "" {
		return ErrProductNotFound
	}

	return composer.AddItem(product, sku, in.Quantity, in.Discount)
}
