package usecase

import (
	"errors"
	"fmt"

	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/domain/variants"
)

var (
	ErrItemInvalidQuantity   = errors.New("item quantity must be at least 1")
	ErrItemQuantityOverStock = errors.New("item quantity exceeds sku stock")
	ErrItemInvalidDiscount   = errors.New("item discount out of range")
	ErrItemInactiveSKU       = errors.New("sku is inactive")
	ErrItemDuplicateSKU      = errors.New("sku already present in quote")
	ErrItemIndexOutOfRange   = errors.New("item index out of range")
	ErrNegativeValue         = errors.New("value must not be negative")
	ErrQuoteNoClient         = errors.New("quote has no client")
	ErrQuoteNoItems          = errors.New("quote has no items")
	ErrQuoteNegativeTotal    = errors.New("quote total is negative")
	ErrQuoteConverted        = errors.New("quote already converted")
)

// ComposerStep mirrors the three authoring stages of a quote. The steps
// sequence the UI, nothing more — the persisted status field is independent
// of them.
type ComposerStep int

const (
	StepHeader ComposerStep = iota + 1
	StepItems
	StepTotals
)

// QuoteComposer owns one in-progress quote draft: it is the single writer
// of the item list and values block while authoring, and every mutation
// triggers a totals recomputation. It performs no I/O; QuoteUseCase feeds
// it entities and persists the finished document.
type QuoteComposer struct {
	quote entities.Quote
	step  ComposerStep
}

// NewQuoteComposer starts a fresh RASCUNHO draft.
func NewQuoteComposer() *QuoteComposer {
	return &QuoteComposer{
		quote: entities.Quote{
			Status: entities.QuoteStatusRascunho,
			Items:  []entities.QuoteItem{},
		},
		step: StepHeader,
	}
}

// NewQuoteComposerFrom resumes authoring over an existing quote. Existing
// items keep their snapshots untouched; only totals are re-derived.
func NewQuoteComposerFrom(q entities.Quote) *QuoteComposer {
	c := &QuoteComposer{quote: q, step: StepHeader}
	c.recalculate()
	return c
}

// Quote returns the current draft. Totals are current because every
// mutator recalculates them; this method itself computes nothing.
func (c *QuoteComposer) Quote() entities.Quote {
	return c.quote
}

func (c *QuoteComposer) Step() ComposerStep { return c.step }

// CanProceed reports whether the current step's gate is satisfied: a client
// on the header step, at least one item on the items step.
func (c *QuoteComposer) CanProceed() bool {
	switch c.step {
	case StepHeader:
		return c.quote.ClientID != ""
	case StepItems:
		return len(c.quote.Items) > 0
	default:
		return true
	}
}

// Next advances the stepper when the current gate passes.
func (c *QuoteComposer) Next() bool {
	if c.step < StepTotals && c.CanProceed() {
		c.step++
		return true
	}
	return false
}

func (c *QuoteComposer) Previous() {
	if c.step > StepHeader {
		c.step--
	}
}

func (c *QuoteComposer) SetClient(clientID string) { c.quote.ClientID = clientID }

func (c *QuoteComposer) SetValidity(v string) { c.quote.Validity = v }

func (c *QuoteComposer) SetPaymentTerms(terms string) { c.quote.PaymentTerms = terms }

func (c *QuoteComposer) SetNotes(notes string) { c.quote.Notes = notes }

// AddItem appends a line built from the chosen SKU, capturing the price and
// attribute snapshot now so later catalog edits never reach this quote.
// Rejections leave the item list untouched.
func (c *QuoteComposer) AddItem(product entities.Product, sku entities.SKU, quantity int, discount float64) error {
	if c.quote.Converted() {
		return ErrQuoteConverted
	}
	if !sku.Active {
		return ErrItemInactiveSKU
	}
	if quantity < 1 {
		return ErrItemInvalidQuantity
	}
	if quantity > sku.Stock {
		return ErrItemQuantityOverStock
	}
	gross := sku.Price * float64(quantity)
	if discount < 0 || discount > gross {
		return ErrItemInvalidDiscount
	}
	for _, it := range c.quote.Items {
		if it.SKUCode == sku.Code {
			return ErrItemDuplicateSKU
		}
	}

	description := product.Name
	if formatted := variants.FormatAttributes(product.AttributeNames, sku.Attributes); formatted != "" {
		description = fmt.Sprintf("%s - %s", product.Name, formatted)
	}

	attrs := make(map[string]string, len(sku.Attributes))
	for k, v := range sku.Attributes {
		attrs[k] = v
	}

	c.quote.Items = append(c.quote.Items, entities.QuoteItem{
		SKUCode:     sku.Code,
		ProductID:   product.ID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   sku.Price,
		Discount:    discount,
		Total:       gross - discount,
		Snapshot: entities.QuoteItemSnapshot{
			Attributes:  attrs,
			ProductName: product.Name,
		},
	})
	c.recalculate()
	return nil
}

// RemoveItem removes by position.
func (c *QuoteComposer) RemoveItem(index int) error {
	if c.quote.Converted() {
		return ErrQuoteConverted
	}
	if index < 0 || index >= len(c.quote.Items) {
		return ErrItemIndexOutOfRange
	}
	c.quote.Items = append(c.quote.Items[:index], c.quote.Items[index+1:]...)
	c.recalculate()
	return nil
}

// SetGeneralDiscount sets the flat discount applied to the whole quote.
func (c *QuoteComposer) SetGeneralDiscount(v float64) error {
	if v < 0 {
		return ErrNegativeValue
	}
	c.quote.Values.Discount = v
	c.recalculate()
	return nil
}

// SetFreight sets the flat freight amount.
func (c *QuoteComposer) SetFreight(v float64) error {
	if v < 0 {
		return ErrNegativeValue
	}
	c.quote.Values.Freight = v
	c.recalculate()
	return nil
}

// recalculate derives the values block: subtotal is the sum of item totals,
// total = subtotal - discount + freight clamped at zero. Idempotent — runs
// after every item or value mutation.
func (c *QuoteComposer) recalculate() {
	subtotal := 0.0
	for _, it := range c.quote.Items {
		subtotal += it.Total
	}
	c.quote.Values.Subtotal = subtotal

	total := subtotal - c.quote.Values.Discount + c.quote.Values.Freight
	if total < 0 {
		total = 0
	}
	c.quote.Values.Total = total
}

// Validate is the save gate: a client, at least one item, non-negative
// total. Saving as draft or sent passes through the same gate.
func (c *QuoteComposer) Validate() error {
	if c.quote.ClientID == "" {
		return ErrQuoteNoClient
	}
	if len(c.quote.Items) == 0 {
		return ErrQuoteNoItems
	}
	if c.quote.Values.Total < 0 {
		return ErrQuoteNegativeTotal
	}
	return nil
}
