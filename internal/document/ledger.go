package document

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineItem is one row of a document. Prices and VAT are only present when the
// document type shows prices.
type LineItem struct {
	ID        int
	Name      string
	Quantity  decimal.Decimal
	UnitPrice *decimal.Decimal
	VATRate   *VATRate
}

// LineTotal is quantity times unit price, zero for unpriced items.
func (i LineItem) LineTotal() decimal.Decimal {
	if i.UnitPrice == nil {
		return decimal.Zero
	}
	return i.Quantity.Mul(*i.UnitPrice)
}

// VATAmount is the VAT on the line total.
func (i LineItem) VATAmount() decimal.Decimal {
	if i.VATRate == nil {
		return decimal.Zero
	}
	return i.LineTotal().Mul(i.VATRate.Decimal()).Div(hundred)
}

// LineTotalWithVAT is the line total including VAT.
func (i LineItem) LineTotalWithVAT() decimal.Decimal {
	return i.LineTotal().Add(i.VATAmount())
}

// ItemInput carries the raw form values of one line item.
type ItemInput struct {
	Name      string `json:"name"`
	Quantity  string `json:"qty"`
	UnitPrice string `json:"price,omitempty"`
	VATRate   string `json:"vat,omitempty"`
}

// Totals are the document sums over all line items.
type Totals struct {
	Subtotal decimal.Decimal
	VATTotal decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums the items. The second result is false when the document
// type does not show prices, in which case no totals exist.
func ComputeTotals(items []LineItem, cfg TypeConfig) (Totals, bool) {
	if !cfg.ShowPrices {
		return Totals{}, false
	}

	subtotal := decimal.Zero
	vatTotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
		vatTotal = vatTotal.Add(item.VATAmount())
	}

	return Totals{
		Subtotal: subtotal,
		VATTotal: vatTotal,
		Total:    subtotal.Add(vatTotal),
	}, true
}

// Ledger is the ordered list of line items of one draft. Item ids are unique
// for the lifetime of the ledger and never reused, and the ledger always
// holds at least one item once the first one was added.
type Ledger struct {
	config TypeConfig
	items  []LineItem
	nextID int
}

// NewLedger creates an empty ledger for the given document type config.
func NewLedger(cfg TypeConfig) *Ledger {
	return &Ledger{config: cfg, nextID: 1}
}

// Add appends an empty item and returns its id.
func (l *Ledger) Add() int {
	item := LineItem{
		ID:       l.nextID,
		Quantity: decimal.Zero,
	}
	if l.config.ShowPrices {
		price := decimal.Zero
		rate := VAT21
		item.UnitPrice = &price
		item.VATRate = &rate
	}
	l.nextID++
	l.items = append(l.items, item)
	return item.ID
}

// Remove deletes an item. Removing the last remaining item or an unknown id
// does nothing and returns false.
func (l *Ledger) Remove(id int) bool {
	if len(l.items) <= 1 {
		return false
	}
	idx := l.index(id)
	if idx < 0 {
		return false
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return true
}

// Update replaces the fields of an item from raw form values. Numeric values
// are parsed tolerantly; price and VAT are ignored for unpriced documents.
func (l *Ledger) Update(id int, in ItemInput) bool {
	idx := l.index(id)
	if idx < 0 {
		return false
	}

	item := &l.items[idx]
	item.Name = in.Name
	item.Quantity = ParseQuantity(in.Quantity)
	if l.config.ShowPrices {
		price := ParsePrice(in.UnitPrice)
		item.UnitPrice = &price
		rate := VAT21
		if in.VATRate != "" {
			rate, _ = ParseVATRate(in.VATRate)
		}
		item.VATRate = &rate
	}
	return true
}

// Item returns a copy of the item with the given id.
func (l *Ledger) Item(id int) (LineItem, bool) {
	idx := l.index(id)
	if idx < 0 {
		return LineItem{}, false
	}
	return l.items[idx], true
}

// Items returns a copy of the items in order.
func (l *Ledger) Items() []LineItem {
	return append([]LineItem(nil), l.items...)
}

// IDs returns the item ids in order.
func (l *Ledger) IDs() []int {
	ids := make([]int, len(l.items))
	for i, item := range l.items {
		ids[i] = item.ID
	}
	return ids
}

// Len returns the number of items.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Totals recomputes the sums for the ledger's document type.
func (l *Ledger) Totals() (Totals, bool) {
	return ComputeTotals(l.items, l.config)
}

// Load makes the ledger mirror the given rows: existing items are updated in
// order, missing ones are added and surplus ones removed. At least one item
// always remains.
func (l *Ledger) Load(rows []ItemInput) {
	for len(l.items) < len(rows) {
		l.Add()
	}
	for len(l.items) > len(rows) {
		if !l.Remove(l.items[len(l.items)-1].ID) {
			break
		}
	}
	if len(l.items) == 0 {
		l.Add()
	}
	for i, row := range rows {
		l.Update(l.items[i].ID, row)
	}
}

func (l *Ledger) index(id int) int {
	for i, item := range l.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
