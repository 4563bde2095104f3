package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceLedger(t *testing.T) *Ledger {
	t.Helper()
	cfg, ok := Lookup(TypeInvoice)
	require.True(t, ok)
	return NewLedger(cfg)
}

func TestLedger_AddAssignsIncreasingIDs(t *testing.T) {
	l := invoiceLedger(t)

	assert.Equal(t, 1, l.Add())
	assert.Equal(t, 2, l.Add())
	assert.Equal(t, 3, l.Add())
	assert.Equal(t, []int{1, 2, 3}, l.IDs())
}

func TestLedger_RemoveLastItemIsNoop(t *testing.T) {
	l := invoiceLedger(t)
	id := l.Add()

	assert.False(t, l.Remove(id))
	assert.Equal(t, 1, l.Len())
	_, ok := l.Item(id)
	assert.True(t, ok)
}

func TestLedger_RemoveUnknownIsNoop(t *testing.T) {
	l := invoiceLedger(t)
	l.Add()
	l.Add()

	assert.False(t, l.Remove(42))
	assert.Equal(t, 2, l.Len())
}

func TestLedger_IDsNeverReused(t *testing.T) {
	l := invoiceLedger(t)
	seen := map[int]bool{}

	ops := []string{"add", "add", "add", "remove-last", "add", "remove-first", "remove-first", "add", "remove-last", "add"}
	for _, op := range ops {
		switch op {
		case "add":
			id := l.Add()
			assert.False(t, seen[id], "id %d reused", id)
			seen[id] = true
		case "remove-last":
			ids := l.IDs()
			l.Remove(ids[len(ids)-1])
		case "remove-first":
			l.Remove(l.IDs()[0])
		}

		ids := l.IDs()
		unique := map[int]bool{}
		for _, id := range ids {
			unique[id] = true
		}
		assert.Len(t, unique, len(ids))
	}
}

func TestLedger_Totals(t *testing.T) {
	l := invoiceLedger(t)
	first := l.Add()
	second := l.Add()

	require.True(t, l.Update(first, ItemInput{Name: "Konzultace", Quantity: "2", UnitPrice: "100", VATRate: "21"}))
	require.True(t, l.Update(second, ItemInput{Name: "Doprava", Quantity: "1", UnitPrice: "50", VATRate: "0"}))

	totals, ok := l.Totals()
	require.True(t, ok)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.VATTotal.Equal(decimal.NewFromInt(42)), "vat %s", totals.VATTotal)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(292)), "total %s", totals.Total)
}

func TestLedger_TotalsToleratePartialInput(t *testing.T) {
	l := invoiceLedger(t)
	first := l.Add()
	second := l.Add()

	l.Update(first, ItemInput{Name: "Práce", Quantity: "1,5", UnitPrice: "200"})
	l.Update(second, ItemInput{Name: "Rozpracováno", Quantity: "", UnitPrice: "abc"})

	totals, ok := l.Totals()
	require.True(t, ok)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, totals.VATTotal.Equal(decimal.NewFromInt(63)))
}

func TestLedger_NoTotalsWithoutPrices(t *testing.T) {
	cfg, ok := Lookup(TypeDeliveryNote)
	require.True(t, ok)
	l := NewLedger(cfg)
	id := l.Add()
	l.Update(id, ItemInput{Name: "Paleta", Quantity: "3", UnitPrice: "999"})

	_, ok = l.Totals()
	assert.False(t, ok)

	item, _ := l.Item(id)
	assert.Nil(t, item.UnitPrice)
	assert.Nil(t, item.VATRate)
	assert.True(t, item.LineTotal().IsZero())
}

func TestLedger_LoadKeepsAtLeastOneItem(t *testing.T) {
	l := invoiceLedger(t)
	l.Add()
	l.Add()
	l.Add()

	l.Load(nil)
	assert.Equal(t, 1, l.Len())

	l.Load([]ItemInput{{Name: "a", Quantity: "1"}, {Name: "b", Quantity: "2"}})
	assert.Equal(t, 2, l.Len())
	items := l.Items()
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "b", items[1].Name)
	assert.Greater(t, items[1].ID, 3)
}

func TestLineItem_DerivedAmounts(t *testing.T) {
	price := decimal.NewFromInt(100)
	rate := VAT15
	item := LineItem{Quantity: decimal.NewFromInt(3), UnitPrice: &price, VATRate: &rate}

	assert.True(t, item.LineTotal().Equal(decimal.NewFromInt(300)))
	assert.True(t, item.VATAmount().Equal(decimal.NewFromInt(45)))
	assert.True(t, item.LineTotalWithVAT().Equal(decimal.NewFromInt(345)))
}
