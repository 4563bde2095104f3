package document_test

import (
	"fmt"

	"intury/internal/document"
)

// Example walks a cash receipt from type selection to live totals.
func Example() {
	session := document.NewSession(document.DefaultOptions())

	draft, err := session.Select(document.TypeCashReceipt)
	if err != nil {
		fmt.Println(err)
		return
	}

	first := draft.Items.IDs()[0]
	second := draft.Items.Add()
	draft.Items.Update(first, document.ItemInput{Name: "Konzultace", Quantity: "2", UnitPrice: "100", VATRate: "21"})
	draft.Items.Update(second, document.ItemInput{Name: "Doprava", Quantity: "1", UnitPrice: "50", VATRate: "0"})

	totals, _ := session.Totals()
	fmt.Println(totals.Subtotal, totals.VATTotal, totals.Total)
	// Output: 250 42 292
}

// ExampleLedger_Remove shows that the last item cannot be removed.
func ExampleLedger_Remove() {
	cfg, _ := document.Lookup(document.TypeDeliveryNote)
	ledger := document.NewLedger(cfg)
	only := ledger.Add()

	fmt.Println(ledger.Remove(only), ledger.Len())
	// Output: false 1
}
