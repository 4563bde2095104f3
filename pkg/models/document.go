package models

import "time"

// Document is a rendered, display-ready document. It only contains the
// sections enabled for its document type.
type Document struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Info        []InfoRow    `json:"info"`
	Parties     []PartyBlock `json:"parties"`
	Items       ItemTable    `json:"items"`
	Totals      *TotalsBlock `json:"totals,omitempty"`
	PaymentNote string       `json:"payment_note,omitempty"`
	Footer      string       `json:"footer"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// InfoRow is a labelled value in the document header box.
type InfoRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PartyBlock is the seller or buyer box.
type PartyBlock struct {
	Role  string   `json:"role"` // "seller" or "buyer"
	Title string   `json:"title"`
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// ItemTable is the line item table.
type ItemTable struct {
	Title   string    `json:"title"`
	Columns []string  `json:"columns"`
	Rows    []ItemRow `json:"rows"`
}

// ItemRow is one formatted table row, cells aligned with ItemTable.Columns.
type ItemRow struct {
	ItemID int      `json:"item_id"`
	Cells  []string `json:"cells"`
}

// TotalsBlock holds the formatted totals and the exact amounts in CZK as
// decimal strings with two places ("292.00") for machine consumers.
type TotalsBlock struct {
	Rows     []TotalsRow `json:"rows"`
	Subtotal string      `json:"subtotal"`
	VATTotal string      `json:"vat_total"`
	Total    string      `json:"total"`
	Advance  *string     `json:"advance,omitempty"`
}

// TotalsRow is one line of the totals block.
type TotalsRow struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Emphasis bool   `json:"emphasis,omitempty"`
}
