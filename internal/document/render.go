package document

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"intury/pkg/models"
)

const documentFooter = "Jsme plátci DPH. Tento doklad byl vyhotoven elektronicky a je platný bez podpisu a razítka."

// Render maps a finished draft onto the display tree of its document type.
// It does not validate and does not stamp GeneratedAt; callers submit only
// validated drafts.
func Render(d *Draft, cfg TypeConfig) *models.Document {
	delivery := d.Type == TypeDeliveryNote

	doc := &models.Document{
		ID:      d.ID.String(),
		Type:    string(d.Type),
		Title:   DisplayName(d.Type),
		Info:    renderInfo(d, cfg, delivery),
		Parties: renderParties(d, cfg, delivery),
		Items:   renderItems(d, cfg, delivery),
		Footer:  documentFooter,
	}

	if totals, ok := ComputeTotals(d.Items.Items(), cfg); ok {
		doc.Totals = renderTotals(totals, advancePercent(d, cfg))
	}
	if cfg.ShowPaymentMethod {
		doc.PaymentNote = "Způsob úhrady: " + d.PaymentMethod
	}

	return doc
}

func advancePercent(d *Draft, cfg TypeConfig) *int {
	if !cfg.HasField(FieldAdvancePercent) {
		return nil
	}
	return d.AdvancePercent
}

func renderInfo(d *Draft, cfg TypeConfig, delivery bool) []models.InfoRow {
	rows := []models.InfoRow{
		{Label: "Číslo dokladu:", Value: d.Number},
		{Label: "Datum vystavení:", Value: FormatDate(d.IssueDate)},
	}
	if cfg.ShowPrices {
		rows = append(rows, models.InfoRow{Label: "Datum splatnosti:", Value: FormatDate(d.DueDate)})
	}

	taxable := "Datum zdanitelného plnění:"
	if delivery {
		taxable = "Datum dodání:"
	}
	rows = append(rows, models.InfoRow{Label: taxable, Value: FormatDate(d.TaxableDate)})

	if pct := advancePercent(d, cfg); pct != nil {
		rows = append(rows, models.InfoRow{Label: "Procent zálohy:", Value: strconv.Itoa(*pct) + "%"})
	}
	return rows
}

func renderParties(d *Draft, cfg TypeConfig, delivery bool) []models.PartyBlock {
	sellerTitle, buyerTitle := "Dodavatel", "Odběratel"
	if delivery {
		sellerTitle, buyerTitle = "Odesílatel", "Příjemce"
	}

	s := d.Seller
	sellerLines := []string{
		s.Address,
		strings.TrimSpace(s.Zip + " " + s.City),
		"",
		"IČO: " + s.ICO,
		"DIČ: " + s.DIC,
		"Tel: +420 " + s.Phone,
		"Email: " + s.Email,
	}
	if cfg.ShowBankAccount && s.BankAccount != "" {
		sellerLines = append(sellerLines, "Č. účtu: "+s.BankAccount)
	}

	parties := []models.PartyBlock{{Role: "seller", Title: sellerTitle, Name: s.Name, Lines: sellerLines}}

	if cfg.ShowBuyerDetails && d.Buyer != nil {
		b := *d.Buyer
		buyerLines := []string{
			b.Address,
			strings.TrimSpace(b.Zip + " " + b.City),
			"",
			"IČO: " + b.ICO,
		}
		if b.DIC != "" {
			buyerLines = append(buyerLines, "DIČ: "+b.DIC)
		}
		parties = append(parties, models.PartyBlock{Role: "buyer", Title: buyerTitle, Name: b.Name, Lines: buyerLines})
	}
	return parties
}

func renderItems(d *Draft, cfg TypeConfig, delivery bool) models.ItemTable {
	table := models.ItemTable{
		Title:   "Položky faktury",
		Columns: []string{"Název", "Množství"},
	}
	if delivery {
		table.Title = "Položky dodávky"
	}
	if cfg.ShowPrices {
		table.Columns = append(table.Columns, "Cena/ks", "DPH", "Celkem")
	}

	for _, item := range d.Items.Items() {
		cells := []string{item.Name, FormatQuantity(item.Quantity)}
		if cfg.ShowPrices && item.UnitPrice != nil && item.VATRate != nil {
			cells = append(cells,
				FormatPrice(*item.UnitPrice),
				strconv.Itoa(int(*item.VATRate))+"%",
				FormatPrice(item.LineTotalWithVAT()),
			)
		}
		table.Rows = append(table.Rows, models.ItemRow{ItemID: item.ID, Cells: cells})
	}
	return table
}

func renderTotals(t Totals, advancePct *int) *models.TotalsBlock {
	block := &models.TotalsBlock{
		Subtotal: FormatAmount(t.Subtotal),
		VATTotal: FormatAmount(t.VATTotal),
		Total:    FormatAmount(t.Total),
		Rows: []models.TotalsRow{
			{Label: "Celkem bez DPH:", Value: FormatPrice(t.Subtotal)},
			{Label: "DPH celkem:", Value: FormatPrice(t.VATTotal)},
		},
	}

	if advancePct == nil {
		block.Rows = append(block.Rows, models.TotalsRow{Label: "CELKEM K ÚHRADĚ:", Value: FormatPrice(t.Total), Emphasis: true})
		return block
	}

	advance := t.Total.Mul(decimal.NewFromInt(int64(*advancePct))).Div(hundred)
	advanceAmount := FormatAmount(advance)
	block.Advance = &advanceAmount
	block.Rows = append(block.Rows,
		models.TotalsRow{Label: "Celková částka:", Value: FormatPrice(t.Total), Emphasis: true},
		models.TotalsRow{Label: "ZÁLOHA K ÚHRADĚ (" + strconv.Itoa(*advancePct) + "%):", Value: FormatPrice(advance), Emphasis: true},
	)
	return block
}
