package document

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Party is a seller or buyer on a draft.
type Party struct {
	Name        string
	Address     string
	City        string
	Zip         string
	ICO         string
	DIC         string
	Phone       string
	Email       string
	BankAccount string
}

func partyFromInput(in PartyInput) Party {
	return Party{
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		Zip:         formatZip(strings.TrimSpace(in.Zip)),
		ICO:         strings.TrimSpace(in.ICO),
		DIC:         strings.TrimSpace(in.DIC),
		Phone:       formatPhone(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		BankAccount: strings.TrimSpace(in.BankAccount),
	}
}

// Draft is the document being filled in. A draft lives until the user goes
// home or picks another document type; it is never persisted.
type Draft struct {
	ID             uuid.UUID
	Type           Type
	Number         string
	IssueDate      time.Time
	DueDate        time.Time
	TaxableDate    time.Time
	Seller         Party
	Buyer          *Party
	AdvancePercent *int
	PaymentMethod  string
	Items          *Ledger
	CreatedAt      time.Time
}

func newDraft(t Type, cfg TypeConfig, opts Options, now time.Time) *Draft {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	d := &Draft{
		ID:            uuid.New(),
		Type:          t,
		IssueDate:     today,
		DueDate:       today.AddDate(0, 0, opts.DueDays),
		TaxableDate:   today,
		PaymentMethod: opts.PaymentMethod,
		Items:         NewLedger(cfg),
		CreatedAt:     now,
	}
	if cfg.ShowBuyerDetails {
		d.Buyer = &Party{}
	}
	if cfg.HasField(FieldAdvancePercent) {
		pct := opts.AdvancePercent
		d.AdvancePercent = &pct
	}
	d.Items.Add()
	return d
}

// apply copies a validated form into the draft.
func (d *Draft) apply(in FormInput, cfg TypeConfig) {
	d.Number = strings.TrimSpace(in.DocNumber)
	d.IssueDate = parseDateOr(in.DocDate, d.IssueDate)
	d.DueDate = parseDateOr(in.DueDate, d.DueDate)
	d.TaxableDate = parseDateOr(in.TaxableDate, d.TaxableDate)
	d.Seller = partyFromInput(in.Seller)

	if cfg.ShowBuyerDetails && in.Buyer != nil {
		buyer := partyFromInput(*in.Buyer)
		d.Buyer = &buyer
	}
	if d.AdvancePercent != nil && in.AdvancePercent != "" {
		if pct, err := strconv.Atoi(strings.TrimSpace(in.AdvancePercent)); err == nil {
			d.AdvancePercent = &pct
		}
	}
	if pm := strings.TrimSpace(in.PaymentMethod); pm != "" {
		d.PaymentMethod = pm
	}

	d.Items.Load(in.Items)
}

func parseDateOr(v string, fallback time.Time) time.Time {
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return t
}

// formatZip renders a postal code as "XXX XX".
func formatZip(v string) string {
	digits := strings.ReplaceAll(v, " ", "")
	if len(digits) != 5 {
		return v
	}
	return digits[:3] + " " + digits[3:]
}

// formatPhone renders a 9 digit phone number as "XXX XXX XXX".
func formatPhone(v string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(v), " ", "")
	if len(digits) != 9 {
		return strings.TrimSpace(v)
	}
	return digits[:3] + " " + digits[3:6] + " " + digits[6:]
}
