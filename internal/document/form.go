package document

import (
	"strconv"

	"github.com/rs/zerolog"
	"intury/internal/logger"
)

// Section groups form fields.
type Section string

const (
	SectionDocument Section = "document"
	SectionSeller   Section = "seller"
	SectionBuyer    Section = "buyer"
	SectionItems    Section = "items"
	SectionTotals   Section = "totals"
)

// Form field names.
const (
	FieldDocNumber     = "docNumber"
	FieldDocDate       = "docDate"
	FieldDueDate       = "dueDate"
	FieldTaxableDate   = "taxableDate"
	FieldSellerName    = "sellerName"
	FieldSellerAddress = "sellerAddress"
	FieldSellerCity    = "sellerCity"
	FieldSellerZip     = "sellerZip"
	FieldSellerICO     = "sellerICO"
	FieldSellerDIC     = "sellerDIC"
	FieldSellerPhone   = "sellerPhone"
	FieldSellerEmail   = "sellerEmail"
	FieldSellerBank    = "sellerBank"
	FieldBuyerName     = "buyerName"
	FieldBuyerAddress  = "buyerAddress"
	FieldBuyerCity     = "buyerCity"
	FieldBuyerZip      = "buyerZip"
	FieldBuyerICO      = "buyerICO"
	FieldBuyerDIC      = "buyerDIC"
	FieldAdvance       = string(FieldAdvancePercent)
	FieldItemName      = "itemName"
	FieldItemQuantity  = "itemQty"
	FieldItemUnitPrice = "itemPrice"
	FieldItemVATRate   = "itemVAT"
)

// Field constraints of the submitted form.
const (
	advancePercentMin  = 1
	advancePercentMax  = 100
	defaultAdvancePct  = 50
	maxItemNameLength  = 100
	maxNameLength      = 100
	maxAddressLength   = 150
	maxCityLength      = 50
	maxEmailLength     = 100
	maxDocNumberDigits = 15
	maxDICLength       = 12
)

// FieldSpec describes one form field as configured for a document type.
type FieldSpec struct {
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	Section   Section `json:"section"`
	Visible   bool    `json:"visible"`
	Required  bool    `json:"required"`
	MaxLength int     `json:"max_length,omitempty"`
	Min       *int    `json:"min,omitempty"`
	Max       *int    `json:"max,omitempty"`
	Default   string  `json:"default,omitempty"`

	check func(string) string
}

// SectionSpec reports whether a form section is shown.
type SectionSpec struct {
	Name    Section `json:"name"`
	Visible bool    `json:"visible"`
}

// FormLayout is the configured form for one document type.
type FormLayout struct {
	Type        Type          `json:"type"`
	Title       string        `json:"title"`
	Config      TypeConfig    `json:"config"`
	Sections    []SectionSpec `json:"sections"`
	Fields      []FieldSpec   `json:"fields"`
	ItemColumns []FieldSpec   `json:"item_columns"`
}

// Field returns the spec of a document-level field.
func (l FormLayout) Field(name string) (FieldSpec, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	for _, f := range l.ItemColumns {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// IsVisible reports whether a field is shown.
func (l FormLayout) IsVisible(name string) bool {
	f, ok := l.Field(name)
	return ok && f.Visible
}

// IsRequired reports whether a field must be filled in.
func (l FormLayout) IsRequired(name string) bool {
	f, ok := l.Field(name)
	return ok && f.Required
}

// fieldDef is the static definition a FieldSpec is derived from.
type fieldDef struct {
	name      string
	label     string
	section   Section
	required  bool
	maxLength int
	value     string
	check     func(string) string
}

var documentFields = []fieldDef{
	{name: FieldDocNumber, label: "Číslo dokladu", section: SectionDocument, required: true, check: checkDocNumber},
	{name: FieldDocDate, label: "Datum vystavení", section: SectionDocument, required: true, check: checkDate},
	{name: FieldDueDate, label: "Datum splatnosti", section: SectionDocument, required: true, check: checkDate},
	{name: FieldTaxableDate, label: "Datum zdanitelného plnění", section: SectionDocument, required: true, check: checkDate},

	{name: FieldSellerName, label: "Název / jméno", section: SectionSeller, required: true, maxLength: maxNameLength},
	{name: FieldSellerAddress, label: "Adresa", section: SectionSeller, required: true, maxLength: maxAddressLength},
	{name: FieldSellerCity, label: "Město", section: SectionSeller, required: true, maxLength: maxCityLength},
	{name: FieldSellerZip, label: "PSČ", section: SectionSeller, required: true, check: checkZip},
	{name: FieldSellerICO, label: "IČO", section: SectionSeller, required: true, check: checkICO},
	{name: FieldSellerDIC, label: "DIČ", section: SectionSeller, required: true, check: checkDIC},
	{name: FieldSellerPhone, label: "Telefon", section: SectionSeller, required: true, check: checkPhone},
	{name: FieldSellerEmail, label: "E-mail", section: SectionSeller, required: true, maxLength: maxEmailLength, check: checkEmail},
	{name: FieldSellerBank, label: "Číslo účtu", section: SectionSeller, check: checkBankAccount},

	{name: FieldBuyerName, label: "Název / jméno", section: SectionBuyer, required: true, maxLength: maxNameLength},
	{name: FieldBuyerAddress, label: "Adresa", section: SectionBuyer, required: true, maxLength: maxAddressLength},
	{name: FieldBuyerCity, label: "Město", section: SectionBuyer, required: true, maxLength: maxCityLength},
	{name: FieldBuyerZip, label: "PSČ", section: SectionBuyer, required: true, check: checkZip},
	{name: FieldBuyerICO, label: "IČO", section: SectionBuyer, required: true, check: checkICO},
	{name: FieldBuyerDIC, label: "DIČ", section: SectionBuyer, check: checkDIC},
}

var itemFields = []fieldDef{
	{name: FieldItemName, label: "Název položky", section: SectionItems, required: true, maxLength: maxItemNameLength},
	{name: FieldItemQuantity, label: "Množství", section: SectionItems, required: true},
	{name: FieldItemUnitPrice, label: "Cena/ks (Kč)", section: SectionItems, required: true},
	{name: FieldItemVATRate, label: "DPH (%)", section: SectionItems, value: "21", check: checkVATRate},
}

// FormConfigurator derives the form layout of a document type.
type FormConfigurator struct {
	advanceDefault int
	log            zerolog.Logger
}

// NewFormConfigurator creates a configurator. advanceDefault is the initial
// advance percentage offered for advance invoices; values outside 1..100 fall
// back to 50.
func NewFormConfigurator(advanceDefault int) *FormConfigurator {
	if advanceDefault < advancePercentMin || advanceDefault > advancePercentMax {
		advanceDefault = defaultAdvancePct
	}
	return &FormConfigurator{
		advanceDefault: advanceDefault,
		log:            logger.WithComponent("form-configurator"),
	}
}

// Configure returns the visible fields and requirements for a document type.
// A hidden field is never required.
func (fc *FormConfigurator) Configure(t Type) (FormLayout, error) {
	cfg, ok := Lookup(t)
	if !ok {
		return FormLayout{}, WrapDocumentError("Configure", t, ErrUnknownDocumentType)
	}

	layout := FormLayout{
		Type:   t,
		Title:  DisplayName(t),
		Config: cfg,
		Sections: []SectionSpec{
			{Name: SectionDocument, Visible: true},
			{Name: SectionSeller, Visible: true},
			{Name: SectionBuyer, Visible: cfg.ShowBuyerDetails},
			{Name: SectionItems, Visible: true},
			{Name: SectionTotals, Visible: cfg.ShowPrices},
		},
	}

	for _, def := range documentFields {
		spec := def.spec(fieldVisible(def, cfg))
		if def.name == FieldTaxableDate && t == TypeDeliveryNote {
			spec.Label = "Datum dodání"
		}
		layout.Fields = append(layout.Fields, spec)
	}

	if cfg.HasField(FieldAdvancePercent) {
		lo, hi := advancePercentMin, advancePercentMax
		layout.Fields = append(layout.Fields, FieldSpec{
			Name:     FieldAdvance,
			Label:    "Procent zálohy",
			Section:  SectionDocument,
			Visible:  true,
			Required: true,
			Min:      &lo,
			Max:      &hi,
			Default:  strconv.Itoa(fc.advanceDefault),
			check:    checkAdvancePercent,
		})
	}

	for _, def := range itemFields {
		visible := true
		if def.name == FieldItemUnitPrice || def.name == FieldItemVATRate {
			visible = cfg.ShowPrices
		}
		layout.ItemColumns = append(layout.ItemColumns, def.spec(visible))
	}

	fc.log.Debug().
		Str("type", string(t)).
		Bool("buyer", cfg.ShowBuyerDetails).
		Bool("prices", cfg.ShowPrices).
		Bool("bank", cfg.ShowBankAccount).
		Bool("advance", cfg.HasField(FieldAdvancePercent)).
		Msg("Form configured for document type")

	return layout, nil
}

func fieldVisible(def fieldDef, cfg TypeConfig) bool {
	switch {
	case def.section == SectionBuyer:
		return cfg.ShowBuyerDetails
	case def.name == FieldSellerBank:
		return cfg.ShowBankAccount
	case def.name == FieldDueDate:
		return cfg.ShowPrices
	}
	return true
}

func (d fieldDef) spec(visible bool) FieldSpec {
	return FieldSpec{
		Name:      d.name,
		Label:     d.label,
		Section:   d.section,
		Visible:   visible,
		Required:  d.required && visible,
		MaxLength: d.maxLength,
		Default:   d.value,
		check:     d.check,
	}
}
