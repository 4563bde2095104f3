// Package document implements the Czech document generator: a static registry
// of document types, the form configuration derived from a type, the line item
// ledger with its totals, and the renderer that turns a finished draft into a
// structured document tree.
//
// Supported document types:
//   - faktura       (FAKTURA)
//   - zalohova      (ZÁLOHOVÁ FAKTURA, carries an advance percentage)
//   - pokladni      (POKLADNÍ DOKLAD, no buyer block)
//   - zjednoduseny  (ZJEDNODUŠENÝ DAŇOVÝ DOKLAD, no buyer block)
//   - dodaci        (DODACÍ LIST, no prices)
//
// Amounts are decimal values in CZK. Totals are always recomputed from the
// line items and are never stored on the items themselves.
package document

import (
	"fmt"
	"strings"
)

// Type identifies a document type.
type Type string

const (
	TypeInvoice               Type = "faktura"
	TypeAdvanceInvoice        Type = "zalohova"
	TypeCashReceipt           Type = "pokladni"
	TypeSimplifiedTaxDocument Type = "zjednoduseny"
	TypeDeliveryNote          Type = "dodaci"
)

// FieldTag names an optional field that only some document types carry.
type FieldTag string

const FieldAdvancePercent FieldTag = "advancePercent"

// TypeConfig describes which parts of the form and the document a type shows.
type TypeConfig struct {
	ShowBuyerDetails  bool       `json:"show_buyer_details"`
	ShowPrices        bool       `json:"show_prices"`
	ShowVAT           bool       `json:"show_vat"`
	ShowBankAccount   bool       `json:"show_bank_account"`
	ShowPaymentMethod bool       `json:"show_payment_method"`
	AdditionalFields  []FieldTag `json:"additional_fields"`
}

// HasField reports whether the config carries the given additional field.
func (c TypeConfig) HasField(tag FieldTag) bool {
	for _, f := range c.AdditionalFields {
		if f == tag {
			return true
		}
	}
	return false
}

type typeEntry struct {
	name   string
	config TypeConfig
}

var registry = map[Type]typeEntry{
	TypeInvoice: {
		name: "FAKTURA",
		config: TypeConfig{
			ShowBuyerDetails:  true,
			ShowPrices:        true,
			ShowVAT:           true,
			ShowBankAccount:   true,
			ShowPaymentMethod: true,
		},
	},
	TypeAdvanceInvoice: {
		name: "ZÁLOHOVÁ FAKTURA",
		config: TypeConfig{
			ShowBuyerDetails:  true,
			ShowPrices:        true,
			ShowVAT:           true,
			ShowBankAccount:   true,
			ShowPaymentMethod: true,
			AdditionalFields:  []FieldTag{FieldAdvancePercent},
		},
	},
	TypeCashReceipt: {
		name: "POKLADNÍ DOKLAD",
		config: TypeConfig{
			ShowPrices:        true,
			ShowVAT:           true,
			ShowPaymentMethod: true,
		},
	},
	TypeSimplifiedTaxDocument: {
		name: "ZJEDNODUŠENÝ DAŇOVÝ DOKLAD",
		config: TypeConfig{
			ShowPrices:        true,
			ShowVAT:           true,
			ShowPaymentMethod: true,
		},
	},
	TypeDeliveryNote: {
		name:   "DODACÍ LIST",
		config: TypeConfig{ShowBuyerDetails: true},
	},
}

var typeOrder = []Type{
	TypeInvoice,
	TypeAdvanceInvoice,
	TypeCashReceipt,
	TypeSimplifiedTaxDocument,
	TypeDeliveryNote,
}

// aliases accepted by ParseType in addition to the canonical names
var typeAliases = map[string]Type{
	"invoice":         TypeInvoice,
	"advance-invoice": TypeAdvanceInvoice,
	"cash-receipt":    TypeCashReceipt,
	"simplified":      TypeSimplifiedTaxDocument,
	"delivery-note":   TypeDeliveryNote,
}

// Types returns all document types in display order.
func Types() []Type {
	return append([]Type(nil), typeOrder...)
}

// Lookup returns the configuration of a document type.
func Lookup(t Type) (TypeConfig, bool) {
	entry, ok := registry[t]
	if !ok {
		return TypeConfig{}, false
	}
	cfg := entry.config
	cfg.AdditionalFields = append([]FieldTag(nil), entry.config.AdditionalFields...)
	return cfg, true
}

// DisplayName returns the localized title of a document type, or "" if unknown.
func DisplayName(t Type) string {
	return registry[t].name
}

// ParseType resolves user input to a document type.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if _, ok := registry[Type(key)]; ok {
		return Type(key), nil
	}
	if t, ok := typeAliases[key]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, s)
}
