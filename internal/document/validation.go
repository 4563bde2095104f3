package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of dates in form input.
const DateLayout = "2006-01-02"

// PartyInput carries the raw form values of a seller or buyer.
type PartyInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	ICO         string `json:"ico"`
	DIC         string `json:"dic,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
}

// FormInput is a complete submitted form.
type FormInput struct {
	DocNumber      string      `json:"docNumber"`
	DocDate        string      `json:"docDate"`
	DueDate        string      `json:"dueDate,omitempty"`
	TaxableDate    string      `json:"taxableDate"`
	AdvancePercent string      `json:"advancePercent,omitempty"`
	PaymentMethod  string      `json:"paymentMethod,omitempty"`
	Seller         PartyInput  `json:"seller"`
	Buyer          *PartyInput `json:"buyer,omitempty"`
	Items          []ItemInput `json:"items"`
}

func (in FormInput) value(field string) string {
	buyer := PartyInput{}
	if in.Buyer != nil {
		buyer = *in.Buyer
	}
	switch field {
	case FieldDocNumber:
		return in.DocNumber
	case FieldDocDate:
		return in.DocDate
	case FieldDueDate:
		return in.DueDate
	case FieldTaxableDate:
		return in.TaxableDate
	case FieldAdvance:
		return in.AdvancePercent
	case FieldSellerName:
		return in.Seller.Name
	case FieldSellerAddress:
		return in.Seller.Address
	case FieldSellerCity:
		return in.Seller.City
	case FieldSellerZip:
		return in.Seller.Zip
	case FieldSellerICO:
		return in.Seller.ICO
	case FieldSellerDIC:
		return in.Seller.DIC
	case FieldSellerPhone:
		return in.Seller.Phone
	case FieldSellerEmail:
		return in.Seller.Email
	case FieldSellerBank:
		return in.Seller.BankAccount
	case FieldBuyerName:
		return buyer.Name
	case FieldBuyerAddress:
		return buyer.Address
	case FieldBuyerCity:
		return buyer.City
	case FieldBuyerZip:
		return buyer.Zip
	case FieldBuyerICO:
		return buyer.ICO
	case FieldBuyerDIC:
		return buyer.DIC
	}
	return ""
}

func (item ItemInput) value(field string) string {
	switch field {
	case FieldItemName:
		return item.Name
	case FieldItemQuantity:
		return item.Quantity
	case FieldItemUnitPrice:
		return item.UnitPrice
	case FieldItemVATRate:
		return item.VATRate
	}
	return ""
}

// Validate checks submitted values against the constraints of the visible
// fields of layout. Hidden fields are never checked. The returned error wraps
// ErrValidationFailed and every field error; use FieldErrors to list them.
func (fc *FormConfigurator) Validate(layout FormLayout, in FormInput) error {
	var errs []error

	for _, f := range layout.Fields {
		if err := validateField(f, f.Name, in.value(f.Name)); err != nil {
			errs = append(errs, err)
		}
	}

	if len(in.Items) == 0 {
		errs = append(errs, NewValidationError("items", 0, "at least one item is required"))
	}
	for i, item := range in.Items {
		for _, col := range layout.ItemColumns {
			name := fmt.Sprintf("items[%d].%s", i, col.Name)
			if err := validateField(col, name, item.value(col.Name)); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}

	fc.log.Debug().
		Str("type", string(layout.Type)).
		Int("errors", len(errs)).
		Msg("Form validation failed")

	return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
}

func validateField(f FieldSpec, name, value string) *ValidationError {
	if !f.Visible {
		return nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		if f.Required {
			return NewValidationError(name, value, "is required")
		}
		return nil
	}
	if f.MaxLength > 0 && !satisfies(value, "max="+strconv.Itoa(f.MaxLength)) {
		return NewValidationError(name, value, fmt.Sprintf("must be at most %d characters", f.MaxLength))
	}
	if f.check != nil {
		if msg := f.check(value); msg != "" {
			return NewValidationError(name, value, msg)
		}
	}
	return nil
}

// validate runs the generic format rules (digits, lengths, dates, e-mail);
// the Czech-specific shapes are composed from them below.
var validate = validator.New()

// satisfies reports whether v passes the validator tag.
func satisfies(v any, tag string) bool {
	return validate.Var(v, tag) == nil
}

func checkDocNumber(v string) string {
	if !satisfies(v, fmt.Sprintf("number,max=%d", maxDocNumberDigits)) {
		return fmt.Sprintf("must be 1 to %d digits", maxDocNumberDigits)
	}
	return ""
}

func checkDate(v string) string {
	if !satisfies(v, "datetime="+DateLayout) {
		return "must be a date in YYYY-MM-DD format"
	}
	return ""
}

func checkICO(v string) string {
	if !satisfies(v, "len=8,number") {
		return "must be exactly 8 digits"
	}
	return ""
}

func checkDIC(v string) string {
	if !satisfies(v, fmt.Sprintf("startswith=CZ,max=%d", maxDICLength)) || !satisfies(v[2:], "number") {
		return fmt.Sprintf("must be CZ followed by digits, at most %d characters", maxDICLength)
	}
	return ""
}

// checkZip accepts "12345" and the displayed form "123 45".
func checkZip(v string) string {
	digits := v
	if len(v) == 6 && v[3] == ' ' {
		digits = v[:3] + v[4:]
	}
	if !satisfies(digits, "len=5,number") {
		return "must be 5 digits"
	}
	return ""
}

func checkPhone(v string) string {
	if !satisfies(strings.ReplaceAll(v, " ", ""), "len=9,number") {
		return "must be 9 digits"
	}
	return ""
}

func checkEmail(v string) string {
	if !satisfies(v, fmt.Sprintf("email,max=%d", maxEmailLength)) {
		return "must be an e-mail address"
	}
	return ""
}

// checkBankAccount accepts Czech account numbers "123456789/0100".
func checkBankAccount(v string) string {
	number, bank, ok := strings.Cut(v, "/")
	if !ok || !satisfies(number, "number,max=9") || !satisfies(bank, "number,max=4") {
		return "must be an account number like 123456789/0100"
	}
	return ""
}

func checkAdvancePercent(v string) string {
	n, err := strconv.Atoi(v)
	if err != nil || !satisfies(n, fmt.Sprintf("min=%d,max=%d", advancePercentMin, advancePercentMax)) {
		return fmt.Sprintf("must be a whole number from %d to %d", advancePercentMin, advancePercentMax)
	}
	return ""
}

func checkVATRate(v string) string {
	if _, ok := ParseVATRate(v); !ok {
		return "must be one of 0, 10, 12, 15, 21"
	}
	return ""
}
