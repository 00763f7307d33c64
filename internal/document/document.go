// Package document defines the intermediate model for an editable quote or
// invoice: the form fields the surrounding editor collects, the profile that
// distinguishes the document variants, and the defaults applied before
// computation and export.
//
// Numeric fields are kept as the plain text the form delivered; parsing
// happens at computation time and unparseable values degrade to zero.
package document

import (
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the two document variants.
type Kind string

const (
	Quote   Kind = "quote"
	Invoice Kind = "invoice"
)

// DiscountKind selects how DiscountConfig.Value is interpreted.
type DiscountKind string

const (
	DiscountAmount  DiscountKind = "amount"
	DiscountPercent DiscountKind = "percent"
)

// DepositMode selects how the quote deposit is determined.
type DepositMode string

const (
	// DepositAuto locks the deposit to 40% of the grand total.
	DepositAuto DepositMode = "auto"
	// DepositManual leaves the deposit field user-supplied.
	DepositManual DepositMode = "manual"
)

// Payment terms accepted on invoices. TermsCustom leaves the due date as
// the user set it.
const (
	TermsDueOnReceipt = "due"
	TermsNet15        = "15"
	TermsNet30        = "30"
	TermsNet45        = "45"
	TermsCustom       = "custom"
)

// DateLayout is the wire format for all document dates.
const DateLayout = "2006-01-02"

// Profile parameterizes a document variant. The original system shipped
// five near-identical scripts; the differences collapse into these fields.
type Profile struct {
	Kind          Kind   `yaml:"kind" json:"kind"`
	CurrencyCode  string `yaml:"currency" json:"currency"`
	HasDeposit    bool   `yaml:"hasDeposit" json:"hasDeposit"`
	HasBalance    bool   `yaml:"hasBalance" json:"hasBalance"`
	HasHST        bool   `yaml:"hasHst" json:"hasHst"`
	SmartPageCuts bool   `yaml:"smartPageCuts" json:"smartPageCuts"`
}

// QuoteProfile is the USD quote variant: deposit section, smart page cuts.
func QuoteProfile() Profile {
	return Profile{
		Kind:          Quote,
		CurrencyCode:  "USD",
		HasDeposit:    true,
		SmartPageCuts: true,
	}
}

// InvoiceProfile is the CAD invoice variant: balance section, HST number
// in the letterhead, smart page cuts.
func InvoiceProfile() Profile {
	return Profile{
		Kind:          Invoice,
		CurrencyCode:  "CAD",
		HasBalance:    true,
		HasHST:        true,
		SmartPageCuts: true,
	}
}

// LineItem is one row of the items table. Quantity and UnitPrice arrive as
// form text; LineTotal is derived, never stored.
type LineItem struct {
	SKU         string `yaml:"sku" json:"sku"`
	Description string `yaml:"description" json:"description"`
	Quantity    string `yaml:"quantity" json:"quantity"`
	UnitPrice   string `yaml:"unitPrice" json:"unitPrice"`
	Taxable     bool   `yaml:"taxable" json:"taxable"`
}

// DiscountConfig carries the discount controls. When Enabled is false the
// discount contributes zero regardless of the stored value.
type DiscountConfig struct {
	Enabled bool         `yaml:"enabled" json:"enabled"`
	Kind    DiscountKind `yaml:"kind" json:"kind"`
	Value   string       `yaml:"value" json:"value"`
}

// Company is the letterhead block.
type Company struct {
	Name    string `yaml:"name" json:"name"`
	Addr1   string `yaml:"addr1" json:"addr1"`
	Addr2   string `yaml:"addr2" json:"addr2"`
	Phone   string `yaml:"phone" json:"phone"`
	Email   string `yaml:"email" json:"email"`
	Web     string `yaml:"web" json:"web"`
	HST     string `yaml:"hst" json:"hst"`
	LogoURL string `yaml:"logoUrl" json:"logoUrl"`
}

// ContactLine returns the letterhead contact fragments in display order:
// joined address, phone, email, web (scheme stripped), and the HST number
// when the profile carries one.
func (c Company) ContactLine(includeHST bool) []string {
	var parts []string
	addr := strings.TrimSpace(strings.Join(nonEmpty(c.Addr1, c.Addr2), ", "))
	if addr != "" {
		parts = append(parts, addr)
	}
	if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if c.Web != "" {
		web := strings.TrimPrefix(strings.TrimPrefix(c.Web, "https://"), "http://")
		parts = append(parts, web)
	}
	if includeHST && c.HST != "" {
		parts = append(parts, c.HST)
	}
	return parts
}

// Client is the bill-to block.
type Client struct {
	Name    string `yaml:"name" json:"name"`
	Address string `yaml:"address" json:"address"`
	Phone   string `yaml:"phone" json:"phone"`
	Email   string `yaml:"email" json:"email"`
}

// Document is the full form state of one edit session.
type Document struct {
	Profile Profile `yaml:"profile" json:"profile"`
	Company Company `yaml:"company" json:"company"`
	Client  Client  `yaml:"client" json:"client"`

	// Number is the quote or invoice number.
	Number string `yaml:"number" json:"number"`
	// Date is the issue date (quote date / invoice date).
	Date string `yaml:"date" json:"date"`
	// Expires applies to quotes.
	Expires string `yaml:"expires" json:"expires"`
	// Terms and DueDate apply to invoices.
	Terms   string `yaml:"terms" json:"terms"`
	DueDate string `yaml:"dueDate" json:"dueDate"`

	Items    []LineItem     `yaml:"items" json:"items"`
	Discount DiscountConfig `yaml:"discount" json:"discount"`

	TaxRate string `yaml:"taxRate" json:"taxRate"`
	Fees    string `yaml:"fees" json:"fees"`

	DepositMode  DepositMode `yaml:"depositMode" json:"depositMode"`
	DepositValue string      `yaml:"depositValue" json:"depositValue"`
	AmountPaid   string      `yaml:"amountPaid" json:"amountPaid"`

	Notes string `yaml:"notes" json:"notes"`
}

// ApplyDefaults fills unset fields the way the editor does on load:
// issue date = today, quote expiry = +30 days, invoice due date derived
// from terms, tax rate 13%, at least one line item.
func (d *Document) ApplyDefaults(now time.Time) {
	if d.Profile.Kind == "" {
		d.Profile = QuoteProfile()
	}
	if d.Profile.CurrencyCode == "" {
		d.Profile.CurrencyCode = "USD"
	}
	if d.Date == "" {
		d.Date = now.Format(DateLayout)
	}
	if d.Profile.Kind == Quote && d.Expires == "" {
		d.Expires = now.AddDate(0, 0, 30).Format(DateLayout)
	}
	if d.Profile.Kind == Invoice {
		if d.Terms == "" {
			d.Terms = TermsDueOnReceipt
		}
		if d.DueDate == "" || d.Terms != TermsCustom {
			d.DueDate = d.dueDateFromTerms(now)
		}
	}
	if strings.TrimSpace(d.TaxRate) == "" {
		d.TaxRate = "13"
	}
	if d.Discount.Kind == "" {
		d.Discount.Kind = DiscountAmount
	}
	if d.DepositMode == "" {
		d.DepositMode = DepositAuto
	}
	if len(d.Items) == 0 {
		d.Items = []LineItem{{Quantity: "1", UnitPrice: "0", Taxable: true}}
	}
}

// dueDateFromTerms derives the due date from the issue date and the terms
// selection. Custom terms keep whatever the user entered.
func (d *Document) dueDateFromTerms(now time.Time) string {
	base := now
	if t, err := time.Parse(DateLayout, d.Date); err == nil {
		base = t
	}
	switch d.Terms {
	case TermsCustom:
		return d.DueDate
	case TermsDueOnReceipt, "":
		return base.Format(DateLayout)
	default:
		days, err := strconv.Atoi(d.Terms)
		if err != nil {
			return base.Format(DateLayout)
		}
		return base.AddDate(0, 0, days).Format(DateLayout)
	}
}

// Due returns the parsed due date. ok is false when the field is blank
// or malformed.
func (d *Document) Due() (t time.Time, ok bool) {
	t, err := time.Parse(DateLayout, d.DueDate)
	return t, err == nil
}

func nonEmpty(ss ...string) []string {
	var out []string
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
