// Package totals computes the derived figures of a quote or invoice:
// subtotal, prorated tax, discount, fees, grand total, and the variant
// section (deposit or balance/status). The computation is a pure function
// of the document's form state; it never mutates the document.
package totals

import (
	"math"
	"time"

	"github.com/elevateestimator/quotegenerator/internal/document"
	"github.com/elevateestimator/quotegenerator/internal/money"
)

// Status classifies an invoice by payment state.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusOverdue Status = "Overdue"
	StatusOpen    Status = "Open"
)

// paidEpsilon absorbs float rounding when comparing paid against the
// grand total.
const paidEpsilon = 0.009

// depositRate is the automatic deposit fraction of the grand total.
const depositRate = 0.40

// Totals holds every derived figure. All values are non-negative except
// DiscountAmount, which may be negative when the discount field encodes a
// surcharge.
type Totals struct {
	Subtotal           float64 `json:"subtotal"`
	TaxableBase        float64 `json:"taxableBase"`
	DiscountAmount     float64 `json:"discountAmount"`
	DiscountedSubtotal float64 `json:"discountedSubtotal"`
	TaxRatePercent     float64 `json:"taxRatePercent"`
	TaxAmount          float64 `json:"taxAmount"`
	Fees               float64 `json:"fees"`
	GrandTotal         float64 `json:"grandTotal"`

	// LineTotals mirrors the item list, one derived total per row.
	LineTotals []float64 `json:"lineTotals"`

	// Deposit applies when the profile has a deposit section.
	Deposit float64 `json:"deposit,omitempty"`
	// DepositLocked reports whether the deposit field is read-only
	// (auto mode).
	DepositLocked bool `json:"depositLocked,omitempty"`

	// AmountPaid, Balance and Status apply when the profile has a
	// balance section.
	AmountPaid float64 `json:"amountPaid,omitempty"`
	Balance    float64 `json:"balance,omitempty"`
	Status     Status  `json:"status,omitempty"`
}

// DiscountVisible reports whether the discount row belongs in output:
// the feature must be enabled and the computed amount must not round to
// zero (absolute value below 0.0001 counts as zero).
func (t Totals) DiscountVisible(enabled bool) bool {
	return enabled && math.Abs(t.DiscountAmount) >= 0.0001
}

// Compute derives all totals for d as of now. Unparseable numeric fields
// contribute zero; Compute never fails.
func Compute(d *document.Document, now time.Time) Totals {
	var t Totals
	t.LineTotals = make([]float64, len(d.Items))

	for i, item := range d.Items {
		line := money.Parse(item.Quantity) * money.Parse(item.UnitPrice)
		t.LineTotals[i] = line
		t.Subtotal += line
		if item.Taxable {
			t.TaxableBase += line
		}
	}

	// Discount contributes zero while the toggle is off, regardless of
	// the stored value.
	if d.Discount.Enabled {
		val := money.Parse(d.Discount.Value)
		if d.Discount.Kind == document.DiscountPercent {
			t.DiscountAmount = t.Subtotal * (val / 100)
		} else {
			t.DiscountAmount = val
		}
	}
	t.DiscountedSubtotal = math.Max(0, t.Subtotal-t.DiscountAmount)

	// Tax applies to the taxable share of the discount-adjusted base:
	// the discount is prorated across taxable and non-taxable items.
	t.TaxRatePercent = money.Parse(d.TaxRate)
	if t.TaxableBase > 0 {
		taxBase := t.TaxableBase - t.DiscountAmount*(t.TaxableBase/math.Max(1, t.Subtotal))
		t.TaxAmount = math.Max(0, taxBase*(t.TaxRatePercent/100))
	}

	t.Fees = money.Parse(d.Fees)
	t.GrandTotal = math.Max(0, t.DiscountedSubtotal+t.TaxAmount+t.Fees)

	if d.Profile.HasDeposit {
		if d.DepositMode == document.DepositManual {
			t.Deposit = money.Parse(d.DepositValue)
		} else {
			t.Deposit = t.GrandTotal * depositRate
			t.DepositLocked = true
		}
	}

	if d.Profile.HasBalance {
		t.AmountPaid = money.Parse(d.AmountPaid)
		t.Balance = math.Max(0, t.GrandTotal-t.AmountPaid)
		t.Status = status(t.GrandTotal, t.AmountPaid, d, now)
	}

	return t
}

func status(grand, paid float64, d *document.Document, now time.Time) Status {
	if paid >= grand-paidEpsilon {
		return StatusPaid
	}
	if due, ok := d.Due(); ok {
		// Overdue starts the day after the due date.
		if now.Truncate(24*time.Hour).After(due) {
			return StatusOverdue
		}
	}
	return StatusOpen
}
