// Package render builds the printable rendition of a document: a
// self-contained HTML page with every form control replaced by its static
// value, screen-only chrome omitted, the letterhead assembled from the
// company fields, and structural containers annotated against page
// breaks. The live editing surface is never touched; this is the
// sanitized clone the rasterizer captures.
package render

import (
	"bytes"
	"fmt"

	"github.com/elevateestimator/quotegenerator/internal/document"
	"github.com/elevateestimator/quotegenerator/internal/money"
	"github.com/elevateestimator/quotegenerator/internal/totals"
)

// Page box in CSS pixels: US Letter at 96 dpi.
const (
	PageWidthPx  = 816
	PageHeightPx = 1056
)

// BlockSelectors lists the structural containers whose bottom edges are
// legal page-break positions. The rasterizer measures exactly these.
var BlockSelectors = []string{
	".doc-header",
	".grid-2",
	".card",
	".signatures",
	".table-wrap",
	".items-table tr",
	".totals-grid",
	".avoid-break",
}

type metaField struct {
	Label string
	Value string
}

type itemRow struct {
	SKU       string
	Desc      string
	Qty       string
	Price     string
	TaxMark   string
	LineTotal string
}

type summaryRow struct {
	Label string
	// Curr is the currency symbol column; a placeholder keeps the value
	// column aligned for non-monetary rows like the tax rate.
	Curr        string
	CurrIsPlain bool
	Value       string
	Strong      bool
}

type viewData struct {
	Title        string
	CompanyName  string
	LogoURL      string
	Contact      []string
	Meta         []metaField
	StatusText   string
	StatusClass  string
	ClientName   string
	ClientLines  []string
	Rows         []itemRow
	Summary      []summaryRow
	DepositLabel string
	DepositValue string
	BalanceLabel string
	BalanceValue string
	Notes        string
	PageWidthPx  int
	PageHeightPx int
}

// Printable renders the sanitized print document for d with the already
// computed totals.
func Printable(d *document.Document, t totals.Totals) (string, error) {
	f := money.NewFormatter(d.Profile.CurrencyCode)

	v := viewData{
		CompanyName:  fallback(d.Company.Name, "Endura Roofing"),
		LogoURL:      d.Company.LogoURL,
		Contact:      d.Company.ContactLine(d.Profile.HasHST),
		ClientName:   fallback(d.Client.Name, "—"),
		ClientLines:  clientLines(d.Client),
		Notes:        d.Notes,
		PageWidthPx:  PageWidthPx,
		PageHeightPx: PageHeightPx,
	}

	switch d.Profile.Kind {
	case document.Invoice:
		v.Title = "Invoice"
		v.Meta = []metaField{
			{"Invoice #", fallback(d.Number, "—")},
			{"Invoice Date", fallback(d.Date, "—")},
			{"Terms", termsLabel(d.Terms)},
			{"Due Date", fallback(d.DueDate, "—")},
		}
		v.StatusText = string(t.Status)
		v.StatusClass = statusClass(t.Status)
	default:
		v.Title = "Quote"
		v.Meta = []metaField{
			{"Quote #", fallback(d.Number, "—")},
			{"Quote Date", fallback(d.Date, "—")},
			{"Expires", fallback(d.Expires, "—")},
		}
	}

	for i, item := range d.Items {
		mark := "—"
		if item.Taxable {
			mark = "✓"
		}
		v.Rows = append(v.Rows, itemRow{
			SKU:       item.SKU,
			Desc:      item.Description,
			Qty:       item.Quantity,
			Price:     item.UnitPrice,
			TaxMark:   mark,
			LineTotal: f.WithSymbol(t.LineTotals[i]),
		})
	}

	v.Summary = summaryRows(d, t, f)

	if d.Profile.HasDeposit {
		v.DepositLabel = "Deposit Due"
		v.DepositValue = f.WithSymbol(t.Deposit)
	}
	if d.Profile.HasBalance {
		v.BalanceLabel = "Balance Due"
		v.BalanceValue = f.WithSymbol(t.Balance)
	}

	var buf bytes.Buffer
	if err := printTmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render: executing template: %w", err)
	}
	return buf.String(), nil
}

// summaryRows builds the totals grid. The discount row is dropped when
// the toggle is off or the computed amount rounds to zero; otherwise the
// value carries a minus prefix (a negative stored value is a surcharge
// and renders unsigned). The tax-rate row uses a transparent currency
// placeholder so its value column aligns with the monetary rows.
func summaryRows(d *document.Document, t totals.Totals, f *money.Formatter) []summaryRow {
	rows := []summaryRow{
		{Label: "Subtotal", Curr: f.Symbol(), Value: f.Plain(t.Subtotal)},
	}

	if t.DiscountVisible(d.Discount.Enabled) {
		sign := ""
		if t.DiscountAmount > 0 {
			sign = "−"
		}
		abs := t.DiscountAmount
		if abs < 0 {
			abs = -abs
		}
		rows = append(rows, summaryRow{
			Label: "Discount",
			Curr:  f.Symbol(),
			Value: sign + f.Plain(abs),
		})
	}

	rows = append(rows,
		summaryRow{
			Label:       "Tax Rate",
			Curr:        f.Symbol(),
			CurrIsPlain: true,
			Value:       trimZeros(t.TaxRatePercent) + "%",
		},
		summaryRow{Label: "Tax", Curr: f.Symbol(), Value: f.Plain(t.TaxAmount)},
	)

	if t.Fees != 0 {
		rows = append(rows, summaryRow{Label: "Fees", Curr: f.Symbol(), Value: f.Plain(t.Fees)})
	}

	rows = append(rows, summaryRow{
		Label:  "Total",
		Curr:   f.Symbol(),
		Value:  f.Plain(t.GrandTotal),
		Strong: true,
	})

	if d.Profile.HasBalance {
		rows = append(rows,
			summaryRow{Label: "Amount Paid", Curr: f.Symbol(), Value: f.Plain(t.AmountPaid)},
			summaryRow{Label: "Balance Due", Curr: f.Symbol(), Value: f.Plain(t.Balance), Strong: true},
		)
	}
	return rows
}

func clientLines(c document.Client) []string {
	var out []string
	for _, s := range []string{c.Address, c.Phone, c.Email} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func termsLabel(terms string) string {
	switch terms {
	case document.TermsDueOnReceipt, "":
		return "Due on Receipt"
	case document.TermsCustom:
		return "Custom"
	default:
		return "Net " + terms
	}
}

func statusClass(s totals.Status) string {
	switch s {
	case totals.StatusPaid:
		return "status-paid"
	case totals.StatusOverdue:
		return "status-overdue"
	default:
		return "status-open"
	}
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// trimZeros renders a rate like the source field would show it: no
// trailing fraction zeros, at most two decimals.
func trimZeros(n float64) string {
	s := fmt.Sprintf("%.2f", n)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
