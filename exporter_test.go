package quotegen_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	quotegen "github.com/elevateestimator/quotegenerator"
	"github.com/elevateestimator/quotegenerator/internal/document"
)

// chromeAvailable reports whether a Chrome/Chromium executable is in PATH.
func chromeAvailable() bool {
	for _, name := range []string{
		"chromium-browser", "chromium", "google-chrome",
		"google-chrome-stable", "chrome",
	} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func skipIfNoChrome(t *testing.T) {
	t.Helper()
	if !chromeAvailable() {
		t.Skip("skipping: Chrome/Chromium not found in PATH")
	}
}

func newTestExporter(t *testing.T) *quotegen.Exporter {
	t.Helper()
	skipIfNoChrome(t)
	exp, err := quotegen.NewExporter(quotegen.WithNoSandbox())
	if err != nil {
		t.Fatalf("NewExporter: %v", err)
	}
	t.Cleanup(func() { exp.Close() })
	return exp
}

// isPDF checks whether data starts with the PDF magic number.
func isPDF(data []byte) bool {
	return len(data) > 4 && string(data[:5]) == "%PDF-"
}

func sampleQuote() *document.Document {
	return &document.Document{
		Profile: document.QuoteProfile(),
		Company: document.Company{
			Name:  "Acme Renovations",
			Addr1: "12 Main St",
			Addr2: "Springfield",
			Phone: "555-0100",
			Email: "office@acme.test",
		},
		Client: document.Client{
			Name:    "Jane Doe",
			Address: "34 Oak Ave",
		},
		Number: "Q-1001",
		Items: []document.LineItem{
			{Description: "Kitchen demolition", Quantity: "1", UnitPrice: "1200", Taxable: true},
			{Description: "Cabinet install", Quantity: "8", UnitPrice: "350", Taxable: true},
			{Description: "Disposal fee", Quantity: "1", UnitPrice: "150"},
		},
		TaxRate: "13",
	}
}

func TestExport_Quote(t *testing.T) {
	exp := newTestExporter(t)

	res, err := exp.Export(context.Background(), sampleQuote())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
	if res.Len() < 1000 {
		t.Errorf("PDF unexpectedly small: %d bytes", res.Len())
	}
	if got, want := res.Filename(), "Jane_Doe_Q-1001.pdf"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestExport_Invoice(t *testing.T) {
	exp := newTestExporter(t)

	d := sampleQuote()
	d.Profile = document.InvoiceProfile()
	d.Number = "INV-2044"
	d.Company.HST = "123456789 RT0001"
	d.Terms = document.TermsNet30
	d.AmountPaid = "500"

	res, err := exp.Export(context.Background(), d)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
	if got, want := res.Filename(), "Jane_Doe_INV-2044.pdf"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

// A long items table must spill onto multiple pages without an error;
// exact page count depends on fonts, so only the output shape is checked.
func TestExport_LongDocument(t *testing.T) {
	exp := newTestExporter(t)

	d := sampleQuote()
	d.Items = nil
	for i := 0; i < 80; i++ {
		d.Items = append(d.Items, document.LineItem{
			Description: "Line item with a reasonably long description that wraps",
			Quantity:    "2",
			UnitPrice:   "99.50",
			Taxable:     true,
		})
	}

	res, err := exp.Export(context.Background(), d)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
}

func TestExport_UniformCuts(t *testing.T) {
	exp := newTestExporter(t)

	d := sampleQuote()
	d.Profile.SmartPageCuts = false

	res, err := exp.Export(context.Background(), d)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
}

func TestExporter_CloseIdempotent(t *testing.T) {
	skipIfNoChrome(t)

	exp, err := quotegen.NewExporter(quotegen.WithNoSandbox())
	if err != nil {
		t.Fatal(err)
	}

	if err := exp.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := exp.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestExporter_UsedAfterClose(t *testing.T) {
	skipIfNoChrome(t)

	exp, err := quotegen.NewExporter(quotegen.WithNoSandbox())
	if err != nil {
		t.Fatal(err)
	}
	exp.Close()

	_, err = exp.Export(context.Background(), sampleQuote())
	if err != quotegen.ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestExport_SaveToDir(t *testing.T) {
	exp := newTestExporter(t)

	res, err := exp.Export(context.Background(), sampleQuote())
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path, err := res.Save(dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, res.Filename()); path != want {
		t.Errorf("Save path = %q, want %q", path, want)
	}
}
