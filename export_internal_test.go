package quotegen

import (
	"context"
	"testing"

	"github.com/elevateestimator/quotegenerator/internal/document"
)

func TestExport_SingleFlight(t *testing.T) {
	var exp Exporter
	exp.inFlight.Store(true)

	_, err := exp.Export(context.Background(), &document.Document{})
	if err != ErrExportInFlight {
		t.Fatalf("expected ErrExportInFlight, got %v", err)
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name   string
		client string
		number string
		kind   document.Kind
		want   string
	}{
		{"plain", "Jane Doe", "Q-1001", document.Quote, "Jane_Doe_Q-1001.pdf"},
		{"punctuation", "O'Brien & Sons, Ltd.", "INV #7", document.Invoice, "O_Brien_Sons_Ltd__INV_7.pdf"},
		{"empty quote", "", "", document.Quote, "Client_Quote.pdf"},
		{"empty invoice", "", "", document.Invoice, "Client_Invoice.pdf"},
		{"symbols only", "***", "///", document.Quote, "Client_Quote.pdf"},
		{"hyphens kept", "Al-Amin", "2024-03", document.Quote, "Al-Amin_2024-03.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &document.Document{
				Profile: document.Profile{Kind: tt.kind},
				Client:  document.Client{Name: tt.client},
				Number:  tt.number,
			}
			if got := exportFilename(d); got != tt.want {
				t.Errorf("exportFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPageHeightCanvasPx(t *testing.T) {
	// At layout width, one page of canvas equals the layout page height.
	if got := pageHeightCanvasPx(PageWidthPx); got != PageHeightPx {
		t.Errorf("pageHeightCanvasPx(%d) = %d, want %d", PageWidthPx, got, PageHeightPx)
	}
	// At scale 2 the page height doubles with the width.
	if got := pageHeightCanvasPx(2 * PageWidthPx); got != 2*PageHeightPx {
		t.Errorf("pageHeightCanvasPx(%d) = %d, want %d", 2*PageWidthPx, got, 2*PageHeightPx)
	}
}

func TestMinSlicePx(t *testing.T) {
	if got := minSlicePx(1); got != minSliceCSSPx {
		t.Errorf("minSlicePx(1) = %d, want %d", got, minSliceCSSPx)
	}
	if got := minSlicePx(2); got != 2*minSliceCSSPx {
		t.Errorf("minSlicePx(2) = %d, want %d", got, 2*minSliceCSSPx)
	}
}
