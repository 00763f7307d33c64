package quotegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elevateestimator/quotegenerator/internal/assemble"
	"github.com/elevateestimator/quotegenerator/internal/document"
	"github.com/elevateestimator/quotegenerator/internal/paginate"
	"github.com/elevateestimator/quotegenerator/internal/raster"
	"github.com/elevateestimator/quotegenerator/internal/render"
	"github.com/elevateestimator/quotegenerator/internal/totals"
)

// Exporter turns documents into paginated PDF files.
//
// An Exporter manages a headless browser instance that is reused across
// exports for performance. Exports are single-flight: a second call made
// while one is running returns [ErrExportInFlight] instead of queueing.
//
// Call [Exporter.Close] when the Exporter is no longer needed to release
// browser resources.
type Exporter struct {
	cfg           exporterConfig
	log           *zap.Logger
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	inFlight atomic.Bool

	mu     sync.Mutex
	closed bool
}

// NewExporter creates an Exporter with the given options.
//
// It starts a headless browser in the background. The caller must call
// [Exporter.Close] when finished.
func NewExporter(opts ...Option) (*Exporter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("quotegen: starting browser: %w", err)
	}

	return &Exporter{
		cfg:           cfg,
		log:           cfg.logger,
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases all resources held by the Exporter, including the
// browser process. Close is idempotent.
func (e *Exporter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.browserCancel()
	e.allocCancel()
	return nil
}

// Export renders d as a paginated US-Letter PDF.
//
// The pipeline fills document defaults, computes totals, renders the
// print clone, rasterizes it in the browser, plans page cuts at
// structural block boundaries, and reassembles the bitmap into pages.
// The document is not mutated.
func (e *Exporter) Export(ctx context.Context, d *document.Document) (*Result, error) {
	if err := e.checkClosed(); err != nil {
		return nil, err
	}
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, ErrExportInFlight
	}
	defer e.inFlight.Store(false)

	id := uuid.NewString()
	log := e.log.With(zap.String("export_id", id))
	start := time.Now()

	doc := *d
	doc.ApplyDefaults(time.Now())
	t := totals.Compute(&doc, time.Now())

	html, err := render.Printable(&doc, t)
	if err != nil {
		return nil, fmt.Errorf("quotegen: rendering document: %w", err)
	}

	url, cleanup, err := stageHTML(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if e.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(e.browserCtx)
	defer tabCancel()
	// The tab context descends from the browser, not from ctx; tie its
	// lifetime to the export deadline explicitly.
	go func() {
		select {
		case <-ctx.Done():
			tabCancel()
		case <-tabCtx.Done():
		}
	}()

	c, err := raster.Rasterize(tabCtx, url, raster.Options{
		LayoutWidthPx:  PageWidthPx,
		Scale:          e.cfg.renderScale,
		AssetTimeout:   e.cfg.assetTimeout,
		BlockSelectors: render.BlockSelectors,
	})
	if err != nil {
		return nil, fmt.Errorf("quotegen: rasterizing: %w", err)
	}
	log.Debug("document rasterized",
		zap.Int("width", c.Width),
		zap.Int("height", c.Height),
		zap.Float64("scale_factor", c.ScaleFactor),
		zap.Int("boundaries", len(c.Boundaries)))

	pageH := pageHeightCanvasPx(c.Width)
	var cuts []int
	if doc.Profile.SmartPageCuts {
		cuts = paginate.Plan(c.Boundaries, pageH, minSlicePx(c.ScaleFactor))
	} else {
		cuts = paginate.Uniform(c.Height, pageH)
	}

	pdf, err := assemble.PDF(c.Bitmap, cuts, assemble.Options{
		PageWidthPt:  PageWidthPt,
		PageHeightPt: PageHeightPt,
		JPEGQuality:  e.cfg.jpegQuality,
	})
	if err != nil {
		return nil, fmt.Errorf("quotegen: assembling pdf: %w", err)
	}

	log.Info("document exported",
		zap.String("kind", string(doc.Profile.Kind)),
		zap.Int("pages", len(cuts)+1),
		zap.Int("bytes", len(pdf)),
		zap.Duration("elapsed", time.Since(start)))

	return &Result{data: pdf, filename: exportFilename(&doc)}, nil
}

func (e *Exporter) checkClosed() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	return nil
}

// stageHTML writes the print clone to a temp file and returns its
// file:// URL plus a cleanup func.
func stageHTML(html string) (string, func(), error) {
	f, err := os.CreateTemp("", "quotegen-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("quotegen: creating temp file: %w", err)
	}
	name := f.Name()
	cleanup := func() { os.Remove(name) }

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("quotegen: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("quotegen: closing temp file: %w", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("quotegen: resolving path: %w", err)
	}
	return "file://" + abs, cleanup, nil
}

var unsafeFilename = regexp.MustCompile(`[^\w-]+`)

// exportFilename builds "<client>_<number>.pdf" with anything outside
// word characters and hyphens collapsed to underscores.
func exportFilename(d *document.Document) string {
	client := unsafeFilename.ReplaceAllString(d.Client.Name, "_")
	if client == "" || client == "_" {
		client = "Client"
	}
	number := unsafeFilename.ReplaceAllString(d.Number, "_")
	if number == "" || number == "_" {
		switch d.Profile.Kind {
		case document.Invoice:
			number = "Invoice"
		default:
			number = "Quote"
		}
	}
	return client + "_" + number + ".pdf"
}

// ExportDocument exports a single document using a temporary [Exporter].
// This is convenient for one-off exports. For repeated use, create an
// [Exporter] with [NewExporter] to reuse the browser instance.
func ExportDocument(ctx context.Context, d *document.Document, opts ...Option) (*Result, error) {
	exp, err := NewExporter(opts...)
	if err != nil {
		return nil, err
	}
	defer exp.Close()
	return exp.Export(ctx, d)
}
