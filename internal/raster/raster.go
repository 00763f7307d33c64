// Package raster captures a rendered document as a single large bitmap.
//
// It drives a headless-Chrome tab through three phases: an asset
// readiness gate (fonts and images, bounded by a timeout), structural
// boundary measurement in layout pixels, and a full-page screenshot at a
// fixed device-scale multiplier over an opaque white background. The
// scale factor relating layout pixels to bitmap pixels is derived from
// the captured width, never assumed.
package raster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// Options configures one capture.
type Options struct {
	// LayoutWidthPx is the document's fixed layout width in CSS pixels.
	LayoutWidthPx int
	// Scale is the device pixel multiplier requested for print
	// sharpness. Zero defaults to 2.
	Scale float64
	// AssetTimeout bounds the fonts/images gate. Zero defaults to 8s.
	AssetTimeout time.Duration
	// BlockSelectors are the structural containers whose bottom edges
	// become legal cut positions.
	BlockSelectors []string
}

func (o Options) resolved() Options {
	if o.LayoutWidthPx <= 0 {
		o.LayoutWidthPx = 816
	}
	if o.Scale <= 0 {
		o.Scale = 2
	}
	if o.AssetTimeout <= 0 {
		o.AssetTimeout = 8 * time.Second
	}
	return o
}

// Capture is the rasterization result.
type Capture struct {
	// Bitmap is the full-document raster.
	Bitmap image.Image
	// Width and Height are the bitmap dimensions in pixels.
	Width, Height int
	// ScaleFactor is bitmap pixels per layout pixel.
	ScaleFactor float64
	// Boundaries are structural block bottom edges in bitmap pixels,
	// ascending and deduplicated, ending with the content edge.
	Boundaries []int
}

// assetGateJS resolves once fonts are ready and every image has settled
// (load or error both count), or once the timeout elapses, whichever
// comes first. It never rejects: a broken image must not hang export.
const assetGateJS = `(function(timeoutMs) {
	const fonts = (document.fonts && document.fonts.ready) ? document.fonts.ready : Promise.resolve();
	const images = Array.from(document.querySelectorAll('img')).map(img => new Promise(resolve => {
		if (img.complete) return resolve();
		img.addEventListener('load', resolve, { once: true });
		img.addEventListener('error', resolve, { once: true });
	}));
	const timeout = new Promise(resolve => setTimeout(resolve, timeoutMs));
	return Promise.race([Promise.all([fonts, ...images]), timeout]).then(() => true);
})(%d)`

// boundariesJS collects the rounded bottom edge of every matching block,
// relative to the page root, in CSS pixels.
const boundariesJS = `(function(selectors) {
	const root = document.getElementById('page') || document.body;
	const top = root.getBoundingClientRect().top;
	const bottoms = new Set();
	for (const sel of selectors) {
		for (const el of document.querySelectorAll(sel)) {
			const b = el.getBoundingClientRect().bottom - top;
			if (b > 0) bottoms.add(Math.round(b));
		}
	}
	return Array.from(bottoms).sort((a, b) => a - b);
})(%s)`

const contentHeightJS = `(function() {
	const root = document.getElementById('page') || document.body;
	return Math.ceil(root.getBoundingClientRect().height);
})()`

// Rasterize navigates the tab at ctx to url and captures it. The context
// must belong to a dedicated tab; the caller owns its lifetime.
func Rasterize(ctx context.Context, url string, opts Options) (*Capture, error) {
	o := opts.resolved()

	selectors, err := json.Marshal(o.BlockSelectors)
	if err != nil {
		return nil, fmt.Errorf("raster: encoding selectors: %w", err)
	}

	var (
		layoutBottoms []float64
		contentHeight float64
		shot          []byte
	)

	err = chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),

		// Asset readiness gate.
		chromedp.Evaluate(
			fmt.Sprintf(assetGateJS, o.AssetTimeout.Milliseconds()),
			nil,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
				return p.WithAwaitPromise(true)
			},
		),

		chromedp.Evaluate(fmt.Sprintf(boundariesJS, selectors), &layoutBottoms),
		chromedp.Evaluate(contentHeightJS, &contentHeight),

		chromedp.ActionFunc(func(ctx context.Context) error {
			heightPx := int64(math.Ceil(contentHeight))
			if heightPx < 1 {
				heightPx = 1
			}
			if err := emulation.SetDeviceMetricsOverride(
				int64(o.LayoutWidthPx), heightPx, o.Scale, false,
			).Do(ctx); err != nil {
				return err
			}
			// Opaque white backdrop: transparent capture regions would
			// later composite as black.
			if err := emulation.SetDefaultBackgroundColorOverride().
				WithColor(&cdp.RGBA{R: 255, G: 255, B: 255, A: 1}).
				Do(ctx); err != nil {
				return err
			}
			buf, err := page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			if err != nil {
				return err
			}
			shot = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("raster: capturing %s: %w", url, err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("raster: decoding screenshot: %w", err)
	}

	bounds := img.Bounds()
	c := &Capture{
		Bitmap: img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("raster: empty screenshot %dx%d", c.Width, c.Height)
	}
	c.ScaleFactor = float64(c.Width) / float64(o.LayoutWidthPx)
	c.Boundaries = scaleBoundaries(layoutBottoms, c.ScaleFactor, c.Height)
	return c, nil
}

// scaleBoundaries converts layout-pixel bottoms into bitmap pixels,
// clamps them to the bitmap, and guarantees the content edge terminates
// the list so the planner always has a final boundary.
func scaleBoundaries(layoutBottoms []float64, factor float64, height int) []int {
	out := make([]int, 0, len(layoutBottoms)+1)
	prev := 0
	for _, b := range layoutBottoms {
		px := int(math.Round(b * factor))
		if px > height {
			px = height
		}
		if px > prev {
			out = append(out, px)
			prev = px
		}
	}
	if prev < height {
		out = append(out, height)
	}
	return out
}
