package quotegen

// Page geometry is fixed: US Letter, portrait. The clone is laid out in
// CSS pixels at 96 dpi; the output document is measured in PDF points.
const (
	// PxPerInch is the CSS reference pixel density.
	PxPerInch = 96

	// PageWidthPx and PageHeightPx are 8.5in x 11in at 96 dpi.
	PageWidthPx  = 816
	PageHeightPx = 1056

	// PageWidthPt and PageHeightPt are 8.5in x 11in at 72 pt/in.
	PageWidthPt  = 612.0
	PageHeightPt = 792.0
)

// DefaultRenderScale is the device pixel multiplier requested from the
// rasterizer for print sharpness.
const DefaultRenderScale = 2.0

// minSliceCSSPx is the smallest page slice worth producing, in layout
// pixels. It prevents a boundary sitting just past a page edge from
// yielding a sliver page.
const minSliceCSSPx = 200

// pageHeightCanvasPx returns the height of one output page in bitmap
// pixels when the bitmap is fitted to the page width.
func pageHeightCanvasPx(bitmapWidth int) int {
	return int(float64(bitmapWidth) * PageHeightPt / PageWidthPt)
}

// minSlicePx scales the minimum slice height into bitmap pixels.
func minSlicePx(scaleFactor float64) int {
	return int(minSliceCSSPx*scaleFactor + 0.5)
}
