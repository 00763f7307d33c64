// Package assemble turns a rasterized document bitmap and a cut plan into
// a paginated PDF. Each horizontal band between consecutive cuts is
// painted onto an opaque white backing, encoded as JPEG, and placed
// full-bleed on its own US-Letter page.
package assemble

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"github.com/jung-kurt/gofpdf"
)

// Options controls page geometry and encoding.
type Options struct {
	// PageWidthPt and PageHeightPt are the output page size in PDF
	// points. Zero values default to US Letter (612 x 792).
	PageWidthPt  float64
	PageHeightPt float64
	// JPEGQuality in [1,100]. Zero defaults to 98.
	JPEGQuality int
}

func (o Options) resolved() Options {
	if o.PageWidthPt <= 0 {
		o.PageWidthPt = 612
	}
	if o.PageHeightPt <= 0 {
		o.PageHeightPt = 792
	}
	if o.JPEGQuality <= 0 {
		o.JPEGQuality = 98
	}
	return o
}

// SliceRects expands a cut plan into the [from, to) pixel bands it
// produces for a bitmap of the given height, including the implicit
// trailing band after the last cut. Cuts outside (0, height) and
// non-advancing cuts are ignored.
func SliceRects(height int, cuts []int) [][2]int {
	var rects [][2]int
	prev := 0
	for _, c := range cuts {
		if c <= prev {
			continue
		}
		if c > height {
			c = height
		}
		rects = append(rects, [2]int{prev, c})
		prev = c
		if prev == height {
			break
		}
	}
	if prev < height {
		rects = append(rects, [2]int{prev, height})
	}
	return rects
}

// PDF slices bitmap at cuts and produces the final document. At least one
// page is always produced for a non-empty bitmap.
func PDF(bitmap image.Image, cuts []int, opts Options) ([]byte, error) {
	o := opts.resolved()
	bounds := bitmap.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("assemble: empty bitmap %dx%d", w, h)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: o.PageWidthPt, Ht: o.PageHeightPt},
	})

	for i, rect := range SliceRects(h, cuts) {
		sliceH := rect[1] - rect[0]

		// Opaque white backing: transparent regions would otherwise
		// surface as black fill after JPEG encoding.
		backing := image.NewRGBA(image.Rect(0, 0, w, sliceH))
		draw.Draw(backing, backing.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		draw.Draw(backing, backing.Bounds(), bitmap, image.Pt(bounds.Min.X, bounds.Min.Y+rect[0]), draw.Over)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, backing, &jpeg.Options{Quality: o.JPEGQuality}); err != nil {
			return nil, fmt.Errorf("assemble: encoding slice %d: %w", i, err)
		}

		pdf.AddPage()
		pdf.SetFillColor(255, 255, 255)
		pdf.Rect(0, 0, o.PageWidthPt, o.PageHeightPt, "F")

		// Width-fit: the slice spans the full page width; its height in
		// points preserves the bitmap aspect ratio.
		imgHPt := float64(sliceH) / float64(w) * o.PageWidthPt
		name := fmt.Sprintf("slice-%d", i)
		pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "JPEG"}, &buf)
		pdf.ImageOptions(name, 0, 0, o.PageWidthPt, imgHPt, false, gofpdf.ImageOptions{ImageType: "JPEG"}, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("assemble: writing pdf: %w", err)
	}
	return out.Bytes(), nil
}
