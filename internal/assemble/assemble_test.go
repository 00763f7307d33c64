package assemble

import (
	"image"
	"image/color"
	"testing"
)

func testBitmap(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(y % 256), G: 128, B: 64, A: 255})
		}
	}
	return img
}

func isPDF(data []byte) bool {
	return len(data) > 4 && string(data[:5]) == "%PDF-"
}

func TestSliceRects_Coverage(t *testing.T) {
	tests := []struct {
		name   string
		height int
		cuts   []int
		want   [][2]int
	}{
		{"no cuts", 300, nil, [][2]int{{0, 300}}},
		{"two cuts with tail", 300, []int{100, 200}, [][2]int{{0, 100}, {100, 200}, {200, 300}}},
		{"cut at edge", 300, []int{300}, [][2]int{{0, 300}}},
		{"cut beyond edge clamped", 300, []int{500}, [][2]int{{0, 300}}},
		{"non-advancing cuts ignored", 300, []int{100, 100, 50, 200}, [][2]int{{0, 100}, {100, 200}, {200, 300}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SliceRects(tt.height, tt.cuts)
			if len(got) != len(tt.want) {
				t.Fatalf("SliceRects = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("SliceRects = %v, want %v", got, tt.want)
				}
			}
			// Bands must tile [0, height) exactly.
			prev := 0
			for _, r := range got {
				if r[0] != prev {
					t.Fatalf("gap or overlap at %v in %v", r, got)
				}
				prev = r[1]
			}
			if prev != tt.height {
				t.Fatalf("coverage ends at %d, want %d", prev, tt.height)
			}
		})
	}
}

func TestPDF_SinglePage(t *testing.T) {
	data, err := PDF(testBitmap(100, 150), nil, Options{})
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !isPDF(data) {
		t.Fatal("output is not a valid PDF")
	}
}

func TestPDF_MultiPage(t *testing.T) {
	one, err := PDF(testBitmap(100, 300), nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	three, err := PDF(testBitmap(100, 300), []int{100, 200}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !isPDF(three) {
		t.Fatal("output is not a valid PDF")
	}
	// Three pages of image data should outweigh one.
	if len(three) <= len(one) {
		t.Errorf("3-page PDF (%d bytes) not larger than 1-page (%d bytes)", len(three), len(one))
	}
}

func TestPDF_TransparentBitmapGetsWhiteBacking(t *testing.T) {
	// Fully transparent source; the backing must make the encode succeed
	// and produce a plausible page rather than failing on alpha.
	img := image.NewRGBA(image.Rect(0, 0, 50, 80))
	data, err := PDF(img, nil, Options{})
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !isPDF(data) {
		t.Fatal("output is not a valid PDF")
	}
}

func TestPDF_EmptyBitmap(t *testing.T) {
	if _, err := PDF(image.NewRGBA(image.Rect(0, 0, 0, 0)), nil, Options{}); err == nil {
		t.Fatal("expected error for empty bitmap")
	}
}

func TestOptionsResolved(t *testing.T) {
	o := Options{}.resolved()
	if o.PageWidthPt != 612 || o.PageHeightPt != 792 {
		t.Errorf("default page = %vx%v, want 612x792", o.PageWidthPt, o.PageHeightPt)
	}
	if o.JPEGQuality != 98 {
		t.Errorf("default quality = %d, want 98", o.JPEGQuality)
	}
	o = Options{PageWidthPt: 595, PageHeightPt: 842, JPEGQuality: 80}.resolved()
	if o.PageWidthPt != 595 || o.JPEGQuality != 80 {
		t.Errorf("explicit options overwritten: %+v", o)
	}
}
