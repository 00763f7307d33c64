// Package paginate plans page-break positions for a rasterized document.
//
// The planner is a greedy interval-covering heuristic: given the bottom
// edges of the document's structural blocks (regions that must not be
// split across pages) it walks down the bitmap choosing, for each page,
// the boundary closest to, but not past, the ideal page height. "Never
// split a block" is the hard constraint; "close to ideal height" is the
// soft objective. The plan does not minimize page count.
package paginate

import "sort"

// Plan computes the ordered cut offsets for a bitmap of the given
// boundaries. boundaries are bottom edges of structural blocks in bitmap
// pixels; the final content edge must be included. idealPageHeight is the
// height of one output page in bitmap pixels; minSlice suppresses
// degenerate near-zero slices when a boundary sits just past a page edge.
//
// The returned offsets are strictly increasing, exclude 0, and every cut
// lies on a supplied boundary except in the forced-progress fallback
// described below. The final content edge is included when the walk lands
// on it; callers slice the remainder regardless.
//
// When no boundary falls inside (y+minSlice, y+ideal] the constraint is
// relaxed to (y, y+ideal]; if that window is empty too the cut is forced
// at y+ideal, accepting a mid-block cut rather than stalling.
func Plan(boundaries []int, idealPageHeight, minSlice int) []int {
	if idealPageHeight <= 0 {
		return nil
	}

	bottoms := normalize(boundaries)
	if len(bottoms) == 0 {
		return nil
	}
	final := bottoms[len(bottoms)-1]
	if final <= 1 {
		return nil
	}

	var cuts []int
	y := 0
	for y+1 < final {
		target := y + idealPageHeight
		candidate, ok := largestAtMost(bottoms, target, y+minSlice)
		if !ok {
			// Min-slice window is empty; relax it before giving up on
			// boundary alignment entirely.
			candidate, ok = largestAtMost(bottoms, target, y)
		}
		if !ok {
			candidate = target
		}
		cuts = append(cuts, candidate)
		y = candidate
	}
	return cuts
}

// Uniform returns fixed-interval cuts for documents exported without
// smart page breaks: one cut per page height until total is covered.
func Uniform(total, pageHeight int) []int {
	if pageHeight <= 0 || total <= pageHeight {
		return nil
	}
	var cuts []int
	for y := pageHeight; y < total; y += pageHeight {
		cuts = append(cuts, y)
	}
	return cuts
}

// largestAtMost returns the largest boundary b with lower < b <= limit,
// scanning from the end the way the original cut search does.
func largestAtMost(bottoms []int, limit, lower int) (int, bool) {
	for i := len(bottoms) - 1; i >= 0; i-- {
		b := bottoms[i]
		if b <= limit {
			if b > lower {
				return b, true
			}
			return 0, false
		}
	}
	return 0, false
}

// normalize sorts ascending, deduplicates, and drops non-positive values.
func normalize(in []int) []int {
	out := make([]int, 0, len(in))
	for _, v := range in {
		if v > 0 {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}
