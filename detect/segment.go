package detect

import (
	"math"

	"github.com/gogpu/ndim"
	"github.com/gogpu/ndim/filter"
)

// Segment grows a detection mask into the faint tails of each hit.
//
// Pixels bordering the mask become candidates. A candidate joins the
// mask when its minimum relative contrast against 4-connected flagged
// neighbors, (in[n] - in[p]) / in[n], falls below the similarity
// threshold. Passes repeat until a full pass absorbs nothing. The mask
// is updated in place; the number of absorbed pixels is returned.
//
// The contrast assumes positive input intensities.
func Segment(in *ndim.Raster[float64], mask *ndim.Raster[uint8], threshold float64) int {
	dilate := filter.Dilation[uint8](filter.BoxWindow(1, 2))
	interior := mask.Domain().Shrink(ndim.CenteredBox(1, 2))

	total := 0
	for {
		grown := dilate.Apply(ndim.Constant(mask, 0))

		added := 0
		p := interior.Front.Clone()
		for ok := !interior.IsEmpty(); ok; ok = interior.Next(p) {
			if grown.At(p) == 0 || mask.At(p) != 0 {
				continue
			}
			if minContrast(in, mask, p) < threshold {
				mask.Set(p, 1)
				added++
			}
		}
		if added == 0 {
			break
		}
		total += added
	}
	if total > 0 {
		ndim.Logger().Debug("segmentation grew mask", "added", total)
	}
	return total
}

// minContrast returns the minimum relative contrast of p against its
// flagged 4-connected neighbors, or +Inf when none is flagged. Negative
// contrast means p outshines the neighborhood.
func minContrast(in *ndim.Raster[float64], mask *ndim.Raster[uint8], p ndim.Position) float64 {
	out := math.Inf(1)
	q := make(ndim.Position, 2)
	for axis := 0; axis < 2; axis++ {
		for _, d := range [2]int{-1, 1} {
			copy(q, p)
			q[axis] += d
			if mask.At(q) == 0 {
				continue
			}
			contrast := (in.At(q) - in.At(p)) / in.At(q)
			if contrast < out {
				out = contrast
			}
		}
	}
	return out
}
