package cutplan

// packer maintains a maximal-rectangles free list over one panel and
// places cuts with a best-area-fit heuristic. Splitting regenerates every
// overlapping free rect rather than guillotine-cutting a single one, so
// rotated cuts can still use strips spanning earlier cuts.
type packer struct {
	freeRects []rect
	kerf      float64
}

type rect struct {
	x, y, w, h float64
}

func newPacker(width, height, kerf float64) *packer {
	return &packer{
		freeRects: []rect{{0, 0, width, height}},
		kerf:      kerf,
	}
}

// bestFit returns the smallest waste area for a w x h cut, -1 if no free
// rect fits it. State is not modified.
func (p *packer) bestFit(w, h float64) float64 {
	wk := w + p.kerf
	hk := h + p.kerf
	best := float64(-1)
	for _, r := range p.freeRects {
		if wk <= r.w+0.001 && hk <= r.h+0.001 {
			waste := r.w*r.h - w*h
			if best < 0 || waste < best {
				best = waste
			}
		}
	}
	return best
}

// insert places a w x h cut in the best-fitting free rect and splits the
// free list around it. Returns the placement origin.
func (p *packer) insert(w, h float64) (bool, float64, float64) {
	wk := w + p.kerf
	hk := h + p.kerf
	bestIdx := -1
	bestWaste := float64(-1)
	for i, r := range p.freeRects {
		if wk <= r.w+0.001 && hk <= r.h+0.001 {
			waste := r.w*r.h - w*h
			if bestIdx < 0 || waste < bestWaste {
				bestIdx = i
				bestWaste = waste
			}
		}
	}
	if bestIdx < 0 {
		return false, 0, 0
	}
	chosen := p.freeRects[bestIdx]
	placed := rect{x: chosen.x, y: chosen.y, w: wk, h: hk}
	p.splitAround(placed)
	return true, chosen.x, chosen.y
}

// splitAround replaces every free rect overlapping the placement with its
// maximal non-overlapping strips, then prunes contained rects.
func (p *packer) splitAround(placed rect) {
	var next []rect
	for _, r := range p.freeRects {
		if !overlaps(r, placed) {
			next = append(next, r)
			continue
		}
		if placed.x > r.x+0.001 {
			next = append(next, rect{r.x, r.y, placed.x - r.x, r.h})
		}
		if placed.x+placed.w < r.x+r.w-0.001 {
			next = append(next, rect{placed.x + placed.w, r.y, r.x + r.w - placed.x - placed.w, r.h})
		}
		if placed.y > r.y+0.001 {
			next = append(next, rect{r.x, r.y, r.w, placed.y - r.y})
		}
		if placed.y+placed.h < r.y+r.h-0.001 {
			next = append(next, rect{r.x, placed.y + placed.h, r.w, r.y + r.h - placed.y - placed.h})
		}
	}
	p.freeRects = prune(next)
}

func overlaps(a, b rect) bool {
	return a.x < b.x+b.w-0.001 && a.x+a.w > b.x+0.001 &&
		a.y < b.y+b.h-0.001 && a.y+a.h > b.y+0.001
}

func prune(rects []rect) []rect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]rect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i == j || !contains(b, a) {
				continue
			}
			// Identical rects contain each other; keep the first only.
			if j > i && contains(a, b) {
				continue
			}
			contained = true
			break
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

func contains(outer, inner rect) bool {
	return outer.x <= inner.x+0.001 && outer.y <= inner.y+0.001 &&
		outer.x+outer.w >= inner.x+inner.w-0.001 &&
		outer.y+outer.h >= inner.y+inner.h-0.001
}
