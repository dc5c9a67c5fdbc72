package tui

// SplitH splits region into columns sized by Allocate
func SplitH(r Region, gap int, slots ...Slot) []Region {
	sizes := Allocate(r.W, gap, slots)
	regions := make([]Region, len(sizes))
	x := 0
	for i, w := range sizes {
		regions[i] = r.Sub(x, 0, w, r.H)
		x += w + gap
	}
	return regions
}

// SplitV splits region into rows sized by Allocate
func SplitV(r Region, gap int, slots ...Slot) []Region {
	sizes := Allocate(r.H, gap, slots)
	regions := make([]Region, len(sizes))
	y := 0
	for i, h := range sizes {
		regions[i] = r.Sub(0, y, r.W, h)
		y += h + gap
	}
	return regions
}

// Slot describes one item along a split axis
// Fixed > 0 requests an exact size; otherwise the item shares leftover space by Weight (minimum 1)
type Slot struct {
	Fixed  int
	Weight int
}

// Allocate distributes total cells among slots separated by gap
// Fixed slots are served first in order and clipped when space runs out;
// the remainder is shared by weight, rounding leftovers go to the earliest slots
func Allocate(total, gap int, slots []Slot) []int {
	n := len(slots)
	if n == 0 {
		return nil
	}
	sizes := make([]int, n)
	if total <= 0 {
		return sizes
	}

	avail := total - gap*(n-1)
	if avail < 0 {
		avail = 0
	}

	weightSum := 0
	for i, s := range slots {
		if s.Fixed > 0 {
			w := min(s.Fixed, avail)
			sizes[i] = w
			avail -= w
			continue
		}
		weightSum += max(s.Weight, 1)
	}
	if weightSum == 0 || avail == 0 {
		return sizes
	}

	given := 0
	for i, s := range slots {
		if s.Fixed > 0 {
			continue
		}
		w := avail * max(s.Weight, 1) / weightSum
		sizes[i] = w
		given += w
	}

	// Hand out rounding remainder one cell at a time
	rest := avail - given
	for i := 0; rest > 0; i = (i + 1) % n {
		if slots[i].Fixed > 0 {
			continue
		}
		sizes[i]++
		rest--
	}
	return sizes
}
