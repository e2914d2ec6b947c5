package analyze

// Window is a masked view over part of a matrix row, ordered nearest-first.
type Window struct {
	Vals []float64
	Mask []bool
}

// Len returns the window length including masked elements.
func (w Window) Len() int { return len(w.Vals) }

// sumValid sums the unmasked elements; 0 when the window is empty or
// entirely masked.
func (w Window) sumValid() float64 {
	var s float64
	for k, v := range w.Vals {
		if !w.Mask[k] {
			s += v
		}
	}
	return s
}

// UpDown splits a matrix row around index into its upstream window (indices
// index-1 down to 0, so nearest bin first; empty at index 0) and downstream
// window (indices index+1 onward; empty at the last index). Mask bits carry
// over from the source row.
func UpDown(vals []float64, mask []bool, index int) (up, down Window) {
	up = Window{Vals: make([]float64, index), Mask: make([]bool, index)}
	for k := 0; k < index; k++ {
		up.Vals[k] = vals[index-1-k]
		up.Mask[k] = mask[index-1-k]
	}
	down = Window{Vals: vals[index+1:], Mask: mask[index+1:]}
	return up, down
}

// PairedIndices returns the aligned offsets k, ascending, at which both
// windows have an unmasked element. Offsets are bounded by maxLen and by the
// shorter window; the k-th nearest upstream bin is only compared against the
// k-th nearest downstream bin.
func PairedIndices(up, down Window, maxLen int) []int {
	if up.Len() < maxLen {
		maxLen = up.Len()
	}
	if down.Len() < maxLen {
		maxLen = down.Len()
	}
	var idx []int
	for k := 0; k < maxLen; k++ {
		if !up.Mask[k] && !down.Mask[k] {
			idx = append(idx, k)
		}
	}
	return idx
}
