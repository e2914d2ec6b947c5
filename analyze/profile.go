package analyze

import "github.com/zm-git-dev/gohic/matrix"

// DistProb is one unmasked (distance, probability) cell.
type DistProb struct {
	Dist float64
	Prob float64
}

// Profile collects the (distance, probability) pair of every unmasked cell
// in row-major order, both triangles included. The result feeds an external
// lowess-style smoother; no smoothing happens here.
func Profile(prob, dist *matrix.Masked) []DistProb {
	n := prob.Dim()
	var pairs []DistProb
	for i := 0; i < n; i++ {
		pvals, msk := prob.Row(i)
		dvals, _ := dist.Row(i)
		for j := 0; j < n; j++ {
			if msk[j] {
				continue
			}
			pairs = append(pairs, DistProb{Dist: dvals[j], Prob: pvals[j]})
		}
	}
	return pairs
}
