package analyze

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/zm-git-dev/gohic/bins"
	"github.com/zm-git-dev/gohic/matrix"
)

// Distance fills Dist with the probability-weighted mean interaction
// distance of each bin, truncated to an integer value. Fully masked rows
// keep NaN, as do rows whose valid weights sum to zero.
func Distance(prob, dist *matrix.Masked, tbl bins.Table, workers int) {
	forEachRow(dist.Dim(), workers, func(i int) {
		if dist.ValidInRow(i) == 0 {
			return
		}
		dvals, msk := dist.Row(i)
		pvals, _ := prob.Row(i)

		ds := make([]float64, 0, len(dvals))
		ws := make([]float64, 0, len(dvals))
		for j := range dvals {
			if msk[j] {
				continue
			}
			ds = append(ds, dvals[j])
			ws = append(ws, pvals[j])
		}

		d := stat.Mean(ds, ws)
		if !math.IsNaN(d) {
			tbl[i].Dist = math.Trunc(d)
		}
	})
}
