// Package analyze computes per-bin interaction statistics from the masked
// probability and distance matrices. Rows are independent: analyzers only
// read the matrices and write into the owning bin's table slot, so they can
// fan out across workers without locking.
package analyze

import (
	"math"
	"sync"

	"github.com/zm-git-dev/gohic/bins"
	"github.com/zm-git-dev/gohic/matrix"
)

// DefaultMaxPairs caps how many nearest up/down bin pairs feed the log2
// ratio.
const DefaultMaxPairs = 10

// Direction fills Self, Up, Down, Inter and Log2 for every bin whose matrix
// row has at least one unmasked cell; fully masked rows keep NaN. Degenerate
// windows never fail: empty sums are 0 and the log2 ratio resolves to NaN or
// ±Inf.
func Direction(prob *matrix.Masked, tbl bins.Table, maxPairs, workers int) {
	forEachRow(prob.Dim(), workers, func(i int) {
		directionRow(prob, tbl, i, maxPairs)
	})
}

func directionRow(prob *matrix.Masked, tbl bins.Table, i, maxPairs int) {
	if prob.ValidInRow(i) == 0 {
		return
	}
	vals, msk := prob.Row(i)
	up, down := UpDown(vals, msk, i)

	var self float64
	if !msk[i] {
		self = vals[i]
	}
	upProb := up.sumValid()
	downProb := down.sumValid()
	// can go negative through masking artifacts; deliberately not clamped
	inter := 1 - upProb - downProb - self

	log2 := math.NaN()
	if idx := PairedIndices(up, down, maxPairs); len(idx) > 0 {
		var upSum, downSum float64
		for _, k := range idx {
			upSum += up.Vals[k]
			downSum += down.Vals[k]
		}
		switch {
		case upSum == 0 && downSum == 0:
			// stays NaN
		case upSum == 0:
			log2 = math.Inf(-1)
		case downSum == 0:
			log2 = math.Inf(1)
		default:
			log2 = math.Log2(upSum / downSum)
		}
	}

	tbl[i].Self = self
	tbl[i].Inter = inter
	tbl[i].Up = upProb
	tbl[i].Down = downProb
	tbl[i].Log2 = log2
}

// forEachRow partitions [0,n) into contiguous chunks, one goroutine each, so
// every row is written by exactly one worker. workers <= 1 runs rows in
// order on the calling goroutine.
func forEachRow(n, workers int, fn func(i int)) {
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
