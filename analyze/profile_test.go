package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zm-git-dev/gohic/analyze"
)

func TestProfileMatchesMask(t *testing.T) {
	labels := []string{"chr1:0-10", "chr1:10-20", "chr2:0-10"}
	prob, dist, _ := build(t, labels, []float64{
		0.5, 0.3, 0.2,
		0.3, 0.5, 0.2,
		0.2, 0.2, 0.6,
	})
	pairs := analyze.Profile(prob, dist)

	// every unmasked cell appears exactly once, both triangles
	unmasked := 0
	for i := 0; i < prob.Dim(); i++ {
		unmasked += prob.ValidInRow(i)
	}
	require.Len(t, pairs, unmasked)

	// cross-chromosome cells are gone: only the chr1 block and chr2 self cell
	require.Equal(t, 5, len(pairs))

	// row-major order, values taken from the matrices
	want := []analyze.DistProb{
		{Dist: 0, Prob: 0.5},
		{Dist: 10, Prob: 0.3},
		{Dist: 10, Prob: 0.3},
		{Dist: 0, Prob: 0.5},
		{Dist: 0, Prob: 0.6},
	}
	require.Equal(t, want, pairs)
}

func TestProfileSkipsExcludedBin(t *testing.T) {
	labels := []string{"chr1:0-10", "chr1:10-20", "chr1:20-30"}
	// column 1 sums to 0.3: bin 1 low-signal, all its cells masked
	prob, dist, tbl := build(t, labels, []float64{
		0.6, 0.1, 0.4,
		0.1, 0.1, 0.3,
		0.4, 0.1, 0.5,
	})
	pairs := analyze.Profile(prob, dist)

	require.True(t, tbl[1].Excluded())
	require.Len(t, pairs, 4) // the 2x2 block of bins 0 and 2
	for _, p := range pairs {
		require.NotEqual(t, 0.1, p.Prob, "cells touching the excluded bin must not leak")
	}
}
