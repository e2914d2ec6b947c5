package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zm-git-dev/gohic/analyze"
)

func TestUpDown(t *testing.T) {
	vals := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	mask := []bool{false, true, false, false, true}

	up, down := analyze.UpDown(vals, mask, 2)
	// upstream is nearest-first: indices 1, 0
	require.Equal(t, []float64{0.2, 0.1}, up.Vals)
	require.Equal(t, []bool{true, false}, up.Mask)
	// downstream keeps forward order: indices 3, 4
	require.Equal(t, []float64{0.4, 0.5}, down.Vals)
	require.Equal(t, []bool{false, true}, down.Mask)
}

func TestUpDownEdges(t *testing.T) {
	vals := []float64{0.1, 0.2, 0.3}
	mask := make([]bool, 3)

	up, down := analyze.UpDown(vals, mask, 0)
	require.Equal(t, 0, up.Len(), "no upstream at the first bin")
	require.Equal(t, []float64{0.2, 0.3}, down.Vals)

	up, down = analyze.UpDown(vals, mask, 2)
	require.Equal(t, []float64{0.2, 0.1}, up.Vals)
	require.Equal(t, 0, down.Len(), "no downstream at the last bin")
}

func TestPairedIndices(t *testing.T) {
	up := analyze.Window{
		Vals: []float64{1, 2, 3, 4},
		Mask: []bool{false, true, false, false},
	}
	down := analyze.Window{
		Vals: []float64{5, 6, 7},
		Mask: []bool{false, false, true},
	}

	// bounded by the shorter window (3); k=1 masked in up, k=2 masked in down
	require.Equal(t, []int{0}, analyze.PairedIndices(up, down, 10))

	// maxLen caps before the window lengths do
	require.Equal(t, []int{0}, analyze.PairedIndices(up, down, 1))

	got := analyze.PairedIndices(up, down, 10)
	for _, k := range got {
		require.Less(t, k, up.Len())
		require.Less(t, k, down.Len())
		require.Less(t, k, 10)
	}
}

func TestPairedIndicesEmpty(t *testing.T) {
	full := analyze.Window{Vals: []float64{1, 2}, Mask: []bool{false, false}}
	empty := analyze.Window{}

	require.Empty(t, analyze.PairedIndices(empty, full, 10))
	require.Empty(t, analyze.PairedIndices(full, empty, 10))
	require.Empty(t, analyze.PairedIndices(full, full, 0))

	masked := analyze.Window{Vals: []float64{1, 2}, Mask: []bool{true, true}}
	require.Empty(t, analyze.PairedIndices(full, masked, 10))
}
