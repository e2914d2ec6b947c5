package bins_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zm-git-dev/gohic/bins"
)

func TestNewTable(t *testing.T) {
	tbl, err := bins.NewTable([]string{"chr1:0-10", "chr1:10-20", "chrX:0-5"})
	require.NoError(t, err)
	require.Len(t, tbl, 3)

	require.Equal(t, "chr1", tbl[0].Chrom)
	require.Equal(t, 0, tbl[0].Start)
	require.Equal(t, 10, tbl[0].End)
	require.Equal(t, 5.0, tbl[0].Centre)
	require.Equal(t, "chr1:0-10", tbl[0].Name)

	require.Equal(t, "chrX", tbl[2].Chrom)
	require.Equal(t, 2.5, tbl[2].Centre)

	// derived stats start unset
	for _, b := range tbl {
		require.True(t, math.IsNaN(b.Self))
		require.True(t, math.IsNaN(b.Inter))
		require.True(t, math.IsNaN(b.Up))
		require.True(t, math.IsNaN(b.Down))
		require.True(t, math.IsNaN(b.Log2))
		require.True(t, math.IsNaN(b.Dist))
	}
}

func TestNewTableBadLabels(t *testing.T) {
	cases := []struct {
		name  string
		label string
	}{
		{"NoColon", "chr1_0-10"},
		{"NoDash", "chr1:0+10"},
		{"NonNumericStart", "chr1:a-10"},
		{"NonNumericEnd", "chr1:0-b"},
		{"Empty", ""},
		{"NegativeStart", "chr1:-5-10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bins.NewTable([]string{tc.label})
			if !errors.Is(err, bins.ErrBadLabel) {
				t.Errorf("NewTable(%q) error = %v; want ErrBadLabel", tc.label, err)
			}
		})
	}
}

func TestExcluded(t *testing.T) {
	b := bins.Bin{Chrom: "chr1"}
	require.True(t, b.Excluded(), "no group assigned yet")
	b.Group = "chr1"
	require.False(t, b.Excluded())
}
