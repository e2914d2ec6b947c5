// Package matrix builds the masked probability and distance matrices that
// drive the per-bin analyzers. A cell is masked when its two bins sit on
// different chromosomes or when either bin is low-signal; the mask is the
// single source of truth for cell validity and every aggregate skips masked
// cells explicitly.
package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/zm-git-dev/gohic/bins"
)

var (
	// ErrNotSquare indicates a probability matrix with unequal dimensions.
	ErrNotSquare = errors.New("matrix: probability matrix must be square")
	// ErrBinCount indicates a matrix dimension that does not match the bin table.
	ErrBinCount = errors.New("matrix: matrix dimension must equal bin count")
)

// lowSignalCutoff is the minimum column sum for a bin to stay in the analysis.
const lowSignalCutoff = 0.5

// Masked pairs a dense matrix with a boolean exclusion mask of the same
// shape; mask[i][j] true means the cell must be ignored. The probability and
// distance matrices returned by Build share one mask.
type Masked struct {
	Data *mat.Dense
	Mask [][]bool
}

// Dim returns the matrix dimension.
func (m *Masked) Dim() int {
	r, _ := m.Data.Dims()
	return r
}

// Row returns the values and mask bits of row i. The value slice aliases the
// underlying matrix storage and must not be modified.
func (m *Masked) Row(i int) ([]float64, []bool) {
	return m.Data.RawRowView(i), m.Mask[i]
}

// ValidInRow counts the unmasked cells of row i.
func (m *Masked) ValidInRow(i int) int {
	n := 0
	for _, masked := range m.Mask[i] {
		if !masked {
			n++
		}
	}
	return n
}

// Build constructs the exclusion mask from the raw probability matrix and
// the bin table, and returns the masked probability matrix together with the
// masked pairwise bin-centre distance matrix. Bins whose column sum is below
// 0.5 are low-signal: their whole row and column are masked and their table
// group stays empty; all other bins get their chromosome as group.
//
// Low-signal detection sums columns of the raw matrix. Row and column sums
// only agree for symmetric input; symmetry is not validated here.
func Build(raw *mat.Dense, tbl bins.Table) (prob, dist *Masked, err error) {
	r, c := raw.Dims()
	if r != c {
		return nil, nil, fmt.Errorf("%w: got %dx%d", ErrNotSquare, r, c)
	}
	if r != len(tbl) {
		return nil, nil, fmt.Errorf("%w: %d bins, %dx%d matrix", ErrBinCount, len(tbl), r, c)
	}
	n := r

	low := make([]bool, n)
	for j := 0; j < n; j++ {
		low[j] = floats.Sum(mat.Col(nil, j, raw)) < lowSignalCutoff
	}

	mask := make([][]bool, n)
	for i := 0; i < n; i++ {
		mask[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			mask[i][j] = tbl[i].Chrom != tbl[j].Chrom || low[i] || low[j]
		}
	}

	for i := range tbl {
		if low[i] {
			tbl[i].Group = ""
		} else {
			tbl[i].Group = tbl[i].Chrom
		}
	}

	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, math.Abs(tbl[i].Centre-tbl[j].Centre))
		}
	}

	return &Masked{Data: raw, Mask: mask}, &Masked{Data: d, Mask: mask}, nil
}
