// Package bins models the genomic bins behind each row/column of a contact
// matrix: parsed coordinates plus the per-bin statistics filled in by the
// analyzers.
package bins

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrBadLabel indicates a bin label that does not match "chr:start-end".
var ErrBadLabel = errors.New("bins: label must match chr:start-end")

var labelRe = regexp.MustCompile(`^(\S+):(\d+)-(\d+)$`)

// Bin is one matrix row/column. Group is empty until the mask is built;
// after that it holds the chromosome name, or stays empty for bins dropped
// as low-signal. The trailing float fields are NaN until an analyzer sets
// them.
type Bin struct {
	Chrom  string
	Start  int
	End    int
	Centre float64
	Name   string
	Group  string

	Self  float64
	Inter float64
	Up    float64
	Down  float64
	Log2  float64
	Dist  float64
}

// Excluded reports whether the bin was dropped as low-signal during mask
// construction. Only meaningful once matrix.Build has run.
func (b Bin) Excluded() bool {
	return b.Group == ""
}

// Table holds one Bin per matrix index.
type Table []Bin

// NewTable parses matrix header labels into a bin table. Index order follows
// the label order, which is also the matrix row/column order.
func NewTable(labels []string) (Table, error) {
	tbl := make(Table, len(labels))
	for i, label := range labels {
		m := labelRe.FindStringSubmatch(label)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadLabel, label)
		}
		start, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadLabel, label, err)
		}
		end, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadLabel, label, err)
		}
		tbl[i] = Bin{
			Chrom:  m[1],
			Start:  start,
			End:    end,
			Centre: (float64(start) + float64(end)) / 2,
			Name:   label,
			Self:   math.NaN(),
			Inter:  math.NaN(),
			Up:     math.NaN(),
			Down:   math.NaN(),
			Log2:   math.NaN(),
			Dist:   math.NaN(),
		}
	}
	return tbl, nil
}
