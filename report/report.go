// Package report turns the analyzed bin table into the tool's output
// surfaces: the enriched bin table and distance profile as dataframes/CSV, a
// BED of excluded bins, and a run metrics JSON.
package report

import (
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	gn "github.com/pbenner/gonetics"

	"github.com/zm-git-dev/gohic/analyze"
	"github.com/zm-git-dev/gohic/bins"
)

// Frame assembles the bin table, including the analyzer columns, into a
// dataframe. Unset statistics stay NaN; excluded bins have an empty group.
func Frame(tbl bins.Table) dataframe.DataFrame {
	n := len(tbl)
	chrom := make([]string, n)
	start := make([]int, n)
	end := make([]int, n)
	name := make([]string, n)
	centre := make([]float64, n)
	group := make([]string, n)
	selfP := make([]float64, n)
	inter := make([]float64, n)
	up := make([]float64, n)
	down := make([]float64, n)
	log2 := make([]float64, n)
	dist := make([]float64, n)
	for i, b := range tbl {
		chrom[i] = b.Chrom
		start[i] = b.Start
		end[i] = b.End
		name[i] = b.Name
		centre[i] = b.Centre
		group[i] = b.Group
		selfP[i] = b.Self
		inter[i] = b.Inter
		up[i] = b.Up
		down[i] = b.Down
		log2[i] = b.Log2
		dist[i] = b.Dist
	}
	return dataframe.New(
		series.New(chrom, series.String, "chrom"),
		series.New(start, series.Int, "start"),
		series.New(end, series.Int, "end"),
		series.New(name, series.String, "name"),
		series.New(centre, series.Float, "centre"),
		series.New(group, series.String, "group"),
		series.New(selfP, series.Float, "self"),
		series.New(inter, series.Float, "inter"),
		series.New(up, series.Float, "up"),
		series.New(down, series.Float, "down"),
		series.New(log2, series.Float, "log2"),
		series.New(dist, series.Float, "dist"),
	)
}

// WriteTable writes the bin table as CSV with a header row.
func WriteTable(w io.Writer, tbl bins.Table) error {
	df := Frame(tbl)
	return df.WriteCSV(w, dataframe.WriteHeader(true))
}

// WriteProfile writes the dataset (distance, probability) pairs as CSV for
// the downstream smoother.
func WriteProfile(w io.Writer, pairs []analyze.DistProb) error {
	dist := make([]float64, len(pairs))
	prob := make([]float64, len(pairs))
	for i, p := range pairs {
		dist[i] = p.Dist
		prob[i] = p.Prob
	}
	df := dataframe.New(
		series.New(dist, series.Float, "dist"),
		series.New(prob, series.Float, "prob"),
	)
	return df.WriteCSV(w, dataframe.WriteHeader(true))
}

// WriteExcludedBed exports the low-signal bins dropped during mask
// construction as BED3, for QC in a genome browser.
func WriteExcludedBed(path string, tbl bins.Table) error {
	var seqnames []string
	var from, to []int
	var strand []byte
	for _, b := range tbl {
		if !b.Excluded() {
			continue
		}
		seqnames = append(seqnames, b.Chrom)
		from = append(from, b.Start)
		to = append(to, b.End)
		strand = append(strand, '*')
	}
	gr := gn.NewGRanges(seqnames, from, to, strand)
	return gr.ExportBed3(path, false)
}
