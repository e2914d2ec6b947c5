package report

import (
	"encoding/json"
	"math"
	"os"

	"github.com/montanaflynn/stats"

	"github.com/zm-git-dev/gohic/bins"
)

// Metrics records one run for the <prefix>_gohic.json output.
type Metrics struct {
	Version    string  `json:"gohic_version"`
	Date       string  `json:"date"`
	Elapsed    string  `json:"elapsed"`
	Prefix     string  `json:"prefix"`
	Command    string  `json:"command"`
	Bins       int     `json:"bin_count"`
	Excluded   int     `json:"excluded_bins"`
	MaxPairs   int     `json:"max_pairs"`
	Log2Median float64 `json:"log2_median"`
	Log2Mean   float64 `json:"log2_mean"`
	Log2StdDev float64 `json:"log2_sd"`
	MeanDist   float64 `json:"mean_dist"`
}

// Summarize fills the count and summary fields from the analyzed table.
// Only finite log2 values enter the summary; NaN and ±Inf rows are left out
// so the JSON stays well-formed.
func (m *Metrics) Summarize(tbl bins.Table) {
	var log2s, dists []float64
	for _, b := range tbl {
		if b.Excluded() {
			m.Excluded++
		}
		if !math.IsNaN(b.Log2) && !math.IsInf(b.Log2, 0) {
			log2s = append(log2s, b.Log2)
		}
		if !math.IsNaN(b.Dist) {
			dists = append(dists, b.Dist)
		}
	}
	m.Bins = len(tbl)
	if len(log2s) > 0 {
		m.Log2Median, _ = stats.Median(log2s)
		m.Log2Mean, _ = stats.Mean(log2s)
		m.Log2StdDev, _ = stats.StandardDeviation(log2s)
	}
	if len(dists) > 0 {
		m.MeanDist, _ = stats.Mean(dists)
	}
}

// Write logs the metrics to <prefix>_gohic.json.
func (m *Metrics) Write(prefix string) error {
	resp, err := json.MarshalIndent(m, "", "\t")
	if err != nil {
		return err
	}
	f, err := os.Create(prefix + "_gohic.json")
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(resp); err != nil {
		return err
	}
	_, err = f.WriteString("\n")
	return err
}
