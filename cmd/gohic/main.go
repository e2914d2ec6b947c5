package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/akamensky/argparse"
	"github.com/sirupsen/logrus"

	"github.com/zm-git-dev/gohic/analyze"
	"github.com/zm-git-dev/gohic/bins"
	"github.com/zm-git-dev/gohic/matrix"
	"github.com/zm-git-dev/gohic/report"
)

const gohic_version = "0.1.0"

func main() {

	// start time is what elapsed metric
	// is calculated from
	startTime := time.Now()

	parser := argparse.NewParser("GoHiC", `GoHiC computes per-bin directional interaction statistics from a Hi-C contact probability matrix. For every genomic bin it reports the self, upstream, downstream and inter-chromosome interaction probability, the log2 up/down ratio over distance-matched bin pairs and the probability-weighted mean interaction distance, plus the dataset-wide distance/probability profile for downstream trend smoothing.`)
	input := parser.String("i", "matrix", &argparse.Options{Help: "Input contact matrix: first line is tab-separated chr:start-end bin labels, then an NxN whitespace-delimited float matrix (plain or gzip)"})
	outprefix := parser.String("o", "prefix", &argparse.Options{Help: "Output prefix for the bin table, distance profile and metrics file", Default: "sample"})
	maxl := parser.Int("m", "maxl", &argparse.Options{Help: "Maximum number of distance-matched up/down bin pairs used for the log2 ratio", Default: analyze.DefaultMaxPairs})
	threads := parser.Int("t", "threads", &argparse.Options{Help: "Worker count for the per-bin analyzers (0 = all CPUs)", Default: 1})
	exbed := parser.Flag("", "excludedbed", &argparse.Options{Help: "Also write a BED3 of bins masked as low-signal"})
	verbose := parser.Flag("", "verbose", &argparse.Options{Help: "Run GoHiC in verbose mode."})
	version := parser.Flag("v", "version", &argparse.Options{Help: "Print the current GoHiC version"})
	// note: "Required" interface clashes with --version flag.
	err := parser.Parse(os.Args)

	// parse flags --------------------------------------------------------------------------------

	// check version
	if *version == true {
		fmt.Println("GoHiC version:", gohic_version)
		os.Exit(0)
	}

	// check argparse errors
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	// require args
	if *input == "" {
		fmt.Println(parser.Help(nil))
		os.Exit(1)
	}

	if *threads < 1 {
		*threads = runtime.NumCPU()
	}

	// import data --------------------------------------------------------------------------------

	labels, raw, err := matrix.Load(*input)
	if err != nil {
		logrus.Errorf("Error %s", err.Error())
		os.Exit(1)
	}

	tbl, err := bins.NewTable(labels)
	if err != nil {
		logrus.Errorf("Error %s", err.Error())
		os.Exit(1)
	}

	prob, dist, err := matrix.Build(raw, tbl)
	if err != nil {
		logrus.Errorf("Error %s", err.Error())
		os.Exit(1)
	}

	excluded := 0
	for _, b := range tbl {
		if b.Excluded() {
			excluded++
		}
	}
	if *verbose {
		fmt.Printf("Loaded %d bins, %d masked as low-signal\n", len(tbl), excluded)
	}

	// analyze ------------------------------------------------------------------------------------

	analyze.Direction(prob, tbl, *maxl, *threads)
	analyze.Distance(prob, dist, tbl, *threads)
	pairs := analyze.Profile(prob, dist)

	if *verbose {
		fmt.Printf("Collected %d unmasked (distance, probability) pairs\n", len(pairs))
	}

	// write output -------------------------------------------------------------------------------

	if err := writeFile(*outprefix+"_bins.csv", func(w io.Writer) error {
		return report.WriteTable(w, tbl)
	}); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}

	if err := writeFile(*outprefix+"_distance.csv", func(w io.Writer) error {
		return report.WriteProfile(w, pairs)
	}); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}

	if *exbed {
		if err := report.WriteExcludedBed(*outprefix+"_excluded.bed", tbl); err != nil {
			logrus.Errorln(err)
			os.Exit(1)
		}
	}

	// write output metrics -----------------------------------------------------------------------
	metrics := &report.Metrics{
		Version:  gohic_version,
		Date:     time.Now().Format("2006-01-02 3:4:5 PM"),
		Elapsed:  time.Since(startTime).String(),
		Prefix:   *outprefix,
		Command:  strings.Join(os.Args, " "),
		MaxPairs: *maxl,
	}
	metrics.Summarize(tbl)

	// log metrics to file
	if err := metrics.Write(*outprefix); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
