// snpassocplot renders a SNP association scan as a manhattan-style plot
// across chromosomes. It consumes a snpinfo annotation table and a
// compressed (one row per distinct SNP equivalence class) scan result
// table, optionally expands the results back onto every physical SNP, and
// writes a PNG.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"

	_ "github.com/carbocation/snpassoc/compileinfoprint"

	"github.com/carbocation/snpassoc/assocplot"
	"github.com/carbocation/snpassoc/scan"
)

func main() {
	var snpinfoFile, resultsFile, outFile, histFile, yLabel string
	var expand bool
	var dropHilit, yMin, yMax, gap float64
	var width, height int

	flag.StringVar(&snpinfoFile, "snpinfo", "", "Delimited annotation file with snp_id, chr, pos, sdp, index, interval, and on_map columns. May be compressed.")
	flag.StringVar(&resultsFile, "results", "", "Delimited scan result file: one label column followed by named score columns, one row per distinct snp class. May be compressed.")
	flag.StringVar(&outFile, "out", "", "Output PNG path.")
	flag.BoolVar(&expand, "expand", false, "Expand the compressed results onto every physical SNP before plotting.")
	flag.Float64Var(&dropHilit, "drophilit", math.NaN(), "If set, highlight rows whose score is within this many LOD of the maximum. 0 highlights only the maximum.")
	flag.Float64Var(&yMin, "ymin", 0, "Lower y limit. Only used when -ymax is set.")
	flag.Float64Var(&yMax, "ymax", math.NaN(), "Upper y limit. Default is 1.02x the maximum score.")
	flag.Float64Var(&gap, "gap", 0, "Gap between chromosomes in map units. 0 uses the default of 25.")
	flag.IntVar(&width, "width", 0, "Plot width in pixels. 0 uses the default.")
	flag.IntVar(&height, "height", 0, "Plot height in pixels. 0 uses the default.")
	flag.StringVar(&yLabel, "ylabel", "", "Y axis label. Default is 'LOD score'.")
	flag.StringVar(&histFile, "hist", "", "If set, also write a histogram of the first score column to this PNG path.")
	flag.Parse()

	if snpinfoFile == "" || resultsFile == "" || outFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := assocplot.Options{
		ShowAllSNPs: expand,
		Gap:         gap,
		Width:       width,
		Height:      height,
		YLabel:      yLabel,
	}
	if !math.IsNaN(dropHilit) {
		opts.DropHilit = &dropHilit
	}
	if !math.IsNaN(yMax) {
		opts.YLim = &[2]float64{yMin, yMax}
	}

	if err := run(snpinfoFile, resultsFile, outFile, histFile, opts); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func run(snpinfoFile, resultsFile, outFile, histFile string, opts assocplot.Options) error {
	snps, err := ImportSNPInfo(snpinfoFile)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d annotation rows from %s\n", len(snps), snpinfoFile)

	results, err := ImportResults(resultsFile)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d scan result rows (%d score columns) from %s\n", results.NRows(), len(results.Columns), resultsFile)

	if err := printSummary(results); err != nil {
		return err
	}

	out, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := assocplot.Plot(out, results, snps, opts); err != nil {
		return err
	}
	log.Printf("Wrote %s\n", outFile)

	if histFile != "" {
		if err := writeHistogram(histFile, results); err != nil {
			return err
		}
		log.Printf("Wrote %s\n", histFile)
	}

	return nil
}

// printSummary logs n, mean, median, and max per score column, skipping
// missing values.
func printSummary(results scan.Result) error {
	for col, name := range results.Columns {
		vals := make([]float64, 0, results.NRows())
		for _, row := range results.Scores {
			if v := row[col]; !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}

		if len(vals) == 0 {
			log.Printf("Column %s: no non-missing values\n", name)
			continue
		}

		data := stats.LoadRawData(vals)
		mean, err := data.Mean()
		if err != nil {
			return err
		}
		median, err := data.Median()
		if err != nil {
			return err
		}
		max, err := data.Max()
		if err != nil {
			return err
		}

		log.Printf("Column %s: n=%d mean=%.3f median=%.3f max=%.3f\n", name, len(vals), mean, median, max)
	}

	return nil
}
