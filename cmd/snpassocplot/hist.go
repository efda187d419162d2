package main

import (
	"fmt"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/carbocation/snpassoc/scan"
)

const histBins = 20

// writeHistogram renders a bar-chart histogram of the first score column.
// Useful as a quick sanity check on the LOD distribution before trusting
// the manhattan plot's y scale.
func writeHistogram(filename string, results scan.Result) error {
	if len(results.Columns) < 1 {
		return fmt.Errorf("scan result has no score columns")
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	vals := make([]float64, 0, results.NRows())
	for _, row := range results.Scores {
		v := row[0]
		if math.IsNaN(v) {
			continue
		}
		vals = append(vals, v)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if len(vals) == 0 {
		return scan.EmptyDataError{Column: results.Columns[0]}
	}

	binWidth := (hi - lo) / histBins
	if binWidth <= 0 {
		binWidth = 1
	}

	counts := make([]int, histBins)
	for _, v := range vals {
		bin := int((v - lo) / binWidth)
		if bin >= histBins {
			bin = histBins - 1
		}
		counts[bin]++
	}

	bars := make([]chart.Value, 0, histBins)
	for i, n := range counts {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%.1f", lo+float64(i)*binWidth),
			Value: float64(n),
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("%s distribution", results.Columns[0]),
		Width:    800,
		Height:   300,
		BarWidth: 25,
		Bars:     bars,
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
