// Package assocplot renders SNP-association genome scans as manhattan-style
// plots. The orchestration in Plot validates a compressed scan result table
// against its annotation's equivalence-class indexing, optionally expands
// it back onto every physical SNP, and hands the aligned table and map to
// the generic scan renderer.
package assocplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/carbocation/snpassoc/scan"
	"github.com/carbocation/snpassoc/snpinfo"
)

// Options configure Plot. The zero value plots the compressed results
// as-is with default styling and no highlighting.
type Options struct {
	// ShowAllSNPs expands the compressed per-class results onto every
	// physical SNP before plotting.
	ShowAllSNPs bool

	// DropHilit, when non-nil, highlights every row whose score is within
	// *DropHilit of the maximum. A value of 0 highlights exactly the rows
	// achieving the maximum.
	DropHilit *float64

	// YLim overrides the y axis range. Nil means [0, 1.02*max score].
	YLim *[2]float64

	// Colors supplies per-row point colors, aligned with the rows actually
	// plotted (post-expansion when ShowAllSNPs is set). Highlighted rows
	// are recolored with HilitColor; the rest keep their supplied color.
	Colors []color.Color

	// PointColor and HilitColor override the default base and highlight
	// colors (darkslateblue and violetred).
	PointColor color.Color
	HilitColor color.Color

	// Pass-throughs to the renderer.
	Gap           float64
	PointRadius   float64
	Width, Height int
	YLabel        string
}

// Plot validates and renders a SNP association scan. results holds one row
// per distinct equivalence class in snps (the compressed form produced by a
// scan over class representatives); only the first score column drives the
// maximum and highlighting. The PNG image is written to w.
//
// Plot fails before doing any work when the result row count does not match
// the annotation's distinct class count, or when a class representative's
// own index does not point back at itself.
func Plot(w io.Writer, results scan.Result, snps []snpinfo.SNP, opts Options) error {
	uidx := snpinfo.UniqueIndexCount(snps)
	if uidx != results.NRows() {
		return snpinfo.ValidationError{
			Reason: fmt.Sprintf("scan result has %d rows but annotation has %d distinct snp classes", results.NRows(), uidx),
		}
	}

	if err := snpinfo.CheckCanonical(snps); err != nil {
		return err
	}

	m, err := snpinfo.ToMap(snps)
	if err != nil {
		return err
	}

	if opts.ShowAllSNPs {
		results, m, err = snpinfo.ExpandResults(results, m, snps)
		if err != nil {
			return err
		}
	}

	maxlod, err := results.ColumnMax(0)
	if err != nil {
		return err
	}

	yLim := [2]float64{0, maxlod * 1.02}
	if opts.YLim != nil {
		yLim = *opts.YLim
	}

	colors, err := pointColors(results, maxlod, opts)
	if err != nil {
		return err
	}

	return Render(w, results, m, RenderOptions{
		Column:      0,
		YLim:        yLim,
		Gap:         opts.Gap,
		Colors:      colors,
		PointRadius: opts.PointRadius,
		Width:       opts.Width,
		Height:      opts.Height,
		YLabel:      opts.YLabel,
	})
}

// pointColors resolves the per-row colors Plot hands to the renderer:
// caller-supplied colors (or the base color) everywhere, with the highlight
// color overriding on rows within DropHilit of the maximum.
func pointColors(results scan.Result, maxlod float64, opts Options) ([]color.Color, error) {
	if opts.Colors == nil && opts.DropHilit == nil && opts.PointColor == nil {
		// Render's default suffices
		return nil, nil
	}

	if opts.Colors != nil && len(opts.Colors) != results.NRows() {
		return nil, snpinfo.LengthMismatchError{
			Context: "per-row colors vs plotted rows",
			Got:     len(opts.Colors),
			Want:    results.NRows(),
		}
	}

	base := opts.PointColor
	if base == nil {
		base = DefaultPointColor
	}
	hilit := opts.HilitColor
	if hilit == nil {
		hilit = DefaultHilitColor
	}

	colors := make([]color.Color, results.NRows())
	for i := range colors {
		if opts.Colors != nil {
			colors[i] = opts.Colors[i]
		} else {
			colors[i] = base
		}
	}

	if opts.DropHilit != nil {
		threshold := maxlod - *opts.DropHilit
		for i, row := range results.Scores {
			if v := row[0]; !math.IsNaN(v) && v >= threshold {
				colors[i] = hilit
			}
		}
	}

	return colors, nil
}
