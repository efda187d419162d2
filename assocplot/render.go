package assocplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/carbocation/snpassoc/scan"
	"github.com/carbocation/snpassoc/snpinfo"
)

// Plot geometry. The left margin leaves room for y tick labels, the bottom
// margin for chromosome names.
const (
	marginLeft   = 60.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 45.0
)

var (
	// darkslateblue, the conventional base color for association points
	DefaultPointColor = color.RGBA{R: 0x48, G: 0x3d, B: 0x8b, A: 0xff}

	// violetred, used for highlighted points
	DefaultHilitColor = color.RGBA{R: 0xd0, G: 0x20, B: 0x90, A: 0xff}

	defaultBands = [2]color.Color{
		color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}, // gray90
		color.White,
	}
)

// RenderOptions style a single-trait scan rendering. The zero value is
// usable apart from YLim, which callers are expected to set.
type RenderOptions struct {
	// Column selects the score column to draw.
	Column int

	// YLim is the y axis range, low then high.
	YLim [2]float64

	// Gap is the inter-chromosome spacing in map units. Zero means the
	// default of 25.
	Gap float64

	// Colors holds one point color per result row. Nil means every point
	// is drawn in DefaultPointColor; otherwise the length must equal the
	// result row count.
	Colors []color.Color

	// BandColors alternate as per-chromosome background bands, starting
	// with BandColors[0] for the first chromosome.
	BandColors [2]color.Color

	PointRadius   float64 // zero means 2
	Width, Height int     // zero means 1000x400
	YLabel        string  // empty means "LOD score"
}

// Render draws a single-trait genome scan: per-chromosome x layout with gap
// insertion, alternating background banding, axes with tick labels, and one
// point per result row. The result rows must align with the map entries,
// chromosome by chromosome in map order. The PNG-encoded image is written
// to w. Rendering is the terminal step of the pipeline; everything before
// it is a pure transform.
func Render(w io.Writer, results scan.Result, m snpinfo.Map, opts RenderOptions) error {
	if got, want := results.NRows(), m.TotalLen(); got != want {
		return snpinfo.LengthMismatchError{Context: "scan result rows vs map length", Got: got, Want: want}
	}
	if opts.Column < 0 || opts.Column >= len(results.Columns) {
		return fmt.Errorf("score column %d does not exist (result has %d columns)", opts.Column, len(results.Columns))
	}
	if opts.Colors != nil && len(opts.Colors) != results.NRows() {
		return snpinfo.LengthMismatchError{Context: "per-row colors vs scan result rows", Got: len(opts.Colors), Want: results.NRows()}
	}

	gap := opts.Gap
	if gap <= 0 {
		gap = 25
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 1000
	}
	if height <= 0 {
		height = 400
	}
	radius := opts.PointRadius
	if radius <= 0 {
		radius = 2
	}
	yLabel := opts.YLabel
	if yLabel == "" {
		yLabel = "LOD score"
	}
	bands := opts.BandColors
	if bands[0] == nil || bands[1] == nil {
		bands = defaultBands
	}

	yLo, yHi := opts.YLim[0], opts.YLim[1]
	if yHi <= yLo {
		return fmt.Errorf("invalid y limits [%v, %v]", yLo, yHi)
	}

	xpos, spans, total := mapToXPos(m, gap)

	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom

	// Flattened map units to pixels. A degenerate single-position genome
	// still gets a nonzero scale so its lone point lands mid-plot.
	xScale := 1.0
	if total > 0 {
		xScale = plotW / total
	}
	toX := func(x float64) float64 {
		if total <= 0 {
			return marginLeft + plotW/2
		}
		return marginLeft + x*xScale
	}
	toY := func(v float64) float64 {
		return marginTop + plotH*(1-(v-yLo)/(yHi-yLo))
	}

	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(color.White)
	dc.Clear()

	// Background bands, one per chromosome, extended halfway into each gap.
	for k, sp := range spans {
		x0 := sp.offset - gap/2
		if x0 < 0 {
			x0 = 0
		}
		x1 := sp.offset + sp.width + gap/2
		if x1 > total {
			x1 = total
		}

		dc.SetColor(bands[k%2])
		dc.DrawRectangle(toX(x0), marginTop, (x1-x0)*xScale, plotH)
		dc.Fill()
	}

	// Axes
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawLine(marginLeft, marginTop, marginLeft, marginTop+plotH)
	dc.DrawLine(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	dc.Stroke()

	// Y ticks
	for _, tick := range niceTicks(yLo, yHi, 5) {
		py := toY(tick)
		dc.SetColor(color.Black)
		dc.DrawLine(marginLeft-4, py, marginLeft, py)
		dc.Stroke()
		dc.DrawStringAnchored(strconv.FormatFloat(tick, 'g', 4, 64), marginLeft-7, py, 1, 0.35)
	}

	// Chromosome names, centered under their spans
	for _, sp := range spans {
		cx := toX(sp.offset + sp.width/2)
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(sp.chr, cx, marginTop+plotH+14, 0.5, 0.5)
	}

	// Axis title
	dc.Push()
	dc.RotateAbout(-math.Pi/2, 14, marginTop+plotH/2)
	dc.DrawStringAnchored(yLabel, 14, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	// Points, in map order so the row index tracks the color slice
	row := 0
	for k := range m {
		for i := range m[k].Pos {
			v := results.Scores[row][opts.Column]
			if math.IsNaN(v) {
				row++
				continue
			}

			if opts.Colors != nil {
				dc.SetColor(opts.Colors[row])
			} else {
				dc.SetColor(DefaultPointColor)
			}
			dc.DrawCircle(toX(xpos[k][i]), toY(v), radius)
			dc.Fill()
			row++
		}
	}

	return dc.EncodePNG(w)
}

// niceTicks picks about n round tick values covering [lo, hi].
func niceTicks(lo, hi float64, n int) []float64 {
	if n < 2 {
		n = 2
	}

	step := niceStep((hi - lo) / float64(n))
	if step <= 0 {
		return []float64{lo, hi}
	}

	out := make([]float64, 0, n+2)
	for v := math.Ceil(lo/step) * step; v <= hi+step/1e6; v += step {
		out = append(out, v)
	}

	return out
}

// niceStep rounds a raw step up to 1, 2, or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}

	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, mult := range []float64{1, 2, 5} {
		if raw <= mult*mag {
			return mult * mag
		}
	}

	return 10 * mag
}
