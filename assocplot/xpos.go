package assocplot

import (
	"gonum.org/v1/gonum/floats"

	"github.com/carbocation/snpassoc/snpinfo"
)

// chrSpan is the horizontal footprint of one chromosome after the genome
// has been flattened onto a single axis: offset is where it starts in
// flattened map units, width is its extent.
type chrSpan struct {
	chr    string
	offset float64
	width  float64
}

// mapToXPos flattens a per-chromosome map onto one x axis. Chromosomes are
// laid end to end in map order, separated by gap map units, each shifted so
// its smallest position sits at its span start. Returns per-chromosome x
// coordinates (parallel to m), the chromosome spans, and the total axis
// extent.
func mapToXPos(m snpinfo.Map, gap float64) ([][]float64, []chrSpan, float64) {
	xpos := make([][]float64, len(m))
	spans := make([]chrSpan, len(m))

	cursor := 0.0
	for k, cp := range m {
		span := chrSpan{chr: cp.Chr, offset: cursor}

		if len(cp.Pos) > 0 {
			lo := floats.Min(cp.Pos)
			span.width = floats.Max(cp.Pos) - lo

			xs := make([]float64, len(cp.Pos))
			for i, p := range cp.Pos {
				xs[i] = cursor + p - lo
			}
			xpos[k] = xs
		}

		spans[k] = span
		cursor += span.width + gap
	}

	total := cursor
	if len(m) > 0 {
		total -= gap
	}

	return xpos, spans, total
}
