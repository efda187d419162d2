package assocplot

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/carbocation/snpassoc/scan"
	"github.com/carbocation/snpassoc/snpinfo"
)

func TestRenderRowMapMismatch(t *testing.T) {
	results := scan.Result{
		Names:   []string{"a"},
		Columns: []string{"lod"},
		Scores:  [][]float64{{1}},
	}
	m := snpinfo.Map{
		{Chr: "1", Pos: []float64{1, 2}, Labels: []string{"a", "b"}},
	}

	err := Render(&bytes.Buffer{}, results, m, RenderOptions{YLim: [2]float64{0, 1}})

	var lmerr snpinfo.LengthMismatchError
	if !errors.As(err, &lmerr) {
		t.Fatalf("expected LengthMismatchError, got %v", err)
	}
	if lmerr.Got != 1 || lmerr.Want != 2 {
		t.Errorf("unexpected lengths in %+v", lmerr)
	}
}

func TestRenderInvalidYLim(t *testing.T) {
	results := scan.Result{
		Names:   []string{"a"},
		Columns: []string{"lod"},
		Scores:  [][]float64{{1}},
	}
	m := snpinfo.Map{{Chr: "1", Pos: []float64{1}, Labels: []string{"a"}}}

	if err := Render(&bytes.Buffer{}, results, m, RenderOptions{}); err == nil {
		t.Error("expected an error for a zero-height y range")
	}
}

func TestNiceStep(t *testing.T) {
	for _, tc := range []struct {
		raw  float64
		want float64
	}{
		{0.7, 1},
		{1, 1},
		{1.3, 2},
		{2, 2},
		{3.5, 5},
		{7, 10},
		{0.03, 0.05},
		{42, 50},
	} {
		if got := niceStep(tc.raw); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("niceStep(%v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNiceTicks(t *testing.T) {
	ticks := niceTicks(0, 10.2, 5)

	if len(ticks) < 3 {
		t.Fatalf("too few ticks: %v", ticks)
	}
	if ticks[0] != 0 {
		t.Errorf("first tick = %v, want 0", ticks[0])
	}
	for _, tick := range ticks {
		if tick < 0 || tick > 10.2 {
			t.Errorf("tick %v outside [0, 10.2]", tick)
		}
	}
}
