package scan

import (
	"errors"
	"math"
	"testing"
)

func TestColumnMax(t *testing.T) {
	r := Result{
		Names:   []string{"a", "b", "c", "d"},
		Columns: []string{"lod", "lod_alt"},
		Scores: [][]float64{
			{1.5, math.NaN()},
			{math.NaN(), 2.0},
			{4.25, 0.1},
			{3.0, math.NaN()},
		},
	}

	got, err := r.ColumnMax(0)
	if err != nil {
		t.Fatal(err)
	}
	if want := 4.25; got != want {
		t.Errorf("ColumnMax(0) = %v, want %v", got, want)
	}

	got, err = r.ColumnMax(1)
	if err != nil {
		t.Fatal(err)
	}
	if want := 2.0; got != want {
		t.Errorf("ColumnMax(1) = %v, want %v", got, want)
	}
}

func TestColumnMaxAllMissing(t *testing.T) {
	r := Result{
		Names:   []string{"a", "b"},
		Columns: []string{"lod"},
		Scores:  [][]float64{{math.NaN()}, {math.NaN()}},
	}

	_, err := r.ColumnMax(0)
	var ederr EmptyDataError
	if !errors.As(err, &ederr) {
		t.Fatalf("expected EmptyDataError, got %v", err)
	}
	if ederr.Column != "lod" {
		t.Errorf("EmptyDataError column = %q, want lod", ederr.Column)
	}
}

func TestColumnMaxBadColumn(t *testing.T) {
	r := Result{Columns: []string{"lod"}}

	for _, col := range []int{-1, 1} {
		if _, err := r.ColumnMax(col); err == nil {
			t.Errorf("ColumnMax(%d): expected error", col)
		}
	}
}
