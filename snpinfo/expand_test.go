package snpinfo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbocation/snpassoc/scan"
)

// compressedResults builds a result table aligned with testSNPs(): one row
// per distinct class, chromosome by chromosome in map order.
func compressedResults() scan.Result {
	return scan.Result{
		Names:   []string{"rs1", "rs2", "rs4", "rs5"},
		Columns: []string{"lod"},
		Scores:  [][]float64{{1.5}, {3.2}, {0.7}, {4.1}},
	}
}

func TestExpandResults(t *testing.T) {
	snps := testSNPs()
	m, err := ToMap(snps)
	require.NoError(t, err)

	expanded, em, err := ExpandResults(compressedResults(), m, snps)
	require.NoError(t, err)

	// One row per physical SNP, labeled by SNP identifier, in original
	// annotation order.
	require.Equal(t, len(snps), expanded.NRows())
	assert.Equal(t, []string{"rs1", "rs2", "rs3", "rs4", "rs5", "rs6"}, expanded.Names)
	assert.Equal(t, []string{"lod"}, expanded.Columns)

	// rs3 shares class 2 with rs2, rs6 shares class 4 with rs4.
	assert.Equal(t, [][]float64{{1.5}, {3.2}, {3.2}, {0.7}, {4.1}, {0.7}}, expanded.Scores)

	// The expanded map carries every physical SNP's own position and ID.
	want := Map{
		{Chr: "1", Pos: []float64{1.0, 1.2, 1.4}, Labels: []string{"rs1", "rs2", "rs3"}},
		{Chr: "2", Pos: []float64{5.0, 5.5, 6.0}, Labels: []string{"rs4", "rs5", "rs6"}},
	}
	assert.Equal(t, want, em)
}

// Replicated rows must be value-identical for every member of a class.
func TestExpandResultsReplication(t *testing.T) {
	snps := testSNPs()
	m, err := ToMap(snps)
	require.NoError(t, err)

	expanded, _, err := ExpandResults(compressedResults(), m, snps)
	require.NoError(t, err)

	assert.Equal(t, expanded.Scores[1], expanded.Scores[2], "rs2 and rs3 share a class")
	assert.Equal(t, expanded.Scores[3], expanded.Scores[5], "rs4 and rs6 share a class")
}

// With no duplicate classes, expansion is a no-op reordering.
func TestExpandResultsNoDuplicates(t *testing.T) {
	snps := []SNP{
		{Chr: "1", Pos: 1.0, SNPID: "a", Index: 1},
		{Chr: "1", Pos: 2.0, SNPID: "b", Index: 2},
		{Chr: "2", Pos: 3.0, SNPID: "c", Index: 3},
	}
	results := scan.Result{
		Names:   []string{"a", "b", "c"},
		Columns: []string{"lod"},
		Scores:  [][]float64{{1}, {2}, {3}},
	}

	m, err := ToMap(snps)
	require.NoError(t, err)

	expanded, em, err := ExpandResults(results, m, snps)
	require.NoError(t, err)

	assert.Equal(t, results.Scores, expanded.Scores)
	assert.Equal(t, results.Names, expanded.Names)
	assert.Equal(t, m, em)
}

// One class spanning every SNP of a single chromosome replicates a one-row
// table onto all of them.
func TestExpandResultsSingleClass(t *testing.T) {
	const n = 5

	snps := make([]SNP, 0, n)
	for i := 0; i < n; i++ {
		snps = append(snps, SNP{
			Chr:   "7",
			Pos:   float64(i),
			SNPID: string(rune('a' + i)),
			Index: 1,
		})
	}

	results := scan.Result{
		Names:   []string{"a"},
		Columns: []string{"lod", "lod2"},
		Scores:  [][]float64{{2.5, math.NaN()}},
	}

	m, err := ToMap(snps)
	require.NoError(t, err)

	expanded, _, err := ExpandResults(results, m, snps)
	require.NoError(t, err)

	require.Equal(t, n, expanded.NRows())
	for i := 0; i < n; i++ {
		assert.Equal(t, 2.5, expanded.Scores[i][0])
		assert.True(t, math.IsNaN(expanded.Scores[i][1]))
	}
}

func TestExpandResultsLengthMismatches(t *testing.T) {
	snps := testSNPs()
	m, err := ToMap(snps)
	require.NoError(t, err)

	// Map missing a chromosome
	_, _, err = ExpandResults(compressedResults(), m[:1], snps)
	var lmerr LengthMismatchError
	require.ErrorAs(t, err, &lmerr)
	assert.Equal(t, 1, lmerr.Got)
	assert.Equal(t, 2, lmerr.Want)

	// Result rows not matching the collapsed map length
	short := compressedResults()
	short.Names = short.Names[:3]
	short.Scores = short.Scores[:3]

	_, _, err = ExpandResults(short, m, snps)
	require.ErrorAs(t, err, &lmerr)
	assert.Equal(t, 3, lmerr.Got)
	assert.Equal(t, 4, lmerr.Want)
}

// Replicated rows are copies; mutating one must not touch its siblings.
func TestExpandResultsRowsIndependent(t *testing.T) {
	snps := testSNPs()
	m, err := ToMap(snps)
	require.NoError(t, err)

	expanded, _, err := ExpandResults(compressedResults(), m, snps)
	require.NoError(t, err)

	expanded.Scores[1][0] = -99
	assert.Equal(t, 3.2, expanded.Scores[2][0])
}
