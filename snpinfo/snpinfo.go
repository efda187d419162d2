// Package snpinfo manipulates per-SNP annotation tables and the
// equivalence-class indexing that lets genome scans be computed once per
// distinct strain distribution pattern rather than once per SNP.
package snpinfo

import "fmt"

// SNP is one row of an annotation table. Index is 1-based: SNPs sharing an
// Index value belong to the same equivalence class and carry identical
// association statistics, so a scan only needs to be stored for one
// representative of each class.
type SNP struct {
	Chr           string
	Pos           float64
	SDP           int
	SNPID         string
	Index         int
	IntervalIndex int
	OnMap         bool
}

// splitByChr partitions row positions by chromosome, preserving the order in
// which each chromosome first appears. The returned slice carries that
// order; the map carries 0-based row positions per chromosome.
func splitByChr(snps []SNP) ([]string, map[string][]int) {
	chrs := make([]string, 0)
	groups := make(map[string][]int)

	for i, s := range snps {
		if _, seen := groups[s.Chr]; !seen {
			chrs = append(chrs, s.Chr)
		}
		groups[s.Chr] = append(groups[s.Chr], i)
	}

	return chrs, groups
}

// UniqueIndexCount reports how many distinct equivalence classes the
// annotation contains.
func UniqueIndexCount(snps []SNP) int {
	seen := make(map[int]struct{}, len(snps))
	for _, s := range snps {
		seen[s.Index] = struct{}{}
	}

	return len(seen)
}

// CheckIndexRange fails with an OutOfRangeError if any equivalence-class
// index falls outside [1, len(snps)].
func CheckIndexRange(snps []SNP) error {
	n := len(snps)
	for _, s := range snps {
		if s.Index < 1 || s.Index > n {
			return OutOfRangeError{Value: s.Index, Min: 1, Max: n}
		}
	}

	return nil
}

// CheckCanonical verifies the representative invariant: whenever a used
// index value v also names a row of the table, that row's own index must be
// v. A class representative points at itself.
func CheckCanonical(snps []SNP) error {
	n := len(snps)
	for _, s := range snps {
		v := s.Index
		if v < 1 || v > n {
			return OutOfRangeError{Value: v, Min: 1, Max: n}
		}
		if rep := snps[v-1].Index; rep != v {
			return ValidationError{
				Reason: fmt.Sprintf("snp index is not canonical: row %d is the representative of snp %q but its own index is %d", v, s.SNPID, rep),
			}
		}
	}

	return nil
}
