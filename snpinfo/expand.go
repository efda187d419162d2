package snpinfo

import (
	"fmt"

	"github.com/carbocation/snpassoc/scan"
)

// ExpandResults reconstructs a per-SNP scan result table from a compressed
// one. results holds one row per distinct equivalence class, m is the
// collapsed map built by ToMap over the same annotation, and snps is the
// full annotation. Each class row is replicated onto every SNP belonging to
// that class, restoring original annotation row order within each
// chromosome, and the returned map holds every physical SNP's position with
// its SNP identifier as the label.
func ExpandResults(results scan.Result, m Map, snps []SNP) (scan.Result, Map, error) {
	chrs, groups := splitByChr(snps)

	if len(m) != len(chrs) {
		return scan.Result{}, nil, LengthMismatchError{
			Context: "chromosome count in map vs annotation",
			Got:     len(m),
			Want:    len(chrs),
		}
	}

	if total := m.TotalLen(); results.NRows() != total {
		return scan.Result{}, nil, LengthMismatchError{
			Context: "scan result rows vs map length",
			Got:     results.NRows(),
			Want:    total,
		}
	}

	expanded := scan.Result{
		Names:   make([]string, 0, len(snps)),
		Columns: results.Columns,
		Scores:  make([][]float64, 0, len(snps)),
	}
	outMap := make(Map, 0, len(m))

	// The compressed table is laid out chromosome by chromosome in map
	// order; offset walks its rows as each chromosome's slice is consumed.
	offset := 0
	for _, cp := range m {
		rows, ok := groups[cp.Chr]
		if !ok {
			return scan.Result{}, nil, fmt.Errorf("chromosome %q appears in the map but not in the annotation", cp.Chr)
		}

		rev, nClasses := reverseIndex(snps, rows)
		if nClasses != len(cp.Pos) {
			return scan.Result{}, nil, LengthMismatchError{
				Context: fmt.Sprintf("distinct snp classes on chromosome %s vs map entries", cp.Chr),
				Got:     nClasses,
				Want:    len(cp.Pos),
			}
		}

		slice := results.Scores[offset : offset+nClasses]
		offset += nClasses

		ecp := ChrPositions{
			Chr:    cp.Chr,
			Pos:    make([]float64, len(rows)),
			Labels: make([]string, len(rows)),
		}

		for i, ri := range rows {
			s := snps[ri]
			ecp.Pos[i] = s.Pos
			ecp.Labels[i] = s.SNPID

			src := slice[rev[i]]
			dst := make([]float64, len(src))
			copy(dst, src)

			expanded.Scores = append(expanded.Scores, dst)
			expanded.Names = append(expanded.Names, s.SNPID)
		}

		outMap = append(outMap, ecp)
	}

	return expanded, outMap, nil
}

// reverseIndex maps every row of one chromosome's annotation subset to the
// 0-based rank of its equivalence class, where classes are ranked by first
// appearance within the subset. The rank points at the class's row within
// that chromosome's slice of the compressed result table. Two passes in
// one: ranks are assigned as new classes are encountered, and every member
// row (not just the representative) receives its class's rank.
func reverseIndex(snps []SNP, rows []int) (rev []int, nClasses int) {
	rank := make(map[int]int)
	rev = make([]int, len(rows))

	for i, ri := range rows {
		idx := snps[ri].Index
		r, ok := rank[idx]
		if !ok {
			r = len(rank)
			rank[idx] = r
		}
		rev[i] = r
	}

	return rev, len(rank)
}
