package snpinfo

// ChrPositions holds the ordered marker positions for one chromosome. Pos
// and Labels run in parallel and are never reordered; position i of one
// describes position i of the other.
type ChrPositions struct {
	Chr    string
	Pos    []float64
	Labels []string
}

// Map is an ordered per-chromosome position map. Chromosome order is
// first-occurrence order in the annotation the map was built from, and is
// the category ordering used by everything downstream, including plotting.
type Map []ChrPositions

// TotalLen is the number of markers across all chromosomes.
func (m Map) TotalLen() int {
	n := 0
	for _, cp := range m {
		n += len(cp.Pos)
	}

	return n
}

// ToMap collapses an annotation table to a per-chromosome position map with
// one entry per distinct equivalence class. Within each chromosome, classes
// appear in order of first appearance, and the entry's position and label
// come from the first row seen with that class index. Duplicate rows are
// dropped from the map but remain associated with their class entry.
func ToMap(snps []SNP) (Map, error) {
	if err := CheckIndexRange(snps); err != nil {
		return nil, err
	}

	chrs, groups := splitByChr(snps)

	out := make(Map, 0, len(chrs))
	for _, chr := range chrs {
		cp := ChrPositions{Chr: chr}

		seen := make(map[int]struct{})
		for _, ri := range groups[chr] {
			s := snps[ri]
			if _, dup := seen[s.Index]; dup {
				continue
			}
			seen[s.Index] = struct{}{}

			cp.Pos = append(cp.Pos, s.Pos)
			cp.Labels = append(cp.Labels, s.SNPID)
		}

		out = append(out, cp)
	}

	return out, nil
}
