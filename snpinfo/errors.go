package snpinfo

import "fmt"

// OutOfRangeError indicates that an equivalence-class index points outside
// the annotation table.
type OutOfRangeError struct {
	Value int
	Min   int
	Max   int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("snp index %d is out of range [%d, %d]", e.Value, e.Min, e.Max)
}

// LengthMismatchError indicates that two structures which must describe the
// same set of SNPs or chromosomes disagree about how many there are.
type LengthMismatchError struct {
	Context string
	Got     int
	Want    int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: got %d, want %d", e.Context, e.Got, e.Want)
}

// ValidationError indicates that a scan result table is inconsistent with
// the equivalence-class indexing of its annotation.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}
