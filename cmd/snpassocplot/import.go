package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"strconv"

	"github.com/gocarina/gocsv"

	snpassoc "github.com/carbocation/snpassoc"
	"github.com/carbocation/snpassoc/scan"
	"github.com/carbocation/snpassoc/snpinfo"
)

// snpInfoRow mirrors one line of the annotation file. Column names follow
// the conventional snpinfo export header.
type snpInfoRow struct {
	SNPID         string  `csv:"snp_id"`
	Chr           string  `csv:"chr"`
	Pos           float64 `csv:"pos"`
	SDP           int     `csv:"sdp"`
	Index         int     `csv:"index"`
	IntervalIndex int     `csv:"interval"`
	OnMap         bool    `csv:"on_map"`
}

// ImportSNPInfo reads a (possibly compressed) delimited annotation file.
// The delimiter is sniffed from the contents, so comma- and tab-delimited
// exports both work.
func ImportSNPInfo(path string) ([]snpinfo.SNP, error) {
	contents, err := slurp(path)
	if err != nil {
		return nil, err
	}

	delim := snpassoc.DetectDelimiter(contents)
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.LazyQuotes = true
		return r
	})

	rows := []*snpInfoRow{}
	if err := gocsv.UnmarshalBytes(contents, &rows); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	out := make([]snpinfo.SNP, 0, len(rows))
	for _, row := range rows {
		out = append(out, snpinfo.SNP{
			Chr:           row.Chr,
			Pos:           row.Pos,
			SDP:           row.SDP,
			SNPID:         row.SNPID,
			Index:         row.Index,
			IntervalIndex: row.IntervalIndex,
			OnMap:         row.OnMap,
		})
	}

	return out, nil
}

// ImportResults reads a (possibly compressed) delimited scan result file.
// The first column holds row labels; every remaining column is a numeric
// score column. NA and empty cells become NaN. The column set is dynamic,
// so this parses with encoding/csv rather than struct tags.
func ImportResults(path string) (scan.Result, error) {
	contents, err := slurp(path)
	if err != nil {
		return scan.Result{}, err
	}

	r := csv.NewReader(bytes.NewReader(contents))
	r.Comma = snpassoc.DetectDelimiter(contents)
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return scan.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) < 1 || len(records[0]) < 2 {
		return scan.Result{}, fmt.Errorf("%s: expected a header row with a label column and at least one score column", path)
	}

	out := scan.Result{Columns: records[0][1:]}
	for _, rec := range records[1:] {
		if len(rec) != len(records[0]) {
			return scan.Result{}, fmt.Errorf("%s: row %q has %d fields, header has %d", path, rec[0], len(rec), len(records[0]))
		}

		scores := make([]float64, 0, len(rec)-1)
		for _, field := range rec[1:] {
			scores = append(scores, parseScore(field))
		}

		out.Names = append(out.Names, rec[0])
		out.Scores = append(out.Scores, scores)
	}

	return out, nil
}

// parseScore treats empty and NA cells as missing.
func parseScore(field string) float64 {
	if field == "" || field == "NA" || field == "na" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

func slurp(path string) ([]byte, error) {
	rc, err := snpassoc.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ioutil.ReadAll(rc)
}
