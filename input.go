// Package snpassoc provides shared input helpers for the snpassoc command
// line tools: transparent decompression of common single-file archive
// formats and CSV delimiter sniffing. Annotation and scan-result tables
// arrive as plain, gzipped, or otherwise compressed delimited text, and the
// tools should not need to be told which.
package snpassoc

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/csimplestring/go-csv/detector"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type compression byte

const (
	compressionNone compression = iota
	compressionGzip
	compressionZip
	compressionXZ
	compressionZlib
	compressionBzip2
)

// Magic numbers from https://stackoverflow.com/a/19127748/199475
var magicNumbers = []struct {
	kind compression
	sig  []byte
}{
	{compressionXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{compressionZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{compressionGzip, []byte{0x1f, 0x8b, 0x08}},
	{compressionBzip2, []byte{0x42, 0x5a, 0x68}},
	{compressionZlib, []byte{0x1f, 0x9d}},
}

func sniffCompression(header []byte) compression {
Sigs:
	for _, m := range magicNumbers {
		if len(header) < len(m.sig) {
			continue
		}
		for i := range m.sig {
			if header[i] != m.sig[i] {
				continue Sigs
			}
		}
		return m.kind
	}

	return compressionNone
}

// OpenMaybeCompressed opens path and returns a reader over its uncompressed
// contents, detecting gzip, zip, xz, zlib, and bzip2 by signature. A zip
// archive is read as a stream of its first entry. Closing the returned
// reader closes the underlying file.
func OpenMaybeCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	header := make([]byte, 6)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		f.Close()
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	switch sniffCompression(header[:n]) {
	case compressionGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &fileBackedReader{Reader: zr, file: f}, nil
	case compressionZip:
		zr := zipstream.NewReader(f)
		if _, err := zr.Next(); err != nil {
			f.Close()
			return nil, err
		}
		return &fileBackedReader{Reader: zr, file: f}, nil
	case compressionXZ:
		xr, err := xz.NewReader(f, 0)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &fileBackedReader{Reader: xr, file: f}, nil
	case compressionZlib:
		zr, err := zlib.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &fileBackedReader{Reader: zr, file: f}, nil
	case compressionBzip2:
		return &fileBackedReader{Reader: bzip2.NewReader(f), file: f}, nil
	}

	return f, nil
}

// fileBackedReader ties a decompressing reader's lifetime to its file.
type fileBackedReader struct {
	io.Reader
	file *os.File
}

func (r *fileBackedReader) Close() error {
	return r.file.Close()
}

// DetectDelimiter returns the most likely delimiter rune for CSV-like
// bytes, falling back to comma when detection is inconclusive.
func DetectDelimiter(contents []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(contents), '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
