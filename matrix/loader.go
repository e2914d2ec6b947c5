package matrix

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrBadMatrix indicates a malformed matrix file.
var ErrBadMatrix = errors.New("matrix: malformed matrix file")

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if ferr := g.f.Close(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

// openReader opens path, transparently decompressing gzip. Compression is
// detected by magic bytes (1F 8B) or a .gz suffix.
func openReader(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipReadCloser{Reader: gr, f: fh}, nil
	}
	return fh, nil
}

// Load reads a text contact matrix from path (plain or gzip): first line is
// tab-separated bin labels, followed by one whitespace-delimited row of
// floats per line.
func Load(path string) ([]string, *mat.Dense, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()
	return Read(rc)
}

// Read parses a contact matrix from r. The number of columns must match the
// label count on every row; squareness against the label count is checked
// later by Build.
func Read(r io.Reader) ([]string, *mat.Dense, error) {
	sc := bufio.NewScanner(r)
	// matrix rows can be very long
	sc.Buffer(make([]byte, 1<<20), 1<<29)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: empty input", ErrBadMatrix)
	}
	labels := strings.Split(strings.TrimRight(sc.Text(), "\r"), "\t")
	n := len(labels)

	var data []float64
	rows := 0
	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != n {
			return nil, nil, fmt.Errorf("%w: line %d has %d columns, want %d",
				ErrBadMatrix, lineNo, len(fields), n)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrBadMatrix, lineNo, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if rows == 0 {
		return nil, nil, fmt.Errorf("%w: no matrix rows after header", ErrBadMatrix)
	}
	return labels, mat.NewDense(rows, n, data), nil
}
