package gemmbench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Report serializes the size × kernel mean-time table as CSV. The header row
// is "Matrix Size" followed by the kernel names in declaration order; each
// data row is a matrix size followed by that size's mean times formatted to
// six decimal places. Every row is flushed as soon as it is written so a
// crash mid-run leaves all completed sizes on disk.
type Report struct {
	w     *csv.Writer
	close io.Closer
	cols  int
}

// NewReport writes the CSV header for the given kernel names to w and
// returns a Report that appends one row per benchmarked size.
func NewReport(w io.Writer, kernelNames []string) (*Report, error) {
	cw := csv.NewWriter(w)
	header := append([]string{"Matrix Size"}, kernelNames...)
	if err := cw.Write(header); err != nil {
		return nil, NewReportError("NewReport", "failed to write CSV header", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, NewReportError("NewReport", "failed to flush CSV header", err)
	}
	return &Report{w: cw, cols: len(kernelNames)}, nil
}

// CreateReport truncates or creates the file at path and returns a Report
// writing to it. The caller owns the report and must Close it.
func CreateReport(path string, kernelNames []string) (*Report, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, NewReportError("CreateReport",
			fmt.Sprintf("failed to open results file %s", path), err)
	}
	r, err := NewReport(f, kernelNames)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.close = f
	return r, nil
}

// WriteRow appends one data row: the matrix size followed by each kernel's
// mean elapsed seconds, in the same order as the header. The row is flushed
// immediately.
func (r *Report) WriteRow(size int, meanSeconds []float64) error {
	if len(meanSeconds) != r.cols {
		return NewReportError("WriteRow",
			fmt.Sprintf("row has %d values, header has %d kernels", len(meanSeconds), r.cols), nil)
	}
	record := make([]string, 0, r.cols+1)
	record = append(record, strconv.Itoa(size))
	for _, s := range meanSeconds {
		record = append(record, fmt.Sprintf("%.6f", s))
	}
	if err := r.w.Write(record); err != nil {
		return NewReportError("WriteRow", "failed to write CSV row", err)
	}
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return NewReportError("WriteRow", "failed to flush CSV row", err)
	}
	return nil
}

// Close flushes any buffered output and closes the underlying file, if the
// report owns one.
func (r *Report) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		return NewReportError("Close", "failed to flush CSV output", err)
	}
	if r.close != nil {
		if err := r.close.Close(); err != nil {
			return NewReportError("Close", "failed to close results file", err)
		}
	}
	return nil
}
