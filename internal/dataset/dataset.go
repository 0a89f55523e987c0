package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/CAPChidu/project-risk-predictor/internal/generator"
)

// Dataset wraps an ordered batch of generated project records and knows how
// to serialize and summarize them.
type Dataset struct {
	records []generator.Record
}

// New wraps records in a Dataset. The slice is used as-is, not copied.
func New(records []generator.Record) *Dataset {
	return &Dataset{records: records}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns the underlying records in generation order.
func (d *Dataset) Records() []generator.Record {
	return d.records
}

// Head returns the first n records, or all of them when fewer exist.
func (d *Dataset) Head(n int) []generator.Record {
	if n > len(d.records) {
		n = len(d.records)
	}
	if n < 0 {
		n = 0
	}
	return d.records[:n]
}

// SuccessRate returns the fraction of records with a success outcome. An
// empty dataset has a rate of zero.
func (d *Dataset) SuccessRate() float64 {
	if len(d.records) == 0 {
		return 0
	}
	succeeded := 0
	for _, r := range d.records {
		if r.Success == 1 {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(d.records))
}

// WriteCSV writes the header row and one row per record to w.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(generator.FieldNames()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range d.records {
		if err := cw.Write(r.CSVRow()); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.ProjectID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteFile writes the dataset as CSV to path, creating or truncating the
// file.
func (d *Dataset) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	return d.WriteCSV(f)
}

// WritePreview renders the first n records as an aligned text table.
func (d *Dataset) WritePreview(w io.Writer, n int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(generator.FieldNames(), "\t"))
	for _, r := range d.Head(n) {
		fmt.Fprintln(tw, strings.Join(r.CSVRow(), "\t"))
	}
	return tw.Flush()
}
