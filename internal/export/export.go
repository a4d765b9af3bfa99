package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/sciunits/pkg/converter"
)

// Row is one converter of the catalog in flat form.
type Row struct {
	Quantity string `json:"quantity"`
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Operator string `json:"operator"`
	Partner  string `json:"partner"`
	Result   string `json:"result"`
	Unit     string `json:"unit"`
}

var header = []string{"quantity", "index", "label", "operator", "partner", "result", "unit"}

// Rows flattens cat in quantity order, keeping each quantity's converter order.
func Rows(cat *converter.Catalog) []Row {
	var rows []Row
	for _, q := range cat.Quantities() {
		for i, c := range cat.Converters(q) {
			rows = append(rows, Row{
				Quantity: q.String(),
				Index:    i + 1,
				Label:    c.Label(),
				Operator: c.Operator().String(),
				Partner:  c.Partner().String(),
				Result:   c.Result().String(),
				Unit:     c.Unit().Symbol(),
			})
		}
	}
	return rows
}

func WriteJSON(w io.Writer, rows []Row) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.Quantity, fmt.Sprint(r.Index), r.Label, r.Operator, r.Partner, r.Result, r.Unit}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write dumps rows in format ("json" or "csv") to path, or to stdout when
// path is empty.
func Write(path, format string, rows []Row) error {
	write, err := writer(format)
	if err != nil {
		return err
	}
	if path == "" {
		return write(os.Stdout, rows)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeAndClose(file, write, rows)
}

// writeAndClose reports a Close failure when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer, []Row) error, rows []Row) (err error) {
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()
	return write(wc, rows)
}

func writer(format string) (func(io.Writer, []Row) error, error) {
	switch format {
	case "json":
		return WriteJSON, nil
	case "csv":
		return WriteCSV, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s (available: json, csv)", format)
	}
}
