package experiment

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/foldcolor/catalog"
)

var csvHeader = []string{"graph", "algorithm", "folds", "colors", "ratio", "elapsed_ms"}

// WriteCSV emits recs as CSV with a fixed header row. Ratio is colors per
// fold; elapsed is fractional milliseconds.
func WriteCSV(w io.Writer, recs []catalog.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.Graph,
			rec.Algorithm,
			strconv.Itoa(rec.Folds),
			strconv.Itoa(rec.Colors),
			strconv.FormatFloat(rec.Ratio(), 'f', 4, 64),
			strconv.FormatFloat(float64(rec.Elapsed.Microseconds())/1000.0, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
