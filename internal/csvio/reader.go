package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beru3/historycal-sub001/internal/model"
)

// ReadRows reads one CSV file into raw rows using the given column map.
// Returns a SchemaError when a required column is absent.
func ReadRows(path string, cols ColumnMap) ([]model.RawRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	decoded, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	source := filepath.Base(path)
	r := csv.NewReader(bytes.NewReader(decoded))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, &SchemaError{Source: source, Missing: cols.Required}
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", source, err)
	}

	pos, err := cols.resolve(source, header)
	if err != nil {
		return nil, err
	}

	cell := func(record []string, f Field) string {
		i, ok := pos[f]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []model.RawRow
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", source, line+1, err)
		}
		line++
		rows = append(rows, model.RawRow{
			Line:       line,
			Source:     source,
			Pair:       cell(record, FieldPair),
			Entry:      cell(record, FieldEntry),
			Exit:       cell(record, FieldExit),
			HoldingMin: cell(record, FieldHolding),
			Direction:  cell(record, FieldDirection),
			Practical:  cell(record, FieldPractical),
			Composite:  cell(record, FieldComposite),
			WinShort:   cell(record, FieldWinShort),
			WinMid:     cell(record, FieldWinMid),
			WinLong:    cell(record, FieldWinLong),
			Date:       cell(record, FieldDate),
		})
	}
	return rows, nil
}
