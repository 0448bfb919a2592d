package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beru3/historycal-sub001/internal/model"
)

// outputHeader is the fixed column order of the result table.
var outputHeader = []string{
	HeaderSeq, HeaderPair, HeaderEntry, HeaderExit, HeaderDirection,
	HeaderPractical, HeaderComposite, HeaderWinShort, HeaderWinMid, HeaderWinLong,
}

// WriteEntries writes the resolved table to path in the given encoding.
// The file is written atomically via a temp file in the same directory.
func WriteEntries(path string, entries []model.ResolvedEntry, enc Encoding) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".entrypoints-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	ew, err := encodeWriter(tmp, enc)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("prepare writer: %w", err)
	}

	w := csv.NewWriter(ew)
	if err := w.Write(outputHeader); err != nil {
		tmp.Close()
		return err
	}
	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.Seq),
			e.Pair,
			e.Entry.String(),
			e.Exit.String(),
			e.Direction.String(),
			formatScore(e.PracticalScore),
			e.Composite,
			e.WinShort,
			e.WinMid,
			e.WinLong,
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := ew.Close(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}

// formatScore prints a score without trailing zeros ("3.5", not "3.50").
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
