package csvio

import (
	"fmt"
	"strings"
)

// Field identifies one logical column of the signal table.
type Field string

const (
	FieldSeq       Field = "no"
	FieldPair      Field = "pair"
	FieldEntry     Field = "entry"
	FieldExit      Field = "exit"
	FieldHolding   Field = "holding"
	FieldDirection Field = "direction"
	FieldPractical Field = "practical_score"
	FieldComposite Field = "composite_score"
	FieldWinShort  Field = "win_rate_short"
	FieldWinMid    Field = "win_rate_mid"
	FieldWinLong   Field = "win_rate_long"
	FieldDate      Field = "date"
)

// Canonical Japanese output headers.
const (
	HeaderSeq       = "No"
	HeaderPair      = "通貨ペア"
	HeaderEntry     = "Entry"
	HeaderExit      = "Exit"
	HeaderHolding   = "保有期間"
	HeaderDirection = "方向"
	HeaderPractical = "実用スコア"
	HeaderComposite = "総合スコア"
	HeaderWinShort  = "短期勝率"
	HeaderWinMid    = "中期勝率"
	HeaderWinLong   = "長期勝率"
	HeaderDate      = "日付"
)

// ColumnMap lists, per field, the exact header names a data source may use.
// Matching is case-insensitive on the whole header, never substring-based.
type ColumnMap struct {
	Aliases  map[Field][]string
	Required []Field
}

// ScoredColumns matches the analyzed_high_scores_* files, where the entry
// time column is named 時間 and the exit is given as a holding period.
func ScoredColumns() ColumnMap {
	m := entrypointAliases()
	m[FieldEntry] = []string{"時間", HeaderEntry}
	return ColumnMap{
		Aliases:  m,
		Required: []Field{FieldPair, FieldEntry, FieldDirection, FieldHolding, FieldPractical},
	}
}

// EntrypointColumns matches the entrypoints_* files produced by the
// extractor, with explicit Entry and Exit columns.
func EntrypointColumns() ColumnMap {
	return ColumnMap{
		Aliases:  entrypointAliases(),
		Required: []Field{FieldPair, FieldEntry, FieldExit, FieldDirection},
	}
}

func entrypointAliases() map[Field][]string {
	return map[Field][]string{
		FieldSeq:       {HeaderSeq, "番号"},
		FieldPair:      {HeaderPair, "currency_pair", "pair"},
		FieldEntry:     {HeaderEntry, "エントリー"},
		FieldExit:      {HeaderExit, "エグジット"},
		FieldHolding:   {HeaderHolding, "holding_period"},
		FieldDirection: {HeaderDirection, "direction", "side"},
		FieldPractical: {HeaderPractical, "practical_score"},
		FieldComposite: {HeaderComposite, "total_score"},
		FieldWinShort:  {HeaderWinShort, "win_rate_short"},
		FieldWinMid:    {HeaderWinMid, "win_rate_mid"},
		FieldWinLong:   {HeaderWinLong, "win_rate_long"},
		FieldDate:      {HeaderDate, "date"},
	}
}

// SchemaError reports a header that does not satisfy a ColumnMap. It aborts
// the whole run: when the schema is wrong no row can be trusted.
type SchemaError struct {
	Source  string
	Missing []Field
}

func (e *SchemaError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("%s: required columns missing: %s", e.Source, strings.Join(names, ", "))
}

// resolve maps each known field to its column position in the header.
func (m ColumnMap) resolve(source string, header []string) (map[Field]int, error) {
	pos := make(map[Field]int)
	for i, h := range header {
		h = strings.TrimSpace(h)
		for field, aliases := range m.Aliases {
			if _, seen := pos[field]; seen {
				continue
			}
			for _, a := range aliases {
				if strings.EqualFold(h, a) {
					pos[field] = i
					break
				}
			}
		}
	}

	var missing []Field
	for _, f := range m.Required {
		if _, ok := pos[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Source: source, Missing: missing}
	}
	return pos, nil
}
