package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/beru3/historycal-sub001/internal/model"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

const scoredCSV = "時間,通貨ペア,方向,保有期間,実用スコア,総合スコア,短期勝率,中期勝率,長期勝率\n" +
	"09:00:00,USDJPY,HIGH,5,3.5,2.8,0.61,0.58,0.55\n" +
	"09:03:00,EURUSD,LOW,3,2.1,1.9,0.52,0.50,0.49\n"

func TestReadRows_Scored(t *testing.T) {
	path := writeTempFile(t, "analyzed_high_scores_20250506_120000.csv", []byte(scoredCSV))

	rows, err := ReadRows(path, ScoredColumns())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "USDJPY", rows[0].Pair)
	assert.Equal(t, "09:00:00", rows[0].Entry)
	assert.Equal(t, "5", rows[0].HoldingMin)
	assert.Equal(t, "HIGH", rows[0].Direction)
	assert.Equal(t, "3.5", rows[0].Practical)
	assert.Equal(t, "2.8", rows[0].Composite)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 3, rows[1].Line)
}

func TestReadRows_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(scoredCSV)...)
	path := writeTempFile(t, "bom.csv", data)

	rows, err := ReadRows(path, ScoredColumns())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "USDJPY", rows[0].Pair)
}

func TestReadRows_ShiftJIS(t *testing.T) {
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(scoredCSV))
	require.NoError(t, err)
	path := writeTempFile(t, "sjis.csv", encoded)

	rows, err := ReadRows(path, ScoredColumns())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "EURUSD", rows[1].Pair)
	assert.Equal(t, "LOW", rows[1].Direction)
}

func TestReadRows_EnglishAliases(t *testing.T) {
	csv := "No,pair,Entry,Exit,direction,practical_score\n" +
		"1,USDJPY,09:00:00,09:05:00,Long,3.5\n"
	path := writeTempFile(t, "english.csv", []byte(csv))

	rows, err := ReadRows(path, EntrypointColumns())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "USDJPY", rows[0].Pair)
	assert.Equal(t, "09:05:00", rows[0].Exit)
}

func TestReadRows_SchemaError(t *testing.T) {
	csv := "通貨ペア,Entry,方向\n" + "USDJPY,09:00:00,Long\n"
	path := writeTempFile(t, "missing_exit.csv", []byte(csv))

	_, err := ReadRows(path, EntrypointColumns())

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, FieldExit)
}

func TestReadRows_EmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", nil)

	_, err := ReadRows(path, EntrypointColumns())

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestWriteEntries_UTF8BOM(t *testing.T) {
	entries := []model.ResolvedEntry{
		{
			Seq: 1,
			Candidate: model.Candidate{
				Pair:           "USDJPY",
				Entry:          model.NewTimeOfDay(9, 0, 0),
				Exit:           model.NewTimeOfDay(9, 5, 0),
				Direction:      model.Long,
				PracticalScore: 3.5,
				Composite:      "2.8",
				WinShort:       "0.61",
				WinMid:         "0.58",
				WinLong:        "0.55",
			},
		},
	}

	path := filepath.Join(t.TempDir(), "entrypoints_20250506.csv")
	require.NoError(t, WriteEntries(path, entries, UTF8BOM))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	text := string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, text, "No,通貨ペア,Entry,Exit,方向,実用スコア,総合スコア,短期勝率,中期勝率,長期勝率")
	assert.Contains(t, text, "1,USDJPY,09:00:00,09:05:00,Long,3.5,2.8,0.61,0.58,0.55")
}

func TestWriteEntries_ShiftJISRoundTrip(t *testing.T) {
	entries := []model.ResolvedEntry{
		{
			Seq: 1,
			Candidate: model.Candidate{
				Pair:           "EURUSD",
				Entry:          model.NewTimeOfDay(10, 30, 0),
				Exit:           model.NewTimeOfDay(10, 40, 0),
				Direction:      model.Short,
				PracticalScore: 2,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "merged.csv")
	require.NoError(t, WriteEntries(path, entries, ShiftJIS))

	// The file must be readable back through the detecting reader.
	rows, err := ReadRows(path, EntrypointColumns())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EURUSD", rows[0].Pair)
	assert.Equal(t, "Short", rows[0].Direction)
	assert.Equal(t, "10:30:00", rows[0].Entry)
}

func TestParseEncoding(t *testing.T) {
	enc, err := ParseEncoding("shift_jis")
	require.NoError(t, err)
	assert.Equal(t, ShiftJIS, enc)

	enc, err = ParseEncoding("")
	require.NoError(t, err)
	assert.Equal(t, UTF8BOM, enc)

	_, err = ParseEncoding("euc_jp")
	assert.Error(t, err)
}
