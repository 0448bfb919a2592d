package csvio

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Encoding selects how an output file is encoded.
type Encoding int

const (
	// UTF8BOM writes UTF-8 with a byte-order mark, which spreadsheet tools
	// on Japanese Windows need to pick the right codec.
	UTF8BOM Encoding = iota

	// ShiftJIS writes CP932, the encoding the downstream trading tool reads.
	ShiftJIS
)

// ParseEncoding parses a config value into an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf-8-sig", "utf8":
		return UTF8BOM, nil
	case "shift_jis", "shift-jis", "sjis", "cp932":
		return ShiftJIS, nil
	}
	return 0, fmt.Errorf("unknown encoding %q", s)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode converts raw file bytes to UTF-8. A leading BOM is stripped; input
// that is not valid UTF-8 is treated as Shift-JIS.
func decode(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return raw, nil
	}

	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("decode shift_jis: %w", err)
	}
	return out, nil
}

// encodeWriter wraps w so that UTF-8 written to it reaches the file in the
// requested encoding. The returned writer must be closed to flush the
// transformer; closing it does not close w.
func encodeWriter(w io.Writer, enc Encoding) (io.WriteCloser, error) {
	switch enc {
	case ShiftJIS:
		return transform.NewWriter(w, japanese.ShiftJIS.NewEncoder()), nil
	default:
		if _, err := w.Write(utf8BOM); err != nil {
			return nil, err
		}
		return nopCloser{w}, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
