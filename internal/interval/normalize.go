package interval

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/beru3/historycal-sub001/internal/model"
)

// Normalize converts one raw row into a canonical candidate.
//
// The exit time comes from the Exit column when present, otherwise from
// Entry plus the holding period. fallbackDate fills SourceDate for rows
// whose file did not carry a date column (zero means unknown).
func Normalize(row model.RawRow, fallbackDate time.Time) (model.Candidate, error) {
	entry, err := ParseTimeOfDay(row.Entry)
	if err != nil {
		return model.Candidate{}, err
	}

	dir, err := ParseDirection(row.Direction)
	if err != nil {
		return model.Candidate{}, err
	}

	var exit model.TimeOfDay
	var holding int
	switch {
	case strings.TrimSpace(row.Exit) != "":
		exit, err = ParseTimeOfDay(row.Exit)
		if err != nil {
			return model.Candidate{}, err
		}
		// Keep the holding period when both are present so Exit can be
		// recomputed after resolution.
		if strings.TrimSpace(row.HoldingMin) != "" {
			holding, err = parseHolding(row.HoldingMin)
			if err != nil {
				return model.Candidate{}, err
			}
		}
	case strings.TrimSpace(row.HoldingMin) != "":
		holding, err = parseHolding(row.HoldingMin)
		if err != nil {
			return model.Candidate{}, err
		}
		exit = entry.AddMinutes(holding)
	default:
		return model.Candidate{}, fmt.Errorf("%w: neither exit time nor holding period", ErrRowParse)
	}

	if exit <= entry {
		return model.Candidate{}, fmt.Errorf("%w: degenerate interval %s-%s", ErrRowParse, entry, exit)
	}

	score := 0.0
	if s := strings.TrimSpace(row.Practical); s != "" {
		score, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Candidate{}, fmt.Errorf("%w: invalid practical score %q", ErrRowParse, row.Practical)
		}
	}

	sourceDate := fallbackDate
	if s := strings.TrimSpace(row.Date); s != "" {
		sourceDate, err = ParseDate(s)
		if err != nil {
			return model.Candidate{}, err
		}
	}

	return model.Candidate{
		Pair:           strings.TrimSpace(row.Pair),
		Entry:          entry,
		Exit:           exit,
		Direction:      dir,
		HoldingMin:     holding,
		PracticalScore: score,
		Composite:      row.Composite,
		WinShort:       row.WinShort,
		WinMid:         row.WinMid,
		WinLong:        row.WinLong,
		SourceDate:     sourceDate,
	}, nil
}

// NormalizeAll normalizes a batch of rows, dropping unparseable ones with a
// warning. Indexes are assigned in input order over the surviving rows.
// Returns the candidates and the number of dropped rows.
func NormalizeAll(rows []model.RawRow, fallbackDate time.Time, logger *slog.Logger) ([]model.Candidate, int) {
	if logger == nil {
		logger = slog.Default()
	}

	cands := make([]model.Candidate, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		c, err := Normalize(row, fallbackDate)
		if err != nil {
			logger.Warn("dropping row",
				"source", row.Source,
				"line", row.Line,
				"error", err,
			)
			dropped++
			continue
		}
		c.Index = len(cands)
		cands = append(cands, c)
	}
	return cands, dropped
}

func parseHolding(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid holding period %q", ErrRowParse, s)
	}
	return n, nil
}
