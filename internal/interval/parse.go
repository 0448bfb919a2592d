package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beru3/historycal-sub001/internal/model"
)

// ErrRowParse marks row-level parse failures. Callers drop the offending row
// and continue the batch.
var ErrRowParse = errors.New("row parse error")

// dateLayouts are the accepted date encodings, tried in order.
var dateLayouts = []string{
	"2006/1/2",
	"2006-1-2",
	"20060102",
}

// ParseTimeOfDay parses HH:MM:SS or HH:MM.
func ParseTimeOfDay(s string) (model.TimeOfDay, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: invalid time %q", ErrRowParse, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: invalid time %q", ErrRowParse, s)
		}
		nums[i] = n
	}
	if nums[0] > 23 || nums[1] > 59 || nums[2] > 59 {
		return 0, fmt.Errorf("%w: time out of range %q", ErrRowParse, s)
	}

	return model.NewTimeOfDay(nums[0], nums[1], nums[2]), nil
}

// ParseDate parses a calendar date in YYYY/M/D, YYYY-M-D or YYYYMMDD form.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unknown date format %q", ErrRowParse, s)
}

// ParseDirection normalizes a direction label. The scored files use HIGH/LOW,
// the entry-point files use Long/Short; both are accepted case-insensitively.
func ParseDirection(s string) (model.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "long":
		return model.Long, nil
	case "low", "short":
		return model.Short, nil
	}
	return 0, fmt.Errorf("%w: unknown direction %q", ErrRowParse, s)
}
