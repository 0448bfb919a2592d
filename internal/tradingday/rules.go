package tradingday

import (
	"fmt"
	"time"
)

// Rules describes one broker's business-day policy.
type Rules struct {
	Name string

	WeekendClosed   bool
	NewYearClosed   bool
	ChristmasClosed bool

	// USHolidaysAffect marks brokers whose liquidity drops on US holidays;
	// the high-impact ones (Jul 4, Dec 25) then count as closed.
	USHolidaysAffect bool
}

var brokers = map[string]Rules{
	"fxtf": {
		Name:             "Golden Way Japan (FXTF)",
		WeekendClosed:    true,
		NewYearClosed:    true,
		ChristmasClosed:  true,
		USHolidaysAffect: true,
	},
	"saxo_bank": {
		Name:             "Saxo Bank Securities",
		WeekendClosed:    true,
		NewYearClosed:    true,
		ChristmasClosed:  true,
		USHolidaysAffect: true,
	},
	"gmo_coin": {
		Name:             "GMO Coin (FX)",
		WeekendClosed:    true,
		NewYearClosed:    true,
		ChristmasClosed:  true,
		USHolidaysAffect: true,
	},
}

// BrokerRules looks up the rule set for a broker key.
func BrokerRules(key string) (Rules, error) {
	r, ok := brokers[key]
	if !ok {
		return Rules{}, fmt.Errorf("unknown broker %q", key)
	}
	return r, nil
}

// evaluate applies the rule set to a date.
func (r Rules) evaluate(date time.Time) bool {
	if r.WeekendClosed && (date.Weekday() == time.Saturday || date.Weekday() == time.Sunday) {
		return false
	}
	if r.NewYearClosed && date.Month() == time.January && date.Day() == 1 {
		return false
	}
	if r.ChristmasClosed && date.Month() == time.December && date.Day() == 25 {
		return false
	}
	// Dec 29 - Jan 3: liquidity collapses, treated as closed across the board.
	if yearEndSpecial(date) {
		return false
	}
	if r.USHolidaysAffect && isUSMajorHoliday(date) {
		return usHolidayDecision(date)
	}
	return true
}

func yearEndSpecial(date time.Time) bool {
	if date.Month() == time.December && date.Day() >= 29 {
		return true
	}
	return date.Month() == time.January && date.Day() <= 3
}

// isUSMajorHoliday covers the fixed holidays plus the moveable ones that
// matter for FX liquidity: Memorial Day, Labor Day, Thanksgiving.
func isUSMajorHoliday(date time.Time) bool {
	switch {
	case date.Month() == time.January && date.Day() == 1,
		date.Month() == time.July && date.Day() == 4,
		date.Month() == time.December && date.Day() == 25:
		return true
	case date.Month() == time.November && isNthWeekday(date, 4, time.Thursday):
		return true // Thanksgiving
	case date.Month() == time.May && isLastWeekday(date, time.Monday):
		return true // Memorial Day
	case date.Month() == time.September && isNthWeekday(date, 1, time.Monday):
		return true // Labor Day
	}
	return false
}

// usHolidayDecision allows trading on low-impact US holidays but blocks the
// high-impact ones.
func usHolidayDecision(date time.Time) bool {
	if date.Month() == time.July && date.Day() == 4 {
		return false
	}
	if date.Month() == time.December && date.Day() == 25 {
		return false
	}
	return true
}

func isNthWeekday(date time.Time, n int, weekday time.Weekday) bool {
	if date.Weekday() != weekday {
		return false
	}
	return (date.Day()-1)/7+1 == n
}

func isLastWeekday(date time.Time, weekday time.Weekday) bool {
	if date.Weekday() != weekday {
		return false
	}
	return date.AddDate(0, 0, 7).Month() != date.Month()
}
