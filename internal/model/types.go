package model

import (
	"fmt"
	"time"
)

// Direction is the side of a signal.
type Direction int

const (
	Long Direction = iota
	Short
)

// String returns the display label used in output files.
func (d Direction) String() string {
	if d == Short {
		return "Short"
	}
	return "Long"
}

// TimeOfDay is a clock time within a single trading day, stored as seconds
// since midnight.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(hour, min, sec int) TimeOfDay {
	return TimeOfDay(hour*3600 + min*60 + sec)
}

// AddMinutes returns the time shifted forward by n minutes.
func (t TimeOfDay) AddMinutes(n int) TimeOfDay {
	return t + TimeOfDay(n*60)
}

// String formats the time as HH:MM:SS.
func (t TimeOfDay) String() string {
	s := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}

// RawRow is one untyped input row as read from a CSV file. All fields are the
// raw cell contents; empty string means the column was absent or blank.
// Line is the 1-based line number in the source file, Source the file name.
type RawRow struct {
	Line   int
	Source string

	Pair       string
	Entry      string
	Exit       string
	HoldingMin string
	Direction  string
	Practical  string
	Composite  string
	WinShort   string
	WinMid     string
	WinLong    string
	Date       string
}

// Candidate is one normalized signal row: a directed half-open time interval
// [Entry, Exit) with its ranking keys and pass-through columns.
type Candidate struct {
	// Index is the position in the combined input table. It is the final
	// tie-break everywhere a deterministic order is needed.
	Index int

	Pair      string
	Entry     TimeOfDay
	Exit      TimeOfDay
	Direction Direction

	// HoldingMin is the holding period in minutes, 0 when the input carried
	// an explicit Exit column instead.
	HoldingMin int

	PracticalScore float64

	// Auxiliary columns, carried through unchanged.
	Composite string
	WinShort  string
	WinMid    string
	WinLong   string

	// SourceDate is the calendar date of the file the row came from.
	// Zero when unknown; used only as a tie-break.
	SourceDate time.Time
}

// Overlaps reports whether the half-open intervals of c and other intersect.
// Touching endpoints do not count.
func (c Candidate) Overlaps(other Candidate) bool {
	return !(c.Exit <= other.Entry || other.Exit <= c.Entry)
}

// ResolvedEntry is a cluster representative in the final output table.
type ResolvedEntry struct {
	// Seq is the output sequence number ("No" column), assigned after the
	// final sort by entry time.
	Seq int

	Candidate
}
