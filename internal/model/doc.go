// Package model defines shared data types used across the entry-point pipeline.
//
// Conventions:
//   - Times of day: seconds since midnight (TimeOfDay), no date component
//   - Intervals: half-open [Entry, Exit) within a single trading day
//   - Scores: the practical score is parsed numerically; auxiliary score and
//     win-rate columns are carried through as raw strings so the output keeps
//     the input's formatting
package model
