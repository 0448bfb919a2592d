// Package interval normalizes raw signal rows into canonical candidates.
//
// Each input row carries an entry time plus either an explicit exit time or a
// holding period in minutes; the package parses the heterogeneous string
// encodings (times with or without seconds, several date layouts, HIGH/LOW or
// Long/Short direction labels) and produces one half-open interval per row.
// Rows that cannot be parsed are dropped with a warning; the batch continues.
package interval
