// Package collect discovers and loads the pipeline's input files.
//
// Scored files are named analyzed_high_scores_YYYYMMDD_HHMMSS.csv and the
// newest one (by the embedded timestamp, not mtime) feeds the extractor.
// Entry-point files are named entrypoints_YYYYMMDD.csv; the collector loads
// every file within the lookback window and tags each row with its file date.
package collect
