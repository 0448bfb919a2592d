// Package csvio reads and writes the pipeline's CSV tables.
//
// Column resolution is declarative: each data source supplies a ColumnMap
// listing the exact header names accepted for each field, validated when the
// file is opened. A missing required column is a SchemaError and aborts the
// run; there is no fuzzy header matching.
//
// The scored and entry-point files in the wild arrive as UTF-8 (with or
// without BOM) or Shift-JIS; the reader detects which. Output is written as
// UTF-8 with BOM or Shift-JIS depending on the consumer.
package csvio
