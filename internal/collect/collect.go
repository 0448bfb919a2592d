package collect

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/beru3/historycal-sub001/internal/csvio"
	"github.com/beru3/historycal-sub001/internal/model"
)

// ErrNoFiles means the input directory had nothing matching the pattern.
var ErrNoFiles = errors.New("no matching input files")

var (
	scoredPattern     = regexp.MustCompile(`^analyzed_high_scores_(\d{8})_(\d{6})\.csv$`)
	entrypointPattern = regexp.MustCompile(`^entrypoints_(\d{8})\.csv$`)
)

// File is one discovered input file with the date embedded in its name.
type File struct {
	Path string
	Date time.Time
}

// LatestScored returns the newest scored CSV in dir by its embedded
// date and time stamp.
func LatestScored(dir string) (File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return File{}, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var best File
	found := false
	for _, e := range entries {
		m := scoredPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		ts, err := time.Parse("20060102_150405", m[1]+"_"+m[2])
		if err != nil {
			continue
		}
		if !found || ts.After(best.Date) {
			best = File{Path: filepath.Join(dir, e.Name()), Date: ts}
			found = true
		}
	}
	if !found {
		return File{}, fmt.Errorf("%w: analyzed_high_scores_*.csv in %s", ErrNoFiles, dir)
	}
	return best, nil
}

// RecentEntrypoints returns the entry-point files in dir whose file-name date
// is within lookback of now, newest first. Files with malformed names are
// skipped with a warning.
func RecentEntrypoints(dir string, now time.Time, lookback time.Duration, logger *slog.Logger) ([]File, error) {
	if logger == nil {
		logger = slog.Default()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	cutoff := now.Add(-lookback)
	var files []File
	for _, e := range entries {
		m := entrypointPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		date, err := time.Parse("20060102", m[1])
		if err != nil {
			logger.Warn("skipping file with unparseable date", "file", e.Name(), "error", err)
			continue
		}
		if date.Before(cutoff) {
			continue
		}
		files = append(files, File{Path: filepath.Join(dir, e.Name()), Date: date})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: entrypoints_*.csv in %s", ErrNoFiles, dir)
	}

	sort.Slice(files, func(a, b int) bool {
		if !files[a].Date.Equal(files[b].Date) {
			return files[a].Date.After(files[b].Date)
		}
		return files[a].Path < files[b].Path
	})
	return files, nil
}

// LoadAll parses the files concurrently and concatenates their rows in the
// given file order. Rows without a date column inherit the file date. A file
// that fails schema validation is skipped with a warning; any other error
// aborts.
func LoadAll(files []File, cols csvio.ColumnMap, logger *slog.Logger) ([]model.RawRow, error) {
	if logger == nil {
		logger = slog.Default()
	}

	perFile := make([][]model.RawRow, len(files))

	g := new(errgroup.Group)
	g.SetLimit(4)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			rows, err := csvio.ReadRows(f.Path, cols)
			if err != nil {
				var schemaErr *csvio.SchemaError
				if errors.As(err, &schemaErr) {
					logger.Warn("skipping file", "file", filepath.Base(f.Path), "error", err)
					return nil
				}
				return err
			}
			fileDate := f.Date.Format("2006/01/02")
			for j := range rows {
				if rows[j].Date == "" {
					rows[j].Date = fileDate
				}
			}
			perFile[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.RawRow
	for _, rows := range perFile {
		all = append(all, rows...)
	}
	return all, nil
}

// Backup copies the source files into an originals/ subdirectory of dir.
func Backup(files []File, dir string) error {
	dst := filepath.Join(dir, "originals")
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	for _, f := range files {
		if err := copyFile(f.Path, filepath.Join(dst, filepath.Base(f.Path))); err != nil {
			return fmt.Errorf("backup %s: %w", filepath.Base(f.Path), err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
