// Package snapshot reads and writes one week as a self-contained JSON file,
// independent of the SQLite store. Files double as the weekly archive: the
// filename embeds the week-start date, so later weeks never overwrite
// earlier files and a lexicographically descending listing is already
// most-recent-first.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rvaldes/tradeweek/ledger"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	filePrefix = "weekend_trading_"
	fileSuffix = ".json"
)

// DefaultDir is the conventional archive folder for weekly snapshot files.
const DefaultDir = "Weekend-Saved"

// ReadError reports a snapshot file that is absent, unparseable or invalid
// beyond what tolerant hydration can repair.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read snapshot %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports an I/O failure while saving a snapshot. Saving is an
// explicit user action, so these surface with the path attached.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write snapshot %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Filename returns the canonical snapshot name for a week start date,
// e.g. weekend_trading_2026-08-24.json.
func Filename(start time.Time) string {
	return filePrefix + start.Format(ledger.DateFormat) + fileSuffix
}

// ArchivePath joins the archive directory with the week's canonical filename.
func ArchivePath(dir string, start time.Time) string {
	return filepath.Join(dir, Filename(start))
}

// Save serializes the week to path, creating parent directories as needed.
func Save(w *ledger.Week, path string) error {
	data, err := json.MarshalIndent(w.Record(), "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Load reads a week back from a snapshot file. Missing fields inside a valid
// file hydrate with defaults; anything else fails with a ReadError.
func Load(path string) (*ledger.Week, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	var rec ledger.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	w, err := ledger.HydrateRecord(rec)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return w, nil
}

// ListArchive returns the snapshot filenames in dir, most recent week first.
// Files outside the naming convention are skipped. A missing directory is an
// empty archive, not an error.
func ListArchive(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ReadError{Path: dir, Err: err}
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		names = append(names, name)
	}

	// The date embedded in the name makes lexicographic descending order
	// the most-recent-first order callers rely on.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
