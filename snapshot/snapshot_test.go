package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rvaldes/tradeweek/ledger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleWeek(t *testing.T) *ledger.Week {
	t.Helper()

	w := ledger.NewWeek(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), d("100"))
	assert.NoError(t, w.SetDay(ledger.Monday, d("50"), ledger.Reinvestment))
	assert.NoError(t, w.SetDay(ledger.Tuesday, d("-20"), ledger.Unset))
	assert.NoError(t, w.SetDay(ledger.Friday, d("30"), ledger.Withdrawal))
	return w
}

func TestFilenameEmbedsDate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "weekend_trading_2026-08-24.json", Filename(start))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	w := sampleWeek(t)
	path := ArchivePath(t.TempDir(), w.Start)

	assert.NoError(t, Save(w, path))

	got, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, w.Start, got.Start)
	assert.True(t, got.InitialCapital.Equal(w.InitialCapital))
	for _, day := range ledger.Days {
		assert.True(t, got.Entries[day].Amount.Equal(w.Entries[day].Amount), "%s amount", day)
		assert.Equal(t, w.Entries[day].Destination, got.Entries[day].Destination, "%s destination", day)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	t.Parallel()

	w := sampleWeek(t)
	path := filepath.Join(t.TempDir(), "deep", "nested", Filename(w.Start))

	assert.NoError(t, Save(w, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var re *ReadError
	assert.ErrorAs(t, err, &re)
}

func TestLoadNotJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))

	_, err := Load(path)
	var re *ReadError
	assert.ErrorAs(t, err, &re)
}

func TestLoadToleratesMissingFields(t *testing.T) {
	t.Parallel()

	// An older-schema file: no initial_capital, partial days.
	path := filepath.Join(t.TempDir(), "old.json")
	raw := `{"week_start_date": "2026-08-24", "days": {"monday": {"amount": 12.5, "destination": "reinvestment"}}}`
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	w, err := Load(path)
	assert.NoError(t, err)
	assert.True(t, w.InitialCapital.Equal(d("100")))
	assert.True(t, w.Entries[ledger.Monday].Amount.Equal(d("12.5")))
	assert.True(t, w.Entries[ledger.Sunday].Amount.IsZero())
}

func TestListArchiveDescending(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, date := range []string{"2026-08-10", "2026-08-24", "2026-08-17"} {
		start, err := time.ParseInLocation(ledger.DateFormat, date, time.UTC)
		assert.NoError(t, err)
		assert.NoError(t, Save(ledger.NewWeek(start, d("100")), ArchivePath(dir, start)))
	}
	// Unrelated files are skipped.
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	names, err := ListArchive(dir)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"weekend_trading_2026-08-24.json",
		"weekend_trading_2026-08-17.json",
		"weekend_trading_2026-08-10.json",
	}, names)
}

func TestListArchiveMissingDir(t *testing.T) {
	t.Parallel()

	names, err := ListArchive(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, err)
	assert.Empty(t, names)
}
