// store/schema.go
package store

const Schema = `
CREATE TABLE IF NOT EXISTS weeks (
	week_start_date TEXT PRIMARY KEY,
	initial_capital TEXT NOT NULL,
	days TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revisions (
	revision_id TEXT PRIMARY KEY,
	week_start_date TEXT NOT NULL,
	saved_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_revisions_week ON revisions(week_start_date);
`
