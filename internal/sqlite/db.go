package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases and the foreign_keys
	// pragma bound to one session.
	db.SetMaxOpenConns(1)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS activitytypes (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT
);

CREATE TABLE IF NOT EXISTS repos (
    id INTEGER PRIMARY KEY,
    project INTEGER NOT NULL,
    path TEXT NOT NULL,
    FOREIGN KEY (project) REFERENCES projects(id)
);
CREATE INDEX IF NOT EXISTS idx_repos_project ON repos(project);

CREATE TABLE IF NOT EXISTS activities (
    id INTEGER PRIMARY KEY,
    project INTEGER NOT NULL,
    atype INTEGER NOT NULL DEFAULT 0,
    description TEXT,
    start TIMESTAMP NOT NULL,
    "end" TIMESTAMP,
    FOREIGN KEY (project) REFERENCES projects(id),
    FOREIGN KEY (atype) REFERENCES activitytypes(id)
);
CREATE INDEX IF NOT EXISTS idx_activities_project ON activities(project);
CREATE INDEX IF NOT EXISTS idx_activities_atype ON activities(atype);

CREATE TABLE IF NOT EXISTS counts (
    id INTEGER PRIMARY KEY,
    repo INTEGER NOT NULL,
    date TIMESTAMP NOT NULL,
    count INTEGER NOT NULL,
    FOREIGN KEY (repo) REFERENCES repos(id)
);
CREATE INDEX IF NOT EXISTS idx_counts_repo ON counts(repo);

INSERT OR IGNORE INTO activitytypes (id, name, description) VALUES (0, 'Unknown', NULL);
`

// InitSchema creates any missing tables and seeds the sentinel activity type.
// It is safe to call on every open.
func (db *DB) InitSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
