package sqlite

import "database/sql"

// schema sets up the single document slot. Older schema versions simply stay
// behind under their old keys; they are never read or migrated.
const schema = `
CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    body BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
