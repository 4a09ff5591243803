package db

// SchemaSQL is the complete schema for fresh dayboard installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository
// tests load it through GetSchemaSQL() so that a column referenced by
// repository code but missing here fails immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
//  3. Bump the version list so fresh installs are marked as migrated
//
// Vocabulary CHECK constraints must match internal/models exactly; the
// values are case- and space-sensitive.
const SchemaSQL = `
-- Users (identity is supplied by the caller; email is unique)
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Inbox items (quick capture)
CREATE TABLE IF NOT EXISTS inbox_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	content TEXT NOT NULL CHECK(length(content) > 0),
	tag TEXT NOT NULL CHECK(tag IN ('Work', 'Personal', 'Side Hustle', 'Idea', 'Gratitude', 'Family', 'Self')),
	is_processed INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_inbox_items_user ON inbox_items(user_id, is_processed);

-- Daily reviews (AM/PM). (user_id, review_date, type) is intentionally not unique.
CREATE TABLE IF NOT EXISTS daily_reviews (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	review_date TEXT NOT NULL,
	type TEXT NOT NULL CHECK(type IN ('AM', 'PM')),
	todays_one_thing TEXT,
	top_three_tasks TEXT,
	gratitude TEXT,
	accomplished TEXT,
	distractions TEXT,
	tomorrows_shift TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_daily_reviews_lookup ON daily_reviews(user_id, review_date, type);

-- Weekly tasks (kanban cards). Positions are ordered per (user_id, column, week_start_date).
CREATE TABLE IF NOT EXISTS weekly_tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	title TEXT NOT NULL CHECK(length(title) > 0),
	"column" TEXT NOT NULL CHECK("column" IN ('Work', 'Side Hustle', 'Family', 'Self')),
	position INTEGER NOT NULL DEFAULT 0 CHECK(position >= 0),
	week_start_date TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_weekly_tasks_partition ON weekly_tasks(user_id, week_start_date, "column", position);

-- Automation tasks
CREATE TABLE IF NOT EXISTS automation_tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	task_name TEXT NOT NULL CHECK(length(task_name) > 0),
	workflow_notes TEXT,
	status TEXT NOT NULL CHECK(status IN ('To Automate', 'In Progress', 'Automated', 'Needs Review')) DEFAULT 'To Automate',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_automation_tasks_user ON automation_tasks(user_id, status);

-- Applied migrations
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
