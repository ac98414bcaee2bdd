package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS repos (
	github_id      BIGINT PRIMARY KEY,
	owner          TEXT NOT NULL,
	name           TEXT NOT NULL,
	full_name      TEXT NOT NULL,
	private        BOOLEAN NOT NULL DEFAULT FALSE,
	archived       BOOLEAN NOT NULL DEFAULT FALSE,
	pushed_at      TIMESTAMPTZ,
	updated_at     TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS users (
	github_id      BIGINT PRIMARY KEY,
	login          TEXT NOT NULL,
	avatar_url     TEXT NOT NULL DEFAULT '',
	name           TEXT NOT NULL DEFAULT '',
	type           TEXT NOT NULL DEFAULT '',
	is_maintainer  BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS issues (
	github_id      BIGINT PRIMARY KEY,
	repo_github_id BIGINT NOT NULL REFERENCES repos(github_id),
	number         INTEGER NOT NULL,
	title          TEXT NOT NULL,
	body           TEXT NOT NULL DEFAULT '',
	state          TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL,
	closed_at      TIMESTAMPTZ,
	labels         JSONB NOT NULL DEFAULT '[]',
	assignees      JSONB NOT NULL DEFAULT '[]',
	author_login   TEXT NOT NULL DEFAULT '',
	synced_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (repo_github_id, number)
);

CREATE TABLE IF NOT EXISTS pull_requests (
	github_id        BIGINT PRIMARY KEY,
	repo_github_id   BIGINT NOT NULL REFERENCES repos(github_id),
	number           INTEGER NOT NULL,
	title            TEXT NOT NULL,
	body             TEXT NOT NULL DEFAULT '',
	state            TEXT NOT NULL,
	draft            BOOLEAN NOT NULL DEFAULT FALSE,
	additions        INTEGER NOT NULL DEFAULT 0,
	deletions        INTEGER NOT NULL DEFAULT 0,
	changed_files    INTEGER NOT NULL DEFAULT 0,
	merged           BOOLEAN NOT NULL DEFAULT FALSE,
	merged_at        TIMESTAMPTZ,
	merge_commit_sha TEXT NOT NULL DEFAULT '',
	labels           JSONB NOT NULL DEFAULT '[]',
	assignees        JSONB NOT NULL DEFAULT '[]',
	author_login     TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL,
	closed_at        TIMESTAMPTZ,
	synced_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (repo_github_id, number)
);

CREATE TABLE IF NOT EXISTS pull_request_reviews (
	pr_github_id   BIGINT NOT NULL REFERENCES pull_requests(github_id) ON DELETE CASCADE,
	reviewer_login TEXT NOT NULL,
	submitted_at   TIMESTAMPTZ,
	state          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pr_reviews_pr ON pull_request_reviews(pr_github_id);

CREATE TABLE IF NOT EXISTS comments (
	github_id       BIGINT PRIMARY KEY,
	issue_github_id BIGINT NOT NULL REFERENCES issues(github_id),
	author_login    TEXT NOT NULL DEFAULT '',
	body            TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS repo_maintainers (
	repo_github_id BIGINT NOT NULL REFERENCES repos(github_id),
	github_user_id BIGINT NOT NULL REFERENCES users(github_id),
	source         TEXT NOT NULL,
	confidence     INTEGER NOT NULL,
	PRIMARY KEY (repo_github_id, github_user_id)
);

CREATE TABLE IF NOT EXISTS sync_state (
	repo_github_id       BIGINT PRIMARY KEY REFERENCES repos(github_id),
	last_issue_sync      TIMESTAMPTZ,
	last_pr_sync         TIMESTAMPTZ,
	last_comment_sync    TIMESTAMPTZ,
	last_maintainer_sync TIMESTAMPTZ,
	updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Initialize creates the schema if it does not exist.
func Initialize(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
