package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"orgsync/internal/domain"
)

// SyncStateStore tracks the per-repository, per-entity-kind watermark. Each
// kind lives in its own column of a single sync_state row, so advancing one
// kind never disturbs another.
type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func watermarkColumn(kind domain.SyncKind) (string, error) {
	switch kind {
	case domain.KindIssues:
		return "last_issue_sync", nil
	case domain.KindPulls:
		return "last_pr_sync", nil
	case domain.KindComments:
		return "last_comment_sync", nil
	case domain.KindMaintainers:
		return "last_maintainer_sync", nil
	}
	return "", fmt.Errorf("unknown sync kind %q", kind)
}

// Get returns the watermark, or the zero time when no incremental boundary
// is known and a full sync is required.
func (s *SyncStateStore) Get(ctx context.Context, repoGithubID int64, kind domain.SyncKind) (time.Time, error) {
	col, err := watermarkColumn(kind)
	if err != nil {
		return time.Time{}, err
	}

	var ts sql.NullTime
	query := fmt.Sprintf(`SELECT %s FROM sync_state WHERE repo_github_id = $1`, col)
	err = sqlx.GetContext(ctx, executor(ctx, s.db), &ts, query, repoGithubID)
	if err == sql.ErrNoRows || (err == nil && !ts.Valid) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return ts.Time, nil
}

// Advance moves the watermark forward, never backward.
func (s *SyncStateStore) Advance(ctx context.Context, repoGithubID int64, kind domain.SyncKind, ts time.Time) error {
	col, err := watermarkColumn(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO sync_state (repo_github_id, %[1]s, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (repo_github_id) DO UPDATE SET
			%[1]s = GREATEST(COALESCE(sync_state.%[1]s, 'epoch'::timestamptz), EXCLUDED.%[1]s),
			updated_at = now()`, col)

	_, err = executor(ctx, s.db).ExecContext(ctx, query, repoGithubID, ts)
	return classify(err)
}
