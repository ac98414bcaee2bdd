package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"orgsync/internal/domain"
)

type MaintainerStore struct {
	db *sqlx.DB
}

func NewMaintainerStore(db *sqlx.DB) *MaintainerStore {
	return &MaintainerStore{db: db}
}

// Upsert writes one maintainer assertion. A lower-confidence source never
// overwrites a higher-confidence one for the same (repo, user) pair.
func (s *MaintainerStore) Upsert(ctx context.Context, a *domain.MaintainerAssertion) error {
	query := `
		INSERT INTO repo_maintainers (repo_github_id, github_user_id, source, confidence)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (repo_github_id, github_user_id) DO UPDATE SET
			source = EXCLUDED.source,
			confidence = EXCLUDED.confidence
		WHERE repo_maintainers.confidence <= EXCLUDED.confidence`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		a.RepoGithubID,
		a.User.GithubID,
		string(a.Source),
		a.Confidence,
	)
	return classify(err)
}
