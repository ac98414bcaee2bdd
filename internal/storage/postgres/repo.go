package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"orgsync/internal/domain"
)

type RepositoryStore struct {
	db *sqlx.DB
}

func NewRepositoryStore(db *sqlx.DB) *RepositoryStore {
	return &RepositoryStore{db: db}
}

func (s *RepositoryStore) Upsert(ctx context.Context, repo *domain.Repository) error {
	query := `
		INSERT INTO repos (github_id, owner, name, full_name, private, archived, pushed_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (github_id) DO UPDATE SET
			owner = EXCLUDED.owner,
			name = EXCLUDED.name,
			full_name = EXCLUDED.full_name,
			private = EXCLUDED.private,
			archived = EXCLUDED.archived,
			pushed_at = EXCLUDED.pushed_at,
			updated_at = EXCLUDED.updated_at`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		repo.GithubID,
		repo.Owner,
		repo.Name,
		repo.FullName,
		repo.Private,
		repo.Archived,
		repo.PushedAt,
		repo.UpdatedAt,
	)
	return classify(err)
}
