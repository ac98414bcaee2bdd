package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"orgsync/internal/domain"
)

type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) Upsert(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (github_id, issue_github_id, author_login, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (github_id) DO UPDATE SET
			body = EXCLUDED.body,
			author_login = EXCLUDED.author_login,
			updated_at = EXCLUDED.updated_at`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		comment.GithubID,
		comment.IssueGithubID,
		authorLogin(comment.Author),
		comment.Body,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	return classify(err)
}
