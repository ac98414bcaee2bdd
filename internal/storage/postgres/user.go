package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"orgsync/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// Upsert writes a user referenced by any other entity. The maintainer flag is
// monotonic: a later upsert without it never clears an earlier mark.
func (s *UserStore) Upsert(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (github_id, login, avatar_url, name, type, is_maintainer)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (github_id) DO UPDATE SET
			login = EXCLUDED.login,
			avatar_url = EXCLUDED.avatar_url,
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			is_maintainer = users.is_maintainer OR EXCLUDED.is_maintainer`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		user.GithubID,
		user.Login,
		user.AvatarURL,
		user.Name,
		user.Type,
		user.IsMaintainer,
	)
	return classify(err)
}

// MarkMaintainer sets the global maintainer flag for a user.
func (s *UserStore) MarkMaintainer(ctx context.Context, githubID int64) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		`UPDATE users SET is_maintainer = TRUE WHERE github_id = $1`, githubID)
	return classify(err)
}
