package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"orgsync/internal/domain"
)

type IssueStore struct {
	db *sqlx.DB
}

func NewIssueStore(db *sqlx.DB) *IssueStore {
	return &IssueStore{db: db}
}

func (s *IssueStore) Upsert(ctx context.Context, issue *domain.Issue) error {
	labels, err := json.Marshal(stringsOrEmpty(issue.Labels))
	if err != nil {
		return fmt.Errorf("%w: marshal labels: %v", domain.ErrInvalidEntity, err)
	}
	assignees, err := json.Marshal(loginsOf(issue.Assignees))
	if err != nil {
		return fmt.Errorf("%w: marshal assignees: %v", domain.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO issues (
			github_id, repo_github_id, number, title, body, state,
			created_at, updated_at, closed_at, labels, assignees, author_login, synced_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
		ON CONFLICT (github_id) DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			state = EXCLUDED.state,
			updated_at = EXCLUDED.updated_at,
			closed_at = EXCLUDED.closed_at,
			labels = EXCLUDED.labels,
			assignees = EXCLUDED.assignees,
			author_login = EXCLUDED.author_login,
			synced_at = now()`

	_, err = executor(ctx, s.db).ExecContext(ctx, query,
		issue.GithubID,
		issue.RepoGithubID,
		issue.Number,
		issue.Title,
		issue.Body,
		issue.State,
		issue.CreatedAt,
		issue.UpdatedAt,
		issue.ClosedAt,
		labels,
		assignees,
		authorLogin(issue.Author),
	)
	return classify(err)
}

// GithubIDByNumber resolves an issue number to its external id, for comment
// parent resolution. Returns ErrDependencyMissing when the issue has not
// been synced yet.
func (s *IssueStore) GithubIDByNumber(ctx context.Context, repoGithubID int64, number int) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &id,
		`SELECT github_id FROM issues WHERE repo_github_id = $1 AND number = $2`,
		repoGithubID, number,
	)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: issue #%d not synced", domain.ErrDependencyMissing, number)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func authorLogin(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.Login
}

// stringsOrEmpty keeps JSON columns as [] instead of null.
func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func loginsOf(users []domain.User) []string {
	logins := make([]string, 0, len(users))
	for _, u := range users {
		logins = append(logins, u.Login)
	}
	return logins
}
