package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"orgsync/internal/domain"
)

type PullRequestStore struct {
	db *sqlx.DB
}

func NewPullRequestStore(db *sqlx.DB) *PullRequestStore {
	return &PullRequestStore{db: db}
}

func (s *PullRequestStore) Upsert(ctx context.Context, pr *domain.PullRequest) error {
	labels, err := json.Marshal(stringsOrEmpty(pr.Labels))
	if err != nil {
		return fmt.Errorf("%w: marshal labels: %v", domain.ErrInvalidEntity, err)
	}
	assignees, err := json.Marshal(loginsOf(pr.Assignees))
	if err != nil {
		return fmt.Errorf("%w: marshal assignees: %v", domain.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO pull_requests (
			github_id, repo_github_id, number, title, body, state, draft,
			additions, deletions, changed_files, merged, merged_at, merge_commit_sha,
			labels, assignees, author_login, created_at, updated_at, closed_at, synced_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, now())
		ON CONFLICT (github_id) DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body,
			state = EXCLUDED.state,
			draft = EXCLUDED.draft,
			additions = EXCLUDED.additions,
			deletions = EXCLUDED.deletions,
			changed_files = EXCLUDED.changed_files,
			merged = EXCLUDED.merged,
			merged_at = EXCLUDED.merged_at,
			merge_commit_sha = EXCLUDED.merge_commit_sha,
			labels = EXCLUDED.labels,
			assignees = EXCLUDED.assignees,
			author_login = EXCLUDED.author_login,
			updated_at = EXCLUDED.updated_at,
			closed_at = EXCLUDED.closed_at,
			synced_at = now()`

	_, err = executor(ctx, s.db).ExecContext(ctx, query,
		pr.GithubID,
		pr.RepoGithubID,
		pr.Number,
		pr.Title,
		pr.Body,
		pr.State,
		pr.Draft,
		pr.Additions,
		pr.Deletions,
		pr.ChangedFiles,
		pr.Merged,
		pr.MergedAt,
		pr.MergeCommitSHA,
		labels,
		assignees,
		authorLogin(pr.Author),
		pr.CreatedAt,
		pr.UpdatedAt,
		pr.ClosedAt,
	)
	return classify(err)
}

// Get returns the stored pull request, or nil when it has not been synced.
// Used to fall back to prior diff stats when the detail fetch fails.
func (s *PullRequestStore) Get(ctx context.Context, githubID int64) (*domain.PullRequest, error) {
	row := struct {
		GithubID       int64          `db:"github_id"`
		RepoGithubID   int64          `db:"repo_github_id"`
		Number         int            `db:"number"`
		Additions      int            `db:"additions"`
		Deletions      int            `db:"deletions"`
		ChangedFiles   int            `db:"changed_files"`
		Merged         bool           `db:"merged"`
		MergeCommitSHA sql.NullString `db:"merge_commit_sha"`
	}{}

	err := sqlx.GetContext(ctx, executor(ctx, s.db), &row, `
		SELECT github_id, repo_github_id, number, additions, deletions, changed_files, merged, merge_commit_sha
		FROM pull_requests WHERE github_id = $1`, githubID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.PullRequest{
		GithubID:       row.GithubID,
		RepoGithubID:   row.RepoGithubID,
		Number:         row.Number,
		Additions:      row.Additions,
		Deletions:      row.Deletions,
		ChangedFiles:   row.ChangedFiles,
		Merged:         row.Merged,
		MergeCommitSHA: row.MergeCommitSHA.String,
	}, nil
}

// GithubIDByNumber resolves a pull request number to its external id.
// Returns ErrDependencyMissing when the pull request has not been synced yet.
func (s *PullRequestStore) GithubIDByNumber(ctx context.Context, repoGithubID int64, number int) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &id,
		`SELECT github_id FROM pull_requests WHERE repo_github_id = $1 AND number = $2`,
		repoGithubID, number,
	)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: pull #%d not synced", domain.ErrDependencyMissing, number)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ReplaceReviews swaps a pull request's review set wholesale. The upstream
// source exposes no stable per-review identity, so partial patching is not
// possible. Must run inside the transaction manager: a reader may never
// observe the PR with an empty review set between delete and insert.
func (s *PullRequestStore) ReplaceReviews(ctx context.Context, prGithubID int64, reviews []domain.Review) error {
	ex := executor(ctx, s.db)

	if _, err := ex.ExecContext(ctx,
		`DELETE FROM pull_request_reviews WHERE pr_github_id = $1`, prGithubID,
	); err != nil {
		return classify(err)
	}

	if len(reviews) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO pull_request_reviews (pr_github_id, reviewer_login, submitted_at, state) VALUES `)
	args := make([]interface{}, 0, len(reviews)*4)
	for i, rv := range reviews {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, prGithubID, rv.ReviewerLogin, rv.SubmittedAt, rv.State)
	}

	_, err := ex.ExecContext(ctx, sb.String(), args...)
	return classify(err)
}
