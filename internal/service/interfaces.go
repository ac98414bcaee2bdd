package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"orgsync/internal/domain"
	"orgsync/internal/githubapi"
)

// Source is the fetch side of the engine: every upstream read the
// orchestrators perform goes through it.
type Source interface {
	ListRepositories(ctx context.Context, org string) ([]domain.Repository, error)
	Issues(repo domain.Repository, since time.Time) *githubapi.Pager[domain.Issue]
	Pulls(repo domain.Repository, since time.Time) *githubapi.Pager[domain.PullRequest]
	Comments(repo domain.Repository, since time.Time) *githubapi.Pager[domain.Comment]
	PullDetail(ctx context.Context, repo domain.Repository, number int) (*domain.PullRequest, error)
	PullReviews(ctx context.Context, repo domain.Repository, number int, prGithubID int64) ([]domain.Review, error)
	Collaborators(ctx context.Context, repo domain.Repository) ([]domain.PermissionEvidence, error)
	CodeownersContent(ctx context.Context, repo domain.Repository) (string, error)
	PackageMetaContent(ctx context.Context, repo domain.Repository) (string, error)
	GetUser(ctx context.Context, login string) (*domain.User, error)
}

type RepositoryStore interface {
	Upsert(ctx context.Context, repo *domain.Repository) error
}

type UserStore interface {
	Upsert(ctx context.Context, user *domain.User) error
	MarkMaintainer(ctx context.Context, githubID int64) error
}

type IssueStore interface {
	Upsert(ctx context.Context, issue *domain.Issue) error
	GithubIDByNumber(ctx context.Context, repoGithubID int64, number int) (int64, error)
}

type PullRequestStore interface {
	Upsert(ctx context.Context, pr *domain.PullRequest) error
	Get(ctx context.Context, githubID int64) (*domain.PullRequest, error)
	GithubIDByNumber(ctx context.Context, repoGithubID int64, number int) (int64, error)
	ReplaceReviews(ctx context.Context, prGithubID int64, reviews []domain.Review) error
}

type CommentStore interface {
	Upsert(ctx context.Context, comment *domain.Comment) error
}

type MaintainerStore interface {
	Upsert(ctx context.Context, assertion *domain.MaintainerAssertion) error
}

type WatermarkStore interface {
	Get(ctx context.Context, repoGithubID int64, kind domain.SyncKind) (time.Time, error)
	Advance(ctx context.Context, repoGithubID int64, kind domain.SyncKind, ts time.Time) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.SyncEvent) error
	Close() error
}
