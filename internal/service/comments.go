package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orgsync/internal/domain"
)

// CommentSyncer mirrors issue comments. The repo-scoped comment listing
// names parent issues by number only, so each comment resolves its parent
// through the issue store; a comment whose issue has not been synced yet is
// an isolated item failure, retried naturally on the next overlapping run.
// The listing also carries pull-request conversation comments. Their parent
// numbers resolve in the pull request table instead, and they are filtered
// out rather than reported as failures.
type CommentSyncer struct {
	runner
	comments   CommentStore
	issues     IssueStore
	pulls      PullRequestStore
	users      UserStore
	watermarks WatermarkStore
}

func NewCommentSyncer(
	source Source,
	repos RepositoryStore,
	comments CommentStore,
	issues IssueStore,
	pulls PullRequestStore,
	users UserStore,
	watermarks WatermarkStore,
	publisher Publisher,
	logger *slog.Logger,
) *CommentSyncer {
	return &CommentSyncer{
		runner:     runner{source: source, repos: repos, publisher: publisher, logger: logger.With("syncer", "comments")},
		comments:   comments,
		issues:     issues,
		pulls:      pulls,
		users:      users,
		watermarks: watermarks,
	}
}

func (s *CommentSyncer) Sync(ctx context.Context, org string) (*domain.RunReport, error) {
	return s.run(ctx, org, domain.KindComments, s.syncRepo)
}

func (s *CommentSyncer) syncRepo(ctx context.Context, repo domain.Repository, report *domain.RunReport) (int, error) {
	since, err := s.watermarks.Get(ctx, repo.GithubID, domain.KindComments)
	if err != nil {
		return 0, fmt.Errorf("read watermark: %w", err)
	}

	pager := s.source.Comments(repo, since)
	synced := 0
	var maxUpdated time.Time

	for {
		page, ok, err := pager.Next(ctx)
		if err != nil {
			return synced, err
		}
		if !ok {
			break
		}

		for i := range page.Items {
			comment := &page.Items[i]
			if comment.UpdatedAt.After(maxUpdated) {
				maxUpdated = comment.UpdatedAt
			}

			persisted, err := s.persistComment(ctx, repo, comment)
			if err != nil {
				report.AddError(repo.FullName, fmt.Sprintf("comment %d", comment.GithubID), err)
				continue
			}
			if persisted {
				synced++
			}
		}
	}

	if !maxUpdated.IsZero() {
		if err := s.watermarks.Advance(ctx, repo.GithubID, domain.KindComments, maxUpdated); err != nil {
			return synced, fmt.Errorf("advance watermark: %w", err)
		}
	}
	return synced, nil
}

// persistComment reports false without error for pull-request conversation
// comments; their parents live outside the issues table.
func (s *CommentSyncer) persistComment(ctx context.Context, repo domain.Repository, comment *domain.Comment) (bool, error) {
	issueID, err := s.issues.GithubIDByNumber(ctx, repo.GithubID, comment.IssueNumber)
	if errors.Is(err, domain.ErrDependencyMissing) {
		_, prErr := s.pulls.GithubIDByNumber(ctx, repo.GithubID, comment.IssueNumber)
		switch {
		case prErr == nil:
			return false, nil
		case errors.Is(prErr, domain.ErrDependencyMissing):
			return false, err
		default:
			return false, prErr
		}
	}
	if err != nil {
		return false, err
	}
	comment.IssueGithubID = issueID

	if comment.Author != nil {
		if err := s.users.Upsert(ctx, comment.Author); err != nil {
			return false, fmt.Errorf("upsert author %s: %w", comment.Author.Login, err)
		}
	}
	if err := s.comments.Upsert(ctx, comment); err != nil {
		return false, err
	}
	return true, nil
}
