package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"orgsync/internal/domain"
)

// PullRequestSyncer mirrors pull requests with their diff statistics and
// review sets.
type PullRequestSyncer struct {
	runner
	pulls      PullRequestStore
	users      UserStore
	watermarks WatermarkStore
	tx         TransactionManager
}

func NewPullRequestSyncer(
	source Source,
	repos RepositoryStore,
	pulls PullRequestStore,
	users UserStore,
	watermarks WatermarkStore,
	tx TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *PullRequestSyncer {
	return &PullRequestSyncer{
		runner:     runner{source: source, repos: repos, publisher: publisher, logger: logger.With("syncer", "pulls")},
		pulls:      pulls,
		users:      users,
		watermarks: watermarks,
		tx:         tx,
	}
}

func (s *PullRequestSyncer) Sync(ctx context.Context, org string) (*domain.RunReport, error) {
	return s.run(ctx, org, domain.KindPulls, s.syncRepo)
}

func (s *PullRequestSyncer) syncRepo(ctx context.Context, repo domain.Repository, report *domain.RunReport) (int, error) {
	since, err := s.watermarks.Get(ctx, repo.GithubID, domain.KindPulls)
	if err != nil {
		return 0, fmt.Errorf("read watermark: %w", err)
	}

	pager := s.source.Pulls(repo, since)
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
			pr := &page.Items[i]
			if pr.UpdatedAt.After(maxUpdated) {
				maxUpdated = pr.UpdatedAt
			}

			if err := s.persistPull(ctx, repo, pr); err != nil {
				report.AddError(repo.FullName, fmt.Sprintf("pull #%d", pr.Number), err)
				continue
			}
			synced++
		}
	}

	if !maxUpdated.IsZero() {
		if err := s.watermarks.Advance(ctx, repo.GithubID, domain.KindPulls, maxUpdated); err != nil {
			return synced, fmt.Errorf("advance watermark: %w", err)
		}
	}
	return synced, nil
}

// persistPull resolves the two independent sub-fetches (diff statistics and
// review list) concurrently, joins, then upserts. Either sub-fetch may fail
// without failing the pull request: stats fall back to the previously stored
// values, reviews to an empty set.
func (s *PullRequestSyncer) persistPull(ctx context.Context, repo domain.Repository, pr *domain.PullRequest) error {
	var (
		detail     *domain.PullRequest
		reviews    []domain.Review
		detailErr  error
		reviewsErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		detail, detailErr = s.source.PullDetail(gctx, repo, pr.Number)
		return nil
	})
	g.Go(func() error {
		reviews, reviewsErr = s.source.PullReviews(gctx, repo, pr.Number, pr.GithubID)
		return nil
	})
	_ = g.Wait()

	switch {
	case detailErr == nil:
		pr.Additions = detail.Additions
		pr.Deletions = detail.Deletions
		pr.ChangedFiles = detail.ChangedFiles
		pr.Merged = detail.Merged
		pr.MergedAt = detail.MergedAt
		pr.MergeCommitSHA = detail.MergeCommitSHA
	default:
		s.logger.Warn("pull detail fetch failed, keeping prior stats",
			"repo", repo.FullName, "number", pr.Number, "error", detailErr)
		prior, err := s.pulls.Get(ctx, pr.GithubID)
		if err != nil {
			return fmt.Errorf("load prior stats: %w", err)
		}
		if prior != nil {
			pr.Additions = prior.Additions
			pr.Deletions = prior.Deletions
			pr.ChangedFiles = prior.ChangedFiles
		}
	}

	if reviewsErr != nil {
		s.logger.Warn("review fetch failed, replacing with empty set",
			"repo", repo.FullName, "number", pr.Number, "error", reviewsErr)
		reviews = nil
	}

	if pr.Author != nil {
		if err := s.users.Upsert(ctx, pr.Author); err != nil {
			return fmt.Errorf("upsert author %s: %w", pr.Author.Login, err)
		}
	}
	for i := range pr.Assignees {
		if err := s.users.Upsert(ctx, &pr.Assignees[i]); err != nil {
			return fmt.Errorf("upsert assignee %s: %w", pr.Assignees[i].Login, err)
		}
	}

	// Delete-then-insert of the review set must be invisible to readers, so
	// the upsert and the replacement share one transaction.
	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.pulls.Upsert(txCtx, pr); err != nil {
			return fmt.Errorf("upsert pull: %w", err)
		}
		if err := s.pulls.ReplaceReviews(txCtx, pr.GithubID, reviews); err != nil {
			return fmt.Errorf("replace reviews: %w", err)
		}
		return nil
	})
}
