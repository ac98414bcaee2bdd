package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orgsync/internal/domain"
)

// IssueSyncer mirrors every issue of an organization's repositories.
type IssueSyncer struct {
	runner
	issues     IssueStore
	users      UserStore
	watermarks WatermarkStore
}

func NewIssueSyncer(
	source Source,
	repos RepositoryStore,
	issues IssueStore,
	users UserStore,
	watermarks WatermarkStore,
	publisher Publisher,
	logger *slog.Logger,
) *IssueSyncer {
	return &IssueSyncer{
		runner:     runner{source: source, repos: repos, publisher: publisher, logger: logger.With("syncer", "issues")},
		issues:     issues,
		users:      users,
		watermarks: watermarks,
	}
}

func (s *IssueSyncer) Sync(ctx context.Context, org string) (*domain.RunReport, error) {
	return s.run(ctx, org, domain.KindIssues, s.syncRepo)
}

func (s *IssueSyncer) syncRepo(ctx context.Context, repo domain.Repository, report *domain.RunReport) (int, error) {
	since, err := s.watermarks.Get(ctx, repo.GithubID, domain.KindIssues)
	if err != nil {
		return 0, fmt.Errorf("read watermark: %w", err)
	}

	pager := s.source.Issues(repo, since)
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
			issue := &page.Items[i]
			// The boundary tracks fetch progress, not persistence success:
			// a minority of bad records must not stall incremental sync.
			if issue.UpdatedAt.After(maxUpdated) {
				maxUpdated = issue.UpdatedAt
			}

			if err := s.persistIssue(ctx, issue); err != nil {
				report.AddError(repo.FullName, fmt.Sprintf("issue #%d", issue.Number), err)
				continue
			}
			synced++
		}
	}

	if !maxUpdated.IsZero() {
		if err := s.watermarks.Advance(ctx, repo.GithubID, domain.KindIssues, maxUpdated); err != nil {
			return synced, fmt.Errorf("advance watermark: %w", err)
		}
	}
	return synced, nil
}

// persistIssue upserts parents before the issue itself so every foreign
// reference resolves.
func (s *IssueSyncer) persistIssue(ctx context.Context, issue *domain.Issue) error {
	if issue.Author != nil {
		if err := s.users.Upsert(ctx, issue.Author); err != nil {
			return fmt.Errorf("upsert author %s: %w", issue.Author.Login, err)
		}
	}
	for i := range issue.Assignees {
		if err := s.users.Upsert(ctx, &issue.Assignees[i]); err != nil {
			return fmt.Errorf("upsert assignee %s: %w", issue.Assignees[i].Login, err)
		}
	}
	return s.issues.Upsert(ctx, issue)
}
