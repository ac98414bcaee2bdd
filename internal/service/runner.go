package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orgsync/internal/domain"
)

// runner is the shared per-repository loop: enumerate, upsert the repository
// row, hand off to the family-specific sync, and fold the outcome into the
// run report. Repositories are processed strictly sequentially to bound API
// pressure. A repository-level failure skips the repository and leaves its
// watermark untouched; item-level failures are already in the report by the
// time syncRepo returns.
type runner struct {
	source    Source
	repos     RepositoryStore
	publisher Publisher
	logger    *slog.Logger
}

// syncRepoFunc processes one repository and returns the number of items
// synced. Item failures go straight into the report; a returned error is a
// repository-level failure.
type syncRepoFunc func(ctx context.Context, repo domain.Repository, report *domain.RunReport) (int, error)

func (r *runner) run(ctx context.Context, org string, kind domain.SyncKind, syncRepo syncRepoFunc) (*domain.RunReport, error) {
	start := time.Now()
	report := &domain.RunReport{Kind: kind}

	repositories, err := r.source.ListRepositories(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("list repositories for %s: %w", org, err)
	}

	r.logger.Info("starting sync", "kind", kind, "org", org, "repos", len(repositories))

	for _, repo := range repositories {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		result := domain.RepoResult{Repo: repo.FullName}
		errsBefore := len(report.Errors)

		if err := r.repos.Upsert(ctx, &repo); err != nil {
			report.AddError(repo.FullName, "", fmt.Errorf("upsert repository: %w", err))
			result.Status = domain.RepoSkipped
		} else if synced, err := syncRepo(ctx, repo, report); err != nil {
			report.AddError(repo.FullName, "", err)
			result.Status = domain.RepoSkipped
			result.Synced = synced
		} else {
			result.Status = domain.RepoDone
			result.Synced = synced
		}

		result.Errors = len(report.Errors) - errsBefore

		if result.Status == domain.RepoSkipped {
			report.ReposSkipped++
			r.logger.Warn("repository skipped", "repo", repo.FullName, "errors", result.Errors)
		} else {
			report.ReposProcessed++
			report.ItemsSynced += result.Synced
			r.logger.Info("repository synced",
				"repo", repo.FullName,
				"synced", result.Synced,
				"errors", result.Errors,
			)
		}

		report.Repos = append(report.Repos, result)
		r.publish(ctx, kind, result)
	}

	report.Duration = time.Since(start)
	r.logger.Info("sync completed",
		"kind", kind,
		"processed", report.ReposProcessed,
		"skipped", report.ReposSkipped,
		"synced", report.ItemsSynced,
		"errors", len(report.Errors),
		"duration", report.Duration,
	)
	return report, nil
}

func (r *runner) publish(ctx context.Context, kind domain.SyncKind, result domain.RepoResult) {
	if r.publisher == nil {
		return
	}
	event := domain.SyncEvent{
		Kind:      kind,
		Repo:      result.Repo,
		Status:    result.Status,
		Synced:    result.Synced,
		Errors:    result.Errors,
		Timestamp: time.Now().UTC(),
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.Warn("publish sync event", "repo", result.Repo, "error", err)
	}
}
