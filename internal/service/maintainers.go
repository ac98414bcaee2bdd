package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orgsync/internal/domain"
	"orgsync/internal/maintainer"
)

// MaintainerSyncer scans each repository's maintainer evidence and persists
// the aggregated assertion set. A denied collaborator listing degrades to
// file-based evidence instead of skipping the repository.
type MaintainerSyncer struct {
	runner
	maintainers MaintainerStore
	users       UserStore
	watermarks  WatermarkStore

	// marked tracks identities already flagged in this run so the global
	// maintainer mark is not re-counted across repositories.
	marked map[string]bool
}

func NewMaintainerSyncer(
	source Source,
	repos RepositoryStore,
	maintainers MaintainerStore,
	users UserStore,
	watermarks WatermarkStore,
	publisher Publisher,
	logger *slog.Logger,
) *MaintainerSyncer {
	return &MaintainerSyncer{
		runner:      runner{source: source, repos: repos, publisher: publisher, logger: logger.With("syncer", "maintainers")},
		maintainers: maintainers,
		users:       users,
		watermarks:  watermarks,
		marked:      make(map[string]bool),
	}
}

func (s *MaintainerSyncer) Sync(ctx context.Context, org string) (*domain.RunReport, error) {
	return s.run(ctx, org, domain.KindMaintainers, s.syncRepo)
}

func (s *MaintainerSyncer) syncRepo(ctx context.Context, repo domain.Repository, report *domain.RunReport) (int, error) {
	scanStart := time.Now().UTC()

	bundle, err := s.gatherEvidence(ctx, repo)
	if err != nil {
		return 0, err
	}

	assertions := maintainer.Aggregate(repo.GithubID, bundle)
	synced := 0

	for i := range assertions {
		assertion := &assertions[i]
		if err := s.persistAssertion(ctx, assertion); err != nil {
			report.AddError(repo.FullName, assertion.User.Login, err)
			continue
		}
		synced++
	}

	if err := s.watermarks.Advance(ctx, repo.GithubID, domain.KindMaintainers, scanStart); err != nil {
		return synced, fmt.Errorf("advance watermark: %w", err)
	}
	return synced, nil
}

func (s *MaintainerSyncer) gatherEvidence(ctx context.Context, repo domain.Repository) (domain.EvidenceBundle, error) {
	var bundle domain.EvidenceBundle

	collaborators, err := s.source.Collaborators(ctx, repo)
	switch {
	case err == nil:
		bundle.Collaborators = collaborators
	case errors.Is(err, domain.ErrPermissionDenied):
		// Common when the installation lacks admin scope; file-based
		// detection still applies.
		s.logger.Warn("collaborator listing denied, using file evidence only",
			"repo", repo.FullName)
	default:
		return bundle, err
	}

	if content, err := s.source.CodeownersContent(ctx, repo); err != nil {
		s.logger.Warn("codeowners fetch failed", "repo", repo.FullName, "error", err)
	} else if content != "" {
		bundle.Codeowners = maintainer.ParseCodeowners(content)
	}

	if content, err := s.source.PackageMetaContent(ctx, repo); err != nil {
		s.logger.Warn("package metadata fetch failed", "repo", repo.FullName, "error", err)
	} else if content != "" {
		bundle.PackageMeta = maintainer.ParsePackageMeta(content)
	}

	return bundle, nil
}

func (s *MaintainerSyncer) persistAssertion(ctx context.Context, assertion *domain.MaintainerAssertion) error {
	if assertion.User.GithubID == 0 {
		resolved, err := s.source.GetUser(ctx, assertion.User.Login)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", assertion.User.Login, err)
		}
		assertion.User = *resolved
	}

	key := strings.ToLower(assertion.User.Login)
	if !s.marked[key] {
		if err := s.users.Upsert(ctx, &assertion.User); err != nil {
			return fmt.Errorf("upsert user %s: %w", assertion.User.Login, err)
		}
		if err := s.users.MarkMaintainer(ctx, assertion.User.GithubID); err != nil {
			return fmt.Errorf("mark maintainer %s: %w", assertion.User.Login, err)
		}
		s.marked[key] = true
	}

	return s.maintainers.Upsert(ctx, assertion)
}
