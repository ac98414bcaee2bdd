package githubapi

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"orgsync/internal/config"
	"orgsync/internal/domain"
)

// codeownersPaths are the locations GitHub itself checks, in lookup order.
var codeownersPaths = []string{".github/CODEOWNERS", "CODEOWNERS", "docs/CODEOWNERS"}

// Client wraps the GitHub REST API. Retry and backoff live here, at the
// transport boundary; the pagers built on top never retry across pages.
type Client struct {
	gh       *github.Client
	pageSize int
	retry    config.RetryConfig
	logger   *slog.Logger
}

func New(cfg config.GitHubConfig, syncCfg config.SyncConfig, logger *slog.Logger) (*Client, error) {
	var httpClient *http.Client

	switch {
	case cfg.HasAppCredentials():
		tr, err := ghinstallation.NewKeyFromFile(
			http.DefaultTransport, cfg.AppID, cfg.InstallationID, cfg.PrivateKeyPath,
		)
		if err != nil {
			return nil, fmt.Errorf("build app transport: %w", err)
		}
		httpClient = &http.Client{Transport: tr, Timeout: syncCfg.RequestTimeout}
	case cfg.Token != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = syncCfg.RequestTimeout
	default:
		httpClient = &http.Client{Timeout: syncCfg.RequestTimeout}
	}

	return &Client{
		gh:       github.NewClient(httpClient),
		pageSize: syncCfg.PageSize,
		retry:    syncCfg.Retry,
		logger:   logger.With("component", "githubapi"),
	}, nil
}

// ListRepositories enumerates every repository of an organization, falling
// back to the user listing when the name does not resolve to an org.
func (c *Client) ListRepositories(ctx context.Context, org string) ([]domain.Repository, error) {
	repos, err := c.listOrgRepos(ctx, org)
	if err == nil {
		return repos, nil
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
		return c.listUserRepos(ctx, org)
	}
	return nil, err
}

func (c *Client) listOrgRepos(ctx context.Context, org string) ([]domain.Repository, error) {
	var all []domain.Repository
	opts := &github.RepositoryListByOrgOptions{
		Type:        "all",
		ListOptions: github.ListOptions{PerPage: c.pageSize},
	}

	for {
		var (
			repos []*github.Repository
			resp  *github.Response
		)
		err := c.withRetry(ctx, func() error {
			var err error
			repos, resp, err = c.gh.Repositories.ListByOrg(ctx, org, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("list repositories for %s: %w", org, classify(err))
		}

		for _, r := range repos {
			all = append(all, *ConvertRepository(r))
		}
		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *Client) listUserRepos(ctx context.Context, user string) ([]domain.Repository, error) {
	var all []domain.Repository
	opts := &github.RepositoryListOptions{
		Type:        "owner",
		ListOptions: github.ListOptions{PerPage: c.pageSize},
	}

	for {
		var (
			repos []*github.Repository
			resp  *github.Response
		)
		err := c.withRetry(ctx, func() error {
			var err error
			repos, resp, err = c.gh.Repositories.List(ctx, user, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("list repositories for %s: %w", user, classify(err))
		}

		for _, r := range repos {
			all = append(all, *ConvertRepository(r))
		}
		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// Issues pages through a repository's issues, newest-updated first.
// Pull-request-shaped entries are excluded; they belong to the pull stream.
func (c *Client) Issues(repo domain.Repository, since time.Time) *Pager[domain.Issue] {
	return NewPager(func(ctx context.Context, page int) (Page[domain.Issue], error) {
		opts := &github.IssueListByRepoOptions{
			State:       "all",
			Sort:        "updated",
			Direction:   "desc",
			ListOptions: github.ListOptions{Page: page, PerPage: c.pageSize},
		}
		if !since.IsZero() {
			opts.Since = since
		}

		var (
			issues []*github.Issue
			resp   *github.Response
		)
		err := c.withRetry(ctx, func() error {
			var err error
			issues, resp, err = c.gh.Issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
			return err
		})
		if err != nil {
			return Page[domain.Issue]{}, fmt.Errorf("list issues for %s: %w", repo.FullName, classify(err))
		}

		items := make([]domain.Issue, 0, len(issues))
		for _, is := range issues {
			if is.IsPullRequest() {
				continue
			}
			items = append(items, *ConvertIssue(is, repo.GithubID))
		}
		return Page[domain.Issue]{Items: items, HasMore: resp.NextPage != 0}, nil
	})
}

// Pulls pages through a repository's pull requests, newest-updated first.
// The list endpoint has no since parameter, so the boundary is applied
// client-side: once a page crosses it the sequence ends.
func (c *Client) Pulls(repo domain.Repository, since time.Time) *Pager[domain.PullRequest] {
	return NewPager(func(ctx context.Context, page int) (Page[domain.PullRequest], error) {
		opts := &github.PullRequestListOptions{
			State:       "all",
			Sort:        "updated",
			Direction:   "desc",
			ListOptions: github.ListOptions{Page: page, PerPage: c.pageSize},
		}

		var (
			pulls []*github.PullRequest
			resp  *github.Response
		)
		err := c.withRetry(ctx, func() error {
			var err error
			pulls, resp, err = c.gh.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
			return err
		})
		if err != nil {
			return Page[domain.PullRequest]{}, fmt.Errorf("list pulls for %s: %w", repo.FullName, classify(err))
		}

		hasMore := resp.NextPage != 0
		items := make([]domain.PullRequest, 0, len(pulls))
		for _, pr := range pulls {
			if !since.IsZero() && pr.GetUpdatedAt().Time.Before(since) {
				hasMore = false
				break
			}
			items = append(items, *ConvertPullRequest(pr, repo.GithubID))
		}
		return Page[domain.PullRequest]{Items: items, HasMore: hasMore}, nil
	})
}

// Comments pages through a repository's issue comments since a boundary.
// Parent issues are identified by number only; the caller resolves them.
func (c *Client) Comments(repo domain.Repository, since time.Time) *Pager[domain.Comment] {
	return NewPager(func(ctx context.Context, page int) (Page[domain.Comment], error) {
		sort := "updated"
		direction := "asc"
		opts := &github.IssueListCommentsOptions{
			Sort:        &sort,
			Direction:   &direction,
			ListOptions: github.ListOptions{Page: page, PerPage: c.pageSize},
		}
		if !since.IsZero() {
			opts.Since = &since
		}

		var (
			comments []*github.IssueComment
			resp     *github.Response
		)
		err := c.withRetry(ctx, func() error {
			var err error
			comments, resp, err = c.gh.Issues.ListComments(ctx, repo.Owner, repo.Name, 0, opts)
			return err
		})
		if err != nil {
			return Page[domain.Comment]{}, fmt.Errorf("list comments for %s: %w", repo.FullName, classify(err))
		}

		items := make([]domain.Comment, 0, len(comments))
		for _, cm := range comments {
			items = append(items, *ConvertComment(cm))
		}
		return Page[domain.Comment]{Items: items, HasMore: resp.NextPage != 0}, nil
	})
}

// PullDetail fetches the diff statistics and merge info of one pull request.
func (c *Client) PullDetail(ctx context.Context, repo domain.Repository, number int) (*domain.PullRequest, error) {
	var pr *github.PullRequest
	err := c.withRetry(ctx, func() error {
		var err error
		pr, _, err = c.gh.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get pull %s#%d: %w", repo.FullName, number, classify(err))
	}
	return ConvertPullRequest(pr, repo.GithubID), nil
}

// PullReviews fetches the full review list of one pull request.
func (c *Client) PullReviews(ctx context.Context, repo domain.Repository, number int, prGithubID int64) ([]domain.Review, error) {
	var all []domain.Review
	opts := &github.ListOptions{PerPage: c.pageSize}

	for {
		var (
			reviews []*github.PullRequestReview
			resp    *github.Response
		)
		err := c.withRetry(ctx, func() error {
			var err error
			reviews, resp, err = c.gh.PullRequests.ListReviews(ctx, repo.Owner, repo.Name, number, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("list reviews for %s#%d: %w", repo.FullName, number, classify(err))
		}

		for _, rv := range reviews {
			all = append(all, *ConvertReview(rv, prGithubID))
		}
		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// Collaborators fetches the permission-API collaborator list. A 403 here is
// common (the installation may lack admin scope) and maps to
// domain.ErrPermissionDenied so callers can degrade to file-based evidence.
func (c *Client) Collaborators(ctx context.Context, repo domain.Repository) ([]domain.PermissionEvidence, error) {
	var all []domain.PermissionEvidence
	opts := &github.ListCollaboratorsOptions{
		ListOptions: github.ListOptions{PerPage: c.pageSize},
	}

	for {
		var (
			users []*github.User
			resp  *github.Response
		)
		err := c.withRetry(ctx, func() error {
			var err error
			users, resp, err = c.gh.Repositories.ListCollaborators(ctx, repo.Owner, repo.Name, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("list collaborators for %s: %w", repo.FullName, classify(err))
		}

		for _, u := range users {
			all = append(all, domain.PermissionEvidence{
				User:       *ConvertUser(u),
				Permission: highestPermission(u.GetPermissions()),
			})
		}
		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// GetUser resolves a login to a full user, for identities that arrive from
// file-based evidence with no id attached.
func (c *Client) GetUser(ctx context.Context, login string) (*domain.User, error) {
	var u *github.User
	err := c.withRetry(ctx, func() error {
		var err error
		u, _, err = c.gh.Users.Get(ctx, login)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", login, classify(err))
	}
	return ConvertUser(u), nil
}

// FileContent fetches a file's decoded content, or "" when it is absent.
func (c *Client) FileContent(ctx context.Context, repo domain.Repository, path string) (string, error) {
	var fc *github.RepositoryContent
	err := c.withRetry(ctx, func() error {
		var err error
		fc, _, _, err = c.gh.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, nil)
		return err
	})
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", fmt.Errorf("get %s from %s: %w", path, repo.FullName, classify(err))
	}
	if fc == nil {
		return "", nil
	}

	content, err := fc.GetContent()
	if err != nil {
		// Some proxies return raw content with an empty encoding marker.
		rawContent := ""
		if fc.Content != nil {
			rawContent = *fc.Content
		}
		if raw, decErr := base64.StdEncoding.DecodeString(rawContent); decErr == nil {
			return string(raw), nil
		}
		return "", fmt.Errorf("decode %s from %s: %w", path, repo.FullName, err)
	}
	return content, nil
}

// CodeownersContent returns the first ownership-declaration file found among
// the paths GitHub checks, or "" when the repository has none.
func (c *Client) CodeownersContent(ctx context.Context, repo domain.Repository) (string, error) {
	for _, path := range codeownersPaths {
		content, err := c.FileContent(ctx, repo, path)
		if err != nil {
			return "", err
		}
		if content != "" {
			return content, nil
		}
	}
	return "", nil
}

// PackageMetaContent returns the repository's package-metadata template, or
// "" when it has none.
func (c *Client) PackageMetaContent(ctx context.Context, repo domain.Repository) (string, error) {
	return c.FileContent(ctx, repo, "package.json")
}

func (c *Client) withRetry(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retry.InitialBackoff
	bo.MaxInterval = c.retry.MaxBackoff

	policy := backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(c.retry.MaxAttempts-1)), ctx,
	)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return backoff.Permanent(err)
		}
		c.logger.Warn("request failed, retrying", "attempt", attempt, "error", err)
		return err
	}, policy)
}

func isRetryable(err error) bool {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode >= 500
	}
	return false
}

// classify maps upstream authorization failures onto the domain sentinel so
// orchestrators can distinguish them without importing go-github.
func classify(err error) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		forbidden := ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusForbidden
		if forbidden || strings.Contains(ghErr.Message, "must have push access") {
			return fmt.Errorf("%w: %v", domain.ErrPermissionDenied, err)
		}
	}
	return err
}

// highestPermission reduces go-github's permission map to the single
// strongest tier name.
func highestPermission(perms map[string]bool) string {
	for _, tier := range []string{"admin", "maintain", "push", "triage", "pull"} {
		if perms[tier] {
			return tier
		}
	}
	return ""
}
