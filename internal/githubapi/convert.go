package githubapi

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"

	"orgsync/internal/domain"
)

func ConvertRepository(r *github.Repository) *domain.Repository {
	var pushedAt, updatedAt *time.Time
	if r.PushedAt != nil {
		t := r.PushedAt.Time
		pushedAt = &t
	}
	if r.UpdatedAt != nil {
		t := r.UpdatedAt.Time
		updatedAt = &t
	}

	return &domain.Repository{
		GithubID:  r.GetID(),
		Owner:     r.GetOwner().GetLogin(),
		Name:      r.GetName(),
		FullName:  r.GetFullName(),
		Private:   r.GetPrivate(),
		Archived:  r.GetArchived(),
		PushedAt:  pushedAt,
		UpdatedAt: updatedAt,
	}
}

func ConvertUser(u *github.User) *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		GithubID:  u.GetID(),
		Login:     u.GetLogin(),
		AvatarURL: u.GetAvatarURL(),
		Name:      u.GetName(),
		Type:      u.GetType(),
	}
}

func ConvertIssue(is *github.Issue, repoGithubID int64) *domain.Issue {
	var closedAt *time.Time
	if is.ClosedAt != nil {
		t := is.ClosedAt.Time
		closedAt = &t
	}

	labels := make([]string, 0, len(is.Labels))
	for _, l := range is.Labels {
		labels = append(labels, l.GetName())
	}
	assignees := make([]domain.User, 0, len(is.Assignees))
	for _, a := range is.Assignees {
		assignees = append(assignees, *ConvertUser(a))
	}

	return &domain.Issue{
		GithubID:     is.GetID(),
		RepoGithubID: repoGithubID,
		Number:       is.GetNumber(),
		Title:        is.GetTitle(),
		Body:         is.GetBody(),
		State:        is.GetState(),
		CreatedAt:    is.GetCreatedAt().Time,
		UpdatedAt:    is.GetUpdatedAt().Time,
		ClosedAt:     closedAt,
		Labels:       labels,
		Assignees:    assignees,
		Author:       ConvertUser(is.User),
	}
}

func ConvertPullRequest(pr *github.PullRequest, repoGithubID int64) *domain.PullRequest {
	var closedAt, mergedAt *time.Time
	if pr.ClosedAt != nil {
		t := pr.ClosedAt.Time
		closedAt = &t
	}
	if pr.MergedAt != nil {
		t := pr.MergedAt.Time
		mergedAt = &t
	}

	labels := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}
	assignees := make([]domain.User, 0, len(pr.Assignees))
	for _, a := range pr.Assignees {
		assignees = append(assignees, *ConvertUser(a))
	}

	return &domain.PullRequest{
		GithubID:       pr.GetID(),
		RepoGithubID:   repoGithubID,
		Number:         pr.GetNumber(),
		Title:          pr.GetTitle(),
		Body:           pr.GetBody(),
		State:          pr.GetState(),
		Draft:          pr.GetDraft(),
		Additions:      pr.GetAdditions(),
		Deletions:      pr.GetDeletions(),
		ChangedFiles:   pr.GetChangedFiles(),
		Merged:         pr.GetMerged() || mergedAt != nil,
		MergedAt:       mergedAt,
		MergeCommitSHA: pr.GetMergeCommitSHA(),
		CreatedAt:      pr.GetCreatedAt().Time,
		UpdatedAt:      pr.GetUpdatedAt().Time,
		ClosedAt:       closedAt,
		Labels:         labels,
		Assignees:      assignees,
		Author:         ConvertUser(pr.User),
	}
}

func ConvertReview(rv *github.PullRequestReview, prGithubID int64) *domain.Review {
	var submittedAt *time.Time
	if rv.SubmittedAt != nil {
		t := rv.SubmittedAt.Time
		submittedAt = &t
	}
	return &domain.Review{
		PRGithubID:    prGithubID,
		ReviewerLogin: rv.GetUser().GetLogin(),
		SubmittedAt:   submittedAt,
		State:         rv.GetState(),
	}
}

func ConvertComment(cm *github.IssueComment) *domain.Comment {
	return &domain.Comment{
		GithubID:    cm.GetID(),
		IssueNumber: issueNumberFromURL(cm.GetIssueURL()),
		Body:        cm.GetBody(),
		CreatedAt:   cm.GetCreatedAt().Time,
		UpdatedAt:   cm.GetUpdatedAt().Time,
		Author:      ConvertUser(cm.User),
	}
}

// issueNumberFromURL extracts the trailing number from an API issue URL such
// as https://api.github.com/repos/acme/widgets/issues/42. Returns 0 when the
// URL does not end in a number.
func issueNumberFromURL(url string) int {
	idx := strings.LastIndex(url, "/")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(url[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
