package githubapi

import (
	"testing"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertIssue(t *testing.T) {
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	is := &github.Issue{
		ID:        github.Int64(100),
		Number:    github.Int(5),
		Title:     github.String("flaky test"),
		Body:      github.String("fails on arm64"),
		State:     github.String("open"),
		CreatedAt: &github.Timestamp{Time: created},
		UpdatedAt: &github.Timestamp{Time: updated},
		Labels: []*github.Label{
			{Name: github.String("bug")},
			{Name: github.String("ci")},
		},
		Assignees: []*github.User{
			{ID: github.Int64(7), Login: github.String("alice")},
		},
		User: &github.User{ID: github.Int64(8), Login: github.String("bob"), Type: github.String("User")},
	}

	got := ConvertIssue(is, 42)

	assert.Equal(t, int64(100), got.GithubID)
	assert.Equal(t, int64(42), got.RepoGithubID)
	assert.Equal(t, 5, got.Number)
	assert.Equal(t, []string{"bug", "ci"}, got.Labels)
	require.Len(t, got.Assignees, 1)
	assert.Equal(t, "alice", got.Assignees[0].Login)
	require.NotNil(t, got.Author)
	assert.Equal(t, "bob", got.Author.Login)
	assert.Nil(t, got.ClosedAt)
	assert.Equal(t, updated, got.UpdatedAt)
}

func TestConvertPullRequest_MergedInferredFromMergedAt(t *testing.T) {
	// List payloads omit the merged flag; merged_at is authoritative there.
	mergedAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	pr := &github.PullRequest{
		ID:       github.Int64(500),
		Number:   github.Int(42),
		State:    github.String("closed"),
		MergedAt: &github.Timestamp{Time: mergedAt},
	}

	got := ConvertPullRequest(pr, 1)

	assert.True(t, got.Merged)
	require.NotNil(t, got.MergedAt)
	assert.Equal(t, mergedAt, *got.MergedAt)
}

func TestConvertComment_ParentNumberFromURL(t *testing.T) {
	cm := &github.IssueComment{
		ID:       github.Int64(900),
		Body:     github.String("lgtm"),
		IssueURL: github.String("https://api.github.com/repos/acme/widgets/issues/42"),
	}

	got := ConvertComment(cm)

	assert.Equal(t, int64(900), got.GithubID)
	assert.Equal(t, 42, got.IssueNumber)
}

func TestIssueNumberFromURL(t *testing.T) {
	assert.Equal(t, 42, issueNumberFromURL("https://api.github.com/repos/a/b/issues/42"))
	assert.Equal(t, 0, issueNumberFromURL("https://api.github.com/repos/a/b/issues/latest"))
	assert.Equal(t, 0, issueNumberFromURL(""))
}

func TestConvertUser_Nil(t *testing.T) {
	assert.Nil(t, ConvertUser(nil))
}
