package domain

import (
	"fmt"
	"time"
)

// SyncKind identifies the entity family a watermark belongs to.
type SyncKind string

const (
	KindIssues      SyncKind = "issues"
	KindPulls       SyncKind = "pulls"
	KindComments    SyncKind = "comments"
	KindMaintainers SyncKind = "maintainers"
)

// RepoStatus is the terminal state a repository reached during a run.
type RepoStatus string

const (
	RepoDone    RepoStatus = "done"
	RepoSkipped RepoStatus = "skipped"
)

// SyncError records one isolated failure with enough context to retry by hand.
type SyncError struct {
	Repo string
	Item string // issue/PR number or login, empty for repo-level failures
	Err  error
}

func (e SyncError) Error() string {
	if e.Item == "" {
		return fmt.Sprintf("%s: %v", e.Repo, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Repo, e.Item, e.Err)
}

func (e SyncError) Unwrap() error { return e.Err }

// RepoResult summarizes one repository within a run.
type RepoResult struct {
	Repo   string
	Status RepoStatus
	Synced int
	Errors int
}

// RunReport aggregates a whole sync run. Errors holds every repository-level
// and item-level failure; none are thrown past the orchestrator.
type RunReport struct {
	Kind           SyncKind
	ReposProcessed int
	ReposSkipped   int
	ItemsSynced    int
	Repos          []RepoResult
	Errors         []SyncError
	Duration       time.Duration
}

func (r *RunReport) AddError(repo, item string, err error) {
	r.Errors = append(r.Errors, SyncError{Repo: repo, Item: item, Err: err})
}

// SyncEvent is published after a repository finishes syncing.
type SyncEvent struct {
	Kind      SyncKind   `json:"kind"`
	Repo      string     `json:"repo"`
	Status    RepoStatus `json:"status"`
	Synced    int        `json:"synced"`
	Errors    int        `json:"errors"`
	Timestamp time.Time  `json:"timestamp"`
}
