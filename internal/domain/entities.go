package domain

import "time"

type Repository struct {
	GithubID  int64      `db:"github_id"`
	Owner     string     `db:"owner"`
	Name      string     `db:"name"`
	FullName  string     `db:"full_name"`
	Private   bool       `db:"private"`
	Archived  bool       `db:"archived"`
	PushedAt  *time.Time `db:"pushed_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

type User struct {
	GithubID     int64  `db:"github_id"`
	Login        string `db:"login"`
	AvatarURL    string `db:"avatar_url"`
	Name         string `db:"name"`
	Type         string `db:"type"` // "User", "Organization" or "Bot"
	IsMaintainer bool   `db:"is_maintainer"`
}

type Issue struct {
	GithubID     int64
	RepoGithubID int64
	Number       int
	Title        string
	Body         string
	State        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ClosedAt     *time.Time
	Labels       []string
	Assignees    []User
	Author       *User
}

type PullRequest struct {
	GithubID       int64
	RepoGithubID   int64
	Number         int
	Title          string
	Body           string
	State          string
	Draft          bool
	Additions      int
	Deletions      int
	ChangedFiles   int
	Merged         bool
	MergedAt       *time.Time
	MergeCommitSHA string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ClosedAt       *time.Time
	Labels         []string
	Assignees      []User
	Author         *User
}

// Review carries no upstream id of its own; reviews are identified by
// (PR, reviewer, submission time) and replaced wholesale per pull request.
type Review struct {
	PRGithubID    int64      `db:"pr_github_id"`
	ReviewerLogin string     `db:"reviewer_login"`
	SubmittedAt   *time.Time `db:"submitted_at"`
	State         string     `db:"state"`
}

type Comment struct {
	GithubID      int64
	IssueGithubID int64
	// IssueNumber comes from the repo-scoped comment listing, which names
	// the parent by number only; the orchestrator resolves it to an id.
	IssueNumber int
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Author      *User
}
