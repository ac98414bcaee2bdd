package domain

// MaintainerSource tags the detector that produced a maintainer assertion.
type MaintainerSource string

const (
	SourcePermissions MaintainerSource = "permissions"
	SourceCodeowners  MaintainerSource = "codeowners"
	SourcePackageMeta MaintainerSource = "package_metadata"
)

// PermissionEvidence is one collaborator entry from the permission API.
type PermissionEvidence struct {
	User       User
	Permission string // "admin", "maintain", "push", "triage" or "pull"
}

// EvidenceBundle is everything the detectors could gather for one repository.
// Any of the three signals may be empty when its fetch failed or the file
// does not exist.
type EvidenceBundle struct {
	Collaborators []PermissionEvidence
	Codeowners    []string // logins named in an ownership-declaration file
	PackageMeta   []string // logins named in a package-metadata template
}

// MaintainerAssertion claims that a user maintains a repository, tagged with
// the best source that named them and every source that agreed.
type MaintainerAssertion struct {
	RepoGithubID int64
	User         User
	Source       MaintainerSource
	Confidence   int
	AllSources   []MaintainerSource
}
