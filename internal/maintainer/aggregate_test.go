package maintainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsync/internal/domain"
)

func TestAggregate_PermissionTiers(t *testing.T) {
	bundle := domain.EvidenceBundle{
		Collaborators: []domain.PermissionEvidence{
			{User: domain.User{GithubID: 1, Login: "admin-user"}, Permission: "admin"},
			{User: domain.User{GithubID: 2, Login: "maintain-user"}, Permission: "maintain"},
			{User: domain.User{GithubID: 3, Login: "push-user"}, Permission: "push"},
			{User: domain.User{GithubID: 4, Login: "triage-user"}, Permission: "triage"},
			{User: domain.User{GithubID: 5, Login: "read-user"}, Permission: "pull"},
		},
	}

	got := Aggregate(42, bundle)

	require.Len(t, got, 3)
	assert.Equal(t, "admin-user", got[0].User.Login)
	assert.Equal(t, ConfidenceAdmin, got[0].Confidence)
	assert.Equal(t, "maintain-user", got[1].User.Login)
	assert.Equal(t, ConfidenceMaintain, got[1].Confidence)
	assert.Equal(t, "push-user", got[2].User.Login)
	assert.Equal(t, ConfidenceWrite, got[2].Confidence)

	for _, a := range got {
		assert.Equal(t, int64(42), a.RepoGithubID)
		assert.Equal(t, domain.SourcePermissions, a.Source)
	}
}

func TestAggregate_BotsExcluded(t *testing.T) {
	bundle := domain.EvidenceBundle{
		Collaborators: []domain.PermissionEvidence{
			{User: domain.User{GithubID: 1, Login: "dependabot[bot]"}, Permission: "admin"},
			{User: domain.User{GithubID: 2, Login: "ci-runner", Type: "Bot"}, Permission: "admin"},
			{User: domain.User{GithubID: 3, Login: "alice"}, Permission: "admin"},
		},
		Codeowners: []string{"renovate[bot]", "bob"},
	}

	got := Aggregate(1, bundle)

	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].User.Login)
	assert.Equal(t, "bob", got[1].User.Login)
}

func TestAggregate_PermissionClaimsIdentityFirst(t *testing.T) {
	bundle := domain.EvidenceBundle{
		Collaborators: []domain.PermissionEvidence{
			{User: domain.User{GithubID: 3, Login: "Alice"}, Permission: "push"},
		},
		Codeowners:  []string{"alice", "carol"},
		PackageMeta: []string{"alice"},
	}

	got := Aggregate(1, bundle)

	require.Len(t, got, 2)

	alice := got[0]
	assert.Equal(t, int64(3), alice.User.GithubID)
	assert.Equal(t, domain.SourcePermissions, alice.Source)
	assert.Equal(t, ConfidenceWrite, alice.Confidence)
	assert.ElementsMatch(t,
		[]domain.MaintainerSource{domain.SourcePermissions, domain.SourceCodeowners, domain.SourcePackageMeta},
		alice.AllSources,
	)

	carol := got[1]
	assert.Equal(t, domain.SourceCodeowners, carol.Source)
	assert.Equal(t, ConfidenceCodeowners, carol.Confidence)
	assert.Equal(t, []domain.MaintainerSource{domain.SourceCodeowners}, carol.AllSources)
}

func TestAggregate_FileSourcesRankByConfidence(t *testing.T) {
	bundle := domain.EvidenceBundle{
		Codeowners:  []string{"shared"},
		PackageMeta: []string{"shared", "meta-only"},
	}

	got := Aggregate(1, bundle)

	require.Len(t, got, 2)
	assert.Equal(t, "meta-only", got[0].User.Login)
	assert.Equal(t, ConfidencePackageMeta, got[0].Confidence)

	shared := got[1]
	assert.Equal(t, domain.SourceCodeowners, shared.Source)
	assert.Equal(t, ConfidenceCodeowners, shared.Confidence)
	assert.ElementsMatch(t,
		[]domain.MaintainerSource{domain.SourceCodeowners, domain.SourcePackageMeta},
		shared.AllSources,
	)
}

func TestAggregate_DeterministicAcrossInputOrder(t *testing.T) {
	forward := domain.EvidenceBundle{
		Collaborators: []domain.PermissionEvidence{
			{User: domain.User{GithubID: 1, Login: "zed"}, Permission: "admin"},
			{User: domain.User{GithubID: 2, Login: "amy"}, Permission: "push"},
		},
		Codeowners: []string{"mia", "amy"},
	}
	reversed := domain.EvidenceBundle{
		Collaborators: []domain.PermissionEvidence{
			{User: domain.User{GithubID: 2, Login: "amy"}, Permission: "push"},
			{User: domain.User{GithubID: 1, Login: "zed"}, Permission: "admin"},
		},
		Codeowners: []string{"amy", "mia"},
	}

	assert.Equal(t, Aggregate(1, forward), Aggregate(1, reversed))
}

func TestAggregate_EmptyBundle(t *testing.T) {
	assert.Empty(t, Aggregate(1, domain.EvidenceBundle{}))
}
