// Package maintainer reconciles maintainer evidence from independent
// detectors into a confidence-ranked assertion set.
package maintainer

import (
	"sort"
	"strings"

	"orgsync/internal/domain"
)

// Confidence per source. Permission-API evidence always outranks file-based
// evidence; the ordering here is a product policy, not a derived fact.
const (
	ConfidenceAdmin       = 100
	ConfidenceMaintain    = 95
	ConfidenceWrite       = 90
	ConfidenceCodeowners  = 70
	ConfidencePackageMeta = 50
)

type candidate struct {
	user       domain.User
	source     domain.MaintainerSource
	confidence int
	sources    map[domain.MaintainerSource]bool
}

// Aggregate folds an evidence bundle into a de-duplicated assertion set.
// Automation accounts are excluded, permission evidence requires at least
// write tier, and file-based sources contribute a user only when permission
// evidence did not already claim that identity. Output is sorted by login so
// a fixed bundle always yields an identical result.
func Aggregate(repoGithubID int64, bundle domain.EvidenceBundle) []domain.MaintainerAssertion {
	byLogin := make(map[string]*candidate)

	for _, ev := range bundle.Collaborators {
		if isBot(ev.User) {
			continue
		}
		conf, ok := permissionConfidence(ev.Permission)
		if !ok {
			continue
		}
		key := strings.ToLower(ev.User.Login)
		c, exists := byLogin[key]
		if !exists {
			c = &candidate{user: ev.User, sources: map[domain.MaintainerSource]bool{}}
			byLogin[key] = c
		}
		c.source = domain.SourcePermissions
		if conf > c.confidence {
			c.confidence = conf
		}
		c.sources[domain.SourcePermissions] = true
	}

	addFileEvidence(byLogin, bundle.Codeowners, domain.SourceCodeowners, ConfidenceCodeowners)
	addFileEvidence(byLogin, bundle.PackageMeta, domain.SourcePackageMeta, ConfidencePackageMeta)

	out := make([]domain.MaintainerAssertion, 0, len(byLogin))
	for _, c := range byLogin {
		all := make([]domain.MaintainerSource, 0, len(c.sources))
		for src := range c.sources {
			all = append(all, src)
		}
		sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

		out = append(out, domain.MaintainerAssertion{
			RepoGithubID: repoGithubID,
			User:         c.user,
			Source:       c.source,
			Confidence:   c.confidence,
			AllSources:   all,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].User.Login) < strings.ToLower(out[j].User.Login)
	})
	return out
}

func addFileEvidence(byLogin map[string]*candidate, logins []string, source domain.MaintainerSource, confidence int) {
	for _, login := range logins {
		if login == "" || isBotLogin(login) {
			continue
		}
		key := strings.ToLower(login)
		c, exists := byLogin[key]
		if exists {
			// Permission evidence already claimed this identity; the file
			// source only adds its tag.
			c.sources[source] = true
			if c.source != domain.SourcePermissions && confidence > c.confidence {
				c.source = source
				c.confidence = confidence
			}
			continue
		}
		byLogin[key] = &candidate{
			user:       domain.User{Login: login},
			source:     source,
			confidence: confidence,
			sources:    map[domain.MaintainerSource]bool{source: true},
		}
	}
}

func permissionConfidence(permission string) (int, bool) {
	switch permission {
	case "admin":
		return ConfidenceAdmin, true
	case "maintain":
		return ConfidenceMaintain, true
	case "push":
		return ConfidenceWrite, true
	}
	return 0, false
}

func isBot(u domain.User) bool {
	return u.Type == "Bot" || isBotLogin(u.Login)
}

func isBotLogin(login string) bool {
	return strings.HasSuffix(login, "[bot]")
}
