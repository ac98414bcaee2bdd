package maintainer

import (
	"encoding/json"
	"strings"
)

// packageMeta is the subset of a package-metadata template naming people.
// Each person entry is either an object with a name or a shorthand string
// like "Jane Doe <jane@example.com> (https://example.com)".
type packageMeta struct {
	Author      json.RawMessage   `json:"author"`
	Maintainers []json.RawMessage `json:"maintainers"`
}

// ParsePackageMeta extracts maintainer identities from a package-metadata
// template. Malformed documents yield no identities rather than an error;
// missing metadata is the common case, not a failure.
func ParsePackageMeta(content string) []string {
	var meta packageMeta
	if err := json.Unmarshal([]byte(content), &meta); err != nil {
		return nil
	}

	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if !seen[key] {
			seen[key] = true
			names = append(names, name)
		}
	}

	if name := personName(meta.Author); name != "" {
		add(name)
	}
	for _, raw := range meta.Maintainers {
		if name := personName(raw); name != "" {
			add(name)
		}
	}

	return names
}

func personName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Name != "" {
		return obj.Name
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	// Cut the email and url portions of the shorthand form.
	if i := strings.IndexAny(s, "<("); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
