package maintainer

import "strings"

// ParseCodeowners extracts user logins from an ownership-declaration file.
// Each rule line is a path pattern followed by owners; user owners start with
// "@", team owners contain a "/" and are skipped (they are not user
// identities), and email owners are skipped for the same reason.
func ParseCodeowners(content string) []string {
	var logins []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		for _, owner := range fields[1:] {
			if !strings.HasPrefix(owner, "@") {
				continue
			}
			login := strings.TrimPrefix(owner, "@")
			if login == "" || strings.Contains(login, "/") {
				continue
			}
			key := strings.ToLower(login)
			if !seen[key] {
				seen[key] = true
				logins = append(logins, login)
			}
		}
	}

	return logins
}
