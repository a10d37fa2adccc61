package app

import (
	"os"
	"strings"
)

// parseGitHubSource recognizes the CODEBASE_SOURCE scheme `github:owner/repo[@ref]`.
// ref defaults to "main" when omitted. The access token, if any, comes from
// GITHUB_TOKEN — kept out of the config file since it's a credential, not a
// project setting.
func parseGitHubSource(sourcePath string) (owner, repo, ref, token string, ok bool) {
	const prefix = "github:"
	if !strings.HasPrefix(sourcePath, prefix) {
		return "", "", "", "", false
	}

	rest := strings.TrimPrefix(sourcePath, prefix)
	ref = "main"
	if idx := strings.LastIndex(rest, "@"); idx >= 0 {
		ref = rest[idx+1:]
		rest = rest[:idx]
	}

	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", "", false
	}

	return parts[0], parts[1], ref, os.Getenv("GITHUB_TOKEN"), true
}
