package walker

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/ternarybob/codescribe/internal/interfaces"
)

// GitHubWalker implements interfaces.FileWalker over a remote repository's
// Git tree, letting CODEBASE_SOURCE reference `github:owner/repo[@ref]`
// instead of a local directory.
type GitHubWalker struct {
	client *github.Client
	owner  string
	repo   string
	ref    string

	ignoreDirs           map[string]bool
	ignoreFilenamePrefix []string
}

// NewGitHubWalker builds a walker for owner/repo at ref (branch, tag, or
// commit SHA), authenticating with token via a static oauth2 token source.
func NewGitHubWalker(ctx context.Context, token, owner, repo, ref string, ignoreDirs, ignoreFilenamePrefix []string) *GitHubWalker {
	var client *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	} else {
		client = github.NewClient(nil)
	}

	dirs := make(map[string]bool, len(ignoreDirs))
	for _, d := range ignoreDirs {
		dirs[d] = true
	}

	return &GitHubWalker{
		client:               client,
		owner:                owner,
		repo:                 repo,
		ref:                  ref,
		ignoreDirs:           dirs,
		ignoreFilenamePrefix: ignoreFilenamePrefix,
	}
}

// Walk fetches the repository's Git tree recursively, then visits every
// blob entry not excluded by the ignore sets. root is unused: a repository
// has a single, implicit root.
func (w *GitHubWalker) Walk(ctx context.Context, root string, visit interfaces.FileVisitor) error {
	tree, _, err := w.client.Git.GetTree(ctx, w.owner, w.repo, w.ref, true)
	if err != nil {
		return fmt.Errorf("failed to fetch github tree for %s/%s@%s: %w", w.owner, w.repo, w.ref, err)
	}

	for _, entry := range tree.Entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.GetType() != "blob" {
			continue
		}
		path := entry.GetPath()
		if w.isIgnored(path) {
			continue
		}

		err := visit(ctx, interfaces.WalkedFile{Filepath: path}, func() (string, error) {
			return w.fetchContent(ctx, path)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *GitHubWalker) fetchContent(ctx context.Context, path string) (string, error) {
	content, _, _, err := w.client.Repositories.GetContents(ctx, w.owner, w.repo, path, &github.RepositoryContentGetOptions{
		Ref: w.ref,
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch content for %s: %w", path, err)
	}
	if content == nil || content.Content == nil {
		return "", nil
	}
	decoded, err := base64.StdEncoding.DecodeString(*content.Content)
	if err != nil {
		return "", fmt.Errorf("failed to decode content for %s: %w", path, err)
	}
	return string(decoded), nil
}

func (w *GitHubWalker) isIgnored(path string) bool {
	segments := strings.Split(path, "/")
	for _, s := range segments[:len(segments)-1] {
		if w.ignoreDirs[s] {
			return true
		}
	}
	name := segments[len(segments)-1]
	for _, prefix := range w.ignoreFilenamePrefix {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
