package walker

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ternarybob/codescribe/internal/interfaces"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func TestLocalWalker_VisitsFilesAndSkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, "node_modules/pkg/index.js", "module.exports = {}")
	writeFile(t, root, ".hidden", "secret")

	w := NewLocalWalker([]string{"node_modules"}, []string{"."})

	var visited []string
	err := w.Walk(context.Background(), root, func(ctx context.Context, file interfaces.WalkedFile, readContent func() (string, error)) error {
		visited = append(visited, file.Filepath)
		return nil
	})
	require.NoError(t, err)

	sort.Strings(visited)
	require.Equal(t, []string{"main.go"}, visited)
}

func TestLocalWalker_ReadContentReturnsFileBytes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "hello.txt", "hello world")

	w := NewLocalWalker(nil, nil)

	var content string
	err := w.Walk(context.Background(), root, func(ctx context.Context, file interfaces.WalkedFile, readContent func() (string, error)) error {
		c, err := readContent()
		require.NoError(t, err)
		content = c
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "hello world", content)
}
