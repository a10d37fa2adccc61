package interfaces

import "context"

// WalkedFile is one entry yielded by a FileWalker.
type WalkedFile struct {
	// Filepath is the relative, forward-slash path from the tree root.
	Filepath string
	// IsDir marks a directory entry. Walk visits files only, so it is
	// false for every entry a FileWalker yields.
	IsDir bool
}

// FileVisitor is called once per non-ignored file. Returning an error stops
// the walk and propagates the error to Walk's caller.
type FileVisitor func(ctx context.Context, file WalkedFile, readContent func() (string, error)) error

// FileWalker abstracts the source of the file tree being captured: a local
// directory (local_walker.go) or a remote repository (github_walker.go).
// Walk must call visit for files only, never directories, and must resolve
// ignore-dir / ignore-filename-prefix rules before invoking visit.
type FileWalker interface {
	Walk(ctx context.Context, root string, visit FileVisitor) error
}
