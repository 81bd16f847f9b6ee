// Package workspace decides which directory the site tasks run in.
//
// Hugo resolves its configuration and content relative to the working
// directory, so tasks run from the site root: the top of the enclosing git
// worktree when there is one, otherwise the directory the runner started in.
package workspace
