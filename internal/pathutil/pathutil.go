// Package pathutil translates file paths between working directories.
//
// When a file argument is typed in one directory but consumed by a
// process whose working directory is another, the path must be
// re-expressed relative to the consumer's directory or it will resolve
// to the wrong file (or nothing at all).
package pathutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Rel returns target expressed relative to baseDir. Both inputs are
// canonicalized first (made absolute, symlinks resolved), so the result
// is stable even when the two directories reach the same tree through
// different links.
//
// The walk trims trailing components off baseDir until target sits
// underneath the remainder, emitting one ".." per trimmed level, then
// appends the part of target past the shared ancestor. A target inside
// baseDir therefore comes back as a bare tail with no ".." segments,
// and identical inputs come back empty.
func Rel(baseDir, target string) (string, error) {
	base, err := Canonical(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve base %s: %w", baseDir, err)
	}
	targ, err := Canonical(target)
	if err != nil {
		return "", fmt.Errorf("resolve target %s: %w", target, err)
	}

	if targ == base {
		return "", nil
	}

	ancestor := base
	ups := 0
	for ancestor != sep && !underneath(ancestor, targ) {
		ancestor = filepath.Dir(ancestor)
		ups++
	}

	tail := strings.TrimPrefix(strings.TrimPrefix(targ, ancestor), sep)
	if ups == 0 {
		return tail, nil
	}
	parts := make([]string, 0, ups+1)
	for i := 0; i < ups; i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, tail)
	return strings.Join(parts, sep), nil
}

const sep = string(filepath.Separator)

// underneath reports whether path is dir or a component-aligned
// descendant of dir. Plain prefix checks would wrongly match
// "/home/user2" under "/home/user".
func underneath(dir, path string) bool {
	if path == dir {
		return true
	}
	if dir == sep {
		return strings.HasPrefix(path, sep)
	}
	return strings.HasPrefix(path, dir+sep)
}

// Canonical returns path in absolute form with symlinks resolved. A
// path that does not exist yet is resolved through its deepest existing
// ancestor, with the nonexistent tail re-appended unchanged, so paths
// destined for files the editor will create still canonicalize.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return canonicalAbs(filepath.Clean(abs))
}

func canonicalAbs(abs string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		// Hit the root without resolving; keep the path as-is.
		return abs, nil
	}
	resolvedParent, err := canonicalAbs(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedParent, filepath.Base(abs)), nil
}
