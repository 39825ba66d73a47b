// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package expand turns a mixed list of file and directory inputs into a flat
// list of file paths, walking directories recursively and skipping hidden
// files.
package expand

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// HiddenPrefix marks a file name as hidden.
const HiddenPrefix = "."

// InvalidPathError reports an input that is neither an existing file nor an
// existing directory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%s is not a valid file or directory", e.Path)
}

// Expand returns every file named by paths. File inputs are kept verbatim;
// directory inputs contribute all files beneath them whose names do not start
// with HiddenPrefix, in lexical walk order. Duplicates are not removed.
func Expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, &InvalidPathError{Path: p}
		}
		switch {
		case info.Mode().IsRegular():
			files = append(files, p)
		case info.IsDir():
			found, err := walk(p)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		default:
			return nil, &InvalidPathError{Path: p}
		}
	}
	return files, nil
}

// walk collects visible files under root. Hidden directories are still
// descended into; links to directories are not followed. Links whose target
// is missing are listed like files. Directories that cannot be read are
// skipped.
func walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				return fmt.Errorf("walking %s: %w", path, err)
			}
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if IsHidden(d.Name()) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err == nil && !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// IsHidden reports whether a base file name is hidden.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}
