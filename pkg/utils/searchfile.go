package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrSearchFile = errors.New("could not search file")

// SearchFilePathtoUpward finds a regular file named fileName in root or its ancestors.
//
// # Returns
//
// - string: path to the nearest file found.
//
// - error: ErrSearchFile if there is no such file up to the filesystem root.
func SearchFilePathtoUpward(root string, fileName string) (string, error) {
	for dir := root; ; {
		path := filepath.Join(dir, fileName)
		if s, err := os.Stat(path); err == nil && s.Mode().IsRegular() {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s from %s", ErrSearchFile, fileName, root)
		}
		dir = parent
	}
}
