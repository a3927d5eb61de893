package utils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/opst/smctl/pkg/utils"
	"github.com/opst/smctl/pkg/utils/try"
)

func TestSearchFilePathtoUpward(t *testing.T) {
	const name = "smenv"

	t.Run("the file exists in the directory", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, name)
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal(err)
		}

		actual := try.To(utils.SearchFilePathtoUpward(root, name)).OrFatal(t)
		if actual != path {
			t.Errorf("unmatch file path: %s, expected: %s", actual, path)
		}
	})

	t.Run("the nearest file in ancestors is found", func(t *testing.T) {
		root := t.TempDir()
		start := filepath.Join(root, "a", "b", "c")
		if err := os.MkdirAll(start, 0700); err != nil {
			t.Fatal(err)
		}
		for _, p := range []string{
			filepath.Join(root, name),
			filepath.Join(root, "a", name),
		} {
			if err := os.WriteFile(p, nil, 0600); err != nil {
				t.Fatal(err)
			}
		}

		actual := try.To(utils.SearchFilePathtoUpward(start, name)).OrFatal(t)
		if expected := filepath.Join(root, "a", name); actual != expected {
			t.Errorf("unmatch file path: %s, expected: %s", actual, expected)
		}
	})

	t.Run("a directory with the name is not the file", func(t *testing.T) {
		root := t.TempDir()
		start := filepath.Join(root, "a")
		if err := os.MkdirAll(filepath.Join(start, name), 0700); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(root, name)
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatal(err)
		}

		actual := try.To(utils.SearchFilePathtoUpward(start, name)).OrFatal(t)
		if actual != path {
			t.Errorf("unmatch file path: %s, expected: %s", actual, path)
		}
	})

	t.Run("the file does not exist", func(t *testing.T) {
		_, err := utils.SearchFilePathtoUpward(t.TempDir(), "no-such-file-for-smctl-test")
		if !errors.Is(err, utils.ErrSearchFile) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
