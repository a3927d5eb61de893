package testutils

import (
	"os"
	"path/filepath"
	"testing"

	prof "github.com/opst/smctl/cmd/smctl/config/profiles"
	"gopkg.in/yaml.v3"
)

// TempProfile creates a profile store file containing only the given profile.
//
// The file is removed after the test.
//
// returns:
//   - string: filepath to the profile store.
//   - error: error caused during creating the file.
func TempProfile(t *testing.T, name string, profile *prof.Profile) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := yaml.NewEncoder(f).Encode(prof.ProfileStore{name: profile}); err != nil {
		return "", err
	}

	return path, nil
}
