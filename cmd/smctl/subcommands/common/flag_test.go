package common_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	sprof "github.com/opst/smctl/cmd/smctl/config/profiles"
	common "github.com/opst/smctl/cmd/smctl/subcommands/common"
	"github.com/opst/smctl/pkg/utils/try"
)

func TestDefaultCommonFlags(t *testing.T) {
	t.Run("it returns default value from given directory", func(t *testing.T) {
		cf := try.To(common.Flags(
			"./testdata/current",
			common.WithHome("./testdata/home"),
		)).OrFatal(t)

		if try.To(filepath.Abs(cf.ProfileStore)).OrFatal(t) != try.To(filepath.Abs("./testdata/home/.smctl/profile")).OrFatal(t) {
			t.Errorf("wrong profile store: %s", cf.ProfileStore)
		}

		if cf.Profile != "test" {
			t.Errorf("wrong profile: %s", cf.Profile)
		}

		if cf.Env != try.To(filepath.Abs("./testdata/current/smenv")).OrFatal(t) {
			t.Errorf("wrong env: %s", cf.Env)
		}
	})

	t.Run("it returns default value from ancestors of given directory", func(t *testing.T) {
		cf := try.To(common.Flags(
			"./testdata/current/children/folder",
			common.WithHome("./testdata/home"),
		)).OrFatal(t)

		if cf.Profile != "test" {
			t.Errorf("wrong profile: %s", cf.Profile)
		}

		if cf.Env != try.To(filepath.Abs("./testdata/current/smenv")).OrFatal(t) {
			t.Errorf("wrong env: %s", cf.Env)
		}
	})

	t.Run("when there are no .smprofile, the profile is \"default\"", func(t *testing.T) {
		dir := t.TempDir()
		cf := try.To(common.Flags(dir, common.WithHome(dir))).OrFatal(t)

		if cf.Profile != "default" {
			t.Errorf("wrong profile: %s", cf.Profile)
		}
		if cf.Env != filepath.Join(dir, "smenv") {
			t.Errorf("wrong env: %s", cf.Env)
		}
	})
}

func TestLoadProfile(t *testing.T) {
	t.Run("it loads the named profile", func(t *testing.T) {
		prof := try.To(common.LoadProfile(common.CommonFlags{
			Profile:      "test",
			ProfileStore: "./testdata/home/.smctl/profile",
		})).OrFatal(t)

		if prof.Region != "us-east-1" {
			t.Errorf("wrong region: %s", prof.Region)
		}
	})

	t.Run("when the profile is not in the store, it returns error", func(t *testing.T) {
		_, err := common.LoadProfile(common.CommonFlags{
			Profile:      "no-such-profile",
			ProfileStore: "./testdata/home/.smctl/profile",
		})
		if err == nil {
			t.Error("no error")
		}
	})

	t.Run("when the store is not found, it returns ErrProfileStoreNotFound", func(t *testing.T) {
		_, err := common.LoadProfile(common.CommonFlags{
			Profile:      "test",
			ProfileStore: filepath.Join(t.TempDir(), "profile"),
		})
		if !errors.Is(err, sprof.ErrProfileStoreNotFound) {
			t.Errorf("unexpected error: %v", err)
		}
		if errors.Is(err, os.ErrNotExist) {
			t.Errorf("raw os error is leaked: %v", err)
		}
	})
}
