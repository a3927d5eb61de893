package common

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/opst/smctl/pkg/utils"
)

const (
	// file which has the profile name used in the directory and its descendants.
	ProfileFile = ".smprofile"

	// file which has project defaults. See env.SMEnv.
	EnvFile = "smenv"
)

type CommonFlags struct {
	Profile      string `flag:"profile" help:"smctl profile name to use"`
	ProfileStore string `flag:"profile-store" help:"path to smctl profile store file"`
	Env          string `flag:"env" help:"path to smenv file"`
}

type commonFlagDetection struct {
	home string
}

type CommonFlagDetectionOption func(*commonFlagDetection) *commonFlagDetection

func WithHome(home string) CommonFlagDetectionOption {
	return func(opt *commonFlagDetection) *commonFlagDetection {
		opt.home = home
		return opt
	}
}

// Flags detects default values of CommonFlags.
//
// It searches ".smprofile" and "smenv" from the directory `from` toward the root,
// and takes the nearest ones.
// When ".smprofile" is not found, the profile name is "default".
// The profile store is "~/.smctl/profile".
func Flags(from string, opt ...CommonFlagDetectionOption) (CommonFlags, error) {
	detparam := commonFlagDetection{}
	for _, o := range opt {
		detparam = *o(&detparam)
	}

	home := detparam.home
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}

	if abs, err := filepath.Abs(from); err == nil {
		from = abs
	}

	profile := "default"
	if p, err := utils.SearchFilePathtoUpward(from, ProfileFile); err == nil {
		content, err := os.ReadFile(p)
		if err != nil {
			return CommonFlags{}, err
		}
		if name := strings.TrimSpace(strings.SplitN(string(content), "\n", 2)[0]); name != "" {
			profile = name
		}
	}

	env := filepath.Join(from, EnvFile)
	if p, err := utils.SearchFilePathtoUpward(from, EnvFile); err == nil {
		env = p
	}

	return CommonFlags{
		Profile:      profile,
		ProfileStore: filepath.Join(home, ".smctl", "profile"),
		Env:          env,
	}, nil
}
