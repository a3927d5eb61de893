package init

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/opst/smctl/cmd/smctl/config/open"
	prof "github.com/opst/smctl/cmd/smctl/config/profiles"
	"github.com/opst/smctl/cmd/smctl/subcommands/common"
	"github.com/youta-t/flarc"
	"gopkg.in/yaml.v3"
)

const ARG_PROFILE_FILE = "PROFILE_FILE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Initialize this directory as a smctl project.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_PROFILE_FILE, Required: true,
				Help: "Path to a profile file, which tells region, endpoint and credentials to use.",
			},
		},
		common.NewTaskWithCommonFlag(Task("")),
		flarc.WithDescription(`
Register a profile into your profile store, and use it in this directory.

A profile file is YAML like below:

    region: us-east-1       # required
    awsProfile: ml-team     # optional. a profile name in ~/.aws/config
    endpoint: ""            # optional. override the SageMaker endpoint
    maxAttempts: 3          # optional. attempts of each API call, including retries

The name of the profile is given by "--profile" (default: "default").
The profile name is written in ".smprofile" of this directory, so that
{{ .Command }}'s siblings in this directory and its descendants use it.
`),
	)
}

// Task registers a profile.
//
// projectDir is where ".smprofile" is written. Empty means the working directory.
func Task(projectDir string) common.TaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		profFile := cl.Args()[ARG_PROFILE_FILE][0]

		profStore, err := prof.LoadProfileStore(cf.ProfileStore)
		if errors.Is(err, prof.ErrProfileStoreNotFound) {
			// ok.
			profStore = prof.ProfileStore{}
		} else if err != nil {
			return fmt.Errorf("failed to load profile store (%s): %w", cf.ProfileStore, err)
		}

		newProf := new(prof.Profile)
		{
			content, err := os.ReadFile(profFile)
			if err != nil {
				return fmt.Errorf("failed to read profile file (%s): %w", profFile, err)
			}
			if err := yaml.Unmarshal(content, newProf); err != nil {
				return fmt.Errorf("failed to parse profile file (%s): %w", profFile, err)
			}
		}
		if err := newProf.Verify(); err != nil {
			return fmt.Errorf("%s: %w", profFile, err)
		}

		profName := cf.Profile
		profStore[profName] = newProf
		if err := profStore.Save(cf.ProfileStore); err != nil {
			return fmt.Errorf("failed to save profile store (%s): %w", cf.ProfileStore, err)
		}
		logger.Printf("profile %s is saved to %s", profName, cf.ProfileStore)

		marker := filepath.Join(projectDir, common.ProfileFile)
		if err := open.WriteSafeFile(marker, []byte(profName)); err != nil {
			return fmt.Errorf("failed to write %s: %w", marker, err)
		}
		return nil
	}
}
