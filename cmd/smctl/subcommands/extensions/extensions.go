// Package extensions runs executables named "smctl-<name>" on PATH as "smctl <name>".
package extensions

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/opst/smctl/cmd/smctl/subcommands/common"
	"github.com/youta-t/flarc"
)

// environment variables passed to extensions.
const (
	EnvProfile      = "SMCTL_PROFILE"
	EnvProfileStore = "SMCTL_PROFILE_STORE"
	EnvEnv          = "SMCTL_ENV"
)

type ExtensionCommand struct {
	Name string
	Path string
}

// FindSubcommand finds executables which have the prefix in PATH.
//
// When executables with the same name are found, the first one in PATH wins.
func FindSubcommand(prefix string) []ExtensionCommand {
	subcommands := []ExtensionCommand{}

	pathes := strings.Split(os.Getenv("PATH"), string(os.PathListSeparator))
	known := map[string]struct{}{}

	for _, p := range pathes {
		if p == "" {
			p = "."
		}
		files, err := os.ReadDir(p)
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasPrefix(f.Name(), prefix) {
				continue
			}
			abspath, err := exec.LookPath(filepath.Join(p, f.Name()))
			if err != nil {
				continue
			}
			if a, err := filepath.Abs(abspath); err == nil {
				abspath = a
			}
			name := strings.TrimPrefix(f.Name(), prefix)
			for _, executableExt := range []string{".exe", ".bat", ".cmd", ".com"} {
				if strings.HasSuffix(name, executableExt) {
					name = strings.TrimSuffix(name, executableExt)
					break
				}
			}
			if _, ok := known[name]; ok {
				continue
			}
			subcommands = append(
				subcommands,
				ExtensionCommand{Name: name, Path: abspath},
			)
			known[name] = struct{}{}
		}
	}

	return subcommands
}

// Subcommands makes options of a command group for extensions.
//
// with is an option constructor like flarc.WithSubcommand.
// Extensions whose name is in builtins are skipped.
func Subcommands[O any](
	with func(string, flarc.Command) O,
	exts []ExtensionCommand,
	builtins ...string,
) ([]O, error) {
	reserved := map[string]struct{}{}
	for _, b := range builtins {
		reserved[b] = struct{}{}
	}

	opts := make([]O, 0, len(exts))
	for _, ext := range exts {
		if _, ok := reserved[ext.Name]; ok {
			continue
		}
		cmd, err := New(ext)
		if err != nil {
			return nil, err
		}
		opts = append(opts, with(ext.Name, cmd))
	}
	return opts, nil
}

const PARAMS = "PARAMS"

func New(ext ExtensionCommand) (flarc.Command, error) {
	return flarc.NewCommand(
		fmt.Sprintf("(= %s)", ext.Path),
		struct{}{},
		flarc.Args{
			{
				Name: PARAMS, Required: false, Repeatable: true,
				Help: "parameters for the extension command",
			},
		},
		common.NewTaskWithCommonFlag(Task(ext)),
	)
}

// Task runs the extension with the same stdio.
//
// Common flags are passed as environment variables.
func Task(ext ExtensionCommand) common.TaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		cf common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		args := cl.Args()[PARAMS]
		cmd := exec.CommandContext(ctx, ext.Path, args...)
		cmd.Stdin = cl.Stdin()
		cmd.Stdout = cl.Stdout()
		cmd.Stderr = cl.Stderr()
		cmd.Env = append(
			os.Environ(),
			EnvProfile+"="+cf.Profile,
			EnvProfileStore+"="+cf.ProfileStore,
			EnvEnv+"="+cf.Env,
		)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", ext.Name, err)
		}
		return nil
	}
}
