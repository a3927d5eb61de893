package extensions_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/opst/smctl/cmd/smctl/subcommands/common"
	"github.com/opst/smctl/cmd/smctl/subcommands/extensions"
	"github.com/opst/smctl/cmd/smctl/subcommands/internal/commandline"
	"github.com/opst/smctl/cmd/smctl/subcommands/logger"
	"github.com/opst/smctl/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func touch(t *testing.T, path string, executable bool) string {
	t.Helper()
	f := try.To(os.Create(path)).OrFatal(t)
	f.Close()
	if executable {
		if err := os.Chmod(path, 0700); err != nil {
			t.Fatal(err)
		}
	}
	return try.To(filepath.Abs(path)).OrFatal(t)
}

func TestFindSubcommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits are not used on windows")
	}

	dir1 := t.TempDir()
	dir2 := t.TempDir()
	dir3 := t.TempDir()

	want := []extensions.ExtensionCommand{}

	// dir1
	touch(t, filepath.Join(dir1, "file1"), false)
	touch(t, filepath.Join(dir1, "smctl-noexec"), false)
	want = append(want, extensions.ExtensionCommand{
		Name: "file2",
		Path: touch(t, filepath.Join(dir1, "smctl-file2"), true),
	})
	touch(t, filepath.Join(dir1, "not-smctl-file2"), true)

	// dir2: windows executable extensions are trimmed
	for _, ext := range []string{"exe", "bat", "cmd", "com"} {
		name := "with_suffix_" + ext
		want = append(want, extensions.ExtensionCommand{
			Name: name,
			Path: touch(t, filepath.Join(dir2, "smctl-"+name+"."+ext), true),
		})
	}
	want = append(want, extensions.ExtensionCommand{
		Name: "file3.ext",
		Path: touch(t, filepath.Join(dir2, "smctl-file3.ext"), true),
	})

	// dir3: conflicted name is ignored
	touch(t, filepath.Join(dir3, "smctl-file2"), true)

	t.Setenv(
		"PATH",
		strings.Join([]string{dir1, dir2, dir3, dir1}, string(os.PathListSeparator)),
	)
	got := extensions.FindSubcommand("smctl-")

	sort := cmpopts.SortSlices(func(a, b extensions.ExtensionCommand) bool { return a.Name < b.Name })
	if diff := cmp.Diff(want, got, sort); diff != "" {
		t.Errorf("(-want, +got):\n%s", diff)
	}
}

func TestSubcommands(t *testing.T) {
	type option struct {
		name string
		cmd  flarc.Command
	}
	with := func(name string, cmd flarc.Command) option {
		return option{name: name, cmd: cmd}
	}

	got := try.To(extensions.Subcommands(
		with,
		[]extensions.ExtensionCommand{
			{Name: "describe", Path: "/usr/local/bin/smctl-describe"},
			{Name: "watch", Path: "/usr/local/bin/smctl-watch"},
		},
		"init", "describe", "license", "version",
	)).OrFatal(t)

	if len(got) != 1 || got[0].name != "watch" || got[0].cmd == nil {
		t.Errorf("unexpected options: %+v", got)
	}
}

func TestTask(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension in this test is a shell script")
	}

	script := filepath.Join(t.TempDir(), "smctl-echo")
	content := `#!/bin/sh
echo "profile=$SMCTL_PROFILE"
echo "store=$SMCTL_PROFILE_STORE"
echo "env=$SMCTL_ENV"
echo "args=$*"
cat
echo "error message" >&2
[ "$1" != "fail" ]
`
	if err := os.WriteFile(script, []byte(content), 0700); err != nil {
		t.Fatal(err)
	}

	theory := func(args []string, wantErr bool) func(*testing.T) {
		return func(t *testing.T) {
			testee := extensions.Task(extensions.ExtensionCommand{Name: "echo", Path: script})

			stdout := new(strings.Builder)
			stderr := new(strings.Builder)
			err := testee(
				context.Background(),
				logger.Null(),
				common.CommonFlags{
					Profile:      "test-profile",
					ProfileStore: "test-profile-store",
					Env:          "test-env",
				},
				commandline.MockCommandline[struct{}]{
					Fullname_: "smctl echo",
					Args_:     map[string][]string{extensions.PARAMS: args},
					Stdin_:    strings.NewReader("stdin message\n"),
					Stdout_:   stdout,
					Stderr_:   stderr,
				},
				[]any{},
			)
			if got := err != nil; got != wantErr {
				t.Errorf("returned error: want = %v, but got = %v (%v)", wantErr, got, err)
			}

			wantStdout := strings.Join([]string{
				"profile=test-profile",
				"store=test-profile-store",
				"env=test-env",
				"args=" + strings.Join(args, " "),
				"stdin message",
				"",
			}, "\n")
			if diff := cmp.Diff(wantStdout, stdout.String()); diff != "" {
				t.Errorf("stdout (-want, +got):\n%s", diff)
			}
			if got := stderr.String(); got != "error message\n" {
				t.Errorf("stderr: %q", got)
			}
		}
	}

	t.Run("it passes args, stdio and common flags", theory([]string{"a", "b"}, false))
	t.Run("when the extension fails, it returns error", theory([]string{"fail"}, true))
}
