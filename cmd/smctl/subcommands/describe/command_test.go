package describe_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	sprof "github.com/opst/smctl/cmd/smctl/config/profiles"
	"github.com/opst/smctl/cmd/smctl/config/profiles/testutils"
	"github.com/opst/smctl/cmd/smctl/subcommands/common"
	"github.com/opst/smctl/cmd/smctl/subcommands/describe"
	"github.com/opst/smctl/internal/testutils/sagemakerfake"
	"github.com/opst/smctl/pkg/utils/try"
	"github.com/youta-t/flarc"
)

type result struct {
	status int
	stdout string
	stderr string
}

// runDescribe runs the "describe" group built by describe.New with the commandline parser,
// as main does.
func runDescribe(
	ctx context.Context, t *testing.T, server *sagemakerfake.Server, stdin string, argv ...string,
) result {
	t.Helper()

	store := try.To(testutils.TempProfile(t, "test", &sprof.Profile{
		Region:      "us-east-1",
		Endpoint:    server.URL,
		MaxAttempts: 1,
		Credentials: sprof.Credentials{
			AccessKeyID: "AKIDEXAMPLE", SecretAccessKey: "SECRETEXAMPLE",
		},
	})).OrFatal(t)

	testee := try.To(describe.New()).OrFatal(t)

	stdout := new(strings.Builder)
	stderr := new(strings.Builder)
	status := flarc.Run(
		ctx, testee,
		flarc.WithName("smctl describe"),
		flarc.WithArgs(argv),
		flarc.WithInput(strings.NewReader(stdin)),
		flarc.WithOutput(stdout, stderr),
		flarc.WithParams([]any{common.CommonFlags{
			Profile:      "test",
			ProfileStore: store,
			Env:          filepath.Join(t.TempDir(), "smenv"),
		}}),
	)
	return result{status: status, stdout: stdout.String(), stderr: stderr.String()}
}

func TestCommandline(t *testing.T) {
	t.Run("when identifiers are not given, it describes each line of stdin", func(t *testing.T) {
		ctx, cancel := sagemakerfake.Context(t)
		defer cancel()

		server := sagemakerfake.New(t)
		server.Respond("DescribeModel", map[string]any{"ModelName": "my-model"})

		actual := runDescribe(ctx, t, server, "m1\n\n  m2 \n", "model")
		if actual.status != 0 {
			t.Fatalf("status = %d, stderr:\n%s", actual.status, actual.stderr)
		}

		expected := []sagemakerfake.Request{
			{Operation: "DescribeModel", Body: map[string]any{"ModelName": "m1"}},
			{Operation: "DescribeModel", Body: map[string]any{"ModelName": "m2"}},
		}
		if diff := cmp.Diff(expected, server.Requests()); diff != "" {
			t.Errorf("requests unmatch (-expected, +actual):\n%s", diff)
		}
		if n := strings.Count(actual.stdout, `"ModelName": "my-model"`); n != 2 {
			t.Errorf("documents in stdout = %d:\n%s", n, actual.stdout)
		}
	})

	t.Run("when identifiers are given, stdin is not read", func(t *testing.T) {
		ctx, cancel := sagemakerfake.Context(t)
		defer cancel()

		server := sagemakerfake.New(t)
		server.Respond("DescribeModel", map[string]any{"ModelName": "my-model"})

		actual := runDescribe(ctx, t, server, "from-stdin\n", "model", "m1", "m2")
		if actual.status != 0 {
			t.Fatalf("status = %d, stderr:\n%s", actual.status, actual.stderr)
		}

		expected := []sagemakerfake.Request{
			{Operation: "DescribeModel", Body: map[string]any{"ModelName": "m1"}},
			{Operation: "DescribeModel", Body: map[string]any{"ModelName": "m2"}},
		}
		if diff := cmp.Diff(expected, server.Requests()); diff != "" {
			t.Errorf("requests unmatch (-expected, +actual):\n%s", diff)
		}
	})

	t.Run("user-profile takes DOMAIN_ID and USER_PROFILE_NAME", func(t *testing.T) {
		ctx, cancel := sagemakerfake.Context(t)
		defer cancel()

		server := sagemakerfake.New(t)
		server.Respond("DescribeUserProfile", map[string]any{
			"DomainId": "d-123", "UserProfileName": "alice", "Status": "InService",
		})

		actual := runDescribe(ctx, t, server, "", "user-profile", "d-123", "alice")
		if actual.status != 0 {
			t.Fatalf("status = %d, stderr:\n%s", actual.status, actual.stderr)
		}

		expected := []sagemakerfake.Request{
			{
				Operation: "DescribeUserProfile",
				Body:      map[string]any{"DomainId": "d-123", "UserProfileName": "alice"},
			},
		}
		if diff := cmp.Diff(expected, server.Requests()); diff != "" {
			t.Errorf("requests unmatch (-expected, +actual):\n%s", diff)
		}
		if !strings.Contains(actual.stdout, `"UserProfileName": "alice"`) {
			t.Errorf("unexpected stdout:\n%s", actual.stdout)
		}
	})

	t.Run("user-profile without USER_PROFILE_NAME is a usage error", func(t *testing.T) {
		ctx, cancel := sagemakerfake.Context(t)
		defer cancel()

		server := sagemakerfake.New(t)

		actual := runDescribe(ctx, t, server, "", "user-profile", "d-123")
		if actual.status != 2 {
			t.Errorf("status = %d, stderr:\n%s", actual.status, actual.stderr)
		}
		if reqs := server.Requests(); len(reqs) != 0 {
			t.Errorf("unexpected requests: %+v", reqs)
		}
	})

	for name, testcase := range map[string]struct {
		argv     []string
		expected map[string]any
	}{
		"image-version sends --version": {
			argv:     []string{"image-version", "img", "--version", "3"},
			expected: map[string]any{"ImageName": "img", "Version": float64(3)},
		},
		"image-version sends --alias": {
			argv:     []string{"image-version", "--alias", "stable", "img"},
			expected: map[string]any{"ImageName": "img", "Alias": "stable"},
		},
		"image-version without --version nor --alias describes the latest": {
			argv:     []string{"image-version", "img"},
			expected: map[string]any{"ImageName": "img"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := sagemakerfake.Context(t)
			defer cancel()

			server := sagemakerfake.New(t)
			server.Respond("DescribeImageVersion", map[string]any{
				"ImageArn": "arn:aws:sagemaker:us-east-1:123456789012:image/img",
				"Version":  3,
			})

			actual := runDescribe(ctx, t, server, "", testcase.argv...)
			if actual.status != 0 {
				t.Fatalf("status = %d, stderr:\n%s", actual.status, actual.stderr)
			}

			expected := []sagemakerfake.Request{
				{Operation: "DescribeImageVersion", Body: testcase.expected},
			}
			if diff := cmp.Diff(expected, server.Requests()); diff != "" {
				t.Errorf("requests unmatch (-expected, +actual):\n%s", diff)
			}
		})
	}

	t.Run("image-version with both --version and --alias is a usage error", func(t *testing.T) {
		ctx, cancel := sagemakerfake.Context(t)
		defer cancel()

		server := sagemakerfake.New(t)

		actual := runDescribe(
			ctx, t, server, "", "image-version", "--version", "3", "--alias", "stable", "img",
		)
		if actual.status != 2 {
			t.Errorf("status = %d, stderr:\n%s", actual.status, actual.stderr)
		}
		if !strings.Contains(actual.stderr, describe.ErrVersionAndAlias.Error()) {
			t.Errorf("unexpected stderr:\n%s", actual.stderr)
		}
		if reqs := server.Requests(); len(reqs) != 0 {
			t.Errorf("unexpected requests: %+v", reqs)
		}
	})

	t.Run("image-version built for each run does not carry flags of the previous run", func(t *testing.T) {
		ctx, cancel := sagemakerfake.Context(t)
		defer cancel()

		server := sagemakerfake.New(t)
		server.Respond("DescribeImageVersion", map[string]any{
			"ImageArn": "arn:aws:sagemaker:us-east-1:123456789012:image/img",
		})

		first := runDescribe(ctx, t, server, "", "image-version", "--version", "3", "img")
		if first.status != 0 {
			t.Fatalf("status = %d, stderr:\n%s", first.status, first.stderr)
		}
		second := runDescribe(ctx, t, server, "", "image-version", "--alias", "stable", "img")
		if second.status != 0 {
			t.Fatalf("status = %d, stderr:\n%s", second.status, second.stderr)
		}

		expected := []sagemakerfake.Request{
			{Operation: "DescribeImageVersion", Body: map[string]any{"ImageName": "img", "Version": float64(3)}},
			{Operation: "DescribeImageVersion", Body: map[string]any{"ImageName": "img", "Alias": "stable"}},
		}
		if diff := cmp.Diff(expected, server.Requests()); diff != "" {
			t.Errorf("requests unmatch (-expected, +actual):\n%s", diff)
		}
	})

	t.Run("portfolio-status prints the status only", func(t *testing.T) {
		ctx, cancel := sagemakerfake.Context(t)
		defer cancel()

		server := sagemakerfake.New(t)
		server.Respond("GetSagemakerServicecatalogPortfolioStatus", map[string]any{"Status": "Enabled"})

		actual := runDescribe(ctx, t, server, "", "portfolio-status")
		if actual.status != 0 {
			t.Fatalf("status = %d, stderr:\n%s", actual.status, actual.stderr)
		}
		if actual.stdout != "\"Enabled\"\n" {
			t.Errorf("unexpected stdout: %q", actual.stdout)
		}
	})

	t.Run("--output yaml writes YAML", func(t *testing.T) {
		ctx, cancel := sagemakerfake.Context(t)
		defer cancel()

		server := sagemakerfake.New(t)
		server.Respond("DescribeWorkteam", map[string]any{
			"Workteam": map[string]any{
				"WorkteamName": "wt",
				"WorkteamArn":  "arn:aws:sagemaker:us-east-1:123456789012:workteam/private-crowd/wt",
				"Description":  "labelers",
			},
		})

		actual := runDescribe(ctx, t, server, "", "workteam", "wt", "--output", "yaml")
		if actual.status != 0 {
			t.Fatalf("status = %d, stderr:\n%s", actual.status, actual.stderr)
		}
		for _, expected := range []string{"WorkteamName: wt\n", "Description: labelers\n"} {
			if !strings.Contains(actual.stdout, expected) {
				t.Errorf("stdout does not contain %q:\n%s", expected, actual.stdout)
			}
		}
		if strings.Contains(actual.stdout, `"WorkteamName"`) {
			t.Errorf("stdout seems JSON:\n%s", actual.stdout)
		}
	})

	t.Run("--timeout 0s is rejected", func(t *testing.T) {
		ctx, cancel := sagemakerfake.Context(t)
		defer cancel()

		server := sagemakerfake.New(t)

		actual := runDescribe(ctx, t, server, "", "model", "--timeout", "0s", "m1")
		if actual.status == 0 {
			t.Errorf("status = %d, stderr:\n%s", actual.status, actual.stderr)
		}
		if reqs := server.Requests(); len(reqs) != 0 {
			t.Errorf("unexpected requests: %+v", reqs)
		}
	})
}
