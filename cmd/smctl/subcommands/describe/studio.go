package describe

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/opst/smctl/cmd/smctl/api"
	"github.com/opst/smctl/cmd/smctl/subcommands/describe/binding"
	kflag "github.com/opst/smctl/pkg/commandline/flag"
)

var UserProfile = binding.Binding[binding.Flags, sagemaker.DescribeUserProfileInput, sagemaker.DescribeUserProfileOutput]{
	Description: "Describe a user profile in a Studio domain.",
	Params: []binding.Param{
		{Name: "DOMAIN_ID", Help: "ID of the domain, like d-xxxxxxxxxxxx."},
		{Name: "USER_PROFILE_NAME", Help: "Name of the user profile."},
	},
	Request: func(ids []string, _ binding.Flags) (*sagemaker.DescribeUserProfileInput, error) {
		return &sagemaker.DescribeUserProfileInput{
			DomainId:        aws.String(ids[0]),
			UserProfileName: aws.String(ids[1]),
		}, nil
	},
	Call: func(ctx context.Context, client api.Client, in *sagemaker.DescribeUserProfileInput) (*sagemaker.DescribeUserProfileOutput, error) {
		return client.DescribeUserProfile(ctx, in)
	},
}

type ImageVersionFlags struct {
	Output   string                  `flag:"output" alias:"o" metavar:"json|yaml" help:"Output format. Default is json, or \"output\" in smenv."`
	Full     bool                    `flag:"full" help:"Show the whole response instead of the main part of it."`
	Progress bool                    `flag:"progress" help:"Show progress on stderr while describing identifiers read from stdin."`
	Timeout  *kflag.OptionalDuration `flag:"timeout" metavar:"DURATION" help:"Deadline of each API call, like 30s. It should be positive. Default is \"timeout\" in smenv."`

	Version *kflag.OptionalInt32 `flag:"version" metavar:"N" help:"Version of the image. Exclusive with --alias. Default is the latest."`
	Alias   string               `flag:"alias" metavar:"ALIAS" help:"Alias of the image version. Exclusive with --version."`
}

func NewImageVersionFlags() ImageVersionFlags {
	return ImageVersionFlags{
		Timeout: &kflag.OptionalDuration{},
		Version: &kflag.OptionalInt32{},
	}
}

func (f ImageVersionFlags) DescribeFlags() binding.Flags {
	return binding.Flags{
		Output:   f.Output,
		Full:     f.Full,
		Progress: f.Progress,
		Timeout:  f.Timeout,
	}
}

var ErrVersionAndAlias = errors.New("--version and --alias are exclusive")

var ImageVersion = binding.Binding[ImageVersionFlags, sagemaker.DescribeImageVersionInput, sagemaker.DescribeImageVersionOutput]{
	Description: "Describe versions of SageMaker images.",
	Detail: `
Describe a version of SageMaker images.

Without --version nor --alias, the latest version is described.
The same version (or alias) is described for each IMAGE_NAME.
`,
	Params: []binding.Param{
		{Name: "IMAGE_NAME", Help: "Name of the image."},
	},
	Request: func(ids []string, flags ImageVersionFlags) (*sagemaker.DescribeImageVersionInput, error) {
		version := flags.Version.Int32()
		if version != nil && flags.Alias != "" {
			return nil, ErrVersionAndAlias
		}

		in := &sagemaker.DescribeImageVersionInput{
			ImageName: aws.String(ids[0]),
			Version:   version,
		}
		if flags.Alias != "" {
			in.Alias = aws.String(flags.Alias)
		}
		return in, nil
	},
	Call: func(ctx context.Context, client api.Client, in *sagemaker.DescribeImageVersionInput) (*sagemaker.DescribeImageVersionOutput, error) {
		return client.DescribeImageVersion(ctx, in)
	},
}
