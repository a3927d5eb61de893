package describe

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/opst/smctl/cmd/smctl/api"
	"github.com/opst/smctl/cmd/smctl/subcommands/describe/binding"
)

var Workteam = byName(
	"Describe private work teams.",
	binding.Param{Name: "WORKTEAM_NAME", Help: "Name of the work team."},
	func(name string) *sagemaker.DescribeWorkteamInput {
		return &sagemaker.DescribeWorkteamInput{WorkteamName: aws.String(name)}
	},
	api.Client.DescribeWorkteam,
	func(out *sagemaker.DescribeWorkteamOutput) any { return out.Workteam },
)

var SubscribedWorkteam = byName(
	"Describe vendor work teams you have subscribed to.",
	binding.Param{Name: "WORKTEAM_ARN", Help: "ARN of the subscribed work team."},
	func(arn string) *sagemaker.DescribeSubscribedWorkteamInput {
		return &sagemaker.DescribeSubscribedWorkteamInput{WorkteamArn: aws.String(arn)}
	},
	api.Client.DescribeSubscribedWorkteam,
	func(out *sagemaker.DescribeSubscribedWorkteamOutput) any { return out.SubscribedWorkteam },
)

var Workforce = byName(
	"Describe private workforces.",
	binding.Param{Name: "WORKFORCE_NAME", Help: "Name of the workforce. It is \"default\" unless you have created others."},
	func(name string) *sagemaker.DescribeWorkforceInput {
		return &sagemaker.DescribeWorkforceInput{WorkforceName: aws.String(name)}
	},
	api.Client.DescribeWorkforce,
	func(out *sagemaker.DescribeWorkforceOutput) any { return out.Workforce },
)
