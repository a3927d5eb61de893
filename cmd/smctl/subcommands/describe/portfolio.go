package describe

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/opst/smctl/cmd/smctl/api"
	"github.com/opst/smctl/cmd/smctl/subcommands/describe/binding"
)

var PortfolioStatus = binding.Binding[binding.Flags, sagemaker.GetSagemakerServicecatalogPortfolioStatusInput, sagemaker.GetSagemakerServicecatalogPortfolioStatusOutput]{
	Description: "Show whether SageMaker projects are enabled in Service Catalog.",
	Detail: `
Show whether Service Catalog portfolios for SageMaker projects are enabled
for the account and the region of your profile.

It prints "Enabled" or "Disabled". With --full, the whole response.
`,
	Request: func([]string, binding.Flags) (*sagemaker.GetSagemakerServicecatalogPortfolioStatusInput, error) {
		return &sagemaker.GetSagemakerServicecatalogPortfolioStatusInput{}, nil
	},
	Call: func(ctx context.Context, client api.Client, in *sagemaker.GetSagemakerServicecatalogPortfolioStatusInput) (*sagemaker.GetSagemakerServicecatalogPortfolioStatusOutput, error) {
		return client.GetSagemakerServicecatalogPortfolioStatus(ctx, in)
	},
	Project: func(out *sagemaker.GetSagemakerServicecatalogPortfolioStatusOutput) any {
		return out.Status
	},
}
