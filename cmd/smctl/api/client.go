package api

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	sprof "github.com/opst/smctl/cmd/smctl/config/profiles"
)

// Client is the set of SageMaker "describe" operations used by smctl.
//
// Each method issues exactly one API call. Errors are classified by this package
// (see ErrNotFound, ErrAuthentication and so on) and the SDK error stays reachable
// with errors.As.
type Client interface {
	DescribeLabelingJob(ctx context.Context, in *sagemaker.DescribeLabelingJobInput) (*sagemaker.DescribeLabelingJobOutput, error)
	DescribeModel(ctx context.Context, in *sagemaker.DescribeModelInput) (*sagemaker.DescribeModelOutput, error)
	DescribeTransformJob(ctx context.Context, in *sagemaker.DescribeTransformJobInput) (*sagemaker.DescribeTransformJobOutput, error)
	DescribeWorkteam(ctx context.Context, in *sagemaker.DescribeWorkteamInput) (*sagemaker.DescribeWorkteamOutput, error)
	DescribeTrainingJob(ctx context.Context, in *sagemaker.DescribeTrainingJobInput) (*sagemaker.DescribeTrainingJobOutput, error)
	DescribeProcessingJob(ctx context.Context, in *sagemaker.DescribeProcessingJobInput) (*sagemaker.DescribeProcessingJobOutput, error)
	DescribeHyperParameterTuningJob(ctx context.Context, in *sagemaker.DescribeHyperParameterTuningJobInput) (*sagemaker.DescribeHyperParameterTuningJobOutput, error)
	DescribeCompilationJob(ctx context.Context, in *sagemaker.DescribeCompilationJobInput) (*sagemaker.DescribeCompilationJobOutput, error)
	DescribeEndpoint(ctx context.Context, in *sagemaker.DescribeEndpointInput) (*sagemaker.DescribeEndpointOutput, error)
	DescribeEndpointConfig(ctx context.Context, in *sagemaker.DescribeEndpointConfigInput) (*sagemaker.DescribeEndpointConfigOutput, error)
	DescribeNotebookInstance(ctx context.Context, in *sagemaker.DescribeNotebookInstanceInput) (*sagemaker.DescribeNotebookInstanceOutput, error)
	DescribeSubscribedWorkteam(ctx context.Context, in *sagemaker.DescribeSubscribedWorkteamInput) (*sagemaker.DescribeSubscribedWorkteamOutput, error)
	DescribeWorkforce(ctx context.Context, in *sagemaker.DescribeWorkforceInput) (*sagemaker.DescribeWorkforceOutput, error)
	DescribeUserProfile(ctx context.Context, in *sagemaker.DescribeUserProfileInput) (*sagemaker.DescribeUserProfileOutput, error)
	DescribeImageVersion(ctx context.Context, in *sagemaker.DescribeImageVersionInput) (*sagemaker.DescribeImageVersionOutput, error)
	GetSagemakerServicecatalogPortfolioStatus(ctx context.Context, in *sagemaker.GetSagemakerServicecatalogPortfolioStatusInput) (*sagemaker.GetSagemakerServicecatalogPortfolioStatusOutput, error)
}

type client struct {
	sm *sagemaker.Client
}

// NewClient creates a new Client for the Profile.
//
// # Args
//
// - context.Context: used while loading AWS shared config and credentials.
//
// - *sprof.Profile
//
// # Return
//
// - Client: created client
//
// - error: If given profile is invalid, ErrProfileInvalid is returned.
// Errors from loading AWS config are returned as they are.
func NewClient(ctx context.Context, prof *sprof.Profile) (Client, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(prof.Region),
	}
	if prof.AWSProfile != "" {
		opts = append(opts, config.WithSharedConfigProfile(prof.AWSProfile))
	}
	if prof.MaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(prof.MaxAttempts))
	}
	if c := prof.Credentials; !c.IsZero() {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	sm := sagemaker.NewFromConfig(cfg, func(o *sagemaker.Options) {
		if prof.Endpoint != "" {
			o.BaseEndpoint = aws.String(prof.Endpoint)
		}
	})
	return &client{sm: sm}, nil
}

// invoke calls an SDK operation once and classifies its error.
func invoke[In any, Out any](
	ctx context.Context,
	in *In,
	op func(context.Context, *In, ...func(*sagemaker.Options)) (*Out, error),
) (*Out, error) {
	out, err := op(ctx, in)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (c *client) DescribeLabelingJob(ctx context.Context, in *sagemaker.DescribeLabelingJobInput) (*sagemaker.DescribeLabelingJobOutput, error) {
	return invoke(ctx, in, c.sm.DescribeLabelingJob)
}

func (c *client) DescribeModel(ctx context.Context, in *sagemaker.DescribeModelInput) (*sagemaker.DescribeModelOutput, error) {
	return invoke(ctx, in, c.sm.DescribeModel)
}

func (c *client) DescribeTransformJob(ctx context.Context, in *sagemaker.DescribeTransformJobInput) (*sagemaker.DescribeTransformJobOutput, error) {
	return invoke(ctx, in, c.sm.DescribeTransformJob)
}

func (c *client) DescribeWorkteam(ctx context.Context, in *sagemaker.DescribeWorkteamInput) (*sagemaker.DescribeWorkteamOutput, error) {
	return invoke(ctx, in, c.sm.DescribeWorkteam)
}

func (c *client) DescribeTrainingJob(ctx context.Context, in *sagemaker.DescribeTrainingJobInput) (*sagemaker.DescribeTrainingJobOutput, error) {
	return invoke(ctx, in, c.sm.DescribeTrainingJob)
}

func (c *client) DescribeProcessingJob(ctx context.Context, in *sagemaker.DescribeProcessingJobInput) (*sagemaker.DescribeProcessingJobOutput, error) {
	return invoke(ctx, in, c.sm.DescribeProcessingJob)
}

func (c *client) DescribeHyperParameterTuningJob(ctx context.Context, in *sagemaker.DescribeHyperParameterTuningJobInput) (*sagemaker.DescribeHyperParameterTuningJobOutput, error) {
	return invoke(ctx, in, c.sm.DescribeHyperParameterTuningJob)
}

func (c *client) DescribeCompilationJob(ctx context.Context, in *sagemaker.DescribeCompilationJobInput) (*sagemaker.DescribeCompilationJobOutput, error) {
	return invoke(ctx, in, c.sm.DescribeCompilationJob)
}

func (c *client) DescribeEndpoint(ctx context.Context, in *sagemaker.DescribeEndpointInput) (*sagemaker.DescribeEndpointOutput, error) {
	return invoke(ctx, in, c.sm.DescribeEndpoint)
}

func (c *client) DescribeEndpointConfig(ctx context.Context, in *sagemaker.DescribeEndpointConfigInput) (*sagemaker.DescribeEndpointConfigOutput, error) {
	return invoke(ctx, in, c.sm.DescribeEndpointConfig)
}

func (c *client) DescribeNotebookInstance(ctx context.Context, in *sagemaker.DescribeNotebookInstanceInput) (*sagemaker.DescribeNotebookInstanceOutput, error) {
	return invoke(ctx, in, c.sm.DescribeNotebookInstance)
}

func (c *client) DescribeSubscribedWorkteam(ctx context.Context, in *sagemaker.DescribeSubscribedWorkteamInput) (*sagemaker.DescribeSubscribedWorkteamOutput, error) {
	return invoke(ctx, in, c.sm.DescribeSubscribedWorkteam)
}

func (c *client) DescribeWorkforce(ctx context.Context, in *sagemaker.DescribeWorkforceInput) (*sagemaker.DescribeWorkforceOutput, error) {
	return invoke(ctx, in, c.sm.DescribeWorkforce)
}

func (c *client) DescribeUserProfile(ctx context.Context, in *sagemaker.DescribeUserProfileInput) (*sagemaker.DescribeUserProfileOutput, error) {
	return invoke(ctx, in, c.sm.DescribeUserProfile)
}

func (c *client) DescribeImageVersion(ctx context.Context, in *sagemaker.DescribeImageVersionInput) (*sagemaker.DescribeImageVersionOutput, error) {
	return invoke(ctx, in, c.sm.DescribeImageVersion)
}

func (c *client) GetSagemakerServicecatalogPortfolioStatus(ctx context.Context, in *sagemaker.GetSagemakerServicecatalogPortfolioStatusInput) (*sagemaker.GetSagemakerServicecatalogPortfolioStatusOutput, error) {
	return invoke(ctx, in, c.sm.GetSagemakerServicecatalogPortfolioStatus)
}
