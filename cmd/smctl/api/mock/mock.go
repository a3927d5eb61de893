package mock

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/opst/smctl/cmd/smctl/api"
)

func New(t *testing.T) *mockClient {
	return &mockClient{t: t}
}

type mockClient struct {
	t    *testing.T
	Impl struct {
		DescribeLabelingJob                       func(ctx context.Context, in *sagemaker.DescribeLabelingJobInput) (*sagemaker.DescribeLabelingJobOutput, error)
		DescribeModel                             func(ctx context.Context, in *sagemaker.DescribeModelInput) (*sagemaker.DescribeModelOutput, error)
		DescribeTransformJob                      func(ctx context.Context, in *sagemaker.DescribeTransformJobInput) (*sagemaker.DescribeTransformJobOutput, error)
		DescribeWorkteam                          func(ctx context.Context, in *sagemaker.DescribeWorkteamInput) (*sagemaker.DescribeWorkteamOutput, error)
		DescribeTrainingJob                       func(ctx context.Context, in *sagemaker.DescribeTrainingJobInput) (*sagemaker.DescribeTrainingJobOutput, error)
		DescribeProcessingJob                     func(ctx context.Context, in *sagemaker.DescribeProcessingJobInput) (*sagemaker.DescribeProcessingJobOutput, error)
		DescribeHyperParameterTuningJob           func(ctx context.Context, in *sagemaker.DescribeHyperParameterTuningJobInput) (*sagemaker.DescribeHyperParameterTuningJobOutput, error)
		DescribeCompilationJob                    func(ctx context.Context, in *sagemaker.DescribeCompilationJobInput) (*sagemaker.DescribeCompilationJobOutput, error)
		DescribeEndpoint                          func(ctx context.Context, in *sagemaker.DescribeEndpointInput) (*sagemaker.DescribeEndpointOutput, error)
		DescribeEndpointConfig                    func(ctx context.Context, in *sagemaker.DescribeEndpointConfigInput) (*sagemaker.DescribeEndpointConfigOutput, error)
		DescribeNotebookInstance                  func(ctx context.Context, in *sagemaker.DescribeNotebookInstanceInput) (*sagemaker.DescribeNotebookInstanceOutput, error)
		DescribeSubscribedWorkteam                func(ctx context.Context, in *sagemaker.DescribeSubscribedWorkteamInput) (*sagemaker.DescribeSubscribedWorkteamOutput, error)
		DescribeWorkforce                         func(ctx context.Context, in *sagemaker.DescribeWorkforceInput) (*sagemaker.DescribeWorkforceOutput, error)
		DescribeUserProfile                       func(ctx context.Context, in *sagemaker.DescribeUserProfileInput) (*sagemaker.DescribeUserProfileOutput, error)
		DescribeImageVersion                      func(ctx context.Context, in *sagemaker.DescribeImageVersionInput) (*sagemaker.DescribeImageVersionOutput, error)
		GetSagemakerServicecatalogPortfolioStatus func(ctx context.Context, in *sagemaker.GetSagemakerServicecatalogPortfolioStatusInput) (*sagemaker.GetSagemakerServicecatalogPortfolioStatusOutput, error)
	}
	Calls struct {
		DescribeLabelingJob                       []*sagemaker.DescribeLabelingJobInput
		DescribeModel                             []*sagemaker.DescribeModelInput
		DescribeTransformJob                      []*sagemaker.DescribeTransformJobInput
		DescribeWorkteam                          []*sagemaker.DescribeWorkteamInput
		DescribeTrainingJob                       []*sagemaker.DescribeTrainingJobInput
		DescribeProcessingJob                     []*sagemaker.DescribeProcessingJobInput
		DescribeHyperParameterTuningJob           []*sagemaker.DescribeHyperParameterTuningJobInput
		DescribeCompilationJob                    []*sagemaker.DescribeCompilationJobInput
		DescribeEndpoint                          []*sagemaker.DescribeEndpointInput
		DescribeEndpointConfig                    []*sagemaker.DescribeEndpointConfigInput
		DescribeNotebookInstance                  []*sagemaker.DescribeNotebookInstanceInput
		DescribeSubscribedWorkteam                []*sagemaker.DescribeSubscribedWorkteamInput
		DescribeWorkforce                         []*sagemaker.DescribeWorkforceInput
		DescribeUserProfile                       []*sagemaker.DescribeUserProfileInput
		DescribeImageVersion                      []*sagemaker.DescribeImageVersionInput
		GetSagemakerServicecatalogPortfolioStatus []*sagemaker.GetSagemakerServicecatalogPortfolioStatusInput
	}
}

var _ api.Client = &mockClient{}

func (m *mockClient) DescribeLabelingJob(ctx context.Context, in *sagemaker.DescribeLabelingJobInput) (*sagemaker.DescribeLabelingJobOutput, error) {
	m.t.Helper()

	m.Calls.DescribeLabelingJob = append(m.Calls.DescribeLabelingJob, in)
	if m.Impl.DescribeLabelingJob == nil {
		m.t.Fatal("DescribeLabelingJob is not ready to be called")
	}
	return m.Impl.DescribeLabelingJob(ctx, in)
}

func (m *mockClient) DescribeModel(ctx context.Context, in *sagemaker.DescribeModelInput) (*sagemaker.DescribeModelOutput, error) {
	m.t.Helper()

	m.Calls.DescribeModel = append(m.Calls.DescribeModel, in)
	if m.Impl.DescribeModel == nil {
		m.t.Fatal("DescribeModel is not ready to be called")
	}
	return m.Impl.DescribeModel(ctx, in)
}

func (m *mockClient) DescribeTransformJob(ctx context.Context, in *sagemaker.DescribeTransformJobInput) (*sagemaker.DescribeTransformJobOutput, error) {
	m.t.Helper()

	m.Calls.DescribeTransformJob = append(m.Calls.DescribeTransformJob, in)
	if m.Impl.DescribeTransformJob == nil {
		m.t.Fatal("DescribeTransformJob is not ready to be called")
	}
	return m.Impl.DescribeTransformJob(ctx, in)
}

func (m *mockClient) DescribeWorkteam(ctx context.Context, in *sagemaker.DescribeWorkteamInput) (*sagemaker.DescribeWorkteamOutput, error) {
	m.t.Helper()

	m.Calls.DescribeWorkteam = append(m.Calls.DescribeWorkteam, in)
	if m.Impl.DescribeWorkteam == nil {
		m.t.Fatal("DescribeWorkteam is not ready to be called")
	}
	return m.Impl.DescribeWorkteam(ctx, in)
}

func (m *mockClient) DescribeTrainingJob(ctx context.Context, in *sagemaker.DescribeTrainingJobInput) (*sagemaker.DescribeTrainingJobOutput, error) {
	m.t.Helper()

	m.Calls.DescribeTrainingJob = append(m.Calls.DescribeTrainingJob, in)
	if m.Impl.DescribeTrainingJob == nil {
		m.t.Fatal("DescribeTrainingJob is not ready to be called")
	}
	return m.Impl.DescribeTrainingJob(ctx, in)
}

func (m *mockClient) DescribeProcessingJob(ctx context.Context, in *sagemaker.DescribeProcessingJobInput) (*sagemaker.DescribeProcessingJobOutput, error) {
	m.t.Helper()

	m.Calls.DescribeProcessingJob = append(m.Calls.DescribeProcessingJob, in)
	if m.Impl.DescribeProcessingJob == nil {
		m.t.Fatal("DescribeProcessingJob is not ready to be called")
	}
	return m.Impl.DescribeProcessingJob(ctx, in)
}

func (m *mockClient) DescribeHyperParameterTuningJob(ctx context.Context, in *sagemaker.DescribeHyperParameterTuningJobInput) (*sagemaker.DescribeHyperParameterTuningJobOutput, error) {
	m.t.Helper()

	m.Calls.DescribeHyperParameterTuningJob = append(m.Calls.DescribeHyperParameterTuningJob, in)
	if m.Impl.DescribeHyperParameterTuningJob == nil {
		m.t.Fatal("DescribeHyperParameterTuningJob is not ready to be called")
	}
	return m.Impl.DescribeHyperParameterTuningJob(ctx, in)
}

func (m *mockClient) DescribeCompilationJob(ctx context.Context, in *sagemaker.DescribeCompilationJobInput) (*sagemaker.DescribeCompilationJobOutput, error) {
	m.t.Helper()

	m.Calls.DescribeCompilationJob = append(m.Calls.DescribeCompilationJob, in)
	if m.Impl.DescribeCompilationJob == nil {
		m.t.Fatal("DescribeCompilationJob is not ready to be called")
	}
	return m.Impl.DescribeCompilationJob(ctx, in)
}

func (m *mockClient) DescribeEndpoint(ctx context.Context, in *sagemaker.DescribeEndpointInput) (*sagemaker.DescribeEndpointOutput, error) {
	m.t.Helper()

	m.Calls.DescribeEndpoint = append(m.Calls.DescribeEndpoint, in)
	if m.Impl.DescribeEndpoint == nil {
		m.t.Fatal("DescribeEndpoint is not ready to be called")
	}
	return m.Impl.DescribeEndpoint(ctx, in)
}

func (m *mockClient) DescribeEndpointConfig(ctx context.Context, in *sagemaker.DescribeEndpointConfigInput) (*sagemaker.DescribeEndpointConfigOutput, error) {
	m.t.Helper()

	m.Calls.DescribeEndpointConfig = append(m.Calls.DescribeEndpointConfig, in)
	if m.Impl.DescribeEndpointConfig == nil {
		m.t.Fatal("DescribeEndpointConfig is not ready to be called")
	}
	return m.Impl.DescribeEndpointConfig(ctx, in)
}

func (m *mockClient) DescribeNotebookInstance(ctx context.Context, in *sagemaker.DescribeNotebookInstanceInput) (*sagemaker.DescribeNotebookInstanceOutput, error) {
	m.t.Helper()

	m.Calls.DescribeNotebookInstance = append(m.Calls.DescribeNotebookInstance, in)
	if m.Impl.DescribeNotebookInstance == nil {
		m.t.Fatal("DescribeNotebookInstance is not ready to be called")
	}
	return m.Impl.DescribeNotebookInstance(ctx, in)
}

func (m *mockClient) DescribeSubscribedWorkteam(ctx context.Context, in *sagemaker.DescribeSubscribedWorkteamInput) (*sagemaker.DescribeSubscribedWorkteamOutput, error) {
	m.t.Helper()

	m.Calls.DescribeSubscribedWorkteam = append(m.Calls.DescribeSubscribedWorkteam, in)
	if m.Impl.DescribeSubscribedWorkteam == nil {
		m.t.Fatal("DescribeSubscribedWorkteam is not ready to be called")
	}
	return m.Impl.DescribeSubscribedWorkteam(ctx, in)
}

func (m *mockClient) DescribeWorkforce(ctx context.Context, in *sagemaker.DescribeWorkforceInput) (*sagemaker.DescribeWorkforceOutput, error) {
	m.t.Helper()

	m.Calls.DescribeWorkforce = append(m.Calls.DescribeWorkforce, in)
	if m.Impl.DescribeWorkforce == nil {
		m.t.Fatal("DescribeWorkforce is not ready to be called")
	}
	return m.Impl.DescribeWorkforce(ctx, in)
}

func (m *mockClient) DescribeUserProfile(ctx context.Context, in *sagemaker.DescribeUserProfileInput) (*sagemaker.DescribeUserProfileOutput, error) {
	m.t.Helper()

	m.Calls.DescribeUserProfile = append(m.Calls.DescribeUserProfile, in)
	if m.Impl.DescribeUserProfile == nil {
		m.t.Fatal("DescribeUserProfile is not ready to be called")
	}
	return m.Impl.DescribeUserProfile(ctx, in)
}

func (m *mockClient) DescribeImageVersion(ctx context.Context, in *sagemaker.DescribeImageVersionInput) (*sagemaker.DescribeImageVersionOutput, error) {
	m.t.Helper()

	m.Calls.DescribeImageVersion = append(m.Calls.DescribeImageVersion, in)
	if m.Impl.DescribeImageVersion == nil {
		m.t.Fatal("DescribeImageVersion is not ready to be called")
	}
	return m.Impl.DescribeImageVersion(ctx, in)
}

func (m *mockClient) GetSagemakerServicecatalogPortfolioStatus(ctx context.Context, in *sagemaker.GetSagemakerServicecatalogPortfolioStatusInput) (*sagemaker.GetSagemakerServicecatalogPortfolioStatusOutput, error) {
	m.t.Helper()

	m.Calls.GetSagemakerServicecatalogPortfolioStatus = append(m.Calls.GetSagemakerServicecatalogPortfolioStatus, in)
	if m.Impl.GetSagemakerServicecatalogPortfolioStatus == nil {
		m.t.Fatal("GetSagemakerServicecatalogPortfolioStatus is not ready to be called")
	}
	return m.Impl.GetSagemakerServicecatalogPortfolioStatus(ctx, in)
}
