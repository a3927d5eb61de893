package describe

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/opst/smctl/cmd/smctl/api"
	"github.com/opst/smctl/cmd/smctl/subcommands/describe/binding"
)

var LabelingJob = byName(
	"Describe labeling jobs.",
	binding.Param{Name: "LABELING_JOB_NAME", Help: "Name of the labeling job."},
	func(name string) *sagemaker.DescribeLabelingJobInput {
		return &sagemaker.DescribeLabelingJobInput{LabelingJobName: aws.String(name)}
	},
	api.Client.DescribeLabelingJob,
	nil,
)

var TransformJob = byName(
	"Describe batch transform jobs.",
	binding.Param{Name: "TRANSFORM_JOB_NAME", Help: "Name of the transform job."},
	func(name string) *sagemaker.DescribeTransformJobInput {
		return &sagemaker.DescribeTransformJobInput{TransformJobName: aws.String(name)}
	},
	api.Client.DescribeTransformJob,
	nil,
)

var TrainingJob = byName(
	"Describe training jobs.",
	binding.Param{Name: "TRAINING_JOB_NAME", Help: "Name of the training job."},
	func(name string) *sagemaker.DescribeTrainingJobInput {
		return &sagemaker.DescribeTrainingJobInput{TrainingJobName: aws.String(name)}
	},
	api.Client.DescribeTrainingJob,
	nil,
)

var ProcessingJob = byName(
	"Describe processing jobs.",
	binding.Param{Name: "PROCESSING_JOB_NAME", Help: "Name of the processing job."},
	func(name string) *sagemaker.DescribeProcessingJobInput {
		return &sagemaker.DescribeProcessingJobInput{ProcessingJobName: aws.String(name)}
	},
	api.Client.DescribeProcessingJob,
	nil,
)

var TuningJob = byName(
	"Describe hyperparameter tuning jobs.",
	binding.Param{Name: "TUNING_JOB_NAME", Help: "Name of the hyperparameter tuning job."},
	func(name string) *sagemaker.DescribeHyperParameterTuningJobInput {
		return &sagemaker.DescribeHyperParameterTuningJobInput{HyperParameterTuningJobName: aws.String(name)}
	},
	api.Client.DescribeHyperParameterTuningJob,
	nil,
)

var CompilationJob = byName(
	"Describe model compilation jobs.",
	binding.Param{Name: "COMPILATION_JOB_NAME", Help: "Name of the compilation job."},
	func(name string) *sagemaker.DescribeCompilationJobInput {
		return &sagemaker.DescribeCompilationJobInput{CompilationJobName: aws.String(name)}
	},
	api.Client.DescribeCompilationJob,
	nil,
)
