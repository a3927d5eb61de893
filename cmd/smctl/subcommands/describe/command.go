// Package describe is the "describe" command group.
//
// Each subcommand describes one kind of SageMaker resource.
package describe

import (
	"github.com/opst/smctl/cmd/smctl/subcommands/describe/binding"
	"github.com/youta-t/flarc"
)

// New creates the "describe" command group.
//
// Commands in the group keep flags parsed in a run. Create a new group for each run.
func New() (flarc.Command, error) {
	labelingJob, err := binding.New(LabelingJob, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	model, err := binding.New(Model, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	transformJob, err := binding.New(TransformJob, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	workteam, err := binding.New(Workteam, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	trainingJob, err := binding.New(TrainingJob, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	processingJob, err := binding.New(ProcessingJob, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	tuningJob, err := binding.New(TuningJob, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	compilationJob, err := binding.New(CompilationJob, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	endpoint, err := binding.New(Endpoint, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	endpointConfig, err := binding.New(EndpointConfig, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	notebookInstance, err := binding.New(NotebookInstance, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	subscribedWorkteam, err := binding.New(SubscribedWorkteam, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	workforce, err := binding.New(Workforce, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	userProfile, err := binding.New(UserProfile, binding.NewFlags())
	if err != nil {
		return nil, err
	}
	imageVersion, err := binding.New(ImageVersion, NewImageVersionFlags())
	if err != nil {
		return nil, err
	}
	portfolioStatus, err := binding.New(PortfolioStatus, binding.NewFlags())
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Describe SageMaker resources.",
		struct{}{},
		flarc.WithSubcommand("labeling-job", labelingJob),
		flarc.WithSubcommand("model", model),
		flarc.WithSubcommand("transform-job", transformJob),
		flarc.WithSubcommand("workteam", workteam),
		flarc.WithSubcommand("training-job", trainingJob),
		flarc.WithSubcommand("processing-job", processingJob),
		flarc.WithSubcommand("tuning-job", tuningJob),
		flarc.WithSubcommand("compilation-job", compilationJob),
		flarc.WithSubcommand("endpoint", endpoint),
		flarc.WithSubcommand("endpoint-config", endpointConfig),
		flarc.WithSubcommand("notebook-instance", notebookInstance),
		flarc.WithSubcommand("subscribed-workteam", subscribedWorkteam),
		flarc.WithSubcommand("workforce", workforce),
		flarc.WithSubcommand("user-profile", userProfile),
		flarc.WithSubcommand("image-version", imageVersion),
		flarc.WithSubcommand("portfolio-status", portfolioStatus),
	)
}
