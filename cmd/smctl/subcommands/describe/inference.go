package describe

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/opst/smctl/cmd/smctl/api"
	"github.com/opst/smctl/cmd/smctl/subcommands/describe/binding"
)

var Model = byName(
	"Describe models.",
	binding.Param{Name: "MODEL_NAME", Help: "Name of the model."},
	func(name string) *sagemaker.DescribeModelInput {
		return &sagemaker.DescribeModelInput{ModelName: aws.String(name)}
	},
	api.Client.DescribeModel,
	nil,
)

var Endpoint = byName(
	"Describe endpoints.",
	binding.Param{Name: "ENDPOINT_NAME", Help: "Name of the endpoint."},
	func(name string) *sagemaker.DescribeEndpointInput {
		return &sagemaker.DescribeEndpointInput{EndpointName: aws.String(name)}
	},
	api.Client.DescribeEndpoint,
	nil,
)

var EndpointConfig = byName(
	"Describe endpoint configurations.",
	binding.Param{Name: "ENDPOINT_CONFIG_NAME", Help: "Name of the endpoint configuration."},
	func(name string) *sagemaker.DescribeEndpointConfigInput {
		return &sagemaker.DescribeEndpointConfigInput{EndpointConfigName: aws.String(name)}
	},
	api.Client.DescribeEndpointConfig,
	nil,
)

var NotebookInstance = byName(
	"Describe notebook instances.",
	binding.Param{Name: "NOTEBOOK_INSTANCE_NAME", Help: "Name of the notebook instance."},
	func(name string) *sagemaker.DescribeNotebookInstanceInput {
		return &sagemaker.DescribeNotebookInstanceInput{NotebookInstanceName: aws.String(name)}
	},
	api.Client.DescribeNotebookInstance,
	nil,
)
