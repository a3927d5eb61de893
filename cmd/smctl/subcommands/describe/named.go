package describe

import (
	"context"

	"github.com/opst/smctl/cmd/smctl/api"
	"github.com/opst/smctl/cmd/smctl/subcommands/describe/binding"
)

// byName binds an operation taking a resource name (or ARN) only.
//
// call is a method expression of api.Client, like api.Client.DescribeModel.
func byName[In any, Out any](
	description string,
	param binding.Param,
	request func(name string) *In,
	call func(api.Client, context.Context, *In) (*Out, error),
	project func(*Out) any,
) binding.Binding[binding.Flags, In, Out] {
	return binding.Binding[binding.Flags, In, Out]{
		Description: description,
		Params:      []binding.Param{param},
		Request: func(ids []string, _ binding.Flags) (*In, error) {
			return request(ids[0]), nil
		},
		Call: func(ctx context.Context, client api.Client, in *In) (*Out, error) {
			return call(client, ctx, in)
		},
		Project: project,
	}
}
