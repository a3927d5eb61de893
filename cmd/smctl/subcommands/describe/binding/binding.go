// Package binding binds a flarc command to a SageMaker describe operation.
//
// A describe command takes identifiers, builds a request from them, calls the API once per
// request, and writes responses to stdout.
package binding

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/opst/smctl/cmd/smctl/api"
	"github.com/opst/smctl/cmd/smctl/env"
	"github.com/opst/smctl/cmd/smctl/output"
	"github.com/opst/smctl/cmd/smctl/subcommands/common"
	kflag "github.com/opst/smctl/pkg/commandline/flag"
	"github.com/youta-t/flarc"
)

// Flags are flags which every describe command has.
type Flags struct {
	Output   string `flag:"output" alias:"o" metavar:"json|yaml" help:"Output format. Default is json, or \"output\" in smenv."`
	Full     bool   `flag:"full" help:"Show the whole response instead of the main part of it."`
	Progress bool   `flag:"progress" help:"Show progress on stderr while describing identifiers read from stdin."`

	Timeout *kflag.OptionalDuration `flag:"timeout" metavar:"DURATION" help:"Deadline of each API call, like 30s. It should be positive. Default is \"timeout\" in smenv."`
}

// NewFlags returns Flags with default values.
func NewFlags() Flags {
	return Flags{Timeout: &kflag.OptionalDuration{}}
}

// Flagger is a flag set of a describe command.
//
// Commands needing more flags embed their own struct with Flags fields and implement this.
type Flagger interface {
	DescribeFlags() Flags
}

func (f Flags) DescribeFlags() Flags {
	return f
}

// Param is a positional identifier of a describe command.
type Param struct {
	// Name in usage, like "MODEL_NAME".
	Name string
	Help string
}

// Binding is a definition of a describe command.
//
// In and Out are the request and the response type of the SDK.
type Binding[F Flagger, In any, Out any] struct {
	// one line description.
	Description string

	// long description. If empty, Description is used.
	Detail string

	// positional identifiers.
	//
	// When there is exactly one, it is repeatable and can be read from stdin.
	Params []Param

	// Request builds a request.
	//
	// ids are values of Params, in the same order.
	// An error returned from Request is a usage error.
	Request func(ids []string, flags F) (*In, error)

	// Call invokes the API.
	Call func(ctx context.Context, client api.Client, in *In) (*Out, error)

	// Project picks the main part of the response.
	// nil means the whole response is the main part.
	Project func(out *Out) any
}

// New creates a describe command.
//
// defaultFlags is the default value of flags.
//
// The command keeps flags parsed in a run, and values of them leak into the next run.
// Create a new command for each run.
func New[F Flagger, In any, Out any](b Binding[F, In, Out], defaultFlags F) (flarc.Command, error) {
	args := flarc.Args{}
	if len(b.Params) == 1 {
		p := b.Params[0]
		args = append(args, flarc.Args{
			{
				Name: p.Name, Required: false, Repeatable: true,
				Help: strings.TrimSpace(p.Help) +
					` If omitted, read from stdin, one per line.`,
			},
		}...)
	} else {
		for _, p := range b.Params {
			args = append(args, flarc.Args{
				{Name: p.Name, Required: true, Help: p.Help},
			}...)
		}
	}

	detail := b.Detail
	if detail == "" {
		detail = b.Description
	}

	return flarc.NewCommand(
		b.Description,
		defaultFlags,
		args,
		common.NewTask(Task(b)),
		flarc.WithDescription(detail),
	)
}

// Task is the body of a describe command.
func Task[F Flagger, In any, Out any](b Binding[F, In, Out]) common.Task[F] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		smEnv env.SMEnv,
		client api.Client,
		cl flarc.Commandline[F],
		params []any,
	) error {
		flags := cl.Flags()
		df := flags.DescribeFlags()

		formatName := df.Output
		if formatName == "" {
			formatName = smEnv.Output
		}
		format, err := output.ParseFormat(formatName)
		if err != nil {
			return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
		}

		timeout, err := smEnv.CallTimeout()
		if err != nil {
			return err
		}
		if d := df.Timeout.Duration(); d != nil {
			timeout = *d
		}

		calls, err := Identifiers(b.Params, cl.Args(), cl.Stdin())
		if err != nil {
			return err
		}

		requests := make([]*In, 0, len(calls))
		for _, ids := range calls {
			in, err := b.Request(ids, flags)
			if err != nil {
				return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
			}
			requests = append(requests, in)
		}

		var bar *pb.ProgressBar
		if df.Progress {
			bar = pb.New(len(requests))
			bar.SetWriter(cl.Stderr())
			bar.Start()
		}

		enc := output.NewEncoder(cl.Stdout(), format)
		done, err := describeAll(ctx, b, client, timeout, enc, calls, requests, df.Full, bar)
		if bar != nil {
			bar.Finish()
		}
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
		if err != nil && 1 < len(calls) {
			logger.Printf("described %d of %d, then stopped", done, len(calls))
		}
		return err
	}
}

func describeAll[F Flagger, In any, Out any](
	ctx context.Context,
	b Binding[F, In, Out],
	client api.Client,
	timeout time.Duration,
	enc *output.Encoder,
	calls [][]string,
	requests []*In,
	full bool,
	bar *pb.ProgressBar,
) (int, error) {
	for i, in := range requests {
		out, err := Describe(ctx, b, client, timeout, in)
		if err != nil {
			return i, fmt.Errorf("%w: %s", err, Subject(b.Params, calls[i]))
		}

		var v any = out
		if b.Project != nil && !full {
			v = b.Project(out)
		}
		if err := enc.Encode(v); err != nil {
			return i, err
		}
		if bar != nil {
			bar.Increment()
		}
	}
	return len(requests), nil
}

// Describe calls the API once, with timeout if it is positive.
func Describe[F Flagger, In any, Out any](
	ctx context.Context,
	b Binding[F, In, Out],
	client api.Client,
	timeout time.Duration,
	in *In,
) (*Out, error) {
	if 0 < timeout {
		tctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		ctx = tctx
	}
	return b.Call(ctx, client, in)
}

var ErrNoIdentifier = errors.New("no identifier is given")

// Identifiers collects identifiers for each call.
//
// # Returns
//
// - [][]string: identifiers for each call. Each element has values of params in order.
//
// For no params, it is one call without identifiers.
// For one param, each value is a call. Without values, each line from stdin is a call.
// For more params, it is one call with the first value of each.
//
// - error: wraps flarc.ErrUsage when identifiers are missing.
func Identifiers(params []Param, args map[string][]string, stdin io.Reader) ([][]string, error) {
	switch len(params) {
	case 0:
		return [][]string{{}}, nil
	case 1:
		name := params[0].Name
		calls := [][]string{}
		if given := args[name]; 0 < len(given) {
			for _, v := range given {
				if v = strings.TrimSpace(v); v == "" {
					return nil, fmt.Errorf("%w: %s is empty", flarc.ErrUsage, name)
				}
				calls = append(calls, []string{v})
			}
			return calls, nil
		}

		lines, err := readLines(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s from stdin: %w", name, err)
		}
		for _, l := range lines {
			calls = append(calls, []string{l})
		}
		if len(calls) == 0 {
			return nil, fmt.Errorf("%w: %w: %s", flarc.ErrUsage, ErrNoIdentifier, name)
		}
		return calls, nil
	default:
		ids := make([]string, 0, len(params))
		for _, p := range params {
			v := args[p.Name]
			if len(v) == 0 || strings.TrimSpace(v[0]) == "" {
				return nil, fmt.Errorf("%w: %w: %s", flarc.ErrUsage, ErrNoIdentifier, p.Name)
			}
			ids = append(ids, strings.TrimSpace(v[0]))
		}
		return [][]string{ids}, nil
	}
}

func readLines(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if l := strings.TrimSpace(scanner.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Subject formats identifiers for messages, like "MODEL_NAME:my-model".
func Subject(params []Param, ids []string) string {
	s := make([]string, 0, len(ids))
	for i, id := range ids {
		if i < len(params) {
			s = append(s, params[i].Name+":"+id)
		}
	}
	if len(s) == 0 {
		return "(no identifier)"
	}
	return strings.Join(s, ", ")
}
