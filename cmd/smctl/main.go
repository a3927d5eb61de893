//go:generate go run github.com/Songmu/gocredits/cmd/gocredits@v0.3.0 -w
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/opst/smctl/cmd/smctl/subcommands/common"
	subdesc "github.com/opst/smctl/cmd/smctl/subcommands/describe"
	"github.com/opst/smctl/cmd/smctl/subcommands/extensions"
	subinit "github.com/opst/smctl/cmd/smctl/subcommands/init"
	sublic "github.com/opst/smctl/cmd/smctl/subcommands/license"
	"github.com/opst/smctl/cmd/smctl/subcommands/logger"
	subver "github.com/opst/smctl/cmd/smctl/subcommands/version"
	"github.com/opst/smctl/pkg/utils/try"
	"github.com/youta-t/flarc"
)

//go:embed CREDITS
var CREDITS string

func main() {
	name := path.Base(os.Args[0])
	logger := logger.New(os.Stderr, name)

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	init := try.To(subinit.New()).OrFatal(logger)
	describe := try.To(subdesc.New()).OrFatal(logger)
	license := try.To(sublic.New(CREDITS)).OrFatal(logger)
	version := try.To(subver.New()).OrFatal(logger)

	exts := try.To(extensions.Subcommands(
		flarc.WithSubcommand,
		extensions.FindSubcommand(name+"-"),
		"init", "describe", "license", "version",
	)).OrFatal(logger)

	smctl := try.To(
		flarc.NewCommandGroup(
			"SageMaker describe commandline",
			cf,
			append(
				exts,
				flarc.WithSubcommand("init", init),
				flarc.WithSubcommand("describe", describe),
				flarc.WithSubcommand("license", license),
				flarc.WithSubcommand("version", version),
			)...,
		),
	).OrFatal(logger)

	argv := os.Args[1:]
	if err := checkArgs(argv); err != nil {
		logger.Println(err)
		os.Exit(2)
	}

	os.Exit(flarc.Run(ctx, smctl, flarc.WithArgs(argv), flarc.WithHelp(true)))
}

var ErrBareHyphen = errors.New(`"-" is not accepted as an argument`)

// checkArgs rejects arguments which the commandline parser cannot handle.
//
// A bare "-" makes the parser panic.
func checkArgs(argv []string) error {
	for i, a := range argv {
		if a == "-" {
			return fmt.Errorf(
				"%w (#%d). To read identifiers from stdin, omit them", ErrBareHyphen, i+1,
			)
		}
	}
	return nil
}
