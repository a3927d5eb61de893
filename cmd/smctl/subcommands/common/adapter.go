package common

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/opst/smctl/cmd/smctl/api"
	"github.com/opst/smctl/cmd/smctl/config/profiles"
	"github.com/opst/smctl/cmd/smctl/env"
	"github.com/youta-t/flarc"
)

type TaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task TaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		logger := log.New(cl.Stderr(), "", log.LstdFlags)
		logger.SetPrefix(fmt.Sprintf("[%s] ", cl.Fullname()))

		return task(ctx, logger, commonFlag, cl, newpos)
	}
}

type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	smEnv env.SMEnv,
	client api.Client,
	cl flarc.Commandline[T],
	params []any,
) error

// NewTask builds flarc.Task which calls task with the SageMaker client of the profile in use.
func NewTask[T any](task Task[T]) flarc.Task[T] {
	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		prof, err := LoadProfile(commonFlag)
		if err != nil {
			return err
		}

		e, err := env.LoadSMEnv(commonFlag.Env)
		if err != nil {
			return fmt.Errorf("%w: failed to load smenv (%s)", err, commonFlag.Env)
		}

		client, err := api.NewClient(ctx, prof)
		if err != nil {
			return fmt.Errorf(
				"%w: failed to create SageMaker client. Your profile (%s in %s) can be broken.\n\nRemove it and try `smctl init` again",
				err, commonFlag.Profile, commonFlag.ProfileStore,
			)
		}
		return task(ctx, logger, *e, client, cl, params)
	})
}

// LoadProfile loads the profile named by the common flags.
func LoadProfile(commonFlag CommonFlags) (*profiles.Profile, error) {
	store, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileStoreNotFound) {
			return nil, fmt.Errorf(
				"%w: Please try `smctl init` first",
				err,
			)
		}
		return nil, fmt.Errorf(
			"%w: failed to load profile store (%s)",
			err, commonFlag.ProfileStore,
		)
	}
	prof, ok := store[commonFlag.Profile]
	if !ok || prof == nil {
		return nil, fmt.Errorf(
			"profile '%s' not found in the profile store (%s). Please try `smctl init` first",
			commonFlag.Profile, commonFlag.ProfileStore,
		)
	}
	return prof, nil
}
