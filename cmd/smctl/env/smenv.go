package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidEnv = errors.New("invalid smenv")

// SMEnv is a project-wide default of smctl, read from a "smenv" file.
type SMEnv struct {
	// default output format ("json" or "yaml"). Empty means "json".
	Output string `yaml:"output,omitempty"`

	// Timeout is a deadline for each SageMaker API call, in Go duration format (like "30s").
	//
	// Empty means no deadline other than the AWS SDK's own.
	Timeout string `yaml:"timeout,omitempty"`
}

func New() *SMEnv {
	return new(SMEnv)
}

// CallTimeout returns the parsed Timeout.
//
// # Returns
//
// - time.Duration: the timeout. 0 if it is not set.
//
// - error: ErrInvalidEnv if Timeout is not a positive duration.
func (e SMEnv) CallTimeout() (time.Duration, error) {
	if e.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(e.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %w", ErrInvalidEnv, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout should be positive: %s", ErrInvalidEnv, e.Timeout)
	}
	return d, nil
}

// LoadSMEnv reads smenv file.
//
// If the file does not exist, it returns an empty SMEnv.
func LoadSMEnv(filepath string) (*SMEnv, error) {
	env := SMEnv{}

	content, err := os.ReadFile(filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &env, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(content, &env); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidEnv, filepath, err)
	}
	if _, err := env.CallTimeout(); err != nil {
		return nil, err
	}

	return &env, nil
}
