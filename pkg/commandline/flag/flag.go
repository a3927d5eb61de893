package flag

import (
	"fmt"
	"strconv"
	"time"
)

// OptionalDuration is a flag.Value of time.Duration, which can tell whether it is set or not.
type OptionalDuration struct {
	d     time.Duration
	isSet bool
}

func (t *OptionalDuration) String() string {
	if t == nil || !t.isSet {
		return ""
	}
	return t.d.String()
}

func (t *OptionalDuration) Set(v string) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("duration should be positive: %s", v)
	}
	t.d = d
	t.isSet = true
	return nil
}

// Duration returns the value, or nil if it is not set.
func (t *OptionalDuration) Duration() *time.Duration {
	if t == nil || !t.isSet {
		return nil
	}
	return &t.d
}

// OptionalInt32 is a flag.Value of int32, which can tell whether it is set or not.
type OptionalInt32 struct {
	v     int32
	isSet bool
}

func (i *OptionalInt32) String() string {
	if i == nil || !i.isSet {
		return ""
	}
	return strconv.FormatInt(int64(i.v), 10)
}

func (i *OptionalInt32) Set(v string) error {
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return err
	}
	i.v = int32(n)
	i.isSet = true
	return nil
}

// Int32 returns the value, or nil if it is not set.
func (i *OptionalInt32) Int32() *int32 {
	if i == nil || !i.isSet {
		return nil
	}
	return &i.v
}
