package main

import (
	"errors"
	"testing"
)

func TestCheckArgs(t *testing.T) {
	for name, testcase := range map[string]struct {
		argv    []string
		wantErr bool
	}{
		"no args":                         {argv: []string{}},
		"identifiers":                     {argv: []string{"describe", "model", "m1", "m2"}},
		"flags":                           {argv: []string{"describe", "model", "-o", "yaml", "--full", "m1"}},
		"stdin is read without arguments": {argv: []string{"describe", "model"}},
		"bare hyphen":                     {argv: []string{"describe", "model", "-"}, wantErr: true},
		"bare hyphen after --":            {argv: []string{"describe", "model", "--", "-"}, wantErr: true},
	} {
		t.Run(name, func(t *testing.T) {
			err := checkArgs(testcase.argv)
			if testcase.wantErr {
				if !errors.Is(err, ErrBareHyphen) {
					t.Errorf("unexpected error: %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
