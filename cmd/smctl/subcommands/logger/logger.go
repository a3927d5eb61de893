package logger

import (
	"fmt"
	"io"
	"log"
)

// Null returns a logger which discards everything.
func Null() *log.Logger {
	return log.New(io.Discard, "", log.LstdFlags)
}

// New returns a logger writing to w, prefixed with "[name] ".
func New(w io.Writer, name string) *log.Logger {
	return log.New(w, fmt.Sprintf("[%s] ", name), log.LstdFlags)
}
