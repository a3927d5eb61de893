// Package sagemakerfake serves a fake SageMaker JSON API for tests.
//
// It speaks the awsJson1_1 protocol only as far as the AWS SDK needs for describe operations:
// the operation is taken from the X-Amz-Target header, and the reply is a JSON document
// registered by the test.
package sagemakerfake

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

const targetPrefix = "SageMaker."

// Request is a request received by the fake server.
type Request struct {
	// operation name, like "DescribeModel".
	Operation string

	// request body decoded as JSON object.
	Body map[string]any
}

type reply struct {
	status    int
	errorCode string
	body      []byte
}

type Server struct {
	*httptest.Server

	t        *testing.T
	mu       sync.Mutex
	replies  map[string]reply
	requests []Request
}

// New starts a fake server. It is closed after the test.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{t: t, replies: map[string]reply{}}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.POST("/", s.handle)

	s.Server = httptest.NewServer(e)
	t.Cleanup(s.Close)
	return s
}

// Respond registers a successful reply for the operation.
//
// body is encoded as JSON. Field names should be as in the SageMaker API (PascalCase).
func (s *Server) Respond(operation string, body any) {
	s.t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		s.t.Fatal(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[operation] = reply{status: http.StatusOK, body: buf}
}

// Fail registers an error reply for the operation.
func (s *Server) Fail(operation string, status int, code string, message string) {
	s.t.Helper()
	buf, err := json.Marshal(map[string]string{
		"__type":  code,
		"message": message,
	})
	if err != nil {
		s.t.Fatal(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[operation] = reply{status: status, errorCode: code, body: buf}
}

// Requests returns requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

func (s *Server) handle(c echo.Context) error {
	req := c.Request()
	target := req.Header.Get("X-Amz-Target")
	if !strings.HasPrefix(target, targetPrefix) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"__type":  "UnknownOperationException",
			"message": "unexpected target: " + target,
		})
	}
	operation := strings.TrimPrefix(target, targetPrefix)

	body := map[string]any{}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"__type":  "SerializationException",
			"message": err.Error(),
		})
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{Operation: operation, Body: body})
	rep, ok := s.replies[operation]
	s.mu.Unlock()

	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"__type":  "UnknownOperationException",
			"message": "no reply is registered for " + operation,
		})
	}

	header := c.Response().Header()
	header.Set("X-Amzn-RequestId", "fake-request-id")
	if rep.errorCode != "" {
		header.Set("X-Amzn-ErrorType", rep.errorCode)
	}
	return c.Blob(rep.status, "application/x-amz-json-1.1", rep.body)
}

// Context returns a context which is done 1 second before the deadline of the test,
// to leave time for cleanup.
func Context(t *testing.T) (context.Context, func()) {
	if deadline, ok := t.Deadline(); ok {
		return context.WithDeadline(context.Background(), deadline.Add(-time.Second))
	}
	return context.WithCancel(context.Background())
}
