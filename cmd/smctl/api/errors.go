package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/aws/smithy-go"
	cerr "github.com/opst/smctl/cmd/smctl/errors"
)

var (
	// the resource to be described does not exist.
	ErrNotFound = errors.New("resource not found")

	// the request is not authenticated or not authorized.
	ErrAuthentication = errors.New("authentication failed")

	// the request is throttled by the service.
	ErrThrottled = errors.New("request throttled")

	// the service responded with an error other than the above.
	ErrService = errors.New("service error")

	// the service cannot be reached.
	ErrNetwork = errors.New("network error")
)

var authErrorCodes = map[string]struct{}{
	"UnrecognizedClientException": {},
	"InvalidSignatureException":   {},
	"IncompleteSignature":         {},
	"InvalidClientTokenId":        {},
	"MissingAuthenticationToken":  {},
	"ExpiredToken":                {},
	"ExpiredTokenException":       {},
	"AccessDenied":                {},
	"AccessDeniedException":       {},
}

var throttlingErrorCodes = map[string]struct{}{
	"ThrottlingException":           {},
	"Throttling":                    {},
	"RequestLimitExceeded":          {},
	"TooManyRequestsException":      {},
	"ProvisionedThroughputExceeded": {},
}

// SageMaker reports most missing resources as ValidationException with these phrases.
var notFoundPhrases = []string{
	"could not find",
	"does not exist",
	"not found",
}

func isNotFound(apierr smithy.APIError) bool {
	if apierr.ErrorCode() == "ResourceNotFound" {
		return true
	}
	if apierr.ErrorCode() != "ValidationException" {
		return false
	}
	message := strings.ToLower(apierr.ErrorMessage())
	for _, p := range notFoundPhrases {
		if strings.Contains(message, p) {
			return true
		}
	}
	return false
}

// classify converts an error of the AWS SDK into CUIError.
//
// The original error is kept as the cause.
// Context cancellation and unknown errors are returned as they are.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	operation := "request"
	if operr := new(smithy.OperationError); errors.As(err, &operr) {
		operation = operr.Operation()
	}

	var apierr smithy.APIError
	if errors.As(err, &apierr) {
		code := apierr.ErrorCode()
		detail := cerr.WithDetail(func(summary string) (string, error) {
			return fmt.Sprintf("%s\n%s: %s", summary, code, apierr.ErrorMessage()), nil
		})

		switch {
		case isNotFound(apierr):
			return cerr.NewCuiError(
				operation+": "+ErrNotFound.Error(),
				detail, cerr.WithKind(ErrNotFound), cerr.WithCause(err),
			)
		case has(authErrorCodes, code):
			return cerr.NewCuiError(
				operation+": "+ErrAuthentication.Error()+". Check AWS credentials in use",
				detail, cerr.WithKind(ErrAuthentication), cerr.WithCause(err),
			)
		case has(throttlingErrorCodes, code):
			return cerr.NewCuiError(
				operation+": "+ErrThrottled.Error()+". Try again later",
				detail, cerr.WithKind(ErrThrottled), cerr.WithCause(err),
			)
		default:
			return cerr.NewCuiError(
				fmt.Sprintf("%s: %s (%s fault)", operation, ErrService, apierr.ErrorFault()),
				detail, cerr.WithKind(ErrService), cerr.WithCause(err),
			)
		}
	}

	if dnserr := new(net.DNSError); errors.As(err, &dnserr) {
		return cerr.NewCuiError(
			fmt.Sprintf("%s: %s: cannot resolve host %s", operation, ErrNetwork, dnserr.Name),
			cerr.WithKind(ErrNetwork), cerr.WithCause(err),
		)
	}
	if neterr := net.Error(nil); errors.As(err, &neterr) {
		return cerr.NewCuiError(
			fmt.Sprintf("%s: %s", operation, ErrNetwork),
			cerr.WithKind(ErrNetwork),
			cerr.WithCause(err),
			cerr.WithDetail(func(summary string) (string, error) {
				return summary + "\n" + neterr.Error(), nil
			}),
		)
	}

	return err
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
