// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Error kinds of the Sync Client. Every error returned by a [ServerAdapter]
// matches exactly one of them with [errors.Is].
var (
	// ErrNetwork means no response was received from the endpoint.
	ErrNetwork = errors.New("network error")
	// ErrTimeout means no response arrived within the bounded wait.
	ErrTimeout = errors.New("request timed out")
	// ErrApplication means the remote answered with a failure envelope or a
	// non-2xx status.
	ErrApplication = errors.New("application error")
	// ErrParse means the response body could not be decoded.
	ErrParse = errors.New("malformed response")
	// ErrEndpointNotConfigured means no endpoint URL has been set.
	ErrEndpointNotConfigured = errors.New("remote endpoint is not configured")
)

// excerptLimit bounds the response text carried by errors for diagnosis.
const excerptLimit = 256

// ApplicationError is a well-formed failure reported by the remote.
type ApplicationError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Message is the remote error message or a response excerpt.
	Message string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("%s: http %d: %s", ErrApplication, e.Status, e.Message)
}

// Is makes errors.Is(err, ErrApplication) match.
func (e *ApplicationError) Is(target error) bool {
	return target == ErrApplication
}

// ParseError is returned when a response body is not a valid envelope.
type ParseError struct {
	// Excerpt is the beginning of the offending body.
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v: %q", ErrParse, e.Err, e.Excerpt)
}

// Is makes errors.Is(err, ErrParse) match.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func excerpt(body []byte) string {
	if len(body) <= excerptLimit {
		return string(body)
	}
	return string(body[:excerptLimit]) + "..."
}
