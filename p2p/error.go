// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpected should be used to indicate that a request failed due to a
	// generic error
	ErrUnexpected = &AppError{
		Code:    -1,
		Message: "unexpected error",
	}
	// ErrUnregisteredHandler should be used to indicate that a request failed
	// because no handler is registered for the requested protocol
	ErrUnregisteredHandler = &AppError{
		Code:    -2,
		Message: "unregistered handler",
	}
	// ErrNotValidator should be used to indicate that a request failed
	// because the requesting peer is not a validator
	ErrNotValidator = &AppError{
		Code:    -3,
		Message: "not a validator",
	}
	// ErrThrottled should be used to indicate that a request failed because
	// the requesting peer exceeded a rate limit
	ErrThrottled = &AppError{
		Code:    -4,
		Message: "throttled",
	}
	// ErrTimeout is returned to the issuing callback when a peer does not
	// answer an AppRequest before its deadline
	ErrTimeout = &AppError{
		Code:    -5,
		Message: "timed out",
	}
)

// AppError is an application-defined error that is transported back to the
// requesting peer instead of a response.
type AppError struct {
	// Code is an application-defined error code
	Code int32
	// Message is a human-readable error message
	Message string
}

func (a *AppError) Error() string {
	return fmt.Sprintf("%d: %s", a.Code, a.Message)
}

// Is two AppErrors are equal if their error codes match.
func (a *AppError) Is(target error) bool {
	appErr, ok := target.(*AppError)
	if !ok {
		return false
	}
	return a.Code == appErr.Code
}

// GetErrorCode returns the error code of [err] if it is an AppError;
// ErrUnexpected's code otherwise.
func GetErrorCode(err error) int32 {
	appErr := &AppError{}
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrUnexpected.Code
}
