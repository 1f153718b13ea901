// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

// Logger defines the interface that is used to keep a record of all events
// that happen to the program.
type Logger interface {
	// Fatal that the program is in an unrecoverable state
	Fatal(msg string, fields ...zap.Field)
	// Error that the program is in a, potentially recoverable, misstate
	Error(msg string, fields ...zap.Field)
	// Warn that there was an event that may indicate a misstate
	Warn(msg string, fields ...zap.Field)
	// Info of an event that may be useful for an operator
	Info(msg string, fields ...zap.Field)
	// Debug information useful for a developer to diagnose a misstate
	Debug(msg string, fields ...zap.Field)
	// Verbo information typically too verbose to emit outside of targeted
	// debugging sessions
	Verbo(msg string, fields ...zap.Field)

	// Stop flushes any buffered messages
	Stop()
}
