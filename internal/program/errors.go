// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package program

import "errors"

var (
	// ErrMalformedProgram is returned for unbalanced scopes, stray closers and
	// unparseable signatures or call sites.
	ErrMalformedProgram = errors.New("malformed program")
	// ErrDuplicateParam is returned when a function declares the same parameter twice.
	ErrDuplicateParam = errors.New("duplicate parameter")
	// ErrArityMismatch is returned when a call passes a different number of
	// arguments than the function declares.
	ErrArityMismatch = errors.New("argument count does not match parameter count")
	// ErrInvalidRepeatCount is returned when a REPEAT count is missing, not an
	// integer, or negative.
	ErrInvalidRepeatCount = errors.New("invalid repeat count")
)
