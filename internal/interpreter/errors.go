// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package interpreter

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedFunction is returned when a CALL names a function that is not
	// in the table.
	ErrUndefinedFunction = errors.New("function not defined")
	// ErrCallDepthExceeded is returned when nested REPEAT and CALL scopes go
	// deeper than the executor allows.
	ErrCallDepthExceeded = errors.New("maximum call depth exceeded")
)

// Error reports where in a program execution failed. It wraps the underlying
// cause, so errors.Is works against the sentinels of this package and of the
// program package.
type Error struct {
	// Token is the instruction that failed.
	Token string
	// Function is the function whose expanded body contained Token, or empty at
	// the top level.
	Function string
	// Name is the function a failing CALL referred to, if any.
	Name  string
	Depth int
	Err   error
}

func (e *Error) Error() string {
	where := "top level"
	if e.Function != "" {
		where = fmt.Sprintf("function %q", e.Function)
	}
	if e.Name != "" {
		return fmt.Sprintf("%q in %s: %v: %s", e.Token, where, e.Err, e.Name)
	}
	return fmt.Sprintf("%q in %s: %v", e.Token, where, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
