// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package interpreter executes robot programs.
//
// The Executor walks an instruction list once, front to back. Primitive
// commands act on the Robot directly. A REPEAT scope is cut out of the list and
// executed n times by recursion; a CALL is resolved in the function table, its
// body is expanded by textual parameter substitution, and the expanded list is
// executed by recursion. FUNCTION scopes are skipped, since the table was
// already built from them.
//
// Every recursive entry is one level deeper. Past the configured maximum the
// run fails with ErrCallDepthExceeded, which is what stops a function that
// calls itself.
package interpreter
