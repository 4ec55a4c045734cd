// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package program understands the structure of a robot program without running
// it.
//
// A program is a flat list of tokens. Scopes are marked by paired tokens:
// "FUNCTION name(p1, p2)" ... "ENDFUNCTION" and "REPEAT n" ... "ENDREPEAT".
// This package classifies tokens, finds the closer that balances an opener,
// validates nesting, harvests function definitions into a Table, and expands
// a function body for a call by textual parameter substitution.
//
// Nothing here mutates a world; execution lives in the interpreter package.
package program
