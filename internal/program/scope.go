// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package program

import "fmt"

// FindClose returns the index of the token that balances the opener at
// list[open]. Only scopes of the opener's own kind are counted, so a REPEAT
// inside a FUNCTION body does not affect where the function ends.
//
// If no balancing closer exists, FindClose returns len(list) and false; the
// scope then runs to the end of the list.
func FindClose(list []string, open int) (int, bool) {
	kind := Classify(list[open])
	closer := closerOf(kind)
	level := 1
	for j := open + 1; j < len(list); j++ {
		switch Classify(list[j]) {
		case kind:
			level++
		case closer:
			level--
			if level == 0 {
				return j, true
			}
		}
	}
	return len(list), false
}

// Validate checks that every REPEAT and FUNCTION scope is closed by its own
// closer and that scopes nest properly. It also rejects stray closers.
func Validate(list []string) error {
	type frame struct {
		kind  Kind
		index int
	}
	var stack []frame

	for i, token := range list {
		kind := Classify(token)
		switch {
		case kind.Opener():
			stack = append(stack, frame{kind: kind, index: i})
		case kind.Closer():
			if len(stack) == 0 {
				return fmt.Errorf("%w: %q at position %d closes nothing", ErrMalformedProgram, token, i)
			}
			top := stack[len(stack)-1]
			if closerOf(top.kind) != kind {
				return fmt.Errorf("%w: %q at position %d does not close %q at position %d",
					ErrMalformedProgram, token, i, list[top.index], top.index)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return fmt.Errorf("%w: %q at position %d is never closed", ErrMalformedProgram, list[top.index], top.index)
	}
	return nil
}
