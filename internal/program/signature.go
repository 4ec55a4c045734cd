// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package program

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// paramRegex is the shape every declared parameter name must have. Parameters
// are substituted on word boundaries, so they have to be words.
var paramRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ParseSignature parses a function opener such as "FUNCTION walk(n, turn)".
// Parentheses are optional; "FUNCTION walk" and "FUNCTION walk()" both
// declare no parameters.
func ParseSignature(token string) (name string, params []string, err error) {
	rest := strings.TrimPrefix(strings.TrimSpace(token), KeywordFunction)
	name, params, err = splitHead(rest, false)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrMalformedProgram, token, err)
	}
	if name == "" {
		return "", nil, fmt.Errorf("%w: %q: function name is empty", ErrMalformedProgram, token)
	}

	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if !paramRegex.MatchString(p) || IsKeyword(p) {
			return "", nil, fmt.Errorf("%w: %q: invalid parameter name %q", ErrMalformedProgram, token, p)
		}
		if _, dup := seen[p]; dup {
			return "", nil, fmt.Errorf("%w: %q in function %q", ErrDuplicateParam, p, name)
		}
		seen[p] = struct{}{}
	}
	return name, params, nil
}

// ParseCall parses a call site such as "CALL walk(3, LEFT)". A call without
// parentheses passes no arguments.
func ParseCall(token string) (name string, args []string, err error) {
	rest := strings.TrimPrefix(strings.TrimSpace(token), KeywordCall)
	name, args, err = splitHead(rest, true)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrMalformedProgram, token, err)
	}
	return name, args, nil
}

// RepeatCount extracts n from "REPEAT n".
func RepeatCount(token string) (int, error) {
	fields := strings.Fields(token)
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: %q has no count", ErrInvalidRepeatCount, token)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidRepeatCount, fields[1])
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidRepeatCount, n)
	}
	return n, nil
}

// splitHead splits "name(a, b)" into the name and its trimmed, comma-separated
// list. When lastParen is set the list ends at the last ')' instead of the
// first, so call arguments may themselves contain parentheses.
func splitHead(s string, lastParen bool) (string, []string, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return strings.TrimSpace(s), nil, nil
	}

	closeIdx := strings.IndexByte(s[open:], ')')
	if lastParen {
		closeIdx = strings.LastIndexByte(s[open:], ')')
	}
	if closeIdx < 0 {
		return "", nil, fmt.Errorf("missing closing parenthesis")
	}
	closeIdx += open

	name := strings.TrimSpace(s[:open])
	inner := strings.TrimSpace(s[open+1 : closeIdx])
	if inner == "" {
		return name, nil, nil
	}

	parts := strings.Split(inner, ",")
	items := make([]string, len(parts))
	for i, p := range parts {
		items[i] = strings.TrimSpace(p)
		if items[i] == "" {
			return "", nil, fmt.Errorf("empty item at position %d", i+1)
		}
	}
	return name, items, nil
}
