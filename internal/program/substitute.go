// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package program

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Substitute returns a copy of body in which every whole-word occurrence of a
// parameter name is replaced by the argument in the same position. All
// parameters are replaced in a single pass, so an argument that happens to
// spell another parameter's name is not substituted again. The body is not
// modified.
func Substitute(body, params, args []string) ([]string, error) {
	if len(params) != len(args) {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrArityMismatch, len(params), len(args))
	}

	out := make([]string, len(body))
	if len(params) == 0 {
		copy(out, body)
		return out, nil
	}

	values := make(map[string]string, len(params))
	for i, p := range params {
		values[p] = args[i]
	}
	re := paramPattern(params)
	for i, line := range body {
		out[i] = re.ReplaceAllStringFunc(line, func(word string) string {
			return values[word]
		})
	}
	return out, nil
}

// paramPattern matches any of the names as a whole word. Longer names come
// first so a name that prefixes another never wins the alternation.
func paramPattern(names []string) *regexp.Regexp {
	sorted := append([]string(nil), names...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, n := range sorted {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
