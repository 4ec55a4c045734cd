// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package program

import "strings"

// Language keywords.
const (
	KeywordLeft        = "LEFT"
	KeywordRight       = "RIGHT"
	KeywordForward     = "FORWARD"
	KeywordLight       = "LIGHT"
	KeywordRepeat      = "REPEAT"
	KeywordEndRepeat   = "ENDREPEAT"
	KeywordFunction    = "FUNCTION"
	KeywordEndFunction = "ENDFUNCTION"
	KeywordCall        = "CALL"
)

var keywords = map[string]struct{}{
	KeywordLeft: {}, KeywordRight: {}, KeywordForward: {}, KeywordLight: {},
	KeywordRepeat: {}, KeywordEndRepeat: {}, KeywordFunction: {}, KeywordEndFunction: {},
	KeywordCall: {},
}

// IsKeyword reports whether word is reserved by the language.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Kind classifies a single token.
type Kind int

const (
	// KindOther is any token the language does not recognize. It is ignored
	// at execution time.
	KindOther Kind = iota
	KindLeft
	KindRight
	KindForward
	KindLight
	KindRepeat
	KindEndRepeat
	KindFunction
	KindEndFunction
	KindCall
)

var kindNames = [...]string{
	KindOther:       "other",
	KindLeft:        "left",
	KindRight:       "right",
	KindForward:     "forward",
	KindLight:       "light",
	KindRepeat:      "repeat",
	KindEndRepeat:   "endrepeat",
	KindFunction:    "function",
	KindEndFunction: "endfunction",
	KindCall:        "call",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Opener reports whether the kind starts a scope.
func (k Kind) Opener() bool {
	return k == KindRepeat || k == KindFunction
}

// Closer reports whether the kind ends a scope.
func (k Kind) Closer() bool {
	return k == KindEndRepeat || k == KindEndFunction
}

// closerOf returns the closer that balances an opener kind.
func closerOf(k Kind) Kind {
	switch k {
	case KindRepeat:
		return KindEndRepeat
	case KindFunction:
		return KindEndFunction
	}
	return KindOther
}

// Classify returns the kind of a token. Primitive commands and closers must
// match exactly; REPEAT, FUNCTION and CALL are recognized by prefix since they
// carry operands.
func Classify(token string) Kind {
	token = strings.TrimSpace(token)
	switch token {
	case KeywordLeft:
		return KindLeft
	case KeywordRight:
		return KindRight
	case KeywordForward:
		return KindForward
	case KeywordLight:
		return KindLight
	case KeywordEndRepeat:
		return KindEndRepeat
	case KeywordEndFunction:
		return KindEndFunction
	}
	switch {
	case strings.HasPrefix(token, KeywordRepeat):
		return KindRepeat
	case strings.HasPrefix(token, KeywordFunction):
		return KindFunction
	case strings.HasPrefix(token, KeywordCall):
		return KindCall
	}
	return KindOther
}
