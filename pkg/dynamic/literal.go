package dynamic

import (
	"strconv"
	"strings"

	"github.com/funvibe/aardvark/internal/config"
)

// ParseLiteral turns source or console text into a Value:
//
//	True, False      Bool
//	42, -7           Int
//	2.5, 1e3, .5     Double
//	"hi", 'hi'       String without the quotes
//
// Anything else is a String holding the text unchanged.
func ParseLiteral(text string) Value {
	switch text {
	case config.TrueText:
		return Bool(true)
	case config.FalseText:
		return Bool(false)
	}
	if n := len(text); n >= 2 && (text[0] == '"' || text[0] == '\'') && text[n-1] == text[0] {
		return String(text[1 : n-1])
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(i)
	}
	if isDecimalFloat(text) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Double(f)
		}
	}
	return String(text)
}

// isDecimalFloat rejects the forms ParseFloat accepts beyond plain decimal
// notation (Inf, NaN, hex mantissas, underscores).
func isDecimalFloat(s string) bool {
	if !strings.ContainsAny(s, "0123456789") {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == 'e', r == 'E', r == '+', r == '-':
		default:
			return false
		}
	}
	return true
}
