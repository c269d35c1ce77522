package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseImmediate decodes a numeric literal: decimal, or 0x/0b/0o-prefixed
// hex/binary/octal, with an optional leading '-'. Values beyond the
// int32 range but within uint32 are accepted and reinterpreted as their
// two's-complement int32 (so "0xFFFFFFFF" parses the same as "-1").
func ParseImmediate(s string) (int32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &Error{Kind: ErrorBadImmediate, Message: "empty immediate value"}
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	lower := strings.ToLower(s)
	var v uint64
	var err error
	switch {
	case strings.HasPrefix(lower, "0x"):
		v, err = strconv.ParseUint(s[2:], 16, 64)
	case strings.HasPrefix(lower, "0b"):
		v, err = strconv.ParseUint(s[2:], 2, 64)
	case strings.HasPrefix(lower, "0o"):
		v, err = strconv.ParseUint(s[2:], 8, 64)
	default:
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, &Error{Kind: ErrorBadImmediate, Message: fmt.Sprintf("invalid immediate literal: %q", s), Wrapped: err}
	}

	if neg {
		if v > 1<<31 {
			return 0, &Error{Kind: ErrorBadImmediate, Message: fmt.Sprintf("immediate literal out of range: %q", s)}
		}
		return int32(-int64(v)), nil
	}
	if v > math.MaxUint32 {
		return 0, &Error{Kind: ErrorBadImmediate, Message: fmt.Sprintf("immediate literal out of range: %q", s)}
	}
	return int32(uint32(v)), nil
}
