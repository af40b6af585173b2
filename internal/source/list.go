// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

var errUnterminated = errors.New("unterminated list")

// ParseList decodes a list cell. JSON arrays are decoded directly; anything
// else is read as a Python list literal of strings, e.g. ['a', "b's"].
// Missing cells yield a nil slice.
func ParseList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if isMissing(raw) {
		return nil, nil
	}

	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return out, nil
	}
	return parsePythonList(raw)
}

func parsePythonList(s string) ([]string, error) {
	if !strings.HasPrefix(s, "[") {
		return nil, fmt.Errorf("expected '[' at start of %q", truncate(s))
	}
	var out []string
	i := 1
	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return nil, errUnterminated
		}
		if s[i] == ']' {
			if rest := strings.TrimSpace(s[i+1:]); rest != "" {
				return nil, fmt.Errorf("unexpected trailing %q", truncate(rest))
			}
			return out, nil
		}

		quote := s[i]
		if quote != '\'' && quote != '"' {
			return nil, fmt.Errorf("expected string at offset %d", i)
		}
		str, next, err := readQuoted(s, i+1, quote)
		if err != nil {
			return nil, err
		}
		out = append(out, str)

		i = skipSpace(s, next)
		if i >= len(s) {
			return nil, errUnterminated
		}
		switch s[i] {
		case ',':
			i++
		case ']':
		default:
			return nil, fmt.Errorf("expected ',' or ']' at offset %d", i)
		}
	}
}

// readQuoted reads a Python string body starting at i and returns the decoded
// value and the offset after the closing quote.
func readQuoted(s string, i int, quote byte) (string, int, error) {
	var b strings.Builder
	for i < len(s) {
		c := s[i]
		switch {
		case c == quote:
			return b.String(), i + 1, nil
		case c == '\\':
			if i+1 >= len(s) {
				return "", 0, errUnterminated
			}
			n, err := writeEscape(&b, s, i+1)
			if err != nil {
				return "", 0, err
			}
			i = n
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
		}
	}
	return "", 0, errUnterminated
}

// writeEscape decodes the escape sequence whose code starts at s[i] and
// returns the offset after it.
func writeEscape(b *strings.Builder, s string, i int) (int, error) {
	switch c := s[i]; c {
	case '\\', '\'', '"':
		b.WriteByte(c)
		return i + 1, nil
	case 'n':
		b.WriteByte('\n')
		return i + 1, nil
	case 't':
		b.WriteByte('\t')
		return i + 1, nil
	case 'r':
		b.WriteByte('\r')
		return i + 1, nil
	case 'x':
		return writeCodePoint(b, s, i+1, 2)
	case 'u':
		return writeCodePoint(b, s, i+1, 4)
	case 'U':
		return writeCodePoint(b, s, i+1, 8)
	default:
		// Python keeps unknown escapes verbatim.
		b.WriteByte('\\')
		b.WriteByte(c)
		return i + 1, nil
	}
}

func writeCodePoint(b *strings.Builder, s string, i, digits int) (int, error) {
	if i+digits > len(s) {
		return 0, errUnterminated
	}
	n, err := strconv.ParseUint(s[i:i+digits], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid escape %q", s[i:i+digits])
	}
	b.WriteRune(rune(n))
	return i + digits, nil
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func truncate(s string) string {
	const max = 32
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
