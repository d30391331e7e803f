package testsupport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ExtractStringLiteral returns the first double-quoted literal (quotes
// included) that follows marker in src.
func ExtractStringLiteral(src, marker string) (string, bool) {
	idx := strings.Index(src, marker)
	if idx < 0 {
		return "", false
	}
	rest := src[idx+len(marker):]
	start := strings.IndexByte(rest, '"')
	if start < 0 {
		return "", false
	}
	for i := start + 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case '"':
			return rest[start : i+1], true
		case '\n':
			return "", false
		}
	}
	return "", false
}

// DecodeJavaString decodes a quoted Java string literal.
func DecodeJavaString(literal string) (string, error) {
	body, err := unquote(literal)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", errors.New("testsupport: dangling escape")
		}
		switch e := body[i]; e {
		case '\\', '"', '\'':
			b.WriteByte(e)
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			return "", errors.New("testsupport: unicode escapes are decoded before lexing and must not appear")
		default:
			if e < '0' || e > '7' {
				return "", fmt.Errorf("testsupport: unknown escape \\%c", e)
			}
			j := i
			for j < len(body) && j < i+3 && body[j] >= '0' && body[j] <= '7' {
				j++
			}
			v, err := strconv.ParseUint(body[i:j], 8, 8)
			if err != nil {
				return "", err
			}
			b.WriteByte(byte(v))
			i = j - 1
		}
	}
	return b.String(), nil
}

// DecodeSwiftString decodes a quoted Swift string literal.
func DecodeSwiftString(literal string) (string, error) {
	body, err := unquote(literal)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", errors.New("testsupport: dangling escape")
		}
		switch e := body[i]; e {
		case '\\', '"', '\'':
			b.WriteByte(e)
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case 'u':
			end := strings.IndexByte(body[i:], '}')
			if end < 0 || i+1 >= len(body) || body[i+1] != '{' {
				return "", errors.New("testsupport: malformed unicode escape")
			}
			v, err := strconv.ParseUint(body[i+2:i+end], 16, 32)
			if err != nil {
				return "", err
			}
			b.WriteRune(rune(v))
			i += end
		default:
			return "", fmt.Errorf("testsupport: unknown escape \\%c", e)
		}
	}
	return b.String(), nil
}

func unquote(literal string) (string, error) {
	if len(literal) < 2 || literal[0] != '"' || literal[len(literal)-1] != '"' {
		return "", fmt.Errorf("testsupport: %q is not a quoted literal", literal)
	}
	return literal[1 : len(literal)-1], nil
}
