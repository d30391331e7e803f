package testsupport

import (
	"fmt"
	"strings"
)

// CheckBalanced verifies that braces, brackets and parentheses in generated
// C-family source are balanced outside string literals and line comments,
// and that no template syntax leaked into the output.
func CheckBalanced(src string) error {
	for _, leak := range []string{"{{", "{%", "{#", "%}", "#}"} {
		if strings.Contains(src, leak) {
			return fmt.Errorf("template syntax %q left in output", leak)
		}
	}

	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}
	var stack []byte
	line := 1

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '\n':
			line++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			line++
		case c == '"':
			i++
			for ; i < len(src) && src[i] != '"'; i++ {
				if src[i] == '\\' {
					i++
					continue
				}
				if src[i] == '\n' {
					return fmt.Errorf("line %d: unterminated string literal", line)
				}
			}
			if i >= len(src) {
				return fmt.Errorf("line %d: unterminated string literal", line)
			}
		case c == '(' || c == '[' || c == '{':
			stack = append(stack, c)
		case c == ')' || c == ']' || c == '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[c] {
				return fmt.Errorf("line %d: unexpected %q", line, c)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("unclosed %q at end of input", stack[len(stack)-1])
	}
	return nil
}
