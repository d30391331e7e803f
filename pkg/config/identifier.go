package config

import (
	"regexp"
	"strings"
)

var (
	identifierSegmentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	reservedWords = map[string]struct{}{}
)

func init() {
	for _, word := range []string{
		"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
		"class", "const", "continue", "default", "do", "double", "else", "enum",
		"extends", "final", "finally", "float", "for", "goto", "if", "implements",
		"import", "instanceof", "int", "interface", "long", "native", "new",
		"package", "private", "protected", "public", "return", "short", "static",
		"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
		"transient", "try", "void", "volatile", "while", "true", "false", "null", "_",
	} {
		reservedWords[word] = struct{}{}
	}
}

// IsReservedWord reports whether s is a Java keyword or literal and therefore
// cannot name a package segment or a generated resource.
func IsReservedWord(s string) bool {
	_, ok := reservedWords[s]
	return ok
}

// CheckPackageIdentifier verifies that every dot segment of s is an
// identifier and not a reserved word. Violations are UnsafeLiteralValue
// errors reported against field.
func CheckPackageIdentifier(field, s string) *Error {
	if strings.TrimSpace(s) == "" {
		return Invalid(field, "is required")
	}
	for _, segment := range strings.Split(s, ".") {
		if !identifierSegmentPattern.MatchString(segment) {
			return Unsafe(field, "segment %q is not a valid identifier", segment)
		}
		if IsReservedWord(segment) {
			return Unsafe(field, "segment %q is a reserved word", segment)
		}
	}
	return nil
}
