package assembler

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-webshell/pkg/config"
)

var resourceNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// JavaString quotes s as a Java string literal. Control characters use short
// or octal escapes; \uXXXX is never emitted because javac decodes it before
// lexing.
func JavaString(field, s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", config.Unsafe(field, "contains invalid UTF-8 and cannot be embedded without dropping bytes")
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\%03o`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String(), nil
}

// SwiftString quotes s as a Swift string literal.
func SwiftString(field, s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", config.Unsafe(field, "contains invalid UTF-8 and cannot be embedded without dropping bytes")
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u{%X}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String(), nil
}

// PackageName checks that s can be used verbatim in a package declaration.
func PackageName(field, s string) (string, error) {
	if err := config.CheckPackageIdentifier(field, s); err != nil {
		return "", err
	}
	return s, nil
}

// ResourceName derives the Android resource identifier for a packaged asset:
// the base name without its extension. A nine-patch ".9" suffix is dropped the
// way the Android resource compiler drops it.
func ResourceName(field, assetPath string) (string, error) {
	name := strings.TrimSuffix(assetBaseName(assetPath), ".9")
	if !resourceNamePattern.MatchString(name) {
		return "", config.Unsafe(field, "resource name %q derived from %q must match [a-z][a-z0-9_]*", name, assetPath)
	}
	if config.IsReservedWord(name) {
		return "", config.Unsafe(field, "resource name %q is a reserved word", name)
	}
	return name, nil
}

// AssetURLPath percent-escapes every segment of a relative asset path so it
// can be appended to an asset URL root.
func AssetURLPath(field, p string) (string, error) {
	if !utf8.ValidString(p) {
		return "", config.Unsafe(field, "contains invalid UTF-8 and cannot be embedded without dropping bytes")
	}
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/"), nil
}

func assetBaseName(assetPath string) string {
	base := path.Base(strings.ReplaceAll(assetPath, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}
