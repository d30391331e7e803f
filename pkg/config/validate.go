package config

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validate checks every Configuration invariant and returns an Errors
// aggregate describing each violation, or nil when the record is valid.
func (c Configuration) Validate() error {
	var errs Errors

	if err := CheckPackageIdentifier("packageIdentifier", c.PackageIdentifier); err != nil {
		errs = append(errs, err)
	}

	switch c.ContentMode {
	case ContentModeRemote:
		if err := CheckRemoteURL(c.RemoteURL); err != nil {
			errs = append(errs, err)
		}
		if c.BundledEntryPath != "" {
			errs = append(errs, Invalid("bundledEntryPath", "must be empty when contentMode is %q", ContentModeRemote))
		}
		errs = append(errs, validateHeaders(c.Headers)...)
	case ContentModeBundled:
		if err := validateEntryPath(c.BundledEntryPath); err != nil {
			errs = append(errs, err)
		}
		if c.RemoteURL != "" {
			errs = append(errs, Invalid("remoteUrl", "must be empty when contentMode is %q", ContentModeBundled))
		}
	case "":
		errs = append(errs, Invalid("contentMode", "is required"))
	default:
		errs = append(errs, Invalid("contentMode", "unknown mode %q (want %q or %q)", c.ContentMode, ContentModeRemote, ContentModeBundled))
	}

	if c.Splash != nil {
		if strings.TrimSpace(c.Splash.AssetPath) == "" {
			errs = append(errs, Invalid("splash.assetPath", "is required when splash is configured"))
		}
		if c.Splash.DurationMs < 0 {
			errs = append(errs, Invalid("splash.durationMs", "must be non-negative, got %d", c.Splash.DurationMs))
		}
	}

	if containsControl(c.UserAgentOverride) {
		errs = append(errs, Invalid("userAgentOverride", "must not contain control characters"))
	}

	return errs.ErrOrNil()
}

// CheckRemoteURL verifies that raw is an absolute http(s) URL written only in
// characters RFC 3986 allows unescaped.
func CheckRemoteURL(raw string) *Error {
	if strings.TrimSpace(raw) == "" {
		return Invalid("remoteUrl", "is required when contentMode is %q", ContentModeRemote)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return Invalid("remoteUrl", "cannot be parsed: %v", err)
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
	default:
		return Invalid("remoteUrl", "must use the http or https scheme, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return Invalid("remoteUrl", "must include a host")
	}
	if i := strings.IndexFunc(raw, func(r rune) bool { return !isURIChar(r) }); i >= 0 {
		r, _ := utf8.DecodeRuneInString(raw[i:])
		return Invalid("remoteUrl", "contains %q at offset %d; percent-encode characters outside RFC 3986", r, i)
	}
	return nil
}

// isURIChar reports whether r may appear unescaped in an RFC 3986 URI.
func isURIChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r < utf8.RuneSelf:
		return strings.ContainsRune("-._~:/?#[]@!$&'()*+,;=%", r)
	}
	return false
}

func validateEntryPath(raw string) *Error {
	if strings.TrimSpace(raw) == "" {
		return Invalid("bundledEntryPath", "is required when contentMode is %q", ContentModeBundled)
	}
	if strings.HasPrefix(raw, "/") || strings.Contains(raw, "://") {
		return Invalid("bundledEntryPath", "must be relative to the bundled asset root")
	}
	if containsControl(raw) {
		return Invalid("bundledEntryPath", "must not contain control characters")
	}
	cleaned := path.Clean(raw)
	for _, segment := range strings.Split(cleaned, "/") {
		if segment == ".." {
			return Invalid("bundledEntryPath", "must not escape the bundled asset root")
		}
	}
	if cleaned == "." || strings.HasSuffix(raw, "/") {
		return Invalid("bundledEntryPath", "must name an entry document, not a directory")
	}
	return nil
}

func validateHeaders(headers Headers) Errors {
	var errs Errors
	seen := make(map[string]int, len(headers))
	for i, header := range headers {
		keyField := fmt.Sprintf("headers[%d].key", i)
		switch {
		case header.Key == "":
			errs = append(errs, Invalid(keyField, "must not be empty"))
		case !isToken(header.Key):
			errs = append(errs, Invalid(keyField, "%q is not a valid header name", header.Key))
		}
		canonical := strings.ToLower(header.Key)
		if first, ok := seen[canonical]; ok {
			errs = append(errs, Invalid(keyField, "duplicates headers[%d].key %q", first, header.Key))
		} else {
			seen[canonical] = i
		}
		if containsControl(strings.ReplaceAll(header.Value, "\t", "")) {
			errs = append(errs, Invalid(fmt.Sprintf("headers[%d].value", i), "must not contain control characters"))
		}
	}
	return errs
}

// isToken reports whether s is an RFC 9110 token.
func isToken(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0:
		default:
			return false
		}
	}
	return s != ""
}

func containsControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}
