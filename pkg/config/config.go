package config

import "strings"

// ContentMode selects where the rendering surface loads its entry document.
type ContentMode string

const (
	// ContentModeRemote loads RemoteURL over the network.
	ContentModeRemote ContentMode = "remote"
	// ContentModeBundled loads BundledEntryPath from the packaged assets.
	ContentModeBundled ContentMode = "bundled"
)

// ParseContentMode normalises user supplied mode names. Unknown values are
// returned verbatim so Validate can report them against the contentMode field.
func ParseContentMode(raw string) ContentMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "remote", "url", "url (remote)":
		return ContentModeRemote
	case "bundled", "local", "asset", "assets":
		return ContentModeBundled
	default:
		return ContentMode(strings.TrimSpace(raw))
	}
}

// Splash describes the transient cover shown before content becomes visible.
type Splash struct {
	AssetPath  string
	DurationMs int64
}

// Capabilities carries platform facts resolved by the packaging layer so the
// generated source never branches on platform versions itself.
type Capabilities struct {
	// MixedContent reports that the target platform supports relaxing the
	// mixed-content policy of the rendering surface.
	MixedContent bool
}

// Configuration describes how the generated host screen presents web content.
type Configuration struct {
	PackageIdentifier string
	ContentMode       ContentMode
	RemoteURL         string
	BundledEntryPath  string
	Headers           Headers

	JavaScriptEnabled bool
	DOMStorageEnabled bool
	ZoomEnabled       bool
	FileAccessEnabled bool

	UserAgentOverride string
	Fullscreen        bool
	Splash            *Splash

	BackButtonExitsImmediately bool

	Capabilities Capabilities
}

// IsRemote reports whether content is fetched from RemoteURL.
func (c Configuration) IsRemote() bool {
	return c.ContentMode == ContentModeRemote
}

// IsBundled reports whether content is loaded from the packaged assets.
func (c Configuration) IsBundled() bool {
	return c.ContentMode == ContentModeBundled
}

// HasUserAgent reports whether a user agent override is configured.
func (c Configuration) HasUserAgent() bool {
	return c.UserAgentOverride != ""
}

// HasSplash reports whether a splash screen is configured.
func (c Configuration) HasSplash() bool {
	return c.Splash != nil
}

// RequestHeaders returns the headers attached to the entry request. Headers
// are ignored for bundled content.
func (c Configuration) RequestHeaders() Headers {
	if !c.IsRemote() {
		return nil
	}
	return c.Headers
}
