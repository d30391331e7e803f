package project

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-webshell/pkg/config"
)

// Document is the serialised form of a configuration. Pointer fields carry
// creasty/defaults tags so omitted keys differ from explicit false or zero.
type Document struct {
	PackageIdentifier          string          `json:"packageIdentifier" yaml:"packageIdentifier"`
	ContentMode                string          `json:"contentMode" yaml:"contentMode" default:"remote"`
	RemoteURL                  string          `json:"remoteUrl,omitempty" yaml:"remoteUrl,omitempty"`
	BundledEntryPath           string          `json:"bundledEntryPath,omitempty" yaml:"bundledEntryPath,omitempty"`
	Headers                    HeaderMap       `json:"headers,omitempty" yaml:"headers,omitempty"`
	JavaScriptEnabled          *bool           `json:"javascriptEnabled,omitempty" yaml:"javascriptEnabled,omitempty" default:"true"`
	DOMStorageEnabled          *bool           `json:"domStorageEnabled,omitempty" yaml:"domStorageEnabled,omitempty" default:"true"`
	ZoomEnabled                bool            `json:"zoomEnabled,omitempty" yaml:"zoomEnabled,omitempty"`
	FileAccessEnabled          bool            `json:"fileAccessEnabled,omitempty" yaml:"fileAccessEnabled,omitempty"`
	UserAgentOverride          string          `json:"userAgentOverride,omitempty" yaml:"userAgentOverride,omitempty"`
	Fullscreen                 bool            `json:"fullscreen,omitempty" yaml:"fullscreen,omitempty"`
	Splash                     *SplashDocument `json:"splash,omitempty" yaml:"splash,omitempty"`
	BackButtonExitsImmediately bool            `json:"backButtonExitsImmediately,omitempty" yaml:"backButtonExitsImmediately,omitempty"`
	Capabilities               *Capabilities   `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// SplashDocument is the serialised splash block.
type SplashDocument struct {
	AssetPath  string `json:"assetPath" yaml:"assetPath"`
	DurationMs *int64 `json:"durationMs,omitempty" yaml:"durationMs,omitempty" default:"2000"`
}

// Capabilities mirrors config.Capabilities.
type Capabilities struct {
	MixedContent bool `json:"mixedContent,omitempty" yaml:"mixedContent,omitempty"`
}

// HeaderMap serialises config.Headers as a mapping while keeping the order
// keys were written in.
type HeaderMap config.Headers

// UnmarshalYAML walks the mapping node pair by pair. JSON input goes through
// the same path because JSON objects parse as YAML flow mappings.
func (h *HeaderMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("project: headers: line %d: expected a mapping", node.Line)
	}
	out := make(HeaderMap, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if valueNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("project: headers.%s: line %d: expected a string value", keyNode.Value, valueNode.Line)
		}
		out = append(out, config.Header{Key: keyNode.Value, Value: valueNode.Value})
	}
	*h = out
	return nil
}

// MarshalYAML emits an ordered mapping node.
func (h HeaderMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, header := range h {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: header.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: header.Value},
		)
	}
	return node, nil
}

// MarshalJSON emits an object with keys in header order.
func (h HeaderMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, header := range h {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(header.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(header.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FromConfiguration converts cfg into its serialised form. Every boolean with
// a non-false default is written explicitly.
func FromConfiguration(cfg config.Configuration) Document {
	javaScript := cfg.JavaScriptEnabled
	domStorage := cfg.DOMStorageEnabled

	doc := Document{
		PackageIdentifier:          cfg.PackageIdentifier,
		ContentMode:                string(cfg.ContentMode),
		RemoteURL:                  cfg.RemoteURL,
		BundledEntryPath:           cfg.BundledEntryPath,
		Headers:                    HeaderMap(cfg.Headers),
		JavaScriptEnabled:          &javaScript,
		DOMStorageEnabled:          &domStorage,
		ZoomEnabled:                cfg.ZoomEnabled,
		FileAccessEnabled:          cfg.FileAccessEnabled,
		UserAgentOverride:          cfg.UserAgentOverride,
		Fullscreen:                 cfg.Fullscreen,
		BackButtonExitsImmediately: cfg.BackButtonExitsImmediately,
	}
	if cfg.Splash != nil {
		duration := cfg.Splash.DurationMs
		doc.Splash = &SplashDocument{AssetPath: cfg.Splash.AssetPath, DurationMs: &duration}
	}
	if cfg.Capabilities.MixedContent {
		doc.Capabilities = &Capabilities{MixedContent: true}
	}
	return doc
}

// Configuration converts the document into a configuration. Defaults must
// already be applied; unset pointers read as false or zero.
func (d Document) Configuration() config.Configuration {
	cfg := config.Configuration{
		PackageIdentifier:          d.PackageIdentifier,
		ContentMode:                config.ParseContentMode(d.ContentMode),
		RemoteURL:                  d.RemoteURL,
		BundledEntryPath:           d.BundledEntryPath,
		Headers:                    append(config.Headers(nil), d.Headers...),
		JavaScriptEnabled:          d.JavaScriptEnabled != nil && *d.JavaScriptEnabled,
		DOMStorageEnabled:          d.DOMStorageEnabled != nil && *d.DOMStorageEnabled,
		ZoomEnabled:                d.ZoomEnabled,
		FileAccessEnabled:          d.FileAccessEnabled,
		UserAgentOverride:          d.UserAgentOverride,
		Fullscreen:                 d.Fullscreen,
		BackButtonExitsImmediately: d.BackButtonExitsImmediately,
	}
	if d.Splash != nil {
		cfg.Splash = &config.Splash{AssetPath: d.Splash.AssetPath}
		if d.Splash.DurationMs != nil {
			cfg.Splash.DurationMs = *d.Splash.DurationMs
		}
	}
	if d.Capabilities != nil {
		cfg.Capabilities.MixedContent = d.Capabilities.MixedContent
	}
	return cfg
}
