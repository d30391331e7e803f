package assembler

import (
	"strconv"

	"github.com/goliatone/go-webshell/pkg/config"
)

// IOSTargetName identifies the SwiftUI content view target.
const IOSTargetName = "ios"

// IOS returns the target producing ContentView.swift for a WKWebView host.
// iOS has no back button, so a non-exiting back policy maps to history swipe
// gestures; zoom is on by default and the region disables it instead.
func IOS() Target {
	return Target{
		Name:     IOSTargetName,
		Skeleton: "templates/ios/ContentView.swift.tmpl",
		Predicates: map[string]Predicate{
			"splash-state":  config.Configuration.HasSplash,
			"splash":        config.Configuration.HasSplash,
			"fullscreen":    func(c config.Configuration) bool { return c.Fullscreen },
			"file-access":   func(c config.Configuration) bool { return c.FileAccessEnabled },
			"user-agent":    config.Configuration.HasUserAgent,
			"zoom-disabled": func(c config.Configuration) bool { return !c.ZoomEnabled },
			"back-gestures": func(c config.Configuration) bool { return !c.BackButtonExitsImmediately },
			"request":       config.Configuration.IsRemote,
			"headers":       remoteWithHeaders,
			"load-remote":   config.Configuration.IsRemote,
			"load-bundled":  config.Configuration.IsBundled,
		},
		Bind: bindIOS,
		OutputPath: func(config.Configuration) (string, error) {
			return "WebApp/ContentView.swift", nil
		},
	}
}

func bindIOS(cfg config.Configuration) (map[string]any, error) {
	data := map[string]any{
		"javascript_enabled": boolLiteral(cfg.JavaScriptEnabled),
		"website_data_store": ".nonPersistent()",
	}
	if cfg.DOMStorageEnabled {
		data["website_data_store"] = ".default()"
	}

	var err error
	if cfg.Splash != nil {
		if data["splash_image"], err = SwiftString("splash.assetPath", assetBaseName(cfg.Splash.AssetPath)); err != nil {
			return nil, err
		}
		data["splash_duration_ms"] = strconv.FormatInt(cfg.Splash.DurationMs, 10)
	}

	if cfg.HasUserAgent() {
		if data["user_agent"], err = SwiftString("userAgentOverride", cfg.UserAgentOverride); err != nil {
			return nil, err
		}
	}

	switch {
	case cfg.IsRemote():
		if data["remote_url"], err = SwiftString("remoteUrl", cfg.RemoteURL); err != nil {
			return nil, err
		}
		headers, err := bindHeaders(cfg, SwiftString)
		if err != nil {
			return nil, err
		}
		data["headers"] = headers
	case cfg.IsBundled():
		if data["bundled_path"], err = SwiftString("bundledEntryPath", cfg.BundledEntryPath); err != nil {
			return nil, err
		}
	}

	return data, nil
}
