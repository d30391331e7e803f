package testsupport

import "github.com/goliatone/go-webshell/pkg/config"

// RemoteConfig returns a minimal valid configuration loading a remote URL
// without custom headers.
func RemoteConfig() config.Configuration {
	return config.Configuration{
		PackageIdentifier: "com.example.app",
		ContentMode:       config.ContentModeRemote,
		RemoteURL:         "https://example.org",
		JavaScriptEnabled: true,
		DOMStorageEnabled: true,
	}
}

// BundledConfig returns a minimal valid configuration loading a packaged
// asset.
func BundledConfig() config.Configuration {
	return config.Configuration{
		PackageIdentifier: "com.example.app",
		ContentMode:       config.ContentModeBundled,
		BundledEntryPath:  "index.html",
		JavaScriptEnabled: true,
		DOMStorageEnabled: true,
	}
}

// FullConfig returns a remote configuration with every optional feature
// enabled.
func FullConfig() config.Configuration {
	cfg := RemoteConfig()
	cfg.Headers = config.Headers{
		{Key: "X-Token", Value: "abc"},
		{Key: "Accept-Language", Value: "en-US"},
	}
	cfg.ZoomEnabled = true
	cfg.FileAccessEnabled = true
	cfg.UserAgentOverride = "WebShell/1.0"
	cfg.Fullscreen = true
	cfg.Splash = &config.Splash{AssetPath: "splash.png", DurationMs: 1500}
	cfg.Capabilities.MixedContent = true
	return cfg
}
