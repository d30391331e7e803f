package assembler

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-webshell/pkg/config"
)

const (
	// AndroidTargetName identifies the Android activity target.
	AndroidTargetName = "android"

	androidAssetRoot = "file:///android_asset/"
)

// Android returns the target producing MainActivity.java for an Android
// WebView host.
func Android() Target {
	return Target{
		Name:     AndroidTargetName,
		Skeleton: "templates/android/MainActivity.java.tmpl",
		Predicates: map[string]Predicate{
			"fullscreen":          func(c config.Configuration) bool { return c.Fullscreen },
			"splash":              config.Configuration.HasSplash,
			"splash-hide-action":  config.Configuration.HasSplash,
			"file-access":         func(c config.Configuration) bool { return c.FileAccessEnabled },
			"mixed-content":       func(c config.Configuration) bool { return c.Capabilities.MixedContent },
			"zoom":                func(c config.Configuration) bool { return c.ZoomEnabled },
			"user-agent":          config.Configuration.HasUserAgent,
			"headers":             remoteWithHeaders,
			"load-remote":         remoteWithoutHeaders,
			"load-remote-headers": remoteWithHeaders,
			"load-bundled":        config.Configuration.IsBundled,
			"back-exit":           func(c config.Configuration) bool { return c.BackButtonExitsImmediately },
			"back-history":        func(c config.Configuration) bool { return !c.BackButtonExitsImmediately },
		},
		Bind:       bindAndroid,
		OutputPath: androidOutputPath,
	}
}

func bindAndroid(cfg config.Configuration) (map[string]any, error) {
	pkg, err := PackageName("packageIdentifier", cfg.PackageIdentifier)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"package_name":        pkg,
		"javascript_enabled":  boolLiteral(cfg.JavaScriptEnabled),
		"dom_storage_enabled": boolLiteral(cfg.DOMStorageEnabled),
	}

	if cfg.Splash != nil {
		resource, err := ResourceName("splash.assetPath", cfg.Splash.AssetPath)
		if err != nil {
			return nil, err
		}
		data["splash_resource"] = resource
		data["splash_duration_ms"] = strconv.FormatInt(cfg.Splash.DurationMs, 10)
	}

	if cfg.HasUserAgent() {
		if data["user_agent"], err = JavaString("userAgentOverride", cfg.UserAgentOverride); err != nil {
			return nil, err
		}
	}

	switch {
	case cfg.IsRemote():
		if data["remote_url"], err = JavaString("remoteUrl", cfg.RemoteURL); err != nil {
			return nil, err
		}
		headers, err := bindHeaders(cfg, JavaString)
		if err != nil {
			return nil, err
		}
		data["headers"] = headers
	case cfg.IsBundled():
		escaped, err := AssetURLPath("bundledEntryPath", cfg.BundledEntryPath)
		if err != nil {
			return nil, err
		}
		if data["bundled_url"], err = JavaString("bundledEntryPath", androidAssetRoot+escaped); err != nil {
			return nil, err
		}
	}

	return data, nil
}

func androidOutputPath(cfg config.Configuration) (string, error) {
	pkg, err := PackageName("packageIdentifier", cfg.PackageIdentifier)
	if err != nil {
		return "", err
	}
	return "app/src/main/java/" + strings.ReplaceAll(pkg, ".", "/") + "/MainActivity.java", nil
}
