package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-webshell/pkg/assembler"
	"github.com/goliatone/go-webshell/pkg/config"
)

const (
	defaultPackage        = "com.example.app"
	defaultEntryPath      = "index.html"
	defaultSplashDuration = 2000

	modeRemoteOption  = "URL (Remote)"
	modeBundledOption = "Bundled assets"
)

// Option customises a wizard run.
type Option func(*options)

type options struct {
	initial *config.Configuration
}

// WithInitial pre-fills every prompt from an existing configuration, for
// example one loaded from a project file.
func WithInitial(cfg config.Configuration) Option {
	return func(o *options) {
		o.initial = &cfg
	}
}

// Run walks the user through every configuration field and returns the
// validated result.
func Run(ctx context.Context, driver PromptDriver, opts ...Option) (config.Configuration, error) {
	if driver == nil {
		return config.Configuration{}, errors.New("wizard: prompt driver is required")
	}

	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	initial := defaults()
	if o.initial != nil {
		initial = *o.initial
	}

	w := &session{ctx: ctx, driver: driver, initial: initial}
	cfg, err := w.run()
	if err != nil {
		return config.Configuration{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Configuration{}, err
	}
	return cfg, nil
}

func defaults() config.Configuration {
	return config.Configuration{
		PackageIdentifier: defaultPackage,
		ContentMode:       config.ContentModeRemote,
		RemoteURL:         "https://",
		BundledEntryPath:  defaultEntryPath,
		JavaScriptEnabled: true,
		DOMStorageEnabled: true,
	}
}

type session struct {
	ctx     context.Context
	driver  PromptDriver
	initial config.Configuration
}

func (w *session) run() (config.Configuration, error) {
	var (
		cfg config.Configuration
		err error
	)

	if err = w.driver.Info(w.ctx, "Configure the web shell. Press Ctrl+C to abort."); err != nil {
		return cfg, err
	}

	if cfg.PackageIdentifier, err = w.driver.Input(w.ctx, InputConfig{
		Message:   "Package identifier",
		Default:   w.initial.PackageIdentifier,
		Help:      "Dotted namespace of the generated source, e.g. com.example.app",
		Validator: validatePackage,
	}); err != nil {
		return cfg, err
	}

	if err = w.content(&cfg); err != nil {
		return cfg, err
	}
	if err = w.settings(&cfg); err != nil {
		return cfg, err
	}
	if err = w.splash(&cfg); err != nil {
		return cfg, err
	}

	if cfg.BackButtonExitsImmediately, err = w.driver.Confirm(w.ctx, ConfirmConfig{
		Message: "Should the back button exit immediately?",
		Default: w.initial.BackButtonExitsImmediately,
		Help:    "When disabled, back navigates the page history first",
	}); err != nil {
		return cfg, err
	}

	if cfg.Capabilities.MixedContent, err = w.driver.Confirm(w.ctx, ConfirmConfig{
		Message: "Allow mixed HTTP/HTTPS content?",
		Default: w.initial.Capabilities.MixedContent,
	}); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (w *session) content(cfg *config.Configuration) error {
	modes := []string{modeRemoteOption, modeBundledOption}
	defaultIndex := 0
	if w.initial.IsBundled() {
		defaultIndex = 1
	}

	choice, err := w.driver.Select(w.ctx, SelectConfig{
		Message:      "Where does the content come from?",
		Options:      modes,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		cfg.ContentMode = config.ContentModeRemote
		if cfg.RemoteURL, err = w.driver.Input(w.ctx, InputConfig{
			Message:   "Remote URL",
			Default:   w.initial.RemoteURL,
			Validator: validateURL,
		}); err != nil {
			return err
		}
		return w.headers(cfg)
	case 1:
		cfg.ContentMode = config.ContentModeBundled
		entry := w.initial.BundledEntryPath
		if entry == "" {
			entry = defaultEntryPath
		}
		cfg.BundledEntryPath, err = w.driver.Input(w.ctx, InputConfig{
			Message:   "Entry page inside the bundled assets",
			Default:   entry,
			Validator: required("entry page"),
		})
		return err
	default:
		return fmt.Errorf("wizard: unknown content mode choice %d", choice)
	}
}

func (w *session) headers(cfg *config.Configuration) error {
	add, err := w.driver.Confirm(w.ctx, ConfirmConfig{
		Message: "Attach custom request headers?",
		Default: w.initial.Headers.Len() > 0,
	})
	if err != nil || !add {
		return err
	}

	for {
		key, err := w.driver.Input(w.ctx, InputConfig{
			Message: "Header name (leave blank to finish)",
		})
		if err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil
		}
		previous, _ := w.initial.Headers.Get(key)
		value, err := w.driver.Input(w.ctx, InputConfig{
			Message: fmt.Sprintf("Value for %s", key),
			Default: previous,
		})
		if err != nil {
			return err
		}
		cfg.Headers = cfg.Headers.Set(key, value)
	}
}

func (w *session) settings(cfg *config.Configuration) error {
	toggles := []struct {
		target  *bool
		message string
		initial bool
	}{
		{&cfg.JavaScriptEnabled, "Enable JavaScript?", w.initial.JavaScriptEnabled},
		{&cfg.DOMStorageEnabled, "Enable DOM storage?", w.initial.DOMStorageEnabled},
		{&cfg.ZoomEnabled, "Allow pinch zoom?", w.initial.ZoomEnabled},
		{&cfg.FileAccessEnabled, "Grant file system and cross-origin file access?", w.initial.FileAccessEnabled},
		{&cfg.Fullscreen, "Hide the status bar (fullscreen)?", w.initial.Fullscreen},
	}
	for _, toggle := range toggles {
		value, err := w.driver.Confirm(w.ctx, ConfirmConfig{Message: toggle.message, Default: toggle.initial})
		if err != nil {
			return err
		}
		*toggle.target = value
	}

	ua, err := w.driver.Input(w.ctx, InputConfig{
		Message: "User agent override (leave blank for the platform default)",
		Default: w.initial.UserAgentOverride,
	})
	if err != nil {
		return err
	}
	cfg.UserAgentOverride = strings.TrimSpace(ua)
	return nil
}

func (w *session) splash(cfg *config.Configuration) error {
	show, err := w.driver.Confirm(w.ctx, ConfirmConfig{
		Message: "Show a splash image?",
		Default: w.initial.HasSplash(),
	})
	if err != nil || !show {
		return err
	}

	asset, duration := "splash.png", int64(defaultSplashDuration)
	if w.initial.Splash != nil {
		asset, duration = w.initial.Splash.AssetPath, w.initial.Splash.DurationMs
	}

	assetPath, err := w.driver.Input(w.ctx, InputConfig{
		Message:   "Splash image asset",
		Default:   asset,
		Validator: required("splash image"),
	})
	if err != nil {
		return err
	}
	rawDuration, err := w.driver.Input(w.ctx, InputConfig{
		Message:   "Splash duration (ms)",
		Default:   strconv.FormatInt(duration, 10),
		Validator: validateDuration,
	})
	if err != nil {
		return err
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(rawDuration), 10, 64)
	if err != nil {
		return config.Invalid("splash.durationMs", "%q is not a number", rawDuration)
	}

	cfg.Splash = &config.Splash{AssetPath: strings.TrimSpace(assetPath), DurationMs: ms}
	return nil
}

func validatePackage(s string) error {
	_, err := assembler.PackageName("packageIdentifier", strings.TrimSpace(s))
	return err
}

func validateURL(s string) error {
	if err := config.CheckRemoteURL(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter an absolute http or https URL: %s", err.Message)
	}
	return nil
}

func validateDuration(s string) error {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || ms < 0 {
		return errors.New("enter a non-negative number of milliseconds")
	}
	return nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
