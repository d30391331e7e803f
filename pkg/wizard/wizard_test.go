package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-webshell/pkg/config"
	"github.com/goliatone/go-webshell/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputPos     int
	selectPos    int
	confirmPos   int

	inputConfigs  []InputConfig
	selectConfigs []SelectConfig
	inputErr      error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectConfigs = append(s.selectConfigs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestRun_RemoteWithHeadersAndSplash(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0},
		inputs: []string{
			"com.acme.shell",
			"https://acme.test",
			"X-Token", "abc",
			"Accept-Language", "en",
			"",
			"Acme/1.0",
			"boot.png",
			"1500",
		},
		confirm: []bool{
			true,  // headers
			true,  // javascript
			false, // dom storage
			true,  // zoom
			false, // file access
			true,  // fullscreen
			true,  // splash
			false, // back exits
			true,  // mixed content
		},
	}

	cfg, err := Run(testsupport.Context(), driver)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := config.Configuration{
		PackageIdentifier: "com.acme.shell",
		ContentMode:       config.ContentModeRemote,
		RemoteURL:         "https://acme.test",
		Headers: config.Headers{
			{Key: "X-Token", Value: "abc"},
			{Key: "Accept-Language", Value: "en"},
		},
		JavaScriptEnabled: true,
		ZoomEnabled:       true,
		Fullscreen:        true,
		UserAgentOverride: "Acme/1.0",
		Splash:            &config.Splash{AssetPath: "boot.png", DurationMs: 1500},
		Capabilities:      config.Capabilities{MixedContent: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("configuration mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected intro message, got %v", driver.infoMessages)
	}
}

func TestRun_Bundled(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{1},
		inputs:    []string{"com.acme.shell", "www/index.html", ""},
		confirm:   []bool{true, true, false, false, false, false, true, false},
	}

	cfg, err := Run(testsupport.Context(), driver)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := config.Configuration{
		PackageIdentifier:          "com.acme.shell",
		ContentMode:                config.ContentModeBundled,
		BundledEntryPath:           "www/index.html",
		JavaScriptEnabled:          true,
		DOMStorageEnabled:          true,
		BackButtonExitsImmediately: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("configuration mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_UsesInitialValuesAsDefaults(t *testing.T) {
	initial := testsupport.BundledConfig()
	initial.PackageIdentifier = "org.sample.viewer"
	initial.BundledEntryPath = "docs/start.html"

	driver := &stubDriver{
		selectIdx: []int{1},
		inputs:    []string{"org.sample.viewer", "docs/start.html", ""},
		confirm:   []bool{true, true, false, false, false, false, false, false},
	}

	if _, err := Run(testsupport.Context(), driver, WithInitial(initial)); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := driver.inputConfigs[0].Default; got != "org.sample.viewer" {
		t.Fatalf("package default = %q", got)
	}
	if got := driver.selectConfigs[0].DefaultIndex; got != 1 {
		t.Fatalf("mode default index = %d, want 1", got)
	}
	if got := driver.inputConfigs[1].Default; got != "docs/start.html" {
		t.Fatalf("entry default = %q", got)
	}
}

func TestRun_HeaderValueDefaultsToInitial(t *testing.T) {
	initial := testsupport.RemoteConfig()
	initial.Headers = config.Headers{{Key: "X-Token", Value: "abc"}}

	driver := &stubDriver{
		selectIdx: []int{0},
		inputs:    []string{"com.example.app", "https://example.org", "X-Token", "abc", "X-New", "1", "", ""},
		confirm:   []bool{true, true, true, false, false, false, false, false, false},
	}

	cfg, err := Run(testsupport.Context(), driver, WithInitial(initial))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := driver.inputConfigs[3].Default; got != "abc" {
		t.Fatalf("known header default = %q, want abc", got)
	}
	if got := driver.inputConfigs[5].Default; got != "" {
		t.Fatalf("new header default = %q, want empty", got)
	}
	want := config.Headers{{Key: "X-Token", Value: "abc"}, {Key: "X-New", Value: "1"}}
	if diff := cmp.Diff(want, cfg.Headers); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Aborted(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}

	_, err := Run(testsupport.Context(), driver)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRun_ValidatesResult(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0},
		inputs:    []string{"com.acme.shell", "ftp://acme.test", ""},
		confirm:   []bool{false, true, true, false, false, false, false, false, false},
	}

	_, err := Run(testsupport.Context(), driver)
	if !errors.Is(err, config.ErrInvalidConfiguration) {
		t.Fatalf("expected InvalidConfiguration, got %v", err)
	}
	if field := config.FieldOf(err); field != "remoteUrl" {
		t.Fatalf("field = %q, want remoteUrl", field)
	}
}

func TestRun_RequiresDriver(t *testing.T) {
	if _, err := Run(testsupport.Context(), nil); err == nil {
		t.Fatalf("expected error without driver")
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator func(string) error
		input     string
		wantErr   bool
	}{
		{"package ok", validatePackage, "com.example.app", false},
		{"package reserved", validatePackage, "com.example.int", true},
		{"package empty", validatePackage, " ", true},
		{"url ok", validateURL, "https://example.org/app", false},
		{"url scheme", validateURL, "file:///tmp/index.html", true},
		{"url host", validateURL, "https://", true},
		{"url raw space", validateURL, "https://example.org/a b", true},
		{"duration ok", validateDuration, "0", false},
		{"duration negative", validateDuration, "-1", true},
		{"duration text", validateDuration, "soon", true},
		{"required ok", required("name"), "x", false},
		{"required blank", required("name"), "  ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validator(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestIndexOf(t *testing.T) {
	options := []string{modeRemoteOption, modeBundledOption}
	if got := indexOf(options, modeBundledOption); got != 1 {
		t.Fatalf("indexOf = %d", got)
	}
	if got := indexOf(options, "missing"); got != -1 {
		t.Fatalf("indexOf missing = %d", got)
	}
}
