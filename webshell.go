package webshell

import (
	"sync"

	"github.com/goliatone/go-webshell/pkg/assembler"
	"github.com/goliatone/go-webshell/pkg/config"
)

// Configuration aliases config.Configuration for callers that only need the
// top-level package.
type Configuration = config.Configuration

// GeneratedSource aliases assembler.GeneratedSource.
type GeneratedSource = assembler.GeneratedSource

const (
	// TargetAndroid renders MainActivity.java.
	TargetAndroid = assembler.AndroidTargetName
	// TargetIOS renders ContentView.swift.
	TargetIOS = assembler.IOSTargetName
)

var (
	defaultOnce     sync.Once
	defaultRegistry *assembler.Registry
	defaultErr      error
)

// NewRegistry builds a registry holding the built-in targets. Options apply to
// every target, e.g. assembler.WithTemplatesFS to override skeletons.
func NewRegistry(options ...assembler.Option) (*assembler.Registry, error) {
	return assembler.DefaultRegistry(options...)
}

// DefaultRegistry returns the shared registry of built-in targets, created on
// first use.
func DefaultRegistry() (*assembler.Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = assembler.DefaultRegistry()
	})
	return defaultRegistry, defaultErr
}

// Render validates cfg and renders it for target. It is the simplest entry
// point for callers that just want generated source.
func Render(cfg Configuration, target string) (GeneratedSource, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return GeneratedSource{}, err
	}
	asm, err := registry.Get(target)
	if err != nil {
		return GeneratedSource{}, err
	}
	return asm.Render(cfg)
}

// RenderAll renders cfg for every built-in target in name order. The first
// failure stops rendering.
func RenderAll(cfg Configuration) ([]GeneratedSource, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	names := registry.List()
	out := make([]GeneratedSource, 0, len(names))
	for _, name := range names {
		src, err := Render(cfg, name)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}
