package assembler_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-webshell/pkg/assembler"
	"github.com/goliatone/go-webshell/pkg/config"
)

const sampleSkeleton = `head
{# region first #}
first body
{# endregion #}
middle
  {#   region second-part   #}
second body
  {# endregion #}
tail
`

func TestParseSkeleton_RegionsAndResolve(t *testing.T) {
	skeleton, err := assembler.ParseSkeleton(sampleSkeleton)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if diff := cmp.Diff([]string{"first", "second-part"}, skeleton.Regions()); diff != "" {
		t.Fatalf("regions mismatch (-want +got):\n%s", diff)
	}

	tests := map[string]struct {
		active map[string]bool
		want   string
	}{
		"none":   {active: nil, want: "head\nmiddle\ntail\n"},
		"first":  {active: map[string]bool{"first": true}, want: "head\nfirst body\nmiddle\ntail\n"},
		"second": {active: map[string]bool{"second-part": true}, want: "head\nmiddle\nsecond body\ntail\n"},
		"all": {
			active: map[string]bool{"first": true, "second-part": true},
			want:   "head\nfirst body\nmiddle\nsecond body\ntail\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := skeleton.Resolve(func(region string) bool { return tt.active[region] })
			if got != tt.want {
				t.Fatalf("resolve mismatch:\nwant %q\ngot  %q", tt.want, got)
			}
		})
	}
}

func TestParseSkeleton_RegionsAreCopied(t *testing.T) {
	skeleton, err := assembler.ParseSkeleton(sampleSkeleton)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	regions := skeleton.Regions()
	regions[0] = "mutated"
	if skeleton.Regions()[0] != "first" {
		t.Fatalf("Regions must return a copy")
	}
}

func TestParseSkeleton_Errors(t *testing.T) {
	tests := map[string]struct {
		src  string
		want string
	}{
		"nested": {
			src:  "{# region a #}\n{# region b #}\n{# endregion #}\n{# endregion #}\n",
			want: `line 2: region "b" opened inside region "a"`,
		},
		"duplicate": {
			src:  "{# region a #}\n{# endregion #}\n{# region a #}\n{# endregion #}\n",
			want: `line 3: region "a" already defined on line 1`,
		},
		"stray end": {
			src:  "text\n{# endregion #}\n",
			want: "line 2: endregion without open region",
		},
		"unterminated": {
			src:  "text\n{# region a #}\nbody\n",
			want: `region "a" opened on line 2 is never closed`,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := assembler.ParseSkeleton(tt.src)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestNew_PredicateCoverage(t *testing.T) {
	files := fstest.MapFS{
		"shell.tmpl": {Data: []byte("start\n{# region a #}\nA\n{# endregion #}\nend\n")},
	}
	always := func(config.Configuration) bool { return true }
	bind := func(config.Configuration) (map[string]any, error) { return map[string]any{}, nil }
	outputPath := func(config.Configuration) (string, error) { return "shell.txt", nil }

	tests := map[string]struct {
		predicates map[string]assembler.Predicate
		want       string
	}{
		"missing predicate": {
			predicates: map[string]assembler.Predicate{},
			want:       `region "a" has no predicate`,
		},
		"orphan predicate": {
			predicates: map[string]assembler.Predicate{"a": always, "b": always, "c": always},
			want:       "predicates without region: [b c]",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := assembler.New(assembler.Target{
				Name:       "shell",
				Skeleton:   "shell.tmpl",
				Predicates: tt.predicates,
				Bind:       bind,
				OutputPath: outputPath,
			}, assembler.WithTemplatesFS(files))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestNew_CustomSkeleton(t *testing.T) {
	files := fstest.MapFS{
		"shell.tmpl": {Data: []byte("url={{ url }}\n{# region js #}\njs on\n{# endregion #}\n")},
	}
	asm, err := assembler.New(assembler.Target{
		Name:     "shell",
		Skeleton: "shell.tmpl",
		Predicates: map[string]assembler.Predicate{
			"js": func(cfg config.Configuration) bool { return cfg.JavaScriptEnabled },
		},
		Bind: func(cfg config.Configuration) (map[string]any, error) {
			return map[string]any{"url": cfg.RemoteURL}, nil
		},
		OutputPath: func(config.Configuration) (string, error) { return "shell.txt", nil },
	}, assembler.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	cfg := config.Configuration{
		PackageIdentifier: "com.example.app",
		ContentMode:       config.ContentModeRemote,
		RemoteURL:         "https://example.org/?a=1&b='2'",
		JavaScriptEnabled: true,
	}
	out, err := asm.Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "url=https://example.org/?a=1&b='2'\njs on\n"; out.Content != want {
		t.Fatalf("content mismatch:\nwant %q\ngot  %q", want, out.Content)
	}
	if out.Path != "shell.txt" || out.Target != "shell" {
		t.Fatalf("unexpected metadata: %+v", out)
	}
}

func TestNew_MissingSkeleton(t *testing.T) {
	_, err := assembler.New(assembler.Android(), assembler.WithTemplatesFS(fstest.MapFS{}))
	if err == nil || !strings.Contains(err.Error(), "read skeleton") {
		t.Fatalf("expected read skeleton error, got %v", err)
	}
}
