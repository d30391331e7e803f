package assembler_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-webshell/pkg/assembler"
	"github.com/goliatone/go-webshell/pkg/config"
	"github.com/goliatone/go-webshell/pkg/testsupport"
)

var delimiterSamples = []string{
	"",
	"plain",
	`quote " inside`,
	`back\slash`,
	"\\" + "u0022 not a unicode escape",
	`\\u0022 doubled`,
	"{{ placeholder }} {% tag %} {# comment #}",
	"*/ /* // comments",
	"line\nbreak\r\nand\ttab",
	"bell\a nul\x00 esc\x1b del\x7f",
	"form\ffeed back\bspace",
	"héllo wörld ✓ 日本語",
	"$(interp) \\(swift) ${js}",
}

func TestJavaString_KnownEscapes(t *testing.T) {
	tests := map[string]string{
		`a"b\c`:           `"a\"b\\c"`,
		"line\nnext\ttab": `"line\nnext\ttab"`,
		"\x01":            `"\001"`,
		"\x7f":            `"\177"`,
		"\\" + "u0022":    `"\\` + "u0022" + `"`,
		"héllo ✓":         `"héllo ✓"`,
		"\r\b\f":          `"\r\b\f"`,
		"{{ not_a_var }}": `"{{ not_a_var }}"`,
	}
	for in, want := range tests {
		got, err := assembler.JavaString("field", in)
		if err != nil {
			t.Fatalf("JavaString(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("JavaString(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestSwiftString_KnownEscapes(t *testing.T) {
	tests := map[string]string{
		`a"b\c`:           `"a\"b\\c"`,
		"line\nnext\ttab": `"line\nnext\ttab"`,
		"\x00":            `"\0"`,
		"\x01":            `"\u{1}"`,
		"\x7f":            `"\u{7F}"`,
		`\(interp)`:       `"\\(interp)"`,
	}
	for in, want := range tests {
		got, err := assembler.SwiftString("field", in)
		if err != nil {
			t.Fatalf("SwiftString(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("SwiftString(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestStringLiterals_RoundTrip(t *testing.T) {
	for _, sample := range delimiterSamples {
		javaLit, err := assembler.JavaString("field", sample)
		if err != nil {
			t.Fatalf("JavaString(%q): %v", sample, err)
		}
		decoded, err := testsupport.DecodeJavaString(javaLit)
		if err != nil {
			t.Fatalf("DecodeJavaString(%s): %v", javaLit, err)
		}
		if decoded != sample {
			t.Errorf("java round trip: got %q, want %q", decoded, sample)
		}

		swiftLit, err := assembler.SwiftString("field", sample)
		if err != nil {
			t.Fatalf("SwiftString(%q): %v", sample, err)
		}
		decoded, err = testsupport.DecodeSwiftString(swiftLit)
		if err != nil {
			t.Fatalf("DecodeSwiftString(%s): %v", swiftLit, err)
		}
		if decoded != sample {
			t.Errorf("swift round trip: got %q, want %q", decoded, sample)
		}
	}
}

func TestStringLiterals_RejectInvalidUTF8(t *testing.T) {
	for name, quote := range map[string]func(string, string) (string, error){
		"java":  assembler.JavaString,
		"swift": assembler.SwiftString,
		"asset": assembler.AssetURLPath,
	} {
		_, err := quote("userAgentOverride", "bad\xffbyte")
		if !errors.Is(err, config.ErrUnsafeLiteral) {
			t.Fatalf("%s: expected ErrUnsafeLiteral, got %v", name, err)
		}
		if field := config.FieldOf(err); field != "userAgentOverride" {
			t.Fatalf("%s: field = %q", name, field)
		}
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{in: "com.example.app"},
		{in: "io.webshell_demo.App2"},
		{in: "", wantErr: config.ErrInvalidConfiguration},
		{in: "com..app", wantErr: config.ErrUnsafeLiteral},
		{in: "com.example.new", wantErr: config.ErrUnsafeLiteral},
		{in: "com.exa mple", wantErr: config.ErrUnsafeLiteral},
		{in: "com.example;import", wantErr: config.ErrUnsafeLiteral},
		{in: "2fast.app", wantErr: config.ErrUnsafeLiteral},
	}
	for _, tt := range tests {
		got, err := assembler.PackageName("packageIdentifier", tt.in)
		if tt.wantErr == nil {
			if err != nil || got != tt.in {
				t.Errorf("PackageName(%q) = %q, %v", tt.in, got, err)
			}
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("PackageName(%q) error = %v, want %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestResourceName(t *testing.T) {
	valid := map[string]string{
		"splash.png":        "splash",
		"images/splash.png": "splash",
		"splash_v2.webp":    "splash_v2",
		`res\boot.jpg`:      "boot",
		"splash.9.png":      "splash",
	}
	for in, want := range valid {
		got, err := assembler.ResourceName("splash.assetPath", in)
		if err != nil || got != want {
			t.Errorf("ResourceName(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	for _, in := range []string{"Splash.png", "9patch.png", "class.png", "splash-screen.png", ""} {
		_, err := assembler.ResourceName("splash.assetPath", in)
		if !errors.Is(err, config.ErrUnsafeLiteral) {
			t.Errorf("ResourceName(%q) error = %v, want ErrUnsafeLiteral", in, err)
		}
	}
}

func TestAssetURLPath(t *testing.T) {
	tests := map[string]string{
		"index.html":                "index.html",
		"my pages/index page.html":  "my%20pages/index%20page.html",
		"a?b#c.html":                "a%3Fb%23c.html",
		"docs/ünïcode.html":         "docs/%C3%BCn%C3%AFcode.html",
	}
	for in, want := range tests {
		got, err := assembler.AssetURLPath("bundledEntryPath", in)
		if err != nil {
			t.Fatalf("AssetURLPath(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("AssetURLPath(%q) = %q, want %q", in, got, want)
		}
	}
}
