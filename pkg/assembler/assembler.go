package assembler

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/goliatone/go-webshell/pkg/config"
	rendertemplate "github.com/goliatone/go-webshell/pkg/render/template"
	"github.com/goliatone/go-webshell/pkg/render/template/gotemplate"
)

const (
	autoescapeOff = "{% autoescape off %}"
	autoescapeEnd = "{% endautoescape %}"
)

// Option customises an Assembler.
type Option func(*options)

type options struct {
	templatesFS      fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS loads skeletons from files instead of the embedded bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(o *options) {
		if files != nil {
			o.templatesFS = files
		}
	}
}

// WithTemplateRenderer injects the engine used for scalar substitution.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(o *options) {
		if renderer != nil {
			o.templateRenderer = renderer
		}
	}
}

// Assembler renders one Target.
type Assembler struct {
	target   Target
	skeleton Skeleton
	engine   rendertemplate.TemplateRenderer
}

// New parses the target skeleton and checks that every region has a predicate
// and every predicate a region.
func New(target Target, opts ...Option) (*Assembler, error) {
	cfg := options{templatesFS: TemplatesFS()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if target.Name == "" {
		return nil, errors.New("assembler: target name is required")
	}
	if target.Bind == nil || target.OutputPath == nil {
		return nil, fmt.Errorf("assembler: target %q: bind and output path are required", target.Name)
	}

	raw, err := fs.ReadFile(cfg.templatesFS, target.Skeleton)
	if err != nil {
		return nil, fmt.Errorf("assembler: target %q: read skeleton: %w", target.Name, err)
	}
	skeleton, err := ParseSkeleton(string(raw))
	if err != nil {
		return nil, fmt.Errorf("assembler: target %q: %w", target.Name, err)
	}
	if err := checkPredicates(skeleton, target.Predicates); err != nil {
		return nil, fmt.Errorf("assembler: target %q: %w", target.Name, err)
	}

	engine := cfg.templateRenderer
	if engine == nil {
		engine, err = gotemplate.New(gotemplate.WithFS(cfg.templatesFS))
		if err != nil {
			return nil, fmt.Errorf("assembler: target %q: configure template renderer: %w", target.Name, err)
		}
	}

	return &Assembler{
		target:   target,
		skeleton: skeleton,
		engine:   engine,
	}, nil
}

// Name identifies the target inside a Registry.
func (a *Assembler) Name() string {
	return a.target.Name
}

// Regions lists the skeleton regions in order.
func (a *Assembler) Regions() []string {
	return a.skeleton.Regions()
}

// ActiveRegions lists, in skeleton order, the regions emitted for cfg.
func (a *Assembler) ActiveRegions(cfg config.Configuration) []string {
	var out []string
	for _, region := range a.skeleton.Regions() {
		if a.target.Predicates[region](cfg) {
			out = append(out, region)
		}
	}
	return out
}

// Render validates cfg, resolves the skeleton regions and substitutes escaped
// scalars. Failures are config.Error values naming the offending field.
func (a *Assembler) Render(cfg config.Configuration) (GeneratedSource, error) {
	if a == nil {
		return GeneratedSource{}, errors.New("assembler: assembler is nil")
	}
	if err := cfg.Validate(); err != nil {
		return GeneratedSource{}, err
	}

	data, err := a.target.Bind(cfg)
	if err != nil {
		return GeneratedSource{}, err
	}
	outputPath, err := a.target.OutputPath(cfg)
	if err != nil {
		return GeneratedSource{}, err
	}

	residue := a.skeleton.Resolve(func(region string) bool {
		return a.target.Predicates[region](cfg)
	})

	content, err := a.engine.RenderString(autoescapeOff+residue+autoescapeEnd, data)
	if err != nil {
		return GeneratedSource{}, fmt.Errorf("assembler: target %q: render: %w", a.target.Name, err)
	}

	return GeneratedSource{
		Target:  a.target.Name,
		Path:    outputPath,
		Content: content,
	}, nil
}

func checkPredicates(skeleton Skeleton, predicates map[string]Predicate) error {
	declared := make(map[string]struct{})
	for _, region := range skeleton.Regions() {
		declared[region] = struct{}{}
		if predicates[region] == nil {
			return fmt.Errorf("region %q has no predicate", region)
		}
	}

	var orphans []string
	for name := range predicates {
		if _, ok := declared[name]; !ok {
			orphans = append(orphans, name)
		}
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		return fmt.Errorf("predicates without region: %v", orphans)
	}
	return nil
}
