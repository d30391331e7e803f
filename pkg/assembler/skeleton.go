package assembler

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	regionStartPattern = regexp.MustCompile(`^\s*\{#\s*region\s+([a-z0-9][a-z0-9-]*)\s*#\}\s*$`)
	regionEndPattern   = regexp.MustCompile(`^\s*\{#\s*endregion\s*#\}\s*$`)
)

// node is either fixed text (region == "") or the body of a named region.
type node struct {
	region string
	text   string
}

// Skeleton is an ordered sequence of fixed-text and region nodes parsed from
// a template containing `{# region name #}` / `{# endregion #}` marker lines.
// Marker lines are dropped; region bodies keep their lines verbatim.
type Skeleton struct {
	nodes   []node
	regions []string
}

// ParseSkeleton splits src into nodes. Regions are flat: nested, unterminated,
// duplicated or unopened regions are errors.
func ParseSkeleton(src string) (Skeleton, error) {
	var (
		skeleton Skeleton
		current  *node
		text     strings.Builder
		seen     = make(map[string]int)
	)

	flushText := func() {
		if text.Len() == 0 {
			return
		}
		skeleton.nodes = append(skeleton.nodes, node{text: text.String()})
		text.Reset()
	}

	lines := strings.SplitAfter(src, "\n")
	for i, line := range lines {
		lineNo := i + 1
		trimmed := strings.TrimRight(line, "\r\n")

		if match := regionStartPattern.FindStringSubmatch(trimmed); match != nil {
			name := match[1]
			if current != nil {
				return Skeleton{}, fmt.Errorf("assembler: line %d: region %q opened inside region %q", lineNo, name, current.region)
			}
			if first, dup := seen[name]; dup {
				return Skeleton{}, fmt.Errorf("assembler: line %d: region %q already defined on line %d", lineNo, name, first)
			}
			seen[name] = lineNo
			flushText()
			current = &node{region: name}
			continue
		}

		if regionEndPattern.MatchString(trimmed) {
			if current == nil {
				return Skeleton{}, fmt.Errorf("assembler: line %d: endregion without open region", lineNo)
			}
			skeleton.nodes = append(skeleton.nodes, *current)
			skeleton.regions = append(skeleton.regions, current.region)
			current = nil
			continue
		}

		if current != nil {
			current.text += line
			continue
		}
		text.WriteString(line)
	}

	if current != nil {
		return Skeleton{}, fmt.Errorf("assembler: region %q opened on line %d is never closed", current.region, seen[current.region])
	}
	flushText()
	return skeleton, nil
}

// Regions lists region names in skeleton order.
func (s Skeleton) Regions() []string {
	out := make([]string, len(s.regions))
	copy(out, s.regions)
	return out
}

// Resolve concatenates fixed text with the bodies of active regions.
func (s Skeleton) Resolve(active func(region string) bool) string {
	var b strings.Builder
	for _, n := range s.nodes {
		if n.region != "" && !active(n.region) {
			continue
		}
		b.WriteString(n.text)
	}
	return b.String()
}
