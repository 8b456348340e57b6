package declui

import (
	"sort"
	"strings"
)

// Style maps camelCase style keys to Var values.
type Style map[string]Var

// NewStyle builds a Style from raw key/value pairs. Keys written in
// snake_case are normalized to camelCase; values are wrapped as Vars
// with provenance preserved.
func NewStyle(attrs map[string]any) Style {
	s := make(Style, len(attrs))
	for k, v := range attrs {
		s[toCamelCase(k)] = CreateSafe(v)
	}
	return s
}

// Set normalizes the key and stores the value, wrapping it as a Var.
func (s Style) Set(key string, value any) {
	s[toCamelCase(key)] = CreateSafe(value)
}

// Var collapses the style map into a single composite expression Var
// named "style" whose Data is the union of every value's provenance.
// Structural dedup in GetVars relies on this: a style key contributes
// one occurrence class regardless of direct or interpolated form.
func (s Style) Var() Var {
	keys := make([]string, 0, len(s))
	datas := make([]*VarData, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		datas = append(datas, s[k].Data)
	}
	return Var{Name: "style", Type: TypeDict, Data: MergeVarData(datas...)}
}

// render serializes the style map as an object literal with sorted keys.
func (s Style) render() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(`"` + k + `": ` + s[k].jsEmbed())
	}
	sb.WriteString("}")
	return sb.String()
}

// toCamelCase converts snake_case to camelCase. Keys without
// underscores (including kebab-case) pass through unchanged.
func toCamelCase(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}
	parts := strings.Split(key, "_")
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}

// AddStyleRecursive applies per-type styles down the tree: a map entry
// keyed by a component type name contributes its keys to every node of
// that type, without clobbering keys the node already set. Children are
// visited depth-first. Returns c for chaining.
func (c *Component) AddStyleRecursive(styles map[string]Style) *Component {
	if st, ok := styles[c.spec.typeName]; ok {
		for k, v := range st {
			key := toCamelCase(k)
			if _, exists := c.style[key]; !exists {
				c.style[key] = v
			}
		}
	}
	for _, child := range c.children {
		child.AddStyleRecursive(styles)
	}
	return c
}

// styleShorthand lists the style properties accepted directly as
// component props, folded into the style map at construction.
var styleShorthand = map[string]bool{
	"background":       true,
	"background_color": true,
	"border":           true,
	"border_radius":    true,
	"color":            true,
	"display":          true,
	"font_size":        true,
	"font_weight":      true,
	"height":           true,
	"margin":           true,
	"padding":          true,
	"position":         true,
	"text_align":       true,
	"width":            true,
}
