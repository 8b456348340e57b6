package declui

import (
	"fmt"
	"strings"
)

// RenderedComponent is the markup intermediate record emitted by
// Render and consumed by the downstream compiler.
type RenderedComponent struct {
	// Tag is the markup tag. Empty for text leaves.
	Tag string

	// Props holds "name={value}" strings with renamed keys substituted,
	// in deterministic order: declared fields first, then id/className/
	// key, event bindings, custom attributes, and style.
	Props []string

	// Contents is the literal text of a leaf or bare node.
	Contents string

	// SpecialProps are raw expressions rendered verbatim into the tag.
	SpecialProps []string

	// Children are the child records in tree order.
	Children []*RenderedComponent
}

// Render validates the tree's structural constraints and produces the
// intermediate record. Validation happens here, not at construction,
// because the parent context of every node is only known once the whole
// tree is assembled. A structural violation aborts rendering with an
// error naming both component types.
func (c *Component) Render() (*RenderedComponent, error) {
	if err := validateTree(c); err != nil {
		return nil, err
	}
	return c.renderNode()
}

// renderNode emits the record for an already-validated subtree.
func (c *Component) renderNode() (*RenderedComponent, error) {
	if c.isBare {
		return &RenderedComponent{Contents: "{" + c.contents.JS() + "}"}, nil
	}

	rc := &RenderedComponent{Tag: c.spec.tag}
	rc.Props = c.renderProps()
	for _, sp := range c.specialVars {
		rc.SpecialProps = append(rc.SpecialProps, sp.JS())
	}
	for _, child := range c.children {
		childRC, err := child.renderNode()
		if err != nil {
			return nil, err
		}
		rc.Children = append(rc.Children, childRC)
	}
	return rc, nil
}

// renderProps formats the resolved props in deterministic order.
func (c *Component) renderProps() []string {
	var out []string

	// Custom components declare no fields; the wrapped function defines
	// what the props mean, so they render in sorted order.
	if c.custom != nil {
		for _, name := range sortedKeys(c.props) {
			out = append(out, formatProp(name, c.props[name]))
		}
		return out
	}

	for _, f := range c.spec.fields {
		v, ok := c.props[f.Name]
		if !ok {
			continue
		}
		name := f.Name
		if renamed, ok := c.spec.renames[name]; ok {
			name = renamed
		}
		out = append(out, formatProp(name, v))
	}

	if v, ok := c.props[propID]; ok {
		out = append(out, formatProp("id", v))
	}
	if v, ok := c.props[propClassName]; ok {
		out = append(out, formatProp("className", v))
	}
	if v, ok := c.props[propKey]; ok {
		out = append(out, formatProp("key", v))
	}

	for _, trigger := range sortedKeys(c.events) {
		out = append(out, formatProp(toCamelCase(trigger), c.events[trigger]))
	}
	for _, attr := range sortedKeys(c.customAttrs) {
		out = append(out, formatProp(attr, c.customAttrs[attr]))
	}
	if len(c.style) > 0 {
		out = append(out, fmt.Sprintf("style={%s}", c.style.render()))
	}
	return out
}

func formatProp(name string, v Var) string {
	return name + "={" + v.JS() + "}"
}

// String renders the record as indented markup-like text, for debugging
// and golden assertions.
func (rc *RenderedComponent) String() string {
	var sb strings.Builder
	rc.write(&sb, 0)
	return sb.String()
}

func (rc *RenderedComponent) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	if rc.Tag == "" && rc.Contents != "" {
		sb.WriteString(indent + rc.Contents)
		return
	}

	sb.WriteString(indent + "<" + rc.Tag)
	for _, p := range rc.Props {
		sb.WriteString(" " + p)
	}
	for _, sp := range rc.SpecialProps {
		sb.WriteString(" " + sp)
	}

	if len(rc.Children) == 0 && rc.Contents == "" {
		sb.WriteString("/>")
		return
	}

	sb.WriteString(">")
	if rc.Contents != "" {
		sb.WriteString("\n" + indent + "  " + rc.Contents)
	}
	for _, child := range rc.Children {
		sb.WriteString("\n")
		child.write(sb, depth+1)
	}
	sb.WriteString("\n" + indent + "</" + rc.Tag + ">")
}
