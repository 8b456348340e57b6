// Package markup serializes render records into markup source text.
// It is the downstream surface of the component core: the compiler that
// turns {tag, props, contents, children} records plus aggregated
// imports, hooks, and custom code into a frontend module.
package markup

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/declui"
)

// Component wraps a render record tree as a templ.Component emitting
// indented markup.
func Component(rc *declui.RenderedComponent) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, rc.String())
		return err
	})
}

// Render writes the record's markup to w.
func Render(w io.Writer, rc *declui.RenderedComponent) error {
	return Component(rc).Render(context.Background(), w)
}

// String returns the record's markup text.
func String(rc *declui.RenderedComponent) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, rc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Attrs converts a record's formatted props into templ.Attributes, for
// embedding a compiled node into hand-written templ templates. Each
// "name={value}" prop contributes one attribute with the raw expression
// as its value.
func Attrs(rc *declui.RenderedComponent) templ.Attributes {
	attrs := templ.Attributes{}
	for _, p := range rc.Props {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			attrs[p] = true
			continue
		}
		attrs[name] = strings.TrimSuffix(strings.TrimPrefix(value, "{"), "}")
	}
	return attrs
}

// Document emits a complete module: import declarations, hook and
// custom-code declarations, then the markup body.
func Document(rc *declui.RenderedComponent, imports declui.ImportDict, hooks map[string]string, customCode map[string]struct{}) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, lib := range imports.Libraries() {
			if err := writeImport(w, lib, imports[lib]); err != nil {
				return err
			}
		}
		for _, code := range sortedSet(customCode) {
			if _, err := io.WriteString(w, code+"\n"); err != nil {
				return err
			}
		}
		for _, src := range sortedMapKeys(hooks) {
			line := src
			if init := hooks[src]; init != "" {
				line += " " + init
			}
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		return Render(w, rc)
	})
}

// writeImport emits one import declaration, defaults first:
//
//	import Default, { a, b as c } from "lib"
func writeImport(w io.Writer, lib string, vars []declui.ImportVar) error {
	var defaults, named []string
	for _, iv := range vars {
		if iv.IsDefault {
			defaults = append(defaults, iv.Name())
		} else if iv.Alias != "" {
			named = append(named, iv.Tag+" as "+iv.Alias)
		} else {
			named = append(named, iv.Tag)
		}
	}
	sort.Strings(defaults)
	sort.Strings(named)

	var parts []string
	parts = append(parts, defaults...)
	if len(named) > 0 {
		parts = append(parts, "{ "+strings.Join(named, ", ")+" }")
	}
	if len(parts) == 0 {
		_, err := io.WriteString(w, `import "`+lib+"\"\n")
		return err
	}
	_, err := io.WriteString(w, "import "+strings.Join(parts, ", ")+` from "`+lib+"\"\n")
	return err
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedMapKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
