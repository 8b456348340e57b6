package declui

import "strings"

// TestResult holds the output of rendering a component tree for
// testing: the intermediate record, its textual form, and the
// aggregated declarations.
type TestResult struct {
	Record     *RenderedComponent
	Output     string
	Imports    ImportDict
	Hooks      map[string]string
	CustomCode map[string]struct{}
}

// TestRender renders a tree and returns testable output. Use this for
// unit tests of composition logic; structural validation runs exactly
// as in production rendering.
//
//	result, err := declui.TestRender(comp)
//	if !result.Contains("color={`white`}") {
//	    t.Fatal("missing expected prop")
//	}
func TestRender(c *Component) (*TestResult, error) {
	rec, err := c.Render()
	if err != nil {
		return nil, err
	}
	return &TestResult{
		Record:     rec,
		Output:     rec.String(),
		Imports:    c.GetAllImports(),
		Hooks:      c.GetAllHooks(),
		CustomCode: c.GetAllCustomCode(),
	}, nil
}

// Contains reports whether the rendered output contains the substring.
func (r *TestResult) Contains(s string) bool {
	return strings.Contains(r.Output, s)
}

// HasProp reports whether any rendered prop of the root record equals
// the given "name={value}" string.
func (r *TestResult) HasProp(prop string) bool {
	for _, p := range r.Record.Props {
		if p == prop {
			return true
		}
	}
	return false
}

// HasImport reports whether the aggregated imports include the symbol
// from the library.
func (r *TestResult) HasImport(library, tag string) bool {
	for _, iv := range r.Imports[library] {
		if iv.Tag == tag {
			return true
		}
	}
	return false
}
