package declui

import (
	"errors"
	"testing"
)

func TestTestRender(t *testing.T) {
	tree := newComponent1().MustCreate(
		Bare("hello"),
		newComponent2().MustCreate(Props{"arr": []any{1, 2}}),
		Props{"text": "greeting", "color": "white"},
	)

	result, err := TestRender(tree)
	if err != nil {
		t.Fatalf("TestRender() error = %v", err)
	}

	if !result.Contains("<TestComponent1") || !result.Contains("{`hello`}") {
		t.Errorf("Output missing expected markup:\n%s", result.Output)
	}
	if result.Contains("<NoSuchTag") {
		t.Error("Contains matched markup that was never rendered")
	}

	if !result.HasProp("text={`greeting`}") {
		t.Errorf("root props = %v, want text={`greeting`}", result.Record.Props)
	}
	if result.HasProp("text={`other`}") {
		t.Error("HasProp matched a prop value that was never set")
	}
	// HasProp inspects the root record only; child props do not count.
	if result.HasProp("arr={[1, 2]}") {
		t.Error("HasProp matched a child's prop")
	}

	if !result.HasImport("react", "Component") || !result.HasImport("react-redux", "connect") {
		t.Errorf("Imports = %v, want both subtree libraries", result.Imports)
	}
	if result.HasImport("react", "useState") {
		t.Error("HasImport matched a symbol that was never required")
	}

	if len(result.CustomCode) != 2 {
		t.Errorf("CustomCode = %v, want both snippets", result.CustomCode)
	}
}

func TestTestRenderStructuralError(t *testing.T) {
	spec := NewSpec("Strict").InvalidChildren("TestComponent1")
	result, err := TestRender(spec.MustCreate(newComponent1().MustCreate()))
	if !errors.Is(err, ErrInvalidChild) {
		t.Errorf("TestRender() error = %v, want ErrInvalidChild", err)
	}
	if result != nil {
		t.Error("TestRender() should return no result on a structural error")
	}
}
