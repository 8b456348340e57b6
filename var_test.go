package declui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testVar mirrors a state-tainted string Var carrying the full spread of
// provenance: originating state, imports, and a hook.
func newTestVar() Var {
	return CreateSafe("test").Replace(WithData(&VarData{
		State:   "Test",
		Imports: ImportDict{"test": {{Tag: "test"}}},
		Hooks:   map[string]string{"useTest": ""},
	}))
}

func TestCreateRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
		typ   VarType
	}{
		{"string", "hello", TypeString},
		{"empty string", "", TypeString},
		{"int", 42, TypeNumber},
		{"negative int", -13, TypeNumber},
		{"float", 1.5, TypeNumber},
		{"bool", true, TypeBool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Create(tt.value)
			if err != nil {
				t.Fatalf("Create(%v) error = %v", tt.value, err)
			}
			if v.Type != tt.typ {
				t.Errorf("Create(%v).Type = %v, want %v", tt.value, v.Type, tt.typ)
			}
			if !v.IsLocal {
				t.Errorf("Create(%v).IsLocal = false, want true", tt.value)
			}
			if got := v.Decode(); got != tt.value {
				t.Errorf("Decode() = %v, want %v", got, tt.value)
			}
		})
	}
}

func TestCreateUnsupported(t *testing.T) {
	type opaque struct{ x int }

	if _, err := Create(opaque{1}); !errors.Is(err, ErrUnsupportedLiteral) {
		t.Errorf("Create(struct) error = %v, want ErrUnsupportedLiteral", err)
	}
	if _, err := Create(nil); !errors.Is(err, ErrUnsupportedLiteral) {
		t.Errorf("Create(nil) error = %v, want ErrUnsupportedLiteral", err)
	}

	// CreateSafe never fails: unsupported shapes fall back to object.
	v := CreateSafe(opaque{1})
	if v.Type != TypeObject {
		t.Errorf("CreateSafe(struct).Type = %v, want TypeObject", v.Type)
	}
}

func TestCreateContainers(t *testing.T) {
	tests := []struct {
		name  string
		value any
		typ   VarType
		want  string
	}{
		{
			"dict of dict",
			map[string]any{"a": map[string]any{"b": "test"}},
			TypeDict,
			`{"a": {"b": "test"}}`,
		},
		{
			"list of list",
			[]any{[]any{"test"}},
			TypeList,
			`[["test"]]`,
		},
		{
			"list of list of list",
			[]any{[]any{[]any{"test"}}},
			TypeList,
			`[[["test"]]]`,
		},
		{
			"list of dict",
			[]any{map[string]any{"a": "test"}},
			TypeList,
			`[{"a": "test"}]`,
		},
		{
			"mixed scalars",
			[]any{1, true, "x"},
			TypeList,
			`[1, true, "x"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Create(tt.value)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if v.Type != tt.typ {
				t.Errorf("Type = %v, want %v", v.Type, tt.typ)
			}
			if v.Name != tt.want {
				t.Errorf("Name = %q, want %q", v.Name, tt.want)
			}
		})
	}
}

func TestNestedContainerMergesProvenance(t *testing.T) {
	tv := newTestVar()
	v, err := Create(map[string]any{"a": map[string]any{"b": tv}})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// The inner Var's expression is embedded at the nested path and its
	// provenance propagates outward without flattening the structure.
	want := `{"a": {"b": "test"}}`
	if v.Name != want {
		t.Errorf("Name = %q, want %q", v.Name, want)
	}
	if v.Data == nil {
		t.Fatal("Data = nil, want merged provenance")
	}
	if v.Data.State != "Test" {
		t.Errorf("Data.State = %q, want %q", v.Data.State, "Test")
	}
	if len(v.Data.Imports["test"]) != 1 {
		t.Errorf("Data.Imports[test] = %v, want one entry", v.Data.Imports["test"])
	}
	if _, ok := v.Data.Hooks["useTest"]; !ok {
		t.Error("Data.Hooks missing useTest")
	}
}

func TestNestedContainerEmbedsExpression(t *testing.T) {
	state := NewState("app_state")
	ref := state.Var("title", TypeString)

	v, err := Create(map[string]any{"a": map[string]any{"b": ref}})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	want := `{"a": {"b": app_state.title}}`
	if v.Name != want {
		t.Errorf("Name = %q, want %q", v.Name, want)
	}
	if v.Data.State != "app_state" {
		t.Errorf("Data.State = %q, want %q", v.Data.State, "app_state")
	}
}

func TestEqualsIgnoresData(t *testing.T) {
	a := newTestVar()
	b := CreateSafe("test")

	if !a.Equals(b) {
		t.Error("Vars with equal (name, type, is_local) should be equal regardless of provenance")
	}
	if a.IdentityKey() != b.IdentityKey() {
		t.Error("IdentityKey should ignore provenance data")
	}

	c := CreateSafe("other")
	if a.Equals(c) {
		t.Error("Vars with different names should not be equal")
	}
}

func TestReplace(t *testing.T) {
	orig := newTestVar()
	derived := orig.Replace(WithName("style"), WithLocal(false))

	if derived.Name != "style" || derived.IsLocal {
		t.Errorf("Replace() = %+v, want name=style is_local=false", derived)
	}
	if derived.Data.State != "Test" {
		t.Errorf("Replace() dropped provenance: %+v", derived.Data)
	}
	// The receiver is never modified.
	if orig.Name != "test" || !orig.IsLocal {
		t.Errorf("Replace() mutated receiver: %+v", orig)
	}

	typed := orig.Replace(WithType(TypeEventChain))
	if typed.Type != TypeEventChain {
		t.Errorf("Replace(WithType) = %v, want event_chain", typed.Type)
	}
}

func TestSprintfLocal(t *testing.T) {
	tv := newTestVar()
	v := Sprintf("foo%vbar", tv)

	if v.Name != "footestbar" {
		t.Errorf("Name = %q, want %q", v.Name, "footestbar")
	}
	if !v.IsLocal || v.Type != TypeString {
		t.Errorf("Sprintf result = %+v, want local string", v)
	}
	if v.Data == nil || v.Data.State != "Test" {
		t.Fatalf("Sprintf dropped provenance: %+v", v.Data)
	}

	// The interpolation records the original embedded Var and its range,
	// so recipients can access it un-interpolated.
	if len(v.Data.Interpolations) != 1 {
		t.Fatalf("Interpolations = %d, want 1", len(v.Data.Interpolations))
	}
	interp := v.Data.Interpolations[0]
	if !interp.Var.Equals(tv) {
		t.Errorf("Interpolation.Var = %+v, want original", interp.Var)
	}
	if got := v.Name[interp.Start:interp.End]; got != "test" {
		t.Errorf("interpolated range = %q, want %q", got, "test")
	}
}

func TestSprintfExpression(t *testing.T) {
	state := NewState("app_state")
	ref := state.Var("name", TypeString)
	v := Sprintf("Hello, %v!", ref)

	if v.Name != "Hello, ${app_state.name}!" {
		t.Errorf("Name = %q", v.Name)
	}
	if v.Data.State != "app_state" {
		t.Errorf("Data.State = %q, want app_state", v.Data.State)
	}
}

func TestSprintfMultiple(t *testing.T) {
	a := CreateSafe("a").Replace(WithData(&VarData{Imports: ImportDict{"liba": {{Tag: "A"}}}}))
	b := CreateSafe("b").Replace(WithData(&VarData{Imports: ImportDict{"libb": {{Tag: "B"}}}}))
	v := Sprintf("%v and %v", a, b)

	if v.Name != "a and b" {
		t.Errorf("Name = %q", v.Name)
	}
	if len(v.Data.Interpolations) != 2 {
		t.Fatalf("Interpolations = %d, want 2", len(v.Data.Interpolations))
	}
	if len(v.Data.Imports) != 2 {
		t.Errorf("Imports = %v, want union of both", v.Data.Imports)
	}
}

func TestMergeVarData(t *testing.T) {
	a := &VarData{State: "A", Imports: ImportDict{"lib": {{Tag: "X"}}}}
	b := &VarData{Imports: ImportDict{"lib": {{Tag: "X"}, {Tag: "Y"}}}, Hooks: map[string]string{"h": "init"}}

	merged := MergeVarData(a, nil, b)
	if merged.State != "A" {
		t.Errorf("State = %q, want A", merged.State)
	}
	if diff := cmp.Diff([]ImportVar{{Tag: "X"}, {Tag: "Y"}}, merged.Imports["lib"]); diff != "" {
		t.Errorf("Imports mismatch (-want +got):\n%s", diff)
	}
	if merged.Hooks["h"] != "init" {
		t.Errorf("Hooks = %v", merged.Hooks)
	}

	if MergeVarData(nil, nil) != nil {
		t.Error("MergeVarData of all-nil inputs should be nil")
	}
}

func TestVarJS(t *testing.T) {
	tests := []struct {
		name string
		v    Var
		want string
	}{
		{"local string", CreateSafe("hi"), "`hi`"},
		{"local number", CreateSafe(3), "3"},
		{"local bool", CreateSafe(false), "false"},
		{"expression", NewState("s").Var("n", TypeNumber), "s.n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.JS(); got != tt.want {
				t.Errorf("JS() = %q, want %q", got, tt.want)
			}
		})
	}
}
