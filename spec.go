package declui

import "fmt"

// field is one declared prop: a name and the semantic type it accepts.
type field struct {
	Name string
	Type VarType
}

// Spec is the resolved schema of one component variant: its declared
// fields, prop renames, event triggers, structural constraints, and the
// imports/hooks/custom code its rendering requires.
//
// Specs are built once at registration time with the fluent builder
// methods; Extend derives a variant whose schema is the base schema with
// the child's declared deltas applied per key. No ancestor walking
// happens after registration.
//
// Builder methods are not safe for concurrent use; build specs during
// initialization, then treat them as immutable.
type Spec struct {
	typeName    string
	tag         string
	library     string
	transparent bool

	fields   []field
	fieldIdx map[string]int
	renames  map[string]string
	triggers map[string]TriggerSpec

	validChildren   []string
	invalidChildren []string
	validParents    []string

	imports    ImportDict
	hooks      map[string]string
	customCode string
}

// NewSpec declares a new component variant. The type name doubles as
// the default markup tag and as the identity used by structural
// constraints. Every spec inherits the default pointer/focus/lifecycle
// triggers.
func NewSpec(typeName string) *Spec {
	if typeName == "" {
		panic("declui: spec type name must not be empty")
	}
	return &Spec{
		typeName: typeName,
		tag:      typeName,
		fieldIdx: make(map[string]int),
		renames:  make(map[string]string),
		triggers: defaultTriggers(),
		imports:  make(ImportDict),
		hooks:    make(map[string]string),
	}
}

// Extend derives a new variant from s. The child starts with a copy of
// the parent's resolved schema (fields, renames, triggers, constraints,
// imports, hooks) and overrides or adds entries per key with its own
// builder calls. Renames the child does not mention are kept.
func (s *Spec) Extend(typeName string) *Spec {
	child := NewSpec(typeName)
	child.library = s.library
	child.transparent = s.transparent
	child.customCode = s.customCode
	for _, f := range s.fields {
		child.Prop(f.Name, f.Type)
	}
	for from, to := range s.renames {
		child.renames[from] = to
	}
	for name, ts := range s.triggers {
		child.triggers[name] = ts
	}
	child.validChildren = append(child.validChildren, s.validChildren...)
	child.invalidChildren = append(child.invalidChildren, s.invalidChildren...)
	child.validParents = append(child.validParents, s.validParents...)
	child.imports.Merge(s.imports)
	for src, init := range s.hooks {
		child.hooks[src] = init
	}
	return child
}

// Prop declares a field accepting literals of the given type or Vars of
// a compatible type. Redeclaring a field overrides its type in place,
// keeping declaration order.
func (s *Spec) Prop(name string, t VarType) *Spec {
	if idx, ok := s.fieldIdx[name]; ok {
		s.fields[idx].Type = t
		return s
	}
	s.fieldIdx[name] = len(s.fields)
	s.fields = append(s.fields, field{Name: name, Type: t})
	return s
}

// Rename substitutes the rendered prop name for a declared field.
func (s *Spec) Rename(from, to string) *Spec {
	s.renames[from] = to
	return s
}

// TagName overrides the markup tag (defaults to the type name).
func (s *Spec) TagName(tag string) *Spec {
	s.tag = tag
	return s
}

// Lib records the frontend library providing the component's tag.
func (s *Spec) Lib(library string) *Spec {
	s.library = library
	return s
}

// Trigger declares or overrides an event trigger. A declared trigger
// replaces the inherited default of the same name.
func (s *Spec) Trigger(name string, ts TriggerSpec) *Spec {
	s.triggers[name] = ts
	return s
}

// Import records an import requirement contributed by every instance.
func (s *Spec) Import(library string, vars ...ImportVar) *Spec {
	s.imports.Add(library, vars...)
	return s
}

// Hook records a hook declaration (with optional init code) contributed
// by every instance.
func (s *Spec) Hook(source, init string) *Spec {
	s.hooks[source] = init
	return s
}

// CustomCode records supporting code emitted once per compiled module,
// however many instances appear in a tree.
func (s *Spec) CustomCode(code string) *Spec {
	s.customCode = code
	return s
}

// ValidChildren restricts children to the named component types.
func (s *Spec) ValidChildren(typeNames ...string) *Spec {
	s.validChildren = append(s.validChildren, typeNames...)
	return s
}

// InvalidChildren forbids the named component types as children.
func (s *Spec) InvalidChildren(typeNames ...string) *Spec {
	s.invalidChildren = append(s.invalidChildren, typeNames...)
	return s
}

// ValidParents restricts which component types may contain this one.
func (s *Spec) ValidParents(typeNames ...string) *Spec {
	s.validParents = append(s.validParents, typeNames...)
	return s
}

// Transparent marks the component invisible to structural validation:
// parent/child checks pass through it to its own children.
func (s *Spec) Transparent() *Spec {
	s.transparent = true
	return s
}

// TypeName returns the variant's type identity.
func (s *Spec) TypeName() string {
	return s.typeName
}

// Tag returns the markup tag instances render with.
func (s *Spec) Tag() string {
	return s.tag
}

// Library returns the providing frontend library, if any.
func (s *Spec) Library() string {
	return s.library
}

// Props returns the declared field names in declaration order.
func (s *Spec) Props() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// Triggers returns a copy of the resolved trigger map: the inherited
// defaults unioned with declared triggers, declared entries replacing
// defaults by name.
func (s *Spec) Triggers() map[string]TriggerSpec {
	out := make(map[string]TriggerSpec, len(s.triggers))
	for name, ts := range s.triggers {
		out[name] = ts
	}
	return out
}

// MustCreate is Create but panics on error. Intended for static trees
// and tests where a construction error is a programming mistake.
func (s *Spec) MustCreate(args ...any) *Component {
	c, err := s.Create(args...)
	if err != nil {
		panic(fmt.Sprintf("declui: MustCreate %s: %v", s.typeName, err))
	}
	return c
}
