package declui

import (
	"fmt"
	"sort"
	"strings"
)

// Props carries the keyword arguments of a Create call: declared fields,
// trigger bindings, and cross-cutting options (style, custom_attrs, key,
// id, class_name, special_props). Entries with nil values are dropped
// entirely.
type Props map[string]any

// Cross-cutting prop names accepted by every component.
const (
	propStyle        = "style"
	propCustomAttrs  = "custom_attrs"
	propKey          = "key"
	propID           = "id"
	propClassName    = "class_name"
	propSpecialProps = "special_props"
)

// Component is one node of a declarative UI tree: a type identity,
// resolved props, children, style, custom attributes, and event
// bindings. Nodes move through unbuilt -> built (Create) -> rendered
// (Render); structural constraints are checked only at render time,
// when the full tree shape is known.
type Component struct {
	spec *Spec

	props       map[string]Var
	events      map[string]Var
	chains      map[string]EventChain
	style       Style
	customAttrs map[string]Var
	specialVars []Var
	children    []*Component

	// Bare text leaf state.
	isBare   bool
	contents Var

	// Set when this node is a memoized artifact.
	custom   *CustomComponent
	stateful *statefulArtifact
}

// Create builds a component node from children and props. Positional
// arguments may be *Component children, values coerced to text leaves
// (strings, numbers, bools, Vars), or Props maps contributing keyword
// props; later Props entries override earlier ones.
//
// Prop validation and coercion happen here: unknown props and type
// mismatches fail immediately, nil-valued entries are dropped,
// deprecated underscore-suffixed aliases are translated with one warning
// per alias, and trigger-named props are normalized into event chains.
func (s *Spec) Create(args ...any) (*Component, error) {
	c := &Component{
		spec:        s,
		props:       make(map[string]Var),
		events:      make(map[string]Var),
		chains:      make(map[string]EventChain),
		style:       make(Style),
		customAttrs: make(map[string]Var),
	}

	raw := make(Props)
	for _, arg := range args {
		switch a := arg.(type) {
		case nil:
			continue
		case Props:
			for k, v := range a {
				raw[k] = v
			}
		case *Component:
			c.children = append(c.children, a)
		case *CustomComponent:
			c.children = append(c.children, a.node)
		case []*Component:
			c.children = append(c.children, a...)
		default:
			c.children = append(c.children, Bare(a))
		}
	}

	if err := c.applyProps(raw); err != nil {
		return nil, err
	}
	return c, nil
}

// applyProps validates, coerces, and stores the keyword props.
func (c *Component) applyProps(raw Props) error {
	s := c.spec

	// Translate deprecated underscore-suffixed aliases first, warning
	// exactly once per alias. A trailing-underscore name that is itself
	// a declared field is not an alias and warns nothing.
	var aliases []string
	for key := range raw {
		if !strings.HasSuffix(key, "_") {
			continue
		}
		if _, declared := s.fieldIdx[key]; declared {
			continue
		}
		if _, declared := s.fieldIdx[strings.TrimSuffix(key, "_")]; declared {
			aliases = append(aliases, key)
		}
	}
	sort.Strings(aliases)
	for _, key := range aliases {
		canonical := strings.TrimSuffix(key, "_")
		warnf("DeprecationWarning: prop `%s` of component `%s` is deprecated, use `%s` instead",
			key, s.typeName, canonical)
		// The canonical value wins when both forms are supplied.
		if _, ok := raw[canonical]; !ok {
			raw[canonical] = raw[key]
		}
		delete(raw, key)
	}

	// Drop nil-valued entries entirely: not stored, not counted.
	for key, value := range raw {
		if value == nil {
			delete(raw, key)
		}
	}

	// Declared fields in declaration order, then everything else in
	// sorted order, so validation errors are deterministic.
	handled := make(map[string]bool, len(raw))
	for _, f := range s.fields {
		value, ok := raw[f.Name]
		if !ok {
			continue
		}
		handled[f.Name] = true
		v, err := coerceProp(s.typeName, f, value)
		if err != nil {
			return err
		}
		c.props[f.Name] = v
	}

	rest := make([]string, 0, len(raw))
	for key := range raw {
		if !handled[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	for _, key := range rest {
		if err := c.applyCrossCutting(key, raw[key]); err != nil {
			return err
		}
	}
	return nil
}

// applyCrossCutting handles trigger bindings and the always-accepted
// special props.
func (c *Component) applyCrossCutting(key string, value any) error {
	s := c.spec

	if ts, ok := s.triggers[key]; ok {
		chainVar, chain, err := normalizeEventChain(s.typeName, key, ts, value)
		if err != nil {
			return err
		}
		c.events[key] = chainVar
		if chain != nil {
			c.chains[key] = *chain
		}
		return nil
	}

	switch key {
	case propStyle:
		switch sv := value.(type) {
		case Style:
			for k, v := range sv {
				c.style[toCamelCase(k)] = v
			}
		case map[string]any:
			for k, v := range NewStyle(sv) {
				c.style[k] = v
			}
		default:
			return fmt.Errorf("%w: component `%s` style must be a map, got %T",
				ErrPropType, s.typeName, value)
		}
	case propCustomAttrs:
		attrs, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: component `%s` custom_attrs must be a map, got %T",
				ErrPropType, s.typeName, value)
		}
		for k, v := range attrs {
			switch av := v.(type) {
			case string:
				c.customAttrs[k] = CreateSafe(av)
			case Var:
				c.customAttrs[k] = av
			default:
				return fmt.Errorf("%w: component `%s` custom attribute `%s` must be a string or Var, got %T",
					ErrPropType, s.typeName, k, v)
			}
		}
	case propKey, propID, propClassName:
		v := CreateSafe(value)
		if v.Type != TypeString && v.Type != TypeNumber {
			return fmt.Errorf("%w: component `%s` prop `%s` must be a string, got %s",
				ErrPropType, s.typeName, key, v.Type)
		}
		c.props[key] = v
	case propSpecialProps:
		switch sp := value.(type) {
		case []Var:
			c.specialVars = append(c.specialVars, sp...)
		case []any:
			for _, item := range sp {
				c.specialVars = append(c.specialVars, CreateSafe(item))
			}
		case Var:
			c.specialVars = append(c.specialVars, sp)
		default:
			return fmt.Errorf("%w: component `%s` special_props must be a list of Vars, got %T",
				ErrPropType, s.typeName, value)
		}
	default:
		if styleShorthand[key] {
			c.style.Set(key, value)
			return nil
		}
		if strings.HasPrefix(key, "on_") {
			return fmt.Errorf("%w: component `%s` declares no trigger `%s`", ErrUnknownTrigger, s.typeName, key)
		}
		return fmt.Errorf("%w: component `%s` has no prop `%s`", ErrUnknownProp, s.typeName, key)
	}
	return nil
}

// coerceProp validates a declared-field value: a raw literal is coerced
// to a local Var of the declared type; an existing Var must carry a
// compatible type, provenance preserved.
func coerceProp(typeName string, f field, value any) (Var, error) {
	v, err := Create(value)
	if err != nil {
		return Var{}, fmt.Errorf("%w: component `%s` prop `%s`: %v",
			ErrPropType, typeName, f.Name, err)
	}
	if f.Type == TypeObject || v.Type == f.Type {
		return v, nil
	}
	// A dynamic expression of unknown shape may flow into any field.
	if v.Type == TypeObject && !v.IsLocal {
		return v, nil
	}
	return Var{}, fmt.Errorf("%w: component `%s` prop `%s` expects %s, got %s",
		ErrPropType, typeName, f.Name, f.Type, v.Type)
}

// bareSpec is the implicit text-leaf variant.
var bareSpec = NewSpec("Bare")

// Bare wraps any value as a text-leaf node rendering the value's
// expression as its contents.
func Bare(value any) *Component {
	return &Component{
		spec:        bareSpec,
		props:       make(map[string]Var),
		events:      make(map[string]Var),
		chains:      make(map[string]EventChain),
		style:       make(Style),
		customAttrs: make(map[string]Var),
		isBare:      true,
		contents:    CreateSafe(value),
	}
}

// Spec returns the component's variant schema.
func (c *Component) Spec() *Spec {
	return c.spec
}

// TypeName returns the component's type identity.
func (c *Component) TypeName() string {
	return c.spec.typeName
}

// Children returns the node's direct children.
func (c *Component) Children() []*Component {
	return c.children
}

// Props returns the resolved prop map. Nil-valued entries were dropped
// at construction and never appear here.
func (c *Component) Props() map[string]Var {
	out := make(map[string]Var, len(c.props))
	for k, v := range c.props {
		out[k] = v
	}
	return out
}

// Prop returns a resolved prop and whether it is set.
func (c *Component) Prop(name string) (Var, bool) {
	v, ok := c.props[name]
	return v, ok
}

// Style returns the node's style map.
func (c *Component) Style() Style {
	return c.style
}

// CustomAttrs returns the node's custom attribute map.
func (c *Component) CustomAttrs() map[string]Var {
	return c.customAttrs
}

// Event returns the normalized event-chain Var bound to a trigger.
func (c *Component) Event(trigger string) (Var, bool) {
	v, ok := c.events[trigger]
	return v, ok
}

// GetVars returns the distinct Vars this node references through props,
// style, custom attributes, special props, and event bindings --
// deduplicated by value equality, one entry per occurrence class.
func (c *Component) GetVars() []Var {
	var vars []Var

	if c.isBare {
		vars = append(vars, c.contents)
	}
	for _, f := range c.spec.fields {
		if v, ok := c.props[f.Name]; ok {
			vars = append(vars, v)
		}
	}
	for _, key := range []string{propID, propClassName, propKey} {
		if v, ok := c.props[key]; ok {
			vars = append(vars, v)
		}
	}
	vars = append(vars, c.specialVars...)
	if len(c.style) > 0 {
		vars = append(vars, c.style.Var())
	}
	for _, k := range sortedKeys(c.customAttrs) {
		vars = append(vars, c.customAttrs[k])
	}
	for _, trigger := range sortedKeys(c.events) {
		if chain, ok := c.chains[trigger]; ok {
			for _, ev := range chain.Events {
				for _, arg := range ev.Args {
					vars = append(vars, CreateSafe(arg.Name), arg.Value)
				}
			}
		} else {
			// Pass-through event-chain Var bound directly.
			vars = append(vars, c.events[trigger])
		}
	}

	return dedupeVars(vars)
}

// varData returns the merged provenance of every Var the node
// references.
func (c *Component) varData() *VarData {
	vars := c.GetVars()
	datas := make([]*VarData, 0, len(vars)+len(c.events))
	for _, v := range vars {
		datas = append(datas, v.Data)
	}
	for _, trigger := range sortedKeys(c.events) {
		datas = append(datas, c.events[trigger].Data)
	}
	return MergeVarData(datas...)
}

// GetAllImports walks the tree merging each node's import requirements
// (spec-level plus Var provenance) with all children's, deduplicating by
// symbol. A memoized custom component contributes nothing from its
// unexpanded body; those imports surface only through CompileComponents.
func (c *Component) GetAllImports() ImportDict {
	out := make(ImportDict)
	c.mergeImports(out)
	return out
}

func (c *Component) mergeImports(into ImportDict) {
	if c.custom == nil {
		into.Merge(c.spec.imports)
		if c.spec.library != "" {
			into.Add(c.spec.library, ImportVar{Tag: c.spec.tag})
		}
	}
	if data := c.varData(); data != nil && data.Imports != nil {
		into.Merge(data.Imports)
	}
	for _, child := range c.children {
		child.mergeImports(into)
	}
}

// GetAllHooks walks the tree collecting hook declarations, deduplicated
// by source text: the same hook contributed by repeated subtrees appears
// once.
func (c *Component) GetAllHooks() map[string]string {
	out := make(map[string]string)
	c.mergeHooks(out)
	return out
}

func (c *Component) mergeHooks(into map[string]string) {
	if c.custom == nil {
		for src, init := range c.spec.hooks {
			if _, ok := into[src]; !ok {
				into[src] = init
			}
		}
	}
	if data := c.varData(); data != nil {
		for src, init := range data.Hooks {
			if _, ok := into[src]; !ok {
				into[src] = init
			}
		}
	}
	for _, child := range c.children {
		child.mergeHooks(into)
	}
}

// GetAllCustomCode walks the tree collecting custom code snippets as a
// set: a component repeated N times contributes its code once.
func (c *Component) GetAllCustomCode() map[string]struct{} {
	out := make(map[string]struct{})
	c.mergeCustomCode(out)
	return out
}

func (c *Component) mergeCustomCode(into map[string]struct{}) {
	if c.custom == nil && c.spec.customCode != "" {
		into[c.spec.customCode] = struct{}{}
	}
	for _, child := range c.children {
		child.mergeCustomCode(into)
	}
}

// GetAllCustomComponents returns the distinct custom-component artifacts
// referenced anywhere in the tree, deduplicated by identity hash.
func (c *Component) GetAllCustomComponents() []*CustomComponent {
	seen := make(map[string]bool)
	var out []*CustomComponent
	c.collectCustom(seen, &out)
	return out
}

func (c *Component) collectCustom(seen map[string]bool, out *[]*CustomComponent) {
	if c.custom != nil {
		if h := c.custom.Hash(); !seen[h] {
			seen[h] = true
			*out = append(*out, c.custom)
		}
	}
	for _, child := range c.children {
		child.collectCustom(seen, out)
	}
}

// StatefulVars reports whether any Var of this node references backend
// state or an event binding exists; such nodes qualify for stateful
// memoization.
func (c *Component) StatefulVars() bool {
	if len(c.events) > 0 {
		return true
	}
	for _, v := range c.GetVars() {
		if v.StateName() != "" {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
