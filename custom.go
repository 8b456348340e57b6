package declui

import (
	"fmt"
	"strings"

	"github.com/pthm/declui/lib/fingerprint"
)

// ComponentFn is a user-defined tree-building function: it receives the
// declared prop Vars and children, and returns the subtree they expand
// to. The function is not called at the call site; expansion happens
// once per unique artifact during CompileComponents.
type ComponentFn func(props map[string]Var, children ...*Component) (*Component, error)

// MemoComponent is a registered custom-component constructor: a named
// tree-building function whose call sites are memoized by prop value.
type MemoComponent struct {
	name string
	fn   ComponentFn
	tag  string
}

// Memo registers a tree-building function as a custom component. The
// markup tag is derived from the name (snake_case becomes PascalCase)
// unless overridden with WithTag.
func Memo(name string, fn ComponentFn) *MemoComponent {
	if name == "" {
		panic("declui: custom component name must not be empty")
	}
	if fn == nil {
		panic("declui: custom component function must not be nil")
	}
	return &MemoComponent{name: name, fn: fn, tag: pascalCase(name)}
}

// WithTag overrides the derived markup tag.
func (m *MemoComponent) WithTag(tag string) *MemoComponent {
	m.tag = tag
	return m
}

// Tag returns the markup tag call sites render with.
func (m *MemoComponent) Tag() string {
	return m.tag
}

// Call builds a custom-component node. Positional arguments follow the
// same shape as Spec.Create: *Component children, coercible child
// values, and Props maps. All props are accepted; literals are wrapped
// as local Vars, existing Vars keep their provenance.
//
// The body is NOT expanded here: the node renders as a reference to the
// shared compiled artifact.
func (m *MemoComponent) Call(args ...any) (*CustomComponent, error) {
	node := &Component{
		spec:        customSpec(m.tag),
		props:       make(map[string]Var),
		events:      make(map[string]Var),
		chains:      make(map[string]EventChain),
		style:       make(Style),
		customAttrs: make(map[string]Var),
	}

	for _, arg := range args {
		switch a := arg.(type) {
		case nil:
			continue
		case Props:
			for k, v := range a {
				if v == nil {
					continue
				}
				// Handler bindings become event-chain Vars. The wrapped
				// function declares what the prop means, so there is no
				// trigger spec to check arity against; the lambda form
				// carries the same exemption as inline literals.
				if isEventValue(v) {
					item := v
					cv, _, err := normalizeEventChain(m.tag, k, TriggerSpec{Params: []string{"_e"}},
						Lambda(func() []any { return []any{item} }))
					if err != nil {
						return nil, err
					}
					node.props[k] = cv
					continue
				}
				node.props[k] = CreateSafe(v)
			}
		case *Component:
			node.children = append(node.children, a)
		case *CustomComponent:
			node.children = append(node.children, a.node)
		default:
			node.children = append(node.children, Bare(a))
		}
	}

	cc := &CustomComponent{def: m, node: node}
	node.custom = cc
	return cc, nil
}

// MustCall is Call but panics on error.
func (m *MemoComponent) MustCall(args ...any) *CustomComponent {
	cc, err := m.Call(args...)
	if err != nil {
		panic(fmt.Sprintf("declui: MustCall %s: %v", m.name, err))
	}
	return cc
}

// customSpec builds the minimal spec a custom-component node renders
// with. It has no declared fields: the wrapped function defines what the
// props mean.
func customSpec(tag string) *Spec {
	s := NewSpec(tag)
	return s
}

// CustomComponent is one call site of a memoized custom component.
// Identity is the hash of (constructor name, prop Vars by value
// equality): two call sites with literal-equal props collapse into one
// compiled artifact.
type CustomComponent struct {
	def  *MemoComponent
	node *Component
}

// Tag returns the artifact's markup tag.
func (cc *CustomComponent) Tag() string {
	return cc.def.tag
}

// Node returns the tree node representing this call site.
func (cc *CustomComponent) Node() *Component {
	return cc.node
}

// Props returns the call site's resolved prop Vars.
func (cc *CustomComponent) Props() map[string]Var {
	return cc.node.Props()
}

// propIdentity is the hashable projection of one prop.
type propIdentity struct {
	Name string `msgpack:"n"`
	Key  VarKey `msgpack:"k"`
}

// Hash returns the identity digest: constructor name plus prop identity
// keys in sorted prop order. Provenance data never participates, so the
// same expression reached through different paths hashes equal.
func (cc *CustomComponent) Hash() string {
	keys := sortedKeys(cc.node.props)
	props := make([]propIdentity, 0, len(keys))
	for _, k := range keys {
		props = append(props, propIdentity{Name: k, Key: cc.node.props[k].IdentityKey()})
	}
	return fingerprint.MustHash(struct {
		Fn    string         `msgpack:"f"`
		Props []propIdentity `msgpack:"p"`
	}{Fn: cc.def.name, Props: props})
}

// Equals reports identity-hash equality.
func (cc *CustomComponent) Equals(other *CustomComponent) bool {
	return other != nil && cc.Hash() == other.Hash()
}

// GetComponent expands the wrapped function into its subtree. Only the
// compile pass should call this; call sites stay unexpanded.
func (cc *CustomComponent) GetComponent() (*Component, error) {
	return cc.def.fn(cc.node.Props(), cc.node.children...)
}

// pascalCase converts a snake_case identifier to PascalCase.
func pascalCase(name string) string {
	parts := strings.Split(name, "_")
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}

// DedupeCustomComponents collapses call sites with equal identity
// hashes, keeping first-seen order.
func DedupeCustomComponents(comps []*CustomComponent) []*CustomComponent {
	seen := make(map[string]bool, len(comps))
	out := comps[:0:0]
	for _, cc := range comps {
		h := cc.Hash()
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, cc)
	}
	return out
}
