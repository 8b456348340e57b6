package declui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// VarType is the semantic type tag carried by a Var.
type VarType string

// Semantic types a Var can carry.
const (
	TypeString     VarType = "string"
	TypeNumber     VarType = "number"
	TypeBool       VarType = "boolean"
	TypeList       VarType = "list"
	TypeDict       VarType = "dict"
	TypeObject     VarType = "object"
	TypeEventChain VarType = "event_chain"
)

// Interpolation records a Var embedded into a formatted string, together
// with the byte range its rendered expression occupies in the result.
//
// Recipients such as style values and custom attributes need access to
// the original embedded Var separately from the formatted string.
type Interpolation struct {
	Start int
	End   int
	Var   Var
}

// VarData is the provenance metadata accumulated by a Var: the backend
// state it originates from, the imports and hooks its rendering
// requires, and any string interpolations it was built from.
//
// VarData never participates in Var equality or hashing.
type VarData struct {
	// State is the originating state identifier, if any.
	State string

	// Imports maps library name to required import symbols.
	Imports ImportDict

	// Hooks maps hook source text to optional init code ("" for none).
	Hooks map[string]string

	// Interpolations lists embedded Vars in order of appearance.
	Interpolations []Interpolation
}

// Copy returns an independent copy of d. Copy of nil is nil.
func (d *VarData) Copy() *VarData {
	if d == nil {
		return nil
	}
	out := &VarData{State: d.State}
	if d.Imports != nil {
		out.Imports = d.Imports.Copy()
	}
	if d.Hooks != nil {
		out.Hooks = make(map[string]string, len(d.Hooks))
		for k, v := range d.Hooks {
			out.Hooks[k] = v
		}
	}
	out.Interpolations = append(out.Interpolations, d.Interpolations...)
	return out
}

// MergeVarData unions any number of VarData values into a new one.
// Nil inputs are skipped; if every input is nil the result is nil.
//
// The union is lossless: imports and hooks are set-merged, the first
// non-empty state wins, and interpolation lists concatenate in order.
func MergeVarData(datas ...*VarData) *VarData {
	var out *VarData
	for _, d := range datas {
		if d == nil {
			continue
		}
		if out == nil {
			out = &VarData{}
		}
		if out.State == "" {
			out.State = d.State
		}
		if len(d.Imports) > 0 {
			if out.Imports == nil {
				out.Imports = make(ImportDict)
			}
			out.Imports.Merge(d.Imports)
		}
		for src, init := range d.Hooks {
			if out.Hooks == nil {
				out.Hooks = make(map[string]string)
			}
			if _, ok := out.Hooks[src]; !ok {
				out.Hooks[src] = init
			}
		}
		out.Interpolations = append(out.Interpolations, d.Interpolations...)
	}
	return out
}

// Var is a typed, immutable wrapper around a literal value or a dynamic
// expression, carrying provenance metadata through the component tree.
//
// Equality and hashing consider only Name, Type, and IsLocal; the Data
// field is deliberately excluded so that structurally identical
// expressions dedupe regardless of how their provenance accumulated.
type Var struct {
	// Name is the rendered literal text or the target expression.
	Name string

	// Type is the semantic type tag.
	Type VarType

	// IsLocal is true for literal values, false for expressions that
	// reference external state.
	IsLocal bool

	// Data is the accumulated provenance. May be nil.
	Data *VarData

	// lit retains the original Go literal for Decode round-trips.
	lit any
}

// NewVar constructs an expression Var directly. Most callers should use
// Create or a State's Var method instead.
func NewVar(name string, t VarType) Var {
	return Var{Name: name, Type: t}
}

// Create wraps a literal value as a Var, inferring its semantic type.
// An existing Var passes through unchanged. Container literals
// ([]any, map[string]any) are wrapped recursively: each leaf becomes a
// Var and its Data merges outward while the rendered name preserves the
// container structure.
func Create(value any) (Var, error) {
	switch v := value.(type) {
	case Var:
		return v, nil
	case string:
		return Var{Name: v, Type: TypeString, IsLocal: true, lit: v}, nil
	case bool:
		return Var{Name: strconv.FormatBool(v), Type: TypeBool, IsLocal: true, lit: v}, nil
	case int:
		return Var{Name: strconv.Itoa(v), Type: TypeNumber, IsLocal: true, lit: v}, nil
	case int64:
		return Var{Name: strconv.FormatInt(v, 10), Type: TypeNumber, IsLocal: true, lit: v}, nil
	case float64:
		return Var{Name: strconv.FormatFloat(v, 'g', -1, 64), Type: TypeNumber, IsLocal: true, lit: v}, nil
	case []any:
		return createList(v)
	case map[string]any:
		return createDict(v)
	case nil:
		return Var{}, fmt.Errorf("%w: nil value", ErrUnsupportedLiteral)
	default:
		return Var{}, fmt.Errorf("%w: %T", ErrUnsupportedLiteral, value)
	}
}

// CreateSafe wraps a value as a Var and never fails: unsupported literal
// shapes fall back to an untyped object Var rendering via fmt.
func CreateSafe(value any) Var {
	v, err := Create(value)
	if err != nil {
		return Var{Name: fmt.Sprint(value), Type: TypeObject, IsLocal: true, lit: value}
	}
	return v
}

func createList(items []any) (Var, error) {
	parts := make([]string, 0, len(items))
	datas := make([]*VarData, 0, len(items))
	for _, item := range items {
		elem, err := Create(item)
		if err != nil {
			return Var{}, err
		}
		parts = append(parts, elem.jsEmbed())
		datas = append(datas, elem.Data)
	}
	return Var{
		Name:    "[" + strings.Join(parts, ", ") + "]",
		Type:    TypeList,
		IsLocal: true,
		Data:    MergeVarData(datas...),
		lit:     items,
	}, nil
}

// createDict renders keys in sorted order so the name is deterministic.
func createDict(m map[string]any) (Var, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(m))
	datas := make([]*VarData, 0, len(m))
	for _, k := range keys {
		elem, err := Create(m[k])
		if err != nil {
			return Var{}, err
		}
		parts = append(parts, strconv.Quote(k)+": "+elem.jsEmbed())
		datas = append(datas, elem.Data)
	}
	return Var{
		Name:    "{" + strings.Join(parts, ", ") + "}",
		Type:    TypeDict,
		IsLocal: true,
		Data:    MergeVarData(datas...),
		lit:     m,
	}, nil
}

// ReplaceOption overrides one field when deriving a new Var.
type ReplaceOption func(*Var)

// WithName overrides the rendered name.
func WithName(name string) ReplaceOption {
	return func(v *Var) { v.Name = name }
}

// WithType overrides the semantic type tag.
func WithType(t VarType) ReplaceOption {
	return func(v *Var) { v.Type = t }
}

// WithLocal overrides the literal/expression flag.
func WithLocal(local bool) ReplaceOption {
	return func(v *Var) { v.IsLocal = local }
}

// WithData merges extra provenance into the derived Var.
func WithData(data *VarData) ReplaceOption {
	return func(v *Var) { v.Data = MergeVarData(v.Data, data) }
}

// Replace returns a new Var with the given overrides applied on top of
// v. The receiver is never modified.
func (v Var) Replace(opts ...ReplaceOption) Var {
	out := v
	out.Data = v.Data.Copy()
	for _, opt := range opts {
		opt(&out)
	}
	return out
}

// Equals reports value equality: name, type, and locality. Provenance
// data is ignored, so the same expression built through different paths
// compares equal.
func (v Var) Equals(other Var) bool {
	return v.Name == other.Name && v.Type == other.Type && v.IsLocal == other.IsLocal
}

// IdentityKey projects the fields that participate in equality and
// hashing. Used by the memoizer to collapse structurally equal props.
func (v Var) IdentityKey() VarKey {
	return VarKey{Name: v.Name, Type: string(v.Type), IsLocal: v.IsLocal}
}

// VarKey is the hashable projection of a Var.
type VarKey struct {
	Name    string `msgpack:"n"`
	Type    string `msgpack:"t"`
	IsLocal bool   `msgpack:"l"`
}

// Decode returns the original literal a local Var was created from, or
// the expression name for dynamic Vars.
func (v Var) Decode() any {
	if v.lit != nil {
		return v.lit
	}
	return v.Name
}

// JS renders the Var as a standalone target-language expression.
// Local strings render as template literals; other locals render their
// literal text; expressions render verbatim.
func (v Var) JS() string {
	if v.IsLocal && v.Type == TypeString {
		return "`" + v.Name + "`"
	}
	return v.Name
}

// jsEmbed renders the Var for embedding inside a container literal.
func (v Var) jsEmbed() string {
	if v.IsLocal && v.Type == TypeString {
		return strconv.Quote(v.Name)
	}
	return v.Name
}

// String implements fmt.Stringer with the expression form.
func (v Var) String() string {
	return v.JS()
}

// IsZero reports whether the Var is the zero value.
func (v Var) IsZero() bool {
	return v.Name == "" && v.Type == "" && v.Data == nil
}

// StateName returns the originating state identifier, if any.
func (v Var) StateName() string {
	if v.Data == nil {
		return ""
	}
	return v.Data.State
}

// Sprintf builds a Var by string interpolation. Verbs are interpreted by
// fmt; Var arguments contribute their rendered expression instead of
// their Go representation. The result is a local string Var whose Data
// is the union of all embedded Vars' Data plus one Interpolation entry
// per embedded Var, recording its original value and byte range.
//
// Local Vars embed their literal text directly; expression Vars embed as
// a template interpolation, so the result renders as a single template
// literal.
func Sprintf(format string, args ...any) Var {
	var sb strings.Builder
	var interps []Interpolation
	datas := make([]*VarData, 0, len(args))

	argIdx := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			sb.WriteByte(format[i])
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			sb.WriteByte('%')
			i++
			continue
		}
		// Consume the verb; only simple single-letter verbs are used.
		i++
		if i >= len(format) || argIdx >= len(args) {
			break
		}
		arg := args[argIdx]
		argIdx++
		if av, ok := arg.(Var); ok {
			start := sb.Len()
			if av.IsLocal {
				sb.WriteString(av.Name)
			} else {
				sb.WriteString("${" + av.Name + "}")
			}
			interps = append(interps, Interpolation{Start: start, End: sb.Len(), Var: av})
			datas = append(datas, av.Data)
		} else {
			sb.WriteString(fmt.Sprint(arg))
		}
	}

	data := MergeVarData(datas...)
	if len(interps) > 0 {
		if data == nil {
			data = &VarData{}
		}
		data.Interpolations = append(data.Interpolations, interps...)
	}
	name := sb.String()
	return Var{Name: name, Type: TypeString, IsLocal: true, Data: data, lit: name}
}

// dedupeVars returns vars with value-equal duplicates removed, keeping
// first-seen order.
func dedupeVars(vars []Var) []Var {
	seen := make(map[VarKey]struct{}, len(vars))
	out := vars[:0:0]
	for _, v := range vars {
		key := v.IdentityKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
