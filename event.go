package declui

import (
	"fmt"
	"strings"
)

// TriggerSpec declares, for one named trigger, the placeholder
// parameters of the browser event callback and the values derived from
// them that a bound handler receives.
//
// A trigger with no derived values is uncontrolled: handlers bound
// inline must not declare parameters. A trigger deriving N values is
// controlled: inline handlers must declare exactly N parameters.
type TriggerSpec struct {
	// Params are the placeholder parameter names of the event callback,
	// e.g. ["_e"] or ["_e", "_alpha", "_bravo"].
	Params []string

	// Derive maps the placeholder Vars to the values passed to bound
	// handlers. Nil (or returning no values) marks the trigger
	// uncontrolled.
	Derive func(args []Var) []Var
}

// placeholders returns the placeholder params as expression Vars.
func (ts TriggerSpec) placeholders() []Var {
	out := make([]Var, len(ts.Params))
	for i, p := range ts.Params {
		out[i] = Var{Name: p, Type: TypeObject}
	}
	return out
}

// derived returns the derived value expressions, or nil for an
// uncontrolled trigger.
func (ts TriggerSpec) derived() []Var {
	if ts.Derive == nil {
		return nil
	}
	return ts.Derive(ts.placeholders())
}

// signature renders the callback parameter list, e.g. "(_e,_alpha)".
func (ts TriggerSpec) signature() string {
	params := ts.Params
	if len(params) == 0 {
		params = []string{"_e"}
	}
	return "(" + strings.Join(params, ",") + ")"
}

// EventCallArg is one named argument of a resolved handler call: the
// handler's declared parameter name and the expression computing its
// value.
type EventCallArg struct {
	Name  string
	Value Var
}

// EventCall is a serializable handler-call descriptor: the target
// handler plus its arguments in declaration order.
type EventCall struct {
	Handler EventHandler
	Args    []EventCallArg
}

// render serializes the call as an Event(...) record. Argument order is
// the handler's declaration order, so output is deterministic.
func (ec EventCall) render() string {
	var sb strings.Builder
	sb.WriteString(`Event("`)
	sb.WriteString(ec.Handler.QualifiedName())
	sb.WriteString(`", {`)
	for i, arg := range ec.Args {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(arg.Name)
		sb.WriteString(":")
		sb.WriteString(arg.Value.JS())
	}
	sb.WriteString("})")
	return sb.String()
}

// EventChain is an ordered list of handler calls bound to one trigger.
type EventChain struct {
	Events []EventCall
	Spec   TriggerSpec
}

// Var renders the chain as an event-chain Var: a callback expression
// dispatching the serialized events. Data is the union of all argument
// Vars' provenance.
func (ch EventChain) Var() Var {
	sig := ch.Spec.signature()
	parts := make([]string, len(ch.Events))
	datas := make([]*VarData, 0, len(ch.Events))
	for i, ev := range ch.Events {
		parts[i] = ev.render()
		for _, arg := range ev.Args {
			datas = append(datas, arg.Value.Data)
		}
	}
	name := fmt.Sprintf("%s => addEvents([%s], %s, {})", sig, strings.Join(parts, ", "), sig)
	return Var{
		Name: name,
		Type: TypeEventChain,
		Data: MergeVarData(datas...),
	}
}

// Lambda is a function literal producing handler references or calls.
// Bindings wrapped in a Lambda are exempt from the trigger's arity
// check: any argument mismatch is resolved at the literal's own call
// site, not the trigger's.
type Lambda func() []any

// normalizeEventChain turns any accepted binding form into an
// event-chain Var for the given trigger. Accepted forms: EventHandler,
// EventCall, Lambda, a []any sequence of those, or an existing
// event-chain Var (passed through, in which case the returned chain is
// nil).
func normalizeEventChain(typeName, trigger string, spec TriggerSpec, value any) (Var, *EventChain, error) {
	if v, ok := value.(Var); ok {
		if v.Type != TypeEventChain {
			return Var{}, nil, fmt.Errorf("%w: component `%s` trigger `%s` expects an event chain Var, got %s",
				ErrPropType, typeName, trigger, v.Type)
		}
		return v, nil, nil
	}

	chain := EventChain{Spec: spec}
	derived := spec.derived()

	var add func(item any, inLambda bool) error
	add = func(item any, inLambda bool) error {
		switch h := item.(type) {
		case EventHandler:
			call, err := resolveHandler(typeName, trigger, h, derived, inLambda)
			if err != nil {
				return err
			}
			chain.Events = append(chain.Events, call)
		case EventCall:
			if !inLambda && len(h.Args) != len(h.Handler.Params) {
				return fmt.Errorf("%w: component `%s` trigger `%s`: handler `%s` takes %d args, got %d",
					ErrEventArity, typeName, trigger, h.Handler.QualifiedName(), len(h.Handler.Params), len(h.Args))
			}
			chain.Events = append(chain.Events, h)
		case Lambda:
			for _, inner := range h() {
				if err := add(inner, true); err != nil {
					return err
				}
			}
		case []any:
			for _, inner := range h {
				if err := add(inner, inLambda); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: component `%s` trigger `%s`: cannot bind %T as an event handler",
				ErrPropType, typeName, trigger, item)
		}
		return nil
	}

	if err := add(value, false); err != nil {
		return Var{}, nil, err
	}
	return chain.Var(), &chain, nil
}

// isEventValue reports whether a value is a handler binding form: an
// EventHandler, EventCall, Lambda, or a non-empty sequence of those.
func isEventValue(value any) bool {
	switch h := value.(type) {
	case EventHandler, EventCall, Lambda:
		return true
	case []any:
		if len(h) == 0 {
			return false
		}
		for _, item := range h {
			if !isEventValue(item) {
				return false
			}
		}
		return true
	}
	return false
}

// resolveHandler maps a bound handler reference onto the trigger's
// derived values.
func resolveHandler(typeName, trigger string, h EventHandler, derived []Var, inLambda bool) (EventCall, error) {
	if inLambda {
		// Function literals are exempt from arity checking; the literal
		// resolves its own arguments.
		return EventCall{Handler: h}, nil
	}
	if len(derived) == 0 {
		if len(h.Params) > 0 {
			return EventCall{}, fmt.Errorf(
				"%w: component `%s` trigger `%s` passes no args, but handler `%s` requires %d",
				ErrEventArity, typeName, trigger, h.QualifiedName(), len(h.Params))
		}
		return EventCall{Handler: h}, nil
	}
	if len(h.Params) != len(derived) {
		return EventCall{}, fmt.Errorf(
			"%w: component `%s` trigger `%s` passes %d args, but handler `%s` declares %d",
			ErrEventArity, typeName, trigger, len(derived), h.QualifiedName(), len(h.Params))
	}
	call := EventCall{Handler: h}
	for i, p := range h.Params {
		call.Args = append(call.Args, EventCallArg{Name: p, Value: derived[i]})
	}
	return call, nil
}

// Field returns an expression Var accessing a field of v, preserving
// provenance. Used in trigger Derive functions.
func (v Var) Field(name string) Var {
	return Var{Name: v.Name + "." + name, Type: TypeObject, Data: v.Data.Copy()}
}

// Index returns an expression Var indexing into v. idx may be a literal
// or another Var.
func (v Var) Index(idx any) Var {
	iv := CreateSafe(idx)
	return Var{
		Name: v.Name + "[" + iv.jsEmbed() + "]",
		Type: TypeObject,
		Data: MergeVarData(v.Data, iv.Data),
	}
}

// Op returns an expression Var combining v with other through a binary
// operator, parenthesized for verbatim embedding.
func (v Var) Op(op string, other any) Var {
	ov := CreateSafe(other)
	return Var{
		Name: "((" + v.Name + ") " + op + " (" + ov.jsEmbed() + "))",
		Type: TypeObject,
		Data: MergeVarData(v.Data, ov.Data),
	}
}
