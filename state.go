package declui

// State is the upstream state-management collaborator: a named bag of
// mutable attributes and bound handler methods. The component core never
// executes handlers; it only needs their qualified names and declared
// parameter lists.
type State struct {
	name string
}

// NewState declares a state with the given name, e.g. "app_state".
func NewState(name string) *State {
	if name == "" {
		panic("declui: state name must not be empty")
	}
	return &State{name: name}
}

// Name returns the state identifier.
func (s *State) Name() string {
	return s.name
}

// Var returns an expression Var referencing a named attribute of the
// state. The Var carries state provenance so that any component using it
// is recognized as reactive.
func (s *State) Var(attr string, t VarType) Var {
	return Var{
		Name: s.name + "." + attr,
		Type: t,
		Data: &VarData{State: s.name},
	}
}

// Handler returns a bound handler reference for a state method. params
// are the method's declared parameter names, in order, excluding the
// implicit event; they define the handler's arity for trigger binding
// without ever executing the method.
func (s *State) Handler(method string, params ...string) EventHandler {
	return EventHandler{
		State:  s.name,
		Method: method,
		Params: params,
	}
}

// EventHandler is an opaque reference to a bound state method: a
// qualified name plus a declared parameter list.
type EventHandler struct {
	State  string
	Method string
	Params []string
}

// QualifiedName returns the serialized handler target, e.g.
// "app_state.do_something".
func (h EventHandler) QualifiedName() string {
	return h.State + "." + h.Method
}

// Call binds explicit argument values to the handler's declared
// parameters, producing a call expression usable in an event chain.
// Values may be literals or Vars.
func (h EventHandler) Call(args ...any) EventCall {
	call := EventCall{Handler: h}
	for i, arg := range args {
		name := ""
		if i < len(h.Params) {
			name = h.Params[i]
		}
		call.Args = append(call.Args, EventCallArg{Name: name, Value: CreateSafe(arg)})
	}
	return call
}
