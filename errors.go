package declui

import "errors"

// Sentinel errors for component construction and rendering.
var (
	// ErrPropType indicates a prop value whose type is incompatible with
	// the declared field type.
	ErrPropType = errors.New("declui: prop type mismatch")

	// ErrUnknownProp indicates a prop name that is neither a declared
	// field nor a cross-cutting option.
	ErrUnknownProp = errors.New("declui: unknown prop")

	// ErrUnsupportedLiteral indicates a Go value that cannot be wrapped
	// as a Var.
	ErrUnsupportedLiteral = errors.New("declui: unsupported literal")

	// ErrInvalidChild indicates a child component rejected by its
	// parent's valid/invalid children constraints.
	ErrInvalidChild = errors.New("declui: invalid child component")

	// ErrInvalidParent indicates a component placed under a parent not
	// listed in its valid parents.
	ErrInvalidParent = errors.New("declui: invalid parent component")

	// ErrEventArity indicates an event handler whose parameter count
	// does not match the trigger's argument spec.
	ErrEventArity = errors.New("declui: event handler arity mismatch")

	// ErrUnknownTrigger indicates an event binding for a trigger the
	// component does not declare.
	ErrUnknownTrigger = errors.New("declui: unknown event trigger")

	// ErrContextMismatch indicates a compiled artifact used with a
	// compile context other than the one that produced it.
	ErrContextMismatch = errors.New("declui: compile context mismatch")
)

// IsTypeError checks if err is a construction-time type error.
func IsTypeError(err error) bool {
	return errors.Is(err, ErrPropType) || errors.Is(err, ErrUnknownProp) ||
		errors.Is(err, ErrUnsupportedLiteral)
}

// IsContractError checks if err is a structural or event contract
// violation.
func IsContractError(err error) bool {
	return errors.Is(err, ErrInvalidChild) || errors.Is(err, ErrInvalidParent) ||
		errors.Is(err, ErrEventArity) || errors.Is(err, ErrUnknownTrigger)
}
