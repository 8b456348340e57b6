package declui

// Specs for the built-in control-flow wrappers. All are transparent for
// structural validation: a parent's constraints apply through them to
// their children, to any nesting depth.
var (
	FragmentSpec = NewSpec("Fragment").Transparent()

	CondSpec = NewSpec("Cond").
			Transparent().
			Prop("condition", TypeObject)

	ForeachSpec = NewSpec("Foreach").
			Transparent().
			Prop("of", TypeObject)

	MatchSpec = NewSpec("Match").
			Transparent().
			Prop("condition", TypeObject)
)

// coerceChild turns an arbitrary value into a tree node: components pass
// through, everything else becomes a text leaf.
func coerceChild(value any) *Component {
	switch v := value.(type) {
	case *Component:
		return v
	case *CustomComponent:
		return v.node
	default:
		return Bare(v)
	}
}

// Fragment groups children without a structural identity of its own.
func Fragment(args ...any) *Component {
	return FragmentSpec.MustCreate(args...)
}

// Cond is a conditional-branch container holding the two branch
// subtrees. otherwise may be nil.
func Cond(condition any, then *Component, otherwise *Component) *Component {
	args := []any{Props{"condition": CreateSafe(condition)}, then}
	if otherwise != nil {
		args = append(args, otherwise)
	}
	return CondSpec.MustCreate(args...)
}

// Foreach is an iteration-template container: render is invoked once
// with a placeholder item Var and the resulting subtree is the template
// applied to every element of the iterable.
func Foreach(iterable any, render func(item Var) *Component) *Component {
	of := CreateSafe(iterable)
	item := Var{Name: "item", Type: TypeObject, Data: of.Data.Copy()}
	return ForeachSpec.MustCreate(Props{"of": of}, render(item))
}

// MatchCase is one branch of a Match: the values to compare against and
// the subtree rendered on a match.
type MatchCase struct {
	Conditions []Var
	Result     *Component
}

// When builds a MatchCase from a result and the values selecting it.
func When(result any, conditions ...any) MatchCase {
	mc := MatchCase{Result: coerceChild(result)}
	for _, cond := range conditions {
		mc.Conditions = append(mc.Conditions, CreateSafe(cond))
	}
	return mc
}

// Match is a multi-way-match container. items are MatchCase values built
// with When, optionally followed by a default branch given as a bare
// component or value.
func Match(condition any, items ...any) *Component {
	args := []any{Props{"condition": CreateSafe(condition)}}
	for _, item := range items {
		switch v := item.(type) {
		case MatchCase:
			args = append(args, v.Result)
		default:
			args = append(args, coerceChild(v))
		}
	}
	return MatchSpec.MustCreate(args...)
}
