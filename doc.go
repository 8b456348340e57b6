// Package declui is the component composition and reactive-variable
// tracking core of a declarative UI framework. Component trees are
// declared in Go, validated against structural constraints, deduplicated
// into reusable compiled units, and rendered into a markup intermediate
// form consumed by a separate compiler.
//
// # Core Concepts
//
// Every value that crosses into the component system becomes a Var: a
// typed, immutable wrapper carrying provenance metadata (originating
// state, required imports, required hooks, string interpolations). Vars
// merge their metadata when combined through string interpolation or
// container construction, so a rendered tree knows exactly which imports
// and hook declarations it needs, with no duplicates.
//
// Component variants are declared through an explicit registry rather
// than type hierarchies:
//
//	text := declui.NewSpec("Text").
//	    Prop("as_", declui.TypeString).
//	    Import("@radix-ui/themes", declui.ImportVar{Tag: "Text"})
//
//	comp, err := text.Create("hello", declui.Props{"as_": "p"})
//
// NewSpec resolves fields, renames, triggers, and structural constraints
// once at registration time; Create validates and coerces props into
// Vars, attaches children, and normalizes event handlers into EventChain
// values. Render walks the finished tree, enforces parent/child
// constraints (seeing through transparent wrappers such as Fragment,
// Cond, Foreach, and Match), and emits the render record:
//
//	{tag, props, contents, children, special_props}
//
// together with aggregated imports, hooks, and custom code.
//
// # Custom Components
//
// Memo wraps a tree-building function so that call sites with
// structurally equal props collapse into a single reference-counted
// artifact. The body is expanded once per unique artifact by
// CompileComponents; its internal imports never leak into call sites.
// StatefulComponent applies the same memoization to nodes whose Vars
// reference backend state.
//
// # Error Model
//
// Prop type mismatches, unknown props, structural violations, and
// handler arity mismatches are synchronous construction- or render-time
// errors; nothing is retried or downgraded. Deprecated prop aliases emit
// one warning per alias per call and construction proceeds.
//
// The markup serializer for render records lives in lib/markup; stable
// identity hashing for memoization lives in lib/fingerprint.
package declui
