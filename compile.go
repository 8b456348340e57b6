package declui

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pthm/declui/lib/fingerprint"
)

// CompileContext owns the artifact registries of one compilation pass:
// the reference-counted compiled bodies of custom components and
// stateful nodes. Identity hashing is a deliberate cross-call-site
// optimization within a single tree, not a global cache; concurrent
// passes over independent trees must each use their own context, and
// artifacts are never valid outside the context that produced them.
//
// A context is a single-writer structure; it is not safe for concurrent
// use.
type CompileContext struct {
	id       uuid.UUID
	custom   map[string]*customArtifact
	stateful map[string]*statefulArtifact
}

// NewCompileContext starts a fresh compilation pass.
func NewCompileContext() *CompileContext {
	return &CompileContext{
		id:       uuid.New(),
		custom:   make(map[string]*customArtifact),
		stateful: make(map[string]*statefulArtifact),
	}
}

// ID returns the pass identifier.
func (ctx *CompileContext) ID() uuid.UUID {
	return ctx.id
}

// customArtifact is the shared compiled unit behind one or more
// custom-component call sites.
type customArtifact struct {
	comp    *CustomComponent
	refs    int
	body    *RenderedComponent
	imports ImportDict
	hooks   map[string]string
}

// statefulArtifact is the shared memoized unit behind structurally
// identical reactive nodes.
type statefulArtifact struct {
	ctxID uuid.UUID
	tag   string
	refs  int
	body  *RenderedComponent
}

// CustomReferences returns how many call sites resolved to the given
// component's artifact in this pass.
func (ctx *CompileContext) CustomReferences(cc *CustomComponent) int {
	if art, ok := ctx.custom[cc.Hash()]; ok {
		return art.refs
	}
	return 0
}

// CompileComponents expands each unique custom-component artifact
// exactly once and returns the rendered bodies, their tags, and the
// aggregated imports of the expansions. This is the only place a custom
// component's internals become visible: imports and hooks from an
// unexpanded component never leak into its call site's own aggregation.
//
// Call sites with equal identity hashes share one artifact; each
// occurrence increments the artifact's reference count. Custom
// components nested inside an expanded body are compiled too.
func CompileComponents(ctx *CompileContext, comps []*CustomComponent) ([]*RenderedComponent, []string, ImportDict, error) {
	var bodies []*RenderedComponent
	var tags []string
	imports := make(ImportDict)

	queue := append([]*CustomComponent(nil), comps...)
	expanded := make(map[string]bool)

	for len(queue) > 0 {
		cc := queue[0]
		queue = queue[1:]

		hash := cc.Hash()
		art, ok := ctx.custom[hash]
		if !ok {
			art = &customArtifact{comp: cc}
			ctx.custom[hash] = art
		}
		art.refs++

		if expanded[hash] {
			continue
		}
		expanded[hash] = true

		if art.body == nil {
			body, err := cc.GetComponent()
			if err != nil {
				return nil, nil, nil, fmt.Errorf("declui: expanding custom component `%s`: %w", cc.Tag(), err)
			}
			rendered, err := body.Render()
			if err != nil {
				return nil, nil, nil, fmt.Errorf("declui: rendering custom component `%s`: %w", cc.Tag(), err)
			}
			art.body = rendered
			art.imports = body.GetAllImports()
			art.hooks = body.GetAllHooks()
			// Nested custom components referenced by the body expand in
			// their own right.
			queue = append(queue, body.GetAllCustomComponents()...)
		}

		bodies = append(bodies, art.body)
		tags = append(tags, cc.Tag())
		imports.Merge(art.imports)
	}

	return bodies, tags, imports, nil
}

// CompileStateful memoizes a node whose Vars reference backend state or
// that carries event bindings. The artifact is keyed by a stable tag
// derived from the node's type name plus a disambiguating hash suffix;
// repeated compilation of structurally identical reactive nodes shares
// one artifact and increments its reference count.
//
// A node with no reactive dependency is returned unchanged.
func (ctx *CompileContext) CompileStateful(c *Component) (*Component, error) {
	if c.stateful != nil {
		if c.stateful.ctxID != ctx.id {
			return nil, fmt.Errorf("%w: stateful artifact `%s` belongs to another pass",
				ErrContextMismatch, c.stateful.tag)
		}
		c.stateful.refs++
		return c, nil
	}
	if !c.StatefulVars() {
		return c, nil
	}

	body, err := c.Render()
	if err != nil {
		return nil, err
	}
	hash := fingerprint.MustHash(struct {
		Type string `msgpack:"t"`
		Body string `msgpack:"b"`
	}{Type: c.TypeName(), Body: body.String()})

	art, ok := ctx.stateful[hash]
	if !ok {
		art = &statefulArtifact{
			ctxID: ctx.id,
			tag:   c.TypeName() + "_" + hash,
			body:  body,
		}
		ctx.stateful[hash] = art
	}
	art.refs++

	node := &Component{
		spec:        NewSpec(art.tag),
		props:       make(map[string]Var),
		events:      make(map[string]Var),
		chains:      make(map[string]EventChain),
		style:       make(Style),
		customAttrs: make(map[string]Var),
		stateful:    art,
	}
	return node, nil
}

// StatefulComponent is the memoized wrapper view over a reactive node
// produced by CompileStateful.
type StatefulComponent struct {
	node *Component
	art  *statefulArtifact
}

// AsStateful reports whether a node is a stateful memoized wrapper and
// returns the wrapper view if so.
func AsStateful(c *Component) (*StatefulComponent, bool) {
	if c == nil || c.stateful == nil {
		return nil, false
	}
	return &StatefulComponent{node: c, art: c.stateful}, true
}

// Tag returns the artifact's stable derived tag.
func (sc *StatefulComponent) Tag() string {
	return sc.art.tag
}

// References returns the shared reference count: how many structurally
// identical reactive nodes compiled to this artifact.
func (sc *StatefulComponent) References() int {
	return sc.art.refs
}

// Body returns the memoized rendered body.
func (sc *StatefulComponent) Body() *RenderedComponent {
	return sc.art.body
}

// Node returns the wrapper tree node.
func (sc *StatefulComponent) Node() *Component {
	return sc.node
}
