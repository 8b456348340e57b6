package declui

import (
	"fmt"
	"strings"
)

// validateTree enforces the structural constraints over a whole tree,
// root to leaf. Transparent wrapper kinds (fragments, conditional
// branches, iteration templates, match containers) never count as a
// structural parent or child: checks pass through them to their own
// children.
func validateTree(c *Component) error {
	if !c.spec.transparent && !c.isBare {
		for _, child := range effectiveChildren(c) {
			if err := checkParentChild(c, child); err != nil {
				return err
			}
		}
	}
	for _, child := range c.children {
		if err := validateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// effectiveChildren resolves the direct-through-transparent children of
// a node: transparent wrappers are replaced by their own children,
// recursively, to any depth.
func effectiveChildren(c *Component) []*Component {
	var out []*Component
	for _, child := range c.children {
		if child.spec.transparent {
			out = append(out, effectiveChildren(child)...)
		} else {
			out = append(out, child)
		}
	}
	return out
}

// checkParentChild applies the three constraint rules between a parent
// and one effective child. Text leaves are always valid children.
func checkParentChild(parent, child *Component) error {
	if child.isBare {
		return nil
	}
	p, c := parent.spec, child.spec

	for _, invalid := range p.invalidChildren {
		if c.typeName == invalid {
			return fmt.Errorf("%w: the component `%s` cannot have `%s` as a child component",
				ErrInvalidChild, p.typeName, c.typeName)
		}
	}
	if len(p.validChildren) > 0 && !contains(p.validChildren, c.typeName) {
		return fmt.Errorf("%w: the component `%s` only allows the components: `%s` as children. Got `%s` instead",
			ErrInvalidChild, p.typeName, strings.Join(p.validChildren, "`, `"), c.typeName)
	}
	if len(c.validParents) > 0 && !contains(c.validParents, p.typeName) {
		return fmt.Errorf("%w: the component `%s` can only be a child of the components: `%s`. Got `%s` instead",
			ErrInvalidParent, c.typeName, strings.Join(c.validParents, "`, `"), p.typeName)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
