package declui

import "sort"

// ImportVar describes a single symbol imported from a frontend library.
type ImportVar struct {
	// Tag is the imported symbol name.
	Tag string

	// Alias renames the symbol at the import site.
	Alias string

	// IsDefault marks a default import rather than a named one.
	IsDefault bool
}

// Name returns the identifier the import binds in the generated module.
func (iv ImportVar) Name() string {
	if iv.Alias != "" {
		return iv.Alias
	}
	return iv.Tag
}

// ImportDict maps a library name to the symbols imported from it.
//
// Merging is set-union: the same symbol from the same library is only
// ever counted once, no matter how many components contribute it.
type ImportDict map[string][]ImportVar

// Add inserts symbols under a library, skipping duplicates.
func (d ImportDict) Add(library string, vars ...ImportVar) {
	existing := d[library]
	for _, iv := range vars {
		dup := false
		for _, have := range existing {
			if have == iv {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, iv)
		}
	}
	d[library] = existing
}

// Merge unions other into d and returns d.
func (d ImportDict) Merge(other ImportDict) ImportDict {
	for lib, vars := range other {
		d.Add(lib, vars...)
	}
	return d
}

// Copy returns an independent copy of d.
func (d ImportDict) Copy() ImportDict {
	out := make(ImportDict, len(d))
	for lib, vars := range d {
		out[lib] = append([]ImportVar(nil), vars...)
	}
	return out
}

// Libraries returns the library names in sorted order, for deterministic
// output.
func (d ImportDict) Libraries() []string {
	libs := make([]string, 0, len(d))
	for lib := range d {
		libs = append(libs, lib)
	}
	sort.Strings(libs)
	return libs
}

// MergeImports unions any number of import dicts into a fresh one.
func MergeImports(dicts ...ImportDict) ImportDict {
	out := make(ImportDict)
	for _, d := range dicts {
		out.Merge(d)
	}
	return out
}
