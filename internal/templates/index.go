// Package templates indexes a collection of ignore-file templates and
// resolves, lists and merges them.
package templates

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// keySeparator joins path segments into a qualified key.
const keySeparator = "-"

// Asset is a single template from the collection.
type Asset struct {
	// Path holds the category segments followed by the bare template name,
	// e.g. ["community", "CFML", "ColdBox"].
	Path    []string
	Content string
}

// Name returns the bare template name (the last path segment).
func (a Asset) Name() string {
	if len(a.Path) == 0 {
		return ""
	}
	return a.Path[len(a.Path)-1]
}

// String returns the slash-separated asset path, used in error messages.
func (a Asset) String() string {
	return strings.Join(a.Path, "/")
}

// QualifiedKey returns the always-unique lookup key derived from the full path.
func (a Asset) QualifiedKey() string {
	return Normalize(strings.Join(a.Path, keySeparator))
}

// rank orders assets within a collision group. Top-level templates outrank
// anything nested in a category; all nested templates rank equally.
func (a Asset) rank() int {
	if len(a.Path) <= 1 {
		return 0
	}
	return 1
}

// Index maps lookup keys to template content. It is immutable once built.
type Index struct {
	assets    []Asset
	keys      map[string]int
	preferred []string
	ambiguous map[string][]string
}

// Build indexes assets. Every asset is reachable by its qualified key; an
// asset additionally owns its bare key when no other asset shares the name,
// or when it is the only top-level member among those that do. Names shared
// by several equally ranked assets are recorded as ambiguous.
//
// Build returns an *IndexBuildError when two assets would map to the same
// key; the collection is then unusable.
func Build(assets []Asset) (*Index, error) {
	idx := &Index{
		keys:      make(map[string]int),
		ambiguous: make(map[string][]string),
	}

	groups := make(map[string][]int)
	for _, a := range assets {
		bare := Normalize(a.Name())
		if bare == "" {
			continue
		}

		pos := len(idx.assets)
		idx.assets = append(idx.assets, a)
		idx.preferred = append(idx.preferred, a.QualifiedKey())
		if err := idx.insert(a.QualifiedKey(), pos); err != nil {
			return nil, err
		}
		groups[bare] = append(groups[bare], pos)
	}

	// Sorted so that a build failure always names the same pair.
	names := lo.Keys(groups)
	slices.Sort(names)

	for _, bare := range names {
		members := groups[bare]
		owner, ok := idx.owner(members)
		if !ok {
			alts := lo.Map(members, func(pos int, _ int) string {
				return idx.assets[pos].QualifiedKey()
			})
			slices.Sort(alts)
			idx.ambiguous[bare] = alts
			continue
		}

		if err := idx.insert(bare, owner); err != nil {
			return nil, err
		}
		idx.preferred[owner] = bare
	}

	return idx, nil
}

// owner picks the member of a collision group that gets the bare key.
func (idx *Index) owner(members []int) (int, bool) {
	if len(members) == 1 {
		return members[0], true
	}

	best := lo.MinBy(members, func(a, b int) bool {
		return idx.assets[a].rank() < idx.assets[b].rank()
	})
	top := lo.Filter(members, func(pos int, _ int) bool {
		return idx.assets[pos].rank() == idx.assets[best].rank()
	})
	if len(top) != 1 {
		return 0, false
	}
	return best, true
}

// insert binds key to the asset at pos. Re-binding a key to the same asset
// is a no-op; binding it to a different one is a build failure.
func (idx *Index) insert(key string, pos int) error {
	if existing, ok := idx.keys[key]; ok {
		if existing == pos {
			return nil
		}
		return &IndexBuildError{
			Key:    key,
			First:  idx.assets[existing].String(),
			Second: idx.assets[pos].String(),
		}
	}
	idx.keys[key] = pos
	return nil
}

// Len returns the number of indexed templates.
func (idx *Index) Len() int {
	return len(idx.assets)
}
