package templates

import (
	"slices"

	"github.com/samber/lo"
)

// Keys returns one key per template, sorted: its bare key when it owns one,
// otherwise its qualified key.
func (idx *Index) Keys() []string {
	keys := lo.Uniq(idx.preferred)
	slices.Sort(keys)
	return keys
}

// AllKeys returns every key Resolve accepts, including the qualified aliases
// of templates that also own a bare key.
func (idx *Index) AllKeys() []string {
	keys := lo.Keys(idx.keys)
	slices.Sort(keys)
	return keys
}
