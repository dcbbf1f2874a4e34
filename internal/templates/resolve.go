package templates

import "slices"

// Resolve returns the content of the template that token names. Only exact
// bare or qualified keys match; there is no prefix matching.
//
// A blank token yields ErrEmptyToken. A bare name shared by equally ranked
// templates yields an *AmbiguousError listing their qualified keys. Anything
// else that misses yields a *NotFoundError carrying token unchanged.
func (idx *Index) Resolve(token string) (string, error) {
	key := Normalize(token)
	if key == "" {
		return "", ErrEmptyToken
	}

	if pos, ok := idx.keys[key]; ok {
		return idx.assets[pos].Content, nil
	}

	if alts, ok := idx.ambiguous[key]; ok {
		return "", &AmbiguousError{Token: token, Alternatives: slices.Clone(alts)}
	}

	return "", &NotFoundError{Token: token}
}
