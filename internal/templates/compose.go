package templates

import (
	"fmt"
	"strings"
)

// Compose resolves every token and merges the results after base, which
// usually holds the content of an existing ignore file. All tokens are
// checked before anything is merged; the first failure aborts the request.
func (idx *Index) Compose(tokens []string, base ...string) (string, error) {
	for i, token := range tokens {
		if strings.TrimSpace(token) == "" {
			return "", fmt.Errorf("template #%d: %w", i+1, ErrEmptyToken)
		}
	}

	contents := make([]string, 0, len(base)+len(tokens))
	contents = append(contents, base...)
	for _, token := range tokens {
		content, err := idx.Resolve(token)
		if err != nil {
			return "", err
		}
		contents = append(contents, content)
	}

	return Merge(contents...), nil
}
