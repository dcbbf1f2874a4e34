package templates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyToken is returned when a requested template name is blank.
var ErrEmptyToken = errors.New("empty template name")

// NotFoundError is returned when a token matches no key in the index.
type NotFoundError struct {
	// Token is the name as the user typed it.
	Token string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no template found for %q", e.Token)
}

// AmbiguousError is returned when a bare name is shared by several templates
// of equal precedence and none of them owns it.
type AmbiguousError struct {
	Token        string
	Alternatives []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous template %q; use one of: %s", e.Token, strings.Join(e.Alternatives, ", "))
}

// IndexBuildError reports two assets that would map to the same key.
type IndexBuildError struct {
	Key    string
	First  string
	Second string
}

func (e *IndexBuildError) Error() string {
	return fmt.Sprintf("building template index: key %q maps to both %s and %s", e.Key, e.First, e.Second)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsAmbiguous reports whether err is, or wraps, an AmbiguousError.
func IsAmbiguous(err error) bool {
	var amb *AmbiguousError
	return errors.As(err, &amb)
}
