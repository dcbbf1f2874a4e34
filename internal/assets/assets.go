// Package assets provides the bundled template collection, a snapshot of
// github.com/github/gitignore embedded at build time.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/re-cinq/gig/internal/templates"
)

// Suffix identifies template files in the collection.
const Suffix = ".gitignore"

const templatesRoot = "templates"

//go:embed templates
var templatesFS embed.FS

var loadIndex = sync.OnceValues(func() (*templates.Index, error) {
	list, err := Load(templatesFS, templatesRoot)
	if err != nil {
		return nil, fmt.Errorf("loading bundled templates: %w", err)
	}
	return templates.Build(list)
})

// Index returns the index over the bundled collection. It is built on first
// use and shared for the rest of the process; a build error is returned to
// every caller.
func Index() (*templates.Index, error) {
	return loadIndex()
}

// Load flattens every template file under root into an Asset. Directories
// become category segments and the suffix is stripped from the file name.
// Files without the suffix, with an empty name, or that are not valid UTF-8
// are skipped.
func Load(fsys fs.FS, root string) ([]templates.Asset, error) {
	var list []templates.Asset

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name, ok := strings.CutSuffix(d.Name(), Suffix)
		if !ok || name == "" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		if !utf8.Valid(data) {
			return nil
		}

		list = append(list, templates.Asset{
			Path:    append(categories(root, p), name),
			Content: string(data),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

// categories returns the directory segments of p below root.
func categories(root, p string) []string {
	dir := path.Dir(p)
	if root != "." {
		if dir == root {
			return nil
		}
		dir = strings.TrimPrefix(dir, root+"/")
	}
	if dir == "." {
		return nil
	}
	return strings.Split(dir, "/")
}
