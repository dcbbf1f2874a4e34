package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/re-cinq/gig/internal/assets"
	"github.com/re-cinq/gig/internal/config"
	"github.com/re-cinq/gig/internal/fileutil"
	"github.com/re-cinq/gig/internal/templates"
	"github.com/samber/lo"
)

// loadAndValidateConfig loads a config file and validates it, printing errors to stderr.
func loadAndValidateConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	errs := config.Validate(cfg)
	if len(errs) > 0 {
		for _, e := range errs {
			fileutil.LogError("%s: %s", path, e)
		}
		return nil, fmt.Errorf("%d validation error(s)", len(errs))
	}

	return cfg, nil
}

// loadConfig loads the config named by --config, or the nearest config file
// above the working directory. Without either, the defaults apply.
func loadConfig() (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		fileutil.Logger.Debug("no config file found, using defaults")
		return config.Default(), nil
	}

	fileutil.Logger.Debug("loading config", "path", path)
	return loadAndValidateConfig(path)
}

// resolveConfigPath returns the --config value, or the nearest config file
// found walking up from the working directory, or "" if there is none.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findFileUp(wd, fileutil.ConfigFileNames), nil
}

// walkUpUntil walks up the directory tree from dir, calling check on each directory.
// Returns the first directory where check returns true, or "" if none found.
func walkUpUntil(dir string, check func(string) bool) string {
	for {
		if check(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// findFileUp walks up from dir looking for any of the given filenames.
// Returns the full path to the first file found, or "" if none found.
func findFileUp(dir string, filenames []string) string {
	isFile := func(p string) bool {
		info, err := os.Stat(p)
		return err == nil && !info.IsDir()
	}

	foundDir := walkUpUntil(dir, func(d string) bool {
		return lo.SomeBy(filenames, func(name string) bool {
			return isFile(filepath.Join(d, name))
		})
	})
	if foundDir == "" {
		return ""
	}
	// Return the full path to the first file that exists
	paths := lo.Map(filenames, func(name string, _ int) string {
		return filepath.Join(foundDir, name)
	})
	p, _ := lo.Find(paths, isFile)
	return p
}

// parseLanguages splits a comma-separated language list. Blank entries are
// rejected; repeated entries are dropped.
func parseLanguages(input string) ([]string, error) {
	languages := lo.Map(strings.Split(input, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})

	if lo.Contains(languages, "") {
		return nil, fmt.Errorf("empty template name in list %q: %w", input, templates.ErrEmptyToken)
	}

	return lo.UniqBy(languages, templates.Normalize), nil
}

// loadIndex returns the bundled template index.
func loadIndex() (*templates.Index, error) {
	idx, err := assets.Index()
	if err != nil {
		return nil, err
	}
	fileutil.Logger.Debug("template index ready", "templates", idx.Len())
	return idx, nil
}

// printKeys writes one template key per line.
func printKeys(w io.Writer, all bool) error {
	idx, err := loadIndex()
	if err != nil {
		return err
	}

	keys := idx.Keys()
	if all {
		keys = idx.AllKeys()
	}
	for _, k := range keys {
		if _, err := fmt.Fprintln(w, k); err != nil {
			return err
		}
	}
	return nil
}
