// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package envdir loads environment overrides for child processes from a
// directory of plain-text files. Each file in the directory represents one
// variable: the filename is the variable name and the file contents
// (trimmed) are the value.
//
// Typical keys: PIP_INDEX_URL, PIP_EXTRA_INDEX_URL, PIP_NO_CACHE_DIR.
package envdir

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but
// do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading env directory %s: %w", dir, err)
	}

	vars := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read env file %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			vars[name] = value
		}
	}

	return vars, nil
}

// Environ converts a variable map into "KEY=value" form, sorted by key so
// that child process environments are deterministic.
func Environ(vars map[string]string) []string {
	if len(vars) == 0 {
		return nil
	}
	env := make([]string, 0, len(vars))
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}
