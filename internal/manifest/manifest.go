// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads pip requirements files for display and journaling.
// The install step always hands the file to pip verbatim; nothing here
// gates or rewrites what pip sees.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// constraintOps are the pip version specifiers, longest first so that
// "==" wins over "=" prefixes and ">=" over ">".
var constraintOps = []string{"==", ">=", "<=", "~=", "!=", ">", "<"}

// Requirement is one dependency line from a requirements file.
type Requirement struct {
	// Name is the distribution name, including any extras ("requests[socks]").
	Name string

	// Constraint is the version specifier ("==2.31.0"), empty when the
	// line pins nothing.
	Constraint string

	// Raw is the line as it appeared in the file, comments stripped.
	Raw string
}

// Manifest is a parsed requirements file.
type Manifest struct {
	// Path is the file the manifest was read from.
	Path string

	// Requirements lists the dependency lines in file order.
	Requirements []Requirement

	// Options lists pip option lines ("-r other.txt", "-e .") verbatim.
	// They are carried opaquely; pip interprets them at install time.
	Options []string
}

// Load reads and parses a requirements file. Blank lines and comments are
// skipped; inline comments are stripped.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	m := &Manifest{Path: path}
	for _, line := range strings.Split(string(data), "\n") {
		line = stripComment(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") {
			m.Options = append(m.Options, line)
			continue
		}
		m.Requirements = append(m.Requirements, parseRequirement(line))
	}
	return m, nil
}

// Digest returns the hex SHA-256 of the raw manifest bytes.
func Digest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading manifest %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// stripComment removes a trailing "#" comment and surrounding whitespace.
// A "#" inside a URL fragment is rare enough in requirements files that the
// simple rule (pip's own) of requiring preceding whitespace is applied.
func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		if i == 0 || line[i-1] == ' ' || line[i-1] == '\t' {
			line = line[:i]
		}
	}
	return strings.TrimSpace(line)
}

// parseRequirement splits a dependency line into name and version constraint
// at the first version specifier.
func parseRequirement(line string) Requirement {
	for i := 0; i < len(line); i++ {
		for _, op := range constraintOps {
			if strings.HasPrefix(line[i:], op) {
				return Requirement{
					Name:       strings.TrimSpace(line[:i]),
					Constraint: strings.TrimSpace(line[i:]),
					Raw:        line,
				}
			}
		}
	}
	return Requirement{Name: line, Raw: line}
}
