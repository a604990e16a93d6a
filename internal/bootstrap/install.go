// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bootstrap implements the two-step launcher: install dependencies
// from a requirements manifest, then locate and run the sibling target
// script. The install step is fatal on failure; the launch step is not.
package bootstrap

import (
	"fmt"
	"io"

	"github.com/pdiddy/pyboot/internal/interpreter"
)

// Install runs pip against the manifest through the given interpreter.
// The manifest contents are not validated here; pip reads the file itself.
// A non-zero pip exit aborts the bootstrap: the caller must not proceed to
// the launch step.
func Install(py interpreter.Interpreter, manifestPath string, env []string, stdout, stderr io.Writer) error {
	fmt.Fprintf(stdout, "Installing dependencies from %s with %s\n", manifestPath, py.Name())
	if err := py.PipInstall(manifestPath, env, stdout, stderr); err != nil {
		return fmt.Errorf("installing dependencies: %w", err)
	}
	return nil
}
