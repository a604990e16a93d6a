// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bootstrap

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/pyboot/internal/interpreter"
	"github.com/pdiddy/pyboot/internal/manifest"
	"github.com/pdiddy/pyboot/pkg/types"
)

// Recorder appends a run record to the journal. *journal.Store satisfies
// this; tests substitute a fake.
type Recorder interface {
	Record(types.RunRecord) error
}

// RunOptions controls a full bootstrap run.
type RunOptions struct {
	// Manifest is the requirements file handed to pip.
	Manifest string

	// Target overrides the launch target; empty means resolve next to the
	// executable.
	Target string

	// Strict turns a missing target into an error.
	Strict bool

	// Env holds extra "KEY=value" entries for both child processes.
	Env []string

	// Journal records the run when non-nil. Recording failures are
	// reported as warnings and never change the run's result.
	Journal Recorder

	Stdout io.Writer
	Stderr io.Writer
}

// Run performs the full bootstrap: install dependencies, then launch the
// target script. When the install step fails the launch step never
// executes and the install error is returned.
func Run(py interpreter.Interpreter, opts RunOptions) error {
	start := time.Now()
	rec := types.RunRecord{
		StartedAt:    start.UTC(),
		ManifestPath: opts.Manifest,
		Interpreter:  py.Name(),
	}
	// Digest and count are journal metadata only; failures here must not
	// gate the install, which hands the manifest to pip as-is.
	if sum, err := manifest.Digest(opts.Manifest); err == nil {
		rec.ManifestSHA256 = sum
	}
	if m, err := manifest.Load(opts.Manifest); err == nil {
		rec.Requirements = len(m.Requirements)
	}

	if err := Install(py, opts.Manifest, opts.Env, opts.Stdout, opts.Stderr); err != nil {
		rec.Outcome = types.OutcomeInstallFailed
		record(opts, rec, start)
		return err
	}

	target := opts.Target
	if target == "" {
		t, err := ResolveTarget()
		if err != nil {
			rec.Outcome = types.OutcomeLaunchFailed
			record(opts, rec, start)
			return err
		}
		target = t
	}
	rec.Target = target

	outcome, err := Launch(py, LaunchOptions{
		Target: target,
		Strict: opts.Strict,
		Env:    opts.Env,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	rec.Outcome = outcome
	rec.Launched = outcome == types.OutcomeCompleted
	record(opts, rec, start)
	return err
}

func record(opts RunOptions, rec types.RunRecord, start time.Time) {
	if opts.Journal == nil {
		return
	}
	rec.DurationMS = time.Since(start).Milliseconds()
	if err := opts.Journal.Record(rec); err != nil {
		fmt.Fprintf(opts.Stderr, "warning: could not record run: %v\n", err)
	}
}
