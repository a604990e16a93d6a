package types

import "time"

// Outcome classifies how a bootstrap run ended.
type Outcome string

const (
	// OutcomeCompleted means dependencies installed and the target ran.
	OutcomeCompleted Outcome = "completed"

	// OutcomeInstallFailed means the dependency installer exited non-zero;
	// the launch step never executed.
	OutcomeInstallFailed Outcome = "install-failed"

	// OutcomeTargetMissing means the target script was not found next to
	// the executable. In default mode this still exits zero.
	OutcomeTargetMissing Outcome = "target-missing"

	// OutcomeLaunchFailed means the target existed but could not be started.
	OutcomeLaunchFailed Outcome = "launch-failed"
)

// RunRecord is one journaled bootstrap run.
type RunRecord struct {
	// StartedAt is the UTC start time of the run.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// ManifestPath is the requirements file the installer was given.
	ManifestPath string `json:"manifest_path" yaml:"manifest_path"`

	// ManifestSHA256 is the hex digest of the raw manifest bytes, empty
	// when the manifest could not be read.
	ManifestSHA256 string `json:"manifest_sha256,omitempty" yaml:"manifest_sha256,omitempty"`

	// Requirements is the number of requirement lines parsed from the
	// manifest, zero when it could not be parsed.
	Requirements int `json:"requirements" yaml:"requirements"`

	// Interpreter is the Python binary used ("python3" or "python").
	Interpreter string `json:"interpreter" yaml:"interpreter"`

	// Target is the resolved launch target path.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Outcome classifies the run.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Launched reports whether the target process was actually spawned.
	Launched bool `json:"launched" yaml:"launched"`

	// DurationMS is the wall-clock duration of the run in milliseconds.
	DurationMS int64 `json:"duration_ms" yaml:"duration_ms"`
}
