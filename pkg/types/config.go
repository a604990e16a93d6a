package types

// BootstrapConfig holds settings for a bootstrap run. Values come from the
// config file, the PYBOOT_* environment, or command-line flags, in
// increasing order of precedence.
type BootstrapConfig struct {
	// Manifest is the path to the pip requirements file (default "requirements.txt").
	Manifest string `json:"manifest" yaml:"manifest"`

	// Target overrides the launch target. When empty the target is resolved
	// as convert_images.py next to the pyboot executable.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Interpreter forces a specific Python binary ("python3" or "python").
	// When empty the interpreter is auto-detected.
	Interpreter string `json:"interpreter,omitempty" yaml:"interpreter,omitempty"`

	// Strict makes a missing launch target a hard error instead of a
	// printed message and a zero exit.
	Strict bool `json:"strict" yaml:"strict"`

	// EnvDir is a directory of plain-text key files whose contents are
	// exported into the environment of both subprocesses (default ".pyboot/env").
	EnvDir string `json:"env_dir" yaml:"env_dir"`

	// JournalDir is the directory holding the run journal database
	// (default ".pyboot/journal").
	JournalDir string `json:"journal_dir" yaml:"journal_dir"`
}
