// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Snapshot is the on-disk record of a parsed manifest: which requirements a
// bootstrap saw at a point in time, with a digest to detect later edits.
type Snapshot struct {
	Manifest     string                `yaml:"manifest"`
	SHA256       string                `yaml:"sha256"`
	Requirements []SnapshotRequirement `yaml:"requirements"`
	Options      []string              `yaml:"options,omitempty"`
	Summary      SnapshotSummary       `yaml:"summary"`
}

// SnapshotRequirement stores one requirement in a serializable form.
type SnapshotRequirement struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint,omitempty"`
}

// SnapshotSummary stores requirement statistics and a timestamp.
type SnapshotSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteSnapshot saves the parsed manifest and its digest to a YAML file.
func WriteSnapshot(path string, m *Manifest) error {
	sum, err := Digest(m.Path)
	if err != nil {
		return err
	}

	snap := Snapshot{
		Manifest: m.Path,
		SHA256:   sum,
		Options:  m.Options,
		Summary: SnapshotSummary{
			Total:     len(m.Requirements),
			Timestamp: time.Now().UTC(),
		},
	}
	for _, r := range m.Requirements {
		snap.Requirements = append(snap.Requirements, SnapshotRequirement{
			Name:       r.Name,
			Constraint: r.Constraint,
		})
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSnapshot loads a previously saved snapshot from disk.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &snap, nil
}
