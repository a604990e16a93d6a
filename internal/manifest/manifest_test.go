// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantReqs []Requirement
		wantOpts []string
	}{
		{
			name:    "pinned and unpinned requirements",
			content: "Pillow==10.3.0\nrequests\nnumpy>=1.26\n",
			wantReqs: []Requirement{
				{Name: "Pillow", Constraint: "==10.3.0", Raw: "Pillow==10.3.0"},
				{Name: "requests", Raw: "requests"},
				{Name: "numpy", Constraint: ">=1.26", Raw: "numpy>=1.26"},
			},
		},
		{
			name:    "comments and blank lines skipped",
			content: "# image stack\n\nPillow==10.3.0  # keep in sync with CI\n\n   \n",
			wantReqs: []Requirement{
				{Name: "Pillow", Constraint: "==10.3.0", Raw: "Pillow==10.3.0"},
			},
		},
		{
			name:    "pip option lines kept opaque",
			content: "-r base.txt\n-e .\nrequests~=2.31\n",
			wantReqs: []Requirement{
				{Name: "requests", Constraint: "~=2.31", Raw: "requests~=2.31"},
			},
			wantOpts: []string{"-r base.txt", "-e ."},
		},
		{
			name:    "extras stay with the name",
			content: "requests[socks]!=2.30.0\n",
			wantReqs: []Requirement{
				{Name: "requests[socks]", Constraint: "!=2.30.0", Raw: "requests[socks]!=2.30.0"},
			},
		},
		{
			name:    "empty file",
			content: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			m, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, path, m.Path)
			assert.Equal(t, tt.wantReqs, m.Requirements)
			assert.Equal(t, tt.wantOpts, m.Options)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestDigest(t *testing.T) {
	path := writeManifest(t, "Pillow==10.3.0\n")
	sum1, err := Digest(path)
	require.NoError(t, err)
	assert.Len(t, sum1, 64)

	// Digest must be stable across reads and change with content.
	sum2, err := Digest(path)
	require.NoError(t, err)
	assert.Equal(t, sum1, sum2)

	require.NoError(t, os.WriteFile(path, []byte("Pillow==10.4.0\n"), 0o644))
	sum3, err := Digest(path)
	require.NoError(t, err)
	assert.NotEqual(t, sum1, sum3)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := writeManifest(t, "-r base.txt\nPillow==10.3.0\nrequests\n")
	m, err := Load(path)
	require.NoError(t, err)

	snapPath := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, WriteSnapshot(snapPath, m))

	snap, err := ReadSnapshot(snapPath)
	require.NoError(t, err)
	assert.Equal(t, path, snap.Manifest)
	assert.Len(t, snap.SHA256, 64)
	assert.Equal(t, []string{"-r base.txt"}, snap.Options)
	assert.Equal(t, 2, snap.Summary.Total)
	assert.False(t, snap.Summary.Timestamp.IsZero())
	require.Len(t, snap.Requirements, 2)
	assert.Equal(t, SnapshotRequirement{Name: "Pillow", Constraint: "==10.3.0"}, snap.Requirements[0])
	assert.Equal(t, SnapshotRequirement{Name: "requests"}, snap.Requirements[1])
}

func TestReadSnapshotErrors(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("{unclosed"), 0o644))
	_, err = ReadSnapshot(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing snapshot")
}
