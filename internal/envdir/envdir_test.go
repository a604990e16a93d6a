// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package envdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads variable files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "PIP_INDEX_URL", "  https://pypi.internal/simple  \n")
				writeFile(t, dir, "PIP_EXTRA_INDEX_URL", "https://pypi.org/simple")
				return dir
			},
			want: map[string]string{
				"PIP_INDEX_URL":       "https://pypi.internal/simple",
				"PIP_EXTRA_INDEX_URL": "https://pypi.org/simple",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files, dotfiles, and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "PIP_NO_CACHE_DIR", "1")
				writeFile(t, dir, "EMPTY", "   \n\t ")
				writeFile(t, dir, ".gitkeep", "")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"PIP_NO_CACHE_DIR": "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnviron(t *testing.T) {
	env := Environ(map[string]string{
		"PIP_NO_CACHE_DIR": "1",
		"PIP_INDEX_URL":    "https://pypi.internal/simple",
	})
	assert.Equal(t, []string{
		"PIP_INDEX_URL=https://pypi.internal/simple",
		"PIP_NO_CACHE_DIR=1",
	}, env)

	assert.Nil(t, Environ(nil))
	assert.Nil(t, Environ(map[string]string{}))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
