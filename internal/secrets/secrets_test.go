// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

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
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyOpenAlexEmail, "  researcher@example.com  \n")
				writeFile(t, dir, "other-key", "opaque-value")
				return dir
			},
			want: map[string]string{
				KeyOpenAlexEmail: "researcher@example.com",
				"other-key":      "opaque-value",
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
			name: "skips empty and whitespace-only files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeyOpenAlexEmail, "valid@example.com")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: map[string]string{
				KeyOpenAlexEmail: "valid@example.com",
			},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "x")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				writeFile(t, dir, KeyOpenAlexEmail, "me@example.com")
				return dir
			},
			want: map[string]string{
				KeyOpenAlexEmail: "me@example.com",
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

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600))
}
