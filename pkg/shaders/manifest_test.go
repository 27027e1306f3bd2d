package shaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(`
shaders:
  - name: saxpy
    path: kernels/saxpy.metal
    language_version: "2.4"
    fast_math: true
  - name: blur
    path: kernels/blur.metal
`))
	require.NoError(t, err)
	require.Len(t, m.Shaders, 2)

	assert.Equal(t, "saxpy", m.Shaders[0].Name)
	assert.Equal(t, "kernels/saxpy.metal", m.Shaders[0].Path)
	assert.Equal(t, "2.4", m.Shaders[0].LanguageVersion)
	assert.True(t, m.Shaders[0].FastMath)

	assert.Equal(t, "blur", m.Shaders[1].Name)
	assert.Empty(t, m.Shaders[1].LanguageVersion)
	assert.False(t, m.Shaders[1].FastMath)
}

func TestParseManifestRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", `shaders: []`},
		{"missing name", "shaders:\n  - path: a.metal"},
		{"missing path", "shaders:\n  - name: a"},
		{"duplicate name", "shaders:\n  - name: a\n    path: a.metal\n  - name: a\n    path: b.metal"},
		{"malformed yaml", `shaders: [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadManifestResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shaders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"shaders:\n  - name: saxpy\n    path: kernels/saxpy.metal\n  - name: abs\n    path: /elsewhere/abs.metal\n"), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "kernels", "saxpy.metal"), m.SourcePath(m.Shaders[0]))
	assert.Equal(t, "/elsewhere/abs.metal", m.SourcePath(m.Shaders[1]))
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
