// Package shaders handles shader compile manifests and the on-disk compile
// result cache used by the metalctl CLI.
//
// A manifest is a YAML file listing Metal Shading Language sources together
// with their compile options. The cache keys each (source, options) pair by
// a BLAKE2b-256 digest, so re-running a compile over unchanged sources is a
// cheap cache lookup instead of a round trip through the Metal compiler.
//
// Nothing in this package touches Metal itself; it is pure bookkeeping and
// builds on every platform.
package shaders

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Shader is one entry of a compile manifest.
type Shader struct {
	// Name identifies the shader in reports and cache entries. Required and
	// unique within a manifest.
	Name string `yaml:"name"`

	// Path is the .metal source file, relative to the manifest's directory
	// unless absolute. Required.
	Path string `yaml:"path"`

	// LanguageVersion selects the MSL revision, for example "2.4" or "3.1".
	// Empty means the compiler default.
	LanguageVersion string `yaml:"language_version,omitempty"`

	// FastMath enables aggressive floating point optimizations.
	FastMath bool `yaml:"fast_math,omitempty"`
}

// Manifest is a parsed shaders.yaml file.
type Manifest struct {
	Shaders []Shader `yaml:"shaders"`

	// dir is the manifest file's directory, used to resolve relative paths.
	dir string
}

// ParseManifest parses manifest YAML and validates every entry.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Shaders) == 0 {
		return nil, fmt.Errorf("manifest lists no shaders")
	}

	seen := make(map[string]bool, len(m.Shaders))
	for i, s := range m.Shaders {
		if s.Name == "" {
			return nil, fmt.Errorf("shader %d: missing name", i)
		}
		if s.Path == "" {
			return nil, fmt.Errorf("shader %q: missing path", s.Name)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("shader %q: duplicate name", s.Name)
		}
		seen[s.Name] = true
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file. Relative shader paths
// resolve against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// SourcePath returns the absolute-or-manifest-relative path of s.
func (m *Manifest) SourcePath(s Shader) string {
	if filepath.IsAbs(s.Path) || m.dir == "" {
		return s.Path
	}
	return filepath.Join(m.dir, s.Path)
}
