package config

import (
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Load reads a profile from path, which may name the profile file
// itself or a directory containing one.
func Load(path string) (*Profile, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path = filepath.Join(path, ProfileName)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out Profile
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
