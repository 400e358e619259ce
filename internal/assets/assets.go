// Package assets holds the embedded seed catalog and industry data shipped
// with the binary.
package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed frameworks.yaml
var frameworksYAML []byte

//go:embed industries.yaml
var industriesYAML []byte

// SeedFramework is one catalog entry as declared in frameworks.yaml.
type SeedFramework struct {
	Name         string   `yaml:"name"`
	Category     string   `yaml:"category"`
	CoreFunction string   `yaml:"core_function"`
	TypicalUses  string   `yaml:"typical_uses"`
	Related      []string `yaml:"related"`
}

// Industry is one entry of industries.yaml.
type Industry struct {
	Name        string   `yaml:"name"`
	Note        string   `yaml:"note"`
	Recommended []string `yaml:"recommended"`
}

type frameworksFile struct {
	Frameworks []SeedFramework `yaml:"frameworks"`
}

type industriesFile struct {
	Industries []Industry `yaml:"industries"`
}

// Frameworks parses the embedded seed catalog, validating name uniqueness.
func Frameworks() ([]SeedFramework, error) {
	var f frameworksFile
	if err := yaml.Unmarshal(frameworksYAML, &f); err != nil {
		return nil, fmt.Errorf("parse frameworks.yaml: %w", err)
	}
	seen := make(map[string]bool, len(f.Frameworks))
	for _, fw := range f.Frameworks {
		if fw.Name == "" {
			return nil, fmt.Errorf("frameworks.yaml: entry with empty name")
		}
		if seen[fw.Name] {
			return nil, fmt.Errorf("frameworks.yaml: duplicate framework %q", fw.Name)
		}
		seen[fw.Name] = true
	}
	return f.Frameworks, nil
}

// Industries parses the embedded industry recommendations.
func Industries() ([]Industry, error) {
	var f industriesFile
	if err := yaml.Unmarshal(industriesYAML, &f); err != nil {
		return nil, fmt.Errorf("parse industries.yaml: %w", err)
	}
	return f.Industries, nil
}
