package policy

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmbeddedPolicyYAML holds build-time injected YAML. Empty when not provided.
// Set via: -ldflags "-X 'date-shift/pkg/policy.EmbeddedPolicyYAML=...'"
var EmbeddedPolicyYAML string

// ReportSpec describes the optional run report written after a batch pass.
type ReportSpec struct {
	Enabled    bool   `yaml:"enabled"`
	Folder     string `yaml:"folder"`
	Filename   string `yaml:"filename"`
	Template   string `yaml:"template"`
	RevealSeed bool   `yaml:"reveal_seed"`
}

// Policy represents a policy-driven configuration for anonymization scope,
// shift parameters, and report metadata.
type Policy struct {
	Name         string     `yaml:"name"`
	Description  string     `yaml:"description"`
	TargetDir    string     `yaml:"target_dir"`
	OutputDir    string     `yaml:"output_dir"`
	Include      []string   `yaml:"include"`
	Exclude      []string   `yaml:"exclude"`
	MinSize      int64      `yaml:"min_size_bytes"`
	MaxSize      int64      `yaml:"max_size_bytes"`
	MaxShiftDays int64      `yaml:"max_shift_days"`
	DateFormat   string     `yaml:"date_format"`
	Encoding     string     `yaml:"encoding"`
	SeedPhrase   string     `yaml:"seed_phrase"`
	Workers      int        `yaml:"workers"`
	SkipBinaries *bool      `yaml:"skip_binaries"`
	DryRun       *bool      `yaml:"dry_run"`
	AssumeYes    *bool      `yaml:"assume_yes"`
	Report       ReportSpec `yaml:"report"`

	Source string `yaml:"-"`
}

// FromYAML parses a raw YAML policy definition.
func FromYAML(data string) (*Policy, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, errors.New("policy YAML is empty")
	}
	var pol Policy
	if err := yaml.Unmarshal([]byte(trimmed), &pol); err != nil {
		return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
	}
	if pol.Name == "" {
		return nil, errors.New("policy missing required field 'name'")
	}
	return &pol, nil
}

// LoadFile loads a policy from a YAML file path.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}
	pol, err := FromYAML(string(data))
	if err != nil {
		return nil, err
	}
	pol.Source = path
	return pol, nil
}

// LoadEmbedded parses the embedded policy definition if present.
func LoadEmbedded() (*Policy, error) {
	if !HasEmbedded() {
		return nil, errors.New("no embedded policy available")
	}
	raw := strings.TrimSpace(EmbeddedPolicyYAML)
	pol, err := FromYAML(raw)
	if err == nil {
		pol.Source = "embedded"
		return pol, nil
	}

	// Allow base64 encoded payloads for ease of ldflags embedding
	decoded, decodeErr := base64.StdEncoding.DecodeString(raw)
	if decodeErr != nil {
		return nil, err
	}
	pol, err = FromYAML(string(decoded))
	if err != nil {
		return nil, err
	}
	pol.Source = "embedded"
	return pol, nil
}

// HasEmbedded reports whether a build-time policy is embedded.
func HasEmbedded() bool {
	return strings.TrimSpace(EmbeddedPolicyYAML) != ""
}
