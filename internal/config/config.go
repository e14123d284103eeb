// Package config loads the compilation target description: which function
// the emitted binary starts in and which platform it is built for. Targets
// are written as small TOML or YAML files and every field has a default, so
// a missing or empty file still yields a usable target.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the target file looked up in the working directory when
// no explicit path is given.
const DefaultPath = "mcc.toml"

// Target describes what the back end should produce.
type Target struct {
	Entry   string `toml:"entry" yaml:"entry"`
	OS      OS     `toml:"os" yaml:"os"`
	Machine string `toml:"machine" yaml:"machine"`
}

// Default returns the target used when no file overrides it: an executable
// for 64-bit Linux entered through 'main'.
func Default() Target {
	return Target{
		Entry:   "main",
		OS:      OSLinux,
		Machine: "x86_64",
	}
}

// Load reads a target file and decodes it on top of the defaults. The
// format is detected from the file extension.
func Load(path string) (Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Target{}, fmt.Errorf("could not read target file: %w", err)
	}
	return Decode(data, DetectFormat(path))
}

// Decode parses a target description on top of the defaults. Keys that the
// target schema does not know are rejected rather than ignored, so a typo
// cannot silently fall back to a default.
func Decode(data []byte, format Format) (Target, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	target := Default()
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), &target)
		if err != nil {
			return Target{}, fmt.Errorf("could not parse target file: %w", err)
		}
		if keys := meta.Undecoded(); len(keys) > 0 {
			return Target{}, fmt.Errorf("unknown key %q in target file", keys[0].String())
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&target); err != nil && !errors.Is(err, io.EOF) {
			return Target{}, fmt.Errorf("could not parse target file: %w", err)
		}
	default:
		return Target{}, fmt.Errorf("unsupported target format %q", format)
	}

	if err := target.Validate(); err != nil {
		return Target{}, err
	}
	return target, nil
}

// Validate reports the first field that cannot describe a real target.
func (t Target) Validate() error {
	if t.Entry == "" {
		return errors.New("target entry name must not be empty")
	}
	if t.OS == OSUndefined {
		return errors.New("target os must be linux or windows")
	}
	if t.Machine == "" {
		return errors.New("target machine must not be empty")
	}
	return nil
}

func (t Target) String() string {
	return fmt.Sprintf("%s/%s entry %s", t.OS, t.Machine, t.Entry)
}
