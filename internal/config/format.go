package config

import (
	"path/filepath"
	"strings"
)

// Format selects the markup a target file is written in.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatAuto
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DetectFormat picks a format from the file extension. Anything that is
// not .yaml or .yml is treated as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
