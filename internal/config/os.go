package config

import "fmt"

// OS identifies the operating system a compiled program is linked for.
type OS int

const (
	OSUndefined OS = iota
	OSLinux
	OSWindows
)

var osNames = [...]string{
	OSUndefined: "undefined",
	OSLinux:     "linux",
	OSWindows:   "windows",
}

func (o OS) String() string {
	if o < 0 || int(o) >= len(osNames) {
		return osNames[OSUndefined]
	}
	return osNames[o]
}

// MarshalText renders the OS name for TOML and YAML encoders.
func (o OS) MarshalText() ([]byte, error) {
	if o == OSUndefined {
		return nil, fmt.Errorf("cannot encode undefined target os")
	}
	return []byte(o.String()), nil
}

// UnmarshalText parses an OS name from TOML and YAML decoders.
func (o *OS) UnmarshalText(text []byte) error {
	switch string(text) {
	case "linux":
		*o = OSLinux
	case "windows":
		*o = OSWindows
	default:
		return fmt.Errorf("unknown target os %q", string(text))
	}
	return nil
}
