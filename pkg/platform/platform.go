// Package platform identifies the operating system and CPU architecture of
// the machine the current process runs on. Both are closed enumerations:
// adding a member is a breaking change, and hosts outside the supported sets
// fail with *UnsupportedPlatformError instead of mapping to a guess.
package platform

import (
	"fmt"
	"strings"

	"github.com/glorpus-work/platinfo/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OS is the operating system family of a host.
type OS int

// The supported operating system families.
const (
	OSMac OS = iota
	OSLinux
	OSWindows
)

// Arch is the CPU instruction-set family of a host.
type Arch int

// The supported CPU architectures.
const (
	ArchAarch64 Arch = iota
	ArchX86
	ArchX8664
)

// Info is an OS/architecture pair identifying a host. Values are produced
// fresh by Current or Parse and are never cached or mutated.
type Info struct {
	OS   OS   `json:"os" yaml:"os"`
	Arch Arch `json:"arch" yaml:"arch"`
}

// ValidOS returns the members of the OS enumeration.
func ValidOS() []OS {
	return []OS{OSMac, OSLinux, OSWindows}
}

// ValidArch returns the members of the Arch enumeration.
func ValidArch() []Arch {
	return []Arch{ArchAarch64, ArchX86, ArchX8664}
}

// String returns the stable identifier for the OS ("mac", "linux", "windows").
func (o OS) String() string {
	switch o {
	case OSMac:
		return "mac"
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	default:
		return fmt.Sprintf("OS(%d)", int(o))
	}
}

// String returns the stable identifier for the architecture
// ("aarch64", "x86", "x86-64").
func (a Arch) String() string {
	switch a {
	case ArchAarch64:
		return "aarch64"
	case ArchX86:
		return "x86"
	case ArchX8664:
		return "x86-64"
	default:
		return fmt.Sprintf("Arch(%d)", int(a))
	}
}

// String returns the pair in "os/arch" form, e.g. "linux/x86-64".
func (i Info) String() string {
	return i.OS.String() + "/" + i.Arch.String()
}

// ParseOS maps an OS identifier to its enum member. It accepts the stable
// identifiers plus the raw spellings hosts commonly report ("darwin",
// "macos", "win"). Anything else fails with *UnsupportedPlatformError.
func ParseOS(s string) (OS, error) {
	switch strings.ToLower(s) {
	case "mac", "macos", "darwin":
		return OSMac, nil
	case "linux":
		return OSLinux, nil
	case "windows", "win":
		return OSWindows, nil
	default:
		return 0, &UnsupportedPlatformError{OS: s}
	}
}

// ParseArch maps an architecture identifier to its enum member. It accepts
// the stable identifiers plus the raw spellings hosts commonly report
// ("arm64", "386", "i386", "i686", "amd64", "x86_64"). Anything else fails
// with *UnsupportedPlatformError.
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "aarch64", "arm64":
		return ArchAarch64, nil
	case "x86", "386", "i386", "i686":
		return ArchX86, nil
	case "x86-64", "x86_64", "amd64":
		return ArchX8664, nil
	default:
		return 0, &UnsupportedPlatformError{Arch: s}
	}
}

// Parse maps an "os/arch" string to an Info pair.
func Parse(s string) (Info, error) {
	osPart, archPart, ok := strings.Cut(s, "/")
	if !ok {
		return Info{}, errors.Wrapf(errors.ErrMalformedPlatform, "%q (expected os/arch)", s)
	}
	osv, err := ParseOS(osPart)
	if err != nil {
		return Info{}, err
	}
	arch, err := ParseArch(archPart)
	if err != nil {
		return Info{}, err
	}
	return Info{OS: osv, Arch: arch}, nil
}

// MarshalText implements encoding.TextMarshaler using the stable identifier.
func (o OS) MarshalText() ([]byte, error) {
	switch o {
	case OSMac, OSLinux, OSWindows:
		return []byte(o.String()), nil
	default:
		return nil, &UnsupportedPlatformError{OS: o.String()}
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. Only members of the
// closed set are accepted.
func (o *OS) UnmarshalText(text []byte) error {
	parsed, err := ParseOS(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler using the stable identifier.
func (a Arch) MarshalText() ([]byte, error) {
	switch a {
	case ArchAarch64, ArchX86, ArchX8664:
		return []byte(a.String()), nil
	default:
		return nil, &UnsupportedPlatformError{Arch: a.String()}
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. Only members of the
// closed set are accepted.
func (a *Arch) UnmarshalText(text []byte) error {
	parsed, err := ParseArch(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler. yaml.v3 does not consult
// encoding.TextMarshaler, so the identifiers are emitted explicitly.
func (o OS) MarshalYAML() (interface{}, error) {
	text, err := o.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OS) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return o.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (a Arch) MarshalYAML() (interface{}, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Arch) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}
