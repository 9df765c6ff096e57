package platform

import "fmt"

// UnsupportedPlatformError reports a host identifier outside the supported
// OS and architecture sets. OS and Arch hold the raw identifiers that failed
// to classify; a recognized side is left empty.
type UnsupportedPlatformError struct {
	OS   string
	Arch string
}

func (e *UnsupportedPlatformError) Error() string {
	switch {
	case e.OS != "" && e.Arch != "":
		return fmt.Sprintf("unsupported platform: os %q, architecture %q", e.OS, e.Arch)
	case e.OS != "":
		return fmt.Sprintf("unsupported platform: os %q", e.OS)
	case e.Arch != "":
		return fmt.Sprintf("unsupported platform: architecture %q", e.Arch)
	default:
		return "unsupported platform"
	}
}
