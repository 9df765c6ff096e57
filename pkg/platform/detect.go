package platform

import "runtime"

// Current returns the platform of the executing host. It reads the runtime's
// host identifiers and classifies them through a fixed mapping table; hosts
// outside the table fail with *UnsupportedPlatformError. The result is
// deterministic for the lifetime of the process, so a failed query will fail
// identically on every call.
func Current() (Info, error) {
	return classify(runtime.GOOS, runtime.GOARCH)
}

// classify applies the total mapping from raw host identifiers to the closed
// enumerations. Both identifiers are checked so the error names every
// unrecognized side, not just the first.
func classify(goos, goarch string) (Info, error) {
	osv, osOK := classifyOS(goos)
	arch, archOK := classifyArch(goarch)
	if !osOK || !archOK {
		unsupported := &UnsupportedPlatformError{}
		if !osOK {
			unsupported.OS = goos
		}
		if !archOK {
			unsupported.Arch = goarch
		}
		return Info{}, unsupported
	}
	return Info{OS: osv, Arch: arch}, nil
}

func classifyOS(goos string) (OS, bool) {
	switch goos {
	case "darwin":
		return OSMac, true
	case "linux":
		return OSLinux, true
	case "windows":
		return OSWindows, true
	default:
		return 0, false
	}
}

func classifyArch(goarch string) (Arch, bool) {
	switch goarch {
	case "arm64":
		return ArchAarch64, true
	case "386":
		return ArchX86, true
	case "amd64":
		return ArchX8664, true
	default:
		return 0, false
	}
}
