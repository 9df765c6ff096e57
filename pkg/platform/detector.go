package platform

//go:generate mockgen -destination=./mocks/detector.go -package=mocks github.com/glorpus-work/platinfo/pkg/platform Detector

// Detector resolves the platform identity of the executing host. Consumers
// that branch on platform (plugin loaders, component hosts) should accept a
// Detector so tests can substitute a fixed platform.
type Detector interface {
	// Current returns the host's OS/architecture pair. It fails with
	// *UnsupportedPlatformError when the host cannot be classified.
	Current() (Info, error)
}

type runtimeDetector struct{}

// NewDetector returns a Detector backed by the runtime's host identifiers.
func NewDetector() Detector {
	return runtimeDetector{}
}

func (runtimeDetector) Current() (Info, error) {
	return Current()
}
