package kernel

import (
	"os"
	"strings"
)

// Backend identifies a family of kernel implementations.
type Backend uint8

const (
	// Generic is the plain-loop implementation.
	Generic Backend = iota
	// Unrolled processes four elements per iteration.
	Unrolled
	// Gonum delegates elementwise arithmetic to gonum/floats.
	Gonum
)

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "DYNVEC_KERNEL"

// String returns the string representation of a Backend.
func (b Backend) String() string {
	switch b {
	case Generic:
		return "generic"
	case Unrolled:
		return "unrolled"
	case Gonum:
		return "gonum"
	default:
		return "unknown"
	}
}

// ParseBackend parses a string into a Backend value.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "unrolled":
		return Unrolled, true
	case "gonum":
		return Gonum, true
	default:
		return Unrolled, false
	}
}

// Package-level state, set once from the per-arch init.
var (
	activeBackend Backend
	hasOverride   bool
	hasFMA        bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if b, ok := ParseBackend(override); ok {
			hasOverride = true
			use(b)
			return
		}
	}

	use(Unrolled)
}

// use swaps the dispatch table to backend b.
func use(b Backend) {
	activeBackend = b

	switch b {
	case Generic:
		dotImpl = dotGeneric
		sumImpl = sumGeneric
		squaredL2Impl = squaredL2Generic
		addImpl = addGeneric
		subImpl = subGeneric
		mulImpl = mulGeneric
		divImpl = divGeneric
		scaleImpl = scaleGeneric
		negateImpl = negateGeneric
		minImpl = minGeneric
		maxImpl = maxGeneric
		mapImpl = mapGeneric
	case Gonum:
		dotImpl = dotUnrolled
		sumImpl = sumUnrolled
		squaredL2Impl = squaredL2Unrolled
		addImpl = addGonum
		subImpl = subGonum
		mulImpl = mulGonum
		divImpl = divGonum
		scaleImpl = scaleGonum
		negateImpl = negateGonum
		minImpl = minUnrolled
		maxImpl = maxUnrolled
		mapImpl = mapUnrolled
	default:
		dotImpl = dotUnrolled
		sumImpl = sumUnrolled
		squaredL2Impl = squaredL2Unrolled
		addImpl = addUnrolled
		subImpl = subUnrolled
		mulImpl = mulUnrolled
		divImpl = divUnrolled
		scaleImpl = scaleUnrolled
		negateImpl = negateUnrolled
		minImpl = minUnrolled
		maxImpl = maxUnrolled
		mapImpl = mapUnrolled
	}
}

// Use forces backend b, as DYNVEC_KERNEL would. It is not safe to call
// while kernels run on other goroutines; call it at program start.
func Use(b Backend) {
	hasOverride = true
	use(b)
}

// Active returns the currently active backend.
func Active() Backend {
	return activeBackend
}

// IsOverridden returns true if DYNVEC_KERNEL selected the backend.
func IsOverridden() bool {
	return hasOverride
}

// HasFMA returns true if the CPU executes fused multiply-add natively.
func HasFMA() bool {
	return hasFMA
}
