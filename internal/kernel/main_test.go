package kernel

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which backend the tests start with, so CI logs show
// whether DYNVEC_KERNEL took effect.
func TestMain(m *testing.M) {
	fmt.Printf("=== Kernel Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active backend: %s\n", Active())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("FMA: %v\n", HasFMA())
	fmt.Printf("==========================\n\n")

	os.Exit(m.Run())
}
