//go:build arm64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	// FMADD is part of the base ARMv8 FP unit; ASIMD tells us it is present.
	hasFMA = cpu.ARM64.HasASIMD
	initCapabilities()
}
