// Package kernel provides the float64 loop kernels behind dynvec.
//
// # Backends
//
//   - generic: plain Go loops
//   - unrolled: 4-way unrolled loops (default)
//   - gonum: gonum/floats for the elementwise arithmetic kernels
//
// Set DYNVEC_KERNEL=generic|unrolled|gonum to force a backend. Unknown values
// are ignored and the default selection is used.
//
// # Numerics
//
// Dot and Sum always use compensated (Kahan) summation, whatever the backend.
// Axpby uses a fused multiply-add when the CPU provides one.
//
// All kernels assume their slice arguments have equal length. Callers own
// that check. Elementwise kernels read a[i] and b[i] before writing dst[i],
// so dst may alias either input.
package kernel
