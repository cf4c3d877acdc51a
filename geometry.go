package dynvec

import (
	"fmt"
	"math"

	"github.com/hupe1980/dynvec/internal/kernel"
)

// slerpEpsilon is the sin(omega) below which Slerp falls back to Lerp.
const slerpEpsilon = 1e-10

// Dot returns the dot product of a and b, accumulated with compensated
// summation.
func Dot(a, b *Vector) (float64, error) {
	if err := checkAll(a, b); err != nil {
		return 0, err
	}
	if err := sameSize("dot", a, b); err != nil {
		return 0, err
	}
	return kernel.Dot(a.data(), b.data()), nil
}

// Cross stores the right-handed cross product a × b in result. a and b must
// be 3-D (ErrInvalidArgument otherwise) and so must result (ErrSizeMismatch
// otherwise). result may alias a or b.
func Cross(a, b, result *Vector) error {
	if err := checkAll(a, b, result); err != nil {
		return err
	}
	if a.size != 3 || b.size != 3 {
		return fmt.Errorf("%w: cross product needs 3-D operands, got %d and %d", ErrInvalidArgument, a.size, b.size)
	}
	if result.size != 3 {
		return sizeError("cross", 3, result.size)
	}

	ax, ay, az := a.elements[0], a.elements[1], a.elements[2]
	bx, by, bz := b.elements[0], b.elements[1], b.elements[2]

	r := result.elements
	r[0] = ay*bz - az*by
	r[1] = az*bx - ax*bz
	r[2] = ax*by - ay*bx
	return nil
}

// Magnitude returns the Euclidean length sqrt(Dot(v, v)).
func Magnitude(v *Vector) (float64, error) {
	sq, err := MagnitudeSquared(v)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq), nil
}

// MagnitudeSquared returns Dot(v, v).
func MagnitudeSquared(v *Vector) (float64, error) {
	if err := check(v); err != nil {
		return 0, err
	}
	d := v.data()
	return kernel.Dot(d, d), nil
}

// Normalize scales v in place to unit length. A zero-length vector, empty
// ones included, is rejected with ErrMathDomain.
func (v *Vector) Normalize() error {
	mag, err := Magnitude(v)
	if err != nil {
		return err
	}
	if mag == 0 {
		return domainError("normalize", "zero-length vector")
	}

	d := v.data()
	kernel.Scale(d, d, 1/mag)
	return nil
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b *Vector) (float64, error) {
	sq, err := DistanceSquared(a, b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sq), nil
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b *Vector) (float64, error) {
	if err := checkAll(a, b); err != nil {
		return 0, err
	}
	if err := sameSize("distance", a, b); err != nil {
		return 0, err
	}
	return kernel.SquaredL2(a.data(), b.data()), nil
}

// Angle returns the angle between a and b in radians, in [0, π].
func Angle(a, b *Vector) (float64, error) {
	cos, err := cosine("angle", a, b)
	if err != nil {
		return 0, err
	}
	return math.Acos(cos), nil
}

// CosineSimilarity returns Dot(a, b) / (|a| |b|), clamped to [-1, 1].
func CosineSimilarity(a, b *Vector) (float64, error) {
	return cosine("cosine", a, b)
}

// cosine is the clamped normalized dot product. Round-off can push the raw
// ratio just past ±1, where acos is NaN.
func cosine(op string, a, b *Vector) (float64, error) {
	if err := checkAll(a, b); err != nil {
		return 0, err
	}
	if err := sameSize(op, a, b); err != nil {
		return 0, err
	}

	ad, bd := a.data(), b.data()
	dot := kernel.Dot(ad, bd)
	magA := math.Sqrt(kernel.Dot(ad, ad))
	magB := math.Sqrt(kernel.Dot(bd, bd))
	if magA == 0 || magB == 0 {
		return 0, domainError(op, "zero-length operand")
	}
	return clamp(dot/(magA*magB), -1, 1), nil
}

// Lerp stores (1-t)·a + t·b in result. t is not clamped.
func Lerp(a, b *Vector, t float64, result *Vector) error {
	if err := binaryOp("lerp", a, b, result); err != nil {
		return err
	}
	kernel.Axpby(result.data(), 1-t, a.data(), t, b.data())
	return nil
}

// Slerp stores the spherical interpolation between a and b in result,
// using the angle between them. Nearly parallel or antiparallel operands,
// where sin(omega) vanishes, fall back to Lerp. For antiparallel unit
// operands at t = 0.5 that yields the zero vector.
// Zero-length operands have no angle and are rejected with ErrMathDomain.
func Slerp(a, b *Vector, t float64, result *Vector) error {
	if err := binaryOp("slerp", a, b, result); err != nil {
		return err
	}

	cos, err := cosine("slerp", a, b)
	if err != nil {
		return err
	}

	omega := math.Acos(cos)
	sinOmega := math.Sin(omega)
	if sinOmega < slerpEpsilon {
		kernel.Axpby(result.data(), 1-t, a.data(), t, b.data())
		return nil
	}

	aScale := math.Sin((1-t)*omega) / sinOmega
	bScale := math.Sin(t*omega) / sinOmega
	kernel.Axpby(result.data(), aScale, a.data(), bScale, b.data())
	return nil
}

// Project stores the projection of a onto b, (a·b / b·b)·b, in result.
func Project(a, b, result *Vector) error {
	s, err := projection("project", a, b, result)
	if err != nil {
		return err
	}
	kernel.Scale(result.data(), b.data(), s)
	return nil
}

// Reject stores a minus its projection onto b in result.
func Reject(a, b, result *Vector) error {
	s, err := projection("reject", a, b, result)
	if err != nil {
		return err
	}
	kernel.Axpby(result.data(), 1, a.data(), -s, b.data())
	return nil
}

// Reflect stores a - 2·proj_b(a) in result.
func Reflect(a, b, result *Vector) error {
	s, err := projection("reflect", a, b, result)
	if err != nil {
		return err
	}
	kernel.Axpby(result.data(), 1, a.data(), -2*s, b.data())
	return nil
}

// projection validates the operands and returns a·b / b·b. The factor is
// fully computed before any caller writes, so result may alias a or b.
func projection(op string, a, b, result *Vector) (float64, error) {
	if err := binaryOp(op, a, b, result); err != nil {
		return 0, err
	}

	bd := b.data()
	bb := kernel.Dot(bd, bd)
	if bb == 0 {
		return 0, domainError(op, "zero-length vector")
	}
	return kernel.Dot(a.data(), bd) / bb, nil
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
