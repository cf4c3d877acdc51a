package dynvec

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dynvec/resource"
)

func mustVec(t *testing.T, values ...float64) *Vector {
	t.Helper()
	v, err := FromSlice(values)
	require.NoError(t, err)
	return v
}

func elems(t *testing.T, v *Vector) []float64 {
	t.Helper()
	d, err := v.Data()
	require.NoError(t, err)
	return d
}

// requireInvariants checks capacity ≥ size and elements == nil ⇔ capacity == 0.
func requireInvariants(t *testing.T, v *Vector) {
	t.Helper()
	require.GreaterOrEqual(t, v.Cap(), v.Len())
	require.Equal(t, v.elements == nil, len(v.elements) == 0)
	if len(v.elements) == 0 {
		require.Equal(t, 0, v.size)
	}
}

func TestNew(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		v, err := New(0)
		require.NoError(t, err)
		assert.True(t, v.Valid())
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())
		assert.Nil(t, v.elements)

		_, err = v.Get(0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("Zeroed", func(t *testing.T) {
		v, err := New(5)
		require.NoError(t, err)
		assert.Equal(t, 5, v.Len())
		assert.Equal(t, 5, v.Cap())
		assert.Equal(t, []float64{0, 0, 0, 0, 0}, elems(t, v))

		z, err := NewZero(3)
		require.NoError(t, err)
		assert.True(t, z.IsZero(0))
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := New(-1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestFixedArity(t *testing.T) {
	v2, err := Vec2(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, elems(t, v2))

	v3, err := Vec3(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, elems(t, v3))

	v4, err := Vec4(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, elems(t, v4))
}

func TestFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3}
	v := mustVec(t, src...)
	src[0] = 99

	x, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
}

func TestZeroValueVector(t *testing.T) {
	var v Vector
	assert.True(t, v.Valid())
	assert.Equal(t, "[]", v.String())

	require.NoError(t, v.Append(1, 2))
	assert.Equal(t, []float64{1, 2}, elems(t, &v))
	assert.Equal(t, MinCapacity, v.Cap())
}

func TestGrowthPolicy(t *testing.T) {
	tests := []struct {
		cur, n, want int
	}{
		{0, 1, 16},
		{5, 6, 16},
		{0, 40, 40},
		{16, 17, 32},
		{32, 33, 64},
		{64, 200, 200},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, growth(tc.cur, tc.n), "growth(%d, %d)", tc.cur, tc.n)
	}
}

func TestResize(t *testing.T) {
	v, err := New(5)
	require.NoError(t, err)
	require.NoError(t, v.Set(4, 7))

	require.NoError(t, v.Resize(6))
	assert.Equal(t, 6, v.Len())
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, []float64{0, 0, 0, 0, 7, 0}, elems(t, v))

	require.NoError(t, v.Resize(3))
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 16, v.Cap(), "capacity never shrinks implicitly")

	require.NoError(t, v.Resize(17))
	assert.Equal(t, 32, v.Cap())

	require.NoError(t, v.Resize(100))
	assert.Equal(t, 100, v.Cap())

	assert.ErrorIs(t, v.Resize(-1), ErrInvalidArgument)
}

func TestResizeWithinCapacityKeepsStaleSlots(t *testing.T) {
	v := mustVec(t, 1, 2, 3, 4)

	require.NoError(t, v.Resize(2))
	require.NoError(t, v.Resize(4))
	assert.Equal(t, []float64{1, 2, 3, 4}, elems(t, v))
}

func TestResizeZero(t *testing.T) {
	v := mustVec(t, 1, 2, 3, 4)

	require.NoError(t, v.Resize(2))
	require.NoError(t, v.ResizeZero(4))
	assert.Equal(t, []float64{1, 2, 0, 0}, elems(t, v))

	require.NoError(t, v.ResizeZero(1))
	assert.Equal(t, []float64{1}, elems(t, v))
}

func TestResizeGrowthZeroesFromOldSize(t *testing.T) {
	v := mustVec(t, 1, 2, 3, 4)

	require.NoError(t, v.Resize(2))
	require.NoError(t, v.Resize(10))
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, []float64{1, 2, 0, 0, 0, 0, 0, 0, 0, 0}, elems(t, v))
}

func TestReserve(t *testing.T) {
	v := mustVec(t, 1, 2)

	require.NoError(t, v.Reserve(10))
	assert.Equal(t, 10, v.Cap())
	assert.Equal(t, []float64{1, 2}, elems(t, v))

	require.NoError(t, v.Reserve(5))
	assert.Equal(t, 10, v.Cap())

	assert.ErrorIs(t, v.Reserve(-1), ErrInvalidArgument)
	assert.ErrorIs(t, v.Reserve(MaxElements+1), ErrOutOfMemory)
	assert.Equal(t, 10, v.Cap())
}

func TestShrinkToFit(t *testing.T) {
	v := mustVec(t, 1, 2, 3)
	require.NoError(t, v.Reserve(64))

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []float64{1, 2, 3}, elems(t, v))

	require.NoError(t, v.Resize(0))
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 0, v.Cap())
	assert.Nil(t, v.elements)
	assert.True(t, v.Valid())

	// already tight
	require.NoError(t, v.ShrinkToFit())
}

func TestAppend(t *testing.T) {
	v, err := New(0)
	require.NoError(t, err)

	require.NoError(t, v.Append(1, 2, 3))
	require.NoError(t, v.Append())
	require.NoError(t, v.Append(4))
	assert.Equal(t, []float64{1, 2, 3, 4}, elems(t, v))

	// appending a vector to itself reads the old buffer
	d := elems(t, v)
	require.NoError(t, v.Append(d...))
	assert.Equal(t, []float64{1, 2, 3, 4, 1, 2, 3, 4}, elems(t, v))
}

func TestZero(t *testing.T) {
	v := mustVec(t, 1, -2, 3)
	require.NoError(t, v.Zero())
	assert.Equal(t, []float64{0, 0, 0}, elems(t, v))
}

func TestClone(t *testing.T) {
	c := resource.NewController(resource.Config{})
	v, err := FromSlice([]float64{1, 2, 3}, WithResourceController(c))
	require.NoError(t, err)
	require.NoError(t, v.Reserve(32))

	w, err := v.Clone()
	require.NoError(t, err)
	assert.Equal(t, 3, w.Cap())
	assert.True(t, Equal(v, w, 0))
	assert.Equal(t, int64((32+3)*ElementSize), c.MemoryUsage())

	require.NoError(t, w.Set(0, 42))
	x, _ := v.Get(0)
	assert.Equal(t, 1.0, x)
}

func TestInit(t *testing.T) {
	v := mustVec(t, 1, 2, 3)

	require.NoError(t, v.Init(2))
	assert.Equal(t, []float64{0, 0}, elems(t, v))
	assert.Equal(t, 2, v.Cap())

	require.NoError(t, v.Init(0))
	assert.Nil(t, v.elements)

	assert.ErrorIs(t, v.Init(-1), ErrInvalidArgument)
}

func TestRelease(t *testing.T) {
	v := mustVec(t, 1, 2, 3)

	require.NoError(t, v.Release())
	assert.False(t, v.Valid())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())

	assert.ErrorIs(t, v.Release(), ErrNotInitialized)
	_, err := v.Get(0)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, v.Resize(4), ErrNotInitialized)
	assert.ErrorIs(t, v.Reserve(4), ErrNotInitialized)
	assert.ErrorIs(t, v.ShrinkToFit(), ErrNotInitialized)
	assert.ErrorIs(t, v.Append(1), ErrNotInitialized)
	_, err = v.Clone()
	assert.ErrorIs(t, err, ErrNotInitialized)

	// Init revives a released vector
	require.NoError(t, v.Init(2))
	assert.True(t, v.Valid())
	assert.Equal(t, 2, v.Len())
}

func TestNilVector(t *testing.T) {
	var v *Vector

	assert.False(t, v.Valid())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.ErrorIs(t, v.Init(1), ErrNil)
	assert.ErrorIs(t, v.Resize(1), ErrNil)
	assert.ErrorIs(t, v.ResizeZero(1), ErrNil)
	assert.ErrorIs(t, v.Reserve(1), ErrNil)
	assert.ErrorIs(t, v.ShrinkToFit(), ErrNil)
	assert.ErrorIs(t, v.Release(), ErrNil)
	assert.ErrorIs(t, v.Set(0, 1), ErrNil)
	assert.ErrorIs(t, v.Zero(), ErrNil)
}

func TestBrokenVectorIsNotInitialized(t *testing.T) {
	v := &Vector{size: 3}
	assert.False(t, v.Valid())
	_, err := v.Get(0)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestCapacityInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v, err := New(0)
	require.NoError(t, err)

	for range 2000 {
		switch rng.Intn(5) {
		case 0:
			require.NoError(t, v.Resize(rng.Intn(300)))
		case 1:
			require.NoError(t, v.Reserve(rng.Intn(300)))
		case 2:
			require.NoError(t, v.ShrinkToFit())
		case 3:
			require.NoError(t, v.ResizeZero(rng.Intn(300)))
		case 4:
			require.NoError(t, v.Append(rng.Float64()))
		}
		requireInvariants(t, v)
	}
}

func TestGrowthAmortization(t *testing.T) {
	const n = 10000

	t.Run("Append", func(t *testing.T) {
		m := &BasicMetricsCollector{}
		v, err := New(0, WithMetricsCollector(m))
		require.NoError(t, err)

		for i := range n {
			require.NoError(t, v.Append(float64(i)))
		}

		// 16, 32, ..., 16384
		assert.Equal(t, int64(11), m.GetStats().GrowCount)
		assert.Equal(t, n, v.Len())
	})

	t.Run("Resize", func(t *testing.T) {
		m := &BasicMetricsCollector{}
		v, err := New(0, WithMetricsCollector(m))
		require.NoError(t, err)

		for i := 1; i <= n; i++ {
			require.NoError(t, v.Resize(i))
		}
		assert.Equal(t, int64(11), m.GetStats().GrowCount)
	})
}

func TestOutOfMemory(t *testing.T) {
	t.Run("GrowthRefused", func(t *testing.T) {
		m := &BasicMetricsCollector{}
		v, err := New(0, WithMemoryLimit(MinCapacity*ElementSize), WithMetricsCollector(m))
		require.NoError(t, err)

		for i := range MinCapacity {
			require.NoError(t, v.Append(float64(i)))
		}
		before := append([]float64(nil), elems(t, v)...)

		err = v.Append(99)
		require.ErrorIs(t, err, ErrOutOfMemory)
		assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
		assert.Equal(t, KindOutOfMemory, KindOf(err))

		assert.Equal(t, MinCapacity, v.Len())
		assert.Equal(t, MinCapacity, v.Cap())
		assert.Equal(t, before, elems(t, v))
		assert.Equal(t, int64(1), m.GetStats().AllocFailures)

		assert.ErrorIs(t, v.Resize(MinCapacity+1), ErrOutOfMemory)
		assert.ErrorIs(t, v.Reserve(MinCapacity+1), ErrOutOfMemory)
		assert.Equal(t, MinCapacity, v.Len())
	})

	t.Run("CreateRefused", func(t *testing.T) {
		_, err := New(20, WithMemoryLimit(64))
		assert.ErrorIs(t, err, ErrOutOfMemory)

		_, err = FromSlice(make([]float64, 20), WithMemoryLimit(64))
		assert.ErrorIs(t, err, ErrOutOfMemory)
	})

	t.Run("InitRefusedKeepsState", func(t *testing.T) {
		v, err := FromSlice([]float64{1, 2}, WithMemoryLimit(4*ElementSize))
		require.NoError(t, err)

		assert.ErrorIs(t, v.Init(5), ErrOutOfMemory)
		assert.Equal(t, []float64{1, 2}, elems(t, v))
		assert.Equal(t, 2, v.Cap())

		require.NoError(t, v.Init(2))
		assert.Equal(t, []float64{0, 0}, elems(t, v))
	})

	t.Run("InitWithinBudget", func(t *testing.T) {
		c := resource.NewController(resource.Config{MemoryLimitBytes: 16 * ElementSize})
		v, err := New(16, WithResourceController(c))
		require.NoError(t, err)

		require.NoError(t, v.Init(16))
		assert.Equal(t, 16, v.Len())
		assert.Equal(t, int64(16*ElementSize), c.MemoryUsage())

		require.NoError(t, v.Init(8))
		assert.Equal(t, 8, v.Cap())
		assert.Equal(t, int64(8*ElementSize), c.MemoryUsage())

		require.NoError(t, v.Init(16))
		assert.Equal(t, int64(16*ElementSize), c.MemoryUsage())

		assert.ErrorIs(t, v.Init(17), ErrOutOfMemory)
		assert.Equal(t, 16, v.Len())
		assert.Equal(t, int64(16*ElementSize), c.MemoryUsage())
	})

	t.Run("SharedBudget", func(t *testing.T) {
		c := resource.NewController(resource.Config{MemoryLimitBytes: 32 * ElementSize})

		a, err := New(20, WithResourceController(c))
		require.NoError(t, err)
		_, err = New(20, WithResourceController(c))
		require.ErrorIs(t, err, ErrOutOfMemory)

		require.NoError(t, a.Release())
		_, err = New(20, WithResourceController(c))
		require.NoError(t, err)
	})
}

func TestMemoryAccounting(t *testing.T) {
	c := resource.NewController(resource.Config{})
	v, err := New(5, WithResourceController(c))
	require.NoError(t, err)
	assert.Equal(t, int64(5*ElementSize), c.MemoryUsage())

	require.NoError(t, v.Resize(6))
	assert.Equal(t, int64(16*ElementSize), c.MemoryUsage())

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, int64(6*ElementSize), c.MemoryUsage())

	require.NoError(t, v.Init(2))
	assert.Equal(t, int64(2*ElementSize), c.MemoryUsage())

	require.NoError(t, v.Release())
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(16*ElementSize), c.PeakMemoryUsage())
}

func TestMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	v, err := New(4, WithMetricsCollector(m))
	require.NoError(t, err)

	require.NoError(t, v.Resize(5))
	require.NoError(t, v.ShrinkToFit())
	require.NoError(t, v.Release())

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.GrowCount) // create, resize
	assert.Equal(t, int64(16), stats.GrowElements)
	assert.Equal(t, int64(1), stats.ShrinkCount)
	assert.Equal(t, int64(1), stats.ReleaseCount)
	assert.Equal(t, int64(0), stats.AllocFailures)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v, err := New(0, WithLogger(logger), WithMemoryLimit(MinCapacity*ElementSize))
	require.NoError(t, err)

	require.NoError(t, v.Resize(1))
	assert.Contains(t, buf.String(), "reallocation completed")
	assert.Contains(t, buf.String(), "op=resize")
	assert.Contains(t, buf.String(), "to=16")
	assert.Contains(t, buf.String(), `bytes="128 B"`)

	require.Error(t, v.Resize(MinCapacity+1))
	assert.Contains(t, buf.String(), "reallocation refused")

	require.NoError(t, v.Release())
	assert.Contains(t, buf.String(), "buffer released")
}

func TestNilOptionsFallBack(t *testing.T) {
	v, err := New(1, WithLogger(nil), WithMetricsCollector(nil))
	require.NoError(t, err)
	require.NoError(t, v.Resize(40))
	require.NoError(t, v.Release())
}
