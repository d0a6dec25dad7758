package geo3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPoint(t *testing.T) {
	p := NewPoint(1, -2.5, 3)

	assert.Equal(t, 1.0, p.X)
	assert.Equal(t, -2.5, p.Y)
	assert.Equal(t, 3.0, p.Z)
}

func TestPointArithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		got := NewPoint(1, 2, 3).Add(NewPoint(4, 5, 6))
		assert.Equal(t, NewPoint(5, 7, 9), got)
	})

	t.Run("Sub", func(t *testing.T) {
		got := NewPoint(4, 5, 6).Sub(NewPoint(1, 2, 3))
		assert.Equal(t, NewPoint(3, 3, 3), got)
	})

	t.Run("Scale", func(t *testing.T) {
		got := NewPoint(1, -2, 3).Scale(2)
		assert.Equal(t, NewPoint(2, -4, 6), got)
	})

	t.Run("ScaleZero", func(t *testing.T) {
		got := NewPoint(1, -2, 3).Scale(0)
		assert.True(t, got.IsZero())
	})
}

func TestPointDot(t *testing.T) {
	a := NewPoint(1, 2, 3)
	b := NewPoint(4, -5, 6)

	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, a.Dot(b), b.Dot(a))
	assert.Equal(t, 14.0, a.Dot(a))
}

func TestPointCross(t *testing.T) {
	t.Run("RightHanded", func(t *testing.T) {
		x := NewPoint(1, 0, 0)
		y := NewPoint(0, 1, 0)

		assert.Equal(t, NewPoint(0, 0, 1), x.Cross(y))
	})

	t.Run("Anticommutative", func(t *testing.T) {
		a := NewPoint(1, 2, 3)
		b := NewPoint(4, 5, 6)

		assert.Equal(t, NewPoint(-3, 6, -3), a.Cross(b))
		assert.Equal(t, a.Cross(b).Scale(-1), b.Cross(a))
	})

	t.Run("OrthogonalToOperands", func(t *testing.T) {
		a := NewPoint(2, -1, 4)
		b := NewPoint(-3, 5, 1)
		c := a.Cross(b)

		assert.Equal(t, 0.0, c.Dot(a))
		assert.Equal(t, 0.0, c.Dot(b))
	})

	t.Run("ParallelVectorsVanish", func(t *testing.T) {
		a := NewPoint(1, 2, 3)
		b := a.Scale(2)

		assert.True(t, a.Cross(b).IsZero())
	})
}

func TestPointMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, NewPoint(3, 4, 0).Magnitude())
	assert.Equal(t, 3.0, NewPoint(1, 2, 2).Magnitude())
	assert.Equal(t, 0.0, Point{}.Magnitude())
}

func TestPointDistance(t *testing.T) {
	a := NewPoint(1, 2, 3)
	b := NewPoint(4, 6, 3)

	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 5.0, b.Distance(a))
	assert.Equal(t, 0.0, a.Distance(a))
}

func TestPointNormalize(t *testing.T) {
	t.Run("UnitMagnitude", func(t *testing.T) {
		u := NewPoint(3, 4, 0).Normalize()

		assert.InDelta(t, 1.0, u.Magnitude(), 1e-15)
		assert.InDelta(t, 0.6, u.X, 1e-15)
		assert.InDelta(t, 0.8, u.Y, 1e-15)
		assert.Equal(t, 0.0, u.Z)
	})

	t.Run("PreservesDirection", func(t *testing.T) {
		v := NewPoint(-2, 7, 1)
		u := v.Normalize()

		assert.InDelta(t, 0.0, v.Cross(u).Magnitude(), 1e-12)
		assert.Greater(t, v.Dot(u), 0.0)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		assert.True(t, Point{}.Normalize().IsZero())
	})

	t.Run("BelowTolerance", func(t *testing.T) {
		v := NewPoint(1e-200, 0, 0)

		assert.True(t, v.Normalize().IsZero())
	})

	t.Run("ExplicitTolerance", func(t *testing.T) {
		v := NewPoint(1e-200, 0, 0)
		u := v.NormalizeWithin(1e-300)

		assert.InDelta(t, 1.0, u.Magnitude(), 1e-15)
	})
}

func TestPointEqual(t *testing.T) {
	tests := []struct {
		name string
		a    Point
		b    Point
		want bool
	}{
		{
			name: "identical",
			a:    NewPoint(1, 2, 3),
			b:    NewPoint(1, 2, 3),
			want: true,
		},
		{
			name: "both zero",
			a:    Point{},
			b:    Point{},
			want: true,
		},
		{
			name: "adjacent representable",
			a:    NewPoint(1, 1, 1),
			b:    NewPoint(math.Nextafter(1, 2), 1, 1),
			want: true,
		},
		{
			name: "large values absorb small absolute differences",
			a:    NewPoint(1e15, 0, 0),
			b:    NewPoint(1e15+0.1, 0, 0),
			want: true,
		},
		{
			name: "large values keep relative differences",
			a:    NewPoint(1e15, 0, 0),
			b:    NewPoint(1e15+1, 0, 0),
			want: false,
		},
		{
			name: "tiny value is not zero",
			a:    NewPoint(1e-300, 0, 0),
			b:    Point{},
			want: false,
		},
		{
			name: "plainly different",
			a:    NewPoint(1, 2, 3),
			b:    NewPoint(1.0000000001, 2, 3),
			want: false,
		},
		{
			name: "NaN coordinate never equal",
			a:    NewPoint(math.NaN(), 0, 0),
			b:    NewPoint(math.NaN(), 0, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestPointEqualWithin(t *testing.T) {
	a := NewPoint(1, 2, 3)
	b := NewPoint(1.05, 2.05, 3.05)

	assert.True(t, a.EqualWithin(b, 0.1))
	assert.False(t, a.EqualWithin(b, 0.01))
}

func TestPointIsZero(t *testing.T) {
	assert.True(t, Point{}.IsZero())
	assert.True(t, NewPoint(0, 0, 0).IsZero())
	assert.False(t, NewPoint(0, 0, 1e-300).IsZero())
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "Point[1, 2.5, -3]", NewPoint(1, 2.5, -3).String())
	assert.Equal(t, "Point[0, 0, 0]", Point{}.String())
	assert.Equal(t, "Point[1e+21, 0, 0]", NewPoint(1e21, 0, 0).String())
}

func TestVectorAlias(t *testing.T) {
	var v Vector = NewPoint(0, 0, 2)

	assert.Equal(t, 2.0, v.Magnitude())
	assert.Equal(t, NewPoint(0, 0, 1), v.Normalize())
}

func TestEpsilon(t *testing.T) {
	assert.Equal(t, math.Nextafter(1, 2)-1, Epsilon)
}
