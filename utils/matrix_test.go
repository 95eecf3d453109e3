package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose, Mul
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		At := A.Transpose()
		nr, nc := At.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 2, nc)
		assert.Equal(t, 2., At.At(1, 0))
		assert.Equal(t, 6., At.At(2, 1))

		AAt := A.Mul(At)
		assert.Equal(t, 14., AAt.At(0, 0))
		assert.Equal(t, 32., AAt.At(0, 1))
		assert.Equal(t, 77., AAt.At(1, 1))
	}
	// Copy does not alias the original storage
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := A.Copy()
		B.Set(0, 0, 100.)
		assert.Equal(t, 1., A.At(0, 0))
	}
	// Inverse
	{
		A := NewMatrix(2, 2, []float64{4, 7, 2, 6})
		Ainv, err := A.Inverse()
		assert.Nil(t, err)
		AAinv := A.Mul(Ainv)
		assert.True(t, nearVal(AAinv.At(0, 0), 1.))
		assert.True(t, nearVal(AAinv.At(0, 1), 0.))
		assert.True(t, nearVal(AAinv.At(1, 1), 1.))
	}
	// Row and Col extraction
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, A.Row(1).DataP)
		assert.Equal(t, []float64{2, 5}, A.Col(1).DataP)
	}
	// Writes to a read only matrix panic
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A.SetReadOnly("A")
		assert.Panics(t, func() { A.Set(0, 0, 0.) })
		A.SetWritable()
		assert.NotPanics(t, func() { A.Set(0, 0, 0.) })
	}
}

func TestVector(t *testing.T) {
	{
		v := NewVector(3, []float64{-1, 0, 2})
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, -1., v.Min())
		assert.Equal(t, 2., v.Max())
		w := v.Copy().Apply(func(x float64) float64 { return x * x })
		assert.Equal(t, []float64{1, 0, 4}, w.DataP)
		assert.Equal(t, []float64{-1, 0, 2}, v.DataP)
	}
	{
		v := NewVectorConst(4, 1.)
		assert.Equal(t, []float64{1, 1, 1, 1}, v.DataP)
	}
}
