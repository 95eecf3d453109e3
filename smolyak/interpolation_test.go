package smolyak

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gosmolyak/utils"
)

func TestChebyshevTable(t *testing.T) {
	sg, err := NewGrid(2, 2, GridOnly)
	assert.Nil(t, err)
	var (
		n  = sg.NumPoints()
		Ts = chebyshevTable(sg.Points, MI(sg.Mu+1))
	)
	assert.Equal(t, MI(3), len(Ts))
	for i := 0; i < n; i++ {
		pt := sg.Point(i)
		for k := 0; k < sg.D; k++ {
			x := pt[k]
			assert.Equal(t, 1., Ts[0].At(k, i))
			assert.Equal(t, x, Ts[1].At(k, i))
			assert.InDeltaf(t, 2.*x*x-1., Ts[2].At(k, i), 1.e-14, "")
			assert.InDeltaf(t, 4.*x*x*x-3.*x, Ts[3].At(k, i), 1.e-14, "")
		}
	}
}

func TestCollocationMatrix(t *testing.T) {
	/*
		d=2, mu=1: grid order is (0,-1), (0,1), (-1,0), (1,0), (0,0) and the
		basis columns are (1,2), (1,3), (2,1), (3,1), (1,1), i.e.
		    y, 2y^2-1, x, 2x^2-1, 1
	*/
	sg, err := NewGrid(2, 1, GridAndMatrix)
	assert.Nil(t, err)
	B, err := sg.Matrix()
	assert.Nil(t, err)
	nr, nc := B.Dims()
	assert.Equal(t, 5, nr)
	assert.Equal(t, 5, nc)
	fmt.Printf("B = \n%v\n", mat.Formatted(B, mat.Squeeze()))
	Bcheck := utils.NewMatrix(5, 5, []float64{
		-1, 1, 0, -1, 1,
		1, 1, 0, -1, 1,
		0, -1, -1, 1, 1,
		0, -1, 1, 1, 1,
		0, -1, 0, -1, 1,
	})
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			assert.InDeltaf(t, Bcheck.At(i, j), B.At(i, j), 1.e-14, "")
		}
	}
}

func TestFactorsRoundTrip(t *testing.T) {
	for _, tc := range [][2]int{{2, 1}, {2, 2}, {3, 2}} {
		d, mu := tc[0], tc[1]
		sg, err := NewGrid(d, mu, GridAndMatrix)
		assert.Nil(t, err)
		B, err := sg.Matrix()
		assert.Nil(t, err)
		BL, BU, err := sg.Factors()
		assert.Nil(t, err)
		// The permutation is folded into BL, so the product reproduces B
		// without any row reordering
		Bre := BL.Mul(BU)
		n := sg.NumPoints()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.InDeltaf(t, B.At(i, j), Bre.At(i, j), 1.e-12, "")
			}
		}
	}
}

func TestPermutationMatrix(t *testing.T) {
	sg, err := NewGrid(3, 2, GridAndMatrix)
	assert.Nil(t, err)
	P, err := sg.PermutationMatrix()
	assert.Nil(t, err)
	var (
		n      = sg.NumPoints()
		nr, nc = P.Dims()
	)
	assert.Equal(t, n, nr)
	assert.Equal(t, n, nc)
	// Every row holds exactly one unit entry
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += P.At(i, j)
		}
		assert.Equal(t, 1., sum)
	}
	// P*B equals the unpermuted unit-lower times upper product: P*BL is
	// unit lower triangular, and (P*BL)*BU = P*B
	B, _ := sg.Matrix()
	BL, BU, _ := sg.Factors()
	var PB, PL, LU mat.Dense
	PB.Mul(P, B)
	PL.Mul(P, BL)
	for i := 0; i < n; i++ {
		assert.InDeltaf(t, 1., PL.At(i, i), 1.e-12, "")
		for j := i + 1; j < n; j++ {
			assert.InDeltaf(t, 0., PL.At(i, j), 1.e-12, "")
		}
	}
	LU.Mul(&PL, BU)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDeltaf(t, PB.At(i, j), LU.At(i, j), 1.e-12, "")
		}
	}
}

func TestUninitializedMatrixAccess(t *testing.T) {
	sg, err := NewGrid(2, 1, GridOnly)
	assert.Nil(t, err)
	_, err = sg.Matrix()
	assert.NotNil(t, err)
	_, _, err = sg.Factors()
	assert.NotNil(t, err)
	_, err = sg.PermutationMatrix()
	assert.NotNil(t, err)
	_, err = sg.Coefficients(utils.NewVector(sg.NumPoints()))
	assert.NotNil(t, err)
}

func TestCoefficients(t *testing.T) {
	sg, err := NewGrid(2, 2, GridAndMatrix)
	assert.Nil(t, err)
	var (
		n = sg.NumPoints()
		f = NewSampleFunctionMust("gaussian").F()
	)
	fv := utils.NewVector(n)
	for i := 0; i < n; i++ {
		fv.DataP[i] = f(sg.Point(i))
	}
	c, err := sg.Coefficients(fv)
	assert.Nil(t, err)
	// Multiplying back through B reproduces the sampled values
	B, _ := sg.Matrix()
	fre := B.MulVec(c)
	for i := 0; i < n; i++ {
		assert.InDeltaf(t, fv.AtVec(i), fre.AtVec(i), 1.e-10, "")
	}
	// Wrong-length samples are a caller error
	_, err = sg.Coefficients(utils.NewVector(n + 1))
	assert.NotNil(t, err)
}

func TestInterpolant(t *testing.T) {
	var (
		f = NewSampleFunctionMust("cosproduct").F()
	)
	// Collocation: the interpolant is exact at the grid points
	{
		sg, err := NewGrid(2, 2, GridAndMatrix)
		assert.Nil(t, err)
		it, err := sg.Approximate(f)
		assert.Nil(t, err)
		for i := 0; i < sg.NumPoints(); i++ {
			pt := sg.Point(i)
			assert.InDeltaf(t, f(pt), it.At(pt), 1.e-10, "")
		}
	}
	// Refining mu drives down the off-grid error for a smooth function
	{
		lattice := func(nper int) (pts [][]float64) {
			for i := 0; i < nper; i++ {
				for j := 0; j < nper; j++ {
					pts = append(pts, []float64{
						-1. + 2.*float64(i)/float64(nper-1),
						-1. + 2.*float64(j)/float64(nper-1),
					})
				}
			}
			return
		}
		maxErr := func(mu int) (me float64) {
			sg, err := NewGrid(2, mu, GridAndMatrix)
			assert.Nil(t, err)
			it, err := sg.Approximate(f)
			assert.Nil(t, err)
			for _, pt := range lattice(11) {
				e := it.At(pt) - f(pt)
				if e < 0 {
					e = -e
				}
				if e > me {
					me = e
				}
			}
			return
		}
		e1, e3 := maxErr(1), maxErr(3)
		fmt.Printf("max interpolation error: mu=1 %8.5e, mu=3 %8.5e\n", e1, e3)
		assert.True(t, e3 < e1)
	}
	// Dimension mismatch at evaluation is a caller error
	{
		sg, _ := NewGrid(2, 1, GridAndMatrix)
		it, err := sg.Approximate(f)
		assert.Nil(t, err)
		assert.Panics(t, func() { it.At([]float64{0., 0., 0.}) })
	}
}

func TestSampleFunctions(t *testing.T) {
	for label, sf := range FunctionNames {
		got, err := NewSampleFunction(label)
		assert.Nil(t, err)
		assert.Equal(t, sf, got)
		assert.NotNil(t, sf.F())
	}
	_, err := NewSampleFunction("polynomialofdoom")
	assert.NotNil(t, err)
}

// NewSampleFunctionMust is a test convenience for known-good labels
func NewSampleFunctionMust(label string) (sf SampleFunction) {
	var err error
	if sf, err = NewSampleFunction(label); err != nil {
		panic(err)
	}
	return
}
