package smolyak

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gosmolyak/utils"
)

/*
	chebyshevTable evaluates the Chebyshev polynomials T_0 .. T_(m-1) at
	every coordinate of every grid point with the three term recurrence:
	    T_0(x) = 1, T_1(x) = x, T_(j+1)(x) = 2x*T_j(x) - T_(j-1)(x)
	Entry [j] of the result is a d x n matrix holding T_j at coordinate
	(dimension row, point column).
*/
func chebyshevTable(X utils.Matrix, m int) (Ts []utils.Matrix) {
	var (
		n, d = X.Dims()
	)
	Ts = make([]utils.Matrix, m)
	Xt := X.Transpose() // d x n, coordinate (k, i) of point i in row k
	Ts[0] = utils.NewMatrix(d, n, utils.ConstArray(d*n, 1.))
	if m == 1 {
		return
	}
	Ts[1] = Xt
	for j := 2; j < m; j++ {
		Ts[j] = Xt.Copy().Scale(2.).ElMul(Ts[j-1]).Subtract(Ts[j-2])
	}
	return
}

/*
	buildB assembles the n x n collocation matrix:
	    B[i, j] = prod over k of T_(b_k - 1)(Points[i, k]), b = BasisInds[j]
	then factors it. The row permutation of the factorization is folded into
	BL so that B = BL * BU exactly, matching the permute_l form of the
	factors retained for interpolation solves.
*/
func (sg *Grid) buildB() (err error) {
	var (
		n = sg.NumPoints()
		d = sg.D
	)
	Ts := chebyshevTable(sg.Points, MI(sg.Mu+1))
	sg.B = utils.NewMatrix(n, n)
	var (
		data = sg.B.DataP
	)
	for j, bi := range sg.BasisInds {
		for i := 0; i < n; i++ {
			val := 1.
			for k := 0; k < d; k++ {
				val *= Ts[bi[k]-1].At(k, i)
			}
			data[i*n+j] = val
		}
	}
	if sg.lup, err = utils.NewLUP(sg.B); err != nil {
		err = fmt.Errorf("unable to factor collocation matrix: %s", err.Error())
		return
	}
	var (
		L, U utils.Matrix
		P    = sg.lup.P
	)
	if L, U, err = sg.lup.Factors(); err != nil {
		return
	}
	// P*B = L*U with L unit lower triangular. Scattering row i of L back to
	// row P[i] absorbs the permutation: B = BL * BU
	sg.BL = utils.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		sg.BL.SetRow(P[i], L.Row(i).DataP)
	}
	sg.BU = U
	sg.B.SetReadOnly("B")
	sg.BL.SetReadOnly("BL")
	sg.BU.SetReadOnly("BU")
	return
}

// Matrix returns the collocation matrix B. It is an error to ask for it from
// a grid built with GridOnly.
func (sg *Grid) Matrix() (B utils.Matrix, err error) {
	if sg.B.IsEmpty() {
		err = fmt.Errorf("uninitialized - build the grid with GridAndMatrix first")
		return
	}
	B = sg.B
	return
}

// Factors returns BL, BU such that B = BL * BU, the row permutation having
// been folded into BL
func (sg *Grid) Factors() (BL, BU utils.Matrix, err error) {
	if sg.BL.IsEmpty() {
		err = fmt.Errorf("uninitialized - build the grid with GridAndMatrix first")
		return
	}
	BL, BU = sg.BL, sg.BU
	return
}

// PermutationMatrix returns the factorization's row permutation P as a
// sparse CSR matrix, so that P*B equals the unit-lower times upper product
// of the factors: P*B = (P*BL) * BU
func (sg *Grid) PermutationMatrix() (P *sparse.CSR, err error) {
	if sg.lup == nil {
		err = fmt.Errorf("uninitialized - build the grid with GridAndMatrix first")
		return
	}
	var (
		n   = sg.NumPoints()
		dok = utils.NewDOK(n, n)
	)
	for i, pi := range sg.lup.P {
		dok.Set(i, pi, 1.)
	}
	dok.SetReadOnly("P")
	P = dok.ToCSR()
	return
}

/*
	Coefficients solves B * c = f for the interpolation coefficients c, where
	f holds the sampled function values in grid point order. The retained
	factorization is reused - no refactoring occurs.
*/
func (sg *Grid) Coefficients(f utils.Vector) (c utils.Vector, err error) {
	if sg.lup == nil {
		err = fmt.Errorf("uninitialized - build the grid with GridAndMatrix first")
		return
	}
	if f.Len() != sg.NumPoints() {
		err = fmt.Errorf("dimension mismatch: %d sampled values for %d grid points",
			f.Len(), sg.NumPoints())
		return
	}
	c, err = sg.lup.Solve(f)
	return
}

// Interpolant carries the coefficients of the tensor Chebyshev expansion of
// a function sampled on the grid
type Interpolant struct {
	D, Mu     int
	BasisInds []utils.Index
	C         utils.Vector
}

// Approximate samples f at every grid point and solves for the expansion
// coefficients
func (sg *Grid) Approximate(f func(x []float64) float64) (it *Interpolant, err error) {
	var (
		n = sg.NumPoints()
		c utils.Vector
	)
	fv := utils.NewVector(n)
	for i := 0; i < n; i++ {
		fv.DataP[i] = f(sg.Point(i))
	}
	if c, err = sg.Coefficients(fv); err != nil {
		return
	}
	it = &Interpolant{
		D:         sg.D,
		Mu:        sg.Mu,
		BasisInds: sg.BasisInds,
		C:         c,
	}
	return
}

// At evaluates the expansion at an arbitrary point of [-1,1]^d
func (it *Interpolant) At(x []float64) (val float64) {
	var (
		d = it.D
		m = MI(it.Mu + 1)
	)
	if len(x) != d {
		panic(fmt.Errorf("dimension mismatch: point has %d coordinates, interpolant has %d dimensions", len(x), d))
	}
	// Per-dimension recurrence table at the single point x
	Ts := make([][]float64, d)
	for k := 0; k < d; k++ {
		T := make([]float64, m)
		T[0] = 1.
		if m > 1 {
			T[1] = x[k]
		}
		for j := 2; j < m; j++ {
			T[j] = 2.*x[k]*T[j-1] - T[j-2]
		}
		Ts[k] = T
	}
	for j, bi := range it.BasisInds {
		term := it.C.DataP[j]
		for k := 0; k < d; k++ {
			term *= Ts[k][bi[k]-1]
		}
		val += term
	}
	return
}
