package utils

import (
	"fmt"
	"math"
)

type LUP struct {
	LU     Matrix // Composed (L-I)+U factors after decomposition
	N      int    // dimension of the square matrix
	P      Index  // Permutation "matrix", created during an LUP decomposition, otherwise nil
	Pcount int    // count of number of pivots, used in determining sign of determinant
	tol    float64
}

func NewLUP(A Matrix) (lup *LUP, err error) {
	/*
	   Factors the input matrix into a lower [L] and upper [U] pair of triangular matrices such that:
	                                       P * [A] = L * U

	   Algorithm from: https://en.wikipedia.org/wiki/LU_decomposition#C_code_example

	   The input matrix is copied, then factored in place, producing a new matrix composed of the
	   [L-E] and [U] matrices stored in the same locations. The companion method to NewLUP is
	   Solve(), which can be called repeatedly to efficiently produce solutions to the problem:
	                                       [A] * X = B
	   where B is the known RHS vector and X is the target.
	*/
	var (
		imax       int
		absA, maxA float64
		nr, nc     = A.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("matrix must be square to factor, is %dx%d", nr, nc)
		return
	}
	lup = &LUP{
		LU:  A.Copy(),
		N:   nr,
		tol: 0.00000001, // Default value
	}
	var (
		N    = lup.N
		data = lup.LU.DataP
	)
	lup.P = NewRange(0, N-1)
	// counting pivots starting from N
	lup.Pcount = N // initialize Pcount with N
	for i := 0; i < N; i++ {
		maxA = 0.
		imax = i
		for k := i; k < N; k++ {
			absA = math.Abs(data[k*N+i])
			if absA > maxA {
				maxA = absA
				imax = k
			}
		}
		if maxA < lup.tol {
			err = fmt.Errorf("matrix is degenerate with tolerance %8.5e", lup.tol)
			return
		}
		if imax != i {
			// pivot P
			lup.P[i], lup.P[imax] = lup.P[imax], lup.P[i] // swap
			// pivot rows of LU
			for j := 0; j < N; j++ {
				data[i*N+j], data[imax*N+j] = data[imax*N+j], data[i*N+j]
			}
			// counting pivots starting from N
			lup.Pcount++
		}
		for j := i + 1; j < N; j++ {
			data[j*N+i] /= data[i*N+i]
			for k := i + 1; k < N; k++ {
				data[j*N+k] -= data[j*N+i] * data[i*N+k]
			}
		}
	}
	return
}

func (lup *LUP) Solve(b Vector) (X Vector, err error) {
	/*
	   Provided a RHS vector b of size N, calculate X for the equation:
	       [A] * X = b
	   where [A] is the matrix factored by NewLUP
	*/
	var (
		N    = lup.N
		P    = lup.P
		data = lup.LU.DataP
	)
	if len(P) == 0 {
		err = fmt.Errorf("uninitialized - construct with NewLUP first")
		return
	}
	if b.Len() != N {
		err = fmt.Errorf("dimension mismatch: RHS length %d, matrix dimension %d", b.Len(), N)
		return
	}
	X = NewVector(N)
	x := X.DataP
	for i := 0; i < N; i++ {
		x[i] = b.AtVec(P[i])
		for k := 0; k < i; k++ {
			x[i] -= data[i*N+k] * x[k]
		}
	}
	for i := N - 1; i >= 0; i-- {
		for k := i + 1; k < N; k++ {
			x[i] -= data[i*N+k] * x[k]
		}
		x[i] /= data[i*N+i]
	}
	return
}

func (lup *LUP) Factors() (L, U Matrix, err error) {
	/*
	   Splits the composed in-place factorization into an explicit unit lower triangular L
	   and upper triangular U such that:
	       P * [A] = L * U
	*/
	var (
		N    = lup.N
		data = lup.LU.DataP
	)
	if len(lup.P) == 0 {
		err = fmt.Errorf("uninitialized - construct with NewLUP first")
		return
	}
	L, U = NewMatrix(N, N), NewMatrix(N, N)
	for i := 0; i < N; i++ {
		L.DataP[i*N+i] = 1.
		for j := 0; j < i; j++ {
			L.DataP[i*N+j] = data[i*N+j]
		}
		for j := i; j < N; j++ {
			U.DataP[i*N+j] = data[i*N+j]
		}
	}
	return
}

func (lup *LUP) Determinant() (det float64, err error) {
	var (
		N    = lup.N
		data = lup.LU.DataP
	)
	if len(lup.P) == 0 {
		err = fmt.Errorf("uninitialized - construct with NewLUP first")
		return
	}
	det = data[0]
	for i := 1; i < N; i++ {
		det *= data[i*N+i]
	}
	if (lup.Pcount-N)%2 != 0 {
		det = -det
	}
	return
}
