package smolyak

import (
	"fmt"
	"math"

	"github.com/notargets/gosmolyak/utils"
)

// Nodes with magnitude below this are snapped to exactly zero so that the
// disjoint chain levels stay disjoint and symmetric in floating point
const nodeSnapTol = 1.e-14

// MI returns the number of Chebyshev extrema at chain level n, m_i = 2^(n-1)+1
func MI(n int) int {
	if n == 1 {
		return 1
	}
	return 1<<(n-1) + 1
}

// ChebyshevExtrema returns S_n, the full set of m_i extrema on [-1,1]:
// -cos(pi*(j-1)/(m-1)) for j = 1..m
func ChebyshevExtrema(n int) (S utils.Vector) {
	if n == 1 {
		return utils.NewVector(1, []float64{0.})
	}
	var (
		m    = MI(n)
		data = make([]float64, m)
	)
	for j := 1; j <= m; j++ {
		val := -math.Cos(math.Pi * float64(j-1) / float64(m-1))
		if math.Abs(val) < nodeSnapTol {
			val = 0.
		}
		data[j-1] = val
	}
	S = utils.NewVector(m, data)
	return
}

// NodeChain holds the disjoint one dimensional node sets A_1..A_depth.
// A_n = S_n[evens] except for A_1 = {0} and A_2 = {-1, 1}, and A_n = A_(n+1)[odds],
// so only the largest S_n is ever computed - the smaller levels are peeled
// off it rather than recomputed.
type NodeChain struct {
	depth  int
	levels []utils.Vector // levels[k-1] holds A_k
}

func NewNodeChain(depth int) (nc *NodeChain) {
	if depth < 1 {
		panic(fmt.Errorf("node chain depth must be at least 1, got %d", depth))
	}
	nc = &NodeChain{
		depth:  depth,
		levels: make([]utils.Vector, depth),
	}
	nc.levels[0] = utils.NewVector(1, []float64{0.})
	if depth >= 2 {
		nc.levels[1] = utils.NewVector(2, []float64{-1., 1.})
	}
	if depth <= 2 {
		return
	}
	Sn := ChebyshevExtrema(depth).DataP
	for k := depth; k > 2; k-- {
		num := len(Sn)
		odds := make([]float64, num/2)
		evens := make([]float64, num/2+1)
		for i := range odds {
			odds[i] = Sn[2*i+1]
		}
		for i := range evens {
			evens[i] = Sn[2*i]
		}
		nc.levels[k-1] = utils.NewVector(len(odds), odds)
		Sn = evens
	}
	return
}

func (nc *NodeChain) Depth() int {
	return nc.depth
}

// Level returns A_k for the 1-based chain level k
func (nc *NodeChain) Level(k int) utils.Vector {
	nc.checkLevel(k)
	return nc.levels[k-1]
}

func (nc *NodeChain) LevelSize(k int) int {
	nc.checkLevel(k)
	return nc.levels[k-1].Len()
}

func (nc *NodeChain) checkLevel(k int) {
	if k < 1 || k > nc.depth {
		panic(fmt.Errorf("chain level out of bounds: level = %d, depth = %d", k, nc.depth))
	}
}
