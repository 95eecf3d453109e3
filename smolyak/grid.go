package smolyak

import (
	"fmt"
	"strings"

	"github.com/notargets/gosmolyak/utils"
	"gonum.org/v1/gonum/stat/combin"
)

type BuildLevel uint

const (
	GridOnly BuildLevel = iota
	GridAndMatrix
)

var (
	BuildLevelNames = map[string]BuildLevel{
		"grid-only":       GridOnly,
		"grid-and-matrix": GridAndMatrix,
	}
	BuildLevelPrintNames = []string{"Grid Only", "Grid And Matrix"}
)

func (bl BuildLevel) Print() (txt string) {
	txt = BuildLevelPrintNames[bl]
	return
}

func NewBuildLevel(label string) (bl BuildLevel, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(label)
	if bl, ok = BuildLevelNames[label]; !ok {
		err = fmt.Errorf("unable to use build level named %s", label)
	}
	return
}

/*
	Grid is a Smolyak sparse grid over [-1,1]^d built from nested Chebyshev
	extrema, after Judd, Maliar, Maliar, Valero 2013 (W.P.)

	The configuration (D, Mu) is fixed at construction. Everything else is
	derived once during NewGrid and read-only afterward:

	Inds       the canonical admissible multi-index sequence
	Points     n x d matrix of grid points, one row per point
	BasisInds  per grid point, the 1-based Chebyshev degree selections,
	           positionally aligned with the rows of Points
	B          n x n collocation matrix (GridAndMatrix only)
	BL, BU     factors of B with the row permutation folded into BL, so
	           that B = BL * BU (GridAndMatrix only)
*/
type Grid struct {
	D, Mu     int
	Level     BuildLevel
	Chain     *NodeChain
	Phi       *PhiChain
	Inds      []utils.Index
	Points    utils.Matrix
	BasisInds []utils.Index
	B, BL, BU utils.Matrix
	lup       *utils.LUP
}

func NewGrid(d, mu int, level BuildLevel) (sg *Grid, err error) {
	if d < 2 {
		err = fmt.Errorf("grid dimension d must be at least 2, got %d", d)
		return
	}
	if mu < 1 {
		err = fmt.Errorf("density parameter mu must be at least 1, got %d", mu)
		return
	}
	sg = &Grid{
		D:     d,
		Mu:    mu,
		Level: level,
		Chain: NewNodeChain(mu + 1),
		Phi:   NewPhiChain(mu + 1),
	}
	sg.Inds = SmolyakIndices(d, mu)
	sg.buildPoints()
	sg.buildBasisIndices()
	if len(sg.BasisInds) != sg.NumPoints() {
		// The two Cartesian walks traverse the identical index sequence, so
		// a length mismatch is an internal invariant violation
		panic(fmt.Errorf("misaligned grid and basis: %d points, %d basis indices",
			sg.NumPoints(), len(sg.BasisInds)))
	}
	if level == GridAndMatrix {
		err = sg.buildB()
	}
	return
}

/*
	buildPoints maps each multi-index to the Cartesian product of the node
	chain levels it selects, concatenating the products in index order. No
	deduplication is performed - the chain levels are disjoint sets, so the
	products never repeat a point.
*/
func (sg *Grid) buildPoints() {
	var (
		d    = sg.D
		lens = make([]int, d)
		n    int
	)
	for _, ind := range sg.Inds {
		n += combin.Card(sg.levelSizes(ind, lens))
	}
	sg.Points = utils.NewMatrix(n, d)
	var (
		data = sg.Points.DataP
		sub  = make([]int, d)
		row  int
	)
	for _, ind := range sg.Inds {
		gen := combin.NewCartesianGenerator(sg.levelSizes(ind, lens))
		for gen.Next() {
			sub = gen.Product(sub)
			for k := 0; k < d; k++ {
				data[row*d+k] = sg.Chain.Level(ind[k]).AtVec(sub[k])
			}
			row++
		}
	}
	sg.Points.SetReadOnly("SmolyakPoints")
	return
}

func (sg *Grid) levelSizes(ind utils.Index, lens []int) []int {
	for k, lvl := range ind {
		lens[k] = sg.Chain.LevelSize(lvl)
	}
	return lens
}

func (sg *Grid) NumPoints() (n int) {
	n, _ = sg.Points.Dims()
	return
}

func (sg *Grid) Dims() int {
	return sg.D
}

// GridPoints returns the n x d point matrix, one point per row
func (sg *Grid) GridPoints() utils.Matrix {
	return sg.Points
}

// Point returns the coordinates of grid point i
func (sg *Grid) Point(i int) (x []float64) {
	var (
		d    = sg.D
		data = sg.Points.DataP
	)
	x = make([]float64, d)
	copy(x, data[i*d:(i+1)*d])
	return
}

func (sg *Grid) String() string {
	return fmt.Sprintf("Smolyak Grid:\n\td: %d \n\tmu: %d \n\tnpoints: %d",
		sg.D, sg.Mu, sg.NumPoints())
}
