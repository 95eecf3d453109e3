package smolyak

import (
	"fmt"

	"github.com/notargets/gosmolyak/utils"
	"gonum.org/v1/gonum/stat/combin"
)

// PhiChain holds the disjoint one dimensional polynomial degree sets, the
// combinatorial mirror of NodeChain: level 1 = {1}, level 2 = {2, 3}, and
// level k >= 3 is the run of consecutive integers ending at 2^(k-1)+1
type PhiChain struct {
	depth  int
	levels []utils.Index // levels[k-1] holds the 1-based degree identifiers of level k
}

func NewPhiChain(depth int) (pc *PhiChain) {
	if depth < 1 {
		panic(fmt.Errorf("phi chain depth must be at least 1, got %d", depth))
	}
	pc = &PhiChain{
		depth:  depth,
		levels: make([]utils.Index, depth),
	}
	pc.levels[0] = utils.Index{1}
	if depth >= 2 {
		pc.levels[1] = utils.Index{2, 3}
	}
	curr := 4
	for k := 3; k <= depth; k++ {
		end := MI(k)
		pc.levels[k-1] = utils.NewRange(curr, end)
		curr = end + 1
	}
	return
}

func (pc *PhiChain) Depth() int {
	return pc.depth
}

// Level returns the degree identifiers of the 1-based chain level k
func (pc *PhiChain) Level(k int) utils.Index {
	pc.checkLevel(k)
	return pc.levels[k-1]
}

func (pc *PhiChain) LevelSize(k int) int {
	pc.checkLevel(k)
	return len(pc.levels[k-1])
}

func (pc *PhiChain) checkLevel(k int) {
	if k < 1 || k > pc.depth {
		panic(fmt.Errorf("chain level out of bounds: level = %d, depth = %d", k, pc.depth))
	}
}

/*
	buildBasisIndices walks the identical multi-index sequence and Cartesian
	product order as buildPoints, selecting polynomial degree identifiers from
	the phi chain instead of nodes from the node chain. Entry j of the result
	names the tensor Chebyshev basis function paired with grid point j.
*/
func (sg *Grid) buildBasisIndices() {
	var (
		d    = sg.D
		lens = make([]int, d)
		sub  = make([]int, d)
	)
	sg.BasisInds = make([]utils.Index, 0, sg.NumPoints())
	for _, ind := range sg.Inds {
		for k, lvl := range ind {
			lens[k] = sg.Phi.LevelSize(lvl)
		}
		gen := combin.NewCartesianGenerator(lens)
		for gen.Next() {
			sub = gen.Product(sub)
			bi := utils.NewIndex(d)
			for k := 0; k < d; k++ {
				bi[k] = sg.Phi.Level(ind[k])[sub[k]]
			}
			sg.BasisInds = append(sg.BasisInds, bi)
		}
	}
	return
}
