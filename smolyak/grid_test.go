package smolyak

import (
	"fmt"
	"math"
	"testing"

	"github.com/notargets/gosmolyak/utils"
	"github.com/stretchr/testify/assert"

	"gonum.org/v1/gonum/mat"
)

func TestNewGridValidation(t *testing.T) {
	_, err := NewGrid(1, 2, GridOnly)
	assert.NotNil(t, err)
	_, err = NewGrid(3, 0, GridOnly)
	assert.NotNil(t, err)
	sg, err := NewGrid(2, 1, GridOnly)
	assert.Nil(t, err)
	assert.NotNil(t, sg)
}

func TestBuildLevel(t *testing.T) {
	bl, err := NewBuildLevel("grid-only")
	assert.Nil(t, err)
	assert.Equal(t, GridOnly, bl)
	bl, err = NewBuildLevel("Grid-And-Matrix")
	assert.Nil(t, err)
	assert.Equal(t, GridAndMatrix, bl)
	_, err = NewBuildLevel("everything")
	assert.NotNil(t, err)
}

func TestGridPoints(t *testing.T) {
	// d=2, mu=1 case, small enough to check every point by hand
	{
		sg, err := NewGrid(2, 1, GridOnly)
		assert.Nil(t, err)
		assert.Equal(t, 5, sg.NumPoints())
		fmt.Printf("%s\n", sg)
		fmt.Printf("grid = \n%v\n", mat.Formatted(sg.GridPoints(), mat.Squeeze()))
		expected := [][]float64{
			{0, -1},
			{0, 1},
			{-1, 0},
			{1, 0},
			{0, 0},
		}
		for i, pt := range expected {
			assert.Equal(t, pt, sg.Point(i))
		}
	}
	// Point counts match the closed forms
	for _, tc := range [][2]int{{2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}, {5, 2}, {8, 1}} {
		d, mu := tc[0], tc[1]
		sg, err := NewGrid(d, mu, GridOnly)
		assert.Nil(t, err)
		n, ok := NumGridPoints(d, mu)
		assert.True(t, ok)
		assert.Equal(t, n, sg.NumPoints())
	}
	// (d=3, mu=2) totals 1 + 12 + 12 = 25
	{
		sg, _ := NewGrid(3, 2, GridOnly)
		assert.Equal(t, 25, sg.NumPoints())
	}
}

func TestGridNoDuplicates(t *testing.T) {
	for _, tc := range [][2]int{{2, 1}, {2, 3}, {3, 2}, {4, 2}} {
		d, mu := tc[0], tc[1]
		sg, err := NewGrid(d, mu, GridOnly)
		assert.Nil(t, err)
		var (
			n = sg.NumPoints()
		)
		for i := 0; i < n; i++ {
			pi := sg.Point(i)
			for j := i + 1; j < n; j++ {
				pj := sg.Point(j)
				var dist float64
				for k := 0; k < d; k++ {
					dist = math.Max(dist, math.Abs(pi[k]-pj[k]))
				}
				assert.True(t, dist > 1.e-14)
			}
		}
	}
}

func TestBasisAlignment(t *testing.T) {
	// d=2, mu=1: basis indices mirror the grid construction exactly
	{
		sg, err := NewGrid(2, 1, GridOnly)
		assert.Nil(t, err)
		expected := []utils.Index{
			{1, 2},
			{1, 3},
			{2, 1},
			{3, 1},
			{1, 1},
		}
		assert.Equal(t, expected, sg.BasisInds)
	}
	// Grid points and basis indices pair positionally: walking the canonical
	// index set and sizing each Cartesian block must land block b of both
	// sequences on the identical multi-index
	for _, tc := range [][2]int{{2, 2}, {3, 2}, {4, 1}} {
		d, mu := tc[0], tc[1]
		sg, err := NewGrid(d, mu, GridOnly)
		assert.Nil(t, err)
		assert.Equal(t, sg.NumPoints(), len(sg.BasisInds))
		var row int
		for _, ind := range sg.Inds {
			blockSize := 1
			for _, lvl := range ind {
				assert.Equal(t, sg.Chain.LevelSize(lvl), sg.Phi.LevelSize(lvl))
				blockSize *= sg.Chain.LevelSize(lvl)
			}
			for b := 0; b < blockSize; b++ {
				pt := sg.Point(row)
				bi := sg.BasisInds[row]
				for k := 0; k < d; k++ {
					// The point coordinate must come from the node level the
					// multi-index selects, and the degree from the matching
					// phi level
					assert.True(t, vecContains(sg.Chain.Level(ind[k]), pt[k]))
					assert.True(t, idxContains(sg.Phi.Level(ind[k]), bi[k]))
				}
				row++
			}
		}
		assert.Equal(t, sg.NumPoints(), row)
	}
}

func TestPhiChain(t *testing.T) {
	pc := NewPhiChain(4)
	assert.Equal(t, utils.Index{1}, pc.Level(1))
	assert.Equal(t, utils.Index{2, 3}, pc.Level(2))
	assert.Equal(t, utils.Index{4, 5}, pc.Level(3))
	assert.Equal(t, utils.Index{6, 7, 8, 9}, pc.Level(4))
	assert.Panics(t, func() { pc.Level(5) })
}

func vecContains(v utils.Vector, target float64) bool {
	for _, val := range v.DataP {
		if val == target {
			return true
		}
	}
	return false
}

func idxContains(I utils.Index, target int) bool {
	for _, val := range I {
		if val == target {
			return true
		}
	}
	return false
}
