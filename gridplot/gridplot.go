package gridplot

import (
	"fmt"
	"sort"
	"time"

	"github.com/notargets/gosmolyak/smolyak"
	"github.com/notargets/gosmolyak/utils"
)

/*
	Plot renders the grid point scatter with the avs chart2d renderer. Two
	dimensional grids plot directly. Three dimensional grids plot the X-Y
	plane with one series per distinct Z value, colored from a fixed palette
	and labeled - the Z coordinates all lie on the few chain levels, so the
	slices are a faithful level view of the grid.

	Any other dimensionality is a usage error of this collaborator, not of
	the grid.
*/
func Plot(sg *smolyak.Grid, width, height int, graphDelay time.Duration) (err error) {
	switch sg.Dims() {
	case 2:
		plotXY(sg, width, height)
	case 3:
		plotZSlices(sg, width, height)
	default:
		err = fmt.Errorf("can only plot 2 or 3 dimensional grids, got d = %d", sg.Dims())
		return
	}
	time.Sleep(graphDelay)
	return
}

func plotXY(sg *smolyak.Grid, width, height int) {
	var (
		pts = sg.GridPoints()
	)
	sc := utils.NewScatterChart(width, height, -1.1, 1.1, -1.1, 1.1)
	sc.AddPoints(pts.Col(0).DataP, pts.Col(1).DataP, utils.GetColor(utils.Black))
}

// sliceColors cycles per Z level. White is excluded - it is the background
var sliceColors = []utils.ColorName{utils.Black, utils.Blue, utils.Red, utils.Green}

func plotZSlices(sg *smolyak.Grid, width, height int) {
	var (
		n      = sg.NumPoints()
		slices = make(map[float64]*slice)
		zs     []float64
	)
	for i := 0; i < n; i++ {
		pt := sg.Point(i)
		s, ok := slices[pt[2]]
		if !ok {
			s = &slice{}
			slices[pt[2]] = s
			zs = append(zs, pt[2])
		}
		s.x = append(s.x, pt[0])
		s.y = append(s.y, pt[1])
	}
	sort.Float64s(zs)
	sc := utils.NewScatterChart(width, height, -1.1, 1.1, -1.1, 1.1)
	for i, z := range zs {
		var (
			s   = slices[z]
			col = utils.GetColor(sliceColors[i%len(sliceColors)])
		)
		sc.AddPoints(s.x, s.y, col)
		sc.AddLabel(-1.05, 1.05-0.08*float64(i), col, "z=%5.3f", z)
	}
}

type slice struct {
	x, y []float64
}
