package utils

import (
	"image/color"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = utils2.WHITE
	case Blue:
		c = utils2.BLUE
	case Red:
		c = utils2.RED
	case Green:
		c = utils2.GREEN
	case Black:
		c = utils2.BLACK
	}
	return
}

type ScatterChart struct {
	Chart     *chart2d.Chart2D
	GlyphSize float32
}

func NewScatterChart(width, height int, xmin, xmax, ymin, ymax float64) (sc *ScatterChart) {
	sc = &ScatterChart{
		Chart: chart2d.NewChart2D(float32(xmin), float32(xmax), float32(ymin), float32(ymax),
			width, height, utils2.WHITE, utils2.BLACK),
		GlyphSize: 0.02,
	}
	return
}

// AddPoints renders one crosshair glyph per point, two line segments each
func (sc *ScatterChart) AddPoints(x, y []float64, col color.RGBA) {
	var (
		size  = sc.GlyphSize
		lines = make([]float32, 0, 8*len(x))
	)
	for i := range x {
		xi, yi := float32(x[i]), float32(y[i])
		lines = append(lines,
			xi-size, yi, xi+size, yi,
			xi, yi-size, xi, yi+size,
		)
	}
	sc.Chart.AddLine(lines, col)
}

func (sc *ScatterChart) AddLabel(x, y float64, col color.RGBA, format string, args ...interface{}) {
	tf := assets.NewTextFormatter("NotoSans", "Regular", 36, col, true, false)
	sc.Chart.Printf(tf, float32(x), float32(y), format, args...)
}
