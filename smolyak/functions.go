package smolyak

import (
	"fmt"
	"math"
	"strings"
)

// SampleFunction names a smooth test function on [-1,1]^d used by the
// interpolation driver and the approximation tests
type SampleFunction uint

const (
	GaussianFunction SampleFunction = iota
	RungeFunction
	CosProductFunction
)

var (
	FunctionNames = map[string]SampleFunction{
		"gaussian":   GaussianFunction,
		"runge":      RungeFunction,
		"cosproduct": CosProductFunction,
	}
	FunctionPrintNames = []string{"Gaussian", "Runge", "Cosine Product"}
)

func (sf SampleFunction) Print() (txt string) {
	txt = FunctionPrintNames[sf]
	return
}

func NewSampleFunction(label string) (sf SampleFunction, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(label)
	if sf, ok = FunctionNames[label]; !ok {
		err = fmt.Errorf("unable to use sample function named %s", label)
	}
	return
}

func (sf SampleFunction) F() func(x []float64) float64 {
	switch sf {
	case GaussianFunction:
		return func(x []float64) (val float64) {
			var r2 float64
			for _, xi := range x {
				r2 += xi * xi
			}
			return math.Exp(-r2)
		}
	case RungeFunction:
		return func(x []float64) (val float64) {
			var r2 float64
			for _, xi := range x {
				r2 += xi * xi
			}
			return 1. / (1. + 25.*r2)
		}
	case CosProductFunction:
		return func(x []float64) (val float64) {
			val = 1.
			for _, xi := range x {
				val *= math.Cos(xi)
			}
			return
		}
	}
	panic(fmt.Errorf("unknown sample function %d", sf))
}
