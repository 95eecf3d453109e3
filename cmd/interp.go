/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/notargets/gosmolyak/InputParameters"
	"github.com/notargets/gosmolyak/smolyak"
)

// InterpCmd represents the interp command
var InterpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Interpolate a sample function on a Smolyak grid and report the error",
	Long: `
Builds the grid with its collocation matrix, approximates a named sample
function through the factored interpolation solve, then reports the max and
RMS error on a uniform evaluation lattice,

gosmolyak interp -d 2 -m 3 -f runge`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("interp called")
		mi := &ModelInterp{}
		mi.D, _ = cmd.Flags().GetInt("dimensions")
		mi.Mu, _ = cmd.Flags().GetInt("mu")
		fn, _ := cmd.Flags().GetString("function")
		if mi.Function, err = smolyak.NewSampleFunction(fn); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		mi.EvalPoints, _ = cmd.Flags().GetInt("evalPoints")
		mi.ParamFile, _ = cmd.Flags().GetString("inputParametersFile")
		if len(mi.ParamFile) != 0 {
			if err = mi.readParameters(); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				return
			}
		}
		RunInterp(mi)
	},
}

func init() {
	rootCmd.AddCommand(InterpCmd)
	InterpCmd.Flags().IntP("dimensions", "d", 2, "dimension of the grid hypercube")
	InterpCmd.Flags().IntP("mu", "m", 2, "density parameter - controls grid fineness")
	InterpCmd.Flags().StringP("function", "f", "gaussian", "sample function: one of [gaussian, runge, cosproduct]")
	InterpCmd.Flags().Int("evalPoints", 5, "evaluation lattice points per dimension")
	InterpCmd.Flags().StringP("inputParametersFile", "I", "", "YAML parameter file overriding the flags")
}

type ModelInterp struct {
	D, Mu      int
	Function   smolyak.SampleFunction
	EvalPoints int
	ParamFile  string
}

func (mi *ModelInterp) readParameters() (err error) {
	var (
		data []byte
		gp   InputParameters.GridParameters
	)
	if data, err = ioutil.ReadFile(mi.ParamFile); err != nil {
		return
	}
	if err = gp.Parse(data); err != nil {
		return
	}
	gp.Print()
	mi.D = gp.Dimensions
	mi.Mu = gp.Mu
	if len(gp.SampleFunction) != 0 {
		if mi.Function, err = smolyak.NewSampleFunction(gp.SampleFunction); err != nil {
			return
		}
	}
	return
}

func RunInterp(mi *ModelInterp) {
	sg, err := smolyak.NewGrid(mi.D, mi.Mu, smolyak.GridAndMatrix)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		return
	}
	fmt.Printf("%s\n", sg)
	f := mi.Function.F()
	it, err := sg.Approximate(f)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		return
	}
	if mi.EvalPoints < 2 {
		mi.EvalPoints = 2
	}
	var (
		d        = mi.D
		nper     = mi.EvalPoints
		lens     = make([]int, d)
		x        = make([]float64, d)
		sub      = make([]int, d)
		maxErr   float64
		sumSq    float64
		nSamples int
	)
	for k := range lens {
		lens[k] = nper
	}
	gen := combin.NewCartesianGenerator(lens)
	for gen.Next() {
		sub = gen.Product(sub)
		for k := 0; k < d; k++ {
			x[k] = -1. + 2.*float64(sub[k])/float64(nper-1)
		}
		e := math.Abs(it.At(x) - f(x))
		if e > maxErr {
			maxErr = e
		}
		sumSq += e * e
		nSamples++
	}
	fmt.Printf("interpolating %s on %d lattice points\n", mi.Function.Print(), nSamples)
	fmt.Printf("max error: %8.5e, RMS error: %8.5e\n", maxErr, math.Sqrt(sumSq/float64(nSamples)))
}
