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
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gosmolyak/InputParameters"
	"github.com/notargets/gosmolyak/gridplot"
	"github.com/notargets/gosmolyak/smolyak"
)

// GridCmd represents the grid command
var GridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Build a Smolyak sparse grid and report its point counts",
	Long: `
Builds the Smolyak sparse grid for a given dimension d and density parameter
mu, reports the point count against the closed form where one exists, and
optionally plots the grid for d in {2,3},

gosmolyak grid -d 3 -m 2 --plot`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("grid called")
		mg := &ModelGrid{}
		mg.D, _ = cmd.Flags().GetInt("dimensions")
		mg.Mu, _ = cmd.Flags().GetInt("mu")
		bl, _ := cmd.Flags().GetString("buildLevel")
		if mg.BuildLevel, err = smolyak.NewBuildLevel(bl); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		mg.Plot, _ = cmd.Flags().GetBool("plot")
		dr, _ := cmd.Flags().GetInt("delay")
		mg.Delay = time.Duration(dr) * time.Millisecond
		mg.ProfileMode, _ = cmd.Flags().GetString("profile")
		mg.ParamFile, _ = cmd.Flags().GetString("inputParametersFile")
		if len(mg.ParamFile) != 0 {
			if err = mg.readParameters(); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				return
			}
		}
		RunGrid(mg)
	},
}

func init() {
	rootCmd.AddCommand(GridCmd)
	GridCmd.Flags().IntP("dimensions", "d", 2, "dimension of the grid hypercube")
	GridCmd.Flags().IntP("mu", "m", 1, "density parameter - controls grid fineness")
	GridCmd.Flags().StringP("buildLevel", "b", "grid-only", "one of [grid-only, grid-and-matrix]")
	GridCmd.Flags().BoolP("plot", "p", false, "display the grid point scatter (d = 2 or 3 only)")
	GridCmd.Flags().Int("delay", 5000, "milliseconds the plot stays up")
	GridCmd.Flags().String("profile", "", "profile the build: one of [cpu, mem]")
	GridCmd.Flags().StringP("inputParametersFile", "I", "", "YAML parameter file overriding the flags")
}

type ModelGrid struct {
	D, Mu       int
	BuildLevel  smolyak.BuildLevel
	Plot        bool
	Delay       time.Duration
	ProfileMode string
	ParamFile   string
}

func (mg *ModelGrid) readParameters() (err error) {
	var (
		data []byte
		gp   InputParameters.GridParameters
	)
	if data, err = ioutil.ReadFile(mg.ParamFile); err != nil {
		return
	}
	if err = gp.Parse(data); err != nil {
		return
	}
	gp.Print()
	mg.D = gp.Dimensions
	mg.Mu = gp.Mu
	if len(gp.BuildLevel) != 0 {
		if mg.BuildLevel, err = smolyak.NewBuildLevel(gp.BuildLevel); err != nil {
			return
		}
	}
	mg.Plot = gp.Plot
	if gp.PlotDelay != 0 {
		mg.Delay = time.Duration(gp.PlotDelay) * time.Millisecond
	}
	return
}

func RunGrid(mg *ModelGrid) {
	switch mg.ProfileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	}
	start := time.Now()
	sg, err := smolyak.NewGrid(mg.D, mg.Mu, mg.BuildLevel)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		return
	}
	elapsed := time.Since(start)
	fmt.Printf("%s\n", sg)
	fmt.Printf("build level: %s, build time: %v\n", mg.BuildLevel.Print(), elapsed)
	if n, ok := smolyak.NumGridPoints(mg.D, mg.Mu); ok {
		fmt.Printf("closed form point count: %d, built: %d\n", n, sg.NumPoints())
	}
	if mg.Plot {
		if err = gridplot.Plot(sg, 1024, 1024, mg.Delay); err != nil {
			fmt.Printf("error: %s\n", err.Error())
		}
	}
}
