package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type GridParameters struct {
	Title          string `yaml:"Title"`
	Dimensions     int    `yaml:"Dimensions"`
	Mu             int    `yaml:"Mu"`
	BuildLevel     string `yaml:"BuildLevel"`
	SampleFunction string `yaml:"SampleFunction"`
	Plot           bool   `yaml:"Plot"`
	PlotDelay      int    `yaml:"PlotDelay"` // milliseconds the plot stays up
}

func (gp *GridParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, gp)
}

func (gp *GridParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", gp.Title)
	fmt.Printf("[%d]\t\t\t\t= Dimensions\n", gp.Dimensions)
	fmt.Printf("[%d]\t\t\t\t= Mu\n", gp.Mu)
	fmt.Printf("[%s]\t\t= Build Level\n", gp.BuildLevel)
	fmt.Printf("[%s]\t\t= Sample Function\n", gp.SampleFunction)
	fmt.Printf("[%v]\t\t\t= Plot\n", gp.Plot)
}
