package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/notargets/gosmolyak/smolyak"
)

var (
	cases      string
	withMatrix bool
)

func main() {
	casesPtr := flag.String("cases", "2:1 3:2 5:2 10:2 20:2", "space separated d:mu pairs to build")
	withMatrixPtr := flag.Bool("matrix", false, "also assemble and factor the collocation matrix")
	flag.Parse()
	cases = *casesPtr
	withMatrix = *withMatrixPtr
	if len(cases) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	level := smolyak.GridOnly
	if withMatrix {
		level = smolyak.GridAndMatrix
	}
	for _, c := range strings.Fields(cases) {
		d, mu := parseCase(c)
		var sg *smolyak.Grid
		build := func() {
			var err error
			if sg, err = smolyak.NewGrid(d, mu, level); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}
		start := time.Now()
		build()
		elapsed := time.Since(start)
		fmt.Printf("d = %3d, mu = %d, npoints = %8d, build time = %v\n",
			d, mu, sg.NumPoints(), elapsed)
		reportCounters(build)
	}
}

func parseCase(c string) (d, mu int) {
	var (
		err error
	)
	parts := strings.Split(c, ":")
	if len(parts) != 2 {
		fmt.Printf("malformed case %q, want d:mu\n", c)
		os.Exit(1)
	}
	if d, err = strconv.Atoi(parts[0]); err != nil {
		fmt.Printf("malformed dimension in case %q\n", c)
		os.Exit(1)
	}
	if mu, err = strconv.Atoi(parts[1]); err != nil {
		fmt.Printf("malformed mu in case %q\n", c)
		os.Exit(1)
	}
	return
}
