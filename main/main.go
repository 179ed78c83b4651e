package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/golut"
	"github.com/phil-mansfield/golut/io"
	"github.com/phil-mansfield/golut/math/interpolate"
)

const (
	plotPoints = 200
)

func main() {
	var (
		eval, evalFile, plot string
		exampleConfig        string
		tableName, points    string
		out                  string
	)
	vars := map[string]*string{
		"Eval":          &eval,
		"EvalFile":      &evalFile,
		"Plot":          &plot,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&eval, "Eval", "",
		"Config file for [Eval] mode. Evaluates the table named by -Table "+
			"at the coordinates given as arguments.",
	)
	flag.StringVar(
		&evalFile, "EvalFile", "",
		"Config file for [EvalFile] mode. Evaluates the table named by "+
			"-Table at every point in the -Points file.",
	)
	flag.StringVar(
		&plot, "Plot", "",
		"Config file for [Plot] mode. Plots the table named by -Table to "+
			"the -Out image.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Tables'.",
	)
	flag.StringVar(&tableName, "Table", "", "Name of the table to use.")
	flag.StringVar(
		&points, "Points", "",
		"Text file with one query point per line for [EvalFile] mode.",
	)
	flag.StringVar(&out, "Out", "", "Output image for [Plot] mode.")

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Eval":
		c, name, dim := readTable(eval, tableName)
		coords, err := parseCoords(flag.Args(), dim)
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%.10g\n", evalPoint(c, name, dim, coords))

	case "EvalFile":
		c, name, dim := readTable(evalFile, tableName)
		if points == "" {
			log.Fatal("Must supply a -Points file in EvalFile mode.")
		}
		cols, err := io.ReadPoints(points, dim)
		if err != nil {
			log.Fatal(err.Error())
		}
		evalFileMain(c, name, dim, cols)

	case "Plot":
		c, name, dim := readTable(plot, tableName)
		if out == "" {
			log.Fatal("Must supply an -Out file in Plot mode.")
		}
		plotMain(c, name, dim, out)

	case "ExampleConfig":
		switch exampleConfig {
		case "Tables":
			fmt.Println(io.ExampleConfigFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Tables'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No mode flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but golut only accepts "+
				"one mode flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// readTable reads the catalog in the config file fname and checks that it
// contains the table name.
func readTable(fname, name string) (c *golut.Catalog, tname string, dim int) {
	if name == "" {
		log.Fatal("Must supply a -Table name.")
	}

	c, err := golut.ReadCatalog(fname)
	if err != nil {
		log.Fatal(err.Error())
	}

	dim = c.Dim(name)
	if dim == 0 {
		oneD, twoD := c.Names()
		log.Fatalf(
			"No table named '%s' in '%s'. Table1D names: [%s]. "+
				"Table2D names: [%s].", name, fname,
			strings.Join(oneD, ", "), strings.Join(twoD, ", "),
		)
	}

	return c, name, dim
}

func parseCoords(args []string, dim int) ([]float64, error) {
	if len(args) != dim {
		return nil, fmt.Errorf(
			"Expected %d coordinates, but got %d.", dim, len(args),
		)
	}

	coords := make([]float64, dim)
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("Invalid coordinate '%s'.", arg)
		}
		coords[i] = x
	}
	return coords, nil
}

func evalPoint(c *golut.Catalog, name string, dim int, coords []float64) float64 {
	if dim == 1 {
		lin, err := c.Linear(name)
		if err != nil {
			log.Fatal(err.Error())
		}
		return lin.Eval(coords[0])
	}

	bi, err := c.BiLinear(name)
	if err != nil {
		log.Fatal(err.Error())
	}
	return bi.Eval(coords[0], coords[1])
}

func evalFileMain(c *golut.Catalog, name string, dim int, cols [][]float64) {
	var vals []float64
	if dim == 1 {
		lin, err := c.Linear(name)
		if err != nil {
			log.Fatal(err.Error())
		}
		vals = lin.EvalAll(cols[0])
	} else {
		bi, err := c.BiLinear(name)
		if err != nil {
			log.Fatal(err.Error())
		}
		vals = bi.EvalAll(cols[0], cols[1])
	}

	for i := range vals {
		for d := 0; d < dim; d++ {
			fmt.Printf("%.10g ", cols[d][i])
		}
		fmt.Printf("%.10g\n", vals[i])
	}
}

func plotMain(c *golut.Catalog, name string, dim int, fname string) {
	plt.Figure()

	if dim == 1 {
		lin, err := c.Linear(name)
		if err != nil {
			log.Fatal(err.Error())
		}
		plotLinear(lin)
	} else {
		bi, err := c.BiLinear(name)
		if err != nil {
			log.Fatal(err.Error())
		}
		plotBiLinear(bi)
	}

	plt.Title(name)
	plt.SaveFig(fname)
	plt.Execute()
}

func plotLinear(lin *interpolate.Linear) {
	xs, vals := lin.Points()
	evalXs := linspace(xs, plotPoints)

	plt.Plot(evalXs, lin.EvalAll(evalXs), "b", plt.LW(3))
	plt.Plot(xs, vals, "ok")
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$f(x)$`, plt.FontSize(16))
}

// plotBiLinear plots one curve along x for each y grid line.
func plotBiLinear(bi *interpolate.BiLinear) {
	xs, ys, _ := bi.Grid()
	evalXs := linspace(xs, plotPoints)
	evalYs := make([]float64, len(evalXs))

	for _, y := range ys {
		for i := range evalYs {
			evalYs[i] = y
		}
		out := bi.EvalAll(evalXs, evalYs)
		plt.Plot(evalXs, out, plt.LW(2), plt.Label(fmt.Sprintf("$y$ = %g", y)))
	}

	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$f(x, y)$`, plt.FontSize(16))
	plt.Legend(plt.Loc("upper left"))
}

// linspace returns n evenly spaced points which extend 10% past either end of
// the breakpoints, so the clamped regions are visible.
func linspace(xs []float64, n int) []float64 {
	lo, hi := xs[0], xs[len(xs)-1]
	pad := (hi - lo) / 10
	lo, hi = lo-pad, hi+pad

	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	out[n-1] = hi
	return out
}
