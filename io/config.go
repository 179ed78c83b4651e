package io

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"gopkg.in/gcfg.v1"
	"gopkg.in/warnings.v0"
)

// ExampleConfigFile is a commented example of every kind of table that can be
// described by a config file.
const ExampleConfigFile = `# Each table gets its own section. Table names must be unique within a kind.

# A 1D table with inline samples. Give X and Y once per point; X must be
# strictly increasing.
[Table1D "gain"]
X = 0
X = 10
X = 20
Y = 1.0
Y = 1.5
Y = 0.5

# A 1D table read from a whitespace-separated text file. Paths are relative
# to this config file. XColumn and YColumn default to 0 and 1.
[Table1D "drag"]
File = drag.txt
XColumn = 0
YColumn = 2

# A 2D table with inline samples. Values are given in row-major order with
# one row for each X grid line and one column for each Y grid line.
[Table2D "ttc"]
X = 0
X = 1
Y = 0
Y = 5
Y = 10
Values = 0
Values = 1
Values = 2
Values = 3
Values = 4
Values = 5

# A 2D table whose surface is read from a text file with one line for each X
# grid line and one column for each Y grid line. If View is true, the table
# references the loaded samples instead of keeping its own copy.
[Table2D "brake"]
X = 0
X = 10
X = 20
Y = 0
Y = 1
File = brake_surface.txt
View = true
`

// Table1DConfig describes a single 1D table. Samples are either given inline
// through X and Y or read from the columns of File.
type Table1DConfig struct {
	X, Y []float64

	File             string
	XColumn, YColumn int

	// Optional
	View bool
	Name string
}

// CheckInit validates the config for the table called name and resolves
// File relative to dir.
func (con *Table1DConfig) CheckInit(name, dir string) error {
	con.Name = name

	if con.File == "" {
		if len(con.X) == 0 {
			return fmt.Errorf(
				"Need to specify either X values or a File for Table1D '%s'.",
				name,
			)
		} else if len(con.X) != len(con.Y) {
			return fmt.Errorf(
				"Table1D '%s' has %d X values but %d Y values.",
				name, len(con.X), len(con.Y),
			)
		}
		return nil
	}

	if len(con.X) != 0 || len(con.Y) != 0 {
		return fmt.Errorf(
			"Table1D '%s' sets both File and inline X/Y values.", name,
		)
	}

	if con.XColumn == 0 && con.YColumn == 0 {
		con.YColumn = 1
	}
	if con.XColumn < 0 || con.YColumn < 0 {
		return fmt.Errorf(
			"Table1D '%s' given a negative column index.", name,
		)
	} else if con.XColumn == con.YColumn {
		return fmt.Errorf(
			"XColumn and YColumn of Table1D '%s' are both %d.",
			name, con.XColumn,
		)
	}

	con.File = resolvePath(dir, con.File)
	return nil
}

// Samples returns the breakpoints and values of the table, reading them
// from File if necessary.
func (con *Table1DConfig) Samples() (xs, ys []float64, err error) {
	if con.File == "" {
		return con.X, con.Y, nil
	}
	return ReadColumns(con.File, con.XColumn, con.YColumn)
}

// Table2DConfig describes a single 2D table. The grid lines are always given
// inline. The surface is either given inline in row-major order through
// Values or read from File, which has one line per X grid line and one
// column per Y grid line.
type Table2DConfig struct {
	X, Y   []float64
	Values []float64

	File string

	// Optional
	View bool
	Name string
}

// CheckInit validates the config for the table called name and resolves
// File relative to dir.
func (con *Table2DConfig) CheckInit(name, dir string) error {
	con.Name = name

	if len(con.X) == 0 {
		return fmt.Errorf("Need to specify X values for Table2D '%s'.", name)
	} else if len(con.Y) == 0 {
		return fmt.Errorf("Need to specify Y values for Table2D '%s'.", name)
	}

	if con.File == "" {
		if len(con.Values) != len(con.X)*len(con.Y) {
			return fmt.Errorf(
				"Table2D '%s' has %d Values, but len(X) = %d and len(Y) = %d.",
				name, len(con.Values), len(con.X), len(con.Y),
			)
		}
		return nil
	}

	if len(con.Values) != 0 {
		return fmt.Errorf(
			"Table2D '%s' sets both File and inline Values.", name,
		)
	}

	con.File = resolvePath(dir, con.File)
	return nil
}

// Samples returns the grid lines and surface of the table, reading the
// surface from File if necessary. The surface is indexed as vals[ix][iy].
func (con *Table2DConfig) Samples() (xs, ys []float64, vals [][]float64, err error) {
	if con.File == "" {
		vals = make([][]float64, len(con.X))
		ny := len(con.Y)
		for i := range vals {
			vals[i] = con.Values[i*ny : (i+1)*ny]
		}
		return con.X, con.Y, vals, nil
	}

	vals, err = ReadGrid(con.File, len(con.X), len(con.Y))
	if err != nil {
		return nil, nil, nil, err
	}
	return con.X, con.Y, vals, nil
}

// TableConfig is the contents of a table config file.
type TableConfig struct {
	Table1D map[string]*Table1DConfig
	Table2D map[string]*Table2DConfig
}

// ReadConfig reads and validates the table config file fname. Data for
// unknown sections or variables is logged and otherwise ignored.
func ReadConfig(fname string) (*TableConfig, error) {
	con := &TableConfig{}

	err := gcfg.ReadFileInto(con, fname)
	for _, w := range warnings.WarningsOnly(err) {
		log.Printf("Ignoring data in '%s': %s", fname, w.Error())
	}
	if err = warnings.FatalOnly(err); err != nil {
		return nil, err
	}

	if err = con.CheckInit(filepath.Dir(fname)); err != nil {
		return nil, err
	}
	return con, nil
}

// CheckInit validates every table in the config. Relative file paths are
// resolved against dir.
func (con *TableConfig) CheckInit(dir string) error {
	if len(con.Table1D) == 0 && len(con.Table2D) == 0 {
		return fmt.Errorf("Config does not contain any tables.")
	}

	for _, name := range sortedKeys1D(con.Table1D) {
		if err := con.Table1D[name].CheckInit(name, dir); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys2D(con.Table2D) {
		if err := con.Table2D[name].CheckInit(name, dir); err != nil {
			return err
		}
	}

	return nil
}

func resolvePath(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

func sortedKeys1D(m map[string]*Table1DConfig) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys2D(m map[string]*Table2DConfig) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
