package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadColumns reads two columns of the whitespace-separated text file fname
// and returns them as breakpoints and values.
func ReadColumns(fname string, xCol, yCol int) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}

// ReadGrid reads an nx x ny surface from the whitespace-separated text file
// fname. The file must have nx lines of ny columns, and the line index
// becomes the first index of the returned grid.
func ReadGrid(fname string, nx, ny int) ([][]float64, error) {
	colIdxs := make([]int, ny)
	for j := range colIdxs {
		colIdxs[j] = j
	}

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	for j := range cols {
		if len(cols[j]) != nx {
			return nil, fmt.Errorf(
				"Expected %d lines in '%s', but column %d has %d values.",
				nx, fname, j, len(cols[j]),
			)
		}
	}

	block := make([]float64, nx*ny)
	vals := make([][]float64, nx)
	for i := range vals {
		vals[i] = block[i*ny : (i+1)*ny]
		for j := range cols {
			vals[i][j] = cols[j][i]
		}
	}

	return vals, nil
}

// ReadPoints reads query points from the first dim columns of the
// whitespace-separated text file fname. The result is indexed by dimension,
// so points[0] holds every x coordinate.
func ReadPoints(fname string, dim int) (points [][]float64, err error) {
	if dim < 1 {
		return nil, fmt.Errorf("Points must have a positive dimension.")
	}

	colIdxs := make([]int, dim)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	return table.ReadTable(fname, colIdxs, nil)
}
