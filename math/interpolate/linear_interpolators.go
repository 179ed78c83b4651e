package interpolate

import (
	"math"
)

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a cached 1D linear lookup table. Queries outside the range of its
// breakpoints are clamped to the boundary values.
//
// Eval writes to the table's cache, so a Linear must not be used by more than
// one goroutine at a time. Use Ref to give each goroutine its own cache.
type Linear struct {
	xs    searcher
	vals  []float64
	cache *cache
}

// NewLinear creates a linear lookup table for a sequence of strictly
// increasing points, xs, which take on the values given by vals. The table
// keeps its own copies of xs and vals.
//
// Lookups will occur in O(log |xs|), or O(1) if the points are evenly spaced
// or the query has been seen before.
func NewLinear(xs, vals []float64) (*Linear, error) {
	return newLinear(copyFloats(xs), copyFloats(vals))
}

// NewLinearView is identical to NewLinear, except that the table references
// xs and vals directly instead of copying them.
//
// xs and vals must not be modified throughout the lifetime of the Linear.
func NewLinearView(xs, vals []float64) (*Linear, error) {
	return newLinear(xs, vals)
}

// NewUniformLinear creates a linear lookup table where a uniformly spaced
// sequence of x values starting at x0 and separated by dx take the values
// given by vals.
func NewUniformLinear(x0, dx float64, vals []float64) (*Linear, error) {
	return newLinear(uniformPoints(x0, dx, len(vals)), copyFloats(vals))
}

func newLinear(xs, vals []float64) (*Linear, error) {
	if err := Validate1D(xs, vals); err != nil {
		return nil, err
	}
	lin := &Linear{vals: vals, cache: newCache()}
	lin.xs.init(xs)
	return lin, nil
}

// Eval returns the interpolated value at x. Values of x below the first
// breakpoint or above the last breakpoint return the first or last value,
// respectively. A NaN x returns NaN.
func (lin *Linear) Eval(x float64) float64 {
	if x < lin.xs.x0 {
		return lin.vals[0]
	} else if x > lin.xs.lim {
		return lin.vals[len(lin.vals)-1]
	} else if math.IsNaN(x) {
		return x
	}

	val, key, ok := lin.cache.get(x)
	if ok {
		return val
	}

	i1, i2 := lin.xs.bracket(x)
	if i1 == i2 {
		val = lin.vals[i1]
	} else {
		x1, x2 := lin.xs.val(i1), lin.xs.val(i2)
		v1, v2 := lin.vals[i1], lin.vals[i2]
		alpha := (x - x1) / (x2 - x1)
		val = v1 + alpha*(v2-v1)
	}

	lin.cache.put(key, val)
	return val
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

// Ref returns a Linear which shares lin's samples but has an empty cache of
// its own.
func (lin *Linear) Ref() Interpolator {
	return &Linear{xs: lin.xs, vals: lin.vals, cache: newCache()}
}

// Stats returns the current state of the cache.
func (lin *Linear) Stats() CacheStats { return lin.cache.stats() }

// Points returns the breakpoints and values of the table. The returned slices
// must not be modified.
func (lin *Linear) Points() (xs, vals []float64) { return lin.xs.xs, lin.vals }

/////////////////////////////
// BiLinear Implementation //
/////////////////////////////

// BiLinear is a cached bi-linear lookup table. Each axis of a query is
// clamped independently to the range of that axis's grid lines.
//
// Eval writes to the table's cache, so a BiLinear must not be used by more
// than one goroutine at a time. Use Ref to give each goroutine its own cache.
type BiLinear struct {
	xs, ys searcher
	vals   [][]float64
	cache  *biCache
}

// NewBiLinear creates a bi-linear lookup table on top of a grid with the
// values given by vals. The values of the x and y grid lines are given by xs
// and ys. The vals grid is indexed as vals[ix][iy], so it has len(xs) rows of
// len(ys) values each. The table keeps its own copies of all three inputs.
func NewBiLinear(xs, ys []float64, vals [][]float64) (*BiLinear, error) {
	return newBiLinear(copyFloats(xs), copyFloats(ys), copyGrid(vals))
}

// NewBiLinearView is identical to NewBiLinear, except that the table
// references xs, ys, and vals directly instead of copying them.
//
// None of the inputs may be modified throughout the lifetime of the BiLinear.
func NewBiLinearView(xs, ys []float64, vals [][]float64) (*BiLinear, error) {
	return newBiLinear(xs, ys, vals)
}

// NewUniformBiLinear creates a bi-linear lookup table on top of a uniform
// grid with the values given by vals. The x and y grid lines start at x0 and
// y0 and increase with steps of dx and dy, respectively. vals is indexed as in
// NewBiLinear.
func NewUniformBiLinear(
	x0, dx, y0, dy float64, vals [][]float64,
) (*BiLinear, error) {
	ny := 0
	if len(vals) > 0 {
		ny = len(vals[0])
	}
	xs := uniformPoints(x0, dx, len(vals))
	ys := uniformPoints(y0, dy, ny)
	return newBiLinear(xs, ys, copyGrid(vals))
}

func newBiLinear(xs, ys []float64, vals [][]float64) (*BiLinear, error) {
	if err := Validate2D(xs, ys, vals); err != nil {
		return nil, err
	}
	bi := &BiLinear{vals: vals, cache: newBiCache()}
	bi.xs.init(xs)
	bi.ys.init(ys)
	return bi, nil
}

// Eval evaluates the bi-linear interpolator at the coordinate (x, y). If
// either coordinate is NaN, NaN is returned.
func (bi *BiLinear) Eval(x, y float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN()
	}

	val, key, ok := bi.cache.get(x, y)
	if ok {
		return val
	}

	ix1, ix2 := bi.xs.bracket(x)
	iy1, iy2 := bi.ys.bracket(y)

	x1, x2 := bi.xs.val(ix1), bi.xs.val(ix2)
	y1, y2 := bi.ys.val(iy1), bi.ys.val(iy2)

	v11, v12 := bi.vals[ix1][iy1], bi.vals[ix1][iy2]
	v21, v22 := bi.vals[ix2][iy1], bi.vals[ix2][iy2]

	switch {
	case ix1 == ix2 && iy1 == iy2:
		val = v11
	case iy1 == iy2:
		alpha := (x - x1) / (x2 - x1)
		val = v11 + alpha*(v21-v11)
	case ix1 == ix2:
		alpha := (y - y1) / (y2 - y1)
		val = v11 + alpha*(v12-v11)
	default:
		ax := (x - x1) / (x2 - x1)
		ay := (y - y1) / (y2 - y1)
		vy1 := v11 + ax*(v21-v11)
		vy2 := v12 + ax*(v22-v12)
		val = vy1 + ay*(vy2-vy1)
	}

	bi.cache.put(key, val)
	return val
}

// EvalAll evaluates the interpolator at all the given (x, y) values. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (bi *BiLinear) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i := range xs {
		out[0][i] = bi.Eval(xs[i], ys[i])
	}
	return out[0]
}

// Ref returns a BiLinear which shares bi's samples but has an empty cache of
// its own.
func (bi *BiLinear) Ref() BiInterpolator {
	return &BiLinear{xs: bi.xs, ys: bi.ys, vals: bi.vals, cache: newBiCache()}
}

// Stats returns the current state of the cache.
func (bi *BiLinear) Stats() CacheStats { return bi.cache.stats() }

// Grid returns the grid lines and surface of the table. The returned slices
// must not be modified.
func (bi *BiLinear) Grid() (xs, ys []float64, vals [][]float64) {
	return bi.xs.xs, bi.ys.xs, bi.vals
}

func copyFloats(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}

// copyGrid deep-copies vals into a single contiguous block.
func copyGrid(vals [][]float64) [][]float64 {
	n := 0
	for i := range vals {
		n += len(vals[i])
	}
	block := make([]float64, n)
	out := make([][]float64, len(vals))
	start := 0
	for i := range vals {
		end := start + len(vals[i])
		out[i] = block[start:end:end]
		copy(out[i], vals[i])
		start = end
	}
	return out
}

func uniformPoints(x0, dx float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
	}
	return xs
}
