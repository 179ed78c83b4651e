/*package interpolate implements cached 1D and 2D linear lookup tables.

Every table validates its samples at construction time and afterwards
evaluates as a total function: queries on a breakpoint return the stored
value exactly, queries inside the sampled domain are linearly interpolated,
and queries outside of it are clamped to the nearest boundary value.
*/
package interpolate

// Interpolator is a 1D lookup table. These interpolators all use caching, so
// they are not thread safe.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Ref creates a shallow copy of the interpolator with its own cache.
	// Each goroutine using the same interpolator must make a copy with Ref
	// first.
	Ref() Interpolator
	// Stats reports the state of the interpolator's cache.
	Stats() CacheStats
}

var (
	_ Interpolator = &Linear{}
)

// BiInterpolator is a 2D lookup table. These interpolators all use caching,
// so they are not thread safe.
type BiInterpolator interface {
	// Eval evaluates the interpolator at a point.
	Eval(x, y float64) float64
	// EvalAll evaluates a sequence of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs, ys []float64, out ...[]float64) []float64
	// Ref creates a shallow copy of the interpolator with its own cache.
	// Each goroutine using the same interpolator must make a copy with Ref
	// first.
	Ref() BiInterpolator
	// Stats reports the state of the interpolator's cache.
	Stats() CacheStats
}

var (
	_ BiInterpolator = &BiLinear{}
)
