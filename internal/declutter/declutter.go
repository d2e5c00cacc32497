// Package declutter spreads apart map markers that share identical coordinates.
package declutter

import (
	"math/rand/v2"

	"github.com/sells-group/stemmap/internal/model"
)

// Default dispersion settings. The coarse factor applies to country-wide views,
// the fine factor to city views where markers sit much closer together.
const (
	DefaultCoarseFactor  = 0.01
	DefaultFineFactor    = 0.001
	DefaultZoomThreshold = 5.0
)

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from the auto-seeded, concurrency-safe top-level generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Options configures an Engine. Zero values fall back to the defaults.
type Options struct {
	CoarseFactor  float64
	FineFactor    float64
	ZoomThreshold float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource makes the engine draw offsets from src instead of math/rand/v2.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// Engine perturbs duplicate coordinates. It holds no per-call state and is safe
// for concurrent use as long as its Source is.
type Engine struct {
	opts Options
	src  Source
}

// New creates an Engine.
func New(opts Options, options ...Option) *Engine {
	if opts.CoarseFactor <= 0 {
		opts.CoarseFactor = DefaultCoarseFactor
	}
	if opts.FineFactor <= 0 {
		opts.FineFactor = DefaultFineFactor
	}
	if opts.ZoomThreshold <= 0 {
		opts.ZoomThreshold = DefaultZoomThreshold
	}
	e := &Engine{opts: opts, src: globalSource{}}
	for _, o := range options {
		o(e)
	}
	return e
}

// Factor returns the maximum per-step offset for the given zoom level.
func (e *Engine) Factor(zoom float64) float64 {
	if zoom <= e.opts.ZoomThreshold {
		return e.opts.CoarseFactor
	}
	return e.opts.FineFactor
}

// Apply returns a copy of records in the same order where every record after
// the first at a given (latitude, longitude) is displaced. The n-th repeat of
// a coordinate moves by a uniform draw from [-factor, +factor] scaled by n,
// drawn independently for latitude and longitude. Grouping uses exact
// coordinate equality and does not depend on zoom. Output varies between calls.
func (e *Engine) Apply(records []model.Entity, zoom float64) []model.Entity {
	out := make([]model.Entity, len(records))
	copy(out, records)

	factor := e.Factor(zoom)
	seen := make(map[model.Coordinate]int, len(out))
	for i := range out {
		key := out[i].Coordinate()
		n, ok := seen[key]
		if !ok {
			seen[key] = 0
			continue
		}
		n++
		seen[key] = n
		out[i].Latitude += e.uniform(factor) * float64(n)
		out[i].Longitude += e.uniform(factor) * float64(n)
	}
	return out
}

// uniform returns a value in [-factor, +factor).
func (e *Engine) uniform(factor float64) float64 {
	return (2*e.src.Float64() - 1) * factor
}
