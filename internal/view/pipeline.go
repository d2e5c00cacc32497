// Package view turns filter selections into render-ready view models.
package view

import (
	"time"

	"github.com/sells-group/stemmap/internal/dataset"
	"github.com/sells-group/stemmap/internal/declutter"
	"github.com/sells-group/stemmap/internal/metrics"
	"github.com/sells-group/stemmap/internal/model"
	"github.com/sells-group/stemmap/internal/region"
)

// AllCategories is the category filter value that keeps every record.
const AllCategories = "Todos los campos"

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCache caches category filter results. A nil cache disables caching.
func WithCache(c *SubsetCache) Option {
	return func(p *Pipeline) {
		p.cache = c
	}
}

// WithMetrics records computations in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// Pipeline computes view models from a loaded dataset and region registry.
// It keeps no state between computations and is safe for concurrent use.
type Pipeline struct {
	store   *dataset.Store
	regions *region.Registry
	engine  *declutter.Engine
	cache   *SubsetCache
	metrics *metrics.Metrics
}

// New creates a Pipeline.
func New(store *dataset.Store, regions *region.Registry, engine *declutter.Engine, opts ...Option) *Pipeline {
	p := &Pipeline{store: store, regions: regions, engine: engine}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Compute filters by category (AllCategories keeps everything, otherwise exact
// match), resolves the region (unknown names fall back to the default view),
// declutters the matches at the region's zoom, and assembles the view model.
// It never fails: an unknown category simply yields no points.
func (p *Pipeline) Compute(category, regionName string) model.ViewModel {
	start := time.Now()

	reg, fellBack := p.regions.Resolve(regionName)
	records := p.engine.Apply(p.subset(category), reg.Zoom)

	vm := model.ViewModel{
		Center:         reg.Center,
		Zoom:           reg.Zoom,
		Region:         reg.Name,
		Category:       category,
		DatasetVersion: p.store.Version(),
		Points:         make([]model.Point, 0, len(records)),
		CompanionList:  make([]model.CompanionEntry, 0, len(records)),
	}
	for _, r := range records {
		vm.Points = append(vm.Points, model.Point{
			Lat:     r.Latitude,
			Lon:     r.Longitude,
			Color:   r.Color,
			Label:   r.Name,
			Tooltip: FormatTooltip(r),
			Link:    r.Contact,
		})
		vm.CompanionList = append(vm.CompanionList, model.CompanionEntry{
			Name:        r.Name,
			Achievement: r.Achievement,
		})
	}

	p.metrics.ObserveView(len(vm.Points), fellBack, time.Since(start))
	return vm
}

// subset returns copies of the records matching category, in load order.
func (p *Pipeline) subset(category string) []model.Entity {
	if category == AllCategories {
		return p.store.Records()
	}
	if p.cache != nil {
		if idx, ok := p.cache.Get(category); ok {
			return p.store.Select(idx)
		}
	}
	idx := p.store.MatchCategory(category)
	if p.cache != nil {
		p.cache.Put(category, idx)
	}
	return p.store.Select(idx)
}

// CategoryOptions returns the category selector values: every distinct
// category in load order, then AllCategories.
func (p *Pipeline) CategoryOptions() []string {
	return append(p.store.Categories(), AllCategories)
}

// Regions returns the region selector entries, default first.
func (p *Pipeline) Regions() []model.Region {
	return p.regions.Options()
}

// DefaultRegion returns the name of the all-regions view.
func (p *Pipeline) DefaultRegion() string {
	return p.regions.Default().Name
}

// DatasetVersion identifies the loaded dataset content.
func (p *Pipeline) DatasetVersion() string {
	return p.store.Version()
}

// CacheStats reports subset cache statistics; ok is false when caching is off.
func (p *Pipeline) CacheStats() (stats CacheStats, ok bool) {
	if p.cache == nil {
		return CacheStats{}, false
	}
	return p.cache.Stats(), true
}
