// Package region holds the static set of named map views.
package region

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/stemmap/internal/model"
)

// All is the name of the built-in whole-country view.
const All = "Todos"

// Registry maps region names to map views. It is read-only after construction
// and safe for concurrent use.
type Registry struct {
	def     model.Region
	byName  map[string]model.Region
	ordered []model.Region
}

// New builds a Registry. defaultName must name one of regions; it is the view
// used when no region filter applies or the requested one is unknown.
func New(defaultName string, regions []model.Region) (*Registry, error) {
	if len(regions) == 0 {
		return nil, eris.New("region: no regions configured")
	}

	r := &Registry{byName: make(map[string]model.Region, len(regions))}
	for i, reg := range regions {
		if err := validate(reg); err != nil {
			return nil, eris.Wrapf(err, "region: entry %d", i)
		}
		if _, dup := r.byName[reg.Name]; dup {
			return nil, eris.Errorf("region: duplicate name %q", reg.Name)
		}
		r.byName[reg.Name] = reg
	}

	def, ok := r.byName[defaultName]
	if !ok {
		return nil, eris.Errorf("region: default %q is not a configured region", defaultName)
	}
	r.def = def

	// Default first, then declaration order.
	r.ordered = append(r.ordered, def)
	for _, reg := range regions {
		if reg.Name != def.Name {
			r.ordered = append(r.ordered, reg)
		}
	}
	return r, nil
}

func validate(reg model.Region) error {
	if strings.TrimSpace(reg.Name) == "" {
		return eris.New("name is required")
	}
	if math.IsNaN(reg.Center.Lat) || reg.Center.Lat < -90 || reg.Center.Lat > 90 {
		return eris.Errorf("%q: latitude %v out of range", reg.Name, reg.Center.Lat)
	}
	if math.IsNaN(reg.Center.Lon) || reg.Center.Lon < -180 || reg.Center.Lon > 180 {
		return eris.Errorf("%q: longitude %v out of range", reg.Name, reg.Center.Lon)
	}
	if math.IsNaN(reg.Zoom) || reg.Zoom < 0 {
		return eris.Errorf("%q: zoom %v must be non-negative", reg.Name, reg.Zoom)
	}
	return nil
}

// Default returns the all-regions view.
func (r *Registry) Default() model.Region {
	return r.def
}

// Lookup returns the region with the exact given name.
func (r *Registry) Lookup(name string) (model.Region, bool) {
	reg, ok := r.byName[name]
	return reg, ok
}

// Resolve returns the named region, or the default when the name is unknown.
// The boolean reports whether the fallback was taken.
func (r *Registry) Resolve(name string) (model.Region, bool) {
	if reg, ok := r.byName[name]; ok {
		return reg, false
	}
	return r.def, true
}

// Options returns all regions, default first, for building a selector.
func (r *Registry) Options() []model.Region {
	out := make([]model.Region, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of regions, including the default.
func (r *Registry) Len() int {
	return len(r.ordered)
}
