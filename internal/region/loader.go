package region

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/stemmap/internal/model"
)

// fileConfig is the on-disk layout of a regions file:
//
//	regions:
//	  default: Todos
//	  entries:
//	    - name: La Paz
//	      lat: -16.5
//	      lon: -68.15
//	      zoom: 12
type fileConfig struct {
	Default string       `yaml:"default"`
	Entries []fileRegion `yaml:"entries"`
}

type fileRegion struct {
	Name  string  `yaml:"name"`
	Label string  `yaml:"label"`
	Lat   float64 `yaml:"lat"`
	Lon   float64 `yaml:"lon"`
	Zoom  float64 `yaml:"zoom"`
}

// LoadFile reads a regions YAML file. An empty path returns the built-in
// Bolivia registry.
func LoadFile(path string) (*Registry, error) {
	if path == "" {
		return Builtin(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "region: read %s", path)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "region: load %s", path)
	}

	zap.L().Info("region: loaded registry",
		zap.String("path", path),
		zap.Int("regions", r.Len()),
		zap.String("default", r.Default().Name),
	)
	return r, nil
}

// Parse builds a Registry from YAML bytes with a top-level "regions" key.
// A missing default falls back to All.
func Parse(data []byte) (*Registry, error) {
	var wrapper struct {
		Regions fileConfig `yaml:"regions"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "region: parse yaml")
	}

	cfg := wrapper.Regions
	if cfg.Default == "" {
		cfg.Default = All
	}

	regions := make([]model.Region, 0, len(cfg.Entries))
	for _, e := range cfg.Entries {
		regions = append(regions, model.Region{
			Name:   e.Name,
			Label:  e.Label,
			Center: model.Coordinate{Lat: e.Lat, Lon: e.Lon},
			Zoom:   e.Zoom,
		})
	}
	return New(cfg.Default, regions)
}
