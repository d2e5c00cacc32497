package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/stemmap/internal/config"
	"github.com/sells-group/stemmap/internal/dataset"
	"github.com/sells-group/stemmap/internal/declutter"
	"github.com/sells-group/stemmap/internal/fetcher"
	"github.com/sells-group/stemmap/internal/metrics"
	"github.com/sells-group/stemmap/internal/region"
	"github.com/sells-group/stemmap/internal/view"
)

// appEnv holds the loaded dataset, region registry, and the view pipeline
// needed by the serve/view/categories/validate commands.
type appEnv struct {
	Store    *dataset.Store
	Regions  *region.Registry
	Pipeline *view.Pipeline
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

// initApp validates c for mode, loads the dataset and the region registry
// concurrently, and builds the pipeline. Any load error aborts startup.
func initApp(ctx context.Context, c *config.Config, mode string) (*appEnv, error) {
	if err := c.Validate(mode); err != nil {
		return nil, err
	}

	var (
		store   *dataset.Store
		regions *region.Registry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := dataset.NewLoader(newFetcher(c.Fetch)).Load(gctx, sourceOptions(c.Dataset))
		if err != nil {
			return eris.Wrap(err, "load dataset")
		}
		store = s
		return nil
	})
	g.Go(func() error {
		r, err := region.LoadFile(c.Regions.Path)
		if err != nil {
			return eris.Wrap(err, "load regions")
		}
		regions = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.SetDatasetRecords(store.Len())

	engine := declutter.New(declutter.Options{
		CoarseFactor:  c.Declutter.CoarseFactor,
		FineFactor:    c.Declutter.FineFactor,
		ZoomThreshold: c.Declutter.ZoomThreshold,
	})

	p := view.New(store, regions, engine,
		view.WithCache(view.NewSubsetCache(c.Cache.MaxEntries)),
		view.WithMetrics(m),
	)

	zap.L().Info("app: ready",
		zap.Int("records", store.Len()),
		zap.Int("categories", len(store.Categories())),
		zap.Int("regions", regions.Len()),
		zap.String("dataset_version", store.Version()),
	)

	return &appEnv{
		Store:    store,
		Regions:  regions,
		Pipeline: p,
		Metrics:  m,
		Registry: reg,
	}, nil
}

func newFetcher(fc config.FetchConfig) fetcher.Fetcher {
	return fetcher.NewRouter(
		fetcher.HTTPOptions{
			UserAgent:  fc.UserAgent,
			Timeout:    time.Duration(fc.TimeoutSecs) * time.Second,
			MaxRetries: fc.MaxRetries,
			RatePerSec: fc.RatePerSec,
		},
		fetcher.FTPOptions{Timeout: time.Duration(fc.TimeoutSecs) * time.Second},
	)
}

func sourceOptions(dc config.DatasetConfig) dataset.SourceOptions {
	return dataset.SourceOptions{
		Location:  dc.Source,
		Format:    dc.Format,
		Sheet:     dc.Sheet,
		Delimiter: dc.Delimiter,
		Encoding:  dc.Encoding,
		Palette:   dc.Palette,
	}
}
