package dataset

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/stemmap/internal/fetcher"
)

// Supported source formats.
const (
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// SourceOptions describes where the dataset lives and how to parse it.
type SourceOptions struct {
	Location  string   // path, file://, http(s)://, or ftp:// URL
	Format    string   // csv, tsv, xlsx, json; empty = by extension
	Sheet     string   // xlsx sheet name; empty = first sheet
	Delimiter string   // csv delimiter; empty = ","
	Encoding  string   // csv charset; empty = UTF-8
	Palette   []string // empty = Prism
}

// Loader reads a dataset source into a Store.
type Loader struct {
	fetch   fetcher.Fetcher
	tempDir string
}

// NewLoader creates a Loader that reads sources through f.
func NewLoader(f fetcher.Fetcher) *Loader {
	return &Loader{fetch: f, tempDir: os.TempDir()}
}

// Load reads, validates, and colors the dataset. The returned Store is
// complete; on any error nothing is returned.
func (l *Loader) Load(ctx context.Context, opts SourceOptions) (*Store, error) {
	if opts.Location == "" {
		return nil, eris.New("dataset: source location is required")
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = Prism
	}

	start := time.Now()
	format := DetectFormat(opts.Location, opts.Format)

	tbl, err := l.readTable(ctx, opts, format)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: read %s", opts.Location)
	}

	store, err := FromTable(tbl, palette)
	if err != nil {
		return nil, err
	}

	zap.L().Info("dataset: loaded",
		zap.String("source", opts.Location),
		zap.String("format", format),
		zap.Int("records", store.Len()),
		zap.Int("categories", len(store.Categories())),
		zap.String("version", store.Version()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return store, nil
}

func (l *Loader) readTable(ctx context.Context, opts SourceOptions, format string) (*fetcher.Table, error) {
	switch format {
	case FormatXLSX:
		return l.readXLSX(ctx, opts)
	case FormatCSV, FormatTSV, FormatJSON:
	default:
		return nil, eris.Errorf("unsupported format %q", format)
	}

	body, err := l.fetch.Download(ctx, opts.Location)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	if format == FormatJSON {
		return fetcher.ReadJSON(ctx, body)
	}

	csvOpts := fetcher.CSVOptions{Encoding: opts.Encoding, LazyQuotes: true}
	if format == FormatTSV {
		csvOpts.Delimiter = '\t'
	}
	if opts.Delimiter != "" {
		csvOpts.Delimiter = []rune(opts.Delimiter)[0]
	}
	return fetcher.ReadCSV(ctx, body, csvOpts)
}

// readXLSX reads a workbook; remote workbooks are downloaded to a temp file
// first because the xlsx reader needs random access.
func (l *Loader) readXLSX(ctx context.Context, opts SourceOptions) (*fetcher.Table, error) {
	xopts := fetcher.XLSXOptions{SheetName: opts.Sheet}
	if !fetcher.IsRemote(opts.Location) {
		return fetcher.ReadXLSX(fetcher.LocalPath(opts.Location), xopts)
	}

	tmp, err := os.CreateTemp(l.tempDir, "stemmap-*.xlsx")
	if err != nil {
		return nil, eris.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath) //nolint:errcheck

	n, err := fetcher.DownloadToFile(ctx, l.fetch, opts.Location, tmpPath)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("dataset: downloaded workbook", zap.String("source", opts.Location), zap.Int64("bytes", n))

	return fetcher.ReadXLSX(tmpPath, xopts)
}

// DetectFormat returns the explicit format if set, otherwise infers it from
// the location's extension, defaulting to csv.
func DetectFormat(location, explicit string) string {
	if f := strings.ToLower(strings.TrimSpace(explicit)); f != "" {
		return f
	}

	p := location
	if fetcher.IsRemote(location) {
		if u, err := url.Parse(location); err == nil {
			p = path.Clean(u.Path)
		}
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".xlsx":
		return FormatXLSX
	case ".json":
		return FormatJSON
	case ".tsv":
		return FormatTSV
	default:
		return FormatCSV
	}
}
