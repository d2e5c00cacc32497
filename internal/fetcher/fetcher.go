// Package fetcher opens dataset sources (local files, HTTP, FTP) and parses
// them into tables from CSV, XLSX, and JSON.
package fetcher

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// Fetcher defines the interface for reading a remote or local resource.
type Fetcher interface {
	// Download fetches the location and returns its body.
	Download(ctx context.Context, location string) (io.ReadCloser, error)
}

// Table is a parsed tabular source: one header row and the data rows below it.
// Rows may be shorter or longer than Header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Router dispatches to a Fetcher by URL scheme. Locations without a scheme,
// or with file://, are read from the local filesystem.
type Router struct {
	HTTP Fetcher
	FTP  Fetcher
}

// NewRouter creates a Router with default HTTP and FTP fetchers.
func NewRouter(httpOpts HTTPOptions, ftpOpts FTPOptions) *Router {
	return &Router{
		HTTP: NewHTTPFetcher(httpOpts),
		FTP:  NewFTPFetcher(ftpOpts),
	}
}

// Download opens the location using the fetcher for its scheme.
func (r *Router) Download(ctx context.Context, location string) (io.ReadCloser, error) {
	switch Scheme(location) {
	case "http", "https":
		if r.HTTP == nil {
			return nil, eris.New("fetch: no http fetcher configured")
		}
		return r.HTTP.Download(ctx, location)
	case "ftp":
		if r.FTP == nil {
			return nil, eris.New("fetch: no ftp fetcher configured")
		}
		return r.FTP.Download(ctx, location)
	case "", "file":
		f, err := os.Open(LocalPath(location))
		if err != nil {
			return nil, eris.Wrap(err, "fetch: open local file")
		}
		return f, nil
	default:
		return nil, eris.Errorf("fetch: unsupported scheme in %q", location)
	}
}

// Scheme returns the lowercased URL scheme of location, or "" for plain paths.
// Windows drive letters ("C:\data.csv") are treated as plain paths.
func Scheme(location string) string {
	i := strings.Index(location, "://")
	if i <= 1 {
		return ""
	}
	return strings.ToLower(location[:i])
}

// LocalPath strips a file:// prefix.
func LocalPath(location string) string {
	if Scheme(location) != "file" {
		return location
	}
	u, err := url.Parse(location)
	if err != nil || u.Path == "" {
		return location[len("file://"):]
	}
	return u.Path
}

// IsRemote reports whether location needs a network fetcher.
func IsRemote(location string) bool {
	s := Scheme(location)
	return s != "" && s != "file"
}
