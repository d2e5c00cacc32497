package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/stemmap/internal/fetcher"
)

func testLoader() *Loader {
	return NewLoader(fetcher.NewRouter(fetcher.HTTPOptions{
		Timeout:    5 * time.Second,
		MaxRetries: 1,
		RatePerSec: 100,
		BaseDelay:  time.Millisecond,
	}, fetcher.FTPOptions{}))
}

func TestLoad_CSVFile(t *testing.T) {
	s, err := testLoader().Load(context.Background(), SourceOptions{
		Location: filepath.Join("testdata", "mujeres_stem.csv"),
	})
	require.NoError(t, err)

	require.Equal(t, 5, s.Len())
	recs := s.Records()
	assert.Equal(t, "Ana Quispe", recs[0].Name)
	assert.Equal(t, "Universidad Mayor de San Andrés", recs[0].Institution)
	assert.Equal(t, "https://example.org/ana", recs[0].Contact)
	assert.Equal(t, "Elena Vargas", recs[4].Name)
	assert.Equal(t, Prism[4], recs[4].Color)
	assert.Equal(t, []string{"Física", "Biología", "Ingeniería", "Matemáticas"}, s.Categories())
}

func TestLoad_SemicolonDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("name;category;latitude;longitude\nA;Physics;-16.5;-68.15\n"), 0o644))

	s, err := testLoader().Load(context.Background(), SourceOptions{Location: path, Delimiter: ";"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestLoad_TSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	require.NoError(t, os.WriteFile(path, []byte("name\tcategory\tlatitude\nA\tPhysics\t-16.5\n"), 0o644))

	s, err := testLoader().Load(context.Background(), SourceOptions{Location: path})
	require.NoError(t, err)
	assert.Equal(t, "Physics", s.Records()[0].Category)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	body := `[{"name":"A","category":"Physics","latitude":-16.5,"longitude":-68.15},
	          {"name":"B","category":"Biology","latitude":-17.78,"longitude":-63.18}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := testLoader().Load(context.Background(), SourceOptions{Location: path, Palette: []string{"x"}})
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.InDelta(t, -63.18, s.Records()[1].Longitude, 1e-12)
	assert.Equal(t, "x", s.Records()[1].Color)
}

func writeXLSX(t *testing.T, path string, rows [][]string) {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Datos")
	require.NoError(t, err)
	for _, r := range rows {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().SetString(v)
		}
	}
	require.NoError(t, f.Save(path))
}

func TestLoad_XLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	writeXLSX(t, path, [][]string{
		{"Nombre", "Campo STEM", "Latitud", "Longitud"},
		{"A", "Physics", "-16.5", "-68.15"},
	})

	s, err := testLoader().Load(context.Background(), SourceOptions{Location: path, Sheet: "Datos"})
	require.NoError(t, err)
	assert.Equal(t, "A", s.Records()[0].Name)
}

func TestLoad_RemoteCSVAndXLSX(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "remote.xlsx")
	writeXLSX(t, xlsxPath, [][]string{
		{"name", "category", "latitude"},
		{"R", "Remote", "-20"},
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.csv":
			_, _ = w.Write([]byte("name,category,latitude\nA,Physics,-16.5\n"))
		case "/data.xlsx":
			http.ServeFile(w, r, xlsxPath)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := testLoader()
	l.tempDir = dir

	s, err := l.Load(context.Background(), SourceOptions{Location: srv.URL + "/data.csv"})
	require.NoError(t, err)
	assert.Equal(t, "A", s.Records()[0].Name)

	s, err = l.Load(context.Background(), SourceOptions{Location: srv.URL + "/data.xlsx?v=2"})
	require.NoError(t, err)
	assert.Equal(t, "Remote", s.Records()[0].Category)

	_, err = l.Load(context.Background(), SourceOptions{Location: srv.URL + "/missing.csv"})
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	l := testLoader()

	_, err := l.Load(context.Background(), SourceOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location is required")

	_, err = l.Load(context.Background(), SourceOptions{Location: "data.parquet", Format: "parquet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,category,latitude\nA,Physics,-16.5\nB,Physics,north\n"), 0o644))
	s, err := l.Load(context.Background(), SourceOptions{Location: path})
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "row 3")
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		location string
		explicit string
		want     string
	}{
		{"data.csv", "", FormatCSV},
		{"data.XLSX", "", FormatXLSX},
		{"data.json", "", FormatJSON},
		{"data.tsv", "", FormatTSV},
		{"data", "", FormatCSV},
		{"https://example.com/export.xlsx?token=abc", "", FormatXLSX},
		{"https://example.com/export?format=csv", "", FormatCSV},
		{"data.csv", " JSON ", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.location+"|"+tt.explicit, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.location, tt.explicit))
		})
	}
}
