package region

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegionsYAML = `
regions:
  default: Peru
  entries:
    - name: Lima
      lat: -12.0464
      lon: -77.0428
      zoom: 11
    - name: Peru
      label: Ver todo el Peru
      lat: -9.19
      lon: -75.0152
      zoom: 4.5
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(testRegionsYAML))
	require.NoError(t, err)

	assert.Equal(t, "Peru", r.Default().Name)
	assert.Equal(t, "Ver todo el Peru", r.Default().Label)
	assert.InDelta(t, 4.5, r.Default().Zoom, 1e-12)

	lima, ok := r.Lookup("Lima")
	require.True(t, ok)
	assert.InDelta(t, -12.0464, lima.Center.Lat, 1e-9)
	assert.InDelta(t, -77.0428, lima.Center.Lon, 1e-9)

	opts := r.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "Peru", opts[0].Name)
	assert.Equal(t, "Lima", opts[1].Name)
}

func TestParse_DefaultsToAll(t *testing.T) {
	yaml := `
regions:
  entries:
    - name: Todos
      lat: -17
      lon: -65
      zoom: 5
`
	r, err := Parse([]byte(yaml))
	require.NoError(t, err)
	assert.Equal(t, All, r.Default().Name)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("regions: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("regions:\n  default: Nowhere\n  entries:\n    - name: Lima\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nowhere")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRegionsYAML), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestLoadFile_EmptyPathUsesBuiltin(t *testing.T) {
	r, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, All, r.Default().Name)
	assert.Equal(t, 4, r.Len())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
