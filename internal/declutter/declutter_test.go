package declutter

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/stemmap/internal/model"
)

// seqSource replays a fixed sequence of values, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func entity(name string, lat, lon float64) model.Entity {
	return model.Entity{Name: name, Latitude: lat, Longitude: lon}
}

func TestNew_Defaults(t *testing.T) {
	e := New(Options{})
	assert.InDelta(t, 0.01, e.Factor(5), 1e-12)
	assert.InDelta(t, 0.01, e.Factor(1), 1e-12)
	assert.InDelta(t, 0.001, e.Factor(5.5), 1e-12)
	assert.InDelta(t, 0.001, e.Factor(12), 1e-12)
}

func TestNew_CustomOptions(t *testing.T) {
	e := New(Options{CoarseFactor: 0.5, FineFactor: 0.05, ZoomThreshold: 8})
	assert.InDelta(t, 0.5, e.Factor(8), 1e-12)
	assert.InDelta(t, 0.05, e.Factor(9), 1e-12)
}

func TestApply_Empty(t *testing.T) {
	e := New(Options{})

	out := e.Apply(nil, 5)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out = e.Apply([]model.Entity{}, 12)
	assert.Empty(t, out)
}

func TestApply_UniqueCoordinatesUntouched(t *testing.T) {
	in := []model.Entity{
		entity("A", -16.5, -68.15),
		entity("B", -17.7833, -63.1823),
		entity("C", -21.5333, -64.7333),
		entity("D", -16.5, -68.16), // same latitude, different longitude
	}

	for _, zoom := range []float64{0, 5, 12} {
		out := New(Options{}).Apply(in, zoom)
		require.Len(t, out, len(in))
		for i := range in {
			assert.Equal(t, in[i], out[i], "zoom %v index %d", zoom, i)
		}
	}
}

func TestApply_GroupingBounds(t *testing.T) {
	in := []model.Entity{
		entity("A", -17.0, -65.0),
		entity("B", -17.0, -65.0),
		entity("C", -17.0, -65.0),
	}

	// Repeat with the real random source to exercise the bounds.
	for range 200 {
		out := New(Options{}).Apply(in, 5)
		require.Len(t, out, 3)

		assert.Equal(t, -17.0, out[0].Latitude)
		assert.Equal(t, -65.0, out[0].Longitude)

		assert.LessOrEqual(t, math.Abs(out[1].Latitude+17.0), 0.01)
		assert.LessOrEqual(t, math.Abs(out[1].Longitude+65.0), 0.01)

		assert.LessOrEqual(t, math.Abs(out[2].Latitude+17.0), 0.02)
		assert.LessOrEqual(t, math.Abs(out[2].Longitude+65.0), 0.02)
	}
}

func TestApply_DeterministicWithInjectedSource(t *testing.T) {
	in := []model.Entity{
		entity("A", -17.0, -65.0),
		entity("B", -17.0, -65.0),
		entity("C", -17.0, -65.0),
	}
	// Draws map to 2v-1: 1.0 -> +1, 0.0 -> -1, 0.75 -> +0.5, 0.25 -> -0.5.
	src := &seqSource{vals: []float64{1.0, 0.0, 0.75, 0.25}}

	out := New(Options{}, WithSource(src)).Apply(in, 5)

	assert.Equal(t, in[0], out[0])
	assert.InDelta(t, -17.0+0.01, out[1].Latitude, 1e-12)
	assert.InDelta(t, -65.0-0.01, out[1].Longitude, 1e-12)
	// Third record scales its draws by two.
	assert.InDelta(t, -17.0+0.01, out[2].Latitude, 1e-12)
	assert.InDelta(t, -65.0-0.01, out[2].Longitude, 1e-12)
	assert.Equal(t, 4, src.i, "two draws per displaced record")
}

func TestApply_FineFactorAboveThreshold(t *testing.T) {
	in := []model.Entity{
		entity("A", -16.5, -68.15),
		entity("B", -16.5, -68.15),
	}
	src := &seqSource{vals: []float64{1.0, 0.0}}

	out := New(Options{}, WithSource(src)).Apply(in, 12)

	assert.InDelta(t, -16.5+0.001, out[1].Latitude, 1e-12)
	assert.InDelta(t, -68.15-0.001, out[1].Longitude, 1e-12)
}

func TestApply_IndependentGroups(t *testing.T) {
	in := []model.Entity{
		entity("A", 1, 1),
		entity("B", 2, 2),
		entity("C", 1, 1),
		entity("D", 2, 2),
		entity("E", 3, 3),
	}
	src := &seqSource{vals: []float64{1.0}}

	out := New(Options{}, WithSource(src)).Apply(in, 5)

	// Each group restarts its counter, so both repeats move by exactly 1x factor.
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[1])
	assert.InDelta(t, 1.01, out[2].Latitude, 1e-12)
	assert.InDelta(t, 2.01, out[3].Latitude, 1e-12)
	assert.Equal(t, in[4], out[4])
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, names(out))
}

func TestApply_ZeroLongitudeGroups(t *testing.T) {
	in := []model.Entity{
		entity("A", -17.0, 0),
		entity("B", -17.0, 0),
	}
	src := &seqSource{vals: []float64{1.0, 1.0}}

	out := New(Options{}, WithSource(src)).Apply(in, 5)

	assert.Equal(t, in[0], out[0])
	assert.InDelta(t, -16.99, out[1].Latitude, 1e-12)
	assert.InDelta(t, 0.01, out[1].Longitude, 1e-12)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := []model.Entity{
		entity("A", -17.0, -65.0),
		entity("B", -17.0, -65.0),
	}
	snapshot := append([]model.Entity(nil), in...)

	_ = New(Options{}, WithSource(&seqSource{vals: []float64{0.9}})).Apply(in, 5)

	assert.Equal(t, snapshot, in)
}

func TestApply_PreservesNonCoordinateFields(t *testing.T) {
	in := []model.Entity{
		{Name: "A", Category: "Physics", Color: "red", Contact: "https://a", Latitude: 1, Longitude: 1},
		{Name: "B", Category: "Biology", Color: "blue", Contact: "https://b", Latitude: 1, Longitude: 1},
	}

	out := New(Options{}).Apply(in, 5)

	assert.Equal(t, "Biology", out[1].Category)
	assert.Equal(t, "blue", out[1].Color)
	assert.Equal(t, "https://b", out[1].Contact)
}

func TestApply_SeededRandSource(t *testing.T) {
	in := []model.Entity{
		entity("A", 0, 0),
		entity("B", 0, 0),
	}

	a := New(Options{}, WithSource(rand.New(rand.NewPCG(1, 2)))).Apply(in, 5)
	b := New(Options{}, WithSource(rand.New(rand.NewPCG(1, 2)))).Apply(in, 5)

	assert.Equal(t, a, b, "same seed yields same layout")
}

func names(es []model.Entity) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}
