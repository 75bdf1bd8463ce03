package services

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"traveler-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCoordinates = []domain.Pair{
	{0, 0},
	{51.5074, -0.1278},
	{40.7128, -74.0060},
	{-33.8688, 151.2093},
	{35.6762, 139.6503},
	{-54.8019, -68.3030},
	{64.1466, -21.9426},
	{1.3521, 103.8198},
}

func TestDistanceOneDegreeAtEquator(t *testing.T) {
	d, err := Distance(domain.LatLng{Lat: 0, Lng: 0}, domain.LatLng{Lat: 0, Lng: 1})
	require.NoError(t, err)
	assert.InDelta(t, 111.194926, d, 2e-6)
}

func TestDistanceKnownCities(t *testing.T) {
	// London -> Paris is roughly 343.5 km on a 6371 km sphere.
	d, err := Distance(domain.Pair{51.5074, -0.1278}, domain.Pair{48.8566, 2.3522})
	require.NoError(t, err)
	assert.InDelta(t, 343.5, d, 0.5)
}

func TestDistanceEncodingsAreEquivalent(t *testing.T) {
	fromPairs, err := Distance(domain.Pair{0, 0}, domain.Pair{0, 1})
	require.NoError(t, err)

	fromKeyed, err := Distance(domain.LatLng{Lat: 0, Lng: 0}, domain.LatLng{Lat: 0, Lng: 1})
	require.NoError(t, err)

	assert.Equal(t, fromPairs, fromKeyed)
}

func TestDistanceProperties(t *testing.T) {
	for _, a := range sampleCoordinates {
		self, err := Distance(a, a)
		require.NoError(t, err)
		assert.Equal(t, 0.0, self, "distance(%v, %v)", a, a)

		for _, b := range sampleCoordinates {
			ab, err := Distance(a, b)
			require.NoError(t, err)
			ba, err := Distance(b, a)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, ab, 0.0)
			assert.InDelta(t, ab, ba, 1e-6, "distance(%v, %v) not symmetric", a, b)
			assertPrecision(t, ab)
		}
	}
}

func TestDistanceAntipodal(t *testing.T) {
	d, err := Distance(domain.Pair{0, 0}, domain.Pair{0, 180})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
}

func TestDistanceNormalizesInputs(t *testing.T) {
	wrapped, err := Distance(domain.Pair{0, 0}, domain.Pair{0, 361})
	require.NoError(t, err)
	plain, err := Distance(domain.Pair{0, 0}, domain.Pair{0, 1})
	require.NoError(t, err)
	assert.Equal(t, plain, wrapped)

	clamped, err := Distance(domain.Pair{95, 0}, domain.Pair{90, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, clamped)
}

func TestDistanceRejectsInvalidCoordinates(t *testing.T) {
	_, err := Distance(domain.Pair{math.NaN(), 0}, domain.Pair{0, 0})
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)

	_, err = Distance(domain.Pair{0, 0}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)
}

func TestDestinationZeroDistanceReturnsStart(t *testing.T) {
	start := domain.Pair{95, 190}
	want, err := domain.Normalize(start)
	require.NoError(t, err)

	for b := 0.0; b < 360; b += 15 {
		got, err := Destination(start, b, 0)
		require.NoError(t, err)
		assert.InDelta(t, want.Lat, got.Lat, 1e-6, "bearing %v", b)
		assert.InDelta(t, want.Lng, got.Lng, 1e-6, "bearing %v", b)
	}
}

func TestDestinationRoundTrip(t *testing.T) {
	starts := []domain.Pair{
		{0, 0},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{45, 179.9},
		{-60, -179.95},
	}
	distances := []float64{0.5, 1, 10, 25}

	for _, c := range starts {
		for b := 0.0; b < 360; b += 30 {
			for _, d := range distances {
				dest, err := Destination(c, b, d)
				require.NoError(t, err)

				got, err := Distance(c, dest)
				require.NoError(t, err)
				assert.InDelta(t, d, got, 1e-4, "start %v bearing %v distance %v", c, b, d)
			}
		}
	}
}

func TestDestinationDueNorthAndEast(t *testing.T) {
	north, err := Destination(domain.LatLng{Lat: 0, Lng: 0}, 0, 111.194927)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, north.Lat, 1e-6)
	assert.InDelta(t, 0.0, north.Lng, 1e-6)

	east, err := Destination(domain.LatLng{Lat: 0, Lng: 0}, 90, 111.194927)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, east.Lat, 1e-6)
	assert.InDelta(t, 1.0, east.Lng, 1e-6)
}

func TestDestinationBearingIsWrapped(t *testing.T) {
	a, err := Destination(domain.Pair{10, 10}, 45, 100)
	require.NoError(t, err)
	b, err := Destination(domain.Pair{10, 10}, 45+720, 100)
	require.NoError(t, err)
	c, err := Destination(domain.Pair{10, 10}, 45-360, 100)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestDestinationNegativeDistanceReversesBearing(t *testing.T) {
	back, err := Destination(domain.Pair{20, 30}, 60, -50)
	require.NoError(t, err)
	opposite, err := Destination(domain.Pair{20, 30}, 240, 50)
	require.NoError(t, err)

	assert.InDelta(t, opposite.Lat, back.Lat, 1e-6)
	assert.InDelta(t, opposite.Lng, back.Lng, 1e-6)
}

func TestDestinationWrapsAcrossAntimeridian(t *testing.T) {
	dest, err := Destination(domain.Pair{0, 179.5}, 90, 111.194927)
	require.NoError(t, err)

	assert.InDelta(t, -179.5, dest.Lng, 1e-6)
	assert.GreaterOrEqual(t, dest.Lng, domain.MinLongitude)
	assert.LessOrEqual(t, dest.Lng, domain.MaxLongitude)
}

func TestDestinationPrecision(t *testing.T) {
	dest, err := Destination(domain.Pair{12.3456789, 98.7654321}, 123.456, 789.012)
	require.NoError(t, err)
	assertPrecision(t, dest.Lat)
	assertPrecision(t, dest.Lng)
}

func TestDestinationRejectsInvalidArguments(t *testing.T) {
	_, err := Destination(domain.Pair{0, math.NaN()}, 0, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinate)

	_, err = Destination(domain.Pair{0, 0}, math.Inf(1), 1)
	assert.ErrorIs(t, err, ErrInvalidBearing)

	_, err = Destination(domain.Pair{0, 0}, 0, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidDistance)
}

func TestSphereUsesInjectedRadius(t *testing.T) {
	unit := Sphere{RadiusKm: 1, Decimals: 3}
	d, err := unit.Distance(domain.Pair{0, 0}, domain.Pair{0, 90})
	require.NoError(t, err)
	assert.Equal(t, 1.571, d)
}

// assertPrecision checks that v has at most Precision fractional digits.
func assertPrecision(t *testing.T, v float64) {
	t.Helper()

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		assert.LessOrEqual(t, len(s)-i-1, Precision, "value %s has too many decimals", s)
	}
}
