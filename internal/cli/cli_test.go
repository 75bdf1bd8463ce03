package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"traveler-service/internal/adapters/repositories"
	"traveler-service/internal/domain"
	"traveler-service/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testDeps(t *testing.T) Dependencies {
	t.Helper()

	repo := repositories.NewMemoryPlaceRepository()
	greenwich, err := domain.NewPlace("Greenwich", domain.LatLng{Lat: 51.4769, Lng: 0})
	require.NoError(t, err)
	require.NoError(t, repo.PutMany(context.Background(), []domain.Place{greenwich}))

	return Dependencies{Resolver: services.NewResolver(repo), Version: "1.2.3"}
}

func run(t *testing.T, deps Dependencies, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, deps, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestDistanceCommandJSON(t *testing.T) {
	code, out, errOut := run(t, testDeps(t), "distance", "0,0", "lat=0,lng=1", "--format", "json")
	require.Equal(t, 0, code, errOut)

	var payload distancePayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.InDelta(t, 111.194927, payload.DistanceKm, 1e-6)
	assert.Equal(t, 1.0, payload.To.Lng)
}

func TestDistanceCommandTableWithPlace(t *testing.T) {
	code, out, errOut := run(t, testDeps(t), "distance", "@greenwich", "51.4769,0")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "Greenwich (51.476900,0.000000)")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "distance_km  0"), out)
}

func TestDestinationCommandYAML(t *testing.T) {
	code, out, errOut := run(t, testDeps(t),
		"destination", "--bearing", "90", "--distance", "111.194927", "--format", "yaml", "--", "0,179.5")
	require.Equal(t, 0, code, errOut)

	var payload destinationPayload
	require.NoError(t, yaml.Unmarshal([]byte(out), &payload))
	assert.Equal(t, 90.0, payload.Bearing)
	assert.InDelta(t, -179.5, payload.To.Lng, 1e-6)
}

func TestExitCodes(t *testing.T) {
	deps := testDeps(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"malformed coordinate", []string{"distance", "1;2", "0,0"}, 2},
		{"not a number", []string{"distance", "abc,0", "0,0"}, 2},
		{"nan coordinate", []string{"distance", "NaN,0", "0,0"}, 2},
		{"unknown place", []string{"distance", "@atlantis", "0,0"}, 2},
		{"wrong arg count", []string{"distance", "0,0"}, 2},
		{"missing flags", []string{"destination", "0,0"}, 2},
		{"bad flag value", []string{"destination", "0,0", "--bearing", "north", "--distance", "1"}, 2},
		{"bad format", []string{"distance", "0,0", "0,1", "--format", "xml"}, 2},
		{"unknown key", []string{"distance", "lat=0,lon=1", "0,0"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, deps, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, testDeps(t), "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1.2.3\n", out)
}

func TestParseWaypoint(t *testing.T) {
	w, err := parseWaypoint(" -33.8688 , 151.2093 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Pair{-33.8688, 151.2093}, w.Coordinate)

	w, err = parseWaypoint("lng=2,LAT=1")
	require.NoError(t, err)
	assert.Equal(t, domain.LatLng{Lat: 1, Lng: 2}, w.Coordinate)

	w, err = parseWaypoint("@Null Island")
	require.NoError(t, err)
	assert.Equal(t, "Null Island", w.Place)

	for _, bad := range []string{"", "@", "1,2,3", "lat=1", "lat=1,2"} {
		_, err := parseWaypoint(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidCoordinate, "input %q", bad)
	}
}

func TestNearestCommand(t *testing.T) {
	code, out, errOut := run(t, testDeps(t), "nearest", "51.5,0", "--limit", "1", "--format", "json")
	require.Equal(t, 0, code, errOut)

	var payload nearestPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Places, 1)
	assert.Equal(t, "Greenwich", payload.Places[0].Name)

	code, _, _ = run(t, testDeps(t), "nearest", "51.5,0", "--limit", "0")
	assert.Equal(t, 2, code)
}
