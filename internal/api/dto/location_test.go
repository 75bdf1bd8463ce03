package dto

import (
	"encoding/json"
	"testing"
	"traveler-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationUnmarshal(t *testing.T) {
	var l Location

	require.NoError(t, json.Unmarshal([]byte(`[12.5, -3]`), &l))
	assert.Equal(t, domain.Pair{12.5, -3}, l.Coordinate)
	assert.Empty(t, l.Place)

	require.NoError(t, json.Unmarshal([]byte(`{"lat": 1, "lng": 2}`), &l))
	assert.Equal(t, domain.LatLng{Lat: 1, Lng: 2}, l.Coordinate)

	require.NoError(t, json.Unmarshal([]byte(`{"place": "London"}`), &l))
	assert.Equal(t, "London", l.Place)
	assert.Nil(t, l.Coordinate)
}

func TestLocationUnmarshalRejectsMalformed(t *testing.T) {
	bad := []string{
		`null`,
		`"51.5,0.1"`,
		`[1]`,
		`[1, 2, 3]`,
		`["a", "b"]`,
		`{"lat": 1}`,
		`{"lat": 1, "lng": 2, "alt": 3}`,
		`{"place": "x", "lat": 1, "lng": 2}`,
		`{}`,
	}

	for _, in := range bad {
		var l Location
		assert.Error(t, json.Unmarshal([]byte(in), &l), "input %s", in)
	}
}
