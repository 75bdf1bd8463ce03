package services

import (
	"context"
	"testing"
	"traveler-service/internal/adapters/repositories"
	"traveler-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestPlaces(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryPlaceRepository()

	var places []domain.Place
	for _, p := range []struct {
		name     string
		lat, lng float64
	}{
		{"Origin", 0, 0},
		{"East One", 0, 1},
		{"West One", 0, -1},
		{"North Two", 2, 0},
		{"Dateline", 0, 179},
	} {
		place, err := domain.NewPlace(p.name, domain.Pair{p.lat, p.lng})
		require.NoError(t, err)
		places = append(places, place)
	}
	require.NoError(t, repo.PutMany(ctx, places))

	r := NewResolver(repo)

	res, err := r.NearestPlaces(ctx, AtPlace("origin"), 3)
	require.NoError(t, err)
	require.Len(t, res.Places, 3)

	// East One and West One tie on distance; key order decides.
	assert.Equal(t, "East One", res.Places[0].Place.Name)
	assert.Equal(t, "West One", res.Places[1].Place.Name)
	assert.Equal(t, "North Two", res.Places[2].Place.Name)
	assert.InDelta(t, 111.194927, res.Places[0].Kilometers, 1e-6)

	// Across the antimeridian Dateline is the closest place.
	res, err = r.NearestPlaces(ctx, At(domain.Pair{0, -179.5}), 0)
	require.NoError(t, err)
	require.Len(t, res.Places, 5)
	assert.Equal(t, "Dateline", res.Places[0].Place.Name)
}

func TestNearestPlacesRequiresRepository(t *testing.T) {
	_, err := NewResolver(nil).NearestPlaces(context.Background(), At(domain.Pair{0, 0}), 1)
	assert.Error(t, err)
}
