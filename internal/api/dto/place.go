package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlaceResponse struct {
	PlaceID   uuid.UUID `json:"place_id"`
	Name      string    `json:"name"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	CreatedAt time.Time `json:"created_at"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

type PlaceRequest struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}

type PutPlacesRequest struct {
	Places []PlaceRequest `json:"places"`
}

type NearestRequest struct {
	From  *Location `json:"from"`
	Limit int       `json:"limit"`
}

type NearestPlaceResponse struct {
	PlaceResponse
	DistanceKm float64 `json:"distance_km"`
}

type NearestResponse struct {
	From   PointResponse          `json:"from"`
	Places []NearestPlaceResponse `json:"places"`
}
