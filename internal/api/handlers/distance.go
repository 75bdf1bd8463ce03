package handlers

import (
	"net/http"
	"traveler-service/internal/api/dto"
	"traveler-service/internal/services"
)

// DistanceHandler exposes great-circle distance and destination projection.
type DistanceHandler struct {
	Resolver *services.Resolver
}

// Distance returns the great-circle distance between two waypoints in kilometers.
func (h *DistanceHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.DistanceRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.From == nil || req.To == nil {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	res, err := h.Resolver.MeasureDistance(r.Context(), req.From.Waypoint(), req.To.Waypoint())
	if err != nil {
		writeServiceError(w, r, "distance", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		From:       dto.NewPointResponse(res.From),
		To:         dto.NewPointResponse(res.To),
		DistanceKm: res.Kilometers,
	})
}

// Destination projects a waypoint along a bearing for a distance in kilometers.
func (h *DistanceHandler) Destination(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.DestinationRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.From == nil || req.Bearing == nil || req.DistanceKm == nil {
		writeError(w, r, http.StatusBadRequest, "from, bearing and distance_km are required")
		return
	}

	res, err := h.Resolver.ProjectDestination(r.Context(), req.From.Waypoint(), *req.Bearing, *req.DistanceKm)
	if err != nil {
		writeServiceError(w, r, "destination", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DestinationResponse{
		From:       dto.NewPointResponse(res.From),
		Bearing:    res.Bearing,
		DistanceKm: res.DistanceKm,
		To:         dto.PointResponse{Lat: res.To.Lat, Lng: res.To.Lng},
	})
}
