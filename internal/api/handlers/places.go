package handlers

import (
	"net/http"
	"traveler-service/internal/api/dto"
	"traveler-service/internal/domain"
	"traveler-service/internal/ports"
	"traveler-service/internal/services"
)

const maxNearestLimit = 100

// PlaceHandler lists, upserts and ranks named places.
type PlaceHandler struct {
	Repo     ports.PlaceRepository
	Resolver *services.Resolver
}

// Places dispatches GET (list) and PUT (upsert).
func (h *PlaceHandler) Places(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPut)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *PlaceHandler) list(w http.ResponseWriter, r *http.Request) {
	places, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		writeServiceError(w, r, "list places", err)
		return
	}

	res := dto.ListPlacesResponse{Places: make([]dto.PlaceResponse, 0, len(places))}
	for _, p := range places {
		res.Places = append(res.Places, placeResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlaceHandler) put(w http.ResponseWriter, r *http.Request) {
	var req dto.PutPlacesRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Places) == 0 {
		writeError(w, r, http.StatusBadRequest, "places must be non-empty")
		return
	}

	places := make([]domain.Place, 0, len(req.Places))
	for _, item := range req.Places {
		if item.Lat == nil || item.Lng == nil {
			writeError(w, r, http.StatusBadRequest, "place "+item.Name+": lat and lng are required")
			return
		}
		p, err := domain.NewPlace(item.Name, domain.LatLng{Lat: *item.Lat, Lng: *item.Lng})
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		places = append(places, p)
	}

	if err := h.Repo.PutMany(r.Context(), places); err != nil {
		writeServiceError(w, r, "put places", err)
		return
	}

	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name)
	}
	stored, err := h.Repo.GetMany(r.Context(), names)
	if err != nil {
		writeServiceError(w, r, "put places", err)
		return
	}

	res := dto.ListPlacesResponse{Places: make([]dto.PlaceResponse, 0, len(places))}
	for _, p := range places {
		if s, ok := stored[p.Key()]; ok {
			res.Places = append(res.Places, placeResponse(s))
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Nearest ranks stored places by distance from a waypoint.
func (h *PlaceHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.NearestRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.From == nil {
		writeError(w, r, http.StatusBadRequest, "from is required")
		return
	}
	if req.Limit < 0 || req.Limit > maxNearestLimit {
		writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	res, err := h.Resolver.NearestPlaces(r.Context(), req.From.Waypoint(), req.Limit)
	if err != nil {
		writeServiceError(w, r, "nearest places", err)
		return
	}

	out := dto.NearestResponse{
		From:   dto.NewPointResponse(res.From),
		Places: make([]dto.NearestPlaceResponse, 0, len(res.Places)),
	}
	for _, p := range res.Places {
		out.Places = append(out.Places, dto.NearestPlaceResponse{
			PlaceResponse: placeResponse(p.Place),
			DistanceKm:    p.Kilometers,
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}

func placeResponse(p domain.Place) dto.PlaceResponse {
	return dto.PlaceResponse{
		PlaceID:   p.PlaceID,
		Name:      p.Name,
		Lat:       p.Location.Lat,
		Lng:       p.Location.Lng,
		CreatedAt: p.CreatedAt,
	}
}
