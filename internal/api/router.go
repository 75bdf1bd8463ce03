package api

import (
	"net/http"
	"traveler-service/internal/api/handlers"
	"traveler-service/internal/ports"
	"traveler-service/internal/services"

	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.PlaceRepository, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	resolver := services.NewResolver(repo)
	distanceHandler := &handlers.DistanceHandler{Resolver: resolver}
	placeHandler := &handlers.PlaceHandler{Repo: repo, Resolver: resolver}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/distance", distanceHandler.Distance)
	mux.HandleFunc("/destination", distanceHandler.Destination)
	mux.HandleFunc("/places", placeHandler.Places)
	mux.HandleFunc("/places/nearest", placeHandler.Nearest)

	return requestIDMiddleware(logger, loggingMiddleware(mux))
}
