package dto

type DistanceRequest struct {
	From *Location `json:"from"`
	To   *Location `json:"to"`
}

type DistanceResponse struct {
	From       PointResponse `json:"from"`
	To         PointResponse `json:"to"`
	DistanceKm float64       `json:"distance_km"`
}

type DestinationRequest struct {
	From       *Location `json:"from"`
	Bearing    *float64  `json:"bearing"`
	DistanceKm *float64  `json:"distance_km"`
}

type DestinationResponse struct {
	From       PointResponse `json:"from"`
	Bearing    float64       `json:"bearing"`
	DistanceKm float64       `json:"distance_km"`
	To         PointResponse `json:"to"`
}
