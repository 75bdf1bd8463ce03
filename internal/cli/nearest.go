package cli

import (
	"errors"
	"strconv"
	"traveler-service/internal/output"
	"traveler-service/internal/services"

	"github.com/spf13/cobra"
)

type nearestPlacePayload struct {
	Name       string  `json:"name" yaml:"name"`
	Lat        float64 `json:"lat" yaml:"lat"`
	Lng        float64 `json:"lng" yaml:"lng"`
	DistanceKm float64 `json:"distance_km" yaml:"distance_km"`
}

type nearestPayload struct {
	From   pointPayload          `json:"from" yaml:"from"`
	Places []nearestPlacePayload `json:"places" yaml:"places"`
}

func newNearestCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "nearest <from>",
		Short: "List stored places ordered by distance from a coordinate.",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := flags.format()
			if err != nil {
				return err
			}
			if limit < 1 {
				return usageError(errors.New("--limit must be at least 1"))
			}
			from, err := parseWaypoint(args[0])
			if err != nil {
				return usageError(err)
			}
			if deps.Resolver == nil {
				return errors.New("nearest: resolver is not configured")
			}

			res, err := deps.Resolver.NearestPlaces(cmd.Context(), from, limit)
			if err != nil {
				return err
			}

			payload := nearestPayload{
				From:   newPointPayload(res.From),
				Places: make([]nearestPlacePayload, 0, len(res.Places)),
			}
			rows := []output.Row{{Key: "from", Value: pointLabel(res.From)}}
			for i, p := range res.Places {
				payload.Places = append(payload.Places, nearestPlacePayload{
					Name:       p.Place.Name,
					Lat:        p.Place.Location.Lat,
					Lng:        p.Place.Location.Lng,
					DistanceKm: p.Kilometers,
				})
				rows = append(rows, output.Row{
					Key:   strconv.Itoa(i + 1),
					Value: p.Place.Name + "  " + formatNumber(p.Kilometers) + " km",
				})
			}
			return render(cmd, format, payload, rows)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", services.DefaultNearestLimit, "Maximum number of places to list.")

	return cmd
}
