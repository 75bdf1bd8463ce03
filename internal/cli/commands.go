package cli

import (
	"errors"
	"strconv"
	"traveler-service/internal/output"
	"traveler-service/internal/services"

	"github.com/spf13/cobra"
)

type pointPayload struct {
	Place string  `json:"place,omitempty" yaml:"place,omitempty"`
	Lat   float64 `json:"lat" yaml:"lat"`
	Lng   float64 `json:"lng" yaml:"lng"`
}

type distancePayload struct {
	From       pointPayload `json:"from" yaml:"from"`
	To         pointPayload `json:"to" yaml:"to"`
	DistanceKm float64      `json:"distance_km" yaml:"distance_km"`
}

type destinationPayload struct {
	From       pointPayload `json:"from" yaml:"from"`
	Bearing    float64      `json:"bearing" yaml:"bearing"`
	DistanceKm float64      `json:"distance_km" yaml:"distance_km"`
	To         pointPayload `json:"to" yaml:"to"`
}

func newPointPayload(p services.ResolvedPoint) pointPayload {
	return pointPayload{Place: p.Place, Lat: p.Location.Lat, Lng: p.Location.Lng}
}

func newDistanceCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <from> <to>",
		Short: "Great-circle distance between two coordinates in kilometers.",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := flags.format()
			if err != nil {
				return err
			}
			from, err := parseWaypoint(args[0])
			if err != nil {
				return usageError(err)
			}
			to, err := parseWaypoint(args[1])
			if err != nil {
				return usageError(err)
			}
			if deps.Resolver == nil {
				return errors.New("distance: resolver is not configured")
			}

			res, err := deps.Resolver.MeasureDistance(cmd.Context(), from, to)
			if err != nil {
				return err
			}

			payload := distancePayload{
				From:       newPointPayload(res.From),
				To:         newPointPayload(res.To),
				DistanceKm: res.Kilometers,
			}
			rows := []output.Row{
				{Key: "from", Value: pointLabel(res.From)},
				{Key: "to", Value: pointLabel(res.To)},
				{Key: "distance_km", Value: formatNumber(res.Kilometers)},
			}
			return render(cmd, format, payload, rows)
		},
	}
}

func newDestinationCommand(deps Dependencies, flags *globalFlags) *cobra.Command {
	var bearing, distanceKm float64

	cmd := &cobra.Command{
		Use:   "destination <from> --bearing DEG --distance KM",
		Short: "Project a coordinate along a bearing for a distance in kilometers.",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := flags.format()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("bearing") || !cmd.Flags().Changed("distance") {
				return usageError(errors.New(`flags "bearing" and "distance" are required`))
			}
			from, err := parseWaypoint(args[0])
			if err != nil {
				return usageError(err)
			}
			if deps.Resolver == nil {
				return errors.New("destination: resolver is not configured")
			}

			res, err := deps.Resolver.ProjectDestination(cmd.Context(), from, bearing, distanceKm)
			if err != nil {
				return err
			}

			payload := destinationPayload{
				From:       newPointPayload(res.From),
				Bearing:    res.Bearing,
				DistanceKm: res.DistanceKm,
				To:         pointPayload{Lat: res.To.Lat, Lng: res.To.Lng},
			}
			rows := []output.Row{
				{Key: "from", Value: pointLabel(res.From)},
				{Key: "bearing", Value: formatNumber(res.Bearing)},
				{Key: "distance_km", Value: formatNumber(res.DistanceKm)},
				{Key: "to", Value: res.To.String()},
			}
			return render(cmd, format, payload, rows)
		},
	}

	cmd.Flags().Float64Var(&bearing, "bearing", 0, "Bearing in degrees clockwise from north.")
	cmd.Flags().Float64Var(&distanceKm, "distance", 0, "Distance to travel in kilometers.")

	return cmd
}

// exactArgs is cobra.ExactArgs reported as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func render(cmd *cobra.Command, format output.Format, payload any, rows []output.Row) error {
	text, err := output.Render(format, payload, rows)
	if err != nil {
		return err
	}
	return output.Write(cmd.OutOrStdout(), text)
}

func pointLabel(p services.ResolvedPoint) string {
	if p.Place != "" {
		return p.Place + " (" + p.Location.String() + ")"
	}
	return p.Location.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
