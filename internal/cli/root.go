package cli

import (
	"fmt"
	"strings"
	"traveler-service/internal/output"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type globalFlags struct {
	Format string
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.Format, "format", "table", "Output format: table, json, or yaml.")
}

func (g *globalFlags) format() (output.Format, error) {
	f, err := output.ParseFormat(g.Format)
	if err != nil {
		return "", usageError(err)
	}
	return f, nil
}

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	version := strings.TrimSpace(deps.Version)
	if version == "" {
		version = "dev"
	}

	root := &cobra.Command{
		Use:   "traveler",
		Short: "Great-circle distance and destination projection on a spherical Earth.",
		Long: `Great-circle distance and destination projection on a spherical Earth (R = 6371 km).

A coordinate argument is "lat,lng", "lat=..,lng=.." or "@place" for a stored place.
Put "--" before arguments that start with a minus sign.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s\n", version))
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := &globalFlags{}
	flags.register(root.PersistentFlags())

	root.AddCommand(newDistanceCommand(deps, flags))
	root.AddCommand(newDestinationCommand(deps, flags))
	root.AddCommand(newNearestCommand(deps, flags))

	return root
}
