package commands

import (
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/core/domain"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Evaluate build plans for every declared platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := c.app.Evaluate(cmd.Context(), ".")
			if err != nil {
				return err
			}

			platforms := make([]string, 0, len(results))
			for platform := range results {
				platforms = append(platforms, platform.String())
			}
			slices.Sort(platforms)

			var failed error
			for _, platform := range platforms {
				result := results[domain.Platform(platform)]
				if result.Err != nil {
					cmd.PrintErrln(platform + ": " + result.Err.Error())
					failed = result.Err
					continue
				}
				cmd.Println(platform + ": " + result.Plan.OutputPath)
			}
			return failed
		},
	}
}
