package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package",
		Short: "Build the package for the current platform and patch its runtime paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := c.app.Package(cmd.Context(), ".")
			if err != nil {
				return err
			}
			cmd.Println(plan.OutputPath)
			return nil
		},
	}
}
