package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Package and verify the produced artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Check(cmd.Context(), "."); err != nil {
				return err
			}
			cmd.Println("ok")
			return nil
		},
	}
}
