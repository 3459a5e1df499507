package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/engine/composer"
)

func (c *CLI) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [name]",
		Short: "Print the environment of a declared dev shell",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "default"
			if len(args) == 1 {
				name = args[0]
			}

			env, err := c.app.Shell(cmd.Context(), ".", name)
			if err != nil {
				return err
			}

			for _, pair := range composer.Environ(env) {
				cmd.Println(pair)
			}
			return nil
		},
	}
}
