package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdelhs/gsh/core/config"
)

// initCmd writes a default configuration file into the config directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path, err := config.WriteDefault(cfgPath)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
