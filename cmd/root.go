package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/abdelhs/gsh/core/config"
	"github.com/abdelhs/gsh/core/history"
	"github.com/abdelhs/gsh/core/shell"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	// No config file is fine, the built-in defaults apply.
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd starts the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "gsh",
	Short: "A small interactive shell",
	Long:  `gsh is an interactive shell with pipelines, I/O redirection and persistent command history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}
		if err := configuration.Validate(); err != nil {
			return err
		}

		osFs := afero.NewOsFs()
		hist := history.New(configuration.HistorySize)

		histPath, err := configuration.HistoryPath()
		if err == nil && histPath != "" {
			// A missing or unreadable history file is not fatal.
			_ = hist.LoadFile(osFs, histPath)
		}

		sh, err := shell.New(configuration, hist)
		if err != nil {
			return err
		}
		defer sh.Close()

		runErr := sh.Run()

		if histPath != "" {
			if err := hist.SaveFile(osFs, histPath); err != nil && runErr == nil {
				runErr = err
			}
		}

		return runErr
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
