package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pyboot/internal/bootstrap"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install dependencies from the requirements manifest",
	Long: `Setup runs pip install against the requirements manifest through the
detected Python interpreter. The manifest is handed to pip verbatim; a
non-zero pip exit fails the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		py, err := pickInterpreter(cfg)
		if err != nil {
			return err
		}
		return bootstrap.Install(py, cfg.Manifest, loadedEnv, os.Stdout, os.Stderr)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
