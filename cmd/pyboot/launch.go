package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pyboot/internal/bootstrap"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Run convert_images.py without installing anything",
	Long: `Launch locates the target script next to the pyboot executable and runs
it through the Python interpreter, waiting for it to finish. When the
target is missing a message with the resolved path is printed; unless
--strict is set that still exits zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		py, err := pickInterpreter(cfg)
		if err != nil {
			return err
		}

		target := cfg.Target
		if target == "" {
			target, err = bootstrap.ResolveTarget()
			if err != nil {
				return err
			}
		}

		_, err = bootstrap.Launch(py, bootstrap.LaunchOptions{
			Target: target,
			Strict: cfg.Strict,
			Env:    loadedEnv,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(launchCmd)
}
