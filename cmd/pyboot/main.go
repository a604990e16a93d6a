// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pyboot CLI: a two-step bootstrap
// that installs Python dependencies from a requirements manifest and then
// launches the sibling convert_images.py script.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pyboot/internal/bootstrap"
	"github.com/pdiddy/pyboot/internal/envdir"
	"github.com/pdiddy/pyboot/internal/interpreter"
	"github.com/pdiddy/pyboot/internal/journal"
	"github.com/pdiddy/pyboot/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedEnv holds "KEY=value" overrides loaded from the env directory at
// startup; they are appended to the environment of both child processes.
var loadedEnv []string

// rootCmd is the base command. Invoked bare it performs the full
// bootstrap: install, then launch.
var rootCmd = &cobra.Command{
	Use:   "pyboot",
	Short: "Install Python dependencies and launch convert_images.py",
	Long: `pyboot prepares the environment for the image conversion tool and starts it.

Run with no arguments it performs both steps in order: install every
dependency listed in the requirements manifest through pip, then locate
convert_images.py next to the pyboot executable and run it. A failed
install aborts the run; the launch step never executes.

Each step is also available as a subcommand: setup installs only, launch
runs the target only. deps inspects the manifest and history shows past
runs from the journal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		vars, err := envdir.Load(viper.GetString("env_dir"))
		if err != nil {
			return err
		}
		loadedEnv = envdir.Environ(vars)
		if len(vars) > 0 {
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded environment overrides: %v\n", keys)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		py, err := pickInterpreter(cfg)
		if err != nil {
			return err
		}

		opts := bootstrap.RunOptions{
			Manifest: cfg.Manifest,
			Target:   cfg.Target,
			Strict:   cfg.Strict,
			Env:      loadedEnv,
			Stdout:   os.Stdout,
			Stderr:   os.Stderr,
		}
		if store := openJournal(cfg); store != nil {
			defer store.Close()
			opts.Journal = store
		}
		return bootstrap.Run(py, opts)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pyboot.yaml or ~/.config/pyboot/config.yaml)")
	rootCmd.PersistentFlags().String("manifest", "requirements.txt", "pip requirements file")
	rootCmd.PersistentFlags().String("target", "", "launch target (default: convert_images.py next to the executable)")
	rootCmd.PersistentFlags().String("interpreter", "", "force a Python binary (default: python3, falling back to python)")
	rootCmd.PersistentFlags().Bool("strict", false, "treat a missing launch target as an error")

	viper.BindPFlag("manifest", rootCmd.PersistentFlags().Lookup("manifest"))
	viper.BindPFlag("target", rootCmd.PersistentFlags().Lookup("target"))
	viper.BindPFlag("interpreter", rootCmd.PersistentFlags().Lookup("interpreter"))
	viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pyboot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pyboot"))
		}
	}

	viper.SetDefault("env_dir", filepath.Join(".pyboot", "env"))
	viper.SetDefault("journal_dir", filepath.Join(".pyboot", "journal"))

	viper.SetEnvPrefix("PYBOOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig collects the effective configuration from viper (flags, env,
// and config file already merged).
func loadConfig() types.BootstrapConfig {
	return types.BootstrapConfig{
		Manifest:    viper.GetString("manifest"),
		Target:      viper.GetString("target"),
		Interpreter: viper.GetString("interpreter"),
		Strict:      viper.GetBool("strict"),
		EnvDir:      viper.GetString("env_dir"),
		JournalDir:  viper.GetString("journal_dir"),
	}
}

func pickInterpreter(cfg types.BootstrapConfig) (interpreter.Interpreter, error) {
	if cfg.Interpreter != "" {
		return interpreter.Select(cfg.Interpreter)
	}
	return interpreter.Detect()
}

// openJournal opens the run journal. An unavailable journal is a warning,
// never a reason to skip the bootstrap.
func openJournal(cfg types.BootstrapConfig) *journal.Store {
	store, err := journal.Open(cfg.JournalDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run journal unavailable: %v\n", err)
		return nil
	}
	return store
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
