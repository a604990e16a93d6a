package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pyboot/internal/manifest"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Inspect the requirements manifest",
}

var depsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the parsed requirements",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		m, err := manifest.Load(cfg.Manifest)
		if err != nil {
			return err
		}

		for _, r := range m.Requirements {
			fmt.Printf("%-30s %s\n", r.Name, r.Constraint)
		}
		for _, o := range m.Options {
			fmt.Printf("%-30s (pip option)\n", o)
		}
		fmt.Printf("\n%d requirements, %d options in %s\n",
			len(m.Requirements), len(m.Options), m.Path)
		return nil
	},
}

var depsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the manifest exists and parses",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		m, err := manifest.Load(cfg.Manifest)
		if err != nil {
			return err
		}
		fmt.Printf("ok: %s (%d requirements, %d options)\n",
			m.Path, len(m.Requirements), len(m.Options))
		return nil
	},
}

var depsSnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write a YAML snapshot of the parsed manifest",
	Long: `Snapshot records the requirements a bootstrap would see right now: names,
constraints, and a digest of the raw file, so later edits are detectable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		out, _ := cmd.Flags().GetString("output")

		m, err := manifest.Load(cfg.Manifest)
		if err != nil {
			return err
		}
		if err := manifest.WriteSnapshot(out, m); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d requirements)\n", out, len(m.Requirements))
		return nil
	},
}

func init() {
	depsSnapshotCmd.Flags().StringP("output", "o", "requirements-snapshot.yaml", "snapshot output path")

	depsCmd.AddCommand(depsListCmd)
	depsCmd.AddCommand(depsCheckCmd)
	depsCmd.AddCommand(depsSnapshotCmd)
	rootCmd.AddCommand(depsCmd)
}
