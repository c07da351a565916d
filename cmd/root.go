package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/KaramelBytes/nborank/internal/config"
	"github.com/KaramelBytes/nborank/internal/logging"
	"github.com/KaramelBytes/nborank/internal/table"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "nborank",
	Short: "nborank: filter and rank NBO second-order perturbation tables",
	Long: `nborank loads a Natural Bond Orbital interaction table (CSV, TSV or XLSX),
drops rows whose orbital label matches excluded types, and shows or exports
the top-N or bottom-N rows ordered by stabilization energy (kcal/mol).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", describeError(err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.nborank/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	logging.Setup(os.Stderr, debug)
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = nil
		return
	}
	cfg = c
	slog.Debug("config loaded", "label_column", cfg.LabelColumn, "energy_column", cfg.EnergyColumn, "output_path", cfg.OutputPath)
}

// effectiveConfig returns the loaded config, or defaults when loading failed.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		LabelColumn:  table.DefaultLabelColumn,
		EnergyColumn: table.DefaultEnergyColumn,
		OutputPath:   "top_sorted_result.csv",
		DefaultN:     5,
		Direction:    "top",
		Vocabulary:   []string{"BD", "BD*", "CR", "LP", "LP*", "RY", "RY*"},
		Format:       "table",
	}
}

// describeError keeps validation and empty-result failures distinguishable
// for the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, table.ErrEmptyResult):
		return err.Error() + " (relax --exclude/--include and retry)"
	case table.IsValidation(err):
		return "invalid input: " + err.Error()
	default:
		return err.Error()
	}
}
