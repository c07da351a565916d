package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/nborank/internal/config"
	"github.com/KaramelBytes/nborank/internal/export"
	"github.com/KaramelBytes/nborank/internal/loader"
	"github.com/KaramelBytes/nborank/internal/rank"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set nborank configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config loaded")
			return nil
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "label_column: %s\n", cfg.LabelColumn)
		fmt.Fprintf(out, "energy_column: %s\n", cfg.EnergyColumn)
		fmt.Fprintf(out, "output_path: %s\n", cfg.OutputPath)
		fmt.Fprintf(out, "default_n: %d\n", cfg.DefaultN)
		fmt.Fprintf(out, "direction: %s\n", cfg.Direction)
		fmt.Fprintf(out, "default_exclude: %s\n", strings.Join(cfg.DefaultExclude, ","))
		fmt.Fprintf(out, "vocabulary: %s\n", strings.Join(cfg.Vocabulary, ","))
		if cfg.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %q\n", cfg.Delimiter)
		}
		fmt.Fprintf(out, "format: %s\n", cfg.Format)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "label_column":
			cfg.LabelColumn = strings.TrimSpace(val)
		case "energy_column":
			cfg.EnergyColumn = strings.TrimSpace(val)
		case "output_path":
			cfg.OutputPath = val
		case "default_n":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for default_n: %v", val)
			}
			cfg.DefaultN = i
		case "direction":
			d, err := rank.ParseDirection(val)
			if err != nil {
				return err
			}
			cfg.Direction = d.String()
		case "default_exclude":
			cfg.DefaultExclude = splitList(val)
		case "vocabulary":
			cfg.Vocabulary = splitList(val)
		case "delimiter":
			if _, err := loader.ParseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "format":
			f, err := export.ParseFormat(val)
			if err != nil {
				return err
			}
			cfg.Format = string(f)
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
