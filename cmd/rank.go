package cmd

import (
	"fmt"

	"github.com/KaramelBytes/nborank/internal/export"
	"github.com/KaramelBytes/nborank/internal/rank"
	"github.com/spf13/cobra"
)

var (
	rankSel      selection
	rankOutput   string
	rankNoExport bool
	rankFormat   string
	rankManifest string
	rankSummary  bool
)

var rankCmd = &cobra.Command{
	Use:   "rank <file>",
	Short: "Filter an NBO table and show/export the top or bottom rows by energy",
	Example: `  nborank rank nbo.csv --exclude CR,LP --top 10
  nborank rank nbo.xlsx -i BD --bottom 3 -o weakest.xlsx
  nborank rank nbo.csv -x RY* --format markdown --summary --no-export`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		format := c.Format
		if cmd.Flags().Changed("format") {
			format = rankFormat
		}
		f, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		res, err := rankSel.rankFile(cmd, args[0], rankSummary)
		if err != nil {
			return err
		}
		if err := export.Render(cmd.OutOrStdout(), res, f); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		stderr := cmd.ErrOrStderr()
		for _, w := range res.Warnings {
			fmt.Fprintf(stderr, "⚠ %s\n", w)
		}
		out := ""
		if !rankNoExport {
			out = rankOutput
			if out == "" {
				out = c.OutputPath
			}
			if out == "" {
				out = export.DefaultFileName
			}
			if err := export.WriteFile(out, res.Table); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(stderr, "✓ %s %d rows by %s saved to %s\n", titleDirection(res), res.Table.Len(), res.Table.Schema.EnergyColumn, out)
		}
		if rankManifest != "" {
			m := export.NewManifest(res, out)
			if err := m.Save(rankManifest); err != nil {
				return fmt.Errorf("manifest: %w", err)
			}
			fmt.Fprintf(stderr, "✓ Wrote run manifest %s (id %s)\n", rankManifest, m.ID)
		}
		return nil
	},
}

func titleDirection(res *export.Result) string {
	if res.Request.Direction == rank.Bottom {
		return "Bottom"
	}
	return "Top"
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankSel.bind(rankCmd, true)
	rankCmd.Flags().StringVarP(&rankOutput, "output", "o", "", "export path; .xlsx writes a workbook (default from config: top_sorted_result.csv)")
	rankCmd.Flags().BoolVar(&rankNoExport, "no-export", false, "only display the result, do not write a file")
	rankCmd.Flags().StringVarP(&rankFormat, "format", "f", "table", "display format: table|markdown|json|csv")
	rankCmd.Flags().StringVar(&rankManifest, "manifest", "", "optional path to write a YAML record of this run")
	rankCmd.Flags().BoolVar(&rankSummary, "summary", false, "include energy statistics of the filtered rows")
}
