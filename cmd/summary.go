package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/KaramelBytes/nborank/internal/loader"
	"github.com/KaramelBytes/nborank/internal/rank"
	"github.com/spf13/cobra"
)

var (
	sumSel  selection
	sumJSON bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Show energy statistics of the rows that survive filtering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := sumSel.loadOptions()
		if err != nil {
			return err
		}
		t, err := loader.LoadFile(args[0], opt)
		if err != nil {
			return err
		}
		filtered, err := rank.Filter(t, sumSel.filterSpec(cmd))
		if err != nil {
			return err
		}
		s, err := rank.Summarize(filtered)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if sumJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		}
		fmt.Fprintf(out, "rows: %d of %d\n", filtered.Len(), t.Len())
		fmt.Fprintf(out, "labels: %v\n", filtered.Labels())
		fmt.Fprintf(out, "max %s: %.4g\n", filtered.Schema.EnergyColumn, s.Max)
		fmt.Fprintf(out, "min %s: %.4g\n", filtered.Schema.EnergyColumn, s.Min)
		fmt.Fprintf(out, "mean: %.4g, median: %.4g, std: %.4g\n", s.Mean, s.Median, s.StdDev)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	sumSel.bind(summaryCmd, false)
	summaryCmd.Flags().BoolVar(&sumJSON, "json", false, "print statistics as JSON")
}
