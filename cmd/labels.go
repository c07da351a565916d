package cmd

import (
	"fmt"

	"github.com/KaramelBytes/nborank/internal/loader"
	"github.com/spf13/cobra"
)

var labelsSel selection

var labelsCmd = &cobra.Command{
	Use:   "labels [file]",
	Short: "List known orbital labels, or the labels present in a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, l := range effectiveConfig().Vocabulary {
				fmt.Fprintf(out, "- %s\n", l)
			}
			return nil
		}
		opt, err := labelsSel.loadOptions()
		if err != nil {
			return err
		}
		t, err := loader.LoadFile(args[0], opt)
		if err != nil {
			return err
		}
		counts := map[string]int{}
		for _, r := range t.Records {
			counts[r.Label]++
		}
		for _, l := range t.Labels() {
			fmt.Fprintf(out, "- %s (%d)\n", l, counts[l])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labelsCmd)
	f := labelsCmd.Flags()
	f.StringVar(&labelsSel.labelColumn, "label-column", "", "column holding the orbital label")
	f.StringVar(&labelsSel.energyColumn, "energy-column", "", "numeric energy column")
	f.StringVar(&labelsSel.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	f.StringVar(&labelsSel.sheet, "sheet", "", "XLSX: sheet name to read")
}
