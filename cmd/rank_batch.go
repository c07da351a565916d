package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KaramelBytes/nborank/internal/export"
	"github.com/KaramelBytes/nborank/internal/utils"
	"github.com/spf13/cobra"
)

var (
	rbSel    selection
	rbOutDir string
	rbExt    string
	rbQuiet  bool
)

var rankBatchCmd = &cobra.Command{
	Use:   "rank-batch <files...>",
	Short: "Rank several NBO tables with the same options, one export per file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := expandInputs(args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		ext := "." + strings.TrimPrefix(strings.ToLower(rbExt), ".")
		switch ext {
		case ".csv", ".tsv", ".xlsx":
		default:
			return fmt.Errorf("unsupported --ext: %s (use csv|tsv|xlsx)", rbExt)
		}
		if err := utils.EnsureDir(rbOutDir); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}

		out := cmd.OutOrStdout()
		taken := map[string]struct{}{}
		var errs []error
		total := len(files)
		for i, path := range files {
			if !rbQuiet {
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			res, err := rbSel.rankFile(cmd, path, false)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", path, err))
				if !rbQuiet {
					fmt.Fprintf(out, "⚠ Skipped %s: %s\n", filepath.Base(path), describeError(err))
				}
				continue
			}
			base := filepath.Base(path)
			safe := strings.TrimSuffix(base, filepath.Ext(base))
			dest := utils.UniquePath(filepath.Join(rbOutDir, safe+".ranked"+ext), taken)
			if err := export.WriteFile(dest, res.Table); err != nil {
				errs = append(errs, fmt.Errorf("%s: export: %w", path, err))
				if !rbQuiet {
					fmt.Fprintf(out, "⚠ Skipped %s: %s\n", filepath.Base(path), describeError(err))
				}
				continue
			}
			if !rbQuiet {
				fmt.Fprintf(out, "✓ %d of %d rows -> %s\n", res.Table.Len(), res.Loaded, dest)
			}
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d of %d files failed: %w", len(errs), total, errors.Join(errs...))
		}
		return nil
	},
}

// expandInputs resolves globs, keeps literal paths that exist, and drops
// duplicates. The result is sorted for stable processing order.
func expandInputs(args []string) []string {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			if _, err := os.Stat(arg); err == nil {
				matches = []string{arg}
			}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files
}

func init() {
	rootCmd.AddCommand(rankBatchCmd)
	rbSel.bind(rankBatchCmd, true)
	rankBatchCmd.Flags().StringVar(&rbOutDir, "out-dir", ".", "directory for <name>.ranked.<ext> exports")
	rankBatchCmd.Flags().StringVar(&rbExt, "ext", "csv", "export format: csv|tsv|xlsx")
	rankBatchCmd.Flags().BoolVar(&rbQuiet, "quiet", false, "suppress progress and non-essential output")
}
