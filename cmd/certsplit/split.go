package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PhycomEspol/SSC/internal/batch"
	"github.com/PhycomEspol/SSC/internal/namelist"
	"github.com/PhycomEspol/SSC/internal/pattern"
	"github.com/PhycomEspol/SSC/internal/split"
	"github.com/PhycomEspol/SSC/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split [pdf]",
	Short: "Split certificate PDFs into one named file per page",
	Long: `Split separates each page of a certificate PDF into its own file in the
output directory. With a PDF argument only that file is processed; without
one, every PDF in the input directory is processed in turn, old outputs are
purged first, and fully processed inputs are deleted afterwards (both
cleanups can be disabled).

Page names follow a fixed precedence: the entry at the page's index in the
name list, then the first matching search pattern, then a generated
certificado_NNN placeholder.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().String("input", "", "directory scanned for PDFs in batch mode (default: entrada)")
	splitCmd.Flags().String("output", "", "directory for the single-page PDFs (default: salida)")
	splitCmd.Flags().String("names", "", "name list file (.xlsx or .csv), first column in page order")
	splitCmd.Flags().String("prefix", "", "prefix for every output filename")
	splitCmd.Flags().String("suffix", "", "suffix for every output filename, before .pdf")
	splitCmd.Flags().Bool("keep-output", false, "do not purge existing PDFs from the output directory")
	splitCmd.Flags().Bool("keep-input", false, "do not delete fully processed input PDFs")
	splitCmd.Flags().String("report", "", "write a YAML run report to this path")
	splitCmd.Flags().Bool("json", false, "print the run summaries as JSON to stdout")

	viper.BindPFlag("input", splitCmd.Flags().Lookup("input"))
	viper.BindPFlag("output", splitCmd.Flags().Lookup("output"))
	viper.BindPFlag("prefix", splitCmd.Flags().Lookup("prefix"))
	viper.BindPFlag("suffix", splitCmd.Flags().Lookup("suffix"))
	viper.BindPFlag("keep_output", splitCmd.Flags().Lookup("keep-output"))
	viper.BindPFlag("keep_input", splitCmd.Flags().Lookup("keep-input"))

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errw := cmd.ErrOrStderr()

	patternsFile := viper.GetString("patterns")
	if patternsFile == "" {
		patternsFile = pattern.DefaultFile
	}
	pats := pattern.Load(patternsFile, errw)

	names, err := loadNames(cmd, errw)
	if err != nil {
		return err
	}

	opts := split.Options{
		OutputDir: viper.GetString("output"),
		Patterns:  pats,
		Names:     names,
		Prefix:    viper.GetString("prefix"),
		Suffix:    viper.GetString("suffix"),
	}

	var summaries []*types.Summary
	var failed bool

	if len(args) == 1 {
		summary, err := split.File(args[0], opts, out)
		if err != nil {
			return err
		}
		summaries = []*types.Summary{summary}
		failed = summary.HasFailures()
	} else {
		result, err := batch.Run(batch.Options{
			Options:    opts,
			InputDir:   viper.GetString("input"),
			KeepOutput: viper.GetBool("keep_output"),
			KeepInput:  viper.GetBool("keep_input"),
		}, out)
		if err != nil {
			return err
		}
		if result.Empty() {
			return fmt.Errorf("no input PDFs to process")
		}
		summaries = result.Summaries
		failed = result.HasFailures()
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := split.WriteReport(reportPath, summaries); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(out, "report written to %s\n", reportPath)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summaries: %w", err)
		}
		fmt.Fprintln(out, string(data))
	}

	if failed {
		return fmt.Errorf("some pages or documents failed")
	}
	return nil
}

// loadNames reads the ordered name list when --names is set. A missing file
// is fatal; a file that cannot be parsed degrades to a warning and
// automatic extraction.
func loadNames(cmd *cobra.Command, errw io.Writer) ([]string, error) {
	path, _ := cmd.Flags().GetString("names")
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("name list not found: %s", path)
	}

	names, err := namelist.Load(path)
	if err != nil {
		fmt.Fprintf(errw, "warning: could not load name list: %v (falling back to extraction)\n", err)
		return nil, nil
	}
	fmt.Fprintf(errw, "loaded %d name(s) from %s\n", len(names), path)
	return names, nil
}
