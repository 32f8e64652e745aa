package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PhycomEspol/SSC/internal/pattern"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the active name search patterns without processing",
	Long: `Patterns prints the regex patterns the splitter would use to find
recipient names, in match order. Patterns come from the pattern file when it
exists, otherwise from the built-in set. Edit the pattern file to add or
reorder expressions; each must capture the name in group 1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("patterns")
		if path == "" {
			path = pattern.DefaultFile
		}

		pats := pattern.Load(path, cmd.ErrOrStderr())

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pattern file: %s\n", path)
		for i, p := range pats {
			fmt.Fprintf(out, "  %d. %s\n", i+1, p.Source)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
