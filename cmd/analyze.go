package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <username>",
	Short: "Analyses one GitHub user and outputs the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetBool("filter")
		analyzer, err := newAnalyzer(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create analyzer: %w", err)
		}

		result, err := analyzer.Analyze(context.Background(), args[0], filter)
		if err != nil {
			return fmt.Errorf("failed to analyse %s: %w", args[0], err)
		}
		return printJSON(cmd, result)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <first> <second>",
	Short: "Analyses two GitHub users side by side and outputs the result as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetBool("filter")
		analyzer, err := newAnalyzer(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create analyzer: %w", err)
		}

		result, err := analyzer.Compare(context.Background(), args[0], args[1], filter)
		if err != nil {
			return fmt.Errorf("failed to compare %s and %s: %w", args[0], args[1], err)
		}
		return printJSON(cmd, result)
	},
}

// printJSON writes v as pretty-printed JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(compareCmd)
	for _, c := range []*cobra.Command{analyzeCmd, compareCmd} {
		c.Flags().BoolP("filter", "f", false, "Exclude forks, tiny repositories and templates")
	}
}
