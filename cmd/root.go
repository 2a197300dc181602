package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "genlingo",
	Short: "AI English-learning backend for Vietnamese high-schoolers",
	Long: "GenLingo — API server for an AI-assisted English-learning app: governed AI content\n" +
		"generation (explanations, quizzes, daily lessons, reading tests, leaderboards)\n" +
		"plus streaks, achievements, and scoring.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./genlingo.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
