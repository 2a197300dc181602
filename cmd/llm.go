package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gwang08/GenLingo/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect oracle configuration and usage",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the oracle provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}
		fmt.Printf("Provider: %s\n", cfg.Provider)
		fmt.Printf("Model:    %s\n", cfg.ModelID())
		fmt.Println("Configuration OK")
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize recorded oracle requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		agg, err := st.LLMStats(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Requests:  %d (%d failed)\n", agg.TotalRequests, agg.FailureCount)
		fmt.Printf("Tokens:    %d\n", agg.TotalTokens)
		fmt.Printf("Est. cost: $%.4f\n", agg.TotalCostUSD)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
