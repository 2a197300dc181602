package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <email>",
	Short: "Reset a user's activity stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		doc, err := st.UserByEmail(ctx, strings.ToLower(args[0]))
		if err != nil {
			return err
		}

		err = st.MergeWriteStats(ctx, doc.UserID, map[string]any{
			"totalQuestions":   0,
			"correctAnswers":   0,
			"quizzesCompleted": 0,
			"perfectScores":    0,
			"streak":           0,
			"longestStreak":    0,
			"lastActive":       "",
			"achievements":     []string{},
			"topicsCompleted":  []string{},
			"totalScore":       0,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Stats reset for %s\n", doc.Email)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
