package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gwang08/GenLingo/internal/config"
	"github.com/gwang08/GenLingo/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <email>",
	Short: "Show a user's activity stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		activity, err := st.ReadStats(ctx, doc.UserID)
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s>\n", doc.DisplayName, doc.Email)
		fmt.Printf("  Total score:       %d\n", activity.TotalScore)
		fmt.Printf("  Questions:         %d answered, %d correct\n", activity.TotalQuestions, activity.CorrectAnswers)
		fmt.Printf("  Quizzes:           %d completed, %d perfect\n", activity.QuizzesCompleted, activity.PerfectScores)
		fmt.Printf("  Streak:            %d (longest %d)\n", activity.Streak, activity.LongestStreak)
		fmt.Printf("  Last active:       %s\n", orDash(activity.LastActive))
		fmt.Printf("  Achievements:      %s\n", orDash(strings.Join(activity.Achievements, ", ")))
		fmt.Printf("  Topics completed:  %s\n", orDash(strings.Join(activity.TopicsCompleted, ", ")))
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// openStore opens the database configured via the config file and env.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return store.Open(cfg.Storage.DBPath)
}
