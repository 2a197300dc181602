package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gwang08/GenLingo/internal/auth"
	"github.com/gwang08/GenLingo/internal/config"
	"github.com/gwang08/GenLingo/internal/generate"
	"github.com/gwang08/GenLingo/internal/llm"
	"github.com/gwang08/GenLingo/internal/platform/logger"
	"github.com/gwang08/GenLingo/internal/quota"
	"github.com/gwang08/GenLingo/internal/server"
	"github.com/gwang08/GenLingo/internal/stats"
	"github.com/gwang08/GenLingo/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	st, err := store.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		return fmt.Errorf("oracle config: %w", err)
	}
	provider, err := llm.NewProvider(ctx, llmCfg, st, log)
	if err != nil {
		return fmt.Errorf("init oracle provider: %w", err)
	}

	guard := quota.New(quota.Config{
		MaxCalls: cfg.Quota.MaxCalls,
		Window:   cfg.Quota.Window(),
	})
	gateway := generate.New(provider, guard, generate.DefaultConfig(), log)

	authSvc := auth.New(st, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), log)
	statsSvc := stats.NewService(st.Stats(), log)

	srv := server.New(cfg.Server, authSvc, statsSvc, gateway, st, log)
	return srv.Run(ctx)
}
