package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/screentime/internal/config"
	"github.com/dshills/screentime/internal/content"
	"github.com/dshills/screentime/internal/server"
	"github.com/spf13/cobra"
)

type serveFlags struct {
	envFile string
	addr    string
	content string
}

func newServeCmd() *cobra.Command {
	f := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the screening page and prediction API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.envFile)
			if err != nil {
				return exitError(3, "%v", err)
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTPAddr = f.addr
			}
			if cmd.Flags().Changed("content") {
				cfg.Content = f.content
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.envFile, "env-file", ".env", "Optional .env file to load before reading the environment")
	flags.StringVar(&f.addr, "addr", "", "Listen address (overrides SCREENTIME_HTTP_ADDR)")
	flags.StringVar(&f.content, "content", "", "Built-in content name or YAML file (overrides SCREENTIME_CONTENT)")

	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger := log.New(os.Stderr, "screentime ", log.LstdFlags)

	site, err := content.Resolve(cfg.Content)
	if err != nil {
		return exitError(3, "failed to load content: %v", err)
	}
	logger.Printf("content %q, cors origins %v", site.Name, cfg.CORSOrigins)

	return server.Run(ctx, cfg, server.NewRouter(cfg, site, version, logger), logger)
}
