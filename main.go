package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/pkg/config"
	"github.com/Zachkp/portfolio/pkg/content"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:            "portfolio",
		Usage:           "personal portfolio site",
		HideHelpCommand: true,
		Action:          serve,
		// flags are inherited by subcommands
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "load site content from `FILE` (YAML or TOML), embedded content when empty"},
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "listen on `PORT` instead of $PORT"},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serves the site over HTTP",
				Action: serve,
			},
			{
				Name:      "lint",
				Usage:     "Checks a content file for authoring mistakes",
				ArgsUsage: "[FILE]",
				Action:    lint,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if v := cmd.String("content"); v != "" {
		cfg.ContentFile = v
	}
	if v := cmd.String("port"); v != "" {
		cfg.Port = v
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("prepare logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	if err := content.Validate(site); err != nil {
		return fmt.Errorf("content is invalid: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router, err := newRouter(cfg, site, log)
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: cfg.Addr(), Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Serving", zap.String("addr", srv.Addr), zap.Int("journey", len(site.Journey)), zap.Bool("legacy", cfg.LegacyEnabled))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	log.Info("Stopped")
	return nil
}

func lint(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		path = cmd.String("content")
	}
	site, err := content.Load(path)
	if err != nil {
		return err
	}
	errs := multierr.Errors(content.Validate(site))
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d content problem(s) found", len(errs))
	}
	fmt.Fprintf(os.Stdout, "content ok: %d journey entries\n", len(site.Journey))
	return nil
}
