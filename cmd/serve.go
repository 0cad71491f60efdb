package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ziadkadry99/portfolio/internal/page"
	"github.com/ziadkadry99/portfolio/internal/server"
	"github.com/ziadkadry99/portfolio/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long:  `Loads the content, then serves every page and its live websocket until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() {
			// Sync fails on terminals; only report it alongside a real error.
			if err != nil {
				err = multierr.Append(err, logger.Sync())
			} else {
				_ = logger.Sync()
			}
		}()

		store, err := loadContent(cfg, logger)
		if err != nil {
			logger.Error("content rejected", zap.Error(err))
			return err
		}
		renderer, err := site.New()
		if err != nil {
			return err
		}
		search, err := newSearcher(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:          cfg.Port,
			FrameInterval: cfg.FrameInterval,
			AllowAll:      cfg.AllowAllOrigins,
		}, server.Deps{
			Store:    store,
			Renderer: renderer,
			Search:   search,
			Settings: page.SettingsFromConfig(cfg),
			Logger:   logger,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdownErr := make(chan error, 1)
		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			shutdownErr <- srv.Shutdown(sctx)
		}()

		fmt.Fprintf(os.Stderr, "portfolio %s listening on http://localhost:%d\n", Version, cfg.Port)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return <-shutdownErr
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
