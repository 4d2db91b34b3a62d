package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lyra-docs/lyra/internal/audit"
	"github.com/lyra-docs/lyra/internal/content"
	"github.com/lyra-docs/lyra/internal/logger"
	"github.com/lyra-docs/lyra/internal/server"
	"github.com/lyra-docs/lyra/internal/session"
	"github.com/lyra-docs/lyra/internal/viewer"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the documentation viewer",
	Long:  `Starts the LYRA web viewer: the section pages, the AI Code Explainer, the JSON API and, when history_db is set, the explain history API.
The history API only returns entries recorded for the caller's session cookie.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		provider, err := createLLMProviderFromConfig(ctx, cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}

		history, closeHistory, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer closeHistory()

		catalog := content.Default()
		sessions, err := session.NewStore(cfg.MaxSessions, catalog, explainerFactory(cfg, provider, history))
		if err != nil {
			return err
		}

		// Explanations outlive the request; the HTTP deadline only bounds
		// page and API handlers and is lifted with explain_timeout.
		requestTimeout := cfg.ExplainTimeout + 30*time.Second
		if cfg.ExplainTimeout <= 0 {
			requestTimeout = -1
		}
		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
			// Leave room for a full explain request inside the HTTP deadline.
			RequestTimeout: requestTimeout,
		})
		r := srv.Router()
		viewer.New(catalog, sessions).RegisterRoutes(r)
		if history != nil {
			audit.RegisterRoutes(r, history)
		}

		go func() {
			<-ctx.Done()
			logger.L.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		logger.L.WithField("provider", provider.Name()).
			WithField("model", cfg.Model).
			WithField("history", cfg.HistoryDB != "").
			Infof("lyra %s starting", Version)
		fmt.Fprintf(os.Stderr, "LYRA is running at http://localhost:%d\n", cfg.Port)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
