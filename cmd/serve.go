package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/react-guide/internal/content"
	"github.com/ziadkadry99/react-guide/internal/preferences"
	"github.com/ziadkadry99/react-guide/internal/server"
	"github.com/ziadkadry99/react-guide/internal/session"
	"github.com/ziadkadry99/react-guide/internal/site"
	"github.com/ziadkadry99/react-guide/internal/theme"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the React Guide web server",
	Long:  `Serves the guide over HTTP with per-visitor theme and navigation state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		lib, err := content.Default()
		if err != nil {
			return fmt.Errorf("loading pages: %w", err)
		}

		database, err := openDatabase(cfg.Storage.Path, logger)
		if err != nil {
			return err
		}
		defer database.Close()
		prefs := preferences.NewStore(database)

		fallback, err := theme.Parse(cfg.Theme.Default)
		if err != nil {
			return err
		}
		sessions := session.NewRegistry(session.Config{
			TTL:      cfg.SessionTTL(),
			Items:    cfg.NavItems(),
			Fallback: fallback,
		}, func(visitor string) theme.Store {
			return prefs.Scoped(visitor, logger)
		}, logger)

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, sessions, logger)

		guide, err := site.New(lib, sessions, site.Options{
			Title:         cfg.Site.Title,
			SecureCookies: cfg.Server.SecureCookies,
		}, logger)
		if err != nil {
			return err
		}
		guide.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("shutdown")
			}
		}()

		logger.Info().
			Str("version", Version).
			Int("pages", lib.Len()).
			Str("database", database.Path()).
			Str("default_theme", fallback.String()).
			Msg("starting react guide")

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
