package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trending-ingest/infrastructure/logger"
	httpHandler "trending-ingest/interfaces/http"
	"trending-ingest/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP trigger",
	Long: `Serve starts an HTTP server with GET /healthz and an authenticated
POST /api/trending/run that performs one ingestion per request.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.App.SecretKey == "" {
			return errors.New("app.secretKey (SECRET_KEY) is required to serve the trigger")
		}
		port := cfg.App.Port
		if servePort > 0 {
			port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		uc, cleanup, err := newTrendingUsecase(ctx, cfg)
		defer cleanup()
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		router := server.InitiateRouter(httpHandler.NewTrendingHandler(uc), cfg.App.SecretKey)
		httpServer := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.GetLogger().WithField("port", port).Info("Starting application")
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.GetLogger().Info("Application shutdown requested")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			logger.GetLogger().WithField("error", err).Error("Server returned an error")
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default app.port)")
}
