package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sentiment-bot/internal/api/rest/router"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, err := buildContainer(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			gin.SetMode(c.Config.Server.Mode)

			r := router.Setup(router.Dependencies{
				Engines: c.Classifier,
				Images:  c.Images,
				Movies:  c.Movies,
				Metrics: c.MetricsHandler,
			}, c.Logger.Named("http"))

			addr := c.Config.Server.Addr()
			srv := &http.Server{
				Addr:         addr,
				Handler:      r,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("starting server", zap.String("address", addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return err
				}
			case <-ctx.Done():
			}

			c.Logger.Info("shutting down server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				c.Logger.Error("server forced to shutdown", zap.Error(err))
			}

			c.Logger.Info("server exited")
			return nil
		},
	}
}
