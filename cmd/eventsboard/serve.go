package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	delivery "eventsboard/internal/delivery/http"
	"eventsboard/internal/delivery/http/controllers"
	"eventsboard/internal/services"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the board over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		inbox := services.NewInbox()
		history := services.NewHistory()
		board, closeRef, err := newBoard(ctx, newNotifier(cfg, logger, inbox), history)
		if err != nil {
			return err
		}
		defer closeRef()

		if err := board.Reload(ctx); err != nil {
			logger.Warn("initial load failed, serving an empty board", "err", err)
		}

		controller := controllers.NewBoardController(logger, board, inbox, history)
		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           delivery.NewRouter(logger, controller, cfg.CORSAllowedOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr, "backend", cfg.BackendURL)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
