package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/gm3197/CSE437s-group-4/internal/handlers/v1/auth"
	"github.com/gm3197/CSE437s-group-4/internal/handlers/v1/category"
	"github.com/gm3197/CSE437s-group-4/internal/handlers/v1/item"
	"github.com/gm3197/CSE437s-group-4/internal/handlers/v1/receipt"
	"github.com/gm3197/CSE437s-group-4/internal/handlers/v1/status"
	"github.com/gm3197/CSE437s-group-4/internal/logging"
	"github.com/gm3197/CSE437s-group-4/internal/sandbox"
)

// Rest serves the sandbox receipt API.
type Rest struct {
	Logger       *logrus.Logger
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Store        *sandbox.Store
}

// Handler builds the routed API without starting a server.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("ReceiptME Sandbox", "1.0.0"))
	auth.NewGoogleTokenHandler(r.Store).Register(api)
	receipt.NewHandler(r.Store).Register(api)
	item.NewHandler(r.Store).Register(api)
	category.NewHandler(r.Store).Register(api)

	return logging.Middleware(r.Logger, mux)
}

// Serve listens until ctx is done, then shuts down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              r.Addr,
		Handler:           r.Handler(),
		ReadTimeout:       r.ReadTimeout,
		WriteTimeout:      r.WriteTimeout,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("addr", r.Addr).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	<-shutdownDone
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}
