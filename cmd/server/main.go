package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"cs2-tracker/internal/config"
	"cs2-tracker/internal/constants"
	fxmodules "cs2-tracker/internal/fx"
	"cs2-tracker/internal/logger"
	"cs2-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runServer),
	).Run()
}

func runServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	log zerolog.Logger,
) {
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = logger.SetLevel(level)
	}

	requestID := middleware.RequestID(log)
	apiHandler := middleware.CORS()(engine)

	mux := http.NewServeMux()
	mux.Handle("/", requestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apiHandler.ServeHTTP(w, r)
			return
		}
		engine.ServeHTTP(w, r)
	})))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:           mux,
		ReadHeaderTimeout: constants.RequestTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
				return err
			}

			if err := db.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing database connection")
			}
			log.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
