package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/go-chi/chi/v5"
	"github.com/samber/do"
	"github.com/serroba/shortlink/internal/container"
	"go.uber.org/zap"
)

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *container.EdgeOptions) {
		if err := container.ApplyEnv(options); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		injector := do.New()
		do.ProvideValue(injector, options)
		do.ProvideValue(injector, &container.LogOptions{Format: options.LogFormat, Level: options.LogLevel})
		container.LoggerPackage(injector)
		container.EdgePackage(injector)

		logger, err := do.Invoke[*zap.Logger](injector)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		var server *http.Server

		hooks.OnStart(func() {
			router, err := do.Invoke[*chi.Mux](injector)
			if err != nil {
				logger.Fatal("failed to build router", zap.Error(err))
			}

			server = &http.Server{
				Addr:              fmt.Sprintf(":%d", options.Port),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			logger.Info("edge starting",
				zap.Int("port", options.Port),
				zap.String("public_dir", options.PublicDir),
				zap.String("shortener_url", options.ShortenerURL),
			)

			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("server failed", zap.Error(err))
			}
		})

		hooks.OnStop(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if server != nil {
				if err := server.Shutdown(ctx); err != nil {
					logger.Error("server shutdown error", zap.Error(err))
				}
			}

			_ = injector.Shutdown()
			_ = logger.Sync()
		})
	})

	cli.Run()
}
