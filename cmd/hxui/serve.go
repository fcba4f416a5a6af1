package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
	"github.com/spf13/cobra"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/internal/config"
	"github.com/pthm/hxui/internal/demo"
	"github.com/pthm/hxui/internal/slogx"
)

func serveCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the component showcase",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}
			if address != "" {
				conf.HTTP.Address = address
			}

			logger := slog.New(slogx.ContextHandler{
				Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level:     conf.Logger.Level,
					AddSource: true,
				}),
			})
			slog.SetDefault(logger)

			return serve(ctx, conf, logger)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Listen address (overrides HXUI_HTTP_ADDRESS)")

	return cmd
}

func serve(ctx context.Context, conf *config.Config, logger *slog.Logger) error {
	reg := hxui.NewRegistry([]byte(conf.Components.Secret))
	app := demo.New(reg, demo.NewStore(), conf.Components.Sensitive)

	server := &http.Server{
		Addr:              conf.HTTP.Address,
		Handler:           newRouter(conf, reg, app, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		if err := server.Close(); err != nil {
			slog.ErrorContext(ctx, "could not close server", slogx.Error(errors.WithStack(err)))
		}
	}()

	slog.InfoContext(ctx, "starting server",
		slog.String("address", conf.HTTP.Address),
		slog.Int("components", reg.Components()),
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func newRouter(conf *config.Config, reg *hxui.Registry, page http.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(sloghttp.Recovery)
	r.Use(sloghttp.New(logger))

	r.Handle("/_c/*", reg.Handler())
	if conf.HTTP.MetricsPath != "" {
		r.Handle(conf.HTTP.MetricsPath, reg.MetricsHandler())
	}
	r.Get("/", page.ServeHTTP)

	return r
}
