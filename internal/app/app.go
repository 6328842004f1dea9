package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawtrail/pawtrail-core/internal/engagement"
	"github.com/pawtrail/pawtrail-core/internal/refresher"
	"github.com/pawtrail/pawtrail-core/internal/remote"
	"github.com/pawtrail/pawtrail-core/internal/remote/restimpl"
	"github.com/pawtrail/pawtrail-core/internal/replies"
	"github.com/pawtrail/pawtrail-core/internal/stories"
	"github.com/pawtrail/pawtrail-core/pkg/config"
	"github.com/pawtrail/pawtrail-core/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			restimpl.New,
			fx.As(new(remote.Service)),
		),
	),
	engagement.Module,
	replies.Module,
	stories.Module,
	refresher.Module,
	fx.Invoke(run),
)

// The reply store has no startup work; it is listed so fx constructs the
// whole graph and wiring mistakes surface at boot instead of first use.
func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, ref *refresher.Refresher,
	player stories.Player, _ replies.Store) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg)

			ctx := context.Background()
			if err := ref.Refresh(ctx); err != nil {
				log.Error("Initial story feed fetch failed", "error", err)
			}

			if err := ref.Start(ctx); err != nil {
				return err
			}

			log.Info("Client core ready",
				"feed_groups", len(ref.Feed()),
				"viewer_open", player.IsOpen())
			return nil
		},
		OnStop: func(context.Context) error {
			return ref.Stop()
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
