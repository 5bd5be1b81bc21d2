package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, game *Game, broker *Broker, db *sql.DB, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Animal Kingdom Quiz API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Route("/api", func(r chi.Router) {
		r.Get("/packs", handlePacks(game))
		r.Get("/progress", handleProgress(game))
		r.Post("/progress/reset", handleProgressReset(game))
		r.Get("/badges", handleBadges(game))
		r.Get("/daily", handleDaily(game))
		r.Get("/shop", handleShop(game))
		r.Post("/shop/themes/{id}", handlePurchaseTheme(game))
		r.Post("/shop/packs/{id}", handlePurchasePack(game))

		r.Post("/game/start", handleStartGame(game))
		r.Post("/game/answer", handleAnswer(game))
		r.Post("/game/skip", handleSkip(game))
		r.Post("/game/end", handleEndGame(game))
		r.Post("/game/favorite", handleToggleFavorite(game))
		r.Get("/game/events", handleEvents(broker))

		r.Post("/multiplayer/start", handleMultiplayerStart(game))
		r.Post("/multiplayer/answer", handleMultiplayerAnswer(game))
		r.Post("/multiplayer/clear", handleMultiplayerClear(game))
		r.Get("/multiplayer/state", handleMultiplayerState(game))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
