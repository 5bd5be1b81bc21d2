package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Animal Kingdom Quiz API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Local host API for the Animal Kingdom quiz game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/packs
	getPacks, _ := r.NewOperationContext(http.MethodGet, "/api/packs")
	getPacks.SetSummary("List packs")
	getPacks.SetDescription("Returns the question pack catalog with unlock and completion state.")
	getPacks.AddRespStructure(PacksResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getPacks)

	// GET /api/progress
	getProgress, _ := r.NewOperationContext(http.MethodGet, "/api/progress")
	getProgress.SetSummary("Get progress")
	getProgress.SetDescription("Returns the full player profile with derived level, streak and quest data.")
	getProgress.AddRespStructure(ProgressResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getProgress)

	// POST /api/progress/reset
	resetProgress, _ := r.NewOperationContext(http.MethodPost, "/api/progress/reset")
	resetProgress.SetSummary("Reset progress")
	resetProgress.SetDescription("Wipes the profile back to a fresh start.")
	resetProgress.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(resetProgress)

	// GET /api/badges
	getBadges, _ := r.NewOperationContext(http.MethodGet, "/api/badges")
	getBadges.SetSummary("List badges")
	getBadges.SetDescription("Returns the badge catalog and the set already earned.")
	getBadges.AddRespStructure(BadgesResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBadges)

	// GET /api/daily
	getDaily, _ := r.NewOperationContext(http.MethodGet, "/api/daily")
	getDaily.SetSummary("Today's challenge")
	getDaily.SetDescription("Returns today's daily challenge, completion state and the daily streak.")
	getDaily.AddRespStructure(DailyResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getDaily)

	// GET /api/shop
	getShop, _ := r.NewOperationContext(http.MethodGet, "/api/shop")
	getShop.SetSummary("Storefront")
	getShop.SetDescription("Returns purchasable themes and premium packs with ownership flags.")
	getShop.AddRespStructure(ShopResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getShop)

	// POST /api/shop/themes/{id}
	buyTheme, _ := r.NewOperationContext(http.MethodPost, "/api/shop/themes/{id}")
	buyTheme.SetSummary("Buy theme")
	buyTheme.SetDescription("Purchases a color theme with coins.")
	buyTheme.AddRespStructure(PurchaseResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	buyTheme.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	buyTheme.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(buyTheme)

	// POST /api/shop/packs/{id}
	buyPack, _ := r.NewOperationContext(http.MethodPost, "/api/shop/packs/{id}")
	buyPack.SetSummary("Buy premium pack")
	buyPack.SetDescription("Purchases a premium question pack with coins.")
	buyPack.AddRespStructure(PurchaseResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	buyPack.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	buyPack.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(buyPack)

	// POST /api/game/start
	startGame, _ := r.NewOperationContext(http.MethodPost, "/api/game/start")
	startGame.SetSummary("Start session")
	startGame.SetDescription("Starts a pack, daily challenge, favorites or review session. Advances the play streak.")
	startGame.AddReqStructure(StartGameRequest{})
	startGame.AddRespStructure(StartGameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	startGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	startGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(startGame)

	// POST /api/game/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/game/answer")
	postAnswer.SetSummary("Submit answer")
	postAnswer.SetDescription("Answers the current question. Returns scoring, completion and any new badges.")
	postAnswer.AddReqStructure(AnswerGameRequest{})
	postAnswer.AddRespStructure(AnswerGameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	// POST /api/game/skip
	postSkip, _ := r.NewOperationContext(http.MethodPost, "/api/game/skip")
	postSkip.SetSummary("Skip question")
	postSkip.SetDescription("Spends coins to pass the current question. A no-op when coins are short.")
	postSkip.AddRespStructure(SkipGameResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSkip.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postSkip)

	// POST /api/game/end
	postEnd, _ := r.NewOperationContext(http.MethodPost, "/api/game/end")
	postEnd.SetSummary("End session")
	postEnd.SetDescription("Abandons the current session without completing it.")
	postEnd.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postEnd)

	// POST /api/game/favorite
	postFavorite, _ := r.NewOperationContext(http.MethodPost, "/api/game/favorite")
	postFavorite.SetSummary("Toggle favorite")
	postFavorite.SetDescription("Flips the favorite flag for a question.")
	postFavorite.AddReqStructure(FavoriteRequest{})
	postFavorite.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postFavorite.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postFavorite)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream announcing answers and paced question advances.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// POST /api/multiplayer/start
	mpStart, _ := r.NewOperationContext(http.MethodPost, "/api/multiplayer/start")
	mpStart.SetSummary("Start multiplayer")
	mpStart.SetDescription("Starts a pass-and-play game on a pack for two or more players.")
	mpStart.AddReqStructure(MultiplayerStartRequest{})
	mpStart.AddRespStructure(MultiplayerStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	mpStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	mpStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(mpStart)

	// POST /api/multiplayer/answer
	mpAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/multiplayer/answer")
	mpAnswer.SetSummary("Multiplayer answer")
	mpAnswer.SetDescription("Records the current player's answer and advances the turn rotation.")
	mpAnswer.AddReqStructure(MultiplayerAnswerRequest{})
	mpAnswer.AddRespStructure(MultiplayerAnswerResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	mpAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(mpAnswer)

	// POST /api/multiplayer/clear
	mpClear, _ := r.NewOperationContext(http.MethodPost, "/api/multiplayer/clear")
	mpClear.SetSummary("Clear multiplayer")
	mpClear.SetDescription("Abandons the multiplayer session.")
	mpClear.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(mpClear)

	// GET /api/multiplayer/state
	mpState, _ := r.NewOperationContext(http.MethodGet, "/api/multiplayer/state")
	mpState.SetSummary("Multiplayer state")
	mpState.SetDescription("Returns the current multiplayer state, with rankings once finished.")
	mpState.AddRespStructure(MultiplayerStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(mpState)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
