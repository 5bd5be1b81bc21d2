package server

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/wildminds/animalquiz/internal/quiz"
)

var errNoMultiplayerGame = errors.New("no multiplayer game in progress")

// Game serializes all access to the quiz engine and the multiplayer
// reducer for the local profile. Every mutation persists the progress
// blob; a failed save is logged and play continues, the state will be
// written again on the next transition.
type Game struct {
	mu     sync.Mutex
	engine *quiz.Engine
	mp     quiz.MultiplayerState
	mpPack quiz.Pack
	store  ProgressStore
	broker *Broker
	pacer  pacer
	logger *slog.Logger
}

// NewGame loads the persisted progress and wires the engine to the
// catalog. A load failure starts a fresh profile rather than aborting;
// losing a save must never keep the game from coming up.
func NewGame(ctx context.Context, store ProgressStore, catalog []quiz.Pack, broker *Broker, logger *slog.Logger) (*Game, error) {
	raw, err := store.Load(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.Error("loading progress, starting fresh", "error", err)
		raw = nil
	}
	progress := quiz.DecodeProgress(raw)

	return &Game{
		engine: quiz.NewEngine(progress, catalog),
		store:  store,
		broker: broker,
		logger: logger,
	}, nil
}

func (g *Game) persist(ctx context.Context) {
	data, err := quiz.EncodeProgress(g.engine.Progress())
	if err != nil {
		g.logger.Error("encoding progress", "error", err)
		return
	}
	if err := g.store.Save(ctx, data); err != nil {
		g.logger.Error("saving progress", "error", err)
	}
}

// Progress returns a snapshot of the current progress.
func (g *Game) Progress() quiz.UserProgress {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine.Progress()
}

// Catalog returns the loaded pack catalog.
func (g *Game) Catalog() []quiz.Pack {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine.Catalog()
}

// Daily returns today's challenge and whether it is already done.
func (g *Game) Daily() (quiz.DailyChallenge, bool, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := g.engine.Progress()
	today := g.engine.Today()
	challenge := quiz.TodayChallenge(p, g.engine.Catalog(), today)
	return challenge, quiz.IsDailyCompleted(p, today), quiz.DailyChallengeStreak(p, today)
}

// StartMode selects which kind of single-player session to begin.
type StartMode string

const (
	ModePack      StartMode = "pack"
	ModeDaily     StartMode = "daily"
	ModeFavorites StartMode = "favorites"
	ModeReview    StartMode = "review"
)

// Start begins a single-player session. packID and timed only apply to
// ModePack.
func (g *Game) Start(ctx context.Context, mode StartMode, packID string, timed bool) (quiz.StartResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pacer.Cancel()

	var (
		res quiz.StartResult
		err error
	)
	switch mode {
	case ModeDaily:
		res, err = g.engine.StartDailyChallenge()
	case ModeFavorites:
		res, err = g.engine.StartFavorites()
	case ModeReview:
		res, err = g.engine.StartReview()
	default:
		res, err = g.engine.StartPack(packID, timed)
	}
	if err != nil {
		return quiz.StartResult{}, err
	}

	g.persist(ctx)
	g.broker.Publish(Event{Type: "game_started", PackID: res.Pack.ID})
	return res, nil
}

// Answer applies an answer to the current question and schedules the
// delayed question_advance announcement.
func (g *Game) Answer(ctx context.Context, selected string, timeSpentMs int) (quiz.AnswerResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	res, err := g.engine.Answer(selected, timeSpentMs)
	if err != nil {
		return quiz.AnswerResult{}, err
	}
	g.persist(ctx)

	g.broker.Publish(Event{
		Type:          "answer_result",
		QuestionIndex: res.QuestionIndex,
		Correct:       res.Correct,
		PackComplete:  res.PackComplete,
	})
	next := res.NextIndex
	complete := res.PackComplete
	g.pacer.Schedule(func() {
		g.broker.Publish(Event{
			Type:          "question_advance",
			QuestionIndex: next,
			PackComplete:  complete,
		})
	})
	return res, nil
}

// Skip passes over the current question for coins.
func (g *Game) Skip(ctx context.Context) (quiz.SkipResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	res, err := g.engine.Skip()
	if err != nil {
		return quiz.SkipResult{}, err
	}
	if !res.Rejected {
		g.persist(ctx)
		g.broker.Publish(Event{
			Type:          "question_advance",
			QuestionIndex: res.NextIndex,
			PackComplete:  res.PackComplete,
		})
	}
	return res, nil
}

// End abandons the current session.
func (g *Game) End(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pacer.Cancel()
	g.engine.EndSession()
	g.persist(ctx)
	g.broker.Publish(Event{Type: "game_ended"})
}

// ActivePack returns the in-flight session's pack, if any.
func (g *Game) ActivePack() (quiz.Pack, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine.ActivePack()
}

// ToggleFavorite flips a question's favorite flag.
func (g *Game) ToggleFavorite(ctx context.Context, questionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	fav := g.engine.ToggleFavorite(questionID)
	g.persist(ctx)
	return fav
}

// PurchaseTheme buys a shop theme and returns the updated progress.
func (g *Game) PurchaseTheme(ctx context.Context, themeID string) (quiz.UserProgress, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.engine.PurchaseTheme(themeID); err != nil {
		return quiz.UserProgress{}, err
	}
	g.persist(ctx)
	return g.engine.Progress(), nil
}

// PurchasePack buys a premium pack and returns the updated progress.
func (g *Game) PurchasePack(ctx context.Context, packID string) (quiz.UserProgress, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.engine.PurchasePack(packID); err != nil {
		return quiz.UserProgress{}, err
	}
	g.persist(ctx)
	return g.engine.Progress(), nil
}

// Reset wipes the profile back to a fresh start.
func (g *Game) Reset(ctx context.Context) quiz.UserProgress {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pacer.Cancel()
	g.engine = quiz.NewEngine(quiz.DefaultProgress(), g.engine.Catalog())
	g.persist(ctx)
	g.broker.Publish(Event{Type: "progress_reset"})
	return g.engine.Progress()
}

// MultiplayerStart begins a pass-and-play game on a catalog pack.
// Multiplayer state is session-scoped and never persisted.
func (g *Game) MultiplayerStart(players []quiz.Player, packID string) (quiz.MultiplayerState, quiz.Pack, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var pack quiz.Pack
	found := false
	for _, p := range g.engine.Catalog() {
		if p.ID == packID {
			pack, found = p, true
			break
		}
	}
	if !found {
		return quiz.MultiplayerState{}, quiz.Pack{}, quiz.ErrPackNotFound
	}

	g.mpPack = pack
	g.mp = quiz.ReduceMultiplayer(g.mp, quiz.ResetAction{Players: players})
	return g.mp, pack, nil
}

// MultiplayerAnswer records the current player's answer and advances the
// turn. Correctness is derived from the pack, same as single-player.
func (g *Game) MultiplayerAnswer(selected string) (quiz.MultiplayerState, bool, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.mp.Players) == 0 || g.mp.ShouldShowResults {
		return quiz.MultiplayerState{}, false, "", errNoMultiplayerGame
	}

	item := g.mpPack.Items[g.mp.CurrentQuestionIndex]
	correct := selected == item.Answer
	points := 0
	if correct {
		points = quiz.PointsPerCorrect
	}

	g.mp = quiz.ReduceMultiplayer(g.mp, quiz.AnswerAction{
		PlayerIndex:    g.mp.CurrentPlayerIndex,
		QuestionID:     item.ID,
		IsCorrect:      correct,
		Points:         points,
		TotalQuestions: len(g.mpPack.Items),
	})
	return g.mp, correct, item.Answer, nil
}

// MultiplayerClear abandons the multiplayer session.
func (g *Game) MultiplayerClear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mp = quiz.ReduceMultiplayer(g.mp, quiz.ClearAction{})
	g.mpPack = quiz.Pack{}
}

// Multiplayer returns the current multiplayer state and its pack.
func (g *Game) Multiplayer() (quiz.MultiplayerState, quiz.Pack) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mp, g.mpPack
}
