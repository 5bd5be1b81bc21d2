package server

import (
	"net/http"
	"strings"

	"github.com/wildminds/animalquiz/internal/quiz"
)

type StartGameRequest struct {
	Mode   string `json:"mode"` // pack | daily | favorites | review
	PackID string `json:"packId,omitempty"`
	Timed  bool   `json:"timed,omitempty"`
}

type StartGameResponse struct {
	Pack          quiz.Pack `json:"pack"`
	CurrentStreak int       `json:"currentStreak"`
	LongestStreak int       `json:"longestStreak"`
	StreakBroken  bool      `json:"streakBroken"`
	StreakBonus   int       `json:"streakBonus"`
	StreakMessage string    `json:"streakMessage,omitempty"`
}

func handleStartGame(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartGameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		mode := StartMode(req.Mode)
		if mode == "" {
			mode = ModePack
		}
		if mode == ModePack && req.PackID == "" {
			writeError(w, http.StatusBadRequest, "packId is required")
			return
		}

		res, err := game.Start(r.Context(), mode, req.PackID, req.Timed)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, StartGameResponse{
			Pack:          res.Pack,
			CurrentStreak: res.Streak.CurrentStreak,
			LongestStreak: res.Streak.LongestStreak,
			StreakBroken:  res.Streak.StreakBroken,
			StreakBonus:   res.StreakBonus,
			StreakMessage: res.StreakMessage,
		})
	}
}

type AnswerGameRequest struct {
	Answer      string `json:"answer"`
	TimeSpentMs int    `json:"timeSpentMs,omitempty"`
}

type AnswerGameResponse struct {
	Correct       bool                   `json:"correct"`
	CorrectAnswer string                 `json:"correctAnswer"`
	Fact          string                 `json:"fact,omitempty"`
	PointsEarned  int                    `json:"pointsEarned"`
	CoinsEarned   int                    `json:"coinsEarned"`
	XPEarned      int                    `json:"xpEarned"`
	QuestionIndex int                    `json:"questionIndex"`
	NextIndex     int                    `json:"nextIndex"`
	PackComplete  bool                   `json:"packComplete"`
	Perfect       bool                   `json:"perfect"`
	DailyComplete bool                   `json:"dailyComplete"`
	LeveledUp     bool                   `json:"leveledUp"`
	Level         int                    `json:"level"`
	NewBadges     []quiz.BadgeDefinition `json:"newBadges,omitempty"`
	BadgeReward   quiz.BadgeReward       `json:"badgeReward"`
}

func handleAnswer(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerGameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Answer = strings.TrimSpace(req.Answer)
		if req.Answer == "" {
			writeError(w, http.StatusBadRequest, "answer is required")
			return
		}

		res, err := game.Answer(r.Context(), req.Answer, req.TimeSpentMs)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AnswerGameResponse{
			Correct:       res.Correct,
			CorrectAnswer: res.CorrectAnswer,
			Fact:          res.Fact,
			PointsEarned:  res.PointsEarned,
			CoinsEarned:   res.CoinsEarned,
			XPEarned:      res.XPEarned,
			QuestionIndex: res.QuestionIndex,
			NextIndex:     res.NextIndex,
			PackComplete:  res.PackComplete,
			Perfect:       res.Perfect,
			DailyComplete: res.DailyComplete,
			LeveledUp:     res.LeveledUp,
			Level:         res.Level,
			NewBadges:     res.NewBadges,
			BadgeReward:   res.BadgeReward,
		})
	}
}

type SkipGameResponse struct {
	Rejected      bool                   `json:"rejected"`
	Coins         int                    `json:"coins"`
	QuestionIndex int                    `json:"questionIndex"`
	NextIndex     int                    `json:"nextIndex"`
	PackComplete  bool                   `json:"packComplete"`
	NewBadges     []quiz.BadgeDefinition `json:"newBadges,omitempty"`
}

func handleSkip(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := game.Skip(r.Context())
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SkipGameResponse{
			Rejected:      res.Rejected,
			Coins:         res.Coins,
			QuestionIndex: res.QuestionIndex,
			NextIndex:     res.NextIndex,
			PackComplete:  res.PackComplete,
			NewBadges:     res.NewBadges,
		})
	}
}

func handleEndGame(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game.End(r.Context())
		writeJSON(w, http.StatusOK, map[string]string{"status": "ended"})
	}
}

type FavoriteRequest struct {
	QuestionID string `json:"questionId"`
}

func handleToggleFavorite(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FavoriteRequest
		if err := readJSON(r, &req); err != nil || req.QuestionID == "" {
			writeError(w, http.StatusBadRequest, "questionId is required")
			return
		}

		fav := game.ToggleFavorite(r.Context(), req.QuestionID)
		writeJSON(w, http.StatusOK, map[string]bool{"favorite": fav})
	}
}
