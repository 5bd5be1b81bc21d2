package server

import (
	"net/http"
	"time"

	"github.com/wildminds/animalquiz/internal/quiz"
)

// ProgressResponse is the full profile plus the derived numbers the
// client renders everywhere: level name, next-level XP, streak risk and
// weekly quest standing.
type ProgressResponse struct {
	Progress       quiz.UserProgress  `json:"progress"`
	LevelName      string             `json:"levelName"`
	XPForNextLevel int                `json:"xpForNextLevel"`
	StreakAtRisk   bool               `json:"streakAtRisk"`
	StreakMessage  string             `json:"streakMessage,omitempty"`
	Quests         []quiz.QuestStatus `json:"quests"`
}

func handleProgress(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := game.Progress()
		level := quiz.CalculateLevel(p.XP)

		writeJSON(w, http.StatusOK, ProgressResponse{
			Progress:       p,
			LevelName:      quiz.LevelName(level),
			XPForNextLevel: quiz.XPForNextLevel(level),
			StreakAtRisk:   quiz.IsStreakAtRisk(p, quiz.DateOf(time.Now())),
			StreakMessage:  quiz.StreakMessage(p.CurrentStreak),
			Quests:         quiz.QuestProgress(p),
		})
	}
}

func handleProgressReset(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := game.Reset(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{"progress": p})
	}
}

// BadgesResponse pairs the static catalog with the earned set.
type BadgesResponse struct {
	Badges []quiz.BadgeDefinition `json:"badges"`
	Earned []string               `json:"earned"`
}

func handleBadges(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, BadgesResponse{
			Badges: quiz.Badges,
			Earned: game.Progress().Badges,
		})
	}
}
