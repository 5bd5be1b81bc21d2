package server

import (
	"net/http"

	"github.com/wildminds/animalquiz/internal/quiz"
)

type DailyResponse struct {
	Challenge   quiz.DailyChallenge `json:"challenge"`
	Completed   bool                `json:"completed"`
	Streak      int                 `json:"streak"`
	RewardCoins int                 `json:"rewardCoins"`
	RewardXP    int                 `json:"rewardXp"`
}

func handleDaily(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		challenge, completed, streak := game.Daily()
		writeJSON(w, http.StatusOK, DailyResponse{
			Challenge:   challenge,
			Completed:   completed,
			Streak:      streak,
			RewardCoins: quiz.DailyRewardCoins,
			RewardXP:    quiz.DailyRewardXP,
		})
	}
}
