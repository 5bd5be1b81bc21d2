package server

import (
	"net/http"

	"github.com/wildminds/animalquiz/internal/quiz"
)

// PackInfo is a catalog entry enriched with the player's standing.
type PackInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Icon          string `json:"icon,omitempty"`
	Category      string `json:"category,omitempty"`
	UnlockCost    int    `json:"unlockCost"`
	QuestionCount int    `json:"questionCount"`
	Unlocked      bool   `json:"unlocked"`
	Completed     bool   `json:"completed"`
	BestScore     int    `json:"bestScore,omitempty"`
	TimesPlayed   int    `json:"timesPlayed,omitempty"`
}

type PacksResponse struct {
	Packs          []PackInfo `json:"packs"`
	TotalQuestions int        `json:"totalQuestions"`
}

func handlePacks(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := game.Catalog()
		progress := game.Progress()

		resp := PacksResponse{Packs: make([]PackInfo, 0, len(catalog))}
		for _, p := range catalog {
			info := PackInfo{
				ID:            p.ID,
				Name:          p.Name,
				Description:   p.Description,
				Icon:          p.Icon,
				Category:      p.Category,
				UnlockCost:    p.UnlockCost,
				QuestionCount: len(p.Items),
				Unlocked:      p.UnlockCost == 0 || unlocked(progress, p.ID),
				Completed:     progress.HasCompletedPack(p.ID),
			}
			if st, ok := progress.PackStatsFor(p.ID); ok {
				info.BestScore = st.BestScore
				info.TimesPlayed = st.TimesCompleted
			}
			resp.Packs = append(resp.Packs, info)
			resp.TotalQuestions += len(p.Items)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func unlocked(p quiz.UserProgress, packID string) bool {
	for _, id := range p.UnlockedPacks {
		if id == packID {
			return true
		}
	}
	return false
}
