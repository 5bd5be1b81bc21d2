package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wildminds/animalquiz/internal/quiz"
)

// ShopResponse is the full storefront with ownership flags.
type ShopResponse struct {
	Coins  int         `json:"coins"`
	Themes []ShopEntry `json:"themes"`
	Packs  []ShopEntry `json:"packs"`
}

type ShopEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Owned       bool   `json:"owned"`
}

func handleShop(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := game.Progress()

		resp := ShopResponse{Coins: p.Coins}
		for _, t := range quiz.ShopThemes {
			resp.Themes = append(resp.Themes, ShopEntry{
				ID: t.ID, Name: t.Name, Price: t.Price, Description: t.Description,
				Owned: contains(p.UnlockedThemes, t.ID),
			})
		}
		for _, sp := range quiz.PremiumPacks {
			resp.Packs = append(resp.Packs, ShopEntry{
				ID: sp.ID, Name: sp.Name, Price: sp.Price, Description: sp.Description,
				Owned: contains(p.UnlockedPacks, sp.ID),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// PurchaseResponse reflects the wallet and unlocks after a purchase.
type PurchaseResponse struct {
	Coins          int      `json:"coins"`
	UnlockedThemes []string `json:"unlockedThemes"`
	UnlockedPacks  []string `json:"unlockedPacks"`
}

func handlePurchaseTheme(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := game.PurchaseTheme(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PurchaseResponse{
			Coins:          p.Coins,
			UnlockedThemes: p.UnlockedThemes,
			UnlockedPacks:  p.UnlockedPacks,
		})
	}
}

func handlePurchasePack(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := game.PurchasePack(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PurchaseResponse{
			Coins:          p.Coins,
			UnlockedThemes: p.UnlockedThemes,
			UnlockedPacks:  p.UnlockedPacks,
		})
	}
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
