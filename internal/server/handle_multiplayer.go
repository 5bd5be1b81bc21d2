package server

import (
	"net/http"
	"strings"

	"github.com/wildminds/animalquiz/internal/quiz"
)

type MultiplayerStartRequest struct {
	Players []string `json:"players"`
	PackID  string   `json:"packId"`
}

type MultiplayerStateResponse struct {
	State     quiz.MultiplayerState `json:"state"`
	Pack      quiz.Pack             `json:"pack"`
	Ranked    []quiz.Player         `json:"ranked,omitempty"`
	Tie       bool                  `json:"tie,omitempty"`
	InSession bool                  `json:"inSession"`
}

func handleMultiplayerStart(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MultiplayerStartRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Players) < 2 {
			writeError(w, http.StatusBadRequest, "at least two players required")
			return
		}
		if req.PackID == "" {
			writeError(w, http.StatusBadRequest, "packId is required")
			return
		}

		players := make([]quiz.Player, len(req.Players))
		for i, name := range req.Players {
			name = strings.TrimSpace(name)
			if name == "" {
				writeError(w, http.StatusBadRequest, "player names must not be blank")
				return
			}
			players[i] = quiz.Player{ID: name, Name: name}
		}

		state, pack, err := game.MultiplayerStart(players, req.PackID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MultiplayerStateResponse{
			State: state, Pack: pack, InSession: true,
		})
	}
}

type MultiplayerAnswerRequest struct {
	Answer string `json:"answer"`
}

type MultiplayerAnswerResponse struct {
	Correct       bool                  `json:"correct"`
	CorrectAnswer string                `json:"correctAnswer"`
	State         quiz.MultiplayerState `json:"state"`
	Ranked        []quiz.Player         `json:"ranked,omitempty"`
	Tie           bool                  `json:"tie,omitempty"`
}

func handleMultiplayerAnswer(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MultiplayerAnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Answer = strings.TrimSpace(req.Answer)
		if req.Answer == "" {
			writeError(w, http.StatusBadRequest, "answer is required")
			return
		}

		state, correct, correctAnswer, err := game.MultiplayerAnswer(req.Answer)
		if err != nil {
			writeGameError(w, err)
			return
		}

		resp := MultiplayerAnswerResponse{
			Correct:       correct,
			CorrectAnswer: correctAnswer,
			State:         state,
		}
		if state.ShouldShowResults {
			resp.Ranked = quiz.RankPlayers(state.Players)
			resp.Tie = quiz.HasTie(resp.Ranked)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleMultiplayerClear(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game.MultiplayerClear()
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

func handleMultiplayerState(game *Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, pack := game.Multiplayer()

		resp := MultiplayerStateResponse{
			State:     state,
			Pack:      pack,
			InSession: len(state.Players) > 0,
		}
		if state.ShouldShowResults {
			resp.Ranked = quiz.RankPlayers(state.Players)
			resp.Tie = quiz.HasTie(resp.Ranked)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
