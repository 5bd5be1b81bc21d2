package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wildminds/animalquiz/internal/quiz"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeGameError maps engine errors to HTTP statuses: unknown things are
// 404, precondition violations are 409, everything else is a 500.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrPackNotFound), errors.Is(err, quiz.ErrUnknownItem):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrPackLocked),
		errors.Is(err, quiz.ErrNoActiveSession),
		errors.Is(err, quiz.ErrSessionFinished),
		errors.Is(err, quiz.ErrNoFavorites),
		errors.Is(err, quiz.ErrNothingToReview),
		errors.Is(err, quiz.ErrInsufficientCoins),
		errors.Is(err, errNoMultiplayerGame):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
