package quiz

import "sort"

// MultiplayerState is the pass-and-play turn machine: Active while
// ShouldShowResults is false, Finished (terminal) once it flips true.
type MultiplayerState struct {
	Players              []Player `json:"players"`
	CurrentPlayerIndex   int      `json:"currentPlayerIndex"`
	CurrentQuestionIndex int      `json:"currentQuestionIndex"`
	ShouldShowResults    bool     `json:"shouldShowResults"`
}

// MultiplayerAction is the closed set of transitions: ResetAction,
// AnswerAction, ClearAction.
type MultiplayerAction interface {
	isMultiplayerAction()
}

// ResetAction reinitializes to an Active state with the supplied players
// and the cursor at (player 0, question 0).
type ResetAction struct {
	Players []Player
}

// AnswerAction records the current player's answer and advances the turn.
// PlayerIndex must reference the player whose turn it is; the reducer uses
// the supplied index as given.
type AnswerAction struct {
	PlayerIndex    int
	QuestionID     string
	IsCorrect      bool
	Points         int
	TotalQuestions int
}

// ClearAction reinitializes to an empty Active state, used when a session
// is abandoned.
type ClearAction struct{}

func (ResetAction) isMultiplayerAction()  {}
func (AnswerAction) isMultiplayerAction() {}
func (ClearAction) isMultiplayerAction()  {}

// ReduceMultiplayer applies one action and returns the next state. Each
// transition is atomic; a Finished state only changes via Reset or Clear.
//
// Advancement order matters: "last player AND last question" is checked
// before "last player only", which guarantees every player answers every
// question exactly once, in strict round-robin order, before the game ends.
func ReduceMultiplayer(state MultiplayerState, action MultiplayerAction) MultiplayerState {
	switch a := action.(type) {
	case ResetAction:
		return MultiplayerState{Players: a.Players}

	case AnswerAction:
		players := make([]Player, len(state.Players))
		copy(players, state.Players)
		if a.PlayerIndex >= 0 && a.PlayerIndex < len(players) {
			pl := &players[a.PlayerIndex]
			pl.Score += a.Points
			if a.IsCorrect {
				pl.CorrectAnswers++
			}
			pl.AnsweredQuestions = append(append([]PlayerAnswer(nil), pl.AnsweredQuestions...),
				PlayerAnswer{ID: a.QuestionID, Correct: a.IsCorrect})
		}

		isLastPlayer := a.PlayerIndex >= len(state.Players)-1
		isLastQuestion := state.CurrentQuestionIndex >= a.TotalQuestions-1

		next := state
		next.Players = players
		switch {
		case isLastPlayer && isLastQuestion:
			next.ShouldShowResults = true
		case isLastPlayer:
			next.CurrentPlayerIndex = 0
			next.CurrentQuestionIndex = state.CurrentQuestionIndex + 1
		default:
			next.CurrentPlayerIndex = state.CurrentPlayerIndex + 1
		}
		return next

	case ClearAction:
		return MultiplayerState{}

	default:
		return state
	}
}

// RankPlayers orders players by score descending, ties broken by
// correct-answer count. The input is not modified.
func RankPlayers(players []Player) []Player {
	ranked := make([]Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].CorrectAnswers > ranked[j].CorrectAnswers
	})
	return ranked
}

// HasTie reports whether at least two players share the top score.
func HasTie(ranked []Player) bool {
	if len(ranked) < 2 {
		return false
	}
	return ranked[0].Score == ranked[1].Score
}
