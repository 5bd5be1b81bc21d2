package quiz

import (
	"fmt"
	"testing"
)

func mpPlayers(names ...string) []Player {
	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{Name: name}
	}
	return players
}

func TestMultiplayerRoundRobin(t *testing.T) {
	const questions = 4
	state := ReduceMultiplayer(MultiplayerState{}, ResetAction{Players: mpPlayers("Ana", "Ben", "Carla")})

	turns := 0
	for !state.ShouldShowResults {
		if turns > 3*questions {
			t.Fatal("game did not terminate")
		}
		wantPlayer := turns % 3
		wantQuestion := turns / 3
		if state.CurrentPlayerIndex != wantPlayer || state.CurrentQuestionIndex != wantQuestion {
			t.Fatalf("turn %d: cursor = (%d,%d), want (%d,%d)",
				turns, state.CurrentPlayerIndex, state.CurrentQuestionIndex, wantPlayer, wantQuestion)
		}
		state = ReduceMultiplayer(state, AnswerAction{
			PlayerIndex:    state.CurrentPlayerIndex,
			QuestionID:     fmt.Sprintf("q%d", state.CurrentQuestionIndex),
			IsCorrect:      true,
			Points:         10,
			TotalQuestions: questions,
		})
		turns++
	}

	if turns != 3*questions {
		t.Errorf("turns = %d, want %d (every player answers every question once)", turns, 3*questions)
	}
	for _, pl := range state.Players {
		if len(pl.AnsweredQuestions) != questions {
			t.Errorf("%s answered %d questions, want %d", pl.Name, len(pl.AnsweredQuestions), questions)
		}
		if pl.Score != questions*10 || pl.CorrectAnswers != questions {
			t.Errorf("%s: score=%d correct=%d", pl.Name, pl.Score, pl.CorrectAnswers)
		}
	}
}

func TestMultiplayerResultsOnlyOnFinalAnswer(t *testing.T) {
	state := ReduceMultiplayer(MultiplayerState{}, ResetAction{Players: mpPlayers("Ana", "Ben")})

	// One question, two players: results must wait for the second answer.
	state = ReduceMultiplayer(state, AnswerAction{PlayerIndex: 0, TotalQuestions: 1})
	if state.ShouldShowResults {
		t.Fatal("results shown before the last player answered")
	}
	if state.CurrentPlayerIndex != 1 || state.CurrentQuestionIndex != 0 {
		t.Fatalf("cursor = (%d,%d), want (1,0)", state.CurrentPlayerIndex, state.CurrentQuestionIndex)
	}

	state = ReduceMultiplayer(state, AnswerAction{PlayerIndex: 1, TotalQuestions: 1})
	if !state.ShouldShowResults {
		t.Error("results should show after the final answer")
	}
}

func TestMultiplayerWrongAnswerScoresNothing(t *testing.T) {
	state := ReduceMultiplayer(MultiplayerState{}, ResetAction{Players: mpPlayers("Ana", "Ben")})

	state = ReduceMultiplayer(state, AnswerAction{
		PlayerIndex: 0, QuestionID: "q0", IsCorrect: false, Points: 0, TotalQuestions: 3,
	})

	if got := state.Players[0]; got.Score != 0 || got.CorrectAnswers != 0 {
		t.Errorf("player 0 = %+v, want no score for a wrong answer", got)
	}
	if len(state.Players[0].AnsweredQuestions) != 1 {
		t.Error("wrong answers are still recorded")
	}
}

func TestMultiplayerReducerDoesNotMutateInput(t *testing.T) {
	state := ReduceMultiplayer(MultiplayerState{}, ResetAction{Players: mpPlayers("Ana", "Ben")})

	next := ReduceMultiplayer(state, AnswerAction{PlayerIndex: 0, IsCorrect: true, Points: 10, TotalQuestions: 2})

	if state.Players[0].Score != 0 {
		t.Error("input state mutated by the reducer")
	}
	if next.Players[0].Score != 10 {
		t.Error("output state missing the score")
	}
}

func TestMultiplayerClear(t *testing.T) {
	state := ReduceMultiplayer(MultiplayerState{}, ResetAction{Players: mpPlayers("Ana")})
	state = ReduceMultiplayer(state, AnswerAction{PlayerIndex: 0, TotalQuestions: 1})
	if !state.ShouldShowResults {
		t.Fatal("expected a finished game")
	}

	state = ReduceMultiplayer(state, ClearAction{})
	if len(state.Players) != 0 || state.ShouldShowResults {
		t.Errorf("clear left state behind: %+v", state)
	}
}

func TestRankPlayers(t *testing.T) {
	players := []Player{
		{Name: "Ana", Score: 20, CorrectAnswers: 2},
		{Name: "Ben", Score: 30, CorrectAnswers: 3},
		{Name: "Carla", Score: 20, CorrectAnswers: 4},
	}

	ranked := RankPlayers(players)

	want := []string{"Ben", "Carla", "Ana"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("rank %d = %s, want %s", i, ranked[i].Name, name)
		}
	}
	if players[0].Name != "Ana" {
		t.Error("RankPlayers must not reorder its input")
	}
}

func TestHasTie(t *testing.T) {
	tied := RankPlayers([]Player{{Name: "Ana", Score: 30}, {Name: "Ben", Score: 30}})
	if !HasTie(tied) {
		t.Error("equal top scores should tie")
	}
	decisive := RankPlayers([]Player{{Name: "Ana", Score: 30}, {Name: "Ben", Score: 20}})
	if HasTie(decisive) {
		t.Error("distinct top scores should not tie")
	}
	if HasTie([]Player{{Name: "Solo", Score: 30}}) {
		t.Error("one player can never tie")
	}
}
