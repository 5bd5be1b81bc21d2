package quiz

import (
	"fmt"
	"testing"
	"time"
)

func testPack(id string, n int) Pack {
	items := make([]QuizItem, n)
	for i := range items {
		items[i] = QuizItem{
			ID:           fmt.Sprintf("%s-q%d", id, i+1),
			Name:         fmt.Sprintf("Animal %d", i+1),
			Fact:         "A remarkable creature.",
			Question:     fmt.Sprintf("Question %d about %s?", i+1, id),
			QuestionType: MultipleChoice,
			Options:      []string{"Alpha", "Beta", "Gamma", "Delta"},
			Answer:       "Alpha",
		}
	}
	return Pack{ID: id, Name: id, Items: items}
}

func testCatalog() []Pack {
	return []Pack{
		testPack("mammals", 8),
		testPack("birds", 6),
		testPack("reptiles", 3),
	}
}

func TestGenerateDailyChallengeDeterministic(t *testing.T) {
	packs := testCatalog()
	today := Date{Year: 2026, Month: time.August, Day: 30}

	a := GenerateDailyChallenge(packs, today)
	b := GenerateDailyChallenge(packs, today)

	if a.PackID != b.PackID {
		t.Fatalf("pack differs between calls: %q vs %q", a.PackID, b.PackID)
	}
	if len(a.QuestionIDs) != len(b.QuestionIDs) {
		t.Fatalf("question count differs: %d vs %d", len(a.QuestionIDs), len(b.QuestionIDs))
	}
	for i := range a.QuestionIDs {
		if a.QuestionIDs[i] != b.QuestionIDs[i] {
			t.Errorf("question %d differs: %q vs %q", i, a.QuestionIDs[i], b.QuestionIDs[i])
		}
	}
}

func TestGenerateDailyChallengeSize(t *testing.T) {
	packs := testCatalog()
	// Walk a week of dates; every challenge picks at most 5 questions
	// and never duplicates an id.
	start := Date{Year: 2026, Month: time.August, Day: 24}
	for i := 0; i < 7; i++ {
		day := start.AddDays(i)
		c := GenerateDailyChallenge(packs, day)
		if len(c.QuestionIDs) > 5 {
			t.Errorf("%s: %d questions, want at most 5", day, len(c.QuestionIDs))
		}
		seen := map[string]bool{}
		for _, id := range c.QuestionIDs {
			if seen[id] {
				t.Errorf("%s: duplicate question id %q", day, id)
			}
			seen[id] = true
		}
	}
}

func TestGenerateDailyChallengeSmallPack(t *testing.T) {
	packs := []Pack{testPack("reptiles", 3)}
	c := GenerateDailyChallenge(packs, Date{Year: 2026, Month: time.August, Day: 30})

	if len(c.QuestionIDs) != 3 {
		t.Errorf("small pack: got %d questions, want 3", len(c.QuestionIDs))
	}
}

func TestTodayChallengePrefersHistory(t *testing.T) {
	packs := testCatalog()
	today := Date{Year: 2026, Month: time.August, Day: 30}

	p := DefaultProgress()
	stored := DailyChallenge{
		Date:        today.String(),
		PackID:      "birds",
		QuestionIDs: []string{"birds-q1"},
		Completed:   true,
	}
	p.DailyChallengeHistory = []DailyChallenge{stored}

	got := TodayChallenge(p, packs, today)
	if got.PackID != "birds" || !got.Completed {
		t.Errorf("expected the stored challenge back, got %+v", got)
	}
}

func TestCompleteDailyChallengeUpsertsByDate(t *testing.T) {
	today := Date{Year: 2026, Month: time.August, Day: 30}
	p := DefaultProgress()
	c := DailyChallenge{Date: today.String(), PackID: "mammals", QuestionIDs: []string{"mammals-q1"}}
	p.DailyChallengeHistory = []DailyChallenge{c}

	CompleteDailyChallenge(&p, c, 40, 90000)

	if len(p.DailyChallengeHistory) != 1 {
		t.Fatalf("history length = %d, want 1 (upsert by date)", len(p.DailyChallengeHistory))
	}
	got := p.DailyChallengeHistory[0]
	if !got.Completed || got.Score != 40 || got.TimeSpent != 90000 {
		t.Errorf("entry = %+v", got)
	}
	if p.LifetimeStats.DailyChallengesCompleted != 1 {
		t.Errorf("counter = %d, want 1", p.LifetimeStats.DailyChallengesCompleted)
	}
}

func TestDailyChallengeStreak(t *testing.T) {
	today := Date{Year: 2026, Month: time.August, Day: 30}
	p := DefaultProgress()
	for i := 0; i < 3; i++ {
		p.DailyChallengeHistory = append(p.DailyChallengeHistory, DailyChallenge{
			Date:      today.AddDays(-i).String(),
			Completed: true,
		})
	}
	// A hole four days back ends the run.
	p.DailyChallengeHistory = append(p.DailyChallengeHistory, DailyChallenge{
		Date:      today.AddDays(-4).String(),
		Completed: true,
	})

	if got := DailyChallengeStreak(p, today); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}
