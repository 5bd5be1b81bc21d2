package quiz

import (
	"math"
	"sort"
)

// Fixed rewards for completing a daily challenge.
const (
	DailyRewardCoins = 10
	DailyRewardXP    = 50
	dailyQuestions   = 5
)

// seededRandom is a deterministic pseudo-random value in [0,1) for a seed.
// It must stay stable across releases: the same date has to produce the
// same challenge forever.
func seededRandom(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

func dateSeed(d Date) int {
	return d.Year*10000 + int(d.Month)*100 + d.Day
}

// GenerateDailyChallenge deterministically selects a pack and up to five of
// its question ids for the given date. Same date and catalog always yield
// the same challenge, independent of call order or prior history.
func GenerateDailyChallenge(packs []Pack, today Date) DailyChallenge {
	seed := dateSeed(today)

	pack := packs[int(seededRandom(seed)*float64(len(packs)))]

	n := dailyQuestions
	if len(pack.Items) < n {
		n = len(pack.Items)
	}

	indices := make([]int, len(pack.Items))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return seededRandom(seed+indices[a]) < seededRandom(seed+indices[b])
	})

	ids := make([]string, 0, n)
	for _, i := range indices[:n] {
		ids = append(ids, pack.Items[i].ID)
	}

	return DailyChallenge{
		Date:        today.String(),
		PackID:      pack.ID,
		QuestionIDs: ids,
	}
}

// TodayChallenge returns the stored challenge for today when present in
// history, else generates a fresh one. Generation does not persist anything;
// the challenge only enters history when started or completed.
func TodayChallenge(p UserProgress, packs []Pack, today Date) DailyChallenge {
	key := today.String()
	for _, c := range p.DailyChallengeHistory {
		if c.Date == key {
			return c
		}
	}
	return GenerateDailyChallenge(packs, today)
}

// IsDailyCompleted reports whether today's challenge has been completed.
func IsDailyCompleted(p UserProgress, today Date) bool {
	key := today.String()
	for _, c := range p.DailyChallengeHistory {
		if c.Date == key && c.Completed {
			return true
		}
	}
	return false
}

// ChallengeQuestions resolves the challenge's question ids against the
// catalog, skipping ids that no longer exist.
func ChallengeQuestions(c DailyChallenge, packs []Pack) []QuizItem {
	var pack *Pack
	for i := range packs {
		if packs[i].ID == c.PackID {
			pack = &packs[i]
			break
		}
	}
	if pack == nil {
		return nil
	}

	var items []QuizItem
	for _, id := range c.QuestionIDs {
		for _, item := range pack.Items {
			if item.ID == id {
				items = append(items, item)
				break
			}
		}
	}
	return items
}

// CompleteDailyChallenge upserts the challenge into history by date with
// completed=true and increments the lifetime counter. It does not check for
// prior completion of the same date; the engine invokes it exactly once per
// terminal daily transition.
func CompleteDailyChallenge(p *UserProgress, c DailyChallenge, score, timeSpent int) {
	c.Completed = true
	c.Score = score
	c.TimeSpent = timeSpent

	kept := p.DailyChallengeHistory[:0]
	for _, e := range p.DailyChallengeHistory {
		if e.Date != c.Date {
			kept = append(kept, e)
		}
	}
	p.DailyChallengeHistory = append(kept, c)
	p.LifetimeStats.DailyChallengesCompleted++
}

// DailyChallengeStreak counts consecutive days ending today (or yesterday
// rolling into today) with a completed challenge.
func DailyChallengeStreak(p UserProgress, today Date) int {
	completed := make(map[string]bool, len(p.DailyChallengeHistory))
	for _, c := range p.DailyChallengeHistory {
		if c.Completed {
			completed[c.Date] = true
		}
	}

	streak := 0
	for d := today; completed[d.String()]; d = d.AddDays(-1) {
		streak++
	}
	return streak
}
