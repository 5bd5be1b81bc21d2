package quiz

// StreakUpdate is the result of advancing the streak clock for one play.
// The caller persists the returned fields and awards any bonus coins.
type StreakUpdate struct {
	CurrentStreak  int
	LongestStreak  int
	LastPlayedDate string
	StreakBroken   bool
	IsNewDay       bool
}

// UpdateStreak computes the next streak state given today's date. Pure:
// it never mutates p. Rules, in order: no prior play starts a streak of 1;
// playing again the same day is a no-op; playing the day after the last
// play increments; any longer gap resets to 1, with StreakBroken set when
// a non-zero streak was lost. LongestStreak never decreases.
func UpdateStreak(p UserProgress, today Date) StreakUpdate {
	last, err := ParseDate(p.LastPlayedDate)
	if p.LastPlayedDate == "" || err != nil {
		longest := p.LongestStreak
		if longest < 1 {
			longest = 1
		}
		return StreakUpdate{
			CurrentStreak:  1,
			LongestStreak:  longest,
			LastPlayedDate: today.String(),
			IsNewDay:       true,
		}
	}

	if last.Equal(today) {
		return StreakUpdate{
			CurrentStreak:  p.CurrentStreak,
			LongestStreak:  p.LongestStreak,
			LastPlayedDate: p.LastPlayedDate,
		}
	}

	if last.IsNextDay(today) {
		next := p.CurrentStreak + 1
		longest := p.LongestStreak
		if next > longest {
			longest = next
		}
		return StreakUpdate{
			CurrentStreak:  next,
			LongestStreak:  longest,
			LastPlayedDate: today.String(),
			IsNewDay:       true,
		}
	}

	return StreakUpdate{
		CurrentStreak:  1,
		LongestStreak:  p.LongestStreak,
		LastPlayedDate: today.String(),
		StreakBroken:   p.CurrentStreak > 0,
		IsNewDay:       true,
	}
}

// StreakBonus returns the bonus coins for a streak length.
func StreakBonus(streak int) int {
	switch {
	case streak >= 30:
		return 10
	case streak >= 14:
		return 7
	case streak >= 7:
		return 5
	case streak >= 3:
		return 3
	default:
		return 0
	}
}

// StreakMessage returns the milestone message for a streak length, or ""
// when the length is not a milestone.
func StreakMessage(streak int) string {
	switch streak {
	case 3:
		return "3-day streak! +3 bonus coins"
	case 7:
		return "1-week streak! +5 bonus coins"
	case 14:
		return "2-week streak! +7 bonus coins"
	case 30:
		return "30-day streak! +10 bonus coins"
	case 50:
		return "50-day streak! Amazing dedication!"
	case 100:
		return "100-day streak! You're legendary!"
	case 365:
		return "1-year streak! Incredible!"
	}
	return ""
}

// IsStreakAtRisk reports whether the streak breaks unless the player
// plays today (last play was exactly yesterday).
func IsStreakAtRisk(p UserProgress, today Date) bool {
	last, err := ParseDate(p.LastPlayedDate)
	if p.LastPlayedDate == "" || err != nil {
		return false
	}
	return last.IsNextDay(today)
}
