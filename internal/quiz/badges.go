package quiz

import (
	"strings"
	"time"
)

// Badges is the static badge catalog. Requirement types are evaluated by
// checkRequirement; ids already present in progress are never re-evaluated.
var Badges = []BadgeDefinition{
	// Progress
	{
		ID: "first-quiz", Name: "First Steps", Description: "Complete your first quiz",
		Icon: "🎯", Category: CategoryProgress,
		Requirement: BadgeRequirement{Type: "completedPacks", Value: 1},
		Reward:      BadgeReward{Coins: 5, XP: 50},
	},
	{
		ID: "pack-master", Name: "Pack Master", Description: "Complete all 6 animal packs",
		Icon: "🏆", Category: CategoryProgress,
		Requirement: BadgeRequirement{Type: "completedPacks", Value: 6},
		Reward:      BadgeReward{Coins: 50, XP: 500},
	},
	{
		ID: "centurion", Name: "Centurion", Description: "Answer 100 questions correctly",
		Icon: "💯", Category: CategoryProgress,
		Requirement: BadgeRequirement{Type: "correctAnswers", Value: 100},
		Reward:      BadgeReward{Coins: 25, XP: 250},
	},
	{
		ID: "quiz-marathon", Name: "Quiz Marathon", Description: "Answer 500 questions total",
		Icon: "🏃", Category: CategoryProgress,
		Requirement: BadgeRequirement{Type: "totalAnswered", Value: 500},
		Reward:      BadgeReward{Coins: 50, XP: 500},
	},

	// Streak
	{
		ID: "streak-3", Name: "Getting Started", Description: "Maintain a 3-day streak",
		Icon: "🔥", Category: CategoryStreak,
		Requirement: BadgeRequirement{Type: "streak", Value: 3},
		Reward:      BadgeReward{Coins: 10, XP: 100},
	},
	{
		ID: "streak-7", Name: "Week Warrior", Description: "Maintain a 7-day streak",
		Icon: "⚡", Category: CategoryStreak,
		Requirement: BadgeRequirement{Type: "streak", Value: 7},
		Reward:      BadgeReward{Coins: 25, XP: 250},
	},
	{
		ID: "streak-30", Name: "Monthly Master", Description: "Maintain a 30-day streak",
		Icon: "🌟", Category: CategoryStreak,
		Requirement: BadgeRequirement{Type: "streak", Value: 30},
		Reward:      BadgeReward{Coins: 100, XP: 1000},
	},
	{
		ID: "streak-100", Name: "Legendary Learner", Description: "Maintain a 100-day streak",
		Icon: "👑", Category: CategoryStreak,
		Requirement: BadgeRequirement{Type: "streak", Value: 100},
		Reward:      BadgeReward{Coins: 500, XP: 5000},
	},

	// Speed
	{
		ID: "speedster", Name: "Speedster", Description: "Complete a timed quiz in under 60 seconds",
		Icon: "⚡", Category: CategorySpeed,
		Requirement: BadgeRequirement{Type: "timedQuizUnder", Value: 60000},
		Reward:      BadgeReward{Coins: 15, XP: 150},
	},
	{
		ID: "lightning-fast", Name: "Lightning Fast", Description: "Answer a question correctly in under 3 seconds",
		Icon: "💨", Category: CategorySpeed,
		Requirement: BadgeRequirement{Type: "fastAnswer", Value: 3000},
		Reward:      BadgeReward{Coins: 10, XP: 100},
	},

	// Mastery
	{
		ID: "perfect-pack", Name: "Perfect Pack", Description: "Complete a pack with 100% accuracy",
		Icon: "✨", Category: CategoryMastery,
		Requirement: BadgeRequirement{Type: "perfectPack", Value: 1},
		Reward:      BadgeReward{Coins: 20, XP: 200},
	},
	{
		ID: "mammal-expert", Name: "Mammal Expert", Description: "Complete the Mammals pack 3 times",
		Icon: "🦁", Category: CategoryMastery,
		Requirement: BadgeRequirement{Type: "packCompletions_mammals", Value: 3},
		Reward:      BadgeReward{Coins: 15, XP: 150},
	},
	{
		ID: "bird-watcher", Name: "Bird Watcher", Description: "Complete the Birds pack 3 times",
		Icon: "🦅", Category: CategoryMastery,
		Requirement: BadgeRequirement{Type: "packCompletions_birds", Value: 3},
		Reward:      BadgeReward{Coins: 15, XP: 150},
	},
	{
		ID: "reptile-ranger", Name: "Reptile Ranger", Description: "Complete the Reptiles pack 3 times",
		Icon: "🦎", Category: CategoryMastery,
		Requirement: BadgeRequirement{Type: "packCompletions_reptiles", Value: 3},
		Reward:      BadgeReward{Coins: 15, XP: 150},
	},
	{
		ID: "fish-finder", Name: "Fish Finder", Description: "Complete the Fish pack 3 times",
		Icon: "🐠", Category: CategoryMastery,
		Requirement: BadgeRequirement{Type: "packCompletions_fish", Value: 3},
		Reward:      BadgeReward{Coins: 15, XP: 150},
	},
	{
		ID: "amphibian-ace", Name: "Amphibian Ace", Description: "Complete the Amphibians pack 3 times",
		Icon: "🐸", Category: CategoryMastery,
		Requirement: BadgeRequirement{Type: "packCompletions_amphibians", Value: 3},
		Reward:      BadgeReward{Coins: 15, XP: 150},
	},
	{
		ID: "insect-investigator", Name: "Insect Investigator", Description: "Complete the Insects pack 3 times",
		Icon: "🦋", Category: CategoryMastery,
		Requirement: BadgeRequirement{Type: "packCompletions_insects", Value: 3},
		Reward:      BadgeReward{Coins: 15, XP: 150},
	},

	// Special
	{
		ID: "night-owl", Name: "Night Owl", Description: "Play a quiz between midnight and 5 AM",
		Icon: "🦉", Category: CategorySpecial,
		Requirement: BadgeRequirement{Type: "nightPlay", Value: 1},
		Reward:      BadgeReward{Coins: 10, XP: 100},
	},
	{
		ID: "early-bird", Name: "Early Bird", Description: "Play a quiz between 5 AM and 7 AM",
		Icon: "🐦", Category: CategorySpecial,
		Requirement: BadgeRequirement{Type: "earlyPlay", Value: 1},
		Reward:      BadgeReward{Coins: 10, XP: 100},
	},
	{
		ID: "daily-devotee", Name: "Daily Devotee", Description: "Complete 10 daily challenges",
		Icon: "📅", Category: CategorySpecial,
		Requirement: BadgeRequirement{Type: "dailyChallenges", Value: 10},
		Reward:      BadgeReward{Coins: 30, XP: 300},
	},
	{
		ID: "coin-collector", Name: "Coin Collector", Description: "Earn 100 coins total",
		Icon: "💰", Category: CategorySpecial,
		Requirement: BadgeRequirement{Type: "totalCoins", Value: 100},
		Reward:      BadgeReward{Coins: 20, XP: 200},
	},
	{
		ID: "level-10", Name: "Rising Star", Description: "Reach level 10",
		Icon: "⭐", Category: CategorySpecial,
		Requirement: BadgeRequirement{Type: "level", Value: 10},
		Reward:      BadgeReward{Coins: 50},
	},
	{
		ID: "level-15", Name: "Animal Master", Description: "Reach level 15 (max level)",
		Icon: "🎖️", Category: CategorySpecial,
		Requirement: BadgeRequirement{Type: "level", Value: 15},
		Reward:      BadgeReward{Coins: 200},
	},
}

// SessionData carries ephemeral per-session facts into badge evaluation.
// Zero millisecond values mean "not measured this session".
type SessionData struct {
	PerfectPack   bool
	TimedQuizTime int // total session duration, milliseconds
	FastestAnswer int // fastest correct answer, milliseconds
}

const packCompletionsPrefix = "packCompletions_"

func checkRequirement(b BadgeDefinition, p UserProgress, session *SessionData, now time.Time) bool {
	req := b.Requirement
	switch req.Type {
	case "completedPacks":
		return len(p.CompletedPacks) >= req.Value
	case "correctAnswers":
		return p.LifetimeStats.TotalCorrectAnswers >= req.Value
	case "totalAnswered":
		return p.LifetimeStats.TotalQuestionsAnswered >= req.Value
	case "streak":
		return p.CurrentStreak >= req.Value || p.LongestStreak >= req.Value
	case "perfectPack":
		return session != nil && session.PerfectPack
	case "timedQuizUnder":
		return session != nil && session.TimedQuizTime > 0 && session.TimedQuizTime < req.Value
	case "fastAnswer":
		return session != nil && session.FastestAnswer > 0 && session.FastestAnswer < req.Value
	case "nightPlay":
		h := now.Hour()
		return h >= 0 && h < 5
	case "earlyPlay":
		h := now.Hour()
		return h >= 5 && h < 7
	case "dailyChallenges":
		return p.LifetimeStats.DailyChallengesCompleted >= req.Value
	case "totalCoins":
		return p.LifetimeStats.TotalCoinsEarned >= req.Value
	case "level":
		return CalculateLevel(p.XP) >= req.Value
	default:
		if packID, ok := strings.CutPrefix(req.Type, packCompletionsPrefix); ok {
			stats, found := p.PackStatsFor(packID)
			return found && stats.TimesCompleted >= req.Value
		}
		// Unknown requirement types fail closed.
		return false
	}
}

// NewBadges returns every catalog badge not yet held whose requirement is
// satisfied by the cumulative progress, the optional session facts, or the
// wall clock. The caller merges the ids into progress and applies rewards.
func NewBadges(p UserProgress, session *SessionData, now time.Time) []BadgeDefinition {
	var earned []BadgeDefinition
	for _, b := range Badges {
		if p.HasBadge(b.ID) {
			continue
		}
		if checkRequirement(b, p, session, now) {
			earned = append(earned, b)
		}
	}
	return earned
}

// BadgeByID looks up a catalog entry.
func BadgeByID(id string) (BadgeDefinition, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return BadgeDefinition{}, false
}

// SumBadgeRewards totals the rewards of the given badges.
func SumBadgeRewards(badges []BadgeDefinition) BadgeReward {
	var total BadgeReward
	for _, b := range badges {
		total.Coins += b.Reward.Coins
		total.XP += b.Reward.XP
	}
	return total
}
