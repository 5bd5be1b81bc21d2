package quiz

// QuestReward is what completing a weekly quest pays out.
type QuestReward struct {
	Type   string `json:"type"` // "coins" or "xp"
	Amount int    `json:"amount"`
}

// QuestDefinition is a static weekly quest; progress derives from the
// lifetime stats, so quests carry no state of their own.
type QuestDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Target      int         `json:"target"`
	Reward      QuestReward `json:"reward"`
}

var WeeklyQuests = []QuestDefinition{
	{ID: "answer-master", Name: "Answer Master", Description: "Answer 50 questions", Target: 50, Reward: QuestReward{Type: "coins", Amount: 100}},
	{ID: "accuracy-ace", Name: "Accuracy Ace", Description: "Get 30 answers correct", Target: 30, Reward: QuestReward{Type: "xp", Amount: 200}},
	{ID: "pack-explorer", Name: "Pack Explorer", Description: "Complete 3 different packs", Target: 3, Reward: QuestReward{Type: "coins", Amount: 75}},
	{ID: "streak-keeper", Name: "Streak Keeper", Description: "Keep a 5-day streak alive", Target: 5, Reward: QuestReward{Type: "xp", Amount: 150}},
	{ID: "perfectionist", Name: "Perfectionist", Description: "Earn 2 perfect scores", Target: 2, Reward: QuestReward{Type: "coins", Amount: 150}},
	{ID: "quiz-champion", Name: "Quiz Champion", Description: "Get 100 answers correct", Target: 100, Reward: QuestReward{Type: "xp", Amount: 500}},
}

// QuestStatus is a quest with the player's progress toward it.
type QuestStatus struct {
	QuestDefinition
	Progress int  `json:"progress"`
	Complete bool `json:"complete"`
}

// QuestProgress computes the read-only status of every weekly quest from
// the progress aggregate.
func QuestProgress(p UserProgress) []QuestStatus {
	statuses := make([]QuestStatus, 0, len(WeeklyQuests))
	for _, q := range WeeklyQuests {
		var n int
		switch q.ID {
		case "answer-master":
			n = p.LifetimeStats.TotalQuestionsAnswered
		case "accuracy-ace", "quiz-champion":
			n = p.LifetimeStats.TotalCorrectAnswers
		case "pack-explorer":
			n = len(p.CompletedPacks)
		case "streak-keeper":
			n = p.CurrentStreak
		case "perfectionist":
			n = p.LifetimeStats.PerfectGames
		}
		if n > q.Target {
			n = q.Target
		}
		statuses = append(statuses, QuestStatus{
			QuestDefinition: q,
			Progress:        n,
			Complete:        n >= q.Target,
		})
	}
	return statuses
}
