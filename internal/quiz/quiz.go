// Package quiz implements the progression engine for the Animal Kingdom
// quiz game: levels, streaks, badges, daily challenges, the single-player
// session state machine and the multiplayer turn reducer. It has zero
// external dependencies — everything here is pure Go.
package quiz

import "errors"

var (
	ErrPackNotFound      = errors.New("pack not found")
	ErrPackLocked        = errors.New("pack is locked")
	ErrNoActiveSession   = errors.New("no active session")
	ErrSessionFinished   = errors.New("session already finished")
	ErrNoFavorites       = errors.New("no favorite questions yet")
	ErrNothingToReview   = errors.New("no wrong answers to review")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrUnknownItem       = errors.New("unknown shop item")
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	TrueFalse      QuestionType = "true-false"
	SoundID        QuestionType = "sound-id"
	ImageMatch     QuestionType = "image-match"
)

// Media holds optional asset references for a question.
type Media struct {
	Image string `json:"image,omitempty"`
	Video string `json:"video,omitempty"`
	Sound string `json:"sound,omitempty"`
}

// QuizItem is a single question. Answer must be one of Options.
type QuizItem struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Fact         string       `json:"fact"`
	Question     string       `json:"question"`
	QuestionType QuestionType `json:"questionType"`
	Options      []string     `json:"options"`
	Answer       string       `json:"answer"`
	Media        *Media       `json:"media,omitempty"`
}

// Pack is a named, ordered collection of questions on a theme.
type Pack struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Category    string     `json:"category,omitempty"`
	UnlockCost  int        `json:"unlockCost"`
	Items       []QuizItem `json:"items"`
}

// IsPseudo reports whether the pack is a synthetic runtime pack
// (favorites, review, daily challenge). Pseudo-packs never count as
// "completed" and carry no per-pack statistics.
func (p Pack) IsPseudo() bool {
	return p.ID == FavoritesPackID || p.ID == ReviewPackID || isDailyPackID(p.ID)
}

const (
	FavoritesPackID = "favorites"
	ReviewPackID    = "review"
	dailyPackPrefix = "daily-"
)

func isDailyPackID(id string) bool {
	return len(id) > len(dailyPackPrefix) && id[:len(dailyPackPrefix)] == dailyPackPrefix
}

// AnsweredQuestion records one answer event within a session.
type AnsweredQuestion struct {
	ID         string `json:"id"`
	PackID     string `json:"packId,omitempty"`
	Correct    bool   `json:"correct"`
	TimeSpent  int    `json:"timeSpent,omitempty"` // milliseconds
	AnsweredAt string `json:"answeredAt,omitempty"`
}

// WrongAnswer is a review-queue entry, at most one per question id.
type WrongAnswer struct {
	QuestionID    string `json:"questionId"`
	PackID        string `json:"packId"`
	WrongAnswer   string `json:"wrongAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	AnsweredAt    string `json:"answeredAt"`
}

// PackStats aggregates lifetime results for one catalog pack.
type PackStats struct {
	PackID         string `json:"packId"`
	TimesCompleted int    `json:"timesCompleted"`
	BestScore      int    `json:"bestScore"`
	BestTime       int    `json:"bestTime,omitempty"` // milliseconds, timed mode
	TotalCorrect   int    `json:"totalCorrect"`
	TotalAnswered  int    `json:"totalAnswered"`
	LastPlayedAt   string `json:"lastPlayedAt,omitempty"`
}

// DailyChallenge is the date-keyed question subset; one per calendar date.
type DailyChallenge struct {
	Date        string   `json:"date"`
	PackID      string   `json:"packId"`
	QuestionIDs []string `json:"questionIds"`
	Completed   bool     `json:"completed"`
	Score       int      `json:"score,omitempty"`
	TimeSpent   int      `json:"timeSpent,omitempty"`
}

// LifetimeStats counters only ever increase.
type LifetimeStats struct {
	TotalQuestionsAnswered   int `json:"totalQuestionsAnswered"`
	TotalCorrectAnswers      int `json:"totalCorrectAnswers"`
	TotalScore               int `json:"totalScore"`
	TotalXPEarned            int `json:"totalXpEarned"`
	TotalCoinsEarned         int `json:"totalCoinsEarned"`
	TotalTimePlayed          int `json:"totalTimePlayed"` // milliseconds
	FastestCorrectAnswer     int `json:"fastestCorrectAnswer,omitempty"`
	PerfectGames             int `json:"perfectGames"`
	DailyChallengesCompleted int `json:"dailyChallengesCompleted"`
}

// UserProgress is the central aggregate, persisted as one unit.
type UserProgress struct {
	Coins int `json:"coins"`
	XP    int `json:"xp"`
	Level int `json:"level"`

	CurrentPackID        string `json:"currentPackId,omitempty"`
	CurrentQuestionIndex int    `json:"currentQuestionIndex"`
	Score                int    `json:"score"`
	TimedMode            bool   `json:"timedMode"`
	SessionFinished      bool   `json:"sessionFinished,omitempty"`

	AnsweredQuestions []AnsweredQuestion `json:"answeredQuestions"`
	CompletedPacks    []string           `json:"completedPacks"`
	Badges            []string           `json:"badges"`

	CurrentStreak  int    `json:"currentStreak"`
	LongestStreak  int    `json:"longestStreak"`
	LastPlayedDate string `json:"lastPlayedDate,omitempty"`

	DailyChallengeHistory []DailyChallenge `json:"dailyChallengeHistory"`
	PackStats             []PackStats      `json:"packStats"`
	FavoriteAnimals       []string         `json:"favoriteAnimals"`
	WrongAnswers          []WrongAnswer    `json:"wrongAnswers"`
	UnlockedThemes        []string         `json:"unlockedThemes"`
	UnlockedPacks         []string         `json:"unlockedPacks"`
	LifetimeStats         LifetimeStats    `json:"lifetimeStats"`

	CreatedAt     string `json:"createdAt,omitempty"`
	LastUpdatedAt string `json:"lastUpdatedAt,omitempty"`
}

// HasBadge reports whether the badge id has already been unlocked.
func (p UserProgress) HasBadge(id string) bool {
	return contains(p.Badges, id)
}

// IsFavorite reports whether the question id is flagged as a favorite.
func (p UserProgress) IsFavorite(questionID string) bool {
	return contains(p.FavoriteAnimals, questionID)
}

// HasCompletedPack reports whether the pack id was ever finished.
func (p UserProgress) HasCompletedPack(id string) bool {
	return contains(p.CompletedPacks, id)
}

// statsFor returns the PackStats entry for packID, creating it if absent.
func (p *UserProgress) statsFor(packID string) *PackStats {
	for i := range p.PackStats {
		if p.PackStats[i].PackID == packID {
			return &p.PackStats[i]
		}
	}
	p.PackStats = append(p.PackStats, PackStats{PackID: packID})
	return &p.PackStats[len(p.PackStats)-1]
}

// PackStatsFor returns the stored stats for packID, if any.
func (p UserProgress) PackStatsFor(packID string) (PackStats, bool) {
	for _, ps := range p.PackStats {
		if ps.PackID == packID {
			return ps, true
		}
	}
	return PackStats{}, false
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// PlayerAnswer is one answered record within a multiplayer session.
type PlayerAnswer struct {
	ID      string `json:"id"`
	Correct bool   `json:"correct"`
}

// Player lives only for one multiplayer session.
type Player struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Score             int            `json:"score"`
	CorrectAnswers    int            `json:"correctAnswers"`
	AnsweredQuestions []PlayerAnswer `json:"answeredQuestions"`
}

type BadgeCategory string

const (
	CategoryProgress BadgeCategory = "progress"
	CategoryStreak   BadgeCategory = "streak"
	CategorySpeed    BadgeCategory = "speed"
	CategoryMastery  BadgeCategory = "mastery"
	CategorySpecial  BadgeCategory = "special"
)

// BadgeRequirement is a predicate descriptor; Type is an open set and
// unknown types always evaluate to false.
type BadgeRequirement struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

type BadgeReward struct {
	Coins int `json:"coins"`
	XP    int `json:"xp"`
}

// BadgeDefinition is a static catalog entry, never part of mutable state.
type BadgeDefinition struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Category    BadgeCategory    `json:"category"`
	Requirement BadgeRequirement `json:"requirement"`
	Reward      BadgeReward      `json:"reward"`
}
