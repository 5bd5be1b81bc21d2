package quiz

import "encoding/json"

// Defaults for a brand-new profile.
var (
	defaultUnlockedThemes = []string{"forest"}
	defaultUnlockedPacks  = []string{"mammals", "birds", "reptiles", "fish", "amphibians", "insects"}
)

// DefaultProgress returns the initial progress for a first-time player.
func DefaultProgress() UserProgress {
	return UserProgress{
		Coins:             10,
		Level:             1,
		AnsweredQuestions: []AnsweredQuestion{},
		CompletedPacks:    []string{},
		Badges:            []string{},
		DailyChallengeHistory: []DailyChallenge{},
		PackStats:             []PackStats{},
		FavoriteAnimals:       []string{},
		WrongAnswers:          []WrongAnswer{},
		UnlockedThemes:        append([]string(nil), defaultUnlockedThemes...),
		UnlockedPacks:         append([]string(nil), defaultUnlockedPacks...),
	}
}

// DecodeProgress loads a persisted progress blob with field-by-field
// defaulting: fields missing from the blob keep their default values, and
// a blob that fails to parse at all yields a fresh default profile. It
// never returns an error; older or partial blobs must always load.
func DecodeProgress(raw []byte) UserProgress {
	p := DefaultProgress()
	if len(raw) == 0 {
		return p
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return DefaultProgress()
	}
	// nil slices from explicit JSON nulls fall back to empty.
	if p.AnsweredQuestions == nil {
		p.AnsweredQuestions = []AnsweredQuestion{}
	}
	if p.CompletedPacks == nil {
		p.CompletedPacks = []string{}
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	if p.DailyChallengeHistory == nil {
		p.DailyChallengeHistory = []DailyChallenge{}
	}
	if p.PackStats == nil {
		p.PackStats = []PackStats{}
	}
	if p.FavoriteAnimals == nil {
		p.FavoriteAnimals = []string{}
	}
	if p.WrongAnswers == nil {
		p.WrongAnswers = []WrongAnswer{}
	}
	if p.UnlockedThemes == nil {
		p.UnlockedThemes = append([]string(nil), defaultUnlockedThemes...)
	}
	if p.UnlockedPacks == nil {
		p.UnlockedPacks = append([]string(nil), defaultUnlockedPacks...)
	}
	return p
}

// EncodeProgress serializes progress for persistence.
func EncodeProgress(p UserProgress) ([]byte, error) {
	return json.Marshal(p)
}
