package quiz

import (
	"strings"
	"time"
)

// Scoring constants for single-player answers.
const (
	PointsPerCorrect = 10
	CoinsPerCorrect  = 1
	XPPerCorrect     = 15
	XPPerIncorrect   = 5
	SkipCost         = 2
)

// Engine is the single-player progress state machine. It owns the
// UserProgress aggregate; every transition updates all derived numbers
// (lifetime stats, streak, badges) synchronously so persisted state is
// always self-consistent. Not safe for concurrent use; the host
// serializes transitions.
type Engine struct {
	progress UserProgress
	catalog  []Pack
	active   *Pack
	finished bool
	started  time.Time

	now func() time.Time
}

// NewEngine wraps an existing progress record and the pack catalog. When
// the record points at an in-flight catalog session it is restored so the
// player resumes where they left off.
func NewEngine(p UserProgress, catalog []Pack) *Engine {
	e := &Engine{progress: p, catalog: catalog, now: time.Now}

	if id := p.CurrentPackID; id != "" {
		if pack, ok := e.catalogPack(id); ok {
			e.active = &pack
			e.finished = p.SessionFinished
		}
	}
	return e
}

// Progress returns a copy of the current progress aggregate.
func (e *Engine) Progress() UserProgress {
	return e.progress
}

// Catalog returns the pack catalog the engine was built with.
func (e *Engine) Catalog() []Pack {
	return e.catalog
}

// ActivePack returns the pack of the in-flight session, if any.
func (e *Engine) ActivePack() (Pack, bool) {
	if e.active == nil {
		return Pack{}, false
	}
	return *e.active, true
}

// Finished reports whether the active session reached its terminal state.
func (e *Engine) Finished() bool {
	return e.finished
}

// Today returns the engine's current calendar date.
func (e *Engine) Today() Date {
	return DateOf(e.now())
}

func (e *Engine) catalogPack(id string) (Pack, bool) {
	for _, p := range e.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Pack{}, false
}

// CurrentQuestion returns the question at the session cursor.
func (e *Engine) CurrentQuestion() (QuizItem, error) {
	if e.active == nil {
		return QuizItem{}, ErrNoActiveSession
	}
	if e.finished {
		return QuizItem{}, ErrSessionFinished
	}
	return e.active.Items[e.progress.CurrentQuestionIndex], nil
}

// StartResult reports what happened when a session started.
type StartResult struct {
	Pack          Pack
	Streak        StreakUpdate
	StreakBonus   int
	StreakMessage string
}

// StartPack begins a single-player session on a catalog pack. This is the
// sole point where the streak clock advances for single-player play.
func (e *Engine) StartPack(packID string, timed bool) (StartResult, error) {
	pack, ok := e.catalogPack(packID)
	if !ok {
		return StartResult{}, ErrPackNotFound
	}
	if pack.UnlockCost > 0 && !contains(e.progress.UnlockedPacks, pack.ID) {
		return StartResult{}, ErrPackLocked
	}
	return e.startSession(pack, true, timed), nil
}

// StartDailyChallenge begins today's challenge as a daily pseudo-pack,
// recording the (not yet completed) challenge in history.
func (e *Engine) StartDailyChallenge() (StartResult, error) {
	today := e.Today()
	challenge := TodayChallenge(e.progress, e.catalog, today)
	items := ChallengeQuestions(challenge, e.catalog)
	if len(items) == 0 {
		return StartResult{}, ErrPackNotFound
	}

	inHistory := false
	for _, c := range e.progress.DailyChallengeHistory {
		if c.Date == challenge.Date {
			inHistory = true
			break
		}
	}
	if !inHistory {
		e.progress.DailyChallengeHistory = append(e.progress.DailyChallengeHistory, challenge)
	}

	pseudo := Pack{
		ID:    dailyPackPrefix + challenge.Date,
		Name:  "Daily Challenge",
		Items: items,
	}
	return e.startSession(pseudo, true, false), nil
}

// StartFavorites begins a practice session over the favorited questions.
func (e *Engine) StartFavorites() (StartResult, error) {
	var items []QuizItem
	for _, pack := range e.catalog {
		for _, item := range pack.Items {
			if e.progress.IsFavorite(item.ID) {
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		return StartResult{}, ErrNoFavorites
	}

	pseudo := Pack{
		ID:          FavoritesPackID,
		Name:        "Favorites",
		Description: "Your favorite animals",
		Items:       items,
	}
	return e.startSession(pseudo, false, false), nil
}

// StartReview begins a practice session over the wrong-answer queue.
func (e *Engine) StartReview() (StartResult, error) {
	queued := make(map[string]bool, len(e.progress.WrongAnswers))
	for _, w := range e.progress.WrongAnswers {
		queued[w.QuestionID] = true
	}

	var items []QuizItem
	for _, pack := range e.catalog {
		for _, item := range pack.Items {
			if queued[item.ID] {
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		return StartResult{}, ErrNothingToReview
	}

	pseudo := Pack{
		ID:          ReviewPackID,
		Name:        "Review Mode",
		Description: "Practice questions you got wrong",
		Items:       items,
	}
	return e.startSession(pseudo, false, false), nil
}

func (e *Engine) startSession(pack Pack, touchStreak, timed bool) StartResult {
	now := e.now()
	e.active = &pack
	e.finished = false
	e.started = now

	p := &e.progress
	p.CurrentPackID = pack.ID
	p.CurrentQuestionIndex = 0
	p.AnsweredQuestions = []AnsweredQuestion{}
	p.Score = 0
	p.TimedMode = timed
	p.SessionFinished = false
	e.touch(now)

	res := StartResult{Pack: pack}
	if touchStreak {
		su := UpdateStreak(*p, DateOf(now))
		p.CurrentStreak = su.CurrentStreak
		p.LongestStreak = su.LongestStreak
		p.LastPlayedDate = su.LastPlayedDate

		if su.IsNewDay {
			bonus := StreakBonus(su.CurrentStreak)
			p.Coins += bonus
			p.LifetimeStats.TotalCoinsEarned += bonus
			res.StreakBonus = bonus
			res.StreakMessage = StreakMessage(su.CurrentStreak)
		}
		res.Streak = su
	}
	return res
}

// AnswerResult reports the full effect of one Answer transition.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Fact          string
	PointsEarned  int
	CoinsEarned   int
	XPEarned      int
	QuestionIndex int
	NextIndex     int
	PackComplete  bool
	Perfect       bool
	DailyComplete bool
	LeveledUp     bool
	Level         int
	NewBadges     []BadgeDefinition
	BadgeReward   BadgeReward
}

// Answer applies one answer to the current question. Correctness is
// derived from the question itself rather than trusted from the host.
// timeSpentMs may be zero when the host did not measure it.
func (e *Engine) Answer(selected string, timeSpentMs int) (AnswerResult, error) {
	if e.active == nil {
		return AnswerResult{}, ErrNoActiveSession
	}
	if e.finished {
		return AnswerResult{}, ErrSessionFinished
	}

	now := e.now()
	p := &e.progress
	idx := p.CurrentQuestionIndex
	item := e.active.Items[idx]
	correct := selected == item.Answer
	isLast := idx >= len(e.active.Items)-1

	points, coins, xp := 0, 0, XPPerIncorrect
	if correct {
		points, coins, xp = PointsPerCorrect, CoinsPerCorrect, XPPerCorrect
	}
	oldLevel := CalculateLevel(p.XP)

	p.Score += points
	p.Coins += coins
	p.XP += xp
	p.AnsweredQuestions = append(p.AnsweredQuestions, AnsweredQuestion{
		ID:         item.ID,
		PackID:     e.active.ID,
		Correct:    correct,
		TimeSpent:  timeSpentMs,
		AnsweredAt: now.Format(time.RFC3339),
	})
	e.updateReviewQueue(item, selected, correct, now)

	ls := &p.LifetimeStats
	ls.TotalQuestionsAnswered++
	ls.TotalScore += points
	ls.TotalXPEarned += xp
	ls.TotalCoinsEarned += coins
	if correct {
		ls.TotalCorrectAnswers++
	}
	if timeSpentMs > 0 {
		ls.TotalTimePlayed += timeSpentMs
		if correct && (ls.FastestCorrectAnswer == 0 || timeSpentMs < ls.FastestCorrectAnswer) {
			ls.FastestCorrectAnswer = timeSpentMs
		}
	}
	if !e.active.IsPseudo() {
		st := p.statsFor(e.active.ID)
		st.TotalAnswered++
		if correct {
			st.TotalCorrect++
		}
	}

	res := AnswerResult{
		Correct:       correct,
		CorrectAnswer: item.Answer,
		Fact:          item.Fact,
		PointsEarned:  points,
		CoinsEarned:   coins,
		XPEarned:      xp,
		QuestionIndex: idx,
		NextIndex:     idx,
	}

	if isLast {
		e.completeSession(&res, now, true)
	} else {
		p.CurrentQuestionIndex = idx + 1
		res.NextIndex = idx + 1
	}

	level := CalculateLevel(p.XP)
	p.Level = level
	res.Level = level
	res.LeveledUp = level > oldLevel
	e.touch(now)
	return res, nil
}

// SkipResult reports the effect of one Skip transition.
type SkipResult struct {
	Rejected      bool
	Coins         int
	QuestionIndex int
	NextIndex     int
	PackComplete  bool
	NewBadges     []BadgeDefinition
	BadgeReward   BadgeReward
}

// Skip spends coins to pass over the current question. With fewer than
// SkipCost coins the transition is a silent no-op, not an error. Skips
// count toward questions answered but earn nothing.
func (e *Engine) Skip() (SkipResult, error) {
	if e.active == nil {
		return SkipResult{}, ErrNoActiveSession
	}
	if e.finished {
		return SkipResult{}, ErrSessionFinished
	}

	p := &e.progress
	idx := p.CurrentQuestionIndex
	res := SkipResult{Coins: p.Coins, QuestionIndex: idx, NextIndex: idx}

	if p.Coins < SkipCost {
		res.Rejected = true
		return res, nil
	}

	now := e.now()
	p.Coins -= SkipCost
	p.LifetimeStats.TotalQuestionsAnswered++
	if !e.active.IsPseudo() {
		p.statsFor(e.active.ID).TotalAnswered++
	}

	if idx >= len(e.active.Items)-1 {
		var ar AnswerResult
		e.completeSession(&ar, now, false)
		res.PackComplete = true
		res.NewBadges = ar.NewBadges
		res.BadgeReward = ar.BadgeReward
	} else {
		p.CurrentQuestionIndex = idx + 1
		res.NextIndex = idx + 1
	}

	res.Coins = p.Coins
	p.Level = CalculateLevel(p.XP)
	e.touch(now)
	return res, nil
}

// completeSession handles the terminal transition shared by Answer and
// Skip. withSessionFacts gates perfect/speed evaluation and the daily
// bonus, which only apply when the pack ends on an answered question.
func (e *Engine) completeSession(res *AnswerResult, now time.Time, withSessionFacts bool) {
	p := &e.progress
	e.finished = true
	p.SessionFinished = true
	res.PackComplete = true

	if !e.active.IsPseudo() {
		if !p.HasCompletedPack(e.active.ID) {
			p.CompletedPacks = append(p.CompletedPacks, e.active.ID)
		}
		st := p.statsFor(e.active.ID)
		st.TimesCompleted++
		if p.Score > st.BestScore {
			st.BestScore = p.Score
		}
		st.LastPlayedAt = DateOf(now).String()
		if p.TimedMode {
			elapsed := int(now.Sub(e.started).Milliseconds())
			if st.BestTime == 0 || elapsed < st.BestTime {
				st.BestTime = elapsed
			}
		}
	}

	var session *SessionData
	if withSessionFacts {
		if isDailyPackID(e.active.ID) {
			res.DailyComplete = e.completeDaily(now)
		}

		perfect := len(p.AnsweredQuestions) == len(e.active.Items)
		for _, a := range p.AnsweredQuestions {
			perfect = perfect && a.Correct
		}
		if perfect {
			p.LifetimeStats.PerfectGames++
		}
		res.Perfect = perfect

		session = &SessionData{
			PerfectPack:   perfect,
			FastestAnswer: fastestCorrect(p.AnsweredQuestions),
		}
		if p.TimedMode {
			session.TimedQuizTime = int(now.Sub(e.started).Milliseconds())
		}
	}

	earned := NewBadges(*p, session, now)
	if len(earned) > 0 {
		for _, b := range earned {
			p.Badges = append(p.Badges, b.ID)
		}
		reward := SumBadgeRewards(earned)
		p.Coins += reward.Coins
		p.XP += reward.XP
		p.LifetimeStats.TotalCoinsEarned += reward.Coins
		p.LifetimeStats.TotalXPEarned += reward.XP
		res.NewBadges = earned
		res.BadgeReward = reward
	}
}

// completeDaily grants the fixed daily reward once per date. Replaying an
// already-completed challenge is practice: no bonus, no counter.
func (e *Engine) completeDaily(now time.Time) bool {
	p := &e.progress
	date := strings.TrimPrefix(e.active.ID, dailyPackPrefix)

	challenge := DailyChallenge{Date: date, PackID: e.active.ID}
	for _, c := range p.DailyChallengeHistory {
		if c.Date == date {
			if c.Completed {
				return false
			}
			challenge = c
			break
		}
	}

	elapsed := int(now.Sub(e.started).Milliseconds())
	CompleteDailyChallenge(p, challenge, p.Score, elapsed)

	p.Coins += DailyRewardCoins
	p.XP += DailyRewardXP
	p.LifetimeStats.TotalCoinsEarned += DailyRewardCoins
	p.LifetimeStats.TotalXPEarned += DailyRewardXP
	return true
}

func (e *Engine) updateReviewQueue(item QuizItem, selected string, correct bool, now time.Time) {
	p := &e.progress
	if correct {
		kept := p.WrongAnswers[:0]
		for _, w := range p.WrongAnswers {
			if w.QuestionID != item.ID {
				kept = append(kept, w)
			}
		}
		p.WrongAnswers = kept
		return
	}

	entry := WrongAnswer{
		QuestionID:    item.ID,
		PackID:        e.active.ID,
		WrongAnswer:   selected,
		CorrectAnswer: item.Answer,
		AnsweredAt:    now.Format(time.RFC3339),
	}
	for i := range p.WrongAnswers {
		if p.WrongAnswers[i].QuestionID == item.ID {
			entry.PackID = p.WrongAnswers[i].PackID
			p.WrongAnswers[i] = entry
			return
		}
	}
	p.WrongAnswers = append(p.WrongAnswers, entry)
}

func fastestCorrect(answers []AnsweredQuestion) int {
	fastest := 0
	for _, a := range answers {
		if a.Correct && a.TimeSpent > 0 && (fastest == 0 || a.TimeSpent < fastest) {
			fastest = a.TimeSpent
		}
	}
	return fastest
}

// ToggleFavorite flips the favorite flag for a question id and reports
// the new state. No other side effects.
func (e *Engine) ToggleFavorite(questionID string) bool {
	p := &e.progress
	for i, id := range p.FavoriteAnimals {
		if id == questionID {
			p.FavoriteAnimals = append(p.FavoriteAnimals[:i], p.FavoriteAnimals[i+1:]...)
			e.touch(e.now())
			return false
		}
	}
	p.FavoriteAnimals = append(p.FavoriteAnimals, questionID)
	e.touch(e.now())
	return true
}

// PurchaseTheme debits coins and unlocks a theme.
func (e *Engine) PurchaseTheme(themeID string) error {
	if err := PurchaseTheme(&e.progress, themeID); err != nil {
		return err
	}
	e.touch(e.now())
	return nil
}

// PurchasePack debits coins and unlocks a premium pack.
func (e *Engine) PurchasePack(packID string) error {
	if err := PurchasePack(&e.progress, packID); err != nil {
		return err
	}
	e.touch(e.now())
	return nil
}

// EndSession abandons or leaves the current session, resetting the
// session-scoped fields. Lifetime state is untouched.
func (e *Engine) EndSession() {
	e.active = nil
	e.finished = false

	p := &e.progress
	p.CurrentPackID = ""
	p.CurrentQuestionIndex = 0
	p.AnsweredQuestions = []AnsweredQuestion{}
	p.Score = 0
	p.SessionFinished = false
	e.touch(e.now())
}

func (e *Engine) touch(now time.Time) {
	if e.progress.CreatedAt == "" {
		e.progress.CreatedAt = now.Format(time.RFC3339)
	}
	e.progress.LastUpdatedAt = now.Format(time.RFC3339)
}
