package quiz

import "testing"

func TestDefaultProgress(t *testing.T) {
	p := DefaultProgress()

	if p.Coins != 10 {
		t.Errorf("coins = %d, want 10", p.Coins)
	}
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if !contains(p.UnlockedThemes, "forest") {
		t.Errorf("unlockedThemes = %v, want forest", p.UnlockedThemes)
	}
	if len(p.UnlockedPacks) != 6 {
		t.Errorf("unlockedPacks = %v, want the six free packs", p.UnlockedPacks)
	}
	if p.Badges == nil || p.WrongAnswers == nil {
		t.Error("slices must be initialized, not nil")
	}
}

func TestDecodeProgressPartialBlob(t *testing.T) {
	// An old save carrying only a few fields: the rest keep defaults.
	raw := []byte(`{"coins":42,"xp":300,"badges":["first-quiz"]}`)

	p := DecodeProgress(raw)

	if p.Coins != 42 || p.XP != 300 {
		t.Errorf("coins/xp = %d/%d", p.Coins, p.XP)
	}
	if !p.HasBadge("first-quiz") {
		t.Errorf("badges = %v", p.Badges)
	}
	if !contains(p.UnlockedThemes, "forest") {
		t.Error("missing fields should keep their defaults")
	}
}

func TestDecodeProgressCorruptBlob(t *testing.T) {
	p := DecodeProgress([]byte(`{"coins": not json`))

	if p.Coins != 10 {
		t.Errorf("corrupt blob should yield a fresh profile, got coins=%d", p.Coins)
	}
}

func TestDecodeProgressEmpty(t *testing.T) {
	p := DecodeProgress(nil)
	if p.Coins != 10 || p.Level != 1 {
		t.Errorf("empty blob should yield defaults, got %+v", p)
	}
}

func TestDecodeProgressNullSlices(t *testing.T) {
	raw := []byte(`{"badges":null,"wrongAnswers":null,"unlockedThemes":null}`)

	p := DecodeProgress(raw)

	if p.Badges == nil || p.WrongAnswers == nil {
		t.Error("explicit nulls must decode to empty slices")
	}
	if !contains(p.UnlockedThemes, "forest") {
		t.Error("null unlockedThemes falls back to the default set")
	}
}

func TestProgressRoundTrip(t *testing.T) {
	p := DefaultProgress()
	p.XP = 150
	p.CompletedPacks = []string{"mammals"}
	p.LifetimeStats.TotalCorrectAnswers = 12

	raw, err := EncodeProgress(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := DecodeProgress(raw)

	if got.XP != 150 || !got.HasCompletedPack("mammals") {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.LifetimeStats.TotalCorrectAnswers != 12 {
		t.Errorf("lifetimeStats lost: %+v", got.LifetimeStats)
	}
}
