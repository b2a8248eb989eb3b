package bugfeature

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/config"
)

func newTestDifficulty(enabled bool) *Difficulty {
	cfg := config.DefaultBugFeatureConfig().Difficulty
	cfg.Enabled = enabled
	return NewDifficulty(cfg, 2*time.Second, rand.New(rand.NewSource(7)))
}

func TestLevelFor(t *testing.T) {
	table := LevelTable(config.DefaultBugFeatureConfig().Difficulty.Levels)

	tests := []struct {
		launches int
		want     int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{5, 1},
		{6, 2},
		{9, 3},
		{12, 4},
		{20, 4},
	}

	for _, tt := range tests {
		if got := table.LevelFor(tt.launches); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.launches, got, tt.want)
		}
	}
}

func TestDifficultyEvaluateNeverDecreases(t *testing.T) {
	d := newTestDifficulty(true)

	if d.Evaluate(2) {
		t.Error("Evaluate(2) should not level up")
	}
	if !d.Evaluate(3) {
		t.Fatal("Evaluate(3) should level up")
	}
	if d.Level().Name != "Junior Dev" || d.Level().Speed != 70 {
		t.Errorf("Level() = %+v", d.Level())
	}
	if d.Evaluate(0) {
		t.Error("Evaluate(0) reported a change")
	}
	if d.Current() != 1 {
		t.Errorf("Current() = %d after lower launches, want 1", d.Current())
	}
	if !d.Evaluate(13) || d.Current() != 4 {
		t.Errorf("Evaluate(13) should jump to level 4, got %d", d.Current())
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := newTestDifficulty(false)
	if d.Evaluate(12) {
		t.Error("disabled difficulty should not level up")
	}
	if d.Current() != 0 {
		t.Errorf("Current() = %d, want 0", d.Current())
	}
}

func TestErraticIntervalShrinksWithChance(t *testing.T) {
	d := newTestDifficulty(true)

	if got := d.ErraticInterval(); got != 2*time.Second {
		t.Errorf("level 0 interval = %v, want 2s", got)
	}

	prev := d.ErraticInterval()
	for launches := 3; launches <= 12; launches += 3 {
		d.Evaluate(launches)
		got := d.ErraticInterval()
		if got >= prev {
			t.Errorf("interval at level %d = %v, not below %v", d.Current(), got, prev)
		}
		prev = got
	}
}

func TestTickErraticCalmLevel(t *testing.T) {
	d := newTestDifficulty(true)
	for range 100 {
		if d.TickErratic(500 * time.Millisecond) {
			t.Fatal("level without erratic chance flipped the mothership")
		}
	}
}

func TestTickErraticFlips(t *testing.T) {
	d := newTestDifficulty(true)
	d.Evaluate(12)
	interval := d.ErraticInterval()

	flips := 0
	for range 50 {
		if d.TickErratic(interval) {
			flips++
		}
	}
	if flips == 0 || flips == 50 {
		t.Errorf("flips = %d of 50 rolls at chance 0.6", flips)
	}

	if d.TickErratic(interval / 2) {
		t.Error("flipped before the interval elapsed")
	}
}
