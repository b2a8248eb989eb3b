package bugfeature

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bug-to-feature/internal/config"
)

const frame = 16 * time.Millisecond

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.DefaultBugFeatureConfig()
	return NewSession(cfg, BranchBackend, rand.New(rand.NewSource(1)), log.New(io.Discard))
}

func TestSessionInitialState(t *testing.T) {
	s := newTestSession(t)

	if s.Lives != 3 || s.Score != 0 || s.FeatureCount != 0 || s.ProductionLaunches != 0 {
		t.Errorf("unexpected initial counters: %+v", s)
	}
	if s.GameOver || s.Victory {
		t.Error("fresh session should be running")
	}
	if s.Player.X != 400 || s.Player.Y != 550 {
		t.Errorf("player at (%v, %v), want (400, 550)", s.Player.X, s.Player.Y)
	}
	if s.Mothership.Speed != 50 {
		t.Errorf("mothership speed = %v, want level 0 speed 50", s.Mothership.Speed)
	}
}

func TestShootOverheatsOnFourthShot(t *testing.T) {
	s := newTestSession(t)

	for i := range 3 {
		if !s.Shoot() {
			t.Fatalf("shot %d rejected", i+1)
		}
		s.Update(0, 200*time.Millisecond)
	}
	if !s.Shoot() {
		t.Fatal("4th shot rejected")
	}
	if !s.Weapon.Overheated() {
		t.Fatal("weapon should overheat on the 4th shot")
	}

	before := s.Bullets.Len()
	if s.Shoot() {
		t.Error("5th shot fired while overheated")
	}
	if s.Bullets.Len() != before {
		t.Errorf("bullet pool changed from %d to %d", before, s.Bullets.Len())
	}
}

func TestShootSpawnsAtMuzzle(t *testing.T) {
	s := newTestSession(t)
	s.Shoot()

	b := s.Bullets.At(0)
	if b.X != 400 || b.Y != 510 {
		t.Errorf("bullet at (%v, %v), want (400, 510)", b.X, b.Y)
	}

	tones := s.TakeTones()
	if len(tones) != 1 || tones[0] != toneShoot {
		t.Errorf("tones = %v, want shoot cue", tones)
	}
	if s.TakeTones() != nil {
		t.Error("TakeTones should drain the queue")
	}
}

func TestBulletConvertsBugToFeature(t *testing.T) {
	s := newTestSession(t)
	s.Bugs.Spawn(300, 300)
	s.Bullets.Spawn(300, 300)

	s.Update(0, 0)

	if s.Bugs.Len() != 0 || s.Bullets.Len() != 0 {
		t.Fatalf("bugs=%d bullets=%d, want both removed", s.Bugs.Len(), s.Bullets.Len())
	}
	if s.Features.Len() != 1 {
		t.Fatalf("features = %d, want 1", s.Features.Len())
	}
	if f := s.Features.At(0); f.X != 300 || f.Y != 300 {
		t.Errorf("feature at (%v, %v), want (300, 300)", f.X, f.Y)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
}

func TestBulletHitsNewestBugFirst(t *testing.T) {
	s := newTestSession(t)
	s.Bugs.Spawn(300, 300)
	s.Bugs.Spawn(300, 305)
	s.Bullets.Spawn(300, 302)

	s.Update(0, 0)

	if s.Bugs.Len() != 1 {
		t.Fatalf("bugs = %d, want 1", s.Bugs.Len())
	}
	if y := s.Bugs.At(0).Y; y != 300 {
		t.Errorf("surviving bug Y = %v, want the older bug at 300", y)
	}
	if s.Score != 10 {
		t.Errorf("one bullet scored %d, want 10", s.Score)
	}
}

func TestCollectFeature(t *testing.T) {
	s := newTestSession(t)
	s.Features.Spawn(s.Player.X, s.Player.Y)

	s.Update(0, 0)

	if s.FeatureCount != 1 || s.Features.Len() != 0 {
		t.Errorf("featureCount=%d pool=%d, want 1 and 0", s.FeatureCount, s.Features.Len())
	}
}

func TestLaunchRequiresEnoughFeatures(t *testing.T) {
	s := newTestSession(t)
	s.FeatureCount = 4

	if s.ReadyToLaunch() || s.LaunchProductionRocket() {
		t.Fatal("launched with 4 features")
	}
	if s.Rockets.Len() != 0 || s.FeatureCount != 4 {
		t.Errorf("rockets=%d features=%d after rejected launch", s.Rockets.Len(), s.FeatureCount)
	}

	s.FeatureCount = 7
	if !s.LaunchProductionRocket() {
		t.Fatal("launch with 7 features rejected")
	}
	if s.FeatureCount != 2 {
		t.Errorf("featureCount = %d, want 2", s.FeatureCount)
	}
}

func TestRocketHitsMothership(t *testing.T) {
	s := newTestSession(t)
	s.FeatureCount = 5

	if !s.LaunchProductionRocket() {
		t.Fatal("launch rejected")
	}
	if s.FeatureCount != 0 {
		t.Errorf("featureCount = %d, want 0", s.FeatureCount)
	}

	for i := 0; i < 200 && s.ProductionLaunches == 0; i++ {
		s.Update(0, frame)
	}

	if s.ProductionLaunches != 1 {
		t.Fatalf("productionLaunches = %d, want 1", s.ProductionLaunches)
	}
	if s.Score != 100 {
		t.Errorf("score = %d, want 100", s.Score)
	}
	if s.Rockets.Len() != 0 {
		t.Errorf("rocket not consumed")
	}
	if s.Difficulty.Current() != 0 {
		t.Errorf("level = %d, want 0 below threshold 3", s.Difficulty.Current())
	}
}

func TestRocketLevelsUp(t *testing.T) {
	s := newTestSession(t)
	s.ProductionLaunches = 2
	s.Rockets.Spawn(s.Mothership.X, s.Mothership.Y)

	s.Update(0, 0)

	if s.ProductionLaunches != 3 || s.Difficulty.Current() != 1 {
		t.Fatalf("launches=%d level=%d, want 3 and 1", s.ProductionLaunches, s.Difficulty.Current())
	}
	if s.Mothership.Speed != 70 {
		t.Errorf("mothership speed = %v, want 70", s.Mothership.Speed)
	}
	banner, ok := s.LevelBanner()
	if !ok || banner != "LEVEL UP: Junior Dev" {
		t.Errorf("banner = %q, %v", banner, ok)
	}

	s.Update(0, 2500*time.Millisecond)
	if _, ok := s.LevelBanner(); ok {
		t.Error("banner should expire after 2.5s")
	}
}

func TestVictoryAtFifteenLaunches(t *testing.T) {
	s := newTestSession(t)
	s.ProductionLaunches = 14
	s.Rockets.Spawn(s.Mothership.X, s.Mothership.Y)

	s.Update(0, 0)

	if !s.GameOver || !s.Victory {
		t.Errorf("gameOver=%v victory=%v, want both true", s.GameOver, s.Victory)
	}
}

func TestBugLandingCostsLife(t *testing.T) {
	s := newTestSession(t)
	s.Bugs.Spawn(200, 599)

	s.Update(0, 20*time.Millisecond)

	if s.Lives != 2 {
		t.Errorf("lives = %d, want 2", s.Lives)
	}
	if s.Bugs.Len() != 0 {
		t.Errorf("landed bug not removed")
	}
	if s.PlayerVisible() {
		t.Error("player should blink after losing a life")
	}
}

func TestMissedFeatureIsFree(t *testing.T) {
	s := newTestSession(t)
	s.Features.Spawn(100, 599)

	s.Update(0, 100*time.Millisecond)

	if s.Lives != 3 || s.Features.Len() != 0 {
		t.Errorf("lives=%d features=%d, want 3 and 0", s.Lives, s.Features.Len())
	}
}

func TestGameOverFreezesPools(t *testing.T) {
	s := newTestSession(t)
	s.Lives = 1
	s.Bugs.Spawn(200, 599)
	s.Bugs.Spawn(600, 100)

	s.Update(0, 100*time.Millisecond)

	if !s.GameOver || s.Victory {
		t.Fatalf("gameOver=%v victory=%v, want defeat", s.GameOver, s.Victory)
	}
	if s.Lives != 0 {
		t.Errorf("lives = %d, want 0", s.Lives)
	}

	bugY := s.Bugs.At(0).Y
	shipX := s.Mothership.X
	for range 10 {
		s.Update(1, time.Second)
	}
	if s.Bugs.At(0).Y != bugY || s.Mothership.X != shipX {
		t.Error("pools moved after game over")
	}
	if s.Shoot() || s.Bullets.Len() != 0 {
		t.Error("shot fired after game over")
	}
}

func TestBugSpawnTimer(t *testing.T) {
	s := newTestSession(t)

	for range 19 {
		s.Update(0, 100*time.Millisecond)
	}
	if s.Bugs.Len() != 0 {
		t.Fatalf("bug spawned before 2s")
	}

	s.Update(0, 100*time.Millisecond)
	if s.Bugs.Len() != 1 {
		t.Fatalf("bugs = %d, want 1 after 2s", s.Bugs.Len())
	}
	hx, hy := s.Mothership.Hatch()
	if b := s.Bugs.At(0); b.X != hx || b.Y != hy {
		t.Errorf("bug at (%v, %v), want hatch (%v, %v)", b.X, b.Y, hx, hy)
	}
}

func TestPlayerClamped(t *testing.T) {
	s := newTestSession(t)

	s.Update(-1, 5*time.Second)
	if s.Player.X != 40 {
		t.Errorf("player X = %v, want 40", s.Player.X)
	}
	s.Update(1, 10*time.Second)
	if s.Player.X != 760 {
		t.Errorf("player X = %v, want 760", s.Player.X)
	}
}

func TestMothershipBounces(t *testing.T) {
	s := newTestSession(t)

	// 50 units/s from 400 reaches the right limit 740 after 6.8s
	for range 70 {
		s.Update(0, 100*time.Millisecond)
	}
	if s.Mothership.Dir != -1 {
		t.Errorf("mothership dir = %v, want -1 after hitting the right edge", s.Mothership.Dir)
	}
	if s.Mothership.X > 740 {
		t.Errorf("mothership X = %v beyond 740", s.Mothership.X)
	}
}
