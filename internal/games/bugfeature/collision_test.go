package bugfeature

import "testing"

func TestCheckCollisionsEachBulletOnce(t *testing.T) {
	s := newTestSession(t)
	s.Bugs.Spawn(100, 200)
	s.Bugs.Spawn(400, 200)
	s.Bugs.Spawn(700, 200)
	s.Bullets.Spawn(100, 200)
	s.Bullets.Spawn(700, 200)
	s.Bullets.Spawn(250, 200) // misses

	s.checkCollisions()

	if s.Bugs.Len() != 1 || s.Bugs.At(0).X != 400 {
		t.Errorf("bugs = %+v, want only the one at x=400", s.Bugs.Items())
	}
	if s.Bullets.Len() != 1 || s.Bullets.At(0).X != 250 {
		t.Errorf("bullets = %+v, want only the miss", s.Bullets.Items())
	}
	if s.Features.Len() != 2 || s.Score != 20 {
		t.Errorf("features=%d score=%d, want 2 and 20", s.Features.Len(), s.Score)
	}
}

func TestCheckCollisionsCollectsAllTouching(t *testing.T) {
	s := newTestSession(t)
	s.Features.Spawn(s.Player.X, s.Player.Y)
	s.Features.Spawn(s.Player.X+5, s.Player.Y-5)
	s.Features.Spawn(s.Player.X, 100)

	s.checkCollisions()

	if s.FeatureCount != 2 {
		t.Errorf("featureCount = %d, want 2", s.FeatureCount)
	}
	if s.Features.Len() != 1 || s.Features.At(0).Y != 100 {
		t.Errorf("features = %+v, want only the distant one", s.Features.Items())
	}
}

func TestCheckCollisionsRocketMiss(t *testing.T) {
	s := newTestSession(t)
	s.Rockets.Spawn(s.Mothership.X, s.Mothership.Y+200)

	s.checkCollisions()

	if s.Rockets.Len() != 1 || s.ProductionLaunches != 0 || s.Score != 0 {
		t.Errorf("rockets=%d launches=%d score=%d, want untouched", s.Rockets.Len(), s.ProductionLaunches, s.Score)
	}
}
