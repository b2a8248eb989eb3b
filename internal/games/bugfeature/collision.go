package bugfeature

import "github.com/vovakirdan/bug-to-feature/internal/config"

// checkCollisions resolves the three pool pairs in a fixed order.
// Every pass walks its pools back to front so removals do not shift
// indices that are still to be visited.
func (s *Session) checkCollisions() {
	s.resolveBulletHits()
	s.collectFeatures()
	s.resolveRocketHits()
}

// resolveBulletHits converts the first overlapping bug per bullet into a feature.
func (s *Session) resolveBulletHits() {
	for i := s.Bullets.Len() - 1; i >= 0; i-- {
		bullet := s.Bullets.At(i).Bounds()
		for j := s.Bugs.Len() - 1; j >= 0; j-- {
			if bullet.Intersects(s.Bugs.At(j).Bounds()) {
				s.hitBug(i, j)
				break
			}
		}
	}
}

func (s *Session) hitBug(bulletIdx, bugIdx int) {
	bug := s.Bugs.RemoveAt(bugIdx)
	s.Bullets.RemoveAt(bulletIdx)
	s.Features.Spawn(bug.X, bug.Y)
	s.Score += s.cfg.Session.BugPoints
	s.cue(toneBugHit)
}

// collectFeatures consumes every feature touching the player.
func (s *Session) collectFeatures() {
	player := s.Player.Bounds()
	for i := s.Features.Len() - 1; i >= 0; i-- {
		if !player.Intersects(s.Features.At(i).Bounds()) {
			continue
		}
		s.Features.RemoveAt(i)
		s.FeatureCount++
		s.cue(toneCollect)

		if s.FeatureCount == s.cfg.Session.FeaturesPerRocket {
			s.logger.Debug("production rocket ready")
		}
	}
}

// resolveRocketHits scores rockets that reached the mothership.
func (s *Session) resolveRocketHits() {
	target := s.Mothership.Bounds()
	for i := s.Rockets.Len() - 1; i >= 0 && !s.GameOver; i-- {
		if !target.Intersects(s.Rockets.At(i).Bounds()) {
			continue
		}
		s.Rockets.RemoveAt(i)
		s.hitMothership()
	}
}

func (s *Session) hitMothership() {
	s.Score += s.cfg.Session.RocketPoints
	s.ProductionLaunches++
	s.mothershipBlink = blinkDuration

	if s.Difficulty.Evaluate(s.ProductionLaunches) {
		level := s.Difficulty.Level()
		s.Mothership.Speed = level.Speed
		s.levelBanner = config.Millis(s.cfg.Session.LevelBannerMS)
		s.cue(toneLevelUp)
		s.logger.Info("level up", "level", level.Name, "speed", level.Speed, "erratic", level.ErraticChance)
	}

	if target := s.cfg.Session.VictoryLaunches; target > 0 && s.ProductionLaunches >= target {
		s.end(true)
		return
	}
	s.cue(toneMothershipHit)
}
