package bugfeature

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/config"
)

func newTestWeapon() *Overheat {
	return NewOverheat(config.WeaponConfig{MaxShots: 4, CooldownMS: 3000, ShotResetDelay: 2000})
}

func TestOverheatTripsOnMaxShots(t *testing.T) {
	w := newTestWeapon()

	for i := 1; i <= 3; i++ {
		if got := w.Fire(); got != FireOK {
			t.Fatalf("shot %d = %v, want FireOK", i, got)
		}
		w.Update(200 * time.Millisecond)
	}

	if got := w.Fire(); got != FireOverheated {
		t.Fatalf("4th shot = %v, want FireOverheated", got)
	}
	if !w.Overheated() {
		t.Fatal("weapon should be overheated after 4 shots")
	}
	if w.ShotCount() != 0 {
		t.Errorf("ShotCount() = %v, want 0 while overheated", w.ShotCount())
	}
	if got := w.Fire(); got != FireRejected {
		t.Errorf("5th shot = %v, want FireRejected", got)
	}
	if w.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", w.Progress())
	}
}

func TestOverheatCooldown(t *testing.T) {
	w := newTestWeapon()
	for range 4 {
		w.Fire()
	}

	if w.Update(2999 * time.Millisecond) {
		t.Fatal("cooled down too early")
	}
	if !w.Overheated() {
		t.Fatal("still expected overheated at 2999ms")
	}
	if got := w.CooldownRemaining(); got != time.Millisecond {
		t.Errorf("CooldownRemaining() = %v, want 1ms", got)
	}

	if !w.Update(time.Millisecond) {
		t.Fatal("expected cool down at 3000ms")
	}
	if w.State() != WeaponReady || w.ShotCount() != 0 {
		t.Errorf("after cooldown: state=%v count=%v", w.State(), w.ShotCount())
	}
	if got := w.Fire(); got != FireOK {
		t.Errorf("first shot after cooldown = %v, want FireOK", got)
	}
}

func TestOverheatDecay(t *testing.T) {
	tests := []struct {
		name  string
		shots int
		idle  []time.Duration
		want  float64
	}{
		{"no decay within delay", 3, []time.Duration{2000 * time.Millisecond}, 3},
		{"quarter decay past delay", 3, []time.Duration{2000 * time.Millisecond, 500 * time.Millisecond}, 2},
		{"single long frame", 3, []time.Duration{2500 * time.Millisecond}, 2},
		{"full decay", 2, []time.Duration{1500 * time.Millisecond, 1500 * time.Millisecond, 1000 * time.Millisecond}, 0},
		{"never negative", 1, []time.Duration{10 * time.Second}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWeapon()
			for range tt.shots {
				w.Fire()
			}
			for _, d := range tt.idle {
				w.Update(d)
			}
			if got := w.ShotCount(); got != tt.want {
				t.Errorf("ShotCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverheatShotResetsDecayClock(t *testing.T) {
	w := newTestWeapon()
	w.Fire()
	w.Update(1900 * time.Millisecond)
	w.Fire()
	w.Update(1900 * time.Millisecond)

	if got := w.ShotCount(); got != 2 {
		t.Errorf("ShotCount() = %v, want 2", got)
	}
}

func TestOverheatReset(t *testing.T) {
	w := newTestWeapon()
	for range 4 {
		w.Fire()
	}
	w.Reset()

	if w.Overheated() || w.ShotCount() != 0 || w.Progress() != 0 {
		t.Errorf("Reset left state=%v count=%v", w.State(), w.ShotCount())
	}
}

func TestOverheatRandomSequences(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		w := newTestWeapon()
		var lockedFor time.Duration

		for step := 0; step < 5000; step++ {
			if rng.Intn(3) == 0 {
				dt := time.Duration(rng.Intn(100)) * time.Millisecond
				wasLocked := w.Overheated()
				if wasLocked {
					lockedFor += dt
				}
				if w.Update(dt) && lockedFor < 3*time.Second {
					t.Fatalf("seed %d step %d: cooled down after %v", seed, step, lockedFor)
				}
			} else {
				wasLocked := w.Overheated()
				got := w.Fire()
				if wasLocked && got != FireRejected {
					t.Fatalf("seed %d step %d: fired while overheated", seed, step)
				}
				if !wasLocked && !got.Fired() {
					t.Fatalf("seed %d step %d: ready weapon rejected a shot", seed, step)
				}
				if got == FireOverheated {
					lockedFor = 0
				}
			}

			if c := w.ShotCount(); c < 0 || c > float64(w.MaxShots()) {
				t.Fatalf("seed %d step %d: shotCount %v out of [0, %d]", seed, step, c, w.MaxShots())
			}
			if p := w.Progress(); p < 0 || p > 1 {
				t.Fatalf("seed %d step %d: progress %v out of [0, 1]", seed, step, p)
			}
		}
	}
}
