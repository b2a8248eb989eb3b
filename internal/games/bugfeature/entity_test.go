package bugfeature

import (
	"testing"
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/config"
)

func TestPoolSpawnVelocity(t *testing.T) {
	cfg := config.DefaultBugFeatureConfig()

	tests := []struct {
		kind Kind
		cfg  config.EntityConfig
		want float64
	}{
		{KindBug, cfg.Entities.Bug, 100},
		{KindFeature, cfg.Entities.Feature, 180},
		{KindBullet, cfg.Entities.Bullet, -300},
		{KindRocket, cfg.Entities.Rocket, -400},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := NewPool(tt.kind, tt.cfg)
			e := p.Spawn(100, 200)
			if e.VY != tt.want {
				t.Errorf("VY = %v, want %v", e.VY, tt.want)
			}
			if !e.Alive || e.Kind != tt.kind {
				t.Errorf("spawned entity = %+v", e)
			}
			if p.Len() != 1 {
				t.Errorf("Len() = %d, want 1", p.Len())
			}
		})
	}
}

func TestPoolAdvance(t *testing.T) {
	p := NewPool(KindBug, config.EntityConfig{Velocity: 100, Width: 30, Height: 30})
	p.Spawn(0, 0)
	p.Advance(500 * time.Millisecond)

	if got := p.At(0).Y; got != 50 {
		t.Errorf("Y after 500ms = %v, want 50", got)
	}
}

func TestPoolSweepKeepsOrder(t *testing.T) {
	p := NewPool(KindBug, config.EntityConfig{Velocity: 100, Width: 30, Height: 30})
	for _, y := range []float64{10, 700, 20, 650, 30} {
		p.Spawn(0, y)
	}

	var removed []float64
	n := p.Sweep(below(600), func(e Entity) {
		removed = append(removed, e.Y)
		if e.Alive {
			t.Error("removed entity still marked alive")
		}
	})

	if n != 2 {
		t.Fatalf("Sweep removed %d, want 2", n)
	}
	// Back to front: 650 is visited before 700
	if len(removed) != 2 || removed[0] != 650 || removed[1] != 700 {
		t.Errorf("removal order = %v, want [650 700]", removed)
	}

	want := []float64{10, 20, 30}
	for i, e := range p.Items() {
		if e.Y != want[i] {
			t.Errorf("survivor %d Y = %v, want %v", i, e.Y, want[i])
		}
	}
}

func TestPoolSweepAbove(t *testing.T) {
	p := NewPool(KindBullet, config.EntityConfig{Velocity: -300, Width: 4, Height: 10})
	p.Spawn(0, -1)
	p.Spawn(0, 0)

	if n := p.Sweep(above(0), nil); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if p.Len() != 1 || p.At(0).Y != 0 {
		t.Errorf("entity at y=0 should survive, got %+v", p.Items())
	}
}

func TestPoolRemoveAtAndClear(t *testing.T) {
	p := NewPool(KindFeature, config.EntityConfig{Velocity: 180, Width: 30, Height: 30})
	p.Spawn(1, 0)
	p.Spawn(2, 0)
	p.Spawn(3, 0)

	e := p.RemoveAt(1)
	if e.X != 2 {
		t.Errorf("RemoveAt(1) returned X=%v, want 2", e.X)
	}
	if p.At(0).X != 1 || p.At(1).X != 3 {
		t.Errorf("order not preserved: %+v", p.Items())
	}

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() after Clear = %d", p.Len())
	}
}

func TestEntityBoundsCentered(t *testing.T) {
	e := Entity{X: 100, Y: 50, W: 30, H: 10}
	b := e.Bounds()
	if b.X != 85 || b.Y != 45 || b.W != 30 || b.H != 10 {
		t.Errorf("Bounds() = %+v", b)
	}
}
