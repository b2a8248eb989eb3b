package bugfeature

import (
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/config"
	"github.com/vovakirdan/bug-to-feature/internal/core"
)

// Kind identifies what an entity is.
type Kind int

const (
	KindBug     Kind = iota // Falls from the mothership, costs a life if it lands
	KindFeature             // Dropped by a shot bug, collected by the player
	KindBullet              // Fired by the player, converts bugs to features
	KindRocket              // Production rocket, hits the mothership
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBug:
		return "bug"
	case KindFeature:
		return "feature"
	case KindBullet:
		return "bullet"
	case KindRocket:
		return "rocket"
	default:
		return "unknown"
	}
}

// Entity is a moving object owned by a Pool.
// X and Y are the center of its bounding box.
type Entity struct {
	Kind  Kind
	X, Y  float64
	VY    float64 // Vertical velocity in units per second, positive is down
	W, H  float64
	Alive bool
}

// Bounds returns the collision rectangle for this entity.
func (e Entity) Bounds() core.Rect {
	return core.RectAround(e.X, e.Y, e.W, e.H)
}

// Pool is an ordered collection of live entities of one kind.
// Removed entities are discarded immediately; nothing is reused.
type Pool struct {
	kind  Kind
	cfg   config.EntityConfig
	items []Entity
}

// NewPool creates an empty pool whose entities use the given velocity and size.
func NewPool(kind Kind, cfg config.EntityConfig) *Pool {
	return &Pool{
		kind:  kind,
		cfg:   cfg,
		items: make([]Entity, 0, 16),
	}
}

// Spawn appends a new entity centered on (x, y) with the kind's fixed velocity.
func (p *Pool) Spawn(x, y float64) Entity {
	e := Entity{
		Kind:  p.kind,
		X:     x,
		Y:     y,
		VY:    p.cfg.Velocity,
		W:     p.cfg.Width,
		H:     p.cfg.Height,
		Alive: true,
	}
	p.items = append(p.items, e)
	return e
}

// Len returns the number of live entities.
func (p *Pool) Len() int {
	return len(p.items)
}

// At returns the entity at index i.
func (p *Pool) At(i int) Entity {
	return p.items[i]
}

// Items returns the live entities in spawn order.
// The slice is only valid until the pool is next modified.
func (p *Pool) Items() []Entity {
	return p.items
}

// Advance moves every entity by its velocity over dt.
func (p *Pool) Advance(dt time.Duration) {
	secs := dt.Seconds()
	for i := range p.items {
		p.items[i].Y += p.items[i].VY * secs
	}
}

// RemoveAt deletes the entity at index i, keeping the order of the rest.
func (p *Pool) RemoveAt(i int) Entity {
	e := p.items[i]
	e.Alive = false
	p.items = append(p.items[:i], p.items[i+1:]...)
	return e
}

// Sweep scans back to front and removes every entity matching pred,
// calling onRemove (if non-nil) for each. Survivors keep their order.
// Returns the number of removed entities.
func (p *Pool) Sweep(pred func(Entity) bool, onRemove func(Entity)) int {
	removed := 0
	for i := len(p.items) - 1; i >= 0; i-- {
		if !pred(p.items[i]) {
			continue
		}
		e := p.RemoveAt(i)
		removed++
		if onRemove != nil {
			onRemove(e)
		}
	}
	return removed
}

// Clear discards all entities.
func (p *Pool) Clear() {
	p.items = p.items[:0]
}

// below returns a predicate matching entities that fell past the bottom edge.
func below(limit float64) func(Entity) bool {
	return func(e Entity) bool { return e.Y > limit }
}

// above returns a predicate matching entities that rose past the top edge.
func above(limit float64) func(Entity) bool {
	return func(e Entity) bool { return e.Y < limit }
}
