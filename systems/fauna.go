package systems

import (
	"math/rand"

	"github.com/pthm-cable/verdant/config"
	"github.com/pthm-cable/verdant/world"
)

// FaunaEvents receives notable lifecycle events. Implemented by the
// telemetry collector; a nil receiver is allowed.
type FaunaEvents interface {
	RecordBirth(n int)
	RecordStarvation()
	RecordOldAgeDeath()
	RecordPlantEaten()
}

// FaunaSystem drives creature behavior: the per-tick state machine,
// priority-based movement (food, then mates, then wandering), eating, and
// the deferred reproduction pass.
type FaunaSystem struct {
	cfg    config.FaunaConfig
	rng    *rand.Rand
	events FaunaEvents

	// pending maps creature ID -> candidate partner ID for this tick.
	// Cleared at the start of every update; first recorded link wins.
	pending map[uint32]uint32
}

// NewFaunaSystem creates the creature lifecycle engine.
func NewFaunaSystem(cfg config.FaunaConfig, rng *rand.Rand, events FaunaEvents) *FaunaSystem {
	return &FaunaSystem{
		cfg:     cfg,
		rng:     rng,
		events:  events,
		pending: make(map[uint32]uint32),
	}
}

// Update advances every creature one tick, then resolves reproduction.
// Reproduction is deferred so the creature list is never mutated while it is
// being iterated.
func (s *FaunaSystem) Update(w *world.World) {
	w.RemoveDeadCreatures()
	clear(s.pending)

	gridW := w.Grid().Width()
	gridH := w.Grid().Height()

	for _, c := range w.Creatures() {
		wasAlive := c.Alive
		c.Step(s.cfg)

		if !c.Alive {
			if wasAlive && s.events != nil {
				if c.Energy <= 0 {
					s.events.RecordStarvation()
				} else {
					s.events.RecordOldAgeDeath()
				}
			}
			continue
		}

		switch {
		case c.Energy < s.cfg.MaxEnergy*0.7:
			s.seekFood(c, w, gridW, gridH)
		case c.CanReproduce(s.cfg):
			s.seekMate(c, w, gridW, gridH)
		default:
			c.MoveRandom(s.rng, gridW, gridH)
		}
	}

	s.resolveReproduction(w, gridW, gridH)
}

// seekFood eats the plant under the creature if there is one, otherwise
// steps toward the nearest plant in the search radius (eating it if the step
// lands on it). With no plant in sight the creature wanders.
func (s *FaunaSystem) seekFood(c *world.Creature, w *world.World, gridW, gridH int) {
	if p := w.PlantAt(c.X, c.Y); p != nil {
		s.eat(c, p, w)
		return
	}

	target := s.nearestPlant(c, w.Plants())
	if target == nil {
		c.MoveRandom(s.rng, gridW, gridH)
		return
	}

	c.MoveToward(target.X, target.Y, gridW, gridH)
	if c.X == target.X && c.Y == target.Y {
		s.eat(c, target, w)
	}
}

func (s *FaunaSystem) eat(c *world.Creature, p *world.Plant, w *world.World) {
	w.RemovePlant(p)
	c.EatPlant(s.cfg)
	if s.events != nil {
		s.events.RecordPlantEaten()
	}
}

// nearestPlant picks the Manhattan-nearest plant within a square search
// radius around the creature.
func (s *FaunaSystem) nearestPlant(c *world.Creature, plants []*world.Plant) *world.Plant {
	var nearest *world.Plant
	best := 0
	for _, p := range plants {
		if abs(p.X-c.X) > s.cfg.SearchRadius || abs(p.Y-c.Y) > s.cfg.SearchRadius {
			continue
		}
		d := abs(p.X-c.X) + abs(p.Y-c.Y)
		if nearest == nil || d < best {
			nearest = p
			best = d
		}
	}
	return nearest
}

// seekMate finds the nearest live opposite-gender creature that can also
// reproduce. Within range it records a pending-partner link (first link
// wins); otherwise it steps toward the mate. With no candidate at all the
// creature wanders.
func (s *FaunaSystem) seekMate(c *world.Creature, w *world.World, gridW, gridH int) {
	var mate *world.Creature
	best := 0
	for _, other := range w.Creatures() {
		if other == c || other.Gender == c.Gender || !other.CanReproduce(s.cfg) {
			continue
		}
		d := abs(other.X-c.X) + abs(other.Y-c.Y)
		if mate == nil || d < best {
			mate = other
			best = d
		}
	}

	if mate == nil {
		c.MoveRandom(s.rng, gridW, gridH)
		return
	}

	if best <= s.cfg.ReproductionRange {
		if _, ok := s.pending[c.ID]; !ok {
			s.pending[c.ID] = mate.ID
		}
	} else {
		c.MoveToward(mate.X, mate.Y, gridW, gridH)
	}
}

// resolveReproduction processes the pending-partner table once all movement
// is done. Symmetric pairs are deduplicated by sorted ID, eligibility and
// distance are re-validated at resolution time, and offspring placement
// respects the world's creature capacity.
func (s *FaunaSystem) resolveReproduction(w *world.World, gridW, gridH int) {
	if len(s.pending) == 0 {
		return
	}

	byID := make(map[uint32]*world.Creature, len(w.Creatures()))
	for _, c := range w.Creatures() {
		byID[c.ID] = c
	}

	type pairKey struct{ lo, hi uint32 }
	processed := make(map[pairKey]bool)

	// Iterate the creature list, not the map, so resolution order is
	// deterministic for a fixed seed.
	for _, c := range w.Creatures() {
		partnerID, ok := s.pending[c.ID]
		if !ok {
			continue
		}

		key := pairKey{c.ID, partnerID}
		if key.lo > key.hi {
			key.lo, key.hi = key.hi, key.lo
		}
		if processed[key] {
			continue
		}
		processed[key] = true

		partner := byID[partnerID]
		if partner == nil || !s.canPair(c, partner) {
			continue
		}

		s.spawnOffspring(c, partner, w, gridW, gridH)
		c.ConsumeReproductionResources(s.cfg)
		partner.ConsumeReproductionResources(s.cfg)
	}
}

// canPair re-validates mutual eligibility, gender difference, and distance.
func (s *FaunaSystem) canPair(a, b *world.Creature) bool {
	if !a.CanReproduce(s.cfg) || !b.CanReproduce(s.cfg) {
		return false
	}
	if a.Gender == b.Gender {
		return false
	}
	return abs(a.X-b.X)+abs(a.Y-b.Y) <= s.cfg.ReproductionRange
}

// spawnOffspring creates 1-3 newborns at the jittered midpoint of the
// parents. Offspring beyond the creature capacity are silently dropped.
func (s *FaunaSystem) spawnOffspring(a, b *world.Creature, w *world.World, gridW, gridH int) {
	count := s.rng.Intn(3) + 1
	born := 0
	for i := 0; i < count; i++ {
		x := clamp((a.X+b.X)/2+s.rng.Intn(3)-1, 0, gridW-1)
		y := clamp((a.Y+b.Y)/2+s.rng.Intn(3)-1, 0, gridH-1)
		gender := world.Male
		if s.rng.Intn(2) == 1 {
			gender = world.Female
		}
		baby := world.NewCreature(x, y, gender, world.Newborn, s.cfg)
		if w.AddCreature(baby) {
			born++
		}
	}
	if born > 0 && s.events != nil {
		s.events.RecordBirth(born)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
