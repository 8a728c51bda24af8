package world

import (
	"math/rand"

	"github.com/pthm-cable/verdant/config"
)

// Gender determines reproduction pairing.
type Gender uint8

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Male {
		return "male"
	}
	return "female"
}

// LifeStage is the creature growth stage. The only transition is
// Newborn -> Adult, triggered by accumulated plants eaten.
type LifeStage uint8

const (
	Newborn LifeStage = iota
	Adult
)

func (s LifeStage) String() string {
	if s == Newborn {
		return "newborn"
	}
	return "adult"
}

// Creature is a mobile agent that moves, eats plants, grows, reproduces,
// and dies of starvation or old age.
type Creature struct {
	ID     uint32
	X, Y   int
	Gender Gender
	Stage  LifeStage

	Age            int
	PlantsEaten    int
	Energy         float64
	Alive          bool
	OffspringCount int

	// ReproCooldown counts down in ticks; reproduction requires zero.
	ReproCooldown int
}

// NewCreature creates a creature at grid coordinates with the configured
// starting energy.
func NewCreature(x, y int, gender Gender, stage LifeStage, cfg config.FaunaConfig) *Creature {
	return &Creature{
		X:      x,
		Y:      y,
		Gender: gender,
		Stage:  stage,
		Energy: cfg.InitialEnergy,
		Alive:  true,
	}
}

// Step advances the creature's per-tick state machine: aging, energy drain,
// death checks, growth, and cooldown. Death is terminal; once Alive goes
// false it never flips back.
func (c *Creature) Step(cfg config.FaunaConfig) {
	if !c.Alive {
		return
	}

	c.Age++
	c.Energy -= cfg.EnergyLossPerTick

	if c.Energy <= 0 {
		c.Alive = false
		return
	}
	if c.Age >= cfg.MaxAge {
		c.Alive = false
		return
	}

	if c.Stage == Newborn && c.PlantsEaten >= cfg.PlantsToGrow {
		c.Stage = Adult
	}

	if c.ReproCooldown > 0 {
		c.ReproCooldown--
	}
}

// EatPlant credits a consumed plant: energy gain capped at MaxEnergy plus
// progress toward growth and reproduction.
func (c *Creature) EatPlant(cfg config.FaunaConfig) {
	c.PlantsEaten++
	c.Energy += cfg.EnergyFromPlant
	if c.Energy > cfg.MaxEnergy {
		c.Energy = cfg.MaxEnergy
	}
}

// CanReproduce reports whether the creature is currently eligible to mate.
func (c *Creature) CanReproduce(cfg config.FaunaConfig) bool {
	return c.Alive &&
		c.Stage == Adult &&
		c.PlantsEaten >= cfg.PlantsToReproduce &&
		c.ReproCooldown == 0
}

// ConsumeReproductionResources charges the creature for a successful
// reproduction: plants eaten drop by the reproduction cost (floored at 0)
// and the cooldown resets.
func (c *Creature) ConsumeReproductionResources(cfg config.FaunaConfig) {
	c.PlantsEaten -= cfg.PlantsToReproduce
	if c.PlantsEaten < 0 {
		c.PlantsEaten = 0
	}
	c.ReproCooldown = cfg.ReproCooldown
	c.OffspringCount++
}

// MoveToward steps one tile toward the target, each axis independently,
// clamped to grid bounds.
func (c *Creature) MoveToward(targetX, targetY, gridW, gridH int) {
	if !c.Alive {
		return
	}
	c.X = clamp(c.X+sign(targetX-c.X), 0, gridW-1)
	c.Y = clamp(c.Y+sign(targetY-c.Y), 0, gridH-1)
}

// MoveRandom steps -1/0/+1 on each axis uniformly, clamped to grid bounds.
func (c *Creature) MoveRandom(rng *rand.Rand, gridW, gridH int) {
	if !c.Alive {
		return
	}
	c.X = clamp(c.X+rng.Intn(3)-1, 0, gridW-1)
	c.Y = clamp(c.Y+rng.Intn(3)-1, 0, gridH-1)
}

func sign(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
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
