package telemetry

import "github.com/pthm-cable/verdant/world"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     int
	windowStartTick int

	births        int
	starvations   int
	oldAgeDeaths  int
	plantsSpawned int
	plantsEaten   int
}

// NewCollector creates a stats collector with the given window length.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordBirth records n offspring added in one reproduction event.
func (c *Collector) RecordBirth(n int) { c.births += n }

// RecordStarvation records a death by energy depletion.
func (c *Collector) RecordStarvation() { c.starvations++ }

// RecordOldAgeDeath records a death by exceeding max age.
func (c *Collector) RecordOldAgeDeath() { c.oldAgeDeaths++ }

// RecordPlantEaten records a plant consumed by a creature.
func (c *Collector) RecordPlantEaten() { c.plantsEaten++ }

// RecordPlantSpawned records a successful plant spawn.
func (c *Collector) RecordPlantSpawned() { c.plantsSpawned++ }

// WindowDone reports whether the current window ends at the given tick.
func (c *Collector) WindowDone(tick int) bool {
	return tick-c.windowStartTick >= c.windowTicks
}

// Flush closes the current window: it samples the world, folds in the
// accumulated events, resets the counters, and returns the finished stats.
func (c *Collector) Flush(w *world.World, tick int) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		Births:          c.births,
		Starvations:     c.starvations,
		OldAgeDeaths:    c.oldAgeDeaths,
		PlantsSpawned:   c.plantsSpawned,
		PlantsEaten:     c.plantsEaten,
	}
	stats.FromWorldStats(w.GetStatistics())

	energies := make([]float64, 0, len(w.Creatures()))
	for _, cr := range w.Creatures() {
		if cr.Alive {
			energies = append(energies, cr.Energy)
		}
	}
	stats.EnergyMean, stats.EnergyStd, stats.EnergyP10, stats.EnergyP50, stats.EnergyP90 = ComputeEnergyStats(energies)

	c.windowStartTick = tick
	c.births = 0
	c.starvations = 0
	c.oldAgeDeaths = 0
	c.plantsSpawned = 0
	c.plantsEaten = 0

	return stats
}

// Reset clears all counters and restarts the window at tick zero.
func (c *Collector) Reset() {
	c.windowStartTick = 0
	c.births = 0
	c.starvations = 0
	c.oldAgeDeaths = 0
	c.plantsSpawned = 0
	c.plantsEaten = 0
}
