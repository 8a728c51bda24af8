package telemetry

import (
	"testing"

	"github.com/pthm-cable/verdant/config"
	"github.com/pthm-cable/verdant/world"
)

func collectorWorld() *world.World {
	grid := world.NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			grid.Set(world.NewLandTile(x, y, 0.5))
		}
	}
	w := world.New(10, 10)
	w.SetTerrain(grid)
	return w
}

func TestCollectorWindowDone(t *testing.T) {
	c := NewCollector(100)

	if c.WindowDone(50) {
		t.Error("window should not be done mid-way")
	}
	if !c.WindowDone(100) {
		t.Error("window should be done at its end tick")
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(100)
	w := collectorWorld()

	cfg := config.FaunaConfig{InitialEnergy: 60, MaxEnergy: 100}
	w.AddCreature(world.NewCreature(0, 0, world.Male, world.Adult, cfg))
	w.AddCreature(world.NewCreature(1, 1, world.Female, world.Newborn, cfg))

	c.RecordBirth(2)
	c.RecordStarvation()
	c.RecordPlantEaten()
	c.RecordPlantSpawned()
	c.RecordPlantSpawned()

	stats := c.Flush(w, 100)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 100 {
		t.Errorf("window = [%d,%d], want [0,100]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Births != 2 || stats.Starvations != 1 || stats.PlantsEaten != 1 || stats.PlantsSpawned != 2 {
		t.Errorf("event counts wrong: %+v", stats)
	}
	if stats.CreatureCount != 2 || stats.MaleCount != 1 || stats.NewbornCount != 1 {
		t.Errorf("population snapshot wrong: %+v", stats)
	}
	if stats.LandTiles != 9 || stats.WaterTiles != 0 {
		t.Errorf("terrain snapshot wrong: %+v", stats)
	}
	if stats.EnergyMean != 60 {
		t.Errorf("energy mean = %v, want 60", stats.EnergyMean)
	}

	// Counters reset, window advances
	next := c.Flush(w, 200)
	if next.WindowStartTick != 100 || next.Births != 0 || next.PlantsSpawned != 0 {
		t.Errorf("counters not reset after flush: %+v", next)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0)
	if !c.WindowDone(1) {
		t.Error("zero-length window should clamp to one tick")
	}
}
