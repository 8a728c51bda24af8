// Package telemetry accumulates simulation events into windowed statistics
// and writes them to structured logs and CSV files.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/verdant/world"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Population counts at window end
	PlantCount    int `csv:"plants"`
	CreatureCount int `csv:"creatures"`
	MaleCount     int `csv:"males"`
	FemaleCount   int `csv:"females"`
	NewbornCount  int `csv:"newborns"`
	AdultCount    int `csv:"adults"`

	// Terrain aggregates
	LandTiles    int     `csv:"land_tiles"`
	WaterTiles   int     `csv:"water_tiles"`
	AvgFertility float64 `csv:"avg_fertility"`

	// Events during window
	Births        int `csv:"births"`
	Starvations   int `csv:"starvations"`
	OldAgeDeaths  int `csv:"old_age_deaths"`
	PlantsSpawned int `csv:"plants_spawned"`
	PlantsEaten   int `csv:"plants_eaten"`

	// Energy distribution (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`
}

// ComputeEnergyStats calculates mean, standard deviation, and percentiles
// over live creature energies.
func ComputeEnergyStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, std, p10, p50, p90
}

// FromWorldStats copies the population and terrain snapshot into the window.
func (s *WindowStats) FromWorldStats(ws world.Statistics) {
	s.PlantCount = ws.PlantCount
	s.CreatureCount = ws.CreatureCount
	s.MaleCount = ws.MaleCount
	s.FemaleCount = ws.FemaleCount
	s.NewbornCount = ws.NewbornCount
	s.AdultCount = ws.AdultCount
	s.LandTiles = ws.LandTiles
	s.WaterTiles = ws.WaterTiles
	s.AvgFertility = ws.AvgFertility
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"plants", s.PlantCount,
		"creatures", s.CreatureCount,
		"males", s.MaleCount,
		"females", s.FemaleCount,
		"newborns", s.NewbornCount,
		"adults", s.AdultCount,
		"land_tiles", s.LandTiles,
		"water_tiles", s.WaterTiles,
		"avg_fertility", s.AvgFertility,
		"births", s.Births,
		"starvations", s.Starvations,
		"old_age_deaths", s.OldAgeDeaths,
		"plants_spawned", s.PlantsSpawned,
		"plants_eaten", s.PlantsEaten,
		"energy_mean", s.EnergyMean,
		"energy_std", s.EnergyStd,
		"energy_p10", s.EnergyP10,
		"energy_p50", s.EnergyP50,
		"energy_p90", s.EnergyP90,
	)
}
