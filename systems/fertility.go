package systems

import (
	"math"

	"github.com/pthm-cable/verdant/config"
)

// waterPos is a water tile coordinate used in the distance search.
type waterPos struct {
	x, y int
}

// fertilityField computes per-cell fertility from distance to the nearest
// water cell, then smooths it with two 3x3 box-blur passes. Water cells hold
// zero in the field; land values are mapped through the exponential falloff.
// isWater is indexed [y][x].
func fertilityField(isWater [][]bool, width, height, maxDistance int, falloffRate float64) [][]float64 {
	var water []waterPos
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isWater[y][x] {
				water = append(water, waterPos{x, y})
			}
		}
	}

	field := make([][]float64, height)
	for y := range field {
		field[y] = make([]float64, width)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isWater[y][x] {
				continue
			}
			dist := nearestWaterDistance(x, y, water, maxDistance)
			field[y][x] = distanceToFertility(dist, falloffRate)
		}
	}

	for pass := 0; pass < 2; pass++ {
		field = boxBlur(field, width, height)
	}
	return field
}

// nearestWaterDistance returns the Euclidean distance from (x, y) to the
// nearest water cell. Candidates are pruned by a Manhattan cutoff of
// maxDistance+5, and the scan exits early once a distance <= 1 is found.
// Returns +Inf when no water is reachable.
func nearestWaterDistance(x, y int, water []waterPos, maxDistance int) float64 {
	minDist := math.Inf(1)
	searchLimit := maxDistance + 5

	for _, w := range water {
		manhattan := abs(x-w.x) + abs(y-w.y)
		if manhattan > searchLimit {
			continue
		}
		dx := float64(x - w.x)
		dy := float64(y - w.y)
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < minDist {
			minDist = dist
		}
		if minDist <= 1.0 {
			return minDist
		}
	}
	return minDist
}

// distanceToFertility maps distance-from-water to a fertility value via
// exponential falloff, clamped to the documented bounds. Unreachable water
// (+Inf distance) decays to the minimum.
func distanceToFertility(distance, falloffRate float64) float64 {
	if distance == 0 {
		return config.MaxFertility
	}
	fertility := config.MaxFertility * math.Exp(-falloffRate*distance)
	if fertility < config.MinFertility {
		return config.MinFertility
	}
	if fertility > config.MaxFertility {
		return config.MaxFertility
	}
	return fertility
}

// boxBlur averages each cell over its 3x3 neighborhood; edge cells average
// over fewer neighbors.
func boxBlur(field [][]float64, width, height int) [][]float64 {
	smoothed := make([][]float64, height)
	for y := range smoothed {
		smoothed[y] = make([]float64, width)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			total := 0.0
			count := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					total += field[ny][nx]
					count++
				}
			}
			smoothed[y][x] = total / float64(count)
		}
	}
	return smoothed
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
