package systems

import "math/rand"

// Hydraulic erosion tuning. One droplet traces a steepest-descent path,
// eroding on steep slopes and depositing sediment where the slope flattens.
const (
	erosionStrength    = 0.002
	depositionStrength = 0.001
	minSlope           = 0.0001
	maxDropletSteps    = 100
)

// erodeHeightmap runs width*height/2 independent droplet simulations over the
// heightmap, then clamps every cell to [0, 1]. Droplet start cells come from
// the generator's seeded RNG, keeping the pass deterministic per seed.
func erodeHeightmap(hm [][]float64, width, height int, seaLevel float64, rng *rand.Rand) {
	iterations := width * height / 2
	for i := 0; i < iterations; i++ {
		x := rng.Intn(width)
		y := rng.Intn(height)
		erodePath(hm, x, y, width, height, seaLevel)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if hm[y][x] < 0 {
				hm[y][x] = 0
			} else if hm[y][x] > 1 {
				hm[y][x] = 1
			}
		}
	}
}

// erodePath simulates a single droplet from (x, y).
func erodePath(hm [][]float64, x, y, width, height int, seaLevel float64) {
	sediment := 0.0

	for step := 0; step < maxDropletSteps; step++ {
		currentHeight := hm[y][x]
		nx, ny, nextHeight := lowestNeighbor(hm, x, y, width, height)

		drop := currentHeight - nextHeight
		if drop <= minSlope {
			// Flat ground: leave any carried sediment here
			if sediment > 0 {
				hm[y][x] += sediment * depositionStrength
			}
			return
		}

		eroded := drop
		if eroded > erosionStrength {
			eroded = erosionStrength
		}
		hm[y][x] -= eroded
		sediment += eroded

		// Gentle slope: shed part of the load before moving on
		if drop < erosionStrength {
			deposit := sediment * depositionStrength
			hm[y][x] += deposit
			sediment -= deposit
		}

		x, y = nx, ny

		if hm[y][x] < seaLevel {
			return
		}
	}
}

// lowestNeighbor returns the lowest of the 8 neighbors of (x, y), or the
// cell itself if nothing is lower.
func lowestNeighbor(hm [][]float64, x, y, width, height int) (int, int, float64) {
	lowestX, lowestY := x, y
	lowestHeight := hm[y][x]

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if hm[ny][nx] < lowestHeight {
				lowestX, lowestY = nx, ny
				lowestHeight = hm[ny][nx]
			}
		}
	}
	return lowestX, lowestY, lowestHeight
}
