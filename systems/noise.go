// Package systems contains the simulation engines: terrain generation,
// plant spawning, and the creature lifecycle.
package systems

import "math"

// octave pairs a sampling scale with its amplitude contribution.
type octave struct {
	scale     float64
	amplitude float64
}

// heightOctaves are the four coherent-noise octaves accumulated into the
// heightmap. Their amplitudes sum to 1.875, used for normalization.
var heightOctaves = [4]octave{
	{8, 1.0},
	{16, 0.5},
	{32, 0.25},
	{64, 0.125},
}

// ValueNoise generates seeded coherent noise. Lattice values come from a
// deterministic integer hash, so identical seeds produce identical fields
// with no RNG state involved.
type ValueNoise struct {
	seed int64
}

// NewValueNoise creates a noise generator for the given seed.
func NewValueNoise(seed int64) ValueNoise {
	return ValueNoise{seed: seed}
}

// lattice returns a pseudo-random value in [-1, 1] for integer coordinates.
// Shift, xor, multiply-add, mask to 31 bits. Overflow wraps, which is fine:
// only determinism matters here.
func (n ValueNoise) lattice(x, y int) float64 {
	h := int64(x) + n.seed + (int64(y)+n.seed)*57
	h = (h << 13) ^ h
	h = (h*(h*h*15731+789221) + 1376312589) & 0x7fffffff
	return 1.0 - float64(h)/1073741824.0
}

// Sample returns smooth noise at continuous coordinates using cosine
// interpolation between the four surrounding lattice corners.
func (n ValueNoise) Sample(x, y float64) float64 {
	xi := int(math.Floor(x))
	yi := int(math.Floor(y))
	xf := x - float64(xi)
	yf := y - float64(yi)

	v1 := n.lattice(xi, yi)
	v2 := n.lattice(xi+1, yi)
	v3 := n.lattice(xi, yi+1)
	v4 := n.lattice(xi+1, yi+1)

	i1 := cosineLerp(v1, v2, xf)
	i2 := cosineLerp(v3, v4, xf)
	return cosineLerp(i1, i2, yf)
}

// Heightmap synthesizes a width x height field by accumulating the four
// octaves and normalizing the sum into [0, 1].
func (n ValueNoise) Heightmap(width, height int) [][]float64 {
	hm := make([][]float64, height)
	for y := range hm {
		hm[y] = make([]float64, width)
	}

	var maxAmplitude float64
	for _, oct := range heightOctaves {
		maxAmplitude += oct.amplitude
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				hm[y][x] += n.Sample(float64(x)/oct.scale, float64(y)/oct.scale) * oct.amplitude
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			hm[y][x] = (hm[y][x] + maxAmplitude) / (2 * maxAmplitude)
		}
	}
	return hm
}

// cosineLerp interpolates between a and b with the smooth cosine curve
// f = (1 - cos(t*pi)) / 2.
func cosineLerp(a, b, t float64) float64 {
	f := (1 - math.Cos(t*math.Pi)) / 2
	return a*(1-f) + b*f
}
