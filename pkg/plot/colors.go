package plot

import (
	"image/color"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// seriesColors picks one random color per column. Hue is uniform while
// saturation and value stay in mid ranges, so every trace reads clearly
// on a white background. The same seed always yields the same palette.
func seriesColors(seed uint64, n int) []color.Color {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]color.Color, n)
	for i := range out {
		h := rng.Float64() * 360
		s := 0.45 + rng.Float64()*0.4
		v := 0.55 + rng.Float64()*0.35
		out[i] = colorful.Hsv(h, s, v)
	}
	return out
}
