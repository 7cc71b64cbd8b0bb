package editor

import "math/rand/v2"

// Picker chooses one point among several candidates near the pointer.
// candidates is never empty.
type Picker interface {
	Pick(candidates []int) int
}

// FirstPicker always takes the lowest index.
type FirstPicker struct{}

func (FirstPicker) Pick(candidates []int) int { return candidates[0] }

// RandomPicker chooses uniformly, so repeated clicks in a crowded spot
// cycle through the points there.
type RandomPicker struct {
	rng *rand.Rand
}

func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))}
}

func (p *RandomPicker) Pick(candidates []int) int {
	return candidates[p.rng.IntN(len(candidates))]
}
