package rng

import "math/rand"

// Source is the randomness the simulation draws from. Every component
// that rolls dice takes a Source instead of reaching for the global
// generator, so a fixed seed reproduces a whole run.
type Source interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

type seeded struct {
	r *rand.Rand
}

func New(seed int64) Source {
	return &seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Intn(n int) int { return s.r.Intn(n) }

// Between returns a uniform int in [min, max], both inclusive.
func Between(s Source, min, max int) int {
	return min + s.Intn(max-min+1)
}

// Shuffle permutes indices [0, n) uniformly (Fisher-Yates).
func Shuffle(s Source, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}

// Script is deterministic and test-friendly: it replays a queued list
// of rolls and falls back to zero when the queue runs dry.
type Script struct {
	rolls []int
	pos   int
}

func NewScript(rolls ...int) *Script {
	return &Script{rolls: rolls}
}

func (s *Script) Intn(n int) int {
	if s.pos >= len(s.rolls) {
		return 0
	}
	v := s.rolls[s.pos]
	s.pos++
	if v < 0 {
		v = 0
	}
	return v % n
}

// Push queues more rolls onto the script.
func (s *Script) Push(rolls ...int) {
	s.rolls = append(s.rolls, rolls...)
}
