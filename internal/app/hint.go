package app

import (
	"math/rand"
	"sort"

	"course-quiz-service/internal/domain"
)

// HintEliminations is the most wrong options a hint removes.
const HintEliminations = 2

// Shuffler randomizes the draw of eliminated options. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultShuffler draws from the process-wide random source.
var DefaultShuffler Shuffler = globalShuffler{}

// eliminate picks up to HintEliminations wrong options of q, never the
// correct one, returned in ascending order.
func eliminate(q domain.Question, shuffler Shuffler) []int {
	if shuffler == nil {
		shuffler = DefaultShuffler
	}
	wrong := q.WrongOptions()
	shuffler.Shuffle(len(wrong), func(i, j int) { wrong[i], wrong[j] = wrong[j], wrong[i] })
	n := HintEliminations
	if len(wrong) < n {
		n = len(wrong)
	}
	picked := append([]int(nil), wrong[:n]...)
	sort.Ints(picked)
	return picked
}
