package domain

import "strings"

// Tempo is the performance speed of a song.
type Tempo string

const (
	TempoSlow   Tempo = "slow"
	TempoMedium Tempo = "medium"
	TempoFast   Tempo = "fast"
)

// ParseTempo matches slow, medium or fast ignoring case and surrounding space.
func ParseTempo(value string) (Tempo, bool) {
	switch t := Tempo(strings.ToLower(strings.TrimSpace(value))); t {
	case TempoSlow, TempoMedium, TempoFast:
		return t, true
	default:
		return "", false
	}
}

// TempoRanking maps tempos to their ordering rank.
type TempoRanking struct {
	ranks    map[Tempo]int
	fallback int
}

// DefaultTempoRanking ranks slow before medium before fast.
// Anything unrecognised ranks as medium.
func DefaultTempoRanking() TempoRanking {
	return TempoRanking{
		ranks: map[Tempo]int{
			TempoSlow:   0,
			TempoMedium: 1,
			TempoFast:   2,
		},
		fallback: 1,
	}
}

func (r TempoRanking) Rank(t Tempo) int {
	if rank, ok := r.ranks[Tempo(strings.ToLower(strings.TrimSpace(string(t))))]; ok {
		return rank
	}
	return r.fallback
}
