package particles

import (
	"cmp"
	"math"
	"slices"
)

// Link is a proximity link between particles I and J, with I < J.
type Link struct {
	I, J     int
	Distance float64
}

// LinkOpacity decays linearly from max at distance 0 to 0 at threshold.
func LinkOpacity(d, threshold, max float64) float64 {
	if threshold <= 0 || d >= threshold {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return (1 - d/threshold) * max
}

func distance(a, b Particle) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Links checks every unordered pair and returns those strictly closer than
// threshold, ordered by (I, J).
func Links(ps []Particle, threshold float64) []Link {
	return appendLinks(nil, ps, threshold)
}

func appendLinks(dst []Link, ps []Particle, threshold float64) []Link {
	if threshold <= 0 {
		return dst
	}
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			if d := distance(ps[i], ps[j]); d < threshold {
				dst = append(dst, Link{I: i, J: j, Distance: d})
			}
		}
	}
	return dst
}

type cellKey struct{ x, y int }

// GridLinks returns the same links as Links, binning particles into cells of
// size threshold so only neighbouring cells are compared.
func GridLinks(ps []Particle, threshold float64) []Link {
	return appendGridLinks(nil, ps, threshold)
}

func appendGridLinks(dst []Link, ps []Particle, threshold float64) []Link {
	if threshold <= 0 {
		return dst
	}
	bins := make(map[cellKey][]int, len(ps))
	keys := make([]cellKey, len(ps))
	for i, p := range ps {
		k := cellKey{x: int(math.Floor(p.X / threshold)), y: int(math.Floor(p.Y / threshold))}
		keys[i] = k
		bins[k] = append(bins[k], i)
	}

	start := len(dst)
	for i, k := range keys {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, j := range bins[cellKey{x: k.x + dx, y: k.y + dy}] {
					if j <= i {
						continue
					}
					if d := distance(ps[i], ps[j]); d < threshold {
						dst = append(dst, Link{I: i, J: j, Distance: d})
					}
				}
			}
		}
	}

	slices.SortFunc(dst[start:], func(a, b Link) int {
		if c := cmp.Compare(a.I, b.I); c != 0 {
			return c
		}
		return cmp.Compare(a.J, b.J)
	})
	return dst
}
