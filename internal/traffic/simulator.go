// Package traffic derives per-edge congestion from time of day.
//
// A tick is a pure function of (seed, clock, edges): the same inputs always
// produce the same weights, so a tick can be replayed or verified. The
// jitter on top of each time bracket is drawn from a PCG stream keyed by
// seed and tick second.
package traffic

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/routegrid/routegrid/internal/models"
)

// jitterRange bounds the random spread added to a bracket multiplier.
const jitterRange = 0.15

// Simulator computes time-of-day traffic multipliers with bounded, seeded
// randomness. Stateless between ticks; safe for concurrent use.
type Simulator struct {
	seed int64
}

// New creates a Simulator. The same seed reproduces identical ticks.
func New(seed int64) *Simulator {
	return &Simulator{seed: seed}
}

// bracket is the deterministic part of a tick: one multiplier per road
// class plus the congestion label it implies.
type bracket struct {
	highway float64
	other   float64
	level   models.TrafficLevel
}

// bracketFor maps a clock reading to its traffic bracket. Weekday rush
// hours hit highways hardest; weekends peak in the afternoon.
func bracketFor(now time.Time) bracket {
	hour := now.Hour()
	wd := now.Weekday()
	weekend := wd == time.Saturday || wd == time.Sunday

	switch {
	case !weekend && ((hour >= 7 && hour < 10) || (hour >= 17 && hour < 20)):
		return bracket{highway: 1.8, other: 1.5, level: models.TrafficHigh}
	case !weekend && hour >= 10 && hour < 17:
		return bracket{highway: 1.2, other: 1.2, level: models.TrafficMedium}
	case weekend && hour >= 12 && hour < 19:
		return bracket{highway: 1.3, other: 1.3, level: models.TrafficMedium}
	default:
		return bracket{highway: 1, other: 1, level: models.TrafficLow}
	}
}

// ComputeWeights derives each edge's current weight and traffic level for
// the given clock. The multiplier never drops below 1, so congestion can
// only add to the base weight. Blocked edges are recomputed like any
// other; unblocking needs no extra tick. Edges are processed in slice
// order, which makes the jitter assignment reproducible.
func (s *Simulator) ComputeWeights(edges []models.Edge, now time.Time) []models.EdgeTraffic {
	rng := rand.New(rand.NewPCG(uint64(s.seed), uint64(now.Unix())))
	br := bracketFor(now)

	out := make([]models.EdgeTraffic, 0, len(edges))
	for _, e := range edges {
		mult := br.other
		if e.RoadKind == models.RoadHighway {
			mult = br.highway
		}

		mult += (rng.Float64()*2 - 1) * jitterRange
		if mult < 1 {
			mult = 1
		}

		// Rounding to one decimal must not undercut the base weight.
		w := round1(e.BaseWeight * mult)
		if w < e.BaseWeight {
			w = e.BaseWeight
		}

		out = append(out, models.EdgeTraffic{
			EdgeID:        e.ID,
			CurrentWeight: w,
			TrafficLevel:  br.level,
		})
	}
	return out
}

// Level reports the congestion label the clock alone implies, before any
// jitter.
func Level(now time.Time) models.TrafficLevel {
	return bracketFor(now).level
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
