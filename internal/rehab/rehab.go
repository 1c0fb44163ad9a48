package rehab

import (
	"sort"
	"strings"

	"github.com/soumzer/ferro/internal/models"
)

const (
	maxWarmup     = 8
	maxCooldown   = 5
	maxActiveWait = 8
)

// Buckets are the rehab exercises slotted into a session by placement.
type Buckets struct {
	Warmup     []models.RehabExercise
	ActiveWait []models.RehabExercise
	Cooldown   []models.RehabExercise
}

// Integrate matches active conditions against the protocol catalog and
// distributes the resulting exercises over the session's three slots.
// Protocols are walked most urgent first, exercise names are never
// duplicated within or across buckets, and each bucket is capped so rehab
// does not crowd out the actual training.
func Integrate(conditions []models.Condition, catalog []models.RehabProtocol) Buckets {
	var active []models.Condition
	for _, c := range conditions {
		if c.Active {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return Buckets{}
	}

	var matched []models.RehabProtocol
	for _, c := range active {
		if p, ok := findProtocol(catalog, c.Zone); ok {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority < matched[j].Priority
	})

	var buckets Buckets
	seen := map[string]bool{}
	for _, p := range matched {
		for _, ex := range p.Exercises {
			if ex.Placement == models.PlacementRestDay || seen[ex.Name] {
				continue
			}
			seen[ex.Name] = true

			switch ex.Placement {
			case models.PlacementWarmup:
				buckets.Warmup = append(buckets.Warmup, ex)
			case models.PlacementActiveWait:
				buckets.ActiveWait = append(buckets.ActiveWait, ex)
			case models.PlacementCooldown:
				buckets.Cooldown = append(buckets.Cooldown, ex)
			}
		}
	}

	buckets.Warmup = truncate(buckets.Warmup, maxWarmup)
	buckets.ActiveWait = truncate(buckets.ActiveWait, maxActiveWait)
	buckets.Cooldown = truncate(buckets.Cooldown, maxCooldown)
	return buckets
}

// findProtocol looks for an exact zone match, then for the zone's bilateral
// mirror. Protocols are authored once per zone pair; without the mirror the
// less common reported side would silently get nothing.
func findProtocol(catalog []models.RehabProtocol, zone string) (models.RehabProtocol, bool) {
	for _, p := range catalog {
		if p.Zone == zone {
			return p, true
		}
	}
	if mirror, ok := MirrorZone(zone); ok {
		for _, p := range catalog {
			if p.Zone == mirror {
				return p, true
			}
		}
	}
	return models.RehabProtocol{}, false
}

// MirrorZone swaps the left/right suffix of a body zone, e.g.
// hip_left <-> hip_right.
func MirrorZone(zone string) (string, bool) {
	if strings.HasSuffix(zone, "_left") {
		return strings.TrimSuffix(zone, "_left") + "_right", true
	}
	if strings.HasSuffix(zone, "_right") {
		return strings.TrimSuffix(zone, "_right") + "_left", true
	}
	return "", false
}

func truncate(list []models.RehabExercise, max int) []models.RehabExercise {
	if len(list) > max {
		return list[:max]
	}
	return list
}
