package filler

import "strings"

type Region string

const (
	RegionUpper Region = "upper"
	RegionLower Region = "lower"
	RegionCore  Region = "core"
)

// Keyword table for classifying exercise and muscle names into a coarse
// body region. Entries are checked in order, first hit wins, anything
// unmatched counts as core. This is a heuristic, not a taxonomy: unseen
// names can misclassify, and the selector is built to tolerate that.
var regionKeywords = []struct {
	keyword string
	region  Region
}{
	{"calf", RegionLower},
	{"squat", RegionLower},
	{"lunge", RegionLower},
	{"leg", RegionLower},
	{"quad", RegionLower},
	{"hamstring", RegionLower},
	{"glute", RegionLower},
	{"hip", RegionLower},
	{"ankle", RegionLower},
	{"deadlift", RegionLower},
	{"bridge", RegionLower},

	{"lower back", RegionCore},
	{"lower_back", RegionCore},

	{"bench", RegionUpper},
	{"press", RegionUpper},
	{"push", RegionUpper},
	{"pull", RegionUpper},
	{"row", RegionUpper},
	{"curl", RegionUpper},
	{"fly", RegionUpper},
	{"dip", RegionUpper},
	{"chest", RegionUpper},
	{"shoulder", RegionUpper},
	{"lat", RegionUpper},
	{"trap", RegionUpper},
	{"bicep", RegionUpper},
	{"tricep", RegionUpper},
	{"arm", RegionUpper},
	{"back", RegionUpper},
	{"rotator", RegionUpper},
	{"scapula", RegionUpper},
}

// ClassifyName maps an exercise name to its body region.
func ClassifyName(name string) Region {
	lower := strings.ToLower(name)
	for _, entry := range regionKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.region
		}
	}
	return RegionCore
}

// ClassifyMuscles maps a primary-muscle list to a region: the first muscle
// that resolves to a non-core region decides, otherwise core.
func ClassifyMuscles(muscles []string) Region {
	for _, m := range muscles {
		if r := ClassifyName(m); r != RegionCore {
			return r
		}
	}
	return RegionCore
}

// Clashes reports whether two regions compete for the same muscles.
// Core never clashes with anything.
func Clashes(a, b Region) bool {
	return a == b && a != RegionCore
}
