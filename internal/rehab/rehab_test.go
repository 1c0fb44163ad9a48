package rehab

import (
	"fmt"
	"testing"

	"github.com/soumzer/ferro/internal/models"
)

func testCatalog() []models.RehabProtocol {
	return []models.RehabProtocol{
		{
			Name: "hip control", Zone: "hip_right", Priority: 2,
			Exercises: []models.RehabExercise{
				{Name: "Clamshell", Sets: 2, Reps: "15", Placement: models.PlacementWarmup},
				{Name: "Hip Flexor Stretch", Sets: 2, Reps: "30 sec", Placement: models.PlacementCooldown},
				{Name: "Glute Bridge", Sets: 2, Reps: "12", Placement: models.PlacementActiveWait},
				{Name: "Couch Stretch", Sets: 1, Reps: "60 sec", Placement: models.PlacementRestDay},
			},
		},
		{
			Name: "low back care", Zone: "lower_back", Priority: 1,
			Exercises: []models.RehabExercise{
				{Name: "Cat Cow", Sets: 2, Reps: "10", Placement: models.PlacementWarmup},
				{Name: "Glute Bridge", Sets: 3, Reps: "10", Placement: models.PlacementActiveWait},
				{Name: "Child Pose", Sets: 1, Reps: "45 sec", Placement: models.PlacementCooldown},
			},
		},
	}
}

func active(zone string) models.Condition {
	return models.Condition{Zone: zone, Active: true}
}

func TestIntegrateNoActiveConditions(t *testing.T) {
	conditions := []models.Condition{{Zone: "lower_back", Active: false}}

	b := Integrate(conditions, testCatalog())

	if len(b.Warmup)+len(b.ActiveWait)+len(b.Cooldown) != 0 {
		t.Fatalf("expected empty buckets, got %+v", b)
	}
}

func TestIntegratePriorityAndDedup(t *testing.T) {
	b := Integrate([]models.Condition{active("hip_right"), active("lower_back")}, testCatalog())

	// lower_back has priority 1 so its exercises come first.
	if len(b.Warmup) != 2 || b.Warmup[0].Name != "Cat Cow" || b.Warmup[1].Name != "Clamshell" {
		t.Fatalf("warmup bucket = %+v", b.Warmup)
	}
	// Glute Bridge appears in both protocols; only the higher-priority copy
	// survives.
	if len(b.ActiveWait) != 1 || b.ActiveWait[0].Name != "Glute Bridge" || b.ActiveWait[0].Sets != 3 {
		t.Fatalf("active-wait bucket = %+v", b.ActiveWait)
	}
	// rest_day placement never reaches a live session.
	for _, list := range [][]models.RehabExercise{b.Warmup, b.ActiveWait, b.Cooldown} {
		for _, ex := range list {
			if ex.Name == "Couch Stretch" {
				t.Error("rest_day exercise leaked into a session bucket")
			}
		}
	}
}

func TestIntegrateBilateralMirror(t *testing.T) {
	// Only the right-hip protocol is authored; a left-hip condition should
	// still find it.
	b := Integrate([]models.Condition{active("hip_left")}, testCatalog())

	if len(b.Warmup) != 1 || b.Warmup[0].Name != "Clamshell" {
		t.Fatalf("warmup bucket = %+v, want the mirrored hip protocol", b.Warmup)
	}
}

func TestIntegrateUnknownZone(t *testing.T) {
	b := Integrate([]models.Condition{active("neck")}, testCatalog())

	if len(b.Warmup)+len(b.ActiveWait)+len(b.Cooldown) != 0 {
		t.Fatalf("expected empty buckets for unmatched zone, got %+v", b)
	}
}

func TestIntegrateNoDuplicateNamesAcrossBuckets(t *testing.T) {
	b := Integrate([]models.Condition{active("hip_right"), active("lower_back")}, testCatalog())

	seen := map[string]bool{}
	for _, list := range [][]models.RehabExercise{b.Warmup, b.ActiveWait, b.Cooldown} {
		for _, ex := range list {
			if seen[ex.Name] {
				t.Errorf("duplicate exercise name %q across buckets", ex.Name)
			}
			seen[ex.Name] = true
		}
	}
}

func TestIntegrateTruncatesBuckets(t *testing.T) {
	var exercises []models.RehabExercise
	for i := 0; i < 12; i++ {
		exercises = append(exercises,
			models.RehabExercise{Name: fmt.Sprintf("warm %d", i), Placement: models.PlacementWarmup},
			models.RehabExercise{Name: fmt.Sprintf("wait %d", i), Placement: models.PlacementActiveWait},
			models.RehabExercise{Name: fmt.Sprintf("cool %d", i), Placement: models.PlacementCooldown},
		)
	}
	catalog := []models.RehabProtocol{{Zone: "knee_left", Priority: 1, Exercises: exercises}}

	b := Integrate([]models.Condition{active("knee_left")}, catalog)

	if len(b.Warmup) != 8 {
		t.Errorf("warmup bucket = %d entries, want 8", len(b.Warmup))
	}
	if len(b.ActiveWait) != 8 {
		t.Errorf("active-wait bucket = %d entries, want 8", len(b.ActiveWait))
	}
	if len(b.Cooldown) != 5 {
		t.Errorf("cooldown bucket = %d entries, want 5", len(b.Cooldown))
	}
}

func TestMirrorZone(t *testing.T) {
	tests := []struct {
		zone   string
		mirror string
		ok     bool
	}{
		{"hip_left", "hip_right", true},
		{"knee_right", "knee_left", true},
		{"lower_back", "", false},
	}
	for _, tt := range tests {
		got, ok := MirrorZone(tt.zone)
		if got != tt.mirror || ok != tt.ok {
			t.Errorf("MirrorZone(%q) = %q,%v, want %q,%v", tt.zone, got, ok, tt.mirror, tt.ok)
		}
	}
}
