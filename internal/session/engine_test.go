package session

import (
	"testing"

	"github.com/soumzer/ferro/internal/models"
)

var testWeights = []float64{10, 12.5, 15, 17.5, 20, 22.5, 25, 30, 35, 37.5, 40, 42.5, 45}

func testProgram() models.ProgramSession {
	return models.ProgramSession{
		ID:   "sess-a",
		Name: "Upper A",
		Exercises: []models.ProgramExercise{
			{ID: "p1", ExerciseID: "bp", Order: 1, Sets: 4, TargetReps: 6, RestSeconds: 180},
			{ID: "p2", ExerciseID: "row", Order: 2, Sets: 3, TargetReps: 10, RestSeconds: 120},
			{ID: "p3", ExerciseID: "curl", Order: 3, Sets: 3, TargetReps: 12, RestSeconds: 90},
		},
	}
}

func testEngine(history models.ExerciseHistory) *Engine {
	return New(testProgram(), history, Options{
		AvailableWeights: testWeights,
		Categories:       map[string]string{"bp": models.CategoryCompound, "curl": models.CategoryIsolation},
		Names:            map[string]string{"bp": "Bench Press", "row": "Barbell Row", "curl": "Biceps Curl"},
	})
}

func TestNewWithoutHistory(t *testing.T) {
	e := testEngine(nil)

	for _, ex := range e.Exercises() {
		if ex.PrescribedWeightKg != 0 {
			t.Errorf("%s: weight = %v, want 0 without history or bodyweight", ex.ExerciseID, ex.PrescribedWeightKg)
		}
		if ex.Status != models.ExerciseStatusPending {
			t.Errorf("%s: status = %s, want pending", ex.ExerciseID, ex.Status)
		}
	}
	if got := e.Exercises()[0].PrescribedReps; got != 6 {
		t.Errorf("first exercise reps = %d, want program target 6", got)
	}
}

func TestNewBodyweightEstimate(t *testing.T) {
	e := New(testProgram(), nil, Options{
		AvailableWeights: testWeights,
		BodyweightKg:     80,
	})

	// Target 6 reps: 25% of bodyweight, snapped to a real plate.
	if got := e.Exercises()[0].PrescribedWeightKg; got != 20 {
		t.Errorf("heavy-target estimate = %v, want 20", got)
	}
	// Target 10 reps: 15% of bodyweight = 12, snapped to 12.5.
	if got := e.Exercises()[1].PrescribedWeightKg; got != 12.5 {
		t.Errorf("light-target estimate = %v, want 12.5", got)
	}
}

func TestNewDelegatesToProgression(t *testing.T) {
	history := models.ExerciseHistory{
		"bp": {WeightKg: 40, RepsPerSet: []int{8, 8, 8, 8}, AvgRIR: 2},
	}

	e := testEngine(history)

	bp := e.Exercises()[0]
	if bp.PrescribedWeightKg != 42.5 {
		t.Errorf("bp weight = %v, want progressed 42.5", bp.PrescribedWeightKg)
	}
	if bp.PrescribedReps != 6 {
		t.Errorf("bp reps = %d, want reset to target 6", bp.PrescribedReps)
	}

	res := e.Progression(testProgram().Exercises[0])
	if res.Action != models.ActionIncreaseWeight {
		t.Errorf("memoized action = %s, want increase_weight", res.Action)
	}
}

func TestNewDeloadPhase(t *testing.T) {
	history := models.ExerciseHistory{
		"bp":  {WeightKg: 40, RepsPerSet: []int{6, 6, 6, 6}, AvgRIR: 2},
		"row": {WeightKg: 45, RepsPerSet: []int{10, 10, 10}, AvgRIR: 2},
	}

	e := New(testProgram(), history, Options{
		AvailableWeights: testWeights,
		Phase:            models.PhaseDeload,
	})

	// 40 * 0.6 = 24, snapped down to 22.5; target 6 lifts to the deload
	// minimum of 10 reps.
	bp := e.Exercises()[0]
	if bp.PrescribedWeightKg != 22.5 {
		t.Errorf("bp deload weight = %v, want 22.5", bp.PrescribedWeightKg)
	}
	if bp.PrescribedReps != 10 {
		t.Errorf("bp deload reps = %d, want 10", bp.PrescribedReps)
	}
	// Target 10 already at the minimum stays put.
	if row := e.Exercises()[1]; row.PrescribedReps != 10 {
		t.Errorf("row deload reps = %d, want 10", row.PrescribedReps)
	}
}

func TestLogSetDoesNotAdvance(t *testing.T) {
	e := testEngine(nil)

	e.LogSet(models.SessionSet{ActualReps: 6, ActualWeightKg: 40})
	e.LogSet(models.SessionSet{ActualReps: 6, ActualWeightKg: 40})

	if e.CurrentIndex() != 0 {
		t.Fatalf("index = %d, want 0 after logging", e.CurrentIndex())
	}
	ex := e.CurrentExercise()
	if len(ex.LoggedSets) != 2 {
		t.Fatalf("logged sets = %d, want 2", len(ex.LoggedSets))
	}
	if ex.LoggedSets[0].SetNumber != 1 || ex.LoggedSets[1].SetNumber != 2 {
		t.Errorf("set numbers = %d,%d, want 1,2", ex.LoggedSets[0].SetNumber, ex.LoggedSets[1].SetNumber)
	}
	if e.CurrentSetNumber() != 3 {
		t.Errorf("current set number = %d, want 3", e.CurrentSetNumber())
	}
	if e.IsCurrentExerciseComplete() {
		t.Error("exercise reported complete after 2 of 4 sets")
	}
}

func TestCompleteExerciseAdvancesAndClearsOccupied(t *testing.T) {
	e := testEngine(nil)

	e.MarkOccupied()
	e.CompleteExercise()

	if e.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1", e.CurrentIndex())
	}
	if e.IsOccupied() {
		t.Error("occupied flag should clear on completion")
	}
	if e.Exercises()[0].Status != models.ExerciseStatusCompleted {
		t.Error("completed exercise not marked completed")
	}
}

func TestOccupiedFlagLeavesCountersAlone(t *testing.T) {
	e := testEngine(nil)
	e.LogSet(models.SessionSet{ActualReps: 6})

	e.MarkOccupied()
	if !e.IsOccupied() {
		t.Fatal("expected occupied")
	}
	e.MarkMachineFree()
	if e.IsOccupied() {
		t.Fatal("expected free")
	}

	if e.CurrentIndex() != 0 || len(e.CurrentExercise().LoggedSets) != 1 {
		t.Error("occupied toggling must not touch pointer or sets")
	}
}

func TestSessionCompletion(t *testing.T) {
	e := testEngine(nil)

	for i := 0; i < 3; i++ {
		e.CompleteExercise()
	}

	if !e.IsSessionComplete() {
		t.Fatal("session should be complete")
	}
	if e.CurrentExercise() != nil {
		t.Error("current exercise should be nil after completion")
	}
	if e.CurrentSetNumber() != 0 {
		t.Error("current set number should be 0 after completion")
	}

	// Past-the-end operations are no-ops, never panics.
	e.LogSet(models.SessionSet{ActualReps: 5})
	e.CompleteExercise()
	if !e.IsSessionComplete() {
		t.Error("no-op operations broke completion state")
	}
}

func TestRecordFillerDeduplicates(t *testing.T) {
	e := testEngine(nil)

	e.RecordFiller("Dead Bug")
	e.RecordFiller("Dead Bug")

	if got := len(e.State().CompletedFillers); got != 1 {
		t.Fatalf("completed fillers = %d entries, want 1", got)
	}
}
