package session

import (
	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/progression"
)

// State exposes the underlying session state for persistence and rendering.
func (e *Engine) State() *models.SessionState {
	return e.state
}

// IsSessionComplete reports whether every exercise has been worked through.
func (e *Engine) IsSessionComplete() bool {
	return e.state.CurrentIndex >= len(e.state.Exercises)
}

// CurrentExercise returns the exercise the pointer sits on, or nil once the
// session is complete. Callers are expected to check IsSessionComplete
// before index-dependent reads.
func (e *Engine) CurrentExercise() *models.SessionExercise {
	if e.IsSessionComplete() {
		return nil
	}
	return &e.state.Exercises[e.state.CurrentIndex]
}

// CurrentIndex returns the position of the exercise pointer.
func (e *Engine) CurrentIndex() int {
	return e.state.CurrentIndex
}

// CurrentSetNumber is the 1-based number of the set about to be performed.
func (e *Engine) CurrentSetNumber() int {
	ex := e.CurrentExercise()
	if ex == nil {
		return 0
	}
	return len(ex.LoggedSets) + 1
}

// IsCurrentExerciseComplete reports whether all prescribed sets of the
// current exercise are logged.
func (e *Engine) IsCurrentExerciseComplete() bool {
	ex := e.CurrentExercise()
	if ex == nil {
		return true
	}
	return len(ex.LoggedSets) >= ex.PrescribedSets
}

// Exercises returns the full session list, logged sets included.
func (e *Engine) Exercises() []models.SessionExercise {
	return e.state.Exercises
}

// IsOccupied reports whether the current exercise's equipment is taken.
func (e *Engine) IsOccupied() bool {
	return e.state.Occupied
}

// LogSet appends a completed set to the current exercise without advancing
// the pointer; advancing is completeExercise's job. Logging past the end of
// the session is a no-op.
func (e *Engine) LogSet(set models.SessionSet) {
	ex := e.CurrentExercise()
	if ex == nil {
		return
	}
	set.SetNumber = len(ex.LoggedSets) + 1
	ex.LoggedSets = append(ex.LoggedSets, set)
}

// CompleteExercise marks the current exercise done, moves the pointer to
// the next one and clears the occupied flag.
func (e *Engine) CompleteExercise() {
	ex := e.CurrentExercise()
	if ex == nil {
		return
	}
	ex.Status = models.ExerciseStatusCompleted
	e.state.CurrentIndex++
	e.state.Occupied = false
}

// MarkOccupied flags the current equipment as taken. It touches nothing
// else: sets and the exercise pointer stay where they are.
func (e *Engine) MarkOccupied() {
	e.state.Occupied = true
}

// MarkMachineFree clears the occupied flag.
func (e *Engine) MarkMachineFree() {
	e.state.Occupied = false
}

// RecordFiller notes a filler exercise as done so it is not suggested again.
func (e *Engine) RecordFiller(name string) {
	for _, n := range e.state.CompletedFillers {
		if n == name {
			return
		}
	}
	e.state.CompletedFillers = append(e.state.CompletedFillers, name)
}

// ApplyPainAdjustments mutates live prescriptions according to the resolved
// pain overrides. Must run before further sets are logged for the affected
// exercises, since those sets read the prescribed values.
func (e *Engine) ApplyPainAdjustments(adjustments []models.PainAdjustment) {
	for _, adj := range adjustments {
		switch adj.Action {
		case models.PainActionReduceWeight:
			e.reduceWeight(adj)
		case models.PainActionNoProgression:
			e.resetToLastWeight(adj.ExerciseID)
		case models.PainActionSkip:
			e.removeExercise(adj.ExerciseID)
		}
	}
}

func (e *Engine) reduceWeight(adj models.PainAdjustment) {
	ex := e.findExercise(adj.ExerciseID)
	if ex == nil {
		return
	}
	base := adj.ReferenceWeightKg
	if base <= 0 {
		base = ex.PrescribedWeightKg
	}
	mult := adj.WeightMultiplier
	if mult <= 0 {
		mult = 1
	}
	ex.PrescribedWeightKg = progression.RoundTo(base*mult, 0.5)
}

// resetToLastWeight undoes this construction's weight progression. Reps are
// deliberately left alone: they come from the program target and must never
// be overwritten from history.
func (e *Engine) resetToLastWeight(exerciseID string) {
	ex := e.findExercise(exerciseID)
	if ex == nil {
		return
	}
	if hist, ok := e.history[exerciseID]; ok {
		ex.PrescribedWeightKg = hist.WeightKg
	}
}

// removeExercise drops an exercise from the session. Removing the current
// exercise leaves the pointer on the first of the remaining ones; removing
// an earlier exercise shifts the pointer so it keeps naming the same
// exercise.
func (e *Engine) removeExercise(exerciseID string) {
	idx := -1
	for i := range e.state.Exercises {
		if e.state.Exercises[i].ExerciseID == exerciseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	e.state.Exercises = append(e.state.Exercises[:idx], e.state.Exercises[idx+1:]...)
	if idx < e.state.CurrentIndex {
		e.state.CurrentIndex--
	}
}

// Substitute swaps the exercise at index for another one, keeping the slot's
// sets/reps/rest prescription but restarting its logged sets.
func (e *Engine) Substitute(index int, exerciseID, name string) {
	if index < 0 || index >= len(e.state.Exercises) {
		return
	}
	ex := &e.state.Exercises[index]
	ex.ExerciseID = exerciseID
	ex.Name = name
	ex.LoggedSets = nil
	ex.Status = models.ExerciseStatusPending
}

func (e *Engine) findExercise(exerciseID string) *models.SessionExercise {
	for i := range e.state.Exercises {
		if e.state.Exercises[i].ExerciseID == exerciseID {
			return &e.state.Exercises[i]
		}
	}
	return nil
}
