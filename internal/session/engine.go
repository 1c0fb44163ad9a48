package session

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/soumzer/ferro/internal/models"
	"github.com/soumzer/ferro/internal/progression"
)

const (
	deloadWeightFactor = 0.6
	deloadMinReps      = 10

	// Bodyweight fractions for estimating a first working weight.
	estimateHeavyFraction = 0.25 // Targets of 6 reps or fewer.
	estimateLightFraction = 0.15
)

// Options configure engine construction. The zero value works: no available
// weights means 2.5-unit rounding, no bodyweight means unknown exercises
// start at zero.
type Options struct {
	AvailableWeights []float64
	Phase            string // models.PhaseNormal or models.PhaseDeload.
	Intensity        string
	BodyweightKg     float64
	Categories       map[string]string // Exercise ID -> compound/isolation.
	Names            map[string]string // Exercise ID -> display name.
}

// Engine owns one live session. It is a plain value handle: the CLI driver
// constructs it, calls operations on it, and persists its State between
// invocations. Nothing here blocks, sleeps, or reads a clock beyond
// timestamping; the driver owns time. Not safe for concurrent use, and not
// meant to be: a session belongs to the flow that created it.
type Engine struct {
	state   *models.SessionState
	history models.ExerciseHistory
	opts    Options

	// Progression results memoized for the construction pass, keyed by
	// exercise ID and scoped to this engine value.
	progressions map[string]models.ProgressionResult
}

// New builds a session from a program session and per-exercise history.
func New(program models.ProgramSession, history models.ExerciseHistory, opts Options) *Engine {
	if opts.Phase == "" {
		opts.Phase = models.PhaseNormal
	}
	e := &Engine{
		history:      history,
		opts:         opts,
		progressions: make(map[string]models.ProgressionResult),
	}

	state := &models.SessionState{
		SessionID:          uuid.New().String(),
		ProgramSessionID:   program.ID,
		ProgramSessionName: program.Name,
		Intensity:          firstNonEmpty(opts.Intensity, program.Intensity),
		Phase:              opts.Phase,
		StartTime:          time.Now().UTC(),
	}
	e.state = state

	for _, pe := range program.Exercises {
		weight, reps := e.prescribe(pe)
		state.Exercises = append(state.Exercises, models.SessionExercise{
			ExerciseID:         pe.ExerciseID,
			Name:               opts.Names[pe.ExerciseID],
			Order:              pe.Order,
			PrescribedSets:     pe.Sets,
			PrescribedReps:     reps,
			PrescribedWeightKg: weight,
			RestSeconds:        pe.RestSeconds,
			IsRehab:            pe.IsRehab,
			Status:             models.ExerciseStatusPending,
		})
	}

	return e
}

// Resume wraps a previously persisted state, e.g. between CLI invocations.
func Resume(state *models.SessionState, history models.ExerciseHistory, opts Options) *Engine {
	return &Engine{
		state:        state,
		history:      history,
		opts:         opts,
		progressions: make(map[string]models.ProgressionResult),
	}
}

// prescribe derives the opening weight and reps for one program exercise.
func (e *Engine) prescribe(pe models.ProgramExercise) (float64, int) {
	hist, ok := e.history[pe.ExerciseID]
	if !ok {
		// First exposure: either unknown (zero weight) or a rough
		// bodyweight-based estimate.
		if e.opts.BodyweightKg > 0 {
			fraction := estimateLightFraction
			if pe.TargetReps <= 6 {
				fraction = estimateHeavyFraction
			}
			return progression.SnapNearest(e.opts.BodyweightKg*fraction, e.opts.AvailableWeights), pe.TargetReps
		}
		return 0, pe.TargetReps
	}

	if e.opts.Phase == models.PhaseDeload {
		weight := progression.SnapDown(math.Round(hist.WeightKg*deloadWeightFactor), e.opts.AvailableWeights)
		reps := pe.TargetReps
		if reps < deloadMinReps {
			reps = deloadMinReps
		}
		return weight, reps
	}

	res := e.Progression(pe)
	return res.NextWeightKg, res.NextReps
}

// Progression returns the memoized progression result for a program
// exercise, computing it on first use.
func (e *Engine) Progression(pe models.ProgramExercise) models.ProgressionResult {
	if res, ok := e.progressions[pe.ExerciseID]; ok {
		return res
	}

	var hist *models.ExerciseHistoryEntry
	if h, ok := e.history[pe.ExerciseID]; ok {
		hist = &h
	}
	res := progression.Calculate(progression.Input{
		History:          hist,
		TargetReps:       pe.TargetReps,
		Sets:             pe.Sets,
		Intensity:        e.intensity(),
		Category:         e.opts.Categories[pe.ExerciseID],
		AvailableWeights: e.opts.AvailableWeights,
	})
	e.progressions[pe.ExerciseID] = res
	return res
}

func (e *Engine) intensity() string {
	if e.opts.Intensity != "" {
		return e.opts.Intensity
	}
	if e.state != nil {
		return e.state.Intensity
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
