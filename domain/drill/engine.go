package drill

import (
	"fmt"
	"math/rand/v2"

	"github.com/luca-patrignani/preflop-trainer/domain/hands"
)

// State is the phase of a drill session.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// Lengths offered to the user when choosing a drill.
var Lengths = []int{10, 50, 100}

// Ranges is the read-only view of the range store used as ground truth.
type Ranges interface {
	Cell(p hands.Position, row, col int) (hands.HandCell, bool)
	IsSelected(p hands.Position, hand string) bool
}

// Hand is a sampled question.
type Hand struct {
	Hand     string         `json:"hand"`
	Position hands.Position `json:"position"`
}

// Result records one answered question.
type Result struct {
	Hand     string         `json:"hand"`
	Position hands.Position `json:"position"`
	Expected bool           `json:"expected"`
	Actual   bool           `json:"actual"`
}

// Correct reports whether the answer matched the range.
func (r Result) Correct() bool {
	return r.Expected == r.Actual
}

// Score counts answered and correctly answered questions.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Accuracy returns Correct/Total, or 0 before any answer.
func (s Score) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Engine is the drill state machine. It is not safe for concurrent use.
type Engine struct {
	ranges    Ranges
	positions []hands.Position
	rng       *rand.Rand

	state   State
	target  int
	current *Hand
	score   Score
	results []Result
}

type option func(Engine) Engine

// WithRand sets the random source used to sample hands.
func WithRand(r *rand.Rand) option {
	return func(e Engine) Engine {
		e.rng = r
		return e
	}
}

// WithSeed seeds a PCG source for reproducible sessions.
func WithSeed(seed uint64) option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithPositions restricts sampling to the given seats.
func WithPositions(positions ...hands.Position) option {
	return func(e Engine) Engine {
		e.positions = positions
		return e
	}
}

func NewEngine(r Ranges, opts ...option) *Engine {
	e := Engine{
		ranges:    r,
		positions: hands.Positions,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		state:     StateIdle,
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return &e
}

// Start begins a new session of length questions, discarding any previous one.
func (e *Engine) Start(length int) error {
	if length <= 0 {
		return fmt.Errorf("drill length must be positive, got %d", length)
	}
	if len(e.positions) == 0 {
		return fmt.Errorf("no positions to drill")
	}
	e.target = length
	e.score = Score{}
	e.results = nil
	e.state = StateInProgress
	e.deal()
	return nil
}

// Answer scores raise against the current hand. ok is false, and nothing
// changes, when no question is pending.
func (e *Engine) Answer(raise bool) (correct bool, ok bool) {
	if e.state != StateInProgress || e.current == nil {
		return false, false
	}
	h := *e.current
	expected := e.ranges.IsSelected(h.Position, h.Hand)
	r := Result{Hand: h.Hand, Position: h.Position, Expected: expected, Actual: raise}
	e.results = append(e.results, r)

	e.score.Total++
	if r.Correct() {
		e.score.Correct++
	}
	if e.score.Total >= e.target {
		e.state = StateComplete
	} else {
		e.deal()
	}
	return r.Correct(), true
}

// Reset discards the session and returns to Idle.
func (e *Engine) Reset() {
	e.state = StateIdle
	e.target = 0
	e.current = nil
	e.score = Score{}
	e.results = nil
}

func (e *Engine) deal() {
	p := e.positions[e.rng.IntN(len(e.positions))]
	row, col := e.rng.IntN(hands.Size), e.rng.IntN(hands.Size)
	cell, ok := e.ranges.Cell(p, row, col)
	if !ok {
		e.current = nil
		return
	}
	e.current = &Hand{Hand: cell.Hand, Position: p}
}

// State returns the current phase.
func (e *Engine) State() State {
	return e.state
}

// Current returns the hand being asked. After completion it is the last
// hand shown.
func (e *Engine) Current() (Hand, bool) {
	if e.current == nil {
		return Hand{}, false
	}
	return *e.current, true
}

// Target returns the length of the running session.
func (e *Engine) Target() int {
	return e.target
}

func (e *Engine) Score() Score {
	return e.score
}

// Results returns a copy of every answered question in order.
func (e *Engine) Results() []Result {
	return append([]Result(nil), e.results...)
}

// Mismatches returns the answers that disagreed with the range.
func (e *Engine) Mismatches() []Result {
	var out []Result
	for _, r := range e.results {
		if !r.Correct() {
			out = append(out, r)
		}
	}
	return out
}
