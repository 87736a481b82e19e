package drill

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/preflop-trainer/domain/hands"
	"github.com/luca-patrignani/preflop-trainer/domain/ranges"
	"github.com/luca-patrignani/preflop-trainer/storage"
)

// singleHand answers every sample with the same cell.
type singleHand struct {
	hand     string
	selected map[hands.Position]bool
}

func (s singleHand) Cell(p hands.Position, row, col int) (hands.HandCell, bool) {
	return hands.HandCell{Hand: s.hand, Selected: s.selected[p]}, true
}

func (s singleHand) IsSelected(p hands.Position, hand string) bool {
	return hand == s.hand && s.selected[p]
}

func TestAnswer_CorrectRaise(t *testing.T) {
	r := singleHand{hand: "AKs", selected: map[hands.Position]bool{hands.BTN: true}}
	e := NewEngine(r, WithPositions(hands.BTN), WithSeed(1))
	require.NoError(t, e.Start(10))

	h, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, Hand{Hand: "AKs", Position: hands.BTN}, h)

	correct, ok := e.Answer(true)
	require.True(t, ok)
	assert.True(t, correct)
	assert.Equal(t, Score{Correct: 1, Total: 1}, e.Score())
}

func TestAnswer_WrongFold(t *testing.T) {
	r := singleHand{hand: "AKs", selected: map[hands.Position]bool{hands.BTN: true}}
	e := NewEngine(r, WithPositions(hands.BTN), WithSeed(1))
	require.NoError(t, e.Start(10))

	correct, ok := e.Answer(false)
	require.True(t, ok)
	assert.False(t, correct)
	assert.Equal(t, Score{Correct: 0, Total: 1}, e.Score())
	assert.Equal(t, []Result{{Hand: "AKs", Position: hands.BTN, Expected: true, Actual: false}}, e.Results())
	assert.Equal(t, e.Results(), e.Mismatches())
}

func TestDrill_CompletesAfterTarget(t *testing.T) {
	e := NewEngine(ranges.NewStore(storage.New(storage.NewMemory())), WithSeed(7))
	assert.Equal(t, StateIdle, e.State())
	require.NoError(t, e.Start(10))

	for i := 1; i <= 10; i++ {
		require.Equal(t, StateInProgress, e.State(), "answer %d", i)
		_, ok := e.Answer(i%2 == 0)
		require.True(t, ok)
	}
	assert.Equal(t, StateComplete, e.State())
	assert.Equal(t, 10, e.Score().Total)
	assert.Len(t, e.Results(), 10)

	last := e.Results()[9]
	h, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, Hand{Hand: last.Hand, Position: last.Position}, h, "current hand stays on the last question")

	_, ok = e.Answer(true)
	assert.False(t, ok, "answers after completion are ignored")
	assert.Equal(t, 10, e.Score().Total)
}

func TestAnswer_IdleIsNoop(t *testing.T) {
	e := NewEngine(singleHand{hand: "22"})
	_, ok := e.Answer(true)
	assert.False(t, ok)
	assert.Equal(t, Score{}, e.Score())
	assert.Empty(t, e.Results())
}

func TestStart_InvalidLength(t *testing.T) {
	e := NewEngine(singleHand{hand: "22"})
	assert.Error(t, e.Start(0))
	assert.Error(t, e.Start(-3))
	assert.Equal(t, StateIdle, e.State())

	e = NewEngine(singleHand{hand: "22"}, WithPositions())
	assert.Error(t, e.Start(5))
}

func TestStart_ResetsPreviousSession(t *testing.T) {
	e := NewEngine(singleHand{hand: "22"}, WithSeed(3))
	require.NoError(t, e.Start(1))
	e.Answer(true)
	require.Equal(t, StateComplete, e.State())

	require.NoError(t, e.Start(5))
	assert.Equal(t, StateInProgress, e.State())
	assert.Equal(t, Score{}, e.Score())
	assert.Empty(t, e.Results())
	assert.Equal(t, 5, e.Target())
}

func TestAnswer_ReadsLiveRanges(t *testing.T) {
	store := ranges.NewStore(storage.New(storage.NewMemory()))
	e := NewEngine(store, WithSeed(11))
	require.NoError(t, e.Start(2))
	h, _ := e.Current()

	require.True(t, store.ToggleHand(h.Position, h.Hand))
	correct, ok := e.Answer(true)
	require.True(t, ok)
	assert.True(t, correct, "ground truth is read at answer time")
}

func TestSampling_CoversPositionsAndCells(t *testing.T) {
	store := ranges.NewStore(storage.New(storage.NewMemory()))
	e := NewEngine(store, WithRand(rand.New(rand.NewPCG(42, 42))))
	require.NoError(t, e.Start(2000))

	positions := map[hands.Position]int{}
	labels := map[string]bool{}
	for range 2000 {
		h, ok := e.Current()
		require.True(t, ok)
		positions[h.Position]++
		labels[h.Hand] = true
		e.Answer(false)
	}
	assert.Len(t, positions, len(hands.Positions))
	for p, n := range positions {
		assert.Greater(t, n, 350, p)
	}
	assert.Greater(t, len(labels), 150)
	assert.Equal(t, 1.0, e.Score().Accuracy())
}

func TestReset(t *testing.T) {
	e := NewEngine(singleHand{hand: "22"})
	require.NoError(t, e.Start(3))
	e.Answer(true)
	e.Reset()
	assert.Equal(t, StateIdle, e.State())
	_, ok := e.Current()
	assert.False(t, ok)
	assert.Equal(t, Score{}, e.Score())
}

func TestScore_Accuracy(t *testing.T) {
	assert.Equal(t, 0.0, Score{}.Accuracy())
	assert.InDelta(t, 0.7, Score{Correct: 7, Total: 10}.Accuracy(), 1e-9)
}
