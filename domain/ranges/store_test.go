package ranges

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/preflop-trainer/domain/hands"
	"github.com/luca-patrignani/preflop-trainer/storage"
)

func newStore(t *testing.T) (*Store, *storage.Store) {
	t.Helper()
	kv := storage.New(storage.NewMemory())
	return NewStore(kv), kv
}

func TestNewStore_GeneratesOnFirstRun(t *testing.T) {
	s, _ := newStore(t)
	snap := s.Snapshot()
	require.NoError(t, snap.Validate(hands.Positions))
	for _, p := range hands.Positions {
		assert.Empty(t, snap.Selected(p))
	}
}

func TestToggle_FlipsOneCellAndPersists(t *testing.T) {
	s, kv := newStore(t)
	require.True(t, s.Toggle(hands.BTN, 0, 1))

	assert.True(t, s.IsSelected(hands.BTN, "AKs"))
	assert.False(t, s.IsSelected(hands.CO, "AKs"))
	assert.False(t, s.IsSelected(hands.BTN, "AKo"))

	stored := storage.Get[RangeSet](kv, storage.KeyRanges, nil)
	assert.Equal(t, []string{"AKs"}, stored.Selected(hands.BTN))

	require.True(t, s.Toggle(hands.BTN, 0, 1))
	assert.False(t, s.IsSelected(hands.BTN, "AKs"))
}

func TestToggle_OutOfBounds(t *testing.T) {
	s, kv := newStore(t)
	assert.False(t, s.Toggle(hands.BTN, 13, 0))
	assert.False(t, s.Toggle(hands.BTN, 0, -1))
	assert.False(t, s.Toggle("SB", 0, 0))
	assert.False(t, s.ToggleHand(hands.BTN, "AXs"))

	_, err := kv.Backend().Get(storage.KeyRanges)
	assert.ErrorIs(t, err, storage.ErrNotFound, "rejected toggles must not persist")
}

func TestNewStore_RestoresPersisted(t *testing.T) {
	s, kv := newStore(t)
	require.True(t, s.ToggleHand(hands.UTG, "QQ"))

	restored := NewStore(kv)
	assert.True(t, restored.IsSelected(hands.UTG, "QQ"))
}

func TestNewStore_InvalidShapeFallsBack(t *testing.T) {
	kv := storage.New(storage.NewMemory())
	bad := Initial(hands.Positions)
	bad[hands.CO] = bad[hands.CO][:5]
	kv.Save(storage.KeyRanges, bad)

	s := NewStore(kv)
	require.NoError(t, s.Snapshot().Validate(hands.Positions))
}

func TestNewStore_CorruptFallsBack(t *testing.T) {
	m := storage.NewMemory()
	require.NoError(t, m.Set(storage.KeyRanges, []byte(`["nope"`)))
	s := NewStore(storage.New(m))
	require.NoError(t, s.Snapshot().Validate(hands.Positions))
}

func TestSnapshot_IsIndependent(t *testing.T) {
	s, _ := newStore(t)
	snap := s.Snapshot()
	require.True(t, s.ToggleHand(hands.MP, "JJ"))
	assert.False(t, snap[hands.MP][3][3].Selected)

	snap[hands.MP][0][0].Selected = true
	assert.False(t, s.IsSelected(hands.MP, "AA"))
}

func TestSnapshotReplace_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	s.ToggleHand(hands.CO, "A5s")
	s.ToggleHand(hands.BTN, "K9o")

	before := s.Snapshot()
	require.NoError(t, s.Replace(s.Snapshot()))
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Fatalf("ranges changed (-before +after):\n%s", diff)
	}
}

func TestReplace_DiscardsPriorAndCopies(t *testing.T) {
	s, _ := newStore(t)
	s.ToggleHand(hands.CO, "A5s")

	next := Initial(hands.Positions)
	next[hands.UTG][0][0].Selected = true
	require.NoError(t, s.Replace(next))

	assert.False(t, s.IsSelected(hands.CO, "A5s"))
	assert.True(t, s.IsSelected(hands.UTG, "AA"))

	next[hands.UTG][0][0].Selected = false
	assert.True(t, s.IsSelected(hands.UTG, "AA"), "store must not alias the replacement")
}

func TestReplace_RejectsInvalid(t *testing.T) {
	s, _ := newStore(t)
	s.ToggleHand(hands.CO, "A5s")
	err := s.Replace(RangeSet{hands.CO: hands.GenerateMatrix()})
	assert.Error(t, err)
	assert.True(t, s.IsSelected(hands.CO, "A5s"))
}

func TestSetPositionAndCount(t *testing.T) {
	s, _ := newStore(t)
	require.True(t, s.SetPosition(hands.BTN, true))
	cells, combos := s.Count(hands.BTN)
	assert.Equal(t, 169, cells)
	assert.Equal(t, hands.TotalCombos, combos)

	require.True(t, s.SetPosition(hands.BTN, false))
	s.ToggleHand(hands.BTN, "AA")
	s.ToggleHand(hands.BTN, "AKs")
	s.ToggleHand(hands.BTN, "AKo")
	cells, combos = s.Count(hands.BTN)
	assert.Equal(t, 3, cells)
	assert.Equal(t, 6+4+12, combos)

	assert.False(t, s.SetPosition("SB", true))
}

func TestReset(t *testing.T) {
	s, kv := newStore(t)
	s.ToggleHand(hands.MP, "88")
	s.Reset()
	assert.False(t, s.IsSelected(hands.MP, "88"))
	assert.Empty(t, NewStore(kv).Snapshot().Selected(hands.MP))
}

func TestCellAndGrid(t *testing.T) {
	s, _ := newStore(t)
	cell, ok := s.Cell(hands.UTG, 1, 0)
	require.True(t, ok)
	assert.Equal(t, "AKo", cell.Hand)

	_, ok = s.Cell(hands.UTG, 1, 13)
	assert.False(t, ok)

	g, ok := s.Grid(hands.UTG)
	require.True(t, ok)
	g[0][0].Selected = true
	assert.False(t, s.IsSelected(hands.UTG, "AA"))
}

func TestWithPositions(t *testing.T) {
	s := NewStore(storage.New(storage.NewMemory()), WithPositions(hands.CO, hands.BTN))
	assert.Equal(t, []hands.Position{hands.CO, hands.BTN}, s.Positions())
	assert.False(t, s.Toggle(hands.UTG, 0, 0))
	assert.True(t, s.Toggle(hands.CO, 0, 0))
}
