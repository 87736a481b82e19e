package main

import (
	"log/slog"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/luca-patrignani/preflop-trainer/domain/drill"
	"github.com/luca-patrignani/preflop-trainer/domain/hands"
)

func TestAccuracyPercent(t *testing.T) {
	assert.Equal(t, 0, accuracyPercent(drill.Score{}))
	assert.Equal(t, 67, accuracyPercent(drill.Score{Correct: 2, Total: 3}))
	assert.Equal(t, 100, accuracyPercent(drill.Score{Correct: 10, Total: 10}))
}

func TestActionName(t *testing.T) {
	assert.Equal(t, "Raise", actionName(true))
	assert.Equal(t, "Fold", actionName(false))
}

func TestComboShare(t *testing.T) {
	assert.Equal(t, "100.0%", comboShare(1326))
	assert.Equal(t, "0.5%", comboShare(6))
}

func TestPtermLevel(t *testing.T) {
	assert.Equal(t, pterm.LogLevelDebug, ptermLevel(slog.LevelDebug))
	assert.Equal(t, pterm.LogLevelInfo, ptermLevel(slog.LevelInfo))
	assert.Equal(t, pterm.LogLevelWarn, ptermLevel(slog.LevelWarn))
	assert.Equal(t, pterm.LogLevelError, ptermLevel(slog.LevelError))
}

func TestCardString(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	cards, err := hands.Cards("KQo")
	assert.NoError(t, err)
	assert.Equal(t, "K♠", cardString(cards[0]))
	assert.Equal(t, "Q♥", cardString(cards[1]))
}
