package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/preflop-trainer/domain/presets"
)

func TestResolvePreset(t *testing.T) {
	list := []presets.Preset{
		{ID: "1f0c-aaaa", Name: "tight"},
		{ID: "1f9d-bbbb", Name: "loose"},
		{ID: "77aa-cccc", Name: "dup"},
		{ID: "88bb-dddd", Name: "dup"},
	}

	p, err := resolvePreset(list, "1f9d-bbbb")
	require.NoError(t, err)
	assert.Equal(t, "loose", p.Name)

	p, err = resolvePreset(list, "tight")
	require.NoError(t, err)
	assert.Equal(t, "1f0c-aaaa", p.ID)

	p, err = resolvePreset(list, "77")
	require.NoError(t, err)
	assert.Equal(t, "77aa-cccc", p.ID)

	_, err = resolvePreset(list, "1f")
	assert.Error(t, err, "ambiguous prefix")
	_, err = resolvePreset(list, "dup")
	assert.Error(t, err, "ambiguous name")
	_, err = resolvePreset(list, "zz")
	assert.Error(t, err)
	_, err = resolvePreset(list, " ")
	assert.Error(t, err)
}
