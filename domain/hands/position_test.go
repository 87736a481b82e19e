package hands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_Cycle(t *testing.T) {
	assert.Equal(t, MP, UTG.Next())
	assert.Equal(t, UTG, BTN.Next())
	assert.Equal(t, BTN, UTG.Prev())
	assert.Equal(t, CO, BTN.Prev())

	p := CO
	for range len(Positions) {
		p = p.Next()
	}
	assert.Equal(t, CO, p)
}

func TestParsePosition(t *testing.T) {
	p, err := ParsePosition(" btn")
	require.NoError(t, err)
	assert.Equal(t, BTN, p)

	_, err = ParsePosition("SB")
	assert.Error(t, err)
}
