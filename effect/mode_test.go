package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	for i, name := range modeNames {
		m, err := ParseMode(name)
		assert.NoError(t, err)
		assert.Equal(t, Mode(i), m)
		assert.Equal(t, name, m.String())
	}

	m, err := ParseMode(" Wood ")
	assert.NoError(t, err)
	assert.Equal(t, ModeWood, m)

	_, err = ParseMode("sparkle")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseRate(t *testing.T) {
	r, err := ParseRate("random")
	assert.NoError(t, err)
	assert.Equal(t, RateRandom, r)

	_, err = ParseRate("sometimes")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseLoop(t *testing.T) {
	l, err := ParseLoop("0")
	assert.NoError(t, err)
	assert.Equal(t, LoopCircular, l)

	l, err = ParseLoop("linear")
	assert.NoError(t, err)
	assert.Equal(t, LoopLinear, l)

	_, err = ParseLoop("spiral")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
