package nomogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_FrequencySpace(t *testing.T) {
	assert.Contains(t, Names(), FrequencySpaceName)

	ax, err := New(FrequencySpaceName, Options{UseGravityFormatter: true})
	require.NoError(t, err)
	fs, ok := ax.(*FrequencySpace)
	require.True(t, ok)
	assert.IsType(t, GravityFormatter{}, fs.DAxis.Formatter)
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := New("polar", Options{})
	assert.ErrorIs(t, err, ErrUnknownProjection)
}

func TestRegistry_RegisterTwicePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(FrequencySpaceName, func(Options) (Axes, error) { return nil, nil })
	})
	assert.Panics(t, func() { Register("nil_factory", nil) })
}
