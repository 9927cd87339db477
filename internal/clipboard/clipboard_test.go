package clipboard

import (
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	var p Provider = &Memory{}

	text, err := p.Read()
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, p.Write("polished"))
	text, err = p.Read()
	require.NoError(t, err)
	assert.Equal(t, "polished", text)
}

func TestNew_FallsBackToMemory(t *testing.T) {
	orig := clipboard.Unsupported
	t.Cleanup(func() { clipboard.Unsupported = orig })

	clipboard.Unsupported = true
	p := New()
	require.IsType(t, &Memory{}, p)

	require.NoError(t, p.Write("kept in process"))
	text, err := p.Read()
	require.NoError(t, err)
	assert.Equal(t, "kept in process", text)

	clipboard.Unsupported = false
	assert.Equal(t, System{}, New())
}
