package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitcherDefersChangeToNextFrame(t *testing.T) {
	var made []*stubDemo
	reg := NewRegistry()
	reg.Register("stub", func() Demo {
		d := &stubDemo{}
		made = append(made, d)
		return d
	})

	r := &fakeRenderer{}
	s := newFakeSurface(640, 480, 1)
	sw := NewSwitcher(reg, r, s, Options{})

	require.NoError(t, sw.Change("stub", ""))
	assert.Nil(t, sw.Current())

	require.NoError(t, sw.Frame(0))
	require.NotNil(t, sw.Current())
	assert.Equal(t, "default", sw.Current().Context().Preset)
	assert.Equal(t, 1, r.renders)

	first := sw.Current()
	sw.CyclePreset()
	assert.Same(t, first, sw.Current(), "switch waits for the frame boundary")

	require.NoError(t, sw.Frame(16))
	assert.Equal(t, "other", sw.Current().Context().Preset)
	assert.False(t, first.Initialized())
	assert.Len(t, s.listeners, 1, "old app unsubscribed")

	sw.Close()
	assert.Nil(t, sw.Current())
	assert.Empty(t, s.listeners)
}

func TestSwitcherRejectsUnknown(t *testing.T) {
	reg := NewRegistry()
	reg.Register("stub", func() Demo { return &stubDemo{} })
	sw := NewSwitcher(reg, &fakeRenderer{}, newFakeSurface(1, 1, 1), Options{})

	assert.ErrorIs(t, sw.Change("missing", ""), ErrUnknownDemo)
	assert.ErrorIs(t, sw.Change("stub", "missing"), ErrUnknownPreset)
	assert.Equal(t, []string{"stub"}, reg.Names())
}
