package demos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scenelab/internal/demo"
)

func TestRegistryNamesMatchDemos(t *testing.T) {
	r := Registry()
	names := r.Names()
	assert.Equal(t, []string{"basics", "geometry", "transform", "material", "light", "camera", "shadow"}, names)
	for _, name := range names {
		d, err := r.New(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
		assert.NotEmpty(t, d.Presets())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("teapot")
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
}
