package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	c := Hex(0x44aaff)
	assert.InDelta(t, 0x44/255.0, c.R, 1e-6)
	assert.InDelta(t, 0xaa/255.0, c.G, 1e-6)
	assert.InDelta(t, 1.0, c.B, 1e-6)
	assert.Equal(t, uint32(0x44aaff), c.Hex())
	assert.Equal(t, "#44aaff", c.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"#2c3e50", 0x2c3e50},
		{"#fff", 0xffffff},
		{"0x9b59b6", 0x9b59b6},
		{" #E74C3C ", 0xe74c3c},
	}
	for _, tt := range tests {
		c, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c.Hex(), tt.in)
	}

	for _, bad := range []string{"", "ffffff", "#ff", "#gggggg"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestLinear(t *testing.T) {
	assert.Equal(t, Black, Black.Linear())
	assert.InDelta(t, 1.0, White.Linear().R, 1e-5)

	mid := Color{0.5, 0.5, 0.5}.Linear()
	assert.InDelta(t, 0.2140, mid.R, 1e-3)
}
