package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "0.1.0", String())
}

func TestPacked(t *testing.T) {
	assert.Equal(t, uint32(0x00010000), Packed())

	major, minor, patch := Unpack(Packed())
	assert.Equal(t, uint32(Major), major)
	assert.Equal(t, uint32(Minor), minor)
	assert.Equal(t, uint32(Patch), patch)
}

func TestUnpack(t *testing.T) {
	major, minor, patch := Unpack(2<<24 | 7<<16 | 300)
	assert.Equal(t, uint32(2), major)
	assert.Equal(t, uint32(7), minor)
	assert.Equal(t, uint32(300), patch)
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name   string
		packed uint32
		want   bool
	}{
		{name: "same", packed: Packed(), want: true},
		{name: "other patch", packed: Major<<24 | Minor<<16 | 9, want: true},
		{name: "other minor", packed: Major<<24 | (Minor+1)<<16, want: false},
		{name: "other major", packed: (Major + 1) << 24, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compatible(tt.packed))
		})
	}
}
