package sevseg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownGlyphs(t *testing.T) {
	tt := []struct {
		name string
		c    byte
		dp   bool
		want byte
	}{
		// '0' is authored 0b11111100 (a-f on); rotated right one bit.
		{"zero", '0', false, 0x7e},
		{"one", '1', false, 0x30},
		{"eight", '8', false, 0x7f},
		{"eight with dot", '8', true, 0xff},
		{"minus", '-', false, 0x01},
		{"space", ' ', false, 0x00},
		// The dot character itself authors as the lone dp bit.
		{"dot", '.', false, 0x80},
		{"capital A", 'A', false, 0x77},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Lookup(tc.c, tc.dp))
		})
	}
}

func TestLookupIsPure(t *testing.T) {
	for c := byte('!'); c <= '}'; c++ {
		first := Lookup(c, false)
		assert.Equal(t, first, Lookup(c, false), "character %q", c)
	}
}

func TestLookupDecimalPointOrsHighBit(t *testing.T) {
	for c := byte(' '); c <= '}'; c++ {
		assert.Equal(t, Lookup(c, false)|DecimalPoint, Lookup(c, true), "character %q", c)
	}
}

func TestLookupOutOfRangeIsBlank(t *testing.T) {
	for _, c := range []byte{0x00, '\n', 0x1f, '~', 0x7f, 0xb0, 0xff} {
		assert.Equal(t, byte(0), Lookup(c, false), "character %#x", c)
	}
}

func TestLookupUnsupportedGlyphsAreBlank(t *testing.T) {
	for _, c := range []byte("%&*+,/:;<>^VWXvwx") {
		assert.Equal(t, byte(0), Lookup(c, false), "character %q", c)
	}
}
