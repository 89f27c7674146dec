package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pinsConfig = `
pins:
  data: GPIO10
  clock: GPIO11
  select: GPIO8
`

func TestParseConfig(t *testing.T) {
	content := pinsConfig + `
digits: 8
brightness: 7
timeFormat: "15.04"
listen: ":9000"
`
	c, err := parseConfig([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, "GPIO10", c.Pins.Data)
	assert.Equal(t, "GPIO11", c.Pins.Clock)
	assert.Equal(t, "GPIO8", c.Pins.Select)
	assert.Equal(t, 8, c.Digits)
	assert.Equal(t, byte(7), c.brightness())
	assert.Equal(t, "15.04", c.TimeFormat)
	assert.Equal(t, ":9000", c.Listen)
}

func TestParseConfigDefaults(t *testing.T) {
	c, err := parseConfig([]byte(pinsConfig))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Digits)
	assert.Equal(t, byte(15), c.brightness())
	assert.Equal(t, "15.04", c.TimeFormat)
	assert.Equal(t, ":8090", c.Listen)
}

func TestParseConfigKeepsExplicitZeroBrightness(t *testing.T) {
	c, err := parseConfig([]byte(pinsConfig + "brightness: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, byte(0), c.brightness())
}

func TestParseConfigErrors(t *testing.T) {
	tt := []struct {
		name    string
		content string
	}{
		{
			"missing data pin",
			`
pins:
  clock: GPIO11
  select: GPIO8
`,
		},
		{
			"missing clock pin",
			`
pins:
  data: GPIO10
  select: GPIO8
`,
		},
		{
			"missing select pin",
			`
pins:
  data: GPIO10
  clock: GPIO11
`,
		},
		{"too few digits", pinsConfig + "digits: 2\n"},
		{"too many digits", pinsConfig + "digits: 9\n"},
		{"brightness out of range", pinsConfig + "brightness: 16\n"},
		{"negative brightness", pinsConfig + "brightness: -1\n"},
		{"invalid yaml", "pins: ["},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c, err := parseConfig([]byte(tc.content))
			assert.Error(t, err, fmt.Sprintf("parsed to %+v", c))
		})
	}
}
