// Package display opens the seven segment display the application talks
// to. On the pi build it is backed by real GPIO lines; everywhere else a
// console simulator stands in so the application can be exercised away
// from the hardware.
package display

import "io"

// Display is the slice of the driver surface the application packages use.
type Display interface {
	io.Writer
	Clear() error
	Home()
	Brightness(level byte) error
	On() error
	Off() error
	Test(on bool) error
	DisplayChar(digit int, c byte, dp bool) error
	DisplayText(text string, rightJustify bool) error
	Digits() int
}

// Config selects the GPIO lines and the geometry of the attached display.
type Config struct {
	DataPin   string
	ClockPin  string
	SelectPin string
	Digits    int
}
