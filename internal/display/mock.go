//go:build !pi

package display

import (
	"fmt"

	"github.com/svanberg/segclock/internal/sevseg"
)

// Open returns a console simulator of the display.
func Open(c Config) (Display, error) {
	digits := c.Digits
	if digits > sevseg.MaxDigits {
		return nil, fmt.Errorf("display: %d digits requested, at most %d supported", digits, sevseg.MaxDigits)
	}
	if digits < sevseg.MinDigits {
		digits = sevseg.MinDigits
	}
	fmt.Println("Starting the display simulator")
	return &simulator{digits: digits}, nil
}

type simulator struct {
	digits int
}

func (s *simulator) Write(p []byte) (int, error) {
	fmt.Printf("display stream: %q\n", p)
	return len(p), nil
}

func (s *simulator) Clear() error {
	fmt.Println("display cleared")
	return nil
}

func (s *simulator) Home() {}

func (s *simulator) Brightness(level byte) error {
	fmt.Printf("display brightness: %d\n", level&sevseg.IntensityMax)
	return nil
}

func (s *simulator) On() error {
	fmt.Println("display on")
	return nil
}

func (s *simulator) Off() error {
	fmt.Println("display off")
	return nil
}

func (s *simulator) Test(on bool) error {
	fmt.Printf("display test mode: %v\n", on)
	return nil
}

func (s *simulator) DisplayChar(digit int, c byte, dp bool) error {
	fmt.Printf("display digit %d: %q (dp: %v)\n", digit, c, dp)
	return nil
}

func (s *simulator) DisplayText(text string, rightJustify bool) error {
	fmt.Printf("display text: %q (right justified: %v)\n", text, rightJustify)
	return nil
}

func (s *simulator) Digits() int {
	return s.digits
}
