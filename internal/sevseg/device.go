// Package sevseg drives a chain of up to eight seven-segment LED digits
// behind a MAX7219 controller, bit-banging the three-wire serial protocol
// over plain GPIO lines.
//
// Digit 0 is the rightmost digit. The driver mirrors every digit register
// it has sent, so decimal points can be merged into characters that are
// already on the display. It does no locking of its own; concurrent callers
// must serialize access.
package sevseg

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// MAX7219 register opcodes. The digit registers occupy 0x01-0x08, so a
// digit index always addresses register index+1.
const (
	regNoop        byte = 0x00
	regDecodeMode  byte = 0x09
	regIntensity   byte = 0x0a
	regScanLimit   byte = 0x0b
	regShutdown    byte = 0x0c
	regDisplayTest byte = 0x0f
)

const (
	// MinDigits is the smallest digit count the driver will configure.
	// Scanning fewer positions overdrives the segment current.
	MinDigits = 4
	// MaxDigits is the number of digit registers on the controller.
	MaxDigits = 8

	// IntensityMax is the brightest value of the intensity register.
	IntensityMax byte = 0x0f

	// maxTextLen caps DisplayText input before dot compaction.
	maxTextLen = 16
)

// Display is the handle for a single MAX7219 driving a row of seven
// segment digits.
type Display struct {
	data gpio.PinOut
	clk  gpio.PinOut
	sel  gpio.PinOut

	digits     int
	pos        int
	autoscroll bool
	buf        [MaxDigits]byte
}

// New initializes the controller behind the three given lines and returns
// a handle for it. A digit count below MinDigits is raised to MinDigits;
// more than MaxDigits digits is an error. The display comes up blanked, at
// full brightness, and turned on.
func New(data, clk, sel gpio.PinOut, digits int) (*Display, error) {
	if digits > MaxDigits {
		return nil, fmt.Errorf("sevseg: %d digits requested, the controller drives at most %d", digits, MaxDigits)
	}
	if digits < MinDigits {
		digits = MinDigits
	}

	d := &Display{data: data, clk: clk, sel: sel, digits: digits}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Display) init() error {
	log.Debugf("Initializing %d digit display", d.digits)

	if err := d.sel.Out(gpio.High); err != nil {
		return err
	}
	if err := d.writeReg(regScanLimit, byte(d.digits)); err != nil {
		return err
	}
	// Raw segment mode, no BCD decoding on any digit.
	if err := d.writeReg(regDecodeMode, 0x00); err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.Test(false); err != nil {
		return err
	}
	if err := d.Brightness(IntensityMax); err != nil {
		return err
	}
	// Leave shutdown mode last, after blanking, so stale register garbage
	// never flashes on screen.
	return d.On()
}

// writeReg performs a single register write: select low, opcode then data
// shifted out MSB first with one clock pulse per bit, select high to latch.
func (d *Display) writeReg(op, data byte) error {
	if err := d.sel.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.shiftOut(op); err != nil {
		return err
	}
	if err := d.shiftOut(data); err != nil {
		return err
	}
	return d.sel.Out(gpio.High)
}

func (d *Display) shiftOut(b byte) error {
	for i := 7; i >= 0; i-- {
		if err := d.data.Out(gpio.Level(b&(1<<uint(i)) != 0)); err != nil {
			return err
		}
		// The controller samples the data line on the rising edge.
		if err := d.clk.Out(gpio.High); err != nil {
			return err
		}
		if err := d.clk.Out(gpio.Low); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks all eight digit registers and moves the cursor home. It does
// not change brightness or the on/off state.
func (d *Display) Clear() error {
	for i := 0; i < MaxDigits; i++ {
		d.buf[i] = 0
		if err := d.writeReg(byte(i+1), 0); err != nil {
			return err
		}
	}
	d.pos = 0
	return nil
}

// On leaves shutdown mode and resumes normal operation. Register contents
// survive Off, so the previous image reappears.
func (d *Display) On() error {
	return d.writeReg(regShutdown, 1)
}

// Off puts the controller in shutdown mode, blanking the display without
// losing register contents.
func (d *Display) Off() error {
	return d.writeReg(regShutdown, 0)
}

// Brightness sets the intensity register. Only the low four bits are
// significant; anything above 15 is truncated by the mask.
func (d *Display) Brightness(level byte) error {
	return d.writeReg(regIntensity, level&IntensityMax)
}

// Test toggles the display test register, which forces every segment on
// regardless of digit contents. Handy when checking the wiring.
func (d *Display) Test(on bool) error {
	var v byte
	if on {
		v = 1
	}
	return d.writeReg(regDisplayTest, v)
}

// Home moves the cursor back to digit 0 without touching the display.
func (d *Display) Home() {
	d.pos = 0
}

// SetCursor places the cursor at digit x. Positions outside 0..Digits()
// are clamped to the addressable range.
func (d *Display) SetCursor(x int) {
	if x < 0 {
		x = 0
	}
	if x > d.digits {
		x = d.digits
	}
	d.pos = x
}

// AutoScroll controls what happens when the cursor writes past the last
// digit: with autoscroll on the display contents shift one position toward
// digit 0 to make room, with it off the character is dropped.
func (d *Display) AutoScroll(on bool) {
	d.autoscroll = on
}

// Digits returns the digit count configured at New.
func (d *Display) Digits() int {
	return d.digits
}

func (d *Display) String() string {
	return fmt.Sprintf("sevseg.Display{%d digits}", d.digits)
}

// WriteChar renders a single character at the cursor and advances it.
//
// A '.' does not occupy a digit of its own: its decimal point bit is merged
// into the digit before the cursor and the cursor stays put, so a stream
// like "1.23" comes out as three digits with the dot lit on the first.
func (d *Display) WriteChar(c byte) error {
	if c == '.' {
		p := d.pos
		if p > 0 {
			p--
		}
		d.buf[p] |= DecimalPoint
		return d.writeReg(byte(p+1), d.buf[p])
	}
	if d.autoscroll && d.pos == d.digits {
		for i := 0; i < d.digits-1; i++ {
			d.buf[i] = d.buf[i+1]
			if err := d.writeReg(byte(i+1), d.buf[i]); err != nil {
				return err
			}
		}
		return d.DisplayChar(d.digits-1, c, false)
	}
	if d.pos >= d.digits {
		// Off the end with autoscroll disabled. Dropped, like over-long
		// text in DisplayText.
		return nil
	}
	if err := d.DisplayChar(d.pos, c, false); err != nil {
		return err
	}
	d.pos++
	return nil
}

// Write implements io.Writer so text can be streamed onto the display,
// e.g. via fmt.Fprintf. Every byte counts as consumed, including dots and
// characters dropped off the end of the display.
func (d *Display) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := d.WriteChar(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// DisplayChar renders character c on the given digit, bypassing the
// cursor. Digit 0 is the rightmost position.
func (d *Display) DisplayChar(digit int, c byte, dp bool) error {
	if digit < 0 || digit >= MaxDigits {
		return fmt.Errorf("sevseg: digit %d outside 0..%d", digit, MaxDigits-1)
	}
	code := Lookup(c, dp)
	d.buf[digit] = code
	return d.writeReg(byte(digit+1), code)
}

// DisplayText renders text left or right justified. Input is capped at 16
// characters. Dots merge into the character on their left instead of using
// a digit of their own; a dot with nothing before it is dropped, as is
// anything beyond what fits on the display.
func (d *Display) DisplayText(text string, rightJustify bool) error {
	if len(text) > maxTextLen {
		text = text[:maxTextLen]
	}

	chars := make([]byte, 0, len(text))
	dots := make([]bool, 0, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			if len(dots) > 0 {
				dots[len(dots)-1] = true
			}
			continue
		}
		chars = append(chars, text[i])
		dots = append(dots, false)
	}
	if len(chars) > d.digits {
		chars = chars[:d.digits]
	}

	for i, c := range chars {
		digit := i
		if rightJustify {
			digit = d.digits - len(chars) + i
		}
		if err := d.DisplayChar(digit, c, dots[i]); err != nil {
			return err
		}
	}
	return nil
}
