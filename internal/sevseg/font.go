package sevseg

// Segment layout of a single digit:
//
//	     a
//	    ---
//	 f |   | b
//	   | g |
//	    ---
//	 e |   | c
//	   |   |
//	    ---  . dp
//	     d
//
// Table entries are authored MSB first as a,b,c,d,e,f,g,dp so the patterns
// are easy to read off the diagram. The digit registers want dp,a,b,c,d,e,f,g
// instead, which is why Lookup rotates every pattern right by one bit.

// DecimalPoint is the register bit that lights the decimal point LED of a
// digit.
const DecimalPoint byte = 0x80

const (
	firstGlyph = ' '
	lastGlyph  = '}'
)

// font maps c - ' ' for c in ' '..'}' to the authored segment pattern of c.
// Characters without a sensible seven segment rendering are zero and show
// as blank.
var font = [94]byte{
	0b00000000, 0b01100001, 0b01000100, 0b01101110, 0, // space ! " # $
	0, 0, 0b01000000, 0b10011100, 0b11110000, // % & ' ( )
	0, 0, 0, 0b00000010, 0b00000001, // * + , - .
	0,                              // /
	0xfc, 0x60, 0xda, 0xf2, 0x66, // 0-4
	0xb6, 0xbe, 0xe0, 0xfe, 0xf6, // 5-9
	0, 0, 0, 0b00010010, 0, // : ; < = >
	0b11001011, 0b11111010, // ? @
	0b11101110, 0b11111110, 0b10011100, 0b01111010, 0b10011110, // A-E
	0b10001110, 0b10111100, 0b01101110, 0b01100000, 0b01110000, // F-J
	0b10101110, 0b00011100, 0b10101000, 0b11101100, 0b11111100, // K-O
	0b11001110, 0b11100110, 0b00001010, 0b10110110, 0b00011110, // P-T
	0b01111100, 0, 0, 0, 0b01110110, // U-Y
	0b11011010, // Z
	0b10011100, 0b00000100, 0b11110000, 0, 0b00010000, // [ \ ] ^ _
	0b01000000, // `
	0b11111010, 0b00111110, 0b00011010, 0b01111010, 0b11011110, // a-e
	0b10001110, 0b11110110, 0b00101110, 0b00001000, 0b00110000, // f-j
	0b10101110, 0b00001100, 0b10101000, 0b00101010, 0b00111010, // k-o
	0b11001110, 0b11100110, 0b00001010, 0b10110110, 0b00011110, // p-t
	0b00111000, 0, 0, 0, 0b01110110, // u-y
	0b11011010, // z
	0b10011100, 0b00001100, 0b11110000, // { | }
}

// Lookup returns the register order segment pattern for c. Characters
// outside ' '..'}' and unsupported glyphs within it render blank. When dp
// is set, the decimal point bit is OR'd into the result.
func Lookup(c byte, dp bool) byte {
	var pat byte // blank unless c maps to a glyph
	if c >= firstGlyph && c <= lastGlyph {
		pat = font[c-firstGlyph]
		pat = pat>>1 | pat<<7
	}
	if dp {
		pat |= DecimalPoint
	}
	return pat
}
