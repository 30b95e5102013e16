// Package packet renders integers into the bit order used on the wire:
// least significant bit first, closed by an END signal.
package packet

import (
	"circuits-lab/domain/signal"
	"circuits-lab/errors"
	"fmt"
)

// Bits returns the binary digits of value, least significant first.
// Zero is a single 0 bit.
func Bits(value uint64) []signal.Bit {
	if value == 0 {
		return []signal.Bit{signal.Zero}
	}
	bits := make([]signal.Bit, 0, 64)
	for v := value; v > 0; v >>= 1 {
		bits = append(bits, signal.Bit(v&1))
	}
	return bits
}

// BinaryForm reads the decimal digits of value as bits (1010100 is the
// bit string "1010100") and returns them least significant first.
func BinaryForm(value uint64) ([]signal.Bit, error) {
	if value == 0 {
		return []signal.Bit{signal.Zero}, nil
	}
	bits := make([]signal.Bit, 0, 20)
	for v := value; v > 0; v /= 10 {
		d := v % 10
		if d > 1 {
			return nil, fmt.Errorf("%w: %d", errors.ErrNotBinary, value)
		}
		bits = append(bits, signal.Bit(d))
	}
	return bits, nil
}

// Value is the inverse of Bits.
func Value(bits []signal.Bit) uint64 {
	var v uint64
	for i := len(bits) - 1; i >= 0; i-- {
		v = v<<1 | uint64(bits[i])
	}
	return v
}

// String renders bits most significant first, the way a person writes them.
func String(bits []signal.Bit) string {
	out := make([]byte, len(bits))
	for i, b := range bits {
		out[len(bits)-1-i] = '0' + byte(b)
	}
	return string(out)
}
