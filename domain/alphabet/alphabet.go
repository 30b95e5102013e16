// Package alphabet maps the characters understood by the receiving
// "Decimal to Character" board to small integers and back.
//
// The order of the table is the wire contract: index i means the same
// character to every receiver ever built against Version. Characters may
// only be appended, and any edit bumps Version.
package alphabet

import (
	"circuits-lab/errors"
	"fmt"
)

// Version identifies the table below. "w" and "W" were appended in version 1,
// which is why they sit at the end.
const Version = 1

var table = []rune{
	' ',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'x', 'y', 'z',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'X', 'Y', 'Z',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^', '_', '`',
	'{', '|', '}', '~',
	'w', 'W',
}

var index = buildIndex()

func buildIndex() map[rune]int {
	m := make(map[rune]int, len(table))
	for i, r := range table {
		if _, dup := m[r]; dup {
			panic(fmt.Sprintf("alphabet: duplicate character %q at %d", r, i))
		}
		m[r] = i
	}
	return m
}

// Dropped describes a character of a text payload that has no index.
type Dropped struct {
	Position int // rune offset in the original text
	Char     rune
}

// Len returns the number of supported characters.
func Len() int {
	return len(table)
}

// Characters returns a copy of the table in wire order.
func Characters() []rune {
	out := make([]rune, len(table))
	copy(out, table)
	return out
}

// Supported reports whether r has an index.
func Supported(r rune) bool {
	_, ok := index[r]
	return ok
}

// Encode returns the index of r, or false when r is not supported.
func Encode(r rune) (int, bool) {
	i, ok := index[r]
	return i, ok
}

// Decode returns the character at position i.
func Decode(i int) (rune, error) {
	if i < 0 || i >= len(table) {
		return 0, fmt.Errorf("%w: %d (alphabet holds %d characters)", errors.ErrIndexOutOfRange, i, len(table))
	}
	return table[i], nil
}

// EncodeText encodes text in order. Unsupported characters are skipped and
// reported back so the caller can tell the recipient's copy is incomplete.
func EncodeText(text string) ([]int, []Dropped) {
	var (
		values  = make([]int, 0, len(text))
		dropped []Dropped
		pos     int
	)
	for _, r := range text {
		if i, ok := index[r]; ok {
			values = append(values, i)
		} else {
			dropped = append(dropped, Dropped{Position: pos, Char: r})
		}
		pos++
	}
	return values, dropped
}

// DecodeText is the inverse of EncodeText for the supported characters.
func DecodeText(values []int) (string, error) {
	out := make([]rune, 0, len(values))
	for _, v := range values {
		r, err := Decode(v)
		if err != nil {
			return "", err
		}
		out = append(out, r)
	}
	return string(out), nil
}
