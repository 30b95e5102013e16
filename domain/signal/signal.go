// Package signal defines the four-valued channel carried by a participant's
// room role, and the rule choosing which value to emit next.
package signal

import "fmt"

// Code is a room role id reserved for signalling.
type Code int

const (
	End    Code = 0  // "none": end of packet
	On     Code = 10 // "host": bit 1
	Off    Code = 20 // "moderator": bit 0
	Repeat Code = 25 // "contributor": previous value again
)

// Privileged room roles. Their holders are never used as signal targets.
const (
	RoleOwner   = 255
	RoleCoOwner = 30
)

// Bit is a logical bit, independent of the code that realises it.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

func (c Code) Valid() bool {
	switch c {
	case End, On, Off, Repeat:
		return true
	}
	return false
}

func (c Code) String() string {
	switch c {
	case End:
		return "END"
	case On:
		return "ON"
	case Off:
		return "OFF"
	case Repeat:
		return "REPEAT"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// CodeFor returns the code carrying bit b.
func CodeFor(b Bit) Code {
	if b == One {
		return On
	}
	return Off
}

// NextCode returns the code to request when desired should be observed
// while current is held. Re-requesting the held code is not an edge, so
// Repeat stands in for it.
func NextCode(current, desired Code) Code {
	if current == desired {
		return Repeat
	}
	return desired
}

// FromRole converts a participant's current room role into the initial
// signal state. Roles outside the signalling set count as End.
func FromRole(role int) Code {
	c := Code(role)
	if c.Valid() {
		return c
	}
	return End
}

// IsPrivileged reports whether role is owner or co-owner.
func IsPrivileged(role int) bool {
	return role == RoleOwner || role == RoleCoOwner
}
