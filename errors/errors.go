package errors

import "fmt"

// Error kinds. Every error returned by the transmitter wraps exactly one of
// them, so callers only need errors.Is against this set.
var (
	ErrNotFound            = fmt.Errorf("not found")
	ErrPermissionDenied    = fmt.Errorf("permission denied")
	ErrPresenceUnavailable = fmt.Errorf("presence unavailable")
	ErrChannelTimeout      = fmt.Errorf("channel timeout")
	ErrTransportFailure    = fmt.Errorf("transport failure")
)

var (
	ErrRoomNotFound          = fmt.Errorf("%w: room not found, if the room is private make sure the host account is a co-owner", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrUserNotInRoom         = fmt.Errorf("%w: user is not in the connected room", ErrNotFound)
	ErrInsufficientPrivilege = fmt.Errorf("%w: host account is neither owner nor co-owner of the room", ErrPermissionDenied)
	ErrPrivilegedUser        = fmt.Errorf("%w: cannot connect to the owner or a co-owner of the room", ErrPermissionDenied)
	ErrLackingScope          = fmt.Errorf("%w: access token lacks the rn.match.read scope", ErrPresenceUnavailable)
	ErrTimedOut              = fmt.Errorf("%w: packet timed out, send the message again", ErrChannelTimeout)
)

var (
	ErrIndexOutOfRange  = fmt.Errorf("alphabet index out of range")
	ErrNotBinary        = fmt.Errorf("value contains digits other than 0 and 1")
	ErrClientClosed     = fmt.Errorf("client is closed")
	ErrNotInitialized   = fmt.Errorf("client is not initialized")
	ErrTokenUnavailable = fmt.Errorf("access token unavailable")
	ErrInvalidToken     = fmt.Errorf("invalid access token")
	ErrInvalidResponse  = fmt.Errorf("invalid response")
)
