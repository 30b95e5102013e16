//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"circuits-lab/domain"
	"context"
)

// IRoleSetter drives the room role-mutation endpoint, the only channel
// the transmitter signals through. It returns the HTTP status code; a
// non-2xx status is a value, not an error.
type IRoleSetter interface {
	SetRole(ctx context.Context, room domain.RoomID, account domain.AccountID, role int) (int, error)
}

// IRoomDirectory resolves a room by name or numeric id.
// A missing room is reported as errors.ErrRoomNotFound.
type IRoomDirectory interface {
	ResolveRoom(ctx context.Context, nameOrID string) (domain.Room, error)
}

// IAccountDirectory resolves an account by username or numeric id.
// A missing account is reported as errors.ErrUserNotFound.
type IAccountDirectory interface {
	ResolveAccount(ctx context.Context, nameOrID string) (domain.Account, error)
}

// IPresence reads the live location of an account.
// A nil instance means the account is offline or not in any room.
type IPresence interface {
	CurrentInstance(ctx context.Context, account domain.AccountID) (*domain.Instance, error)
}

// IPhotoFeed lists the most recent photos taken in a room, newest first.
type IPhotoFeed interface {
	RoomPhotos(ctx context.Context, room domain.RoomID, take int) ([]domain.Photo, error)
}

// ITokenSource hands out the bearer token of the host account.
type ITokenSource interface {
	Token(ctx context.Context) (string, error)
}
