package services

import (
	"circuits-lab/domain"
	"circuits-lab/domain/signal"
	"circuits-lab/errors"
	"context"
	"fmt"

	"github.com/samber/lo"
)

// RoomConnection is a room the host account holds owner or co-owner
// rights in. The role list is the one read at connection time.
type RoomConnection struct {
	client           *Client
	room             domain.Room
	supportsCircuits bool
}

func (r *RoomConnection) Room() domain.Room {
	return r.room
}

// SupportsCircuits is true when the room carries the circuits tag.
func (r *RoomConnection) SupportsCircuits() bool {
	return r.supportsCircuits
}

func (r *RoomConnection) Members() []domain.Membership {
	return r.room.Roles
}

func (r *RoomConnection) RoleOf(account domain.AccountID) int {
	return r.room.RoleOf(account)
}

// ConnectToUser opens a channel to a participant. Owners and co-owners
// cannot be signalled since their role must not be touched. When the token
// allows it, the participant must be in the room right now.
func (r *RoomConnection) ConnectToUser(ctx context.Context, nameOrID string) (*UserConnection, error) {
	if err := r.client.checkOpen(); err != nil {
		return nil, err
	}

	account, err := r.client.config.Accounts.ResolveAccount(ctx, nameOrID)
	if err != nil {
		return nil, err
	}

	role := r.room.RoleOf(account.ID)
	if signal.IsPrivileged(role) {
		return nil, fmt.Errorf("%w: %s", errors.ErrPrivilegedUser, account.Username)
	}

	conn := newUserConnection(r, account, signal.FromRole(role))
	if !r.client.CanQueryPresence() {
		return conn, nil
	}

	in, err := conn.IsInRoom(ctx)
	if err != nil {
		return nil, err
	}
	if !in {
		return nil, fmt.Errorf("%w: %s", errors.ErrUserNotInRoom, account.Username)
	}
	return conn, nil
}

// FindPlayers guesses who is in the room from recent photos: whoever took
// one in the last ten minutes, and whoever is tagged on it.
func (r *RoomConnection) FindPlayers(ctx context.Context) ([]domain.AccountID, error) {
	if err := r.client.checkOpen(); err != nil {
		return nil, err
	}

	photos, err := r.client.config.Photos.RoomPhotos(ctx, r.room.ID, PhotoTake)
	if err != nil {
		return nil, err
	}

	now := r.client.config.Now()
	var players []domain.AccountID
	for _, photo := range photos {
		if now.Sub(photo.CreatedAt) >= PhotoWindow {
			break
		}
		players = append(players, photo.PlayerID)
		players = append(players, photo.TaggedPlayerIDs...)
	}
	return lo.Uniq(players), nil
}
