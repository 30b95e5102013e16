package services

import (
	"circuits-lab/auth"
	"circuits-lab/domain"
	"circuits-lab/errors"
	"circuits-lab/mocks"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClient_Initialize(t *testing.T) {
	t.Run("should read the host account and presence scope", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl, auth.PresenceScope)

		req.NoError(f.client.Initialize(context.Background()))

		req.Equal(hostAccount, f.client.HostAccountID())
		req.True(f.client.CanQueryPresence())
	})

	t.Run("should only read the token once", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		tokens := mocks.NewMockITokenSource(ctrl)
		tokens.EXPECT().Token(gomock.Any()).Return(testToken(t, "1"), nil).Times(1)
		client := NewClient(ClientConfig{Tokens: tokens})

		req.NoError(client.Initialize(context.Background()))
		req.NoError(client.Initialize(context.Background()))
		req.False(client.CanQueryPresence())
	})

	t.Run("should wait for a token handed over after start", func(t *testing.T) {
		req := require.New(t)
		tokens := auth.NewAwaitableToken(time.Second)
		client := NewClient(ClientConfig{Tokens: tokens})
		token := testToken(t, "1", auth.PresenceScope)
		go func() {
			time.Sleep(20 * time.Millisecond)
			tokens.Set(token)
		}()

		req.NoError(client.Initialize(context.Background()))

		req.Equal(hostAccount, client.HostAccountID())
		req.True(client.CanQueryPresence())
	})

	t.Run("should give up when no token arrives in time", func(t *testing.T) {
		req := require.New(t)
		client := NewClient(ClientConfig{Tokens: auth.NewAwaitableToken(20 * time.Millisecond)})

		err := client.Initialize(context.Background())

		req.ErrorIs(err, errors.ErrTokenUnavailable)
		req.ErrorIs(client.checkOpen(), errors.ErrNotInitialized)
	})

	t.Run("should reject an unreadable token", func(t *testing.T) {
		req := require.New(t)
		client := NewClient(ClientConfig{Tokens: auth.StaticToken("garbage")})

		err := client.Initialize(context.Background())

		req.ErrorIs(err, errors.ErrInvalidToken)
		req.ErrorIs(client.checkOpen(), errors.ErrNotInitialized)
	})
}

func TestClient_ConnectToRoom(t *testing.T) {
	t.Run("should refuse before initialization", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		_, err := f.client.ConnectToRoom(context.Background(), "CircuitLab")

		req.ErrorIs(err, errors.ErrNotInitialized)
	})

	t.Run("should connect when the host is owner", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)

		room := f.connectedRoom(t)

		req.Equal(testRoomID, room.Room().ID)
		req.True(room.SupportsCircuits())
		req.Len(room.Members(), 3)
		req.Equal(30, room.RoleOf(coOwner))
	})

	t.Run("should connect to an untagged room", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)
		req.NoError(f.client.Initialize(context.Background()))
		f.rooms.EXPECT().ResolveRoom(gomock.Any(), "42").Return(testRoom("games"), nil)

		room, err := f.client.ConnectToRoom(context.Background(), "42")

		req.NoError(err)
		req.False(room.SupportsCircuits())
	})

	t.Run("should refuse when the host is not privileged", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)
		req.NoError(f.client.Initialize(context.Background()))
		room := testRoom(domain.CircuitsTag)
		room.Roles = room.Roles[1:]
		f.rooms.EXPECT().ResolveRoom(gomock.Any(), "CircuitLab").Return(room, nil)

		_, err := f.client.ConnectToRoom(context.Background(), "CircuitLab")

		req.ErrorIs(err, errors.ErrInsufficientPrivilege)
		req.ErrorIs(err, errors.ErrPermissionDenied)
	})

	t.Run("should propagate a missing room", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)
		req.NoError(f.client.Initialize(context.Background()))
		f.rooms.EXPECT().ResolveRoom(gomock.Any(), "Nowhere").Return(domain.Room{}, errors.ErrRoomNotFound)

		_, err := f.client.ConnectToRoom(context.Background(), "Nowhere")

		req.ErrorIs(err, errors.ErrNotFound)
	})
}

func TestClient_Close(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	conn := f.connectedUser(t)
	room := conn.room

	req.NoError(f.client.Close())
	req.NoError(f.client.Close())

	req.ErrorIs(f.client.Initialize(context.Background()), errors.ErrClientClosed)
	_, err := f.client.ConnectToRoom(context.Background(), "CircuitLab")
	req.ErrorIs(err, errors.ErrClientClosed)
	_, err = room.ConnectToUser(context.Background(), "alice")
	req.ErrorIs(err, errors.ErrClientClosed)
	_, err = room.FindPlayers(context.Background())
	req.ErrorIs(err, errors.ErrClientClosed)
	_, err = conn.SendText(context.Background(), "hi")
	req.ErrorIs(err, errors.ErrClientClosed)
	_, err = conn.SendBit(context.Background(), 1)
	req.ErrorIs(err, errors.ErrClientClosed)
	_, err = conn.Ping(context.Background())
	req.ErrorIs(err, errors.ErrClientClosed)
}
