package services

import (
	"bytes"
	"circuits-lab/auth"
	"circuits-lab/domain"
	"circuits-lab/domain/signal"
	"circuits-lab/errors"
	"circuits-lab/transmission"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserConnection_SendText(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	conn := f.connectedUser(t)
	rec := f.recordRoles()

	report, err := conn.SendText(context.Background(), "hi")

	req.NoError(err)
	req.True(report.Delivered())
	req.NotEqual(uuid.Nil, report.MessageID)
	req.Equal(2, report.Packets)
	// From ON: count 2 is bits 0,1 then END; h is 0,0,0,1 then END; i is 1,0,0,1 then END
	req.Equal([]int{20, 10, 0, 20, 25, 20, 10, 0, 10, 20, 25, 10, 0}, rec.of(memberAccount))
	req.Equal(signal.End, conn.Code())
	req.Equal(transmission.Idle, conn.State())
}

func TestUserConnection_SendInt(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	conn := f.connectedUser(t)
	rec := f.recordRoles()

	report, err := conn.SendInt(context.Background(), 5)

	req.NoError(err)
	req.Equal(1, report.Packets)
	// From ON: count 1 then 5 as 1,0,1
	req.Equal([]int{25, 0, 10, 20, 10, 0}, rec.of(memberAccount))
}

func TestUserConnection_SendBinary(t *testing.T) {
	t.Run("should send the digits as one packet", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)
		conn := f.connectedUser(t)
		rec := f.recordRoles()

		res, err := conn.SendBinary(context.Background(), 110)

		req.NoError(err)
		req.Equal(4, res.Emissions)
		req.Equal([]int{20, 10, 25, 0}, rec.of(memberAccount))
	})

	t.Run("should refuse non binary digits", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)
		conn := f.connectedUser(t)

		_, err := conn.SendBinary(context.Background(), 102)

		req.ErrorIs(err, errors.ErrNotBinary)
	})
}

func TestUserConnection_SendBitAndEnd(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	conn := f.connectedUser(t)
	gomock.InOrder(
		f.roles.EXPECT().SetRole(gomock.Any(), testRoomID, memberAccount, int(signal.Repeat)).Return(http.StatusOK, nil),
		f.roles.EXPECT().SetRole(gomock.Any(), testRoomID, memberAccount, int(signal.End)).Return(http.StatusTooManyRequests, nil),
	)

	ok, err := conn.SendBit(context.Background(), signal.One)
	req.NoError(err)
	req.True(ok)

	ok, err = conn.SendEnd(context.Background())
	req.NoError(err)
	req.False(ok)
}

func TestUserConnection_Instance(t *testing.T) {
	t.Run("should need the presence scope", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl)
		conn := f.connectedUser(t)

		_, err := conn.Instance(context.Background())
		req.ErrorIs(err, errors.ErrLackingScope)
		req.ErrorIs(err, errors.ErrPresenceUnavailable)

		_, err = conn.Ping(context.Background())
		req.ErrorIs(err, errors.ErrPresenceUnavailable)
	})

	t.Run("should tell whether the user is in the room", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		f := newFixture(t, ctrl, auth.PresenceScope)
		conn := f.connectedUser(t)
		gomock.InOrder(
			f.presence.EXPECT().CurrentInstance(gomock.Any(), memberAccount).Return(&domain.Instance{RoomID: testRoomID}, nil),
			f.presence.EXPECT().CurrentInstance(gomock.Any(), memberAccount).Return(&domain.Instance{RoomID: 5}, nil),
		)

		in, err := conn.IsInRoom(context.Background())
		req.NoError(err)
		req.True(in)

		in, err = conn.IsInRoom(context.Background())
		req.NoError(err)
		req.False(in)
	})
}

func TestUserConnection_Ping(t *testing.T) {
	tests := []struct {
		description string
		before      *domain.Instance
		after       *domain.Instance
		pong        bool
		sends       bool
	}{
		{"should see a pong when the policy changes", &domain.Instance{RoomID: testRoomID, MatchmakingPolicy: 1}, &domain.Instance{RoomID: testRoomID, MatchmakingPolicy: 2}, true, true},
		{"should see no pong when the policy stays", &domain.Instance{RoomID: testRoomID, MatchmakingPolicy: 1}, &domain.Instance{RoomID: testRoomID, MatchmakingPolicy: 1}, false, true},
		{"should see no pong when the user left", &domain.Instance{RoomID: testRoomID, MatchmakingPolicy: 1}, nil, false, true},
		{"should not ping a user who is elsewhere", &domain.Instance{RoomID: 5}, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			f := newFixture(t, ctrl, auth.PresenceScope)
			conn := f.connectedUser(t)
			rec := f.recordRoles()

			calls := f.presence.EXPECT().CurrentInstance(gomock.Any(), memberAccount).Return(tt.before, nil)
			if tt.sends {
				f.presence.EXPECT().CurrentInstance(gomock.Any(), memberAccount).Return(tt.after, nil).After(calls)
			}

			pong, err := conn.Ping(context.Background())

			req.NoError(err)
			req.Equal(tt.pong, pong)
			if tt.sends {
				// packet 0 from ON: bit 0 then END
				req.Equal([]int{20, 0}, rec.of(memberAccount))
			} else {
				req.Empty(rec.of(memberAccount))
			}
		})
	}
}

func TestBroadcast(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	room := f.connectedRoom(t)
	rec := f.recordRoles()

	var conns []*UserConnection
	for _, id := range []domain.AccountID{memberAccount, otherAccount, 9} {
		name := fmt.Sprintf("user-%d", id)
		f.accounts.EXPECT().ResolveAccount(gomock.Any(), name).Return(domain.Account{ID: id, Username: name}, nil)
		conn, err := room.ConnectToUser(context.Background(), name)
		req.NoError(err)
		conns = append(conns, conn)
	}

	// The same account reached through a second room is another channel
	const annexID domain.RoomID = 43
	f.rooms.EXPECT().ResolveRoom(gomock.Any(), "Annex").Return(domain.Room{
		ID:    annexID,
		Name:  "Annex",
		Roles: []domain.Membership{{AccountID: hostAccount, Role: 30}},
	}, nil)
	annex, err := f.client.ConnectToRoom(context.Background(), "Annex")
	req.NoError(err)
	f.accounts.EXPECT().ResolveAccount(gomock.Any(), "alice").
		Return(domain.Account{ID: memberAccount, Username: "alice"}, nil)
	annexConn, err := annex.ConnectToUser(context.Background(), "alice")
	req.NoError(err)
	conns = append(conns, annexConn, conns[0])

	results := Broadcast(context.Background(), conns, "k")

	req.Len(results, 4)
	for _, conn := range conns {
		key := conn.Key()
		req.NoError(results[key].Err)
		req.Equal(1, results[key].Report.Packets)
		req.NotEmpty(rec.in(key.Room, key.Account))
	}
	// Different starting roles, same decoded message
	req.NotEqual(rec.of(memberAccount), rec.of(otherAccount))
	req.Equal(rec.of(otherAccount), rec.of(9))
	// The member holds no role in the annex, so it starts from END there
	req.Equal(rec.of(otherAccount), rec.in(annexID, memberAccount))
	req.NotEqual(rec.of(memberAccount), rec.in(annexID, memberAccount))
}

func TestUserConnection_Logs(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl)
	var buf bytes.Buffer
	f.client.config.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	conn := f.connectedUser(t)
	f.recordRoles()

	_, err := conn.SendText(context.Background(), "a")
	req.NoError(err)

	emitted := 0
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "Signal emitted") {
			emitted++
		}
		req.Equal(1, strings.Count(line, `"room_id"`), line)
		req.Equal(1, strings.Count(line, `"account_id"`), line)
	}
	req.Positive(emitted)
}
