package services

import (
	"circuits-lab/auth"
	"circuits-lab/domain"
	"circuits-lab/mocks"
	"context"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	hostAccount   domain.AccountID = 1
	coOwner       domain.AccountID = 2
	memberAccount domain.AccountID = 7
	otherAccount  domain.AccountID = 8
	testRoomID    domain.RoomID    = 42
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	client   *Client
	roles    *mocks.MockIRoleSetter
	rooms    *mocks.MockIRoomDirectory
	accounts *mocks.MockIAccountDirectory
	presence *mocks.MockIPresence
	photos   *mocks.MockIPhotoFeed
}

func testToken(t *testing.T, subject string, scopes ...string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Scope:            scopes,
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}).SignedString([]byte("test"))
	require.NoError(t, err)
	return token
}

func testRoom(tags ...string) domain.Room {
	room := domain.Room{
		ID:   testRoomID,
		Name: "CircuitLab",
		Roles: []domain.Membership{
			{AccountID: hostAccount, Role: 255},
			{AccountID: coOwner, Role: 30},
			{AccountID: memberAccount, Role: 10},
		},
	}
	for _, tag := range tags {
		room.Tags = append(room.Tags, domain.Tag{Tag: tag})
	}
	return room
}

func newFixture(t *testing.T, ctrl *gomock.Controller, scopes ...string) *fixture {
	t.Helper()
	f := &fixture{
		roles:    mocks.NewMockIRoleSetter(ctrl),
		rooms:    mocks.NewMockIRoomDirectory(ctrl),
		accounts: mocks.NewMockIAccountDirectory(ctrl),
		presence: mocks.NewMockIPresence(ctrl),
		photos:   mocks.NewMockIPhotoFeed(ctrl),
	}
	f.client = NewClient(ClientConfig{
		Tokens:   auth.StaticToken(testToken(t, "1", scopes...)),
		Roles:    f.roles,
		Rooms:    f.rooms,
		Accounts: f.accounts,
		Presence: f.presence,
		Photos:   f.photos,
		Logger:   logs.GetLoggerFromLevel(slog.LevelDebug),
		PingWait: time.Millisecond,
		Now:      func() time.Time { return testNow },
	})
	return f
}

// connectedRoom initializes the client and connects it to the test room.
func (f *fixture) connectedRoom(t *testing.T) *RoomConnection {
	t.Helper()
	req := require.New(t)
	req.NoError(f.client.Initialize(context.Background()))
	f.rooms.EXPECT().ResolveRoom(gomock.Any(), "CircuitLab").Return(testRoom(domain.CircuitsTag), nil)
	room, err := f.client.ConnectToRoom(context.Background(), "CircuitLab")
	req.NoError(err)
	return room
}

// connectedUser connects to memberAccount without a presence check.
func (f *fixture) connectedUser(t *testing.T) *UserConnection {
	t.Helper()
	room := f.connectedRoom(t)
	f.accounts.EXPECT().ResolveAccount(gomock.Any(), "alice").
		Return(domain.Account{ID: memberAccount, Username: "alice"}, nil)
	if f.client.CanQueryPresence() {
		f.presence.EXPECT().CurrentInstance(gomock.Any(), memberAccount).
			Return(&domain.Instance{RoomID: testRoomID, MatchmakingPolicy: 1}, nil)
	}
	conn, err := room.ConnectToUser(context.Background(), "alice")
	require.NoError(t, err)
	return conn
}

// recorder accepts every role change and keeps the codes per channel.
type recorder struct {
	mu    sync.Mutex
	codes map[ChannelKey][]int
}

func (f *fixture) recordRoles() *recorder {
	r := &recorder{codes: map[ChannelKey][]int{}}
	f.roles.EXPECT().SetRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, room domain.RoomID, account domain.AccountID, role int) (int, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			key := ChannelKey{Room: room, Account: account}
			r.codes[key] = append(r.codes[key], role)
			return http.StatusOK, nil
		}).AnyTimes()
	return r
}

// of returns the codes sent to account in the test room.
func (r *recorder) of(account domain.AccountID) []int {
	return r.in(testRoomID, account)
}

func (r *recorder) in(room domain.RoomID, account domain.AccountID) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.codes[ChannelKey{Room: room, Account: account}]
}
