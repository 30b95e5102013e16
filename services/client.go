package services

import (
	"circuits-lab/auth"
	"circuits-lab/contract"
	"circuits-lab/domain"
	"circuits-lab/domain/signal"
	"circuits-lab/errors"
	"circuits-lab/observability"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultPingWait is how long the receiver gets to answer a ping.
	DefaultPingWait = time.Second
	// PhotoWindow bounds how old a photo may be to prove someone is in the room.
	PhotoWindow = 10 * time.Minute
	// PhotoTake is how many recent photos FindPlayers looks at.
	PhotoTake = 10
)

type ClientConfig struct {
	Tokens   contract.ITokenSource
	Roles    contract.IRoleSetter
	Rooms    contract.IRoomDirectory
	Accounts contract.IAccountDirectory
	Presence contract.IPresence
	Photos   contract.IPhotoFeed

	Logger         *slog.Logger
	Metrics        *observability.Metrics
	ChannelTimeout time.Duration
	PingWait       time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Client is the root of a transmitter context: it knows who the host
// account is and what its token allows. Rooms are reached through it.
type Client struct {
	config ClientConfig
	log    *slog.Logger

	mu          sync.Mutex
	initialized bool
	identity    auth.Identity
	closed      atomic.Bool
}

func NewClient(config ClientConfig) *Client {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.PingWait <= 0 {
		config.PingWait = DefaultPingWait
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Client{config: config, log: config.Logger}
}

// Initialize reads the host identity out of the access token. Calling it
// again once it succeeded does nothing.
func (c *Client) Initialize(ctx context.Context) error {
	if c.closed.Load() {
		return errors.ErrClientClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}

	token, err := c.config.Tokens.Token(ctx)
	if err != nil {
		return err
	}
	identity, err := auth.DecodeClaims(token)
	if err != nil {
		return err
	}

	if !identity.CanQueryPresence() {
		c.log.Warn("Access token lacks the presence scope, recipients will not be checked",
			"scope", auth.PresenceScope)
	}
	c.identity = identity
	c.initialized = true
	c.log.Info("Client initialized", "host_account_id", identity.AccountID,
		"presence", identity.CanQueryPresence())
	return nil
}

func (c *Client) HostAccountID() domain.AccountID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity.AccountID
}

func (c *Client) CanQueryPresence() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity.CanQueryPresence()
}

// Close ends the context. Every connection obtained from this client fails
// with errors.ErrClientClosed from then on.
func (c *Client) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		c.log.Info("Client closed")
	}
	return nil
}

func (c *Client) checkOpen() error {
	if c.closed.Load() {
		return errors.ErrClientClosed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return errors.ErrNotInitialized
	}
	return nil
}

// ConnectToRoom resolves the room and makes sure the host account may
// change roles in it.
func (c *Client) ConnectToRoom(ctx context.Context, nameOrID string) (*RoomConnection, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	room, err := c.config.Rooms.ResolveRoom(ctx, nameOrID)
	if err != nil {
		return nil, err
	}

	host := c.HostAccountID()
	if !signal.IsPrivileged(room.RoleOf(host)) {
		return nil, fmt.Errorf("%w: room %q", errors.ErrInsufficientPrivilege, room.Name)
	}

	conn := &RoomConnection{client: c, room: room, supportsCircuits: room.HasTag(domain.CircuitsTag)}
	if !conn.supportsCircuits {
		c.log.Warn("Room lacks the circuits tag, is it supported?", "room", room.Name, "tag", domain.CircuitsTag)
	}
	c.log.Info("Room connected", "room_id", room.ID, "room", room.Name)
	return conn, nil
}
