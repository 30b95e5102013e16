package auth

import (
	"circuits-lab/domain"
	"circuits-lab/errors"
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
)

// PresenceScope lets the bearer read where an account currently plays.
const PresenceScope = "rn.match.read"

// DefaultTokenWait bounds how long AwaitableToken blocks before giving up.
const DefaultTokenWait = 30 * time.Second

// Claims holds the part of the access token the transmitter relies on.
// The token is issued by RecNet and never verified here: the API does that
// on every request.
type Claims struct {
	Scope jwt.ClaimStrings `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// Identity is what the host account is allowed to do.
type Identity struct {
	AccountID domain.AccountID `validate:"gt=0"`
	Scopes    []string
}

func (i Identity) HasScope(scope string) bool {
	return lo.Contains(i.Scopes, scope)
}

func (i Identity) CanQueryPresence() bool {
	return i.HasScope(PresenceScope)
}

// DecodeClaims reads the host identity out of an access token without
// checking its signature.
func DecodeClaims(token string) (Identity, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", errors.ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: subject %q is not an account id", errors.ErrInvalidToken, claims.Subject)
	}

	identity := Identity{AccountID: domain.AccountID(id), Scopes: []string(claims.Scope)}
	if err := Validate(identity); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", errors.ErrInvalidToken, err)
	}
	return identity, nil
}

// StaticToken is a token handed over once, typically from the environment.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", errors.ErrTokenUnavailable
	}
	return string(t), nil
}

// AwaitableToken is filled in later by whoever acquires the token. Readers
// block until Set is called, the wait elapses or the context ends.
type AwaitableToken struct {
	mu    sync.RWMutex
	token string
	ready chan struct{}
	once  sync.Once
	wait  time.Duration
}

func NewAwaitableToken(wait time.Duration) *AwaitableToken {
	if wait <= 0 {
		wait = DefaultTokenWait
	}
	return &AwaitableToken{ready: make(chan struct{}), wait: wait}
}

// Set stores token and releases every waiting reader. Later calls replace
// the token, e.g. after a refresh.
func (a *AwaitableToken) Set(token string) {
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
	a.once.Do(func() { close(a.ready) })
}

func (a *AwaitableToken) Token(ctx context.Context) (string, error) {
	timer := time.NewTimer(a.wait)
	defer timer.Stop()

	select {
	case <-a.ready:
	case <-timer.C:
		return "", fmt.Errorf("%w: not provided within %s", errors.ErrTokenUnavailable, a.wait)
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", errors.ErrTokenUnavailable, ctx.Err())
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.token == "" {
		return "", errors.ErrTokenUnavailable
	}
	return a.token, nil
}
