// Package recnet talks to the RecNet web services: the room role endpoint
// the signals travel through, and the directories the connections are
// resolved against. Every call goes through transport.Transport.
package recnet

import (
	"circuits-lab/errors"
	"circuits-lab/infrastructure/transport"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultRoomsURL    = "https://rooms.rec.net"
	DefaultAccountsURL = "https://accounts.rec.net"
	DefaultMatchURL    = "https://match.rec.net"
	DefaultImagesURL   = "https://apim.rec.net/apis/api/images"

	// includeRolesAndTags asks the room endpoint for roles and tags.
	includeRolesAndTags = "12"
)

// Endpoints are the base URLs of the services, without trailing slash.
type Endpoints struct {
	Rooms    string
	Accounts string
	Match    string
	Images   string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Rooms:    DefaultRoomsURL,
		Accounts: DefaultAccountsURL,
		Match:    DefaultMatchURL,
		Images:   DefaultImagesURL,
	}
}

func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return strings.TrimRight(v, "/")
	}
	return Endpoints{
		Rooms:    pick(e.Rooms, d.Rooms),
		Accounts: pick(e.Accounts, d.Accounts),
		Match:    pick(e.Match, d.Match),
		Images:   pick(e.Images, d.Images),
	}
}

// Sender is satisfied by *transport.Transport.
type Sender interface {
	Send(ctx context.Context, req transport.Request) (*transport.Response, error)
}

// Client implements the contract interfaces against the live services.
type Client struct {
	sender    Sender
	endpoints Endpoints
	log       *slog.Logger
	validate  *validator.Validate
}

func NewClient(log *slog.Logger, sender Sender, endpoints Endpoints) *Client {
	return &Client{
		sender:    sender,
		endpoints: endpoints.withDefaults(),
		log:       log,
		validate:  validator.New(),
	}
}

// getJSON fetches url and decodes a 200 body into out. The response is
// returned so callers can map other statuses themselves.
func (c *Client) getJSON(ctx context.Context, url string, out any) (*transport.Response, error) {
	resp, err := c.sender.Send(ctx, transport.Request{Method: http.MethodGet, URL: url})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return resp, fmt.Errorf("%w: %s: %w", errors.ErrInvalidResponse, url, err)
	}
	return resp, nil
}
