package recnet

import (
	"circuits-lab/domain"
	"context"
	"fmt"
	"net/http"
)

type playerPresence struct {
	RoomInstance *domain.Instance `json:"roomInstance"`
}

// CurrentInstance returns nil when the account is offline, not in a room,
// or when the service refuses to say.
func (c *Client) CurrentInstance(ctx context.Context, account domain.AccountID) (*domain.Instance, error) {
	var players []playerPresence
	resp, err := c.getJSON(ctx, fmt.Sprintf("%s/player?id=%d", c.endpoints.Match, account), &players)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Debug("Presence unavailable", "account_id", account, "status", resp.StatusCode)
		return nil, nil
	}
	if len(players) == 0 {
		return nil, nil
	}
	return players[0].RoomInstance, nil
}
