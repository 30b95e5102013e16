package recnet

import (
	"circuits-lab/domain"
	"circuits-lab/infrastructure/transport"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// SetRole asks the room to give account the role code. The status is
// handed back untouched; the emitter decides what a rejection means.
func (c *Client) SetRole(ctx context.Context, room domain.RoomID, account domain.AccountID, role int) (int, error) {
	resp, err := c.sender.Send(ctx, transport.Request{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("%s/rooms/%d/roles/%d", c.endpoints.Rooms, room, account),
		Form:   url.Values{"role": {strconv.Itoa(role)}},
	})
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}
