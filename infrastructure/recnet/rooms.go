package recnet

import (
	"circuits-lab/domain"
	"circuits-lab/errors"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ResolveRoom looks a room up by numeric id, or by name otherwise.
// Private rooms are only visible to their owner and co-owners, so they
// surface as not found too.
func (c *Client) ResolveRoom(ctx context.Context, nameOrID string) (domain.Room, error) {
	var room domain.Room
	resp, err := c.getJSON(ctx, c.roomURL(nameOrID), &room)
	if err != nil {
		return domain.Room{}, err
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Debug("Room lookup refused", "room", nameOrID, "status", resp.StatusCode)
		return domain.Room{}, fmt.Errorf("%w: %q", errors.ErrRoomNotFound, nameOrID)
	}
	if err := c.validate.Struct(room); err != nil {
		return domain.Room{}, fmt.Errorf("%w: room %q: %w", errors.ErrInvalidResponse, nameOrID, err)
	}
	return room, nil
}

func (c *Client) roomURL(nameOrID string) string {
	query := url.Values{"include": {includeRolesAndTags}}
	if id, err := strconv.ParseInt(nameOrID, 10, 64); err == nil {
		return fmt.Sprintf("%s/rooms/%d?%s", c.endpoints.Rooms, id, query.Encode())
	}
	query.Set("name", nameOrID)
	return fmt.Sprintf("%s/rooms?%s", c.endpoints.Rooms, query.Encode())
}
