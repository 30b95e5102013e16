package recnet

import (
	"circuits-lab/domain"
	"context"
	"fmt"
	"net/http"
)

// RoomPhotos lists the latest take photos of room, newest first. A refused
// request yields no photos.
func (c *Client) RoomPhotos(ctx context.Context, room domain.RoomID, take int) ([]domain.Photo, error) {
	var photos []domain.Photo
	resp, err := c.getJSON(ctx, fmt.Sprintf("%s/v4/room/%d?take=%d", c.endpoints.Images, room, take), &photos)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Room photos unavailable", "room_id", room, "status", resp.StatusCode)
		return nil, nil
	}
	return photos, nil
}
