// Package domain contains the entities shared by the transmitter layers.
// This file defines accounts and their presence in rooms.
// No network logic should be added here.
package domain

import "time"

type AccountID int64

type Account struct {
	ID          AccountID `json:"accountId" validate:"gt=0"`
	Username    string    `json:"username" validate:"required"`
	DisplayName string    `json:"displayName"`
}

// Instance is the room instance an account is currently in, as reported
// by the presence service.
type Instance struct {
	RoomID            RoomID `json:"roomId"`
	RoomInstanceID    int64  `json:"roomInstanceId"`
	MatchmakingPolicy int    `json:"matchmakingPolicy"`
}

// Photo is the metadata of a picture taken in a room.
type Photo struct {
	PlayerID        AccountID   `json:"PlayerId"`
	TaggedPlayerIDs []AccountID `json:"TaggedPlayerIds"`
	CreatedAt       time.Time   `json:"CreatedAt"`
}
