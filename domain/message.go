// Package domain contains the entities shared by the transmitter layers.
// This file defines the payload kinds a message can carry.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageKind string

const (
	KindText   MessageKind = "text"
	KindInt    MessageKind = "int"
	KindBinary MessageKind = "binary"
	KindPing   MessageKind = "ping"
)

// Message identifies one send operation for logs and traces.
type Message struct {
	ID        uuid.UUID
	Kind      MessageKind
	Room      RoomID
	Recipient AccountID
	CreatedAt time.Time
}

func NewMessage(kind MessageKind, room RoomID, recipient AccountID) Message {
	return Message{
		ID:        uuid.New(),
		Kind:      kind,
		Room:      room,
		Recipient: recipient,
		CreatedAt: time.Now(),
	}
}
