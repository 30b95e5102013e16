package domain

import (
	"strings"

	"github.com/samber/lo"
)

type RoomID int64

// CircuitsTag marks rooms that ship the receiver boards.
const CircuitsTag = "circuitsapi"

// Membership is one (account, role) pair of a room's role list.
type Membership struct {
	AccountID AccountID `json:"AccountId" validate:"gt=0"`
	Role      int       `json:"Role"`
}

type Tag struct {
	Tag string `json:"Tag"`
}

type Room struct {
	ID    RoomID       `json:"RoomId" validate:"gt=0"`
	Name  string       `json:"Name" validate:"required"`
	Roles []Membership `json:"Roles" validate:"dive"`
	Tags  []Tag        `json:"Tags"`
}

// RoleOf returns the role account holds in the room, 0 when it holds none.
func (r Room) RoleOf(account AccountID) int {
	m, ok := lo.Find(r.Roles, func(m Membership) bool {
		return m.AccountID == account
	})
	if !ok {
		return 0
	}
	return m.Role
}

// HasTag reports whether the room carries tag, case-insensitively.
func (r Room) HasTag(tag string) bool {
	return lo.ContainsBy(r.Tags, func(t Tag) bool {
		return strings.EqualFold(t.Tag, tag)
	})
}
