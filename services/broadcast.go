package services

import (
	"circuits-lab/domain"
	"circuits-lab/transmission"
	"context"
	"sync"

	"github.com/samber/lo"
)

// ChannelKey identifies a channel: the same account in two rooms holds
// two independent roles.
type ChannelKey struct {
	Room    domain.RoomID
	Account domain.AccountID
}

type BroadcastResult struct {
	Report transmission.Report
	Err    error
}

// Key is the channel this connection signals on.
func (u *UserConnection) Key() ChannelKey {
	return ChannelKey{Room: u.room.room.ID, Account: u.account.ID}
}

// Broadcast sends text to every connection at once. Each channel is
// independent, so the sends do not interfere; a channel listed twice is
// sent to once.
func Broadcast(ctx context.Context, conns []*UserConnection, text string) map[ChannelKey]BroadcastResult {
	conns = lo.UniqBy(conns, (*UserConnection).Key)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[ChannelKey]BroadcastResult, len(conns))
	)
	for _, conn := range conns {
		wg.Add(1)
		go func(conn *UserConnection) {
			defer wg.Done()
			report, err := conn.SendText(ctx, text)
			mu.Lock()
			results[conn.Key()] = BroadcastResult{Report: report, Err: err}
			mu.Unlock()
		}(conn)
	}
	wg.Wait()
	return results
}
