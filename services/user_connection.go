package services

import (
	"circuits-lab/domain"
	"circuits-lab/domain/packet"
	"circuits-lab/domain/signal"
	"circuits-lab/errors"
	"circuits-lab/observability"
	"circuits-lab/transmission"
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// UserConnection is the channel to one participant. It is not safe for
// concurrent use: sends on the same participant must be serialized by
// the caller, or the receiver reads interleaved bits.
type UserConnection struct {
	room    *RoomConnection
	account domain.Account
	session *transmission.Session
	emitter *transmission.Emitter
	framer  *transmission.Framer
	log     *slog.Logger
}

func newUserConnection(room *RoomConnection, account domain.Account, initial signal.Code) *UserConnection {
	config := room.client.config
	log := config.Logger.With("room_id", room.room.ID, "account_id", account.ID)
	emitter := transmission.NewEmitter(log, config.Roles, room.room.ID, account.ID, config.Metrics)
	monitor := transmission.NewTimeoutMonitor(config.ChannelTimeout, config.Now)

	return &UserConnection{
		room:    room,
		account: account,
		session: transmission.NewSession(initial),
		emitter: emitter,
		framer:  transmission.NewFramer(log, emitter, monitor, config.Metrics),
		log:     log,
	}
}

func (u *UserConnection) Account() domain.Account {
	return u.account
}

// Code is the role last requested for the participant.
func (u *UserConnection) Code() signal.Code {
	return u.session.Code
}

func (u *UserConnection) State() transmission.State {
	return u.session.State()
}

func (u *UserConnection) startMessage(ctx context.Context, kind domain.MessageKind) (context.Context, domain.Message, func(error)) {
	msg := domain.NewMessage(kind, u.room.room.ID, u.account.ID)
	ctx, span := observability.StartSpan(ctx, "transmitter.send."+string(kind),
		attribute.String("message.id", msg.ID.String()),
		attribute.Int64("room.id", int64(msg.Room)),
		attribute.Int64("account.id", int64(msg.Recipient)),
	)
	return ctx, msg, func(err error) { observability.EndSpan(span, err) }
}

func (u *UserConnection) logReport(msg domain.Message, report transmission.Report, err error) {
	attrs := []any{
		"message_id", msg.ID, "kind", msg.Kind, "packets", report.Packets,
		"emissions", report.Emissions, "failed", report.FailedEmissions,
		"duration", time.Since(msg.CreatedAt),
	}
	switch {
	case err != nil:
		u.log.Error("Message aborted", append(attrs, "error", err)...)
	case !report.Delivered():
		u.log.Warn("Message sent with rejected signals", attrs...)
	default:
		u.log.Info("Message sent", attrs...)
	}
}

// SendText transmits the supported characters of text. The report lists
// the characters that were left out.
func (u *UserConnection) SendText(ctx context.Context, text string) (transmission.Report, error) {
	if err := u.room.client.checkOpen(); err != nil {
		return transmission.Report{}, err
	}
	ctx, msg, end := u.startMessage(ctx, domain.KindText)
	report, err := u.framer.SendText(ctx, u.session, text)
	report.MessageID = msg.ID
	end(err)
	u.logReport(msg, report, err)
	return report, err
}

func (u *UserConnection) SendInt(ctx context.Context, value uint64) (transmission.Report, error) {
	if err := u.room.client.checkOpen(); err != nil {
		return transmission.Report{}, err
	}
	ctx, msg, end := u.startMessage(ctx, domain.KindInt)
	report, err := u.framer.SendInt(ctx, u.session, value)
	report.MessageID = msg.ID
	end(err)
	u.logReport(msg, report, err)
	return report, err
}

// SendBinary transmits a value written in binary digits (1010100) as a
// single packet, without a count packet.
func (u *UserConnection) SendBinary(ctx context.Context, binary uint64) (transmission.PacketResult, error) {
	if err := u.room.client.checkOpen(); err != nil {
		return transmission.PacketResult{}, err
	}
	bits, err := packet.BinaryForm(binary)
	if err != nil {
		return transmission.PacketResult{}, err
	}
	ctx, msg, end := u.startMessage(ctx, domain.KindBinary)
	res, err := u.framer.SendBits(ctx, u.session, bits)
	end(err)
	u.logReport(msg, transmission.Report{Packets: 1, Emissions: res.Emissions, FailedEmissions: res.Failed}, err)
	return res, err
}

// SendBit emits a single bit outside of any packet.
func (u *UserConnection) SendBit(ctx context.Context, bit signal.Bit) (bool, error) {
	if err := u.room.client.checkOpen(); err != nil {
		return false, err
	}
	return u.emitter.EmitBit(ctx, u.session, bit)
}

// SendEnd closes whatever the receiver has assembled so far.
func (u *UserConnection) SendEnd(ctx context.Context) (bool, error) {
	if err := u.room.client.checkOpen(); err != nil {
		return false, err
	}
	return u.emitter.EmitEnd(ctx, u.session)
}

// Instance returns where the participant currently plays, nil when
// nowhere. It needs the presence scope.
func (u *UserConnection) Instance(ctx context.Context) (*domain.Instance, error) {
	if err := u.room.client.checkOpen(); err != nil {
		return nil, err
	}
	if !u.room.client.CanQueryPresence() {
		return nil, errors.ErrLackingScope
	}
	return u.room.client.config.Presence.CurrentInstance(ctx, u.account.ID)
}

func (u *UserConnection) IsInRoom(ctx context.Context) (bool, error) {
	instance, err := u.Instance(ctx)
	if err != nil {
		return false, err
	}
	return instance != nil && instance.RoomID == u.room.room.ID, nil
}

// Ping sends an empty packet and waits for the receiver to answer by
// changing its instance matchmaking policy.
func (u *UserConnection) Ping(ctx context.Context) (bool, error) {
	before, err := u.Instance(ctx)
	if err != nil {
		return false, err
	}
	if before == nil || before.RoomID != u.room.room.ID {
		return false, nil
	}

	pingCtx, msg, end := u.startMessage(ctx, domain.KindPing)
	res, err := u.framer.SendPacket(pingCtx, u.session, 0)
	end(err)
	u.logReport(msg, transmission.Report{Emissions: res.Emissions, FailedEmissions: res.Failed}, err)
	if err != nil {
		return false, err
	}

	timer := time.NewTimer(u.room.client.config.PingWait)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	after, err := u.Instance(ctx)
	if err != nil {
		return false, err
	}
	if after == nil || after.RoomID != u.room.room.ID {
		return false, nil
	}
	pong := after.MatchmakingPolicy != before.MatchmakingPolicy
	u.log.Debug("Ping answered", "pong", pong)
	return pong, nil
}
