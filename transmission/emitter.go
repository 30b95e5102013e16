package transmission

import (
	"circuits-lab/contract"
	"circuits-lab/domain"
	"circuits-lab/domain/signal"
	"circuits-lab/errors"
	"circuits-lab/observability"
	"context"
	stderrors "errors"
	"log/slog"
)

// SignalEmitter puts one signal on a recipient's channel. The bool is
// false when the endpoint did not accept the change.
type SignalEmitter interface {
	EmitBit(ctx context.Context, s *Session, bit signal.Bit) (bool, error)
	EmitEnd(ctx context.Context, s *Session) (bool, error)
}

// Emitter realises signals as role changes of one account in one room.
// Its logger is expected to carry the room and account already.
type Emitter struct {
	roles   contract.IRoleSetter
	room    domain.RoomID
	account domain.AccountID
	log     *slog.Logger
	metrics *observability.Metrics
}

func NewEmitter(log *slog.Logger, roles contract.IRoleSetter, room domain.RoomID, account domain.AccountID, metrics *observability.Metrics) *Emitter {
	return &Emitter{roles: roles, room: room, account: account, log: log, metrics: metrics}
}

func (e *Emitter) EmitBit(ctx context.Context, s *Session, bit signal.Bit) (bool, error) {
	return e.emit(ctx, s, signal.CodeFor(bit))
}

func (e *Emitter) EmitEnd(ctx context.Context, s *Session) (bool, error) {
	return e.emit(ctx, s, signal.End)
}

// emit requests the code that makes desired observable and stores it in
// the session before the call, so a failed call still leaves the session
// describing what was last asked for.
func (e *Emitter) emit(ctx context.Context, s *Session, desired signal.Code) (bool, error) {
	code := signal.NextCode(s.Code, desired)
	s.Code = code

	status, err := e.roles.SetRole(ctx, e.room, e.account, int(code))
	if err != nil {
		e.metrics.ObserveEmission(code, false)
		if stderrors.Is(err, errors.ErrTransportFailure) {
			e.log.Warn("Signal not delivered", "code", code, "error", err)
			return false, nil
		}
		return false, err
	}

	ok := status >= 200 && status < 300
	e.metrics.ObserveEmission(code, ok)
	if !ok {
		e.log.Warn("Signal rejected", "code", code, "status", status)
	} else {
		e.log.Debug("Signal emitted", "desired", desired, "code", code)
	}
	return ok, nil
}
