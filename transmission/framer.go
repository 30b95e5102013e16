package transmission

import (
	"circuits-lab/domain/alphabet"
	"circuits-lab/domain/packet"
	"circuits-lab/domain/signal"
	"circuits-lab/observability"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// PacketResult counts the signals of one packet, END included.
type PacketResult struct {
	Emissions int
	Failed    int
}

// Report summarises a message: the count packet plus its payload packets.
// MessageID is set by the caller that correlates sends.
type Report struct {
	MessageID       uuid.UUID
	Packets         int
	Emissions       int
	FailedEmissions int
	Dropped         []alphabet.Dropped
}

// Delivered is true when every role change was accepted.
func (r Report) Delivered() bool {
	return r.FailedEmissions == 0
}

func (r *Report) add(p PacketResult) {
	r.Emissions += p.Emissions
	r.FailedEmissions += p.Failed
}

// Framer sends packets: the bits of a value, least significant first,
// closed by an END signal. A message is a count packet followed by the
// announced number of payload packets, all strictly in order.
//
// A rejected role change does not stop the message; it is counted in the
// Report and the caller decides whether to send the message again.
type Framer struct {
	emitter SignalEmitter
	monitor *TimeoutMonitor
	log     *slog.Logger
	metrics *observability.Metrics
}

func NewFramer(log *slog.Logger, emitter SignalEmitter, monitor *TimeoutMonitor, metrics *observability.Metrics) *Framer {
	return &Framer{emitter: emitter, monitor: monitor, log: log, metrics: metrics}
}

// SendPacket transmits value as one packet.
func (f *Framer) SendPacket(ctx context.Context, s *Session, value uint64) (PacketResult, error) {
	return f.SendBits(ctx, s, packet.Bits(value))
}

// SendPacketCount announces how many packets follow.
func (f *Framer) SendPacketCount(ctx context.Context, s *Session, count int) (PacketResult, error) {
	if count < 0 {
		return PacketResult{}, fmt.Errorf("transmission: negative packet count %d", count)
	}
	f.log.Debug("Packet count", "count", count)
	return f.SendPacket(ctx, s, uint64(count))
}

// SendBits transmits pre-rendered bits, least significant first, then END.
// The gap the receiver sees between two signals includes the whole role
// change call, retries included, so it is measured once each call returns.
// A timeout or an unexpected error abandons the packet and leaves the
// session Idle.
func (f *Framer) SendBits(ctx context.Context, s *Session, bits []signal.Bit) (PacketResult, error) {
	var res PacketResult
	f.monitor.Begin(s)

	for _, bit := range bits {
		ok, err := f.emitter.EmitBit(ctx, s, bit)
		if err := f.record(s, &res, ok, err, len(bits)); err != nil {
			return res, err
		}
		f.monitor.Mark(s)
	}

	ok, err := f.emitter.EmitEnd(ctx, s)
	if err := f.record(s, &res, ok, err, len(bits)); err != nil {
		return res, err
	}
	f.monitor.Reset(s)
	f.metrics.ObservePacket()
	return res, nil
}

func (f *Framer) record(s *Session, res *PacketResult, ok bool, err error, total int) error {
	res.Emissions++
	if err != nil {
		f.monitor.Reset(s)
		return err
	}
	if !ok {
		res.Failed++
	}
	if err := f.monitor.Check(s); err != nil {
		f.metrics.ObserveTimeout()
		f.log.Warn("Packet timed out", "sent_signals", res.Emissions, "total_bits", total)
		return err
	}
	return nil
}

// SendText sends every supported character of text as its alphabet index.
// Unsupported characters are skipped and listed in the report.
func (f *Framer) SendText(ctx context.Context, s *Session, text string) (Report, error) {
	values, dropped := alphabet.EncodeText(text)
	report := Report{Dropped: dropped}
	if len(dropped) > 0 {
		f.metrics.ObserveDropped(len(dropped))
		f.log.Warn("Unsupported characters dropped", "dropped", len(dropped), "kept", len(values))
	}

	payload := make([]uint64, len(values))
	for i, v := range values {
		payload[i] = uint64(v)
	}
	return f.sendMessage(ctx, s, payload, report)
}

// SendInt sends value as a single-packet message.
func (f *Framer) SendInt(ctx context.Context, s *Session, value uint64) (Report, error) {
	return f.sendMessage(ctx, s, []uint64{value}, Report{})
}

func (f *Framer) sendMessage(ctx context.Context, s *Session, payload []uint64, report Report) (Report, error) {
	res, err := f.SendPacketCount(ctx, s, len(payload))
	report.add(res)
	if err != nil {
		return report, err
	}

	for i, v := range payload {
		res, err := f.SendPacket(ctx, s, v)
		report.add(res)
		if err != nil {
			return report, fmt.Errorf("packet %d/%d: %w", i+1, len(payload), err)
		}
		report.Packets++
		f.log.Debug("Packet sent", "index", i+1, "total", len(payload), "value", v)
	}
	return report, nil
}
