package sink

import (
	"fmt"

	"github.com/DaniilSold/nets/internal/core/model"
	"github.com/google/gopacket/pcap"
)

const (
	snapshotLen int32 = 1600
	promiscuous       = false
)

// wire is the injection surface of a live capture handle, satisfied by
// *pcap.Handle. It is an interface so the transmit path can be exercised
// without opening a real device.
type wire interface {
	WritePacketData(data []byte) error
	Close()
}

// LiveSink transmits each packet of a sequence individually, in order, on
// a named interface. There is no inter-packet delay and no progress
// output; a failure to open the interface or to inject is fatal for the
// run.
type LiveSink struct {
	iface string
	open  func(iface string) (wire, error)
}

// NewLiveSink creates a sink transmitting on the given interface.
func NewLiveSink(iface string) *LiveSink {
	return &LiveSink{iface: iface, open: openHandle}
}

func openHandle(iface string) (wire, error) {
	handle, err := pcap.OpenLive(iface, snapshotLen, promiscuous, pcap.BlockForever)
	if err != nil {
		return nil, err
	}
	return handle, nil
}

// Consume opens the interface once and injects every packet sequentially.
func (s *LiveSink) Consume(packets []model.Packet) error {
	h, err := s.open(s.iface)
	if err != nil {
		return fmt.Errorf("failed to open interface %s: %w", s.iface, err)
	}
	defer h.Close()

	for i, pkt := range packets {
		data, err := pkt.Serialize()
		if err != nil {
			return fmt.Errorf("failed to serialize packet %d: %w", i, err)
		}
		if err := h.WritePacketData(data); err != nil {
			return fmt.Errorf("failed to transmit packet %d on %s: %w", i, s.iface, err)
		}
	}

	return nil
}
