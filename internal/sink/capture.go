package sink

import (
	"fmt"
	"os"
	"time"

	"github.com/DaniilSold/nets/internal/core/model"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

const captureSnapLen = 65536

// CaptureSink serializes a packet sequence into a pcap container readable
// by standard analysis tools. An existing file at the path is overwritten.
type CaptureSink struct {
	path string
}

// NewCaptureSink creates a sink writing to the given capture path.
func NewCaptureSink(path string) *CaptureSink {
	return &CaptureSink{path: path}
}

// Consume writes the whole sequence to the capture file, one record per
// packet, preserving order.
func (s *CaptureSink) Consume(packets []model.Packet) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create capture file: %w", err)
	}
	defer f.Close()

	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(captureSnapLen, layers.LinkTypeEthernet); err != nil {
		return fmt.Errorf("failed to write pcap header: %w", err)
	}

	for i, pkt := range packets {
		data, err := pkt.Serialize()
		if err != nil {
			return fmt.Errorf("failed to serialize packet %d: %w", i, err)
		}
		ci := gopacket.CaptureInfo{
			Timestamp:     time.Now(),
			CaptureLength: len(data),
			Length:        len(data),
		}
		if err := w.WritePacket(ci, data); err != nil {
			return fmt.Errorf("failed to write packet %d: %w", i, err)
		}
	}

	return nil
}
