package pcap

import (
	"fmt"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

// Record summarizes one capture record.
type Record struct {
	Timestamp time.Time
	Length    int
	Protocol  string
	Source    string
	Dest      string
}

// Reader reads packets back from a capture file.
type Reader struct {
	handle *pcap.Handle
}

// NewReader opens the given capture file for offline reading.
func NewReader(filePath string) (*Reader, error) {
	handle, err := pcap.OpenOffline(filePath)
	if err != nil {
		return nil, err
	}
	return &Reader{handle: handle}, nil
}

// Close closes the pcap handle.
func (r *Reader) Close() {
	r.handle.Close()
}

// ReadRecords decodes every record in the capture, in file order.
func (r *Reader) ReadRecords() ([]Record, error) {
	var records []Record

	packetSource := gopacket.NewPacketSource(r.handle, r.handle.LinkType())
	for packet := range packetSource.Packets() {
		rec := Record{
			Length:   len(packet.Data()),
			Protocol: classify(packet),
		}
		if meta := packet.Metadata(); meta != nil {
			rec.Timestamp = meta.Timestamp
		}
		if nl := packet.NetworkLayer(); nl != nil {
			flow := nl.NetworkFlow()
			rec.Source = flow.Src().String()
			rec.Dest = flow.Dst().String()
			if tr := packet.TransportLayer(); tr != nil {
				tf := tr.TransportFlow()
				rec.Source = fmt.Sprintf("%s:%s", rec.Source, tf.Src())
				rec.Dest = fmt.Sprintf("%s:%s", rec.Dest, tf.Dst())
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

func classify(packet gopacket.Packet) string {
	switch {
	case packet.Layer(layers.LayerTypeDNS) != nil:
		return "DNS"
	case packet.Layer(layers.LayerTypeARP) != nil:
		return "ARP"
	case packet.Layer(layers.LayerTypeTCP) != nil:
		return "TCP"
	case packet.Layer(layers.LayerTypeUDP) != nil:
		return "UDP"
	default:
		return "other"
	}
}
