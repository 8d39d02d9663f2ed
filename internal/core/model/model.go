package model

import (
	"github.com/google/gopacket"
)

// Packet is an ordered, immutable stack of protocol layers making up one
// on-wire frame. It is constructed once by the synthesizer and consumed
// exactly once by an output sink.
type Packet struct {
	stack []gopacket.SerializableLayer
}

// NewPacket builds a packet from its layers, outermost (link) first.
func NewPacket(stack ...gopacket.SerializableLayer) Packet {
	return Packet{stack: stack}
}

// Layers returns the layer stack, link layer first.
func (p Packet) Layers() []gopacket.SerializableLayer {
	return p.stack
}

// Serialize renders the packet to its full on-wire byte layout, fixing
// lengths and computing checksums across all layers.
func (p Packet) Serialize() ([]byte, error) {
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{
		ComputeChecksums: true,
		FixLengths:       true,
	}
	if err := gopacket.SerializeLayers(buf, opts, p.stack...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
