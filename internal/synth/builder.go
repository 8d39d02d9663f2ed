package synth

import (
	"math/rand"
	"net"
	"strconv"

	"github.com/DaniilSold/nets/internal/core/model"
	"github.com/google/gopacket/layers"
)

// Static role assignment for the synthesized scenarios. These are fixed
// lab addresses: the harness only needs frames that decode correctly, not
// routable traffic.
var (
	genMAC       = net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	targetMAC    = net.HardwareAddr{0x00, 0x66, 0x77, 0x88, 0x99, 0xAA}
	broadcastMAC = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	zeroMAC      = net.HardwareAddr{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	dnsClientIP = net.IP{10, 0, 0, 5}
	dnsServerIP = net.IP{10, 0, 0, 53}

	spoofedGatewayIP  = net.IP{10, 0, 0, 1}
	spoofedGatewayMAC = net.HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}

	smbClientIP = net.IP{10, 0, 0, 9}
	smbServerIP = net.IP{10, 0, 0, 10}
)

const (
	dnsQuerySuffix = ".example.test"
	smbSourcePort  = 50000
)

// SMBTargetPorts are probed in order, one SYN each.
var SMBTargetPorts = []uint16{445, 139}

// Builder constructs one fully layered packet per call. It carries no
// state beyond the randomness source, and construction cannot fail.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a builder drawing randomized fields from rng.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng}
}

// DNSQuery builds one recursion-desired A query for a random numeric label
// under example.test. Label is drawn from [1, 10000), the UDP source port
// from [1024, 65535] and the transaction id from [0, 65535].
func (b *Builder) DNSQuery() model.Packet {
	eth := &layers.Ethernet{
		SrcMAC:       genMAC,
		DstMAC:       targetMAC,
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    dnsClientIP,
		DstIP:    dnsServerIP,
	}
	udp := &layers.UDP{
		SrcPort: layers.UDPPort(1024 + b.rng.Intn(65535-1024+1)),
		DstPort: 53,
	}
	udp.SetNetworkLayerForChecksum(ip)

	qname := strconv.Itoa(1+b.rng.Intn(9999)) + dnsQuerySuffix
	dns := &layers.DNS{
		ID: uint16(b.rng.Intn(65536)),
		RD: true,
		Questions: []layers.DNSQuestion{{
			Name:  []byte(qname),
			Type:  layers.DNSTypeA,
			Class: layers.DNSClassIN,
		}},
	}

	return model.NewPacket(eth, ip, udp, dns)
}

// ARPReply builds the single spoofed reply: the generator claims the
// gateway IP with a forged hardware address, broadcast to the segment.
func (b *Builder) ARPReply() model.Packet {
	eth := &layers.Ethernet{
		SrcMAC:       spoofedGatewayMAC,
		DstMAC:       broadcastMAC,
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPReply,
		SourceHwAddress:   spoofedGatewayMAC,
		SourceProtAddress: spoofedGatewayIP,
		DstHwAddress:      zeroMAC,
		DstProtAddress:    net.IP{0, 0, 0, 0},
	}

	return model.NewPacket(eth, arp)
}

// SMBSyn builds one bare SYN toward the given SMB service port. Nothing is
// randomized; the burst is fully determined by the target port list.
func (b *Builder) SMBSyn(port uint16) model.Packet {
	eth := &layers.Ethernet{
		SrcMAC:       genMAC,
		DstMAC:       targetMAC,
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    smbClientIP,
		DstIP:    smbServerIP,
	}
	tcp := &layers.TCP{
		SrcPort: smbSourcePort,
		DstPort: layers.TCPPort(port),
		SYN:     true,
		Window:  14600,
	}
	tcp.SetNetworkLayerForChecksum(ip)

	return model.NewPacket(eth, ip, tcp)
}
