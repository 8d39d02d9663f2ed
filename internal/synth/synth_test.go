package synth

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/DaniilSold/nets/internal/scenario"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

func TestSynthesize_DNSNXSpike(t *testing.T) {
	for _, count := range []int{0, 1, 50} {
		s := NewSynthesizer(1)
		packets, err := s.Synthesize(scenario.DNSNXSpike{Count: count})
		if err != nil {
			t.Fatalf("Synthesize failed for count %d: %v", count, err)
		}
		if len(packets) != count {
			t.Fatalf("Expected %d packets, got %d", count, len(packets))
		}

		for i, pkt := range packets {
			stack := pkt.Layers()
			if len(stack) != 4 {
				t.Fatalf("Packet %d: expected 4 layers, got %d", i, len(stack))
			}

			ip := stack[1].(*layers.IPv4)
			if !ip.SrcIP.Equal(dnsClientIP) || !ip.DstIP.Equal(dnsServerIP) {
				t.Errorf("Packet %d: unexpected addresses %s -> %s", i, ip.SrcIP, ip.DstIP)
			}

			udp := stack[2].(*layers.UDP)
			if udp.DstPort != 53 {
				t.Errorf("Packet %d: expected destination port 53, got %d", i, udp.DstPort)
			}
			if udp.SrcPort < 1024 {
				t.Errorf("Packet %d: source port %d below 1024", i, udp.SrcPort)
			}

			dns := stack[3].(*layers.DNS)
			if !dns.RD {
				t.Errorf("Packet %d: recursion-desired not set", i)
			}
			if len(dns.Questions) != 1 {
				t.Fatalf("Packet %d: expected 1 question, got %d", i, len(dns.Questions))
			}
			name := string(dns.Questions[0].Name)
			label := strings.TrimSuffix(name, dnsQuerySuffix)
			if label == name {
				t.Fatalf("Packet %d: query name %q missing suffix", i, name)
			}
			n, err := strconv.Atoi(label)
			if err != nil {
				t.Fatalf("Packet %d: non-numeric label %q", i, label)
			}
			if n < 1 || n >= 10000 {
				t.Errorf("Packet %d: label %d out of [1, 10000)", i, n)
			}
		}
	}
}

func TestSynthesize_ARPSpoof(t *testing.T) {
	s := NewSynthesizer(1)
	packets, err := s.Synthesize(scenario.ARPSpoof{})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if len(packets) != 1 {
		t.Fatalf("Expected exactly 1 packet, got %d", len(packets))
	}

	stack := packets[0].Layers()
	eth := stack[0].(*layers.Ethernet)
	if !bytes.Equal(eth.DstMAC, broadcastMAC) {
		t.Errorf("Expected broadcast destination, got %s", eth.DstMAC)
	}

	arp := stack[1].(*layers.ARP)
	if arp.Operation != layers.ARPReply {
		t.Errorf("Expected ARP reply operation, got %d", arp.Operation)
	}
	if !bytes.Equal(arp.SourceProtAddress, spoofedGatewayIP) {
		t.Errorf("Expected claimed sender 10.0.0.1, got %v", arp.SourceProtAddress)
	}
	if !bytes.Equal(arp.SourceHwAddress, spoofedGatewayMAC) {
		t.Errorf("Expected claimed hardware address %s, got %v", spoofedGatewayMAC, arp.SourceHwAddress)
	}
}

func TestSynthesize_SMBBurst(t *testing.T) {
	s := NewSynthesizer(1)
	packets, err := s.Synthesize(scenario.SMBBurst{})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if len(packets) != 2 {
		t.Fatalf("Expected exactly 2 packets, got %d", len(packets))
	}

	for i, want := range []layers.TCPPort{445, 139} {
		stack := packets[i].Layers()

		ip := stack[1].(*layers.IPv4)
		if !ip.SrcIP.Equal(smbClientIP) || !ip.DstIP.Equal(smbServerIP) {
			t.Errorf("Packet %d: unexpected addresses %s -> %s", i, ip.SrcIP, ip.DstIP)
		}

		tcp := stack[2].(*layers.TCP)
		if tcp.DstPort != want {
			t.Errorf("Packet %d: expected destination port %d, got %d", i, want, tcp.DstPort)
		}
		if tcp.SrcPort != smbSourcePort {
			t.Errorf("Packet %d: expected source port %d, got %d", i, smbSourcePort, tcp.SrcPort)
		}
		if !tcp.SYN {
			t.Errorf("Packet %d: SYN flag not set", i)
		}
		if tcp.ACK || tcp.FIN || tcp.RST || tcp.PSH || tcp.URG {
			t.Errorf("Packet %d: unexpected flags beyond SYN", i)
		}
	}
}

func TestSynthesize_ListenerRejected(t *testing.T) {
	s := NewSynthesizer(1)
	if _, err := s.Synthesize(scenario.Listener{Port: 8080}); err == nil {
		t.Errorf("Expected error for the listener scenario")
	}
}

func TestSynthesize_SeedReproducibility(t *testing.T) {
	first, err := NewSynthesizer(42).Synthesize(scenario.DNSNXSpike{Count: 10})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	second, err := NewSynthesizer(42).Synthesize(scenario.DNSNXSpike{Count: 10})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	for i := range first {
		a, err := first[i].Serialize()
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		b, err := second[i].Serialize()
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("Packet %d differs between runs with the same seed", i)
		}
	}
}

func TestSerialize_ProducesDecodableFrames(t *testing.T) {
	s := NewSynthesizer(7)

	packets, err := s.Synthesize(scenario.DNSNXSpike{Count: 1})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	data, err := packets[0].Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	decoded := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
	if decoded.Layer(layers.LayerTypeDNS) == nil {
		t.Errorf("Serialized DNS query did not decode back to a DNS layer")
	}

	packets, err = s.Synthesize(scenario.ARPSpoof{})
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	data, err = packets[0].Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	decoded = gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
	if decoded.Layer(layers.LayerTypeARP) == nil {
		t.Errorf("Serialized ARP reply did not decode back to an ARP layer")
	}
}
