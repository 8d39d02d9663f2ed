package scenario

import "fmt"

// Names of the closed scenario set accepted on the command line.
const (
	NameDNSNXSpike = "dns-nx-spike"
	NameARPSpoof   = "arp-spoof"
	NameSMBBurst   = "smb-burst"
	NameListener   = "listener"
)

// Scenario is one of a closed set of run variants. Each variant carries
// only the parameters that scenario consumes, so a half-configured run
// cannot be represented once Parse has succeeded.
type Scenario interface {
	Name() string
	scenario()
}

// DNSNXSpike floods randomized queries for nonexistent names.
type DNSNXSpike struct {
	Count int
}

// ARPSpoof emits a single forged ARP reply claiming the gateway address.
type ARPSpoof struct{}

// SMBBurst sends one SYN to each SMB service port.
type SMBBurst struct{}

// Listener holds a TCP port open to simulate a reachable target service.
type Listener struct {
	Port int
}

func (DNSNXSpike) Name() string { return NameDNSNXSpike }
func (ARPSpoof) Name() string   { return NameARPSpoof }
func (SMBBurst) Name() string   { return NameSMBBurst }
func (Listener) Name() string   { return NameListener }

func (DNSNXSpike) scenario() {}
func (ARPSpoof) scenario()   {}
func (SMBBurst) scenario()   {}
func (Listener) scenario()   {}

// Params carries the raw values collected by the CLI. Each variant picks
// out the subset it needs; the rest is ignored.
type Params struct {
	Count int
	Port  int
}

// Parse maps a scenario name to its variant, validating the parameters the
// variant consumes. Unknown names are rejected here, before any synthesis
// or binding starts.
func Parse(name string, p Params) (Scenario, error) {
	switch name {
	case NameDNSNXSpike:
		if p.Count < 0 {
			return nil, fmt.Errorf("packet count must not be negative, got %d", p.Count)
		}
		return DNSNXSpike{Count: p.Count}, nil
	case NameARPSpoof:
		return ARPSpoof{}, nil
	case NameSMBBurst:
		return SMBBurst{}, nil
	case NameListener:
		if p.Port <= 0 || p.Port > 65535 {
			return nil, fmt.Errorf("invalid listener port %d", p.Port)
		}
		return Listener{Port: p.Port}, nil
	default:
		return nil, fmt.Errorf("unknown scenario %q (valid: %s, %s, %s, %s)",
			name, NameDNSNXSpike, NameARPSpoof, NameSMBBurst, NameListener)
	}
}
