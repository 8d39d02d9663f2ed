package synth

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/DaniilSold/nets/internal/core/model"
	"github.com/DaniilSold/nets/internal/scenario"
)

// Synthesizer maps a traffic scenario to its ordered packet sequence by
// invoking the builder the scenario-appropriate number of times.
type Synthesizer struct {
	builder *Builder
}

// NewSynthesizer creates a synthesizer with its own non-cryptographic
// randomness source. A zero seed derives one from the clock, matching the
// original unseeded behavior; any other value makes the produced sequence
// reproducible across runs.
func NewSynthesizer(seed int64) *Synthesizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Synthesizer{builder: NewBuilder(rand.New(rand.NewSource(seed)))}
}

// Synthesize produces the full packet sequence for a traffic scenario in
// construction order: count packets for the DNS spike, exactly one forged
// reply for the ARP spoof, and one SYN per SMB target port. The listener
// variant generates no traffic and is rejected.
func (s *Synthesizer) Synthesize(sc scenario.Scenario) ([]model.Packet, error) {
	switch v := sc.(type) {
	case scenario.DNSNXSpike:
		packets := make([]model.Packet, 0, v.Count)
		for i := 0; i < v.Count; i++ {
			packets = append(packets, s.builder.DNSQuery())
		}
		return packets, nil
	case scenario.ARPSpoof:
		return []model.Packet{s.builder.ARPReply()}, nil
	case scenario.SMBBurst:
		packets := make([]model.Packet, 0, len(SMBTargetPorts))
		for _, port := range SMBTargetPorts {
			packets = append(packets, s.builder.SMBSyn(port))
		}
		return packets, nil
	default:
		return nil, fmt.Errorf("scenario %q does not synthesize traffic", sc.Name())
	}
}
