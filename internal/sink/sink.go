package sink

import (
	"github.com/DaniilSold/nets/internal/core/model"
)

// Sink consumes one packet sequence, exactly once, in order. A run uses
// exactly one sink: either the sequence is written to a capture file or it
// is transmitted live, never both.
type Sink interface {
	Consume(packets []model.Packet) error
}

// New selects the output mode for a run. The presence of a capture path
// switches the run to batch mode; an absent path is the normal live-mode
// case, not an error.
func New(iface, capturePath string) Sink {
	if capturePath != "" {
		return NewCaptureSink(capturePath)
	}
	return NewLiveSink(iface)
}
