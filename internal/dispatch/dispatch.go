package dispatch

import (
	"context"
	"fmt"
	"log"

	"github.com/DaniilSold/nets/internal/listener"
	"github.com/DaniilSold/nets/internal/report"
	"github.com/DaniilSold/nets/internal/scenario"
	"github.com/DaniilSold/nets/internal/sink"
	"github.com/DaniilSold/nets/internal/synth"
)

// ResultPublisher receives the summary of a completed traffic run.
type ResultPublisher interface {
	Publish(res report.RunResult) error
}

// Options carries the run parameters collected by the CLI plus the
// harness-level settings from the config file.
type Options struct {
	Iface       string
	CapturePath string
	Seed        int64

	// ResultsDir enables the per-run summary file when non-empty.
	ResultsDir string
	// Publisher receives the summary when non-nil.
	Publisher ResultPublisher
}

// Dispatcher routes a parsed scenario to the synthesizer and output sink,
// or to the listener simulator.
type Dispatcher struct {
	opts Options
}

// New creates a dispatcher for one run.
func New(opts Options) *Dispatcher {
	return &Dispatcher{opts: opts}
}

// Run executes exactly one scenario to completion, or until ctx is
// cancelled for the listener. Every failure propagates to the caller; no
// retries happen at this level.
func (d *Dispatcher) Run(ctx context.Context, sc scenario.Scenario) error {
	switch v := sc.(type) {
	case scenario.Listener:
		return listener.New(v.Port).Run(ctx)
	case scenario.DNSNXSpike, scenario.ARPSpoof, scenario.SMBBurst:
		return d.runTraffic(sc)
	default:
		// Parse only produces the variants above. If that ever stops
		// being true, fail loudly rather than silently doing nothing.
		return fmt.Errorf("no route for scenario %q", sc.Name())
	}
}

func (d *Dispatcher) runTraffic(sc scenario.Scenario) error {
	packets, err := synth.NewSynthesizer(d.opts.Seed).Synthesize(sc)
	if err != nil {
		return err
	}

	out := sink.New(d.opts.Iface, d.opts.CapturePath)
	if err := out.Consume(packets); err != nil {
		return err
	}
	log.Printf("Scenario %s produced %d packets", sc.Name(), len(packets))

	res := report.NewRunResult(sc.Name(), len(packets), d.opts.Iface, d.opts.CapturePath)

	if d.opts.ResultsDir != "" {
		path, err := report.WriteResult(d.opts.ResultsDir, res)
		if err != nil {
			return err
		}
		log.Printf("Run result written to %s", path)
	}

	if d.opts.Publisher != nil {
		if err := d.opts.Publisher.Publish(res); err != nil {
			return fmt.Errorf("failed to publish run result: %w", err)
		}
	}

	return nil
}
