package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/DaniilSold/nets/internal/config"
	"github.com/DaniilSold/nets/internal/dispatch"
	"github.com/DaniilSold/nets/internal/report"
	"github.com/DaniilSold/nets/internal/scenario"
)

func main() {
	scenarioName := flag.String("scenario", "", "Scenario to run: dns-nx-spike, arp-spoof, smb-burst or listener (required)")
	iface := flag.String("iface", "lo", "Interface to transmit on in live mode")
	count := flag.Int("count", 100, "Number of packets for count-driven scenarios")
	capture := flag.String("capture", "", "Write the sequence to this pcap file instead of transmitting")
	port := flag.Int("port", 8080, "Port for the listener scenario")
	seed := flag.Int64("seed", 0, "Random seed for packet fields (0 derives one from the clock)")
	configPath := flag.String("config", "", "Optional YAML config file")
	flag.Parse()

	if *scenarioName == "" {
		fmt.Fprintln(os.Stderr, "Error: -scenario is required")
		flag.Usage()
		os.Exit(1)
	}

	sc, err := scenario.Parse(*scenarioName, scenario.Params{Count: *count, Port: *port})
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := dispatch.Options{
		Iface:       *iface,
		CapturePath: *capture,
		Seed:        *seed,
		ResultsDir:  cfg.ResultsDir,
	}

	if cfg.NATS.Enabled {
		pub, err := report.NewPublisher(cfg.NATS.URL, cfg.NATS.Subject)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer pub.Close()
		opts.Publisher = pub
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dispatch.New(opts).Run(ctx, sc); err != nil {
		log.Fatalf("Scenario %s failed: %v", sc.Name(), err)
	}
	log.Printf("Scenario %s complete.", sc.Name())
}
