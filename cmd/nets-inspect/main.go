package main

import (
	"fmt"
	"log"
	"os"

	"github.com/DaniilSold/nets/pkg/pcap"
)

func main() {
	// 1. Get capture file path from command-line arguments
	if len(os.Args) < 2 {
		fmt.Println("Usage: nets-inspect <path_to_capture_file>")
		os.Exit(1)
	}
	capturePath := os.Args[1]

	// 2. Open the capture for offline reading
	reader, err := pcap.NewReader(capturePath)
	if err != nil {
		log.Fatalf("Failed to open capture file: %v", err)
	}
	defer reader.Close()

	// 3. Decode every record and tally per protocol
	records, err := reader.ReadRecords()
	if err != nil {
		log.Fatalf("Failed to read capture: %v", err)
	}

	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Protocol]++
		if rec.Source != "" {
			fmt.Printf("%-5s %4dB  %s -> %s\n", rec.Protocol, rec.Length, rec.Source, rec.Dest)
		} else {
			fmt.Printf("%-5s %4dB\n", rec.Protocol, rec.Length)
		}
	}

	fmt.Printf("\n%d records in %s\n", len(records), capturePath)
	for proto, n := range counts {
		fmt.Printf("  %-5s %d\n", proto, n)
	}
}
