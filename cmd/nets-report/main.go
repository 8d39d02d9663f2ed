package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/DaniilSold/nets/internal/report"
	"github.com/gorilla/mux"
)

func main() {
	resultsDir := flag.String("results", "tests/results", "Directory of JSON result files")
	outPath := flag.String("o", "", "Output HTML path (default: <results>/report.html)")
	serveAddr := flag.String("serve", "", "Also serve the report over HTTP on this address")
	flag.Parse()

	out := *outPath
	if out == "" {
		out = filepath.Join(*resultsDir, "report.html")
	}

	if err := report.WriteReport(*resultsDir, out); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	log.Printf("Report generated at %s", out)

	if *serveAddr == "" {
		return
	}

	// Initialize router
	r := mux.NewRouter()
	r.HandleFunc("/", reportHandler(*resultsDir)).Methods("GET")
	r.HandleFunc("/results/{name}", resultHandler(*resultsDir)).Methods("GET")

	server := &http.Server{
		Addr:    *serveAddr,
		Handler: r,
	}

	go func() {
		log.Printf("Report server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", server.Addr, err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Report server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Report server exited.")
}

// reportHandler re-collates the results directory on every request so the
// page always reflects the latest runs.
func reportHandler(resultsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		merged, err := report.Collate(resultsDir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		page, err := report.Render(merged)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

// resultHandler serves a single raw result file.
func resultHandler(resultsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		name := filepath.Base(mux.Vars(req)["name"])
		data, err := os.ReadFile(filepath.Join(resultsDir, name))
		if err != nil {
			http.Error(w, "result not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}
