// Command server exposes a generated Barasa file as a JSON REST API.
//
// Endpoints:
//
//	GET /api/lemma/{lemma}
//	GET /api/lemmas
//	GET /api/stats
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/neocl/barasa"
	"github.com/neocl/barasa/internal/config"
	"github.com/neocl/barasa/internal/logging"
)

// ---- JSON response types ------------------------------------------------

type lemmaResponse struct {
	Lemma   string          `json:"lemma"`
	Records []barasa.Record `json:"records"`
}

type lemmasResponse struct {
	Lemmas []string `json:"lemmas"`
}

type statsResponse struct {
	Lemmas  int `json:"lemmas"`
	Records int `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode error", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleLemma(idx barasa.LemmaIndex) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lemma := mux.Vars(r)["lemma"]
		records := idx.Lookup(lemma)
		if len(records) == 0 {
			writeError(w, http.StatusNotFound, fmt.Sprintf("lemma %q not found", lemma))
			return
		}
		writeJSON(w, http.StatusOK, lemmaResponse{Lemma: lemma, Records: records})
	}
}

func handleLemmas(idx barasa.LemmaIndex) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, lemmasResponse{Lemmas: idx.Lemmas()})
	}
}

func handleStats(idx barasa.LemmaIndex) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, statsResponse{Lemmas: len(idx), Records: idx.Records()})
	}
}

func newHandler(idx barasa.LemmaIndex) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/lemma/{lemma}", handleLemma(idx)).Methods(http.MethodGet)
	r.HandleFunc("/api/lemmas", handleLemmas(idx)).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", handleStats(idx)).Methods(http.MethodGet)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
	})
	return cors.Default().Handler(r)
}

// ---- main ---------------------------------------------------------------

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	envFile := flag.String("env", ".env", "dotenv file with BARASA_* overrides")
	input := flag.String("barasa", "", "Barasa file to serve (default "+barasa.DefaultBarasaFile+")")
	addr := flag.String("addr", "", "listen address (default :8080)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.Barasa = *input
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	log, err := logging.New(os.Stderr, slog.LevelInfo, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "server: log file: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	log.Info("loading Barasa", "file", cfg.Barasa)
	idx, err := barasa.ReadLemmaIndex(cfg.Barasa)
	if err != nil {
		log.Error("failed to load Barasa", "err", err)
		os.Exit(1)
	}
	log.Info("Barasa loaded", "lemmas", len(idx), "records", idx.Records())

	srv := &http.Server{
		Handler:      newHandler(idx),
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Info("listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
}
