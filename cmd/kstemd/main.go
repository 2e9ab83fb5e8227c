// Command kstemd exposes the stemmer as a small JSON HTTP API.
//
// Endpoints:
//
//	POST /stem   body: {"term":"..."}   ->  {"term":"...","stem":"..."}
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"github.com/go-kstem/kstem"
	"github.com/go-kstem/kstem/internal/kstemcfg"
)

type stemRequest struct {
	Term string `json:"term"`
}

type stemResponse struct {
	Term string `json:"term"`
	Stem string `json:"stem"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func handleStem(st *kstem.Stemmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body stemRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Term == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'term' field")
			return
		}
		writeJSON(w, http.StatusOK, stemResponse{Term: body.Term, Stem: st.Stem(body.Term)})
	}
}

func main() {
	configPath := flag.String("config", "kstem.toml", "path to optional TOML config")
	addrFlag := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := kstemcfg.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	addr := cfg.ListenAddr
	if *addrFlag != "" {
		addr = *addrFlag
	}

	dir := cfg.LexiconDirOr(os.Getenv("STEM_DIR"))
	log.Printf("loading lexicon from %s …", dir)
	st, err := kstem.New(dir)
	if err != nil {
		log.Fatalf("initializing stemmer: %v", err)
	}
	log.Printf("lexicon loaded: %d entries", st.Len())

	mux := http.NewServeMux()
	mux.HandleFunc("/stem", handleStem(st))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodPost},
	})

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, c.Handler(mux)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
