package testutils

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
)

//go:embed cartoladata
var cartoladata embed.FS

// FakeCartolaServer serves canned Cartola API responses and counts the
// requests it receives per path.
type FakeCartolaServer struct {
	s *httptest.Server

	mu       sync.Mutex
	hits     map[string]int
	statuses map[string]int
}

func NewFakeCartolaServer() *FakeCartolaServer {
	f := &FakeCartolaServer{
		hits:     make(map[string]int),
		statuses: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(f.countAndFail)
	r.Get("/mercado/status", serveFile("market_status.json"))
	r.Get("/mercado/destaques", serveFile("highlights.json"))
	r.Get("/rodadas", serveFile("rounds.json"))
	r.Get("/partidas", serveFile("matches.json"))
	r.Get("/partidas/{round}", roundMatchesHandler)
	r.Get("/atletas/mercado", serveFile("players.json"))
	r.Get("/atletas/status", serveFile("player_status.json"))
	r.Get("/atletas/pontuados", serveFile("partial.json"))
	r.Get("/clubes/mercado", serveFile("clubs.json"))

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeCartolaServer) Close() {
	f.s.Close()
}

// URL returns the base URL of the server, with a trailing slash.
func (f *FakeCartolaServer) URL() string {
	return f.s.URL + "/"
}

// Hits returns how many requests were made to path, e.g. "/rodadas".
func (f *FakeCartolaServer) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

// SetStatus makes every request to path fail with code. A code of 0 or 200
// restores the canned response.
func (f *FakeCartolaServer) SetStatus(path string, code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if code == 0 || code == http.StatusOK {
		delete(f.statuses, path)
		return
	}
	f.statuses[path] = code
}

func (f *FakeCartolaServer) countAndFail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[r.URL.Path]++
		code, fail := f.statuses[r.URL.Path]
		f.mu.Unlock()

		if fail {
			w.WriteHeader(code)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ReadFile returns the raw contents of one of the canned responses.
func ReadFile(name string) []byte {
	data, err := cartoladata.ReadFile(fmt.Sprintf("cartoladata/%s", name))
	if err != nil {
		log.Fatalf("error reading cartoladata/%s: %v", name, err)
	}
	return data
}

func serveFile(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(ReadFile(name))
	}
}

// roundMatchesHandler serves the canned matches relabelled with the requested
// round. Only rounds present in rounds.json exist; others are a 404.
func roundMatchesHandler(w http.ResponseWriter, r *http.Request) {
	round, err := strconv.Atoi(chi.URLParam(r, "round"))
	if err != nil || round < 1 || round > 3 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var matches map[string]any
	if err := json.Unmarshal(ReadFile("matches.json"), &matches); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	matches["rodada"] = round

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}
