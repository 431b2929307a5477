package acceptance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
)

// placesStub serves canned text search and details responses
type placesStub struct {
	server       *httptest.Server
	detailsCalls atomic.Int32
}

func newPlacesStub() *placesStub {
	p := &placesStub{}
	mux := http.NewServeMux()
	mux.HandleFunc("/textsearch/json", p.textSearch)
	mux.HandleFunc("/details/json", p.details)
	p.server = httptest.NewServer(mux)
	return p
}

func (p *placesStub) textSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasPrefix(query, "nothing"):
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ZERO_RESULTS", "results": []any{}})
	case strings.HasPrefix(query, "denied"):
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "REQUEST_DENIED", "results": []any{}})
	default:
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"results": []map[string]any{
				{"place_id": "p0", "name": "Joe's Coffee", "formatted_address": "1 Main St", "rating": 4.6, "types": []string{"cafe"}},
				{"place_id": "p1", "name": "Starbucks", "formatted_address": "2 Main St", "rating": 4.0, "types": []string{"cafe"}},
				{"place_id": "p2", "name": "Bean There", "vicinity": "3 Side St", "types": []string{"cafe"}},
			},
		})
	}
}

func (p *placesStub) details(w http.ResponseWriter, r *http.Request) {
	p.detailsCalls.Add(1)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "OK",
		"result": map[string]any{
			"place_id": r.URL.Query().Get("place_id"),
			"name":     "Joe's Coffee",
		},
	})
}

// geminiStub answers every generateContent call with a fixed reply
type geminiStub struct {
	server *httptest.Server
	reply  atomic.Value
}

func newGeminiStub(reply string) *geminiStub {
	g := &geminiStub{}
	g.reply.Store(reply)
	g.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": g.reply.Load().(string)}},
				},
			}},
		})
	}))
	return g
}
