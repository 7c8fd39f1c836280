// Package server exposes a single engine.Book instance over a plain
// net/http + JSON surface. The Prometheus /metrics endpoint is mounted
// beside these routes by cmd/clob-server, not by this package. This is
// ambient service-layer I/O sitting outside engine, not inside it —
// engine itself has no transport concerns.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goovo/clob/engine"
)

// Server wires a Book to HTTP handlers. It holds no additional state
// beyond the Book itself and a logger; every request is handled
// synchronously against the single underlying Book, matching engine's
// single-threaded contract (net/http already serializes nothing for
// you, so callers deploying this behind concurrent clients are
// responsible for not sharing a Server across instrument shards that
// need independent books).
type Server struct {
	book *engine.Book
	log  *slog.Logger
}

// New returns a Server driving book. log must not be nil.
func New(book *engine.Book, log *slog.Logger) *Server {
	return &Server{book: book, log: log}
}

// Routes registers this server's handlers on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /orders", s.handleAddLimit)
	mux.HandleFunc("DELETE /orders/{id}", s.handleCancel)
	mux.HandleFunc("GET /depth", s.handleDepth)
}

type addLimitRequest struct {
	OrderID    engine.OrderID    `json:"order_id"`
	Qty        engine.Qty        `json:"qty"`
	Side       string            `json:"side"`
	PriceTicks engine.PriceTicks `json:"price_ticks"`
}

type addLimitResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

func (s *Server) handleAddLimit(w http.ResponseWriter, r *http.Request) {
	var req addLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Warn("decode add-limit request failed", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	side, ok := parseSide(req.Side)
	if !ok {
		http.Error(w, "side must be \"buy\" or \"sell\"", http.StatusBadRequest)
		return
	}

	res := s.book.AddLimit(req.OrderID, req.Qty, side, req.PriceTicks)
	s.log.Info("add_limit",
		"order_id", req.OrderID, "side", side, "price_ticks", req.PriceTicks,
		"qty", req.Qty, "accepted", res.Accepted, "reason", res.Reason)

	writeJSON(w, http.StatusOK, addLimitResponse{Accepted: res.Accepted, Reason: res.Reason})
}

type cancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	n, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		http.Error(w, "id must be an unsigned integer", http.StatusBadRequest)
		return
	}
	id := engine.OrderID(n)

	ok := s.book.Cancel(id)
	s.log.Info("cancel", "order_id", id, "cancelled", ok)

	writeJSON(w, http.StatusOK, cancelResponse{Cancelled: ok})
}

func (s *Server) handleDepth(w http.ResponseWriter, r *http.Request) {
	depth := s.book.DepthSnapshot(20)
	writeJSON(w, http.StatusOK, depth)
}

func parseSide(s string) (engine.Side, bool) {
	switch s {
	case "buy":
		return engine.Buy, true
	case "sell":
		return engine.Sell, true
	default:
		return 0, false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
