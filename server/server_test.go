package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goovo/clob/engine"
)

func newTestServer() (*Server, *httptest.Server) {
	book := engine.NewBookDefault(64)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(book, log)

	mux := http.NewServeMux()
	s.Routes(mux)
	return s, httptest.NewServer(mux)
}

func TestHandleAddLimitAccepts(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	body, _ := json.Marshal(addLimitRequest{OrderID: 1, Qty: 10, Side: "buy", PriceTicks: 100})
	resp, err := http.Post(ts.URL+"/orders", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /orders: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out addLimitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Accepted {
		t.Fatalf("response = %+v, want Accepted=true", out)
	}
}

func TestHandleAddLimitRejectsBadSide(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	body, _ := json.Marshal(addLimitRequest{OrderID: 1, Qty: 10, Side: "sideways", PriceTicks: 100})
	resp, err := http.Post(ts.URL+"/orders", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /orders: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleCancelAndDepth(t *testing.T) {
	_, ts := newTestServer()
	defer ts.Close()

	body, _ := json.Marshal(addLimitRequest{OrderID: 1, Qty: 10, Side: "buy", PriceTicks: 100})
	http.Post(ts.URL+"/orders", "application/json", bytes.NewReader(body))

	depthResp, err := http.Get(ts.URL + "/depth")
	if err != nil {
		t.Fatalf("GET /depth: %v", err)
	}
	defer depthResp.Body.Close()
	var depth engine.BookDepth
	if err := json.NewDecoder(depthResp.Body).Decode(&depth); err != nil {
		t.Fatalf("decode depth: %v", err)
	}
	if len(depth.Bids) != 1 || depth.Bids[0].PriceTicks != 100 {
		t.Fatalf("depth = %+v, want single bid level at 100", depth)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/orders/1", nil)
	cancelResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE /orders/1: %v", err)
	}
	defer cancelResp.Body.Close()
	var out cancelResponse
	if err := json.NewDecoder(cancelResp.Body).Decode(&out); err != nil {
		t.Fatalf("decode cancel response: %v", err)
	}
	if !out.Cancelled {
		t.Fatalf("response = %+v, want Cancelled=true", out)
	}
}
