// Package testutil provides helpers for SDK tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// JSONResponse describes a canned response for one route.
type JSONResponse struct {
	Status int
	Body   any
	// Raw takes precedence over Body when non-empty; written verbatim.
	Raw string
}

// Recorder captures requests as seen by the test server.
type Recorder struct {
	mu       sync.Mutex
	requests []RecordedRequest
}

// RecordedRequest is one captured request: method, path, and headers.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
}

// Requests returns a copy of everything recorded so far.
func (r *Recorder) Requests() []RecordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

func (r *Recorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, RecordedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Header: req.Header.Clone(),
	})
}

// NewJSONServer returns an httptest server answering each request path
// from responses, plus a Recorder of every request received. Unknown
// paths answer 404 with an empty body.
func NewJSONServer(responses map[string]JSONResponse) (*httptest.Server, *Recorder) {
	rec := &Recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		resp, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if resp.Raw != "" {
			_, _ = w.Write([]byte(resp.Raw))
			return
		}
		if resp.Body != nil {
			_ = json.NewEncoder(w).Encode(resp.Body)
		}
	}))
	return srv, rec
}
