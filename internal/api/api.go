// Package api exposes entail queries over HTTP.
//
// The handler serves a built, immutable term graph. Endpoints:
//
//	GET /healthz                    - liveness probe
//	GET /graph                      - graph JSON (terms and edges)
//	GET /terms                      - sorted term list with counts
//	GET /terms/{term}/reachable     - reachability report for a term
//	GET /chain                      - the longest implication chain
//
// Unknown terms map to 404 with a JSON error envelope carrying the
// machine-readable error code. All other failures map to 500.
package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/entail/pkg/analysis"
	"github.com/matzehuels/entail/pkg/errors"
	"github.com/matzehuels/entail/pkg/graph"
	pkgio "github.com/matzehuels/entail/pkg/io"
)

// Server answers entailment queries over a single immutable graph.
type Server struct {
	graph  *graph.Graph
	logger *log.Logger
}

// NewHandler creates an HTTP handler serving queries over g.
// The graph must not be mutated after the handler is installed.
func NewHandler(g *graph.Graph, logger *log.Logger) http.Handler {
	s := &Server{graph: g, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/graph", s.handleGraph)
	r.Get("/terms", s.handleTerms)
	r.Get("/terms/{term}/reachable", s.handleReachable)
	r.Get("/chain", s.handleChain)
	return r
}

// termsResponse is the payload for GET /terms.
type termsResponse struct {
	Terms     []string `json:"terms"`
	TermCount int      `json:"term_count"`
	EdgeCount int      `json:"edge_count"`
}

// reachableResponse is the payload for GET /terms/{term}/reachable.
type reachableResponse struct {
	Start     string              `json:"start"`
	Count     int                 `json:"count"`
	Reachable []string            `json:"reachable"`
	Paths     map[string][]string `json:"paths"`
}

// chainResponse is the payload for GET /chain. Chain is null when the
// graph has no edges; Concludes summarizes the endpoints otherwise.
type chainResponse struct {
	Chain     []string       `json:"chain"`
	Concludes *chainEndpoint `json:"concludes,omitempty"`
}

type chainEndpoint struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WriteJSON(s.graph, w); err != nil {
		s.logger.Errorf("write graph: %v", err)
	}
}

func (s *Server) handleTerms(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, termsResponse{
		Terms:     s.graph.Terms(),
		TermCount: s.graph.TermCount(),
		EdgeCount: s.graph.EdgeCount(),
	})
}

func (s *Server) handleReachable(w http.ResponseWriter, r *http.Request) {
	term, err := url.PathUnescape(chi.URLParam(r, "term"))
	if err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidPath, "invalid term encoding"))
		return
	}

	result, err := analysis.Analyze(s.graph, term)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, reachableResponse{
		Start:     result.Start,
		Count:     result.Count(),
		Reachable: result.Reachable(),
		Paths:     result.Paths,
	})
}

func (s *Server) handleChain(w http.ResponseWriter, r *http.Request) {
	resp := chainResponse{Chain: analysis.LongestChain(s.graph)}
	if len(resp.Chain) > 0 {
		resp.Concludes = &chainEndpoint{
			From: resp.Chain[0],
			To:   resp.Chain[len(resp.Chain)-1],
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// writeError maps structured error codes to HTTP status codes and writes
// the JSON error envelope.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeTermNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidPath, errors.ErrCodeInvalidRule:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Errorf("request failed: %v", err)
	} else {
		s.logger.Debugf("request rejected: %v", err)
	}

	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	}})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Errorf("encode response: %v", err)
	}
}
