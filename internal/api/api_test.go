package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/entail/pkg/graph"
)

// newTestServer builds a handler over a small fixed graph:
// A→B→C plus an unrelated X→Y edge.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	g := graph.New()
	g.EnsureEdge("A", "B")
	g.EnsureEdge("B", "C")
	g.EnsureEdge("X", "Y")

	srv := httptest.NewServer(NewHandler(g, log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, wantStatus int, into any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if into != nil {
		if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	get(t, srv.URL+"/healthz", http.StatusOK, &body)

	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestTerms(t *testing.T) {
	srv := newTestServer(t)

	var body termsResponse
	get(t, srv.URL+"/terms", http.StatusOK, &body)

	if body.TermCount != 5 {
		t.Errorf("term_count = %d, want 5", body.TermCount)
	}
	if body.EdgeCount != 3 {
		t.Errorf("edge_count = %d, want 3", body.EdgeCount)
	}
	if len(body.Terms) != 5 || body.Terms[0] != "A" {
		t.Errorf("terms = %v, want sorted list starting at A", body.Terms)
	}
}

func TestGraph(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Terms []string `json:"terms"`
		Edges []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"edges"`
	}
	get(t, srv.URL+"/graph", http.StatusOK, &body)

	if len(body.Terms) != 5 {
		t.Errorf("terms = %v, want 5 entries", body.Terms)
	}
	if len(body.Edges) != 3 {
		t.Errorf("edges = %v, want 3 entries", body.Edges)
	}
}

func TestReachable(t *testing.T) {
	srv := newTestServer(t)

	var body reachableResponse
	get(t, srv.URL+"/terms/A/reachable", http.StatusOK, &body)

	if body.Start != "A" {
		t.Errorf("start = %q, want A", body.Start)
	}
	if body.Count != 2 {
		t.Errorf("count = %d, want 2", body.Count)
	}
	wantPath := []string{"A", "B", "C"}
	if got := body.Paths["C"]; len(got) != len(wantPath) || got[0] != "A" || got[2] != "C" {
		t.Errorf("paths[C] = %v, want %v", got, wantPath)
	}
}

func TestReachableEscapedTerm(t *testing.T) {
	g := graph.New()
	g.EnsureEdge("it rains", "wet street")
	srv := httptest.NewServer(NewHandler(g, log.New(io.Discard)))
	defer srv.Close()

	var body reachableResponse
	get(t, srv.URL+"/terms/"+url.PathEscape("it rains")+"/reachable", http.StatusOK, &body)

	if body.Start != "it rains" {
		t.Errorf("start = %q, want %q", body.Start, "it rains")
	}
	if body.Count != 1 {
		t.Errorf("count = %d, want 1", body.Count)
	}
}

func TestReachableUnknownTerm(t *testing.T) {
	srv := newTestServer(t)

	var body errorResponse
	get(t, srv.URL+"/terms/missing/reachable", http.StatusNotFound, &body)

	if body.Error.Code != "TERM_NOT_FOUND" {
		t.Errorf("error code = %q, want TERM_NOT_FOUND", body.Error.Code)
	}
}

func TestChain(t *testing.T) {
	srv := newTestServer(t)

	var body chainResponse
	get(t, srv.URL+"/chain", http.StatusOK, &body)

	want := []string{"A", "B", "C"}
	if len(body.Chain) != len(want) || body.Chain[0] != "A" || body.Chain[2] != "C" {
		t.Errorf("chain = %v, want %v", body.Chain, want)
	}
	if body.Concludes == nil || body.Concludes.From != "A" || body.Concludes.To != "C" {
		t.Errorf("concludes = %+v, want A -> C", body.Concludes)
	}
}

func TestChainNoEdges(t *testing.T) {
	g := graph.New()
	g.EnsureTerm("A")
	srv := httptest.NewServer(NewHandler(g, log.New(io.Discard)))
	defer srv.Close()

	var body chainResponse
	get(t, srv.URL+"/chain", http.StatusOK, &body)

	if body.Chain != nil {
		t.Errorf("chain = %v, want null", body.Chain)
	}
	if body.Concludes != nil {
		t.Errorf("concludes = %+v, want omitted", body.Concludes)
	}
}
