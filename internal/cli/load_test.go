package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/entail/pkg/errors"
)

func TestLoadGraphFromRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facts.rules")
	content := "man & mortal -> dies\nSocrates -> man\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := loadGraph(context.Background(), path)
	if err != nil {
		t.Fatalf("loadGraph() error = %v", err)
	}
	if g.TermCount() != 4 {
		t.Errorf("TermCount() = %d, want 4", g.TermCount())
	}
	if !g.HasEdge("Socrates", "man") {
		t.Error("expected edge Socrates -> man")
	}
}

func TestLoadGraphFromJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	content := `{"terms":["A","B"],"edges":[{"from":"A","to":"B"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := loadGraph(context.Background(), path)
	if err != nil {
		t.Fatalf("loadGraph() error = %v", err)
	}
	if !g.HasEdge("A", "B") {
		t.Error("expected edge A -> B")
	}
}

func TestLoadGraphMissingFile(t *testing.T) {
	_, err := loadGraph(context.Background(), filepath.Join(t.TempDir(), "nope.rules"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("loadGraph() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestArgOrEmpty(t *testing.T) {
	if got := argOrEmpty(nil); got != "" {
		t.Errorf("argOrEmpty(nil) = %q, want empty", got)
	}
	if got := argOrEmpty([]string{"facts.rules"}); got != "facts.rules" {
		t.Errorf("argOrEmpty() = %q, want facts.rules", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"all empty", []string{"", ""}, ""},
		{"first wins", []string{"a", "b"}, "a"},
		{"skips empty", []string{"", "b"}, "b"},
		{"no values", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonEmpty(tt.values...); got != tt.want {
				t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
