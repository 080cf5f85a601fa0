package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/gloss/internal/api"
	"github.com/jackzampolin/gloss/internal/glossary"
	"github.com/jackzampolin/gloss/internal/home"
)

// newTestServer builds a Server over a temp home directory seeded with
// two glossaries, and returns it behind an httptest listener.
func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	dir, err := home.New(filepath.Join(t.TempDir(), ".gloss"))
	if err != nil {
		t.Fatal(err)
	}
	if err := dir.EnsureExists(); err != nil {
		t.Fatal(err)
	}

	write := func(name string, pairs []glossary.Pair) {
		path := filepath.Join(dir.GlossaryPath(), name)
		if err := glossary.WriteFile(path, pairs); err != nil {
			t.Fatal(err)
		}
	}
	write("basics.txt", []glossary.Pair{
		{Term: "Asset", Definition: "Anything of value owned by a person or company."},
		{Term: "Bond", Definition: "A debt security issued by a government."},
	})
	write("investing.txt", []glossary.Pair{
		{Term: "Yield", Definition: "The income returned on an investment."},
		{Term: "Asset", Definition: "A duplicate definition that dedup drops."},
	})
	// The combined output must not show up as its own glossary.
	write(home.CombinedGlossaryName, []glossary.Pair{
		{Term: "Escrow", Definition: "An account held by a third party."},
	})

	srv, err := New(Config{Home: dir})
	if err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	srv.registerRoutes(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)
	client := api.NewClient(ts.URL)

	var resp HealthResponse
	if err := client.Get(context.Background(), "/health", &resp); err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("unexpected status %q", resp.Status)
	}
	if resp.Glossaries != 2 {
		t.Errorf("expected 2 glossaries, got %d", resp.Glossaries)
	}
}

func TestGlossaries(t *testing.T) {
	_, ts := newTestServer(t)
	client := api.NewClient(ts.URL)

	var infos []GlossaryInfo
	if err := client.Get(context.Background(), "/api/glossaries", &infos); err != nil {
		t.Fatalf("glossaries request failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 glossaries, got %v", infos)
	}
	if infos[0].Name != "basics" || infos[0].Terms != 2 {
		t.Errorf("unexpected first glossary: %+v", infos[0])
	}
}

func TestTerms(t *testing.T) {
	_, ts := newTestServer(t)
	client := api.NewClient(ts.URL)

	t.Run("single glossary", func(t *testing.T) {
		var pairs []glossary.Pair
		if err := client.Get(context.Background(), "/api/terms?glossary=basics", &pairs); err != nil {
			t.Fatalf("terms request failed: %v", err)
		}
		if len(pairs) != 2 || pairs[0].Term != "Asset" {
			t.Errorf("unexpected pairs: %v", pairs)
		}
	})

	t.Run("all glossaries deduplicated", func(t *testing.T) {
		var pairs []glossary.Pair
		if err := client.Get(context.Background(), "/api/terms", &pairs); err != nil {
			t.Fatalf("terms request failed: %v", err)
		}
		// Asset appears in both files; first definition wins.
		if len(pairs) != 3 {
			t.Fatalf("expected 3 deduplicated pairs, got %v", pairs)
		}
		for _, p := range pairs {
			if p.Term == "Asset" && p.Definition != "Anything of value owned by a person or company." {
				t.Errorf("dedup kept the wrong definition: %q", p.Definition)
			}
		}
	})

	t.Run("unknown glossary is 404", func(t *testing.T) {
		err := client.Get(context.Background(), "/api/terms?glossary=nope", nil)
		if err == nil {
			t.Error("expected error for unknown glossary")
		}
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/terms?glossary=..%2Fsecret")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestSearch(t *testing.T) {
	_, ts := newTestServer(t)
	client := api.NewClient(ts.URL)

	t.Run("term match", func(t *testing.T) {
		var pairs []glossary.Pair
		if err := client.Get(context.Background(), "/api/terms/search?q=bond", &pairs); err != nil {
			t.Fatalf("search request failed: %v", err)
		}
		if len(pairs) != 1 || pairs[0].Term != "Bond" {
			t.Errorf("unexpected results: %v", pairs)
		}
	})

	t.Run("definition match after term matches", func(t *testing.T) {
		var pairs []glossary.Pair
		if err := client.Get(context.Background(), "/api/terms/search?q=investment", &pairs); err != nil {
			t.Fatalf("search request failed: %v", err)
		}
		if len(pairs) != 1 || pairs[0].Term != "Yield" {
			t.Errorf("unexpected results: %v", pairs)
		}
	})

	t.Run("missing query is 400", func(t *testing.T) {
		if err := client.Get(context.Background(), "/api/terms/search", nil); err == nil {
			t.Error("expected error for missing query")
		}
	})
}

func TestStartAndShutdown(t *testing.T) {
	dir, err := home.New(filepath.Join(t.TempDir(), ".gloss"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(dir.GlossaryPath(), 0o755); err != nil {
		t.Fatal(err)
	}

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	srv, err := New(Config{Home: dir, Port: port})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Start returned error: %v", err)
	}
	if srv.IsRunning() {
		t.Error("server still marked running after shutdown")
	}
}
