package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/filerank/pkg/errors"
)

// writeProject materializes a small JS project and returns its root.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	var buf bytes.Buffer
	c := New(&buf, log.WarnLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	return root.Execute()
}

func TestRankCommandJSON(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"a.js": "import b from './b';\n",
		"b.js": "export default 1;\n",
	})
	out := filepath.Join(t.TempDir(), "ranking.json")

	err := runCLI(t, "rank", dir, "--format", "json", "--output", out, "--no-cache")
	if err != nil {
		t.Fatalf("rank: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var entries []rankedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if filepath.Base(entries[0].Key) != "b.js" {
		t.Errorf("top entry = %s, want b.js", entries[0].Key)
	}
}

func TestRankCommandConfigExtensions(t *testing.T) {
	// The config restricts edges to .ts targets, so the .js import is
	// filtered out and both files rank equal; order falls back to the
	// provider's sorted key order.
	dir := writeProject(t, map[string]string{
		"a.js":           "import b from './b';\n",
		"b.js":           "export default 1;\n",
		".filerank.toml": "extensions = [\".ts\"]\n",
	})
	out := filepath.Join(t.TempDir(), "ranking.json")

	err := runCLI(t, "rank", dir, "--format", "json", "--output", out, "--no-cache")
	if err != nil {
		t.Fatalf("rank: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var entries []rankedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if filepath.Base(entries[0].Key) != "a.js" {
		t.Errorf("top entry = %s, want a.js (encounter order under full tie)", entries[0].Key)
	}
	if entries[0].Weight != entries[1].Weight {
		t.Errorf("weights should tie when all edges are filtered: %f vs %f", entries[0].Weight, entries[1].Weight)
	}
}

func TestRankCommandInvalidFormat(t *testing.T) {
	dir := writeProject(t, map[string]string{"a.js": "\n"})

	err := runCLI(t, "rank", dir, "--format", "yaml", "--no-cache")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestGraphCommandDOT(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"a.js": "import b from './b';\n",
		"b.js": "export default 1;\n",
	})
	out := filepath.Join(t.TempDir(), "deps.dot")

	err := runCLI(t, "graph", dir, "--format", "dot", "--output", out, "--no-cache")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	dot := string(data)
	if !bytes.Contains(data, []byte("digraph G")) {
		t.Errorf("missing digraph declaration:\n%s", dot)
	}
	if !bytes.Contains(data, []byte("a.js")) || !bytes.Contains(data, []byte("b.js")) {
		t.Errorf("missing nodes:\n%s", dot)
	}
}

func TestGraphCommandJSONRoundTrip(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"a.js": "import b from './b';\n",
		"b.js": "export default 1;\n",
	})
	out := filepath.Join(t.TempDir(), "deps.json")

	err := runCLI(t, "graph", dir, "--output", out, "--no-cache")
	if err != nil {
		t.Fatalf("graph: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var g struct {
		Nodes []struct {
			ID string `json:"id"`
		} `json:"nodes"`
		Edges []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(data, &g); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Errorf("got %d nodes, want 2", len(g.Nodes))
	}
	if len(g.Edges) != 1 {
		t.Errorf("got %d edges, want 1", len(g.Edges))
	}
}
