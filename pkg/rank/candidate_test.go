package rank

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/filerank/pkg/errors"
	"github.com/matzehuels/filerank/pkg/source"
)

// mod builds a synthetic module with edges in the given order.
func mod(key string, deps ...string) source.Module {
	m := source.Module{Key: key}
	for _, d := range deps {
		m.Dependencies = append(m.Dependencies, source.Edge{Target: d})
	}
	return m
}

// buildSet constructs a candidate set from synthetic modules with
// injected line counts, bypassing the filesystem.
func buildSet(t *testing.T, modules []source.Module, lines map[string]int, exts []string) *Set {
	t.Helper()
	set, err := Build(context.Background(), modules, BuildOptions{
		Extensions: exts,
		CountLines: func(key string) (int, error) { return lines[key], nil },
	})
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestBuildFiltersDependencies(t *testing.T) {
	set := buildSet(t, []source.Module{
		mod("a.js", "b.js", "c.css", "b.js"),
		mod("b.js"),
	}, map[string]int{"a.js": 2, "b.js": 1}, []string{".js"})

	a, _ := set.ByKey("a.js")
	want := []string{"b.js", "b.js"}
	if !slices.Equal(a.Dependencies, want) {
		t.Errorf("Dependencies = %v, want %v (duplicates preserved, .css filtered)", a.Dependencies, want)
	}
}

func TestBuildDependentsUsesRawEdges(t *testing.T) {
	// a's edge to c.css is excluded from ranking weight by the filter,
	// but c.css is not a candidate anyway. b's edge to a survives; a's
	// filtered edge to b still counts toward b's dependents because
	// dependents are derived from the raw module edges.
	set := buildSet(t, []source.Module{
		mod("a.js", "b.ts"),
		mod("b.ts", "a.js"),
	}, map[string]int{"a.js": 1, "b.ts": 1}, []string{".js"})

	a, _ := set.ByKey("a.js")
	b, _ := set.ByKey("b.ts")

	if len(a.Dependencies) != 0 {
		t.Errorf("a.Dependencies = %v, want none (filtered)", a.Dependencies)
	}
	if b.Dependents != 1 {
		t.Errorf("b.Dependents = %d, want 1 (raw edge counts despite filter)", b.Dependents)
	}
	if a.Dependents != 1 {
		t.Errorf("a.Dependents = %d, want 1", a.Dependents)
	}
}

func TestBuildDependents(t *testing.T) {
	tests := []struct {
		name    string
		modules []source.Module
		key     string
		want    int
	}{
		{
			name:    "TwoDependents",
			modules: []source.Module{mod("core.js"), mod("a.js", "core.js"), mod("b.js", "core.js")},
			key:     "core.js",
			want:    2,
		},
		{
			name:    "DuplicateEdgesCountTwice",
			modules: []source.Module{mod("core.js"), mod("a.js", "core.js", "core.js")},
			key:     "core.js",
			want:    2,
		},
		{
			name:    "SelfEdgeIgnored",
			modules: []source.Module{mod("a.js", "a.js")},
			key:     "a.js",
			want:    0,
		},
		{
			name:    "UnknownTargetIgnored",
			modules: []source.Module{mod("a.js", "ghost.js")},
			key:     "a.js",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make(map[string]int)
			for _, m := range tt.modules {
				lines[m.Key] = 1
			}
			set := buildSet(t, tt.modules, lines, nil)
			c, ok := set.ByKey(tt.key)
			if !ok {
				t.Fatalf("candidate %s missing", tt.key)
			}
			if c.Dependents != tt.want {
				t.Errorf("Dependents = %d, want %d", c.Dependents, tt.want)
			}
		})
	}
}

func TestBuildLineCountError(t *testing.T) {
	_, err := Build(context.Background(), []source.Module{mod("a.js")}, BuildOptions{
		CountLines: func(key string) (int, error) {
			return 0, fmt.Errorf("unreadable")
		},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.ErrCodeIO {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeIO)
	}
}

func TestCountFileLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"Empty", "", 0},
		{"SingleLineNoNewline", "const x = 1;", 1},
		{"SingleLineWithNewline", "const x = 1;\n", 1},
		{"ThreeLines", "a\nb\nc\n", 3},
		{"TrailingFragment", "a\nb\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "f.js")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			got, err := countFileLines(path)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("countFileLines = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountFileLinesMissing(t *testing.T) {
	if _, err := countFileLines(filepath.Join(t.TempDir(), "missing.js")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBuildDefaultCounterSurfacesIOError(t *testing.T) {
	_, err := Build(context.Background(), []source.Module{mod(filepath.Join(t.TempDir(), "missing.js"))}, BuildOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.ErrCodeIO {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeIO)
	}
}
