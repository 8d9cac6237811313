package graph

import (
	"strings"
	"testing"

	"github.com/matzehuels/filerank/pkg/source"
)

func mod(key string, deps ...string) source.Module {
	m := source.Module{Key: key}
	for _, d := range deps {
		m.Dependencies = append(m.Dependencies, source.Edge{Target: d})
	}
	return m
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		modules []source.Module
	}{
		{"Empty", nil},
		{"Simple", []source.Module{mod("a.js", "b.js"), mod("b.js")}},
		{"DuplicateEdges", []source.Module{mod("a.js", "b.js", "b.js"), mod("b.js")}},
		{"EdgeOrder", []source.Module{mod("a.js", "c.js", "b.js"), mod("b.js"), mod("c.js")}},
		{"UnresolvedTarget", []source.Module{mod("a.js", "ghost.js")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.modules)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Unmarshal(data)
			if err != nil {
				t.Fatal(err)
			}

			if len(got) != len(tt.modules) {
				t.Fatalf("got %d modules, want %d", len(got), len(tt.modules))
			}
			byKey := make(map[string]source.Module, len(got))
			for _, m := range got {
				byKey[m.Key] = m
			}
			for _, want := range tt.modules {
				m, ok := byKey[want.Key]
				if !ok {
					t.Fatalf("module %s missing after round trip", want.Key)
				}
				if len(m.Dependencies) != len(want.Dependencies) {
					t.Fatalf("%s edges = %v, want %v", want.Key, m.Dependencies, want.Dependencies)
				}
				for i := range want.Dependencies {
					if m.Dependencies[i] != want.Dependencies[i] {
						t.Errorf("%s edge %d = %v, want %v", want.Key, i, m.Dependencies[i], want.Dependencies[i])
					}
				}
			}
		})
	}
}

func TestMarshalDeterministic(t *testing.T) {
	// Same graph presented in different module order marshals to
	// identical bytes: nodes are sorted by ID.
	a := []source.Module{mod("b.js"), mod("a.js", "b.js")}
	b := []source.Module{mod("a.js", "b.js"), mod("b.js")}

	da, err := Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	db, err := Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(da) != string(db) {
		t.Error("marshaled output depends on input order")
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := Read(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}
