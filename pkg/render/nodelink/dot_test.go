package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/filerank/pkg/rank"
)

func TestToDOT_Basic(t *testing.T) {
	ranked := []*rank.Candidate{
		{Key: "src/b.js", Weight: 0.6, Dependents: 1},
		{Key: "src/a.js", Weight: 0.4, Dependencies: []string{"src/b.js"}},
	}

	dot := ToDOT(ranked, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"src/a.js"`) {
		t.Error("ToDOT() output missing node src/a.js")
	}
	if !strings.Contains(dot, `"src/b.js"`) {
		t.Error("ToDOT() output missing node src/b.js")
	}
	if !strings.Contains(dot, `"src/a.js" -> "src/b.js"`) {
		t.Error("ToDOT() output missing edge")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	ranked := []*rank.Candidate{
		{Key: "core.js", Weight: 0.312987, Dependents: 4, Lines: 3},
	}

	dot := ToDOT(ranked, Options{Detailed: true})

	if !strings.Contains(dot, "weight: 0.312987") {
		t.Error("ToDOT() detailed output missing weight")
	}
	if !strings.Contains(dot, "dependents: 4") {
		t.Error("ToDOT() detailed output missing dependents")
	}
	if !strings.Contains(dot, "lines: 3") {
		t.Error("ToDOT() detailed output missing lines")
	}
}

func TestToDOT_SkipsUnknownTargets(t *testing.T) {
	ranked := []*rank.Candidate{
		{Key: "a.js", Weight: 1, Dependencies: []string{"missing.js"}},
	}

	dot := ToDOT(ranked, Options{})

	if strings.Contains(dot, "missing.js") {
		t.Error("ToDOT() should drop edges to modules outside the set")
	}
}

func TestToDOT_DeduplicatesEdges(t *testing.T) {
	ranked := []*rank.Candidate{
		{Key: "b.js", Weight: 0.7},
		{Key: "a.js", Weight: 0.3, Dependencies: []string{"b.js", "b.js"}},
	}

	dot := ToDOT(ranked, Options{})

	if got := strings.Count(dot, `"a.js" -> "b.js"`); got != 1 {
		t.Errorf("ToDOT() emitted edge %d times, want 1", got)
	}
}

func TestToDOT_TopTierShaded(t *testing.T) {
	ranked := []*rank.Candidate{
		{Key: "top.js", Weight: 0.5},
		{Key: "mid.js", Weight: 0.3},
		{Key: "low.js", Weight: 0.2},
	}

	dot := ToDOT(ranked, Options{})

	var topLine, lowLine string
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, `"top.js" [`) {
			topLine = line
		}
		if strings.Contains(line, `"low.js" [`) {
			lowLine = line
		}
	}
	if !strings.Contains(topLine, "fillcolor=") {
		t.Errorf("top tier node should carry a fill, got %q", topLine)
	}
	if strings.Contains(lowLine, "fillcolor=") {
		t.Errorf("bottom tier node should keep the default fill, got %q", lowLine)
	}
}

func TestBucket(t *testing.T) {
	tests := []struct {
		name  string
		pos   int
		total int
		want  int
	}{
		{"FirstOfThree", 0, 3, 0},
		{"MiddleOfThree", 1, 3, 1},
		{"LastOfThree", 2, 3, 2},
		{"SingleNode", 0, 1, 0},
		{"FirstOfTen", 0, 10, 0},
		{"FourthOfTen", 3, 10, 0},
		{"FifthOfTen", 4, 10, 1},
		{"LastOfTen", 9, 10, 2},
		{"EmptyRanking", 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bucket(tt.pos, tt.total); got != tt.want {
				t.Errorf("bucket(%d, %d) = %d, want %d", tt.pos, tt.total, got, tt.want)
			}
		})
	}
}

func TestFmtLabel_Simple(t *testing.T) {
	c := &rank.Candidate{Key: "src/util.js", Weight: 0.25}
	if label := fmtLabel(c, false); label != "src/util.js" {
		t.Errorf("fmtLabel() simple mode = %q, want %q", label, "src/util.js")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 200.00 100.00">content</svg>`)

	got := string(normalizeViewBox(svg))

	if !strings.Contains(got, `viewBox="0 0 200.00 100.00"`) {
		t.Errorf("normalizeViewBox() viewBox not rewritten: %q", got)
	}
	if !strings.Contains(got, `width="200" height="100"`) {
		t.Errorf("normalizeViewBox() dimensions not set from viewBox: %q", got)
	}
}

func TestNormalizeViewBox_NoViewBox(t *testing.T) {
	svg := []byte(`<svg>content</svg>`)
	if got := normalizeViewBox(svg); string(got) != string(svg) {
		t.Error("normalizeViewBox() should pass through SVG without a viewBox")
	}
}
