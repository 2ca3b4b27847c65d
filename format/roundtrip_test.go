package format

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/dhamidi/glslq/glsl/parser"
	"github.com/dhamidi/glslq/glsl/syntax"
)

var testcasesDir string
var testFilter string

// shaderExts are the file extensions treated as GLSL sources.
var shaderExts = []string{".glsl", ".vert", ".frag", ".comp", ".geom", ".tesc", ".tese"}

func init() {
	flag.StringVar(&testcasesDir, "testcases", "", "directory containing shader test files")
	flag.StringVar(&testFilter, "filter", "", "filter test files by substring match on filename")
}

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

// TestRoundTrip_Testcases formats every shader under testcases/ and checks
// that the result parses to the same tree and formats to itself.
// Each file becomes a subtest: go test -run TestRoundTrip_Testcases/lighting
// Use -filter to select files by substring: go test ./format -filter=compute
// Skipped during pre-commit hooks when IN_GIT_PRECOMMIT=1
func TestRoundTrip_Testcases(t *testing.T) {
	if os.Getenv("IN_GIT_PRECOMMIT") == "1" {
		t.Skip("skipping roundtrip tests during pre-commit")
	}

	dir := testcasesDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		for d := wd; d != filepath.Dir(d); d = filepath.Dir(d) {
			candidate := filepath.Join(d, "testcases")
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				dir = candidate
				break
			}
		}
		if dir == "" {
			t.Skip("testcases directory not found; use -testcases flag to specify")
		}
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isShaderFile(d.Name()) {
			return nil
		}
		if testFilter != "" && !strings.Contains(path, testFilter) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk testcases directory: %v", err)
	}

	if len(files) == 0 {
		if testFilter != "" {
			t.Skipf("no shader files matching filter %q found in %s", testFilter, dir)
		}
		t.Skipf("no shader files found in %s", dir)
	}

	for _, file := range files {
		relPath, err := filepath.Rel(dir, file)
		if err != nil {
			relPath = filepath.Base(file)
		}
		testName := strings.ReplaceAll(relPath, string(filepath.Separator), "_")

		t.Run(testName, func(t *testing.T) {
			runRoundTripTest(t, file)
		})
	}
}

func isShaderFile(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range shaderExts {
		if ext == e {
			return true
		}
	}
	return false
}

func parseSource(source []byte) (*syntax.TranslationUnit, error) {
	node, err := parser.ParseTranslationUnit(bytes.NewReader(source)).Finish()
	if err != nil {
		return nil, err
	}
	return node.(*syntax.TranslationUnit), nil
}

func runRoundTripTest(t *testing.T, filename string) {
	source, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}

	origAST, err := parseSource(source)
	if err != nil {
		// Files that don't parse cleanly can't exercise the formatter.
		t.Skipf("original file has parse errors: %v", err)
	}

	formatted, err := Source(source)
	if err != nil {
		t.Fatalf("formatter error: %v", err)
	}

	fmtAST, err := parseSource(formatted)
	if err != nil {
		t.Errorf("formatted output has parse errors!\n\nOriginal parsed cleanly, but after formatting:\n  - %v", err)
		t.Logf("\n=== Formatted output ===\n%s", string(formatted))
		return
	}

	if !syntax.Equal(origAST, fmtAST) {
		diffs := compareNodeCounts(countNodeKinds(origAST), countNodeKinds(fmtAST))
		t.Errorf("tree changed after round-trip formatting:\n\n%s\n%s", formatDiffs(diffs), syntax.Diff(origAST, fmtAST))
		return
	}

	again, err := Source(formatted)
	if err != nil {
		t.Fatalf("formatter error on its own output: %v", err)
	}
	if !bytes.Equal(formatted, again) {
		t.Errorf("formatting is not idempotent\n=== first ===\n%s\n=== second ===\n%s", formatted, again)
	}
}

// NodeCountDiff represents a difference in node counts between original and formatted AST
type NodeCountDiff struct {
	Kind      string
	Original  int
	Formatted int
}

func countNodeKinds(root syntax.Node) map[string]int {
	counts := make(map[string]int)
	for _, n := range syntax.Preorder(root) {
		counts[nodeKind(n)]++
	}
	return counts
}

func compareNodeCounts(original, formatted map[string]int) []NodeCountDiff {
	var diffs []NodeCountDiff

	allKinds := make(map[string]bool)
	for k := range original {
		allKinds[k] = true
	}
	for k := range formatted {
		allKinds[k] = true
	}

	for kind := range allKinds {
		if original[kind] != formatted[kind] {
			diffs = append(diffs, NodeCountDiff{
				Kind:      kind,
				Original:  original[kind],
				Formatted: formatted[kind],
			})
		}
	}

	// Most dropped nodes first
	sort.Slice(diffs, func(i, j int) bool {
		diffI := diffs[i].Original - diffs[i].Formatted
		diffJ := diffs[j].Original - diffs[j].Formatted
		if diffI != diffJ {
			return diffI > diffJ
		}
		return diffs[i].Kind < diffs[j].Kind
	})

	return diffs
}

func formatDiffs(diffs []NodeCountDiff) string {
	if len(diffs) == 0 {
		return "(same node counts)\n"
	}
	var sb strings.Builder
	sb.WriteString("Kind                          Original  Formatted  Delta\n")
	sb.WriteString("------------------------------------------------------------\n")
	for _, d := range diffs {
		delta := d.Formatted - d.Original
		sign := "+"
		if delta < 0 {
			sign = ""
		}
		sb.WriteString(fmt.Sprintf("%-30s %8d  %9d  %s%d\n", d.Kind, d.Original, d.Formatted, sign, delta))
	}
	return sb.String()
}
