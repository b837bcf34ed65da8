package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Info strings of the fenced blocks run by TestCodeBlocks.
const (
	setupBlock  = "bash setup"    // starts a scenario in a fresh directory
	runBlock    = "bash run"      // its output is compared by the next console check
	outputBlock = "console check" // expected output of the last bash run
	checkBlock  = "bash check"    // must exit with status 0
)

// readmeTopics returns the topic names of the "* name: description" items of readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	source, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("cannot read readme.md: %v", err)
	}
	var names []string
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		item, ok := n.(*ast.ListItem)
		if !entering || !ok || item.FirstChild() == nil {
			return ast.WalkContinue, nil
		}
		if txt, ok := item.FirstChild().FirstChild().(*ast.Text); ok {
			if name, _, found := strings.Cut(string(txt.Segment.Value(source)), ":"); found {
				names = append(names, strings.TrimSpace(name))
			}
		}
		return ast.WalkSkipChildren, nil
	})
	return names
}

func TestTopics(t *testing.T) {
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatalf("no topic found in readme.md")
	}
	for _, name := range listed {
		if _, err := GetTopic(name); err != nil {
			t.Errorf("GetTopic(%q) error: %v", name, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error: %v", err)
	}
	for _, name := range all {
		if !slices.Contains(listed, name) {
			t.Errorf("topic %q is missing from readme.md", name)
		}
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopic(All)
	if err != nil {
		t.Fatalf("GetTopic(%q) error: %v", All, err)
	}
	topics, _ := GetAllTopics()
	for _, topic := range topics {
		content, _ := GetTopic(topic)
		if !strings.Contains(all, content) {
			t.Errorf("GetTopic(%q) does not contain topic %q", All, topic)
		}
	}
	if _, err := GetTopic("nonexistent"); err == nil {
		t.Errorf("GetTopic(%q) expected an error", "nonexistent")
	}
}

// TestCodeBlocks runs the shell examples of every topic and of the project
// README against a freshly built zl2dali.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	bin := t.TempDir()
	if out, err := exec.Command("go", "build", "-o", filepath.Join(bin, "zl2dali"), "../zl2dali/").CombinedOutput(); err != nil {
		t.Fatalf("cannot build zl2dali: %v\n%s", err, out)
	}
	// user defaults must not leak into the examples
	env := slices.DeleteFunc(os.Environ(), func(kv string) bool { return strings.HasPrefix(kv, "ZL2DALI_") })
	env = append(env, fmt.Sprintf("PATH=%s%c%s", bin, os.PathListSeparator, os.Getenv("PATH")))

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			s := &scenario{env: env, dir: t.TempDir()}
			for _, sn := range snippets(t, file) {
				s.play(t, sn)
			}
		})
	}
}

// snippet is a fenced block of a markdown file that TestCodeBlocks runs.
type snippet struct {
	kind string
	body string
	pos  string // file:line of the block
}

// snippets returns the runnable blocks of 'file' in document order.
func snippets(t *testing.T, file string) []snippet {
	t.Helper()
	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("cannot read %s: %v", file, err)
	}

	var found []snippet
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		block, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || block.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(block.Info.Segment.Value(source))
		switch kind {
		case setupBlock, runBlock, outputBlock, checkBlock:
		default:
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		lines := block.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			body.Write(seg.Value(source))
		}
		// goldmark keeps offsets only, the line is counted back from the source.
		line := bytes.Count(source[:block.Info.Segment.Start], []byte("\n")) + 1
		found = append(found, snippet{kind: kind, body: body.String(), pos: fmt.Sprintf("%s:%d", file, line)})
		return ast.WalkContinue, nil
	})
	return found
}

// scenario is the shell state shared by the snippets of a file.
type scenario struct {
	env  []string
	dir  string
	last string // output of the last run block
}

func (s *scenario) play(t *testing.T, sn snippet) {
	t.Helper()
	if sn.kind == outputBlock {
		got := strings.ReplaceAll(strings.TrimSpace(s.last), "\t", "        ")
		if want := strings.TrimSpace(sn.body); got != want {
			t.Errorf("%s: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q\n", sn.pos, got, want, got, want)
		}
		return
	}
	if sn.kind == setupBlock {
		s.dir = t.TempDir()
	}

	sh := exec.Command("bash", "-c", "set -e; "+sn.body)
	sh.Dir = s.dir
	sh.Env = s.env
	out, err := sh.CombinedOutput()
	if sn.kind == runBlock {
		s.last = string(out)
	}
	if err == nil {
		return
	}
	if sn.kind == checkBlock {
		t.Errorf("%s: %s failed: %v with output:\n%s\n", sn.pos, sn.kind, err, out)
		return
	}
	t.Fatalf("%s: %s failed: %v with output:\n%s\n", sn.pos, sn.kind, err, out)
}
