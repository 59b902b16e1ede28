package formatter

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/bstree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
)

func TestPlainOutput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := bstree.Build([]int{7, 3, 8, 5, 4, 1, 6, 2, 18})
	out := Sprint(tree, &Config{Context: uax11.LatinContext})
	want := strings.Join([]string{
		"│       ┌── 18",
		"│   ┌── 8",
		"│   │   └── 7",
		"│   │       └── 6",
		"└── 5",
		"    │   ┌── 4",
		"    └── 3",
		"        └── 2",
		"            └── 1",
		"",
	}, "\n")
	if out != want {
		t.Errorf("unexpected rendering:\n%s\nwant:\n%s", out, want)
	}
	var pp bytes.Buffer
	if err := tree.PrettyPrint(&pp); err != nil {
		t.Fatal(err)
	}
	if pp.String() != out {
		t.Errorf("formatter and PrettyPrint disagree:\n%s\n%s", out, pp.String())
	}
}

func TestDebugLabels(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tree := bstree.Build([]int{1, 2, 3})
	out := Sprint(tree, &Config{Debug: true})
	want := "│   ┌── 3 (h=0)\n└── 2 (h=1)\n    └── 1 (h=0)\n"
	if out != want {
		t.Errorf("unexpected debug rendering:\n%q\nwant\n%q", out, want)
	}
}

func TestTruncateLongLabels(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tree := bstree.Build([]string{"m", "abcdefghijklmnop"})
	out := Sprint(tree, &Config{LineWidth: 10, Context: uax11.LatinContext})
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if n := len([]rune(line)); n > 10 {
			t.Errorf("line %q exceeds line width (%d runes)", line, n)
		}
	}
	if !strings.Contains(out, Ellipsis) {
		t.Errorf("expected truncated label, got\n%s", out)
	}
	if got := truncate("hello", 3, uax11.LatinContext); got != "he…" {
		t.Errorf("truncate(hello, 3) = %q", got)
	}
	if got := truncate("hello", 0, uax11.LatinContext); got != Ellipsis {
		t.Errorf("truncate(hello, 0) = %q", got)
	}
	if got := truncate("hi", 5, uax11.LatinContext); got != "hi" {
		t.Errorf("short labels must not be truncated, got %q", got)
	}
}

func TestTruncateByDisplayWidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	t.Setenv("LANG", "ja_JP.UTF-8")
	tree := bstree.Build([]string{"m", "abcdefghijklmnop", "zyxwvutsrqponmlk"})
	for _, context := range []*uax11.Context{uax11.LatinContext, uax11.ContextFromEnvironment()} {
		config := &Config{LineWidth: 12, Context: context}
		out := Sprint(tree, config)
		for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
			if w := displayWidth(line, context); w > config.LineWidth {
				t.Errorf("line %q is %d cells wide, exceeds %d", line, w, config.LineWidth)
			}
		}
	}
}

func TestOutputKeepsConfig(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	config := &Config{LineWidth: 20}
	if err := Output(bstree.Build([]int{1, 2, 3}), &bytes.Buffer{}, config, PlainFormat{}); err != nil {
		t.Fatal(err)
	}
	if config.Context != nil {
		t.Errorf("Output must not set a context on the caller's config")
	}
}

func TestOutputRejectsNil(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tree := bstree.Build([]int{1})
	var b bytes.Buffer
	if err := Output(tree, &b, nil, PlainFormat{}); !errors.Is(err, bstree.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil config, got %v", err)
	}
	if err := Output(tree, nil, &Config{}, PlainFormat{}); !errors.Is(err, bstree.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil writer, got %v", err)
	}
	if err := Output(bstree.New[int](), &b, &Config{}, PlainFormat{}); err != nil || b.Len() != 0 {
		t.Errorf("empty tree should render nothing, got %q, %v", b.String(), err)
	}
}

func TestConsoleColors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	tree := bstree.Build([]int{1, 2, 3})
	color.NoColor = false
	var b bytes.Buffer
	if err := Output(tree, &b, &Config{}, NewConsoleFixedWidthFormat(nil)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "\x1b[") {
		t.Errorf("expected ANSI color codes in console output, got %q", b.String())
	}
	color.NoColor = true
	b.Reset()
	if err := Output(tree, &b, &Config{}, NewConsoleFixedWidthFormat(nil)); err != nil {
		t.Fatal(err)
	}
	if b.String() != Sprint(tree, nil) {
		t.Errorf("uncolored console output should equal plain output, got %q", b.String())
	}
}

func TestNodeKinds(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tree := bstree.Build([]int{1, 2, 3, 4})
	rec := &recordingFormat{}
	if err := Output(tree, &bytes.Buffer{}, &Config{}, rec); err != nil {
		t.Fatal(err)
	}
	// root 3, right leaf 4, left inner node 2 with leaf 1; right is drawn first
	got := strings.Join(rec.kinds, ",")
	if got != "leaf,root,inner,leaf" {
		t.Errorf("unexpected node kinds %s", got)
	}
}

type recordingFormat struct {
	PlainFormat
	kinds []string
}

func (r *recordingFormat) Key(s string, kind NodeKind, w io.Writer) {
	r.kinds = append(r.kinds, kind.String())
	r.PlainFormat.Key(s, kind, w)
}
