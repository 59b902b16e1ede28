package bstree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var sampleKeys = []int{7, 3, 8, 5, 4, 1, 6, 2, 18}

func collectKeys[K int | string](tree *Tree[K]) []K {
	var out []K
	for k := range tree.Keys() {
		out = append(out, k)
	}
	return out
}

func TestBuildSample(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := Build(sampleKeys)
	if err := tree.Check(); err != nil {
		t.Fatalf("expected valid tree, got %v", err)
	}
	if tree.Len() != 9 {
		t.Errorf("expected 9 keys, have %d", tree.Len())
	}
	if tree.Root().Key() != 5 {
		t.Errorf("expected root key 5, is %d", tree.Root().Key())
	}
	if tree.Root().Left().Key() != 3 || tree.Root().Right().Key() != 8 {
		t.Errorf("unexpected children of root: %v, %v", tree.Root().Left(), tree.Root().Right())
	}
	if h := tree.TreeHeight(); h != 3 {
		t.Errorf("expected height 3, is %d", h)
	}
	if !tree.IsBalanced() {
		t.Errorf("freshly built tree should be balanced")
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 18}
	if got := collectKeys(tree); !slices.Equal(got, want) {
		t.Errorf("in-order keys = %v, want %v", got, want)
	}
}

func TestBuildDoesNotModifyInput(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	in := []int{3, 1, 3, 2}
	Build(in)
	if !slices.Equal(in, []int{3, 1, 3, 2}) {
		t.Errorf("Build modified its input: %v", in)
	}
}

func TestBuildEmptyAndSingle(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	empty := Build[int](nil)
	if !empty.IsEmpty() || empty.Len() != 0 || empty.Root() != nil {
		t.Errorf("expected empty tree from nil input")
	}
	if empty.TreeHeight() != -1 {
		t.Errorf("expected height -1 for empty tree, is %d", empty.TreeHeight())
	}
	if !empty.IsBalanced() {
		t.Errorf("empty tree should be balanced")
	}
	single := Build([]int{42, 42, 42})
	if single.Len() != 1 || !single.Root().IsLeaf() || single.Root().Key() != 42 {
		t.Errorf("expected single-node tree, got len=%d root=%v", single.Len(), single.Root())
	}
}

func TestZeroValueTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tree Tree[string]
	if !tree.IsEmpty() || tree.Find("x") != nil {
		t.Fatalf("zero value tree should be empty")
	}
	tree.Insert("m")
	tree.Insert("c")
	tree.Insert("x")
	if got := collectKeys(&tree); !slices.Equal(got, []string{"c", "m", "x"}) {
		t.Errorf("unexpected keys %v", got)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestFind(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := Build(sampleKeys)
	for _, k := range sampleKeys {
		n := tree.Find(k)
		if n == nil || n.Key() != k {
			t.Errorf("expected to find %d, got %v", k, n)
		}
	}
	if n := tree.Find(99); n != nil {
		t.Errorf("expected 99 to be absent, found %v", n)
	}
	if tree.Contains(0) || !tree.Contains(18) {
		t.Errorf("Contains reports wrong membership")
	}
	var nilTree *Tree[int]
	if nilTree.Find(1) != nil {
		t.Errorf("nil tree should find nothing")
	}
}

func TestMinMax(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := Build(sampleKeys)
	if m, err := tree.Min(); err != nil || m != 1 {
		t.Errorf("Min = %d, %v; want 1", m, err)
	}
	if m, err := tree.Max(); err != nil || m != 18 {
		t.Errorf("Max = %d, %v; want 18", m, err)
	}
	empty := New[int]()
	if _, err := empty.Min(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for Min of empty tree, got %v", err)
	}
	if _, err := empty.Max(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for Max of empty tree, got %v", err)
	}
}

func TestCheckDetectsBrokenOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := Build([]int{1, 2, 3})
	tree.root.left.key = 5 // 5 must not be left of 2
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("expected ErrInvariantViolated, got %v", err)
	}
	tree = Build([]int{1, 2, 3})
	tree.size = 7
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("expected size mismatch to be detected, got %v", err)
	}
	// grandchild violating the bound of its grandparent
	tree = Build([]int{10, 5, 15})
	tree.root.left.right = &Node[int]{key: 12}
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("expected grandparent bound violation, got %v", err)
	}
}
