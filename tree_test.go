package idtree

import (
	"strings"
	"testing"
)

func TestNewTree(t *testing.T) {
	tree := New('a')
	if tree.Len() != 1 {
		t.Fatalf("expected new tree to contain exactly the root, got %d nodes", tree.Len())
	}
	root := tree.Root()
	if root.ID() != 0 {
		t.Errorf("expected root at ID 0, got %d", root.ID())
	}
	if root.Value() != 'a' {
		t.Errorf("expected root value 'a', got %q", root.Value())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected fresh tree to validate, got %v", err)
	}
}

func TestWithCapacity(t *testing.T) {
	tree := WithCapacity("root", 100)
	if tree.Len() != 1 {
		t.Fatalf("capacity must be a hint only, got %d nodes", tree.Len())
	}
	if got := tree.Root().Value(); got != "root" {
		t.Errorf("expected root value 'root', got %q", got)
	}
}

func TestRootHasNoParentOrSiblings(t *testing.T) {
	tree := Build("root", N("b"), N("c"))
	root := tree.Root()
	if _, ok := root.Parent(); ok {
		t.Errorf("root must not have a parent")
	}
	if _, ok := root.PrevSibling(); ok {
		t.Errorf("root must not have a previous sibling")
	}
	if _, ok := root.NextSibling(); ok {
		t.Errorf("root must not have a next sibling")
	}
}

func TestGetChecked(t *testing.T) {
	tree := New("root")
	if _, ok := tree.Get(0); !ok {
		t.Errorf("expected Get(0) to find the root")
	}
	if _, ok := tree.Get(1); ok {
		t.Errorf("expected Get(1) to report absence on a one-node tree")
	}
	if _, ok := tree.Get(-1); ok {
		t.Errorf("expected Get(-1) to report absence")
	}
	if _, ok := tree.Mut(7); ok {
		t.Errorf("expected Mut(7) to report absence")
	}
}

func TestOrphanAllocation(t *testing.T) {
	tree := New("root")
	orphan := tree.Orphan("stray")
	if orphan.ID() != 1 {
		t.Errorf("expected first orphan at ID 1, got %d", orphan.ID())
	}
	if tree.Len() != 2 {
		t.Errorf("expected arena of 2 nodes, got %d", tree.Len())
	}
	ref := orphan.Ref()
	if _, ok := ref.Parent(); ok {
		t.Errorf("orphan must not have a parent")
	}
	if ref.HasSiblings() {
		t.Errorf("orphan must not have siblings")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected tree with orphan to validate, got %v", err)
	}
}

func TestNodeIDsAreStable(t *testing.T) {
	tree := New("root")
	b := tree.RootMut().Append("b")
	id := b.ID()
	// Force arena growth.
	for i := 0; i < 100; i++ {
		tree.RootMut().Append("filler")
	}
	ref, ok := tree.Get(id)
	if !ok {
		t.Fatalf("expected ID %d to stay valid after arena growth", id)
	}
	if ref.Value() != "b" {
		t.Errorf("expected value 'b' behind stable ID, got %q", ref.Value())
	}
}

func TestClone(t *testing.T) {
	tree := Build("a", N("b"), N("c", N("d")))
	clone := tree.Clone()
	if !Equal(tree, clone) {
		t.Fatalf("expected clone to equal original")
	}
	clone.RootMut().Append("e")
	if Equal(tree, clone) {
		t.Errorf("expected mutation of clone to not affect original")
	}
	if tree.Len() != 4 || clone.Len() != 5 {
		t.Errorf("unexpected arena sizes %d/%d after clone mutation", tree.Len(), clone.Len())
	}
}

func TestNodeRefEq(t *testing.T) {
	tree := New("root")
	other := New("root")
	if !tree.Root().Eq(tree.Root()) {
		t.Errorf("expected views of the same node to be equal")
	}
	if tree.Root().Eq(other.Root()) {
		t.Errorf("expected views into distinct trees to be unequal")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := Build("a", N("b"), N("c"))
	if err := tree.Check(); err != nil {
		t.Fatalf("expected built tree to validate, got %v", err)
	}
	tree.nodes[1].nextSibling = 0 // sibling link onto the root
	if err := tree.Check(); err == nil {
		t.Errorf("expected corrupted sibling link to be detected")
	}
	tree = Build("a", N("b"), N("c"))
	tree.nodes[2].parent = nilNode // still chained to its parent
	if err := tree.Check(); err == nil {
		t.Errorf("expected stale parent link to be detected")
	}
}

func TestTree2Dot(t *testing.T) {
	tree := Build("a", N("b"), N("c"))
	var sb strings.Builder
	Tree2Dot(tree, &sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("expected DOT header, got %q", out)
	}
	for _, edge := range []string{"\"0\" -> \"1\";", "\"0\" -> \"2\";"} {
		if !strings.Contains(out, edge) {
			t.Errorf("expected DOT output to contain edge %q", edge)
		}
	}
}
