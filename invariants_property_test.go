package idtree

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedMutationProperty -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzRandomizedMutationProperty -fuzztime=10s

// treeModel mirrors the topology the tree is expected to have: a child ID
// list per node and a parent link per node (nilNode for root and orphans).
type treeModel struct {
	children map[NodeID][]NodeID
	parent   map[NodeID]NodeID
}

func newTreeModel() *treeModel {
	return &treeModel{
		children: map[NodeID][]NodeID{rootNode: nil},
		parent:   map[NodeID]NodeID{rootNode: nilNode},
	}
}

func (m *treeModel) add(id NodeID) {
	m.children[id] = nil
	m.parent[id] = nilNode
}

func (m *treeModel) unlink(id NodeID) {
	p := m.parent[id]
	if p == nilNode {
		return
	}
	list := m.children[p]
	i := slices.Index(list, id)
	m.children[p] = slices.Delete(list, i, i+1)
	m.parent[id] = nilNode
}

func (m *treeModel) linkAt(parent, child NodeID, index int) {
	m.unlink(child)
	m.children[parent] = slices.Insert(m.children[parent], index, child)
	m.parent[child] = parent
}

// inSubtree reports whether id lies in the subtree rooted at root.
func (m *treeModel) inSubtree(root, id NodeID) bool {
	if root == id {
		return true
	}
	for _, child := range m.children[root] {
		if m.inSubtree(child, id) {
			return true
		}
	}
	return false
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[string], model *treeModel) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	for id := NodeID(0); int(id) < tree.Len(); id++ {
		ref, ok := tree.Get(id)
		if !ok {
			t.Fatalf("node %d vanished from the arena", id)
		}
		got := childIDs(ref)
		want := model.children[id]
		if !slices.Equal(got, want) {
			t.Fatalf("children of node %d: got %v, want %v", id, got, want)
		}
		parent, ok := ref.Parent()
		switch {
		case ok && model.parent[id] == nilNode:
			t.Fatalf("node %d has unexpected parent %d", id, parent.ID())
		case !ok && model.parent[id] != nilNode:
			t.Fatalf("node %d lost its parent %d", id, model.parent[id])
		case ok && parent.ID() != model.parent[id]:
			t.Fatalf("node %d has parent %d, want %d", id, parent.ID(), model.parent[id])
		}
	}
}

func runRandomMutationSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	tree := New("root")
	model := newTreeModel()
	serial := 0
	nextValue := func() string {
		serial++
		return "n" + strconv.Itoa(serial)
	}
	randomNode := func() NodeID {
		return NodeID(r.Intn(tree.Len()))
	}

	for i := 0; i < steps; i++ {
		switch r.Intn(6) {
		case 0: // append a fresh node
			p := randomNode()
			pm, _ := tree.Mut(p)
			child := pm.Append(nextValue())
			model.add(child.ID())
			model.linkAt(p, child.ID(), len(model.children[p]))
		case 1: // prepend a fresh node
			p := randomNode()
			pm, _ := tree.Mut(p)
			child := pm.Prepend(nextValue())
			model.add(child.ID())
			model.linkAt(p, child.ID(), 0)
		case 2: // positional insert of a fresh node
			p := randomNode()
			index := r.Intn(len(model.children[p]) + 1)
			pm, _ := tree.Mut(p)
			child := pm.Insert(nextValue(), index)
			model.add(child.ID())
			model.linkAt(p, child.ID(), index)
		case 3: // detach
			x := randomNode()
			xm, _ := tree.Mut(x)
			xm.Detach()
			if x != rootNode {
				model.unlink(x)
			}
		case 4: // move a subtree via AppendID
			x := randomNode()
			p := randomNode()
			if x == rootNode || model.inSubtree(x, p) {
				continue
			}
			pm, _ := tree.Mut(p)
			pm.AppendID(x)
			model.unlink(x)
			model.children[p] = append(model.children[p], x)
			model.parent[x] = p
		case 5: // splice all children of a source node via reparent
			src := randomNode()
			p := randomNode()
			if p != src && model.inSubtree(src, p) {
				continue
			}
			pm, _ := tree.Mut(p)
			pm.ReparentFromIDAppend(src)
			if p != src {
				moved := model.children[src]
				model.children[src] = nil
				for _, child := range moved {
					model.children[p] = append(model.children[p], child)
					model.parent[child] = p
				}
			}
		}
		assertTreeMatchesModel(t, tree, model)
	}
}

func TestRandomizedMutationProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomMutationSequence(t, seed, 80)
		})
	}
}

func FuzzRandomizedMutationProperty(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(7), uint8(64))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomMutationSequence(t, seed, int(steps%120)+1)
	})
}
