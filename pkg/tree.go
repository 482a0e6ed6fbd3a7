package pkg

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Huffman tree construction with a deterministic merge order. The decoder
// rebuilds the tree independently from the header's frequency table, so two
// builds from the same table must produce bit-identical shapes on any
// platform.

const noChild = int32(-1)

// node is one slot in the tree arena. Leaves have symbol >= 0 and no
// children; internal nodes have symbol == -1 and two children (the synthetic
// parent of a one-symbol alphabet may have right == noChild).
type node struct {
	symbol int16
	weight uint64
	left   int32
	right  int32
	// tieKey breaks equal-weight comparisons: the symbol value for leaves,
	// AlphabetSize plus a creation sequence number for internal nodes.
	tieKey int32
}

// Tree is a Huffman tree stored as a flat arena addressed by index. The root
// is always the last node appended.
type Tree struct {
	nodes []node
}

// Root returns the index of the root node.
func (t *Tree) Root() int32 {
	return int32(len(t.nodes)) - 1
}

// Leaf reports whether the node at index i is a leaf, and its symbol.
func (t *Tree) Leaf(i int32) (byte, bool) {
	n := t.nodes[i]
	if n.symbol >= 0 {
		return byte(n.symbol), true
	}
	return 0, false
}

// Children returns the child indices of the node at index i; leaves return
// (noChild, noChild).
func (t *Tree) Children(i int32) (left, right int32) {
	n := t.nodes[i]
	return n.left, n.right
}

// Weight returns the weight of the node at index i. The root's weight equals
// the sum of all frequencies.
func (t *Tree) Weight(i int32) uint64 {
	return t.nodes[i].weight
}

// BuildTree builds the Huffman tree for a frequency table. The second return
// is false when the table is all zero (empty input): no tree is needed.
//
// Leaves are inserted in ascending symbol order and repeatedly the two
// minimum nodes are merged, ordered by (weight, tieKey). The smaller key
// becomes the left child. Ties between leaves resolve by symbol value; ties
// involving internal nodes resolve by creation order, earlier first.
func BuildTree(freqs FrequencyTable) (*Tree, bool) {
	distinct := freqs.Distinct()
	if distinct == 0 {
		return nil, false
	}

	t := &Tree{nodes: make([]node, 0, 2*distinct)}
	h := &nodeHeap{tree: t}
	for sym, n := range freqs {
		if n == 0 {
			continue
		}
		t.nodes = append(t.nodes, node{
			symbol: int16(sym),
			weight: n,
			left:   noChild,
			right:  noChild,
			tieKey: int32(sym),
		})
		h.order = append(h.order, int32(len(t.nodes)-1))
	}
	heap.Init(h)

	if distinct == 1 {
		// A lone symbol still needs a code of length >= 1, so it gets a
		// synthetic parent with an empty right branch.
		leaf := h.order[0]
		t.nodes = append(t.nodes, node{
			symbol: -1,
			weight: t.nodes[leaf].weight,
			left:   leaf,
			right:  noChild,
			tieKey: int32(AlphabetSize),
		})
		return t, true
	}

	seq := int32(0)
	for h.Len() > 1 {
		left := heap.Pop(h).(int32)
		right := heap.Pop(h).(int32)
		t.nodes = append(t.nodes, node{
			symbol: -1,
			weight: t.nodes[left].weight + t.nodes[right].weight,
			left:   left,
			right:  right,
			tieKey: int32(AlphabetSize) + seq,
		})
		seq++
		heap.Push(h, int32(len(t.nodes)-1))
	}

	root := heap.Pop(h).(int32)
	assert.Assertf(root == t.Root(), "root index %d is not the last arena slot %d", root, t.Root())
	return t, true
}

// nodeHeap is a min-heap of arena indices ordered by (weight, tieKey).
type nodeHeap struct {
	tree  *Tree
	order []int32
}

func (h *nodeHeap) Len() int { return len(h.order) }

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.tree.nodes[h.order[i]], h.tree.nodes[h.order[j]]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.tieKey < b.tieKey
}

func (h *nodeHeap) Swap(i, j int) {
	h.order[i], h.order[j] = h.order[j], h.order[i]
}

func (h *nodeHeap) Push(x interface{}) {
	h.order = append(h.order, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	n := len(h.order) - 1
	idx := h.order[n]
	h.order = h.order[:n]
	return idx
}

var _ heap.Interface = (*nodeHeap)(nil)
