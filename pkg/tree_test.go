package pkg

import (
	"reflect"
	"testing"
)

func TestBuildTreeNoData(t *testing.T) {
	var freqs FrequencyTable
	if tree, ok := BuildTree(freqs); ok || tree != nil {
		t.Errorf("BuildTree(zero table) = (%v, %v), want (nil, false)", tree, ok)
	}
}

func TestBuildTreeRootWeight(t *testing.T) {
	freqs := CountFrequencies([]byte("abacabad"))
	tree, ok := BuildTree(freqs)
	if !ok {
		t.Fatal("BuildTree returned no tree")
	}
	if got, want := tree.Weight(tree.Root()), freqs.Total(); got != want {
		t.Errorf("root weight = %d, want %d", got, want)
	}
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	freqs := CountFrequencies([]byte("aaaa"))
	tree, ok := BuildTree(freqs)
	if !ok {
		t.Fatal("BuildTree returned no tree")
	}

	root := tree.Root()
	if _, leaf := tree.Leaf(root); leaf {
		t.Fatal("single-symbol root is a leaf; want a synthetic parent")
	}
	left, right := tree.Children(root)
	if right != noChild {
		t.Errorf("synthetic parent right child = %d, want noChild", right)
	}
	sym, leaf := tree.Leaf(left)
	if !leaf || sym != 'a' {
		t.Errorf("left child = (%q, %v), want leaf 'a'", sym, leaf)
	}

	codes := BuildCodeTable(tree)
	if got := len(codes['a']); got != 1 {
		t.Errorf("code length for lone symbol = %d, want 1", got)
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	inputs := [][]byte{
		[]byte("abacabad"),
		[]byte("abcd"), // all weights equal, ties everywhere
		[]byte("mississippi river basin"),
		bytesUpTo(256),
	}
	for _, input := range inputs {
		freqs := CountFrequencies(input)

		first, ok := BuildTree(freqs)
		if !ok {
			t.Fatalf("BuildTree(%q) returned no tree", input)
		}
		second, _ := BuildTree(freqs)

		if !reflect.DeepEqual(BuildCodeTable(first), BuildCodeTable(second)) {
			t.Errorf("two builds from the same table produced different codes for %q", input)
		}
		if !reflect.DeepEqual(first.nodes, second.nodes) {
			t.Errorf("two builds from the same table produced different arenas for %q", input)
		}
	}
}

func TestBuildTreeTieBreakBySymbol(t *testing.T) {
	// Equal weights: the smaller symbol must become the left child of the
	// first merge, giving it the lexically smaller code.
	freqs := CountFrequencies([]byte("ab"))
	tree, _ := BuildTree(freqs)
	codes := BuildCodeTable(tree)

	if !reflect.DeepEqual(codes['a'], []bool{false}) {
		t.Errorf("code for 'a' = %v, want [0]", codes['a'])
	}
	if !reflect.DeepEqual(codes['b'], []bool{true}) {
		t.Errorf("code for 'b' = %v, want [1]", codes['b'])
	}
}

// bytesUpTo returns one occurrence of every symbol below n.
func bytesUpTo(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}
