package pkg

// CodeTable maps each symbol to its bit sequence (false = 0, true = 1).
// Symbols absent from the input have a nil entry. The table is prefix-free:
// no code is a prefix of another.
type CodeTable [AlphabetSize][]bool

// Has reports whether a code exists for the symbol.
func (ct *CodeTable) Has(sym byte) bool {
	return ct[sym] != nil
}

// BuildCodeTable derives the code table by depth-first traversal: descending
// to a left child appends a 0 bit, to a right child a 1 bit, and the
// accumulated prefix is recorded at each leaf. A nil tree (empty input)
// yields the zero table.
func BuildCodeTable(t *Tree) CodeTable {
	var codes CodeTable
	if t == nil {
		return codes
	}
	assignCodes(t, t.Root(), nil, &codes)
	return codes
}

func assignCodes(t *Tree, i int32, prefix []bool, codes *CodeTable) {
	if i == noChild {
		return
	}
	if sym, ok := t.Leaf(i); ok {
		codes[sym] = append([]bool{}, prefix...)
		return
	}
	left, right := t.Children(i)
	assignCodes(t, left, append(prefix, false), codes)
	assignCodes(t, right, append(prefix, true), codes)
}
